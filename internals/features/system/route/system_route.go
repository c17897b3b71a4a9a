package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	systemController "simitra_backend/internals/features/system/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

// 🌐 Tanpa auth: branding untuk halaman publik.
func SystemPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := systemController.NewSystemSettingController(db)
	app.Get("/api/system-settings/public", ctrl.GetPublicSettings)
}

// 🔐 Admin/superadmin only
func SystemAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := systemController.NewSystemSettingController(db)

	settings := router.Group("/system-settings",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola pengaturan sistem"),
			constants.AdminAndAbove,
		),
	)
	settings.Get("/", ctrl.GetAllSettings)
	settings.Put("/", ctrl.UpsertSetting)
	settings.Post("/upload", ctrl.UploadImage)
}
