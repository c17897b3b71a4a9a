package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	spkController "simitra_backend/internals/features/spk/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

func SpkUserRoutes(router fiber.Router, db *gorm.DB) {
	template := spkController.NewTemplateSpkController(db)
	setting := spkController.NewSpkSettingController(db)

	spk := router.Group("/spk")
	spk.Get("/template", template.GetAllTemplate)
	spk.Get("/template/active", template.GetActiveTemplate)
	spk.Get("/template/:id", template.GetTemplateByID)
	spk.Get("/setting", setting.GetAllSetting)
	spk.Get("/setting/:periode", setting.GetSettingByPeriode)
}

// 🔐 Admin/superadmin only (mutasi template & setting)
func SpkAdminRoutes(router fiber.Router, db *gorm.DB) {
	template := spkController.NewTemplateSpkController(db)
	setting := spkController.NewSpkSettingController(db)

	spk := router.Group("/spk",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola SPK"),
			constants.AdminAndAbove,
		),
	)
	spk.Post("/template", template.CreateTemplate)
	spk.Put("/template/:id", template.UpdateTemplate)
	spk.Patch("/template/:id/activate", template.SetActiveTemplate)
	spk.Delete("/template/:id", template.DeleteTemplate)

	spk.Post("/setting", setting.CreateSetting)
	spk.Put("/setting/:periode", setting.UpdateSetting)
	spk.Delete("/setting/:periode", setting.DeleteSetting)
}
