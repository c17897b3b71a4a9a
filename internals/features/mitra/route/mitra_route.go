package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	mitraController "simitra_backend/internals/features/mitra/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

func MitraUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := mitraController.NewMitraController(db)

	mitra := router.Group("/mitra")
	mitra.Get("/", ctrl.GetMitraByTahun)     // 📄 paginated + filter tahun
	mitra.Get("/search", ctrl.SearchMitra)   // 🔍 free-text
	mitra.Get("/:id", ctrl.GetMitraByID)
}

// 🔐 Admin/superadmin only (mutasi registri mitra)
func MitraAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := mitraController.NewMitraController(db)

	mitra := router.Group("/mitra",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola mitra"),
			constants.AdminAndAbove,
		),
	)
	mitra.Post("/", ctrl.CreateMitra)
	mitra.Put("/:id", ctrl.UpdateMitra)
	mitra.Delete("/:id", ctrl.DeleteMitra)
	mitra.Post("/:id/tahun-aktif", ctrl.SetTahunAktif)
	mitra.Post("/import", ctrl.ImportMitra)
}
