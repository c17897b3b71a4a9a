package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	penugasanController "simitra_backend/internals/features/roster/penugasan/controller"
	perencanaanController "simitra_backend/internals/features/roster/perencanaan/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

func RosterUserRoutes(router fiber.Router, db *gorm.DB) {
	perencanaan := perencanaanController.NewPerencanaanController(db)
	penugasan := penugasanController.NewPenugasanController(db)

	p := router.Group("/perencanaan")
	p.Get("/", perencanaan.GetAllPerencanaan)
	p.Get("/:id", perencanaan.GetPerencanaanByID)
	p.Get("/:id/anggota", perencanaan.GetAnggota)

	t := router.Group("/penugasan")
	t.Get("/", penugasan.GetAllPenugasan)
	t.Get("/:id", penugasan.GetPenugasanByID)
	t.Get("/:id/anggota", penugasan.GetAnggota)
}

// 🔐 Admin/superadmin only (mutasi roster + approval)
func RosterAdminRoutes(router fiber.Router, db *gorm.DB) {
	perencanaan := perencanaanController.NewPerencanaanController(db)
	penugasan := penugasanController.NewPenugasanController(db)

	guard := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("mengelola roster"),
		constants.AdminAndAbove,
	)

	p := router.Group("/perencanaan", guard)
	p.Post("/", perencanaan.CreatePerencanaan)
	p.Delete("/:id", perencanaan.DeletePerencanaan)
	p.Post("/:id/anggota", perencanaan.AddAnggota)
	p.Put("/:id/anggota/:anggotaId", perencanaan.UpdateAnggota)
	p.Delete("/:id/anggota/:anggotaId", perencanaan.DeleteAnggota)

	t := router.Group("/penugasan", guard)
	t.Post("/", penugasan.CreatePenugasan)
	t.Delete("/:id", penugasan.DeletePenugasan)
	t.Post("/:id/anggota", penugasan.AddAnggota)
	t.Put("/:id/anggota/:anggotaId", penugasan.UpdateAnggota)
	t.Delete("/:id/anggota/:anggotaId", penugasan.DeleteAnggota)
	t.Patch("/:id/approve", penugasan.ApprovePenugasan)
	t.Post("/import-perencanaan", penugasan.ImportFromPerencanaan)
	t.Post("/preview-import/:idSubkegiatan", penugasan.PreviewImport)
}
