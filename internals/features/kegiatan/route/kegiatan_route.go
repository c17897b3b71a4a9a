package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/constants"
	honorariumController "simitra_backend/internals/features/kegiatan/honorarium/controller"
	kegiatanController "simitra_backend/internals/features/kegiatan/kegiatan/controller"
	referensiController "simitra_backend/internals/features/kegiatan/referensi/controller"
	authMiddleware "simitra_backend/internals/middlewares/auth"
)

// Semua user login boleh baca data referensi.
func KegiatanUserRoutes(router fiber.Router, db *gorm.DB) {
	kegiatanCtrl := kegiatanController.NewKegiatanController(db)
	subCtrl := kegiatanController.NewSubkegiatanController(db)
	jabatanCtrl := referensiController.NewJabatanController(db)
	satuanCtrl := referensiController.NewSatuanController(db)
	aturanCtrl := referensiController.NewAturanPeriodeController(db)
	honorCtrl := honorariumController.NewHonorariumController(db)

	router.Get("/kegiatan", kegiatanCtrl.GetAllKegiatan)
	router.Get("/kegiatan/:id", kegiatanCtrl.GetKegiatanByID)

	router.Get("/subkegiatan", subCtrl.GetAllSubkegiatan)
	router.Get("/subkegiatan/:id", subCtrl.GetSubkegiatanByID)

	router.Get("/jabatan", jabatanCtrl.GetAllJabatan)
	router.Get("/jabatan/:kode", jabatanCtrl.GetJabatanByKode)

	router.Get("/satuan", satuanCtrl.GetAllSatuan)

	router.Get("/aturan-periode", aturanCtrl.GetAllAturanPeriode)
	router.Get("/aturan-periode/tahun/:tahun", aturanCtrl.GetAturanByTahun)

	router.Get("/honorarium", honorCtrl.GetAllHonorarium)
	router.Get("/honorarium/:id", honorCtrl.GetHonorariumByID)
}

// 🔐 Admin/superadmin only (mutasi data referensi)
func KegiatanAdminRoutes(router fiber.Router, db *gorm.DB) {
	kegiatanCtrl := kegiatanController.NewKegiatanController(db)
	subCtrl := kegiatanController.NewSubkegiatanController(db)
	jabatanCtrl := referensiController.NewJabatanController(db)
	satuanCtrl := referensiController.NewSatuanController(db)
	aturanCtrl := referensiController.NewAturanPeriodeController(db)
	honorCtrl := honorariumController.NewHonorariumController(db)

	admin := router.Group("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola data kegiatan"),
			constants.AdminAndAbove,
		),
	)

	admin.Post("/kegiatan", kegiatanCtrl.CreateKegiatan)
	admin.Put("/kegiatan/:id", kegiatanCtrl.UpdateKegiatan)
	admin.Delete("/kegiatan/:id", kegiatanCtrl.DeleteKegiatan)

	admin.Post("/subkegiatan", subCtrl.CreateSubkegiatan)
	admin.Put("/subkegiatan/:id", subCtrl.UpdateSubkegiatan)
	admin.Delete("/subkegiatan/:id", subCtrl.DeleteSubkegiatan)

	admin.Post("/jabatan", jabatanCtrl.CreateJabatan)
	admin.Put("/jabatan/:kode", jabatanCtrl.UpdateJabatan)
	admin.Delete("/jabatan/:kode", jabatanCtrl.DeleteJabatan)

	admin.Post("/satuan", satuanCtrl.CreateSatuan)
	admin.Put("/satuan/:id", satuanCtrl.UpdateSatuan)
	admin.Delete("/satuan/:id", satuanCtrl.DeleteSatuan)

	admin.Post("/aturan-periode", aturanCtrl.CreateAturanPeriode)
	admin.Put("/aturan-periode/:id", aturanCtrl.UpdateAturanPeriode)
	admin.Delete("/aturan-periode/:id", aturanCtrl.DeleteAturanPeriode)

	admin.Post("/honorarium", honorCtrl.CreateHonorarium)
	admin.Put("/honorarium/:id", honorCtrl.UpdateHonorarium)
	admin.Delete("/honorarium/:id", honorCtrl.DeleteHonorarium)
}
