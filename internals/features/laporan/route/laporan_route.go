package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	laporanController "simitra_backend/internals/features/laporan/controller"
)

// Laporan hanya membaca, cukup login (semua role).
func LaporanUserRoutes(router fiber.Router, db *gorm.DB) {
	transaksi := laporanController.NewTransaksiController(db)
	rekap := laporanController.NewRekapController(db)

	laporan := router.Group("/laporan")
	laporan.Get("/transaksi", transaksi.GetLaporanTransaksi)
	laporan.Get("/rekap/bulanan", rekap.GetRekapBulanan)
	laporan.Get("/rekap/mitra", rekap.GetRekapMitra)
	laporan.Get("/rekap/mitra/:idMitra/detail", rekap.GetRekapDetail)
}
