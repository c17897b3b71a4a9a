package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
	"simitra_backend/internals/features/laporan/dto"
	"simitra_backend/internals/features/laporan/service"
	penugasanModel "simitra_backend/internals/features/roster/penugasan/model"
	helper "simitra_backend/internals/helpers"
)

type TransaksiController struct {
	DB *gorm.DB
}

func NewTransaksiController(db *gorm.DB) *TransaksiController {
	return &TransaksiController{DB: db}
}

// =============================
// 📊 Laporan transaksi honor vs batas periode
// =============================
// Hanya penugasan disetujui yang dihitung. Query param: tahun (wajib),
// bulan / id_kegiatan / id_subkegiatan (opsional). Tanpa filter bulan,
// limit = batas_honor × 12.
func (ctrl *TransaksiController) GetLaporanTransaksi(c *fiber.Ctx) error {
	tahun := c.Query("tahun")
	if tahun == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}
	if _, err := strconv.Atoi(tahun); err != nil || len(tahun) != 4 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tahun tidak valid, gunakan YYYY")
	}

	bulan := 0
	if b := c.Query("bulan"); b != "" {
		v, err := strconv.Atoi(b)
		if err != nil || v < 1 || v > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format bulan tidak valid, gunakan 1-12")
		}
		bulan = v
	}

	q := ctrl.DB.Table("kelompok_penugasan AS k").
		Select(`m.id AS id_mitra, m.nama_lengkap, m.nik, m.sobat_id,
			COALESCE(SUM(k.volume_tugas * h.tarif), 0) AS total_honor`).
		Joins("JOIN penugasan p ON p.id = k.id_penugasan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN kegiatan g ON g.id = s.id_kegiatan").
		Joins("JOIN mitra m ON m.id = k.id_mitra").
		Joins("JOIN honorarium h ON h.id_subkegiatan = s.id AND h.kode_jabatan = k.kode_jabatan").
		Where("p.status_penugasan = ?", penugasanModel.StatusDisetujui).
		Where("EXTRACT(YEAR FROM s.tanggal_mulai) = ?", tahun)

	if bulan > 0 {
		q = q.Where("EXTRACT(MONTH FROM s.tanggal_mulai) = ?", bulan)
	}
	if idKegiatan := c.Query("id_kegiatan"); idKegiatan != "" {
		q = q.Where("g.id = ?", idKegiatan)
	}
	if idSub := c.Query("id_subkegiatan"); idSub != "" {
		q = q.Where("s.id = ?", idSub)
	}

	var rows []dto.TransaksiRow
	if err := q.Group("m.id, m.nama_lengkap, m.nik, m.sobat_id").
		Order("total_honor DESC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil laporan transaksi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil laporan transaksi")
	}

	var aturan referensiModel.AturanPeriodeModel
	batasBulanan := 0.0
	if err := ctrl.DB.First(&aturan, "periode = ?", tahun).Error; err == nil {
		batasBulanan = aturan.BatasHonor
	}
	limit := service.HitungLimit(batasBulanan, bulan > 0)

	for i := range rows {
		rows[i].BatasHonor = limit
		rows[i].Status = service.EvalBatas(rows[i].TotalHonor, limit)
	}

	return helper.JsonList(c, "Laporan transaksi tahun "+tahun, rows, nil)
}
