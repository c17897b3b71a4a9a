package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/laporan/dto"
	"simitra_backend/internals/features/laporan/service"
	helper "simitra_backend/internals/helpers"
)

type RekapController struct {
	DB *gorm.DB
}

func NewRekapController(db *gorm.DB) *RekapController {
	return &RekapController{DB: db}
}

func parseTahunBulan(c *fiber.Ctx, wajibBulan bool) (string, int, error) {
	tahun := c.Query("tahun")
	if tahun == "" {
		return "", 0, helper.JsonError(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}
	if _, err := strconv.Atoi(tahun); err != nil || len(tahun) != 4 {
		return "", 0, helper.JsonError(c, fiber.StatusBadRequest, "Format tahun tidak valid, gunakan YYYY")
	}

	bulan := 0
	if b := c.Query("bulan"); b != "" {
		v, err := strconv.Atoi(b)
		if err != nil || v < 1 || v > 12 {
			return "", 0, helper.JsonError(c, fiber.StatusBadRequest, "Format bulan tidak valid, gunakan 1-12")
		}
		bulan = v
	}
	if wajibBulan && bulan == 0 {
		return "", 0, helper.JsonError(c, fiber.StatusBadRequest, "Parameter bulan wajib diisi")
	}
	return tahun, bulan, nil
}

// =============================
// 📅 Rekap perencanaan per bulan dalam satu tahun
// =============================
// Bulan diambil dari tanggal mulai subkegiatan.
func (ctrl *RekapController) GetRekapBulanan(c *fiber.Ctx) error {
	tahun, _, err := parseTahunBulan(c, false)
	if err != nil {
		return err
	}

	var rows []dto.RekapBulananRow
	e := ctrl.DB.Table("kelompok_perencanaan AS k").
		Select(`CAST(EXTRACT(MONTH FROM s.tanggal_mulai) AS int) AS bulan,
			COUNT(DISTINCT k.id_mitra) AS jumlah_mitra,
			COALESCE(SUM(k.volume_tugas * h.tarif), 0) AS total_honor`).
		Joins("JOIN perencanaan p ON p.id = k.id_perencanaan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN honorarium h ON h.id_subkegiatan = s.id AND h.kode_jabatan = k.kode_jabatan").
		Where("EXTRACT(YEAR FROM s.tanggal_mulai) = ?", tahun).
		Group("EXTRACT(MONTH FROM s.tanggal_mulai)").
		Order("bulan ASC").
		Scan(&rows).Error
	if e != nil {
		log.Println("[ERROR] Gagal ambil rekap bulanan:", e)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil rekap bulanan")
	}

	for i := range rows {
		rows[i].NamaBulan = service.NamaBulan(rows[i].Bulan)
	}
	return helper.JsonList(c, "Rekap bulanan tahun "+tahun, rows, nil)
}

// =============================
// 👤 Rekap perencanaan per mitra dalam satu bulan
// =============================
func (ctrl *RekapController) GetRekapMitra(c *fiber.Ctx) error {
	tahun, bulan, err := parseTahunBulan(c, true)
	if err != nil {
		return err
	}

	var rows []dto.RekapMitraRow
	e := ctrl.DB.Table("kelompok_perencanaan AS k").
		Select(`m.id AS id_mitra, m.nama_lengkap, m.nik, m.sobat_id,
			COUNT(k.id) AS jumlah_tugas,
			COALESCE(SUM(k.volume_tugas * h.tarif), 0) AS total_honor`).
		Joins("JOIN perencanaan p ON p.id = k.id_perencanaan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN mitra m ON m.id = k.id_mitra").
		Joins("JOIN honorarium h ON h.id_subkegiatan = s.id AND h.kode_jabatan = k.kode_jabatan").
		Where("EXTRACT(YEAR FROM s.tanggal_mulai) = ?", tahun).
		Where("EXTRACT(MONTH FROM s.tanggal_mulai) = ?", bulan).
		Group("m.id, m.nama_lengkap, m.nik, m.sobat_id").
		Order("total_honor DESC").
		Scan(&rows).Error
	if e != nil {
		log.Println("[ERROR] Gagal ambil rekap mitra:", e)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil rekap mitra")
	}

	return helper.JsonList(c,
		"Rekap mitra "+service.NamaBulan(bulan)+" "+tahun, rows, nil)
}

// =============================
// 🔍 Rincian tugas satu mitra dalam satu bulan
// =============================
func (ctrl *RekapController) GetRekapDetail(c *fiber.Ctx) error {
	tahun, bulan, err := parseTahunBulan(c, true)
	if err != nil {
		return err
	}
	idMitra := c.Params("idMitra")

	var rows []dto.RekapDetailRow
	e := ctrl.DB.Table("kelompok_perencanaan AS k").
		Select(`s.id AS id_subkegiatan, s.nama_sub, g.nama_kegiatan,
			k.kode_jabatan, j.nama_jabatan, k.volume_tugas,
			COALESCE(h.tarif, 0) AS tarif,
			k.volume_tugas * COALESCE(h.tarif, 0) AS total_honor`).
		Joins("JOIN perencanaan p ON p.id = k.id_perencanaan").
		Joins("JOIN subkegiatan s ON s.id = p.id_subkegiatan").
		Joins("JOIN kegiatan g ON g.id = s.id_kegiatan").
		Joins("JOIN jabatan_mitra j ON j.kode_jabatan = k.kode_jabatan").
		Joins("LEFT JOIN honorarium h ON h.id_subkegiatan = s.id AND h.kode_jabatan = k.kode_jabatan").
		Where("k.id_mitra = ?", idMitra).
		Where("EXTRACT(YEAR FROM s.tanggal_mulai) = ?", tahun).
		Where("EXTRACT(MONTH FROM s.tanggal_mulai) = ?", bulan).
		Order("s.id ASC").
		Scan(&rows).Error
	if e != nil {
		log.Println("[ERROR] Gagal ambil rekap detail:", e)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil rekap detail")
	}

	return helper.JsonList(c, "", rows, nil)
}
