package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kegiatanModel "simitra_backend/internals/features/kegiatan/kegiatan/model"
	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
	mitraModel "simitra_backend/internals/features/mitra/model"
	"simitra_backend/internals/features/roster/perencanaan/dto"
	"simitra_backend/internals/features/roster/perencanaan/model"
	helper "simitra_backend/internals/helpers"
)

var validatePerencanaan = validator.New()

type PerencanaanController struct {
	DB *gorm.DB
}

func NewPerencanaanController(db *gorm.DB) *PerencanaanController {
	return &PerencanaanController{DB: db}
}

// =============================
// 📄 List header perencanaan
// =============================
func (ctrl *PerencanaanController) GetAllPerencanaan(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Kelompok")
	if idSub := c.Query("id_subkegiatan"); idSub != "" {
		q = q.Where("id_subkegiatan = ?", idSub)
	}

	var items []model.PerencanaanModel
	if err := q.Order("id DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil perencanaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data perencanaan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *PerencanaanController) GetPerencanaanByID(c *fiber.Ctx) error {
	var item model.PerencanaanModel
	if err := ctrl.DB.Preload("Kelompok").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perencanaan tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create header (+ anggota awal opsional, satu transaksi)
// =============================
// Maks satu perencanaan per subkegiatan: pre-check → 409.
func (ctrl *PerencanaanController) CreatePerencanaan(c *fiber.Ctx) error {
	var body dto.CreatePerencanaanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePerencanaan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sub kegiatanModel.SubkegiatanModel
	if err := ctrl.DB.First(&sub, "id = ?", body.IDSubkegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.PerencanaanModel{}).
		Where("id_subkegiatan = ?", body.IDSubkegiatan).
		Count(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal cek perencanaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat perencanaan")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Perencanaan untuk subkegiatan "+body.IDSubkegiatan+" sudah ada")
	}

	header := model.PerencanaanModel{
		IDSubkegiatan: body.IDSubkegiatan,
		IDPengawas:    body.IDPengawas,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		for _, anggota := range body.Kelompok {
			if err := validateAnggota(tx, anggota.IDMitra, anggota.KodeJabatan); err != nil {
				return err
			}
			row := model.KelompokPerencanaanModel{
				IDPerencanaan: header.ID,
				IDMitra:       anggota.IDMitra,
				KodeJabatan:   anggota.KodeJabatan,
				VolumeTugas:   anggota.VolumeTugas,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal create perencanaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat perencanaan: "+err.Error())
	}

	ctrl.DB.Preload("Kelompok").First(&header, header.ID)
	return helper.JsonCreated(c, "Perencanaan berhasil dibuat", header)
}

func validateAnggota(tx *gorm.DB, idMitra uint, kodeJabatan string) error {
	var mitra mitraModel.MitraModel
	if err := tx.First(&mitra, idMitra).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("mitra tidak ditemukan")
		}
		return err
	}
	var jabatan referensiModel.JabatanMitraModel
	if err := tx.First(&jabatan, "kode_jabatan = ?", kodeJabatan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("jabatan " + kodeJabatan + " tidak ditemukan")
		}
		return err
	}
	return nil
}

// =============================
// 👥 Get anggota + honor turunan (volume × tarif)
// =============================
func (ctrl *PerencanaanController) GetAnggota(c *fiber.Ctx) error {
	var header model.PerencanaanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perencanaan tidak ditemukan")
	}

	var rows []dto.AnggotaHonorRow
	err := ctrl.DB.Table("kelompok_perencanaan AS k").
		Select(`k.id, k.id_mitra, m.nama_lengkap, m.nik, m.sobat_id,
			k.kode_jabatan, j.nama_jabatan, k.volume_tugas,
			COALESCE(h.tarif, 0) AS tarif,
			k.volume_tugas * COALESCE(h.tarif, 0) AS total_honor`).
		Joins("JOIN mitra m ON m.id = k.id_mitra").
		Joins("JOIN jabatan_mitra j ON j.kode_jabatan = k.kode_jabatan").
		Joins("LEFT JOIN honorarium h ON h.id_subkegiatan = ? AND h.kode_jabatan = k.kode_jabatan", header.IDSubkegiatan).
		Where("k.id_perencanaan = ?", header.ID).
		Order("m.nama_lengkap ASC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] Gagal ambil anggota perencanaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil anggota")
	}

	return helper.JsonList(c, "", rows, nil)
}

// =============================
// ➕ Tambah satu anggota (duplikat → 400)
// =============================
// Cek duplikat bersifat advisory; race antar request paralel tetap
// tertangkap unique index (idx_perencanaan_mitra).
func (ctrl *PerencanaanController) AddAnggota(c *fiber.Ctx) error {
	var header model.PerencanaanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perencanaan tidak ditemukan")
	}

	var body dto.AnggotaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePerencanaan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := validateAnggota(ctrl.DB, body.IDMitra, body.KodeJabatan); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}

	var dup int64
	if err := ctrl.DB.Model(&model.KelompokPerencanaanModel{}).
		Where("id_perencanaan = ? AND id_mitra = ?", header.ID, body.IDMitra).
		Count(&dup).Error; err != nil {
		log.Println("[ERROR] Gagal cek duplikat anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mitra sudah terdaftar di perencanaan ini")
	}

	row := model.KelompokPerencanaanModel{
		IDPerencanaan: header.ID,
		IDMitra:       body.IDMitra,
		KodeJabatan:   body.KodeJabatan,
		VolumeTugas:   body.VolumeTugas,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal tambah anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", row)
}

// =============================
// 🔄 Update anggota (jabatan/volume)
// =============================
func (ctrl *PerencanaanController) UpdateAnggota(c *fiber.Ctx) error {
	var row model.KelompokPerencanaanModel
	if err := ctrl.DB.
		Where("id_perencanaan = ? AND id = ?", c.Params("id"), c.Params("anggotaId")).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	var body dto.UpdateAnggotaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePerencanaan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.KodeJabatan != nil {
		var jabatan referensiModel.JabatanMitraModel
		if err := ctrl.DB.First(&jabatan, "kode_jabatan = ?", *body.KodeJabatan).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
		}
		row.KodeJabatan = *body.KodeJabatan
	}
	if body.VolumeTugas != nil {
		row.VolumeTugas = *body.VolumeTugas
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update anggota")
	}
	return helper.JsonUpdated(c, "Anggota berhasil diupdate", row)
}

func (ctrl *PerencanaanController) DeleteAnggota(c *fiber.Ctx) error {
	var row model.KelompokPerencanaanModel
	if err := ctrl.DB.
		Where("id_perencanaan = ? AND id = ?", c.Params("id"), c.Params("anggotaId")).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus anggota")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"id": row.ID})
}

// =============================
// 🗑️ Delete header (anggota ikut terhapus)
// =============================
func (ctrl *PerencanaanController) DeletePerencanaan(c *fiber.Ctx) error {
	var header model.PerencanaanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Perencanaan tidak ditemukan")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_perencanaan = ?", header.ID).
			Delete(&model.KelompokPerencanaanModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&header).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus perencanaan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus perencanaan")
	}
	return helper.JsonDeleted(c, "Perencanaan berhasil dihapus", fiber.Map{"id": header.ID})
}
