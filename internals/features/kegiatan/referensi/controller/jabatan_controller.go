package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/referensi/dto"
	"simitra_backend/internals/features/kegiatan/referensi/model"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
)

var validateReferensi = validator.New()

type JabatanController struct {
	DB *gorm.DB
}

func NewJabatanController(db *gorm.DB) *JabatanController {
	return &JabatanController{DB: db}
}

func (ctrl *JabatanController) GetAllJabatan(c *fiber.Ctx) error {
	var items []model.JabatanMitraModel
	if err := ctrl.DB.Order("kode_jabatan ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil jabatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data jabatan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *JabatanController) GetJabatanByKode(c *fiber.Ctx) error {
	var item model.JabatanMitraModel
	if err := ctrl.DB.First(&item, "kode_jabatan = ?", c.Params("kode")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

func (ctrl *JabatanController) CreateJabatan(c *fiber.Ctx) error {
	var body dto.CreateJabatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := model.JabatanMitraModel{
		KodeJabatan: body.KodeJabatan,
		NamaJabatan: body.NamaJabatan,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode jabatan sudah terdaftar")
		}
		log.Println("[ERROR] Gagal create jabatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat jabatan")
	}
	return helper.JsonCreated(c, "Jabatan berhasil dibuat", item)
}

func (ctrl *JabatanController) UpdateJabatan(c *fiber.Ctx) error {
	var item model.JabatanMitraModel
	if err := ctrl.DB.First(&item, "kode_jabatan = ?", c.Params("kode")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}

	var body dto.UpdateJabatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item.NamaJabatan = body.NamaJabatan
	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update jabatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update jabatan")
	}
	return helper.JsonUpdated(c, "Jabatan berhasil diupdate", item)
}

// Delete dibiarkan ke DB: kalau masih direferensikan honorarium, FK
// RESTRICT menolak dan kita balas 409 (deteksi reaktif, bukan pre-check).
func (ctrl *JabatanController) DeleteJabatan(c *fiber.Ctx) error {
	var item model.JabatanMitraModel
	if err := ctrl.DB.First(&item, "kode_jabatan = ?", c.Params("kode")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Jabatan masih dipakai oleh honorarium dan tidak bisa dihapus")
		}
		log.Println("[ERROR] Gagal hapus jabatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus jabatan")
	}
	return helper.JsonDeleted(c, "Jabatan berhasil dihapus", fiber.Map{"kode_jabatan": item.KodeJabatan})
}
