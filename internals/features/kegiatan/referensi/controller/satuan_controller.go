package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/referensi/dto"
	"simitra_backend/internals/features/kegiatan/referensi/model"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
)

type SatuanController struct {
	DB *gorm.DB
}

func NewSatuanController(db *gorm.DB) *SatuanController {
	return &SatuanController{DB: db}
}

func (ctrl *SatuanController) GetAllSatuan(c *fiber.Ctx) error {
	var items []model.SatuanKegiatanModel
	if err := ctrl.DB.Order("nama_satuan ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil satuan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data satuan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *SatuanController) CreateSatuan(c *fiber.Ctx) error {
	var body dto.CreateSatuanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := model.SatuanKegiatanModel{
		NamaSatuan: body.NamaSatuan,
		Alias:      body.Alias,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama satuan sudah terdaftar")
		}
		log.Println("[ERROR] Gagal create satuan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat satuan")
	}
	return helper.JsonCreated(c, "Satuan berhasil dibuat", item)
}

func (ctrl *SatuanController) UpdateSatuan(c *fiber.Ctx) error {
	var item model.SatuanKegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Satuan tidak ditemukan")
	}

	var body dto.UpdateSatuanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.NamaSatuan != nil {
		item.NamaSatuan = *body.NamaSatuan
	}
	if body.Alias != nil {
		item.Alias = *body.Alias
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama satuan sudah terdaftar")
		}
		log.Println("[ERROR] Gagal update satuan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update satuan")
	}
	return helper.JsonUpdated(c, "Satuan berhasil diupdate", item)
}

func (ctrl *SatuanController) DeleteSatuan(c *fiber.Ctx) error {
	var item model.SatuanKegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Satuan tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Satuan masih dipakai oleh honorarium dan tidak bisa dihapus")
		}
		log.Println("[ERROR] Gagal hapus satuan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus satuan")
	}
	return helper.JsonDeleted(c, "Satuan berhasil dihapus", fiber.Map{"id": item.ID})
}
