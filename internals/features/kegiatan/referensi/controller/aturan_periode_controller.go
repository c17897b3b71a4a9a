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

type AturanPeriodeController struct {
	DB *gorm.DB
}

func NewAturanPeriodeController(db *gorm.DB) *AturanPeriodeController {
	return &AturanPeriodeController{DB: db}
}

func (ctrl *AturanPeriodeController) GetAllAturanPeriode(c *fiber.Ctx) error {
	var items []model.AturanPeriodeModel
	if err := ctrl.DB.Order("periode DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil aturan periode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data aturan periode")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *AturanPeriodeController) GetAturanByTahun(c *fiber.Ctx) error {
	var item model.AturanPeriodeModel
	if err := ctrl.DB.First(&item, "periode = ?", c.Params("tahun")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aturan periode tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

func (ctrl *AturanPeriodeController) CreateAturanPeriode(c *fiber.Ctx) error {
	var body dto.CreateAturanPeriodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := model.AturanPeriodeModel{
		Periode:    body.Periode,
		BatasHonor: body.BatasHonor,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Aturan untuk tahun "+body.Periode+" sudah ada")
		}
		log.Println("[ERROR] Gagal create aturan periode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat aturan periode")
	}
	return helper.JsonCreated(c, "Aturan periode berhasil dibuat", item)
}

func (ctrl *AturanPeriodeController) UpdateAturanPeriode(c *fiber.Ctx) error {
	var item model.AturanPeriodeModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aturan periode tidak ditemukan")
	}

	var body dto.UpdateAturanPeriodeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReferensi.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item.BatasHonor = body.BatasHonor
	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update aturan periode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update aturan periode")
	}
	return helper.JsonUpdated(c, "Aturan periode berhasil diupdate", item)
}

func (ctrl *AturanPeriodeController) DeleteAturanPeriode(c *fiber.Ctx) error {
	var item model.AturanPeriodeModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Aturan periode tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		log.Println("[ERROR] Gagal hapus aturan periode:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus aturan periode")
	}
	return helper.JsonDeleted(c, "Aturan periode berhasil dihapus", fiber.Map{"id": item.ID})
}
