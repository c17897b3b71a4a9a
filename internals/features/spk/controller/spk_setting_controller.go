package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/spk/dto"
	"simitra_backend/internals/features/spk/model"
	"simitra_backend/internals/features/spk/service"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
)

type SpkSettingController struct {
	DB *gorm.DB
}

func NewSpkSettingController(db *gorm.DB) *SpkSettingController {
	return &SpkSettingController{DB: db}
}

// =============================
// 📄 List & detail setting
// =============================
func (ctrl *SpkSettingController) GetAllSetting(c *fiber.Ctx) error {
	var items []model.SpkSettingModel
	if err := ctrl.DB.Order("periode DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil setting SPK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data setting SPK")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *SpkSettingController) GetSettingByPeriode(c *fiber.Ctx) error {
	periode := c.Params("periode")
	if !service.ValidPeriode(periode) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format periode tidak valid, gunakan YYYY-MM")
	}

	var item model.SpkSettingModel
	if err := ctrl.DB.Preload("Template").
		First(&item, "periode = ?", periode).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Setting SPK periode "+periode+" tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create setting (periode unik → 409)
// =============================
func (ctrl *SpkSettingController) CreateSetting(c *fiber.Ctx) error {
	var body dto.CreateSpkSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpk.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !service.ValidPeriode(body.Periode) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format periode tidak valid, gunakan YYYY-MM")
	}

	if body.TemplateID != nil {
		var template model.MasterTemplateSpkModel
		if err := ctrl.DB.First(&template, *body.TemplateID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
	}

	item := model.SpkSettingModel{
		Periode:          body.Periode,
		NamaPPK:          body.NamaPPK,
		NipPPK:           body.NipPPK,
		JabatanPPK:       body.JabatanPPK,
		NomorSuratFormat: body.NomorSuratFormat,
		KomponenHonor:    body.KomponenHonor,
		TemplateID:       body.TemplateID,
	}
	if body.TanggalSurat != "" {
		t, err := time.Parse("2006-01-02", body.TanggalSurat)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_surat tidak valid")
		}
		item.TanggalSurat = &t
	}

	if err := ctrl.DB.Create(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Setting SPK periode "+body.Periode+" sudah ada")
		}
		log.Println("[ERROR] Gagal create setting SPK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat setting SPK")
	}
	return helper.JsonCreated(c, "Setting SPK periode "+body.Periode+" berhasil dibuat", item)
}

// =============================
// 🔄 Update setting (partial)
// =============================
func (ctrl *SpkSettingController) UpdateSetting(c *fiber.Ctx) error {
	periode := c.Params("periode")
	if !service.ValidPeriode(periode) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format periode tidak valid, gunakan YYYY-MM")
	}

	var item model.SpkSettingModel
	if err := ctrl.DB.First(&item, "periode = ?", periode).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Setting SPK periode "+periode+" tidak ditemukan")
	}

	var body dto.UpdateSpkSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpk.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.NamaPPK != nil {
		item.NamaPPK = *body.NamaPPK
	}
	if body.NipPPK != nil {
		item.NipPPK = *body.NipPPK
	}
	if body.JabatanPPK != nil {
		item.JabatanPPK = *body.JabatanPPK
	}
	if body.NomorSuratFormat != nil {
		item.NomorSuratFormat = *body.NomorSuratFormat
	}
	if len(body.KomponenHonor) > 0 {
		item.KomponenHonor = body.KomponenHonor
	}
	if body.TemplateID != nil {
		var template model.MasterTemplateSpkModel
		if err := ctrl.DB.First(&template, *body.TemplateID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		item.TemplateID = body.TemplateID
	}
	if body.TanggalSurat != nil {
		t, err := time.Parse("2006-01-02", *body.TanggalSurat)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal_surat tidak valid")
		}
		item.TanggalSurat = &t
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update setting SPK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update setting SPK")
	}
	return helper.JsonUpdated(c, "Setting SPK periode "+periode+" berhasil diupdate", item)
}

func (ctrl *SpkSettingController) DeleteSetting(c *fiber.Ctx) error {
	periode := c.Params("periode")
	if !service.ValidPeriode(periode) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format periode tidak valid, gunakan YYYY-MM")
	}

	var item model.SpkSettingModel
	if err := ctrl.DB.First(&item, "periode = ?", periode).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Setting SPK periode "+periode+" tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		log.Println("[ERROR] Gagal hapus setting SPK:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus setting SPK")
	}
	return helper.JsonDeleted(c, "Setting SPK periode "+periode+" berhasil dihapus", fiber.Map{"id": item.ID})
}
