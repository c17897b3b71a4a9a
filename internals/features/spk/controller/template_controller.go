package controller

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/spk/dto"
	"simitra_backend/internals/features/spk/model"
	"simitra_backend/internals/features/spk/service"
	helper "simitra_backend/internals/helpers"
)

var validateSpk = validator.New()

type TemplateSpkController struct {
	DB *gorm.DB
}

func NewTemplateSpkController(db *gorm.DB) *TemplateSpkController {
	return &TemplateSpkController{DB: db}
}

// =============================
// 📄 List & detail template
// =============================
func (ctrl *TemplateSpkController) GetAllTemplate(c *fiber.Ctx) error {
	var items []model.MasterTemplateSpkModel
	if err := ctrl.DB.Order("id DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil template:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data template")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *TemplateSpkController) GetTemplateByID(c *fiber.Ctx) error {
	var item model.MasterTemplateSpkModel
	if err := ctrl.DB.Preload("BagianTeks").
		Preload("Pasal", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// Template aktif untuk render surat di sisi klien.
func (ctrl *TemplateSpkController) GetActiveTemplate(c *fiber.Ctx) error {
	var item model.MasterTemplateSpkModel
	if err := ctrl.DB.Preload("BagianTeks").
		Preload("Pasal", func(db *gorm.DB) *gorm.DB {
			return db.Order("urutan ASC")
		}).
		First(&item, "is_active = ?", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Belum ada template aktif")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create template (+ bagian & pasal, satu transaksi)
// =============================
func (ctrl *TemplateSpkController) CreateTemplate(c *fiber.Ctx) error {
	var body dto.CreateTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpk.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	template := model.MasterTemplateSpkModel{NamaTemplate: body.NamaTemplate}
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		if err := service.UpsertBagianTeks(tx, template.ID, body.BagianTeks); err != nil {
			return err
		}
		return service.ReplacePasal(tx, template.ID, body.Pasal)
	})
	if err != nil {
		log.Println("[ERROR] Gagal create template:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template: "+err.Error())
	}

	ctrl.DB.Preload("BagianTeks").Preload("Pasal").First(&template, template.ID)
	return helper.JsonCreated(c, "Template berhasil dibuat", template)
}

// =============================
// 🔄 Update template (bagian upsert, pasal replace utuh)
// =============================
func (ctrl *TemplateSpkController) UpdateTemplate(c *fiber.Ctx) error {
	var template model.MasterTemplateSpkModel
	if err := ctrl.DB.First(&template, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}

	var body dto.UpdateTemplateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSpk.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if body.NamaTemplate != nil {
			template.NamaTemplate = *body.NamaTemplate
			if err := tx.Save(&template).Error; err != nil {
				return err
			}
		}
		if len(body.BagianTeks) > 0 {
			if err := service.UpsertBagianTeks(tx, template.ID, body.BagianTeks); err != nil {
				return err
			}
		}
		if body.Pasal != nil {
			return service.ReplacePasal(tx, template.ID, body.Pasal)
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal update template:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update template: "+err.Error())
	}

	ctrl.DB.Preload("BagianTeks").Preload("Pasal").First(&template, template.ID)
	return helper.JsonUpdated(c, "Template berhasil diupdate", template)
}

// =============================
// ✅ Set template aktif (deactivate all → activate one)
// =============================
func (ctrl *TemplateSpkController) SetActiveTemplate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	template, err := service.SetActiveTemplate(ctrl.DB, uint(id))
	if err != nil {
		if err.Error() == "template tidak ditemukan" {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Println("[ERROR] Gagal set template aktif:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan template")
	}
	return helper.JsonUpdated(c, "Template "+template.NamaTemplate+" diaktifkan", template)
}

// =============================
// 🗑️ Delete template (bagian & pasal ikut terhapus)
// =============================
func (ctrl *TemplateSpkController) DeleteTemplate(c *fiber.Ctx) error {
	var template model.MasterTemplateSpkModel
	if err := ctrl.DB.First(&template, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", template.ID).
			Delete(&model.TemplateBagianTeksModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", template.ID).
			Delete(&model.TemplatePasalModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus template:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus template")
	}
	return helper.JsonDeleted(c, "Template berhasil dihapus", fiber.Map{"id": template.ID})
}
