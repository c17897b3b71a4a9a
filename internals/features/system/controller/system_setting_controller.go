package controller

import (
	"errors"
	"io"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/system/model"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/imagex"
)

var validateSystem = validator.New()

type SystemSettingController struct {
	DB *gorm.DB
}

func NewSystemSettingController(db *gorm.DB) *SystemSettingController {
	return &SystemSettingController{DB: db}
}

// =============================
// 🌐 Public: key branding saja
// =============================
func (ctrl *SystemSettingController) GetPublicSettings(c *fiber.Ctx) error {
	var items []model.SystemSettingModel
	if err := ctrl.DB.Where("key IN ?", model.PublicKeys).Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil system settings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil pengaturan")
	}

	out := fiber.Map{}
	for _, s := range items {
		out[s.Key] = s.Value
	}
	return helper.JsonOK(c, "", out)
}

// =============================
// 🔐 Admin: semua key
// =============================
func (ctrl *SystemSettingController) GetAllSettings(c *fiber.Ctx) error {
	var items []model.SystemSettingModel
	if err := ctrl.DB.Order("key ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil system settings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil pengaturan")
	}
	return helper.JsonList(c, "", items, nil)
}

type upsertSettingRequest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"required"`
}

// UpsertSetting membuat atau menimpa satu key.
func (ctrl *SystemSettingController) UpsertSetting(c *fiber.Ctx) error {
	var body upsertSettingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSystem.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	setting, err := ctrl.upsert(body.Key, body.Value)
	if err != nil {
		log.Println("[ERROR] Gagal simpan setting:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan "+body.Key+" berhasil disimpan", setting)
}

func (ctrl *SystemSettingController) upsert(key, value string) (*model.SystemSettingModel, error) {
	var setting model.SystemSettingModel
	err := ctrl.DB.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = model.SystemSettingModel{Key: key, Value: value}
		if err := ctrl.DB.Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	setting.Value = value
	if err := ctrl.DB.Save(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// =============================
// 🖼️ Upload logo / background (resize + webp)
// =============================
// Form: file + key (logo atau background). Path hasil disimpan sebagai
// value key tersebut.
func (ctrl *SystemSettingController) UploadImage(c *fiber.Ctx) error {
	key := c.FormValue("key")
	if key != model.KeyLogo && key != model.KeyBackground {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key harus logo atau background")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form")
	}
	if fileHeader.Size > imagex.MaxUploadSize() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ukuran file melebihi batas 5MB")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file")
	}

	path, err := imagex.SaveWebP("branding", fileHeader.Filename, raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal memproses gambar: "+err.Error())
	}

	setting, err := ctrl.upsert(key, path)
	if err != nil {
		log.Println("[ERROR] Gagal simpan path gambar:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}
	return helper.JsonUpdated(c, "Gambar "+key+" berhasil diupload", setting)
}
