package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/kegiatan/dto"
	"simitra_backend/internals/features/kegiatan/kegiatan/model"
	helper "simitra_backend/internals/helpers"
)

var validateKegiatan = validator.New()

type KegiatanController struct {
	DB *gorm.DB
}

func NewKegiatanController(db *gorm.DB) *KegiatanController {
	return &KegiatanController{DB: db}
}

// =============================
// 📄 List kegiatan
// =============================
func (ctrl *KegiatanController) GetAllKegiatan(c *fiber.Ctx) error {
	var items []model.KegiatanModel
	if err := ctrl.DB.Order("nama_kegiatan ASC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data kegiatan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *KegiatanController) GetKegiatanByID(c *fiber.Ctx) error {
	var item model.KegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create kegiatan
// =============================
func (ctrl *KegiatanController) CreateKegiatan(c *fiber.Ctx) error {
	var body dto.CreateKegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item := model.KegiatanModel{
		NamaKegiatan: body.NamaKegiatan,
		Deskripsi:    body.Deskripsi,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		log.Println("[ERROR] Gagal create kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kegiatan")
	}
	return helper.JsonCreated(c, "Kegiatan berhasil dibuat", item)
}

// =============================
// 🔄 Update kegiatan (partial)
// =============================
func (ctrl *KegiatanController) UpdateKegiatan(c *fiber.Ctx) error {
	var item model.KegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	var body dto.UpdateKegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.NamaKegiatan != nil {
		item.NamaKegiatan = *body.NamaKegiatan
	}
	if body.Deskripsi != nil {
		item.Deskripsi = *body.Deskripsi
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kegiatan")
	}
	return helper.JsonUpdated(c, "Kegiatan berhasil diupdate", item)
}

// =============================
// 🗑️ Delete kegiatan (cascade ke subkegiatan)
// =============================
func (ctrl *KegiatanController) DeleteKegiatan(c *fiber.Ctx) error {
	var item model.KegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	// Subkegiatan (dan roster di bawahnya) ikut terhapus lewat FK CASCADE;
	// dibungkus transaksi supaya tidak ada state setengah jadi.
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_kegiatan = ?", item.ID).
			Delete(&model.SubkegiatanModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus kegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus kegiatan")
	}

	return helper.JsonDeleted(c, "Kegiatan berhasil dihapus", fiber.Map{"id": item.ID})
}
