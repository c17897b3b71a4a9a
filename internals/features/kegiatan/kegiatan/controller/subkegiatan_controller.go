package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/kegiatan/dto"
	"simitra_backend/internals/features/kegiatan/kegiatan/model"
	"simitra_backend/internals/features/kegiatan/kegiatan/service"
	helper "simitra_backend/internals/helpers"
)

type SubkegiatanController struct {
	DB *gorm.DB
}

func NewSubkegiatanController(db *gorm.DB) *SubkegiatanController {
	return &SubkegiatanController{DB: db}
}

func parseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// =============================
// 📄 List subkegiatan (opsional ?id_kegiatan=)
// =============================
func (ctrl *SubkegiatanController) GetAllSubkegiatan(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Kegiatan").Order("tanggal_mulai ASC")
	if idKegiatan := c.Query("id_kegiatan"); idKegiatan != "" {
		q = q.Where("id_kegiatan = ?", idKegiatan)
	}

	var items []model.SubkegiatanModel
	if err := q.Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil subkegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data subkegiatan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *SubkegiatanController) GetSubkegiatanByID(c *fiber.Ctx) error {
	var item model.SubkegiatanModel
	if err := ctrl.DB.Preload("Kegiatan").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create subkegiatan (id "sub<N>" digenerate)
// =============================
func (ctrl *SubkegiatanController) CreateSubkegiatan(c *fiber.Ctx) error {
	var body dto.CreateSubkegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var kegiatan model.KegiatanModel
	if err := ctrl.DB.First(&kegiatan, "id = ?", body.IDKegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	status := body.Status
	if status == "" {
		status = "berjalan"
	}

	var item model.SubkegiatanModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		id, err := service.NextSubkegiatanID(tx)
		if err != nil {
			return err
		}
		item = model.SubkegiatanModel{
			ID:             id,
			IDKegiatan:     body.IDKegiatan,
			NamaSub:        body.NamaSub,
			TanggalMulai:   parseDate(body.TanggalMulai),
			TanggalSelesai: parseDate(body.TanggalSelesai),
			Status:         status,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal create subkegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subkegiatan")
	}

	return helper.JsonCreated(c, "Subkegiatan berhasil dibuat", item)
}

// =============================
// 🔄 Update subkegiatan (partial)
// =============================
func (ctrl *SubkegiatanController) UpdateSubkegiatan(c *fiber.Ctx) error {
	var item model.SubkegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}

	var body dto.UpdateSubkegiatanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateKegiatan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.IDKegiatan != nil {
		var kegiatan model.KegiatanModel
		if err := ctrl.DB.First(&kegiatan, "id = ?", *body.IDKegiatan).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		item.IDKegiatan = *body.IDKegiatan
	}
	if body.NamaSub != nil {
		item.NamaSub = *body.NamaSub
	}
	if body.TanggalMulai != nil {
		item.TanggalMulai = parseDate(*body.TanggalMulai)
	}
	if body.TanggalSelesai != nil {
		item.TanggalSelesai = parseDate(*body.TanggalSelesai)
	}
	if body.Status != nil {
		item.Status = *body.Status
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update subkegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update subkegiatan")
	}
	return helper.JsonUpdated(c, "Subkegiatan berhasil diupdate", item)
}

func (ctrl *SubkegiatanController) DeleteSubkegiatan(c *fiber.Ctx) error {
	var item model.SubkegiatanModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		log.Println("[ERROR] Gagal hapus subkegiatan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus subkegiatan")
	}
	return helper.JsonDeleted(c, "Subkegiatan berhasil dihapus", fiber.Map{"id": item.ID})
}
