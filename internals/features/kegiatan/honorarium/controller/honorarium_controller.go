package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/kegiatan/honorarium/dto"
	"simitra_backend/internals/features/kegiatan/honorarium/model"
	kegiatanModel "simitra_backend/internals/features/kegiatan/kegiatan/model"
	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/dbx"
)

var validateHonorarium = validator.New()

type HonorariumController struct {
	DB *gorm.DB
}

func NewHonorariumController(db *gorm.DB) *HonorariumController {
	return &HonorariumController{DB: db}
}

// =============================
// 📄 List honorarium (opsional ?id_subkegiatan=)
// =============================
func (ctrl *HonorariumController) GetAllHonorarium(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Jabatan").Preload("Satuan")
	if idSub := c.Query("id_subkegiatan"); idSub != "" {
		q = q.Where("id_subkegiatan = ?", idSub)
	}

	var items []model.HonorariumModel
	if err := q.Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil honorarium:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data honorarium")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *HonorariumController) GetHonorariumByID(c *fiber.Ctx) error {
	var item model.HonorariumModel
	if err := ctrl.DB.Preload("Jabatan").Preload("Satuan").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Honorarium tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create honorarium (satu baris per (subkegiatan, jabatan))
// =============================
func (ctrl *HonorariumController) CreateHonorarium(c *fiber.Ctx) error {
	var body dto.CreateHonorariumRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHonorarium.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sub kegiatanModel.SubkegiatanModel
	if err := ctrl.DB.First(&sub, "id = ?", body.IDSubkegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}
	var jabatan referensiModel.JabatanMitraModel
	if err := ctrl.DB.First(&jabatan, "kode_jabatan = ?", body.KodeJabatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
	}
	var satuan referensiModel.SatuanKegiatanModel
	if err := ctrl.DB.First(&satuan, "id = ?", body.IDSatuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Satuan tidak ditemukan")
	}

	item := model.HonorariumModel{
		IDSubkegiatan: body.IDSubkegiatan,
		KodeJabatan:   body.KodeJabatan,
		Tarif:         body.Tarif,
		IDSatuan:      body.IDSatuan,
		BasisVolume:   body.BasisVolume,
		BebanAnggaran: body.BebanAnggaran,
	}
	if err := ctrl.DB.Create(&item).Error; err != nil {
		if dbx.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Honorarium untuk jabatan ini di subkegiatan tersebut sudah ada")
		}
		log.Println("[ERROR] Gagal create honorarium:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat honorarium")
	}
	return helper.JsonCreated(c, "Honorarium berhasil dibuat", item)
}

// =============================
// 🔄 Update honorarium (partial, pasangan sub+jabatan tidak diubah)
// =============================
func (ctrl *HonorariumController) UpdateHonorarium(c *fiber.Ctx) error {
	var item model.HonorariumModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Honorarium tidak ditemukan")
	}

	var body dto.UpdateHonorariumRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHonorarium.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.Tarif != nil {
		item.Tarif = *body.Tarif
	}
	if body.IDSatuan != nil {
		var satuan referensiModel.SatuanKegiatanModel
		if err := ctrl.DB.First(&satuan, "id = ?", *body.IDSatuan).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Satuan tidak ditemukan")
		}
		item.IDSatuan = *body.IDSatuan
	}
	if body.BasisVolume != nil {
		item.BasisVolume = *body.BasisVolume
	}
	if body.BebanAnggaran != nil {
		item.BebanAnggaran = *body.BebanAnggaran
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update honorarium:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update honorarium")
	}
	return helper.JsonUpdated(c, "Honorarium berhasil diupdate", item)
}

func (ctrl *HonorariumController) DeleteHonorarium(c *fiber.Ctx) error {
	var item model.HonorariumModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Honorarium tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&item).Error; err != nil {
		log.Println("[ERROR] Gagal hapus honorarium:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus honorarium")
	}
	return helper.JsonDeleted(c, "Honorarium berhasil dihapus", fiber.Map{"id": item.ID})
}
