package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simitra_backend/internals/features/mitra/dto"
	"simitra_backend/internals/features/mitra/model"
	"simitra_backend/internals/features/mitra/service"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/importer"
)

var validateMitra = validator.New()

type MitraController struct {
	DB *gorm.DB
}

func NewMitraController(db *gorm.DB) *MitraController {
	return &MitraController{DB: db}
}

func parseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// =============================
// 🔍 Search mitra (free-text nama/nik/sobat_id)
// =============================
func (ctrl *MitraController) SearchMitra(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.MitraModel{}).Preload("TahunAktif")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(nama_lengkap) LIKE ? OR nik LIKE ? OR LOWER(sobat_id) LIKE ?",
			like, "%"+search+"%", like)
	}

	var items []model.MitraModel
	if err := q.Order("nama_lengkap ASC").Limit(50).Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal cari mitra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari mitra")
	}
	return helper.JsonList(c, "", items, nil)
}

// =============================
// 📄 List mitra per tahun (paginated + meta total aktif)
// =============================
func (ctrl *MitraController) GetMitraByTahun(c *fiber.Ctx) error {
	tahun := strings.TrimSpace(c.Query("tahun"))
	if tahun == "" {
		tahun = strconv.Itoa(time.Now().Year())
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Model(&model.MitraModel{}).
		Joins("JOIN tahun_aktif ON tahun_aktif.id_mitra = mitra.id").
		Where("tahun_aktif.tahun = ? AND tahun_aktif.status = ?", tahun, model.StatusAktif)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(mitra.nama_lengkap) LIKE ? OR mitra.nik LIKE ? OR LOWER(mitra.sobat_id) LIKE ?",
			like, "%"+search+"%", like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung mitra aktif:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data mitra")
	}

	var items []model.MitraModel
	if err := base.Session(&gorm.Session{}).
		Order("mitra.nama_lengkap ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil mitra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data mitra")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Total "+strconv.FormatInt(total, 10)+" mitra aktif tahun "+tahun, items, pagination)
}

func (ctrl *MitraController) GetMitraByID(c *fiber.Ctx) error {
	var item model.MitraModel
	if err := ctrl.DB.Preload("TahunAktif").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create mitra (upsert by NIK + aktivasi tahun, satu transaksi)
// =============================
// NIK yang sudah terdaftar TIDAK ditolak: field ditimpa payload terbaru dan
// aktivasi tahun dipastikan ada. Dua-duanya balas 201.
func (ctrl *MitraController) CreateMitra(c *fiber.Ctx) error {
	var body dto.CreateMitraRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMitra.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	tahun := body.Tahun
	if tahun == "" {
		tahun = strconv.Itoa(time.Now().Year())
	}

	input := model.MitraModel{
		NamaLengkap:  body.NamaLengkap,
		NIK:          body.NIK,
		SobatID:      body.SobatID,
		Alamat:       body.Alamat,
		NomorHP:      body.NomorHP,
		Email:        body.Email,
		JenisKelamin: body.JenisKelamin,
		TanggalLahir: parseDate(body.TanggalLahir),
		Pendidikan:   body.Pendidikan,
		Pekerjaan:    body.Pekerjaan,
	}

	var saved model.MitraModel
	var created bool
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		saved, created, txErr = service.UpsertMitraByNIK(tx, input, tahun)
		return txErr
	})
	if err != nil {
		log.Println("[ERROR] Gagal simpan mitra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mitra")
	}

	msg := "Mitra berhasil diperbarui"
	if created {
		msg = "Mitra berhasil didaftarkan"
	}
	return helper.JsonCreated(c, msg, saved)
}

// =============================
// 🔄 Update mitra (partial, NIK tidak bisa diganti)
// =============================
func (ctrl *MitraController) UpdateMitra(c *fiber.Ctx) error {
	var item model.MitraModel
	if err := ctrl.DB.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
	}

	var body dto.UpdateMitraRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMitra.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.NamaLengkap != nil {
		item.NamaLengkap = *body.NamaLengkap
	}
	if body.SobatID != nil {
		item.SobatID = *body.SobatID
	}
	if body.Alamat != nil {
		item.Alamat = *body.Alamat
	}
	if body.NomorHP != nil {
		item.NomorHP = *body.NomorHP
	}
	if body.Email != nil {
		item.Email = *body.Email
	}
	if body.JenisKelamin != nil {
		item.JenisKelamin = *body.JenisKelamin
	}
	if body.TanggalLahir != nil {
		item.TanggalLahir = parseDate(*body.TanggalLahir)
	}
	if body.Pendidikan != nil {
		item.Pendidikan = *body.Pendidikan
	}
	if body.Pekerjaan != nil {
		item.Pekerjaan = *body.Pekerjaan
	}

	if err := ctrl.DB.Save(&item).Error; err != nil {
		log.Println("[ERROR] Gagal update mitra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update mitra")
	}
	return helper.JsonUpdated(c, "Mitra berhasil diupdate", item)
}

// =============================
// 🗑️ Delete mitra (semantik ganda per ?tahun=)
// =============================
func (ctrl *MitraController) DeleteMitra(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID mitra tidak valid")
	}
	tahun := strings.TrimSpace(c.Query("tahun"))

	mode, err := service.DeleteMitraTahun(ctrl.DB, uint(id), tahun)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
		}
		log.Println("[ERROR] Gagal hapus mitra:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus mitra")
	}

	if mode == service.DeleteModeTahun {
		return helper.JsonDeleted(c, "Aktivasi tahun "+tahun+" berhasil dihapus", fiber.Map{
			"id":    id,
			"tahun": tahun,
		})
	}
	return helper.JsonDeleted(c, "Mitra berhasil dihapus", fiber.Map{"id": id})
}

// =============================
// ✅ Set status tahun aktif
// =============================
func (ctrl *MitraController) SetTahunAktif(c *fiber.Ctx) error {
	var mitra model.MitraModel
	if err := ctrl.DB.First(&mitra, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Mitra tidak ditemukan")
	}

	var body dto.SetTahunAktifRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMitra.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.TahunAktifModel
	err := ctrl.DB.Where("id_mitra = ? AND tahun = ?", mitra.ID, body.Tahun).First(&row).Error
	switch {
	case err == nil:
		row.Status = body.Status
		if saveErr := ctrl.DB.Save(&row).Error; saveErr != nil {
			log.Println("[ERROR] Gagal update tahun aktif:", saveErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status tahun")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.TahunAktifModel{IDMitra: mitra.ID, Tahun: body.Tahun, Status: body.Status}
		if createErr := ctrl.DB.Create(&row).Error; createErr != nil {
			log.Println("[ERROR] Gagal create tahun aktif:", createErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan status tahun")
		}
	default:
		log.Println("[ERROR] Gagal cek tahun aktif:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan status tahun")
	}

	return helper.JsonUpdated(c, "Status tahun "+body.Tahun+" berhasil disimpan", row)
}

// =============================
// 📥 Import mitra dari spreadsheet
// =============================
func (ctrl *MitraController) ImportMitra(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form field 'file'")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	rows, err := importer.ReadRows(fileHeader.Filename, src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	cols := service.MapMitraColumns(rows[0])
	if cols.NIK < 0 || cols.Nama < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kolom nama/NIK tidak ditemukan di header")
	}

	tahun := strings.TrimSpace(c.FormValue("tahun"))
	if tahun == "" {
		tahun = strconv.Itoa(time.Now().Year())
	}

	report, err := service.ImportMitra(ctrl.DB, rows, tahun)
	if err != nil {
		log.Println("[ERROR] Import mitra gagal total:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal, seluruh batch dibatalkan")
	}

	return helper.JsonOK(c, "Import selesai", report)
}
