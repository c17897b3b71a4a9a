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

	kegiatanModel "simitra_backend/internals/features/kegiatan/kegiatan/model"
	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
	mitraModel "simitra_backend/internals/features/mitra/model"
	"simitra_backend/internals/features/roster/penugasan/dto"
	"simitra_backend/internals/features/roster/penugasan/model"
	"simitra_backend/internals/features/roster/penugasan/service"
	perencanaanDto "simitra_backend/internals/features/roster/perencanaan/dto"
	helper "simitra_backend/internals/helpers"
	"simitra_backend/internals/helpers/importer"
)

var validatePenugasan = validator.New()

type PenugasanController struct {
	DB *gorm.DB
}

func NewPenugasanController(db *gorm.DB) *PenugasanController {
	return &PenugasanController{DB: db}
}

// =============================
// 📄 List & detail
// =============================
func (ctrl *PenugasanController) GetAllPenugasan(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("Kelompok")
	if idSub := c.Query("id_subkegiatan"); idSub != "" {
		q = q.Where("id_subkegiatan = ?", idSub)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status_penugasan = ?", status)
	}

	var items []model.PenugasanModel
	if err := q.Order("id DESC").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data penugasan")
	}
	return helper.JsonList(c, "", items, nil)
}

func (ctrl *PenugasanController) GetPenugasanByID(c *fiber.Ctx) error {
	var item model.PenugasanModel
	if err := ctrl.DB.Preload("Kelompok").
		First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}
	return helper.JsonOK(c, "", item)
}

// =============================
// ➕ Create header (+ anggota awal opsional, satu transaksi)
// =============================
func (ctrl *PenugasanController) CreatePenugasan(c *fiber.Ctx) error {
	var body dto.CreatePenugasanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePenugasan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var sub kegiatanModel.SubkegiatanModel
	if err := ctrl.DB.First(&sub, "id = ?", body.IDSubkegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}

	var existing int64
	if err := ctrl.DB.Model(&model.PenugasanModel{}).
		Where("id_subkegiatan = ?", body.IDSubkegiatan).
		Count(&existing).Error; err != nil {
		log.Println("[ERROR] Gagal cek penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat penugasan")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"Penugasan untuk subkegiatan "+body.IDSubkegiatan+" sudah ada")
	}

	header := model.PenugasanModel{
		IDSubkegiatan:   body.IDSubkegiatan,
		IDPengawas:      body.IDPengawas,
		StatusPenugasan: model.StatusMenunggu,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		for _, anggota := range body.Kelompok {
			if err := validateAnggotaPenugasan(tx, anggota.IDMitra, anggota.KodeJabatan); err != nil {
				return err
			}
			row := model.KelompokPenugasanModel{
				IDPenugasan: header.ID,
				IDMitra:     anggota.IDMitra,
				KodeJabatan: anggota.KodeJabatan,
				VolumeTugas: anggota.VolumeTugas,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Gagal create penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat penugasan: "+err.Error())
	}

	ctrl.DB.Preload("Kelompok").First(&header, header.ID)
	return helper.JsonCreated(c, "Penugasan berhasil dibuat", header)
}

func validateAnggotaPenugasan(tx *gorm.DB, idMitra uint, kodeJabatan string) error {
	var mitra mitraModel.MitraModel
	if err := tx.First(&mitra, idMitra).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("mitra tidak ditemukan")
		}
		return err
	}
	var jabatan referensiModel.JabatanMitraModel
	if err := tx.First(&jabatan, "kode_jabatan = ?", kodeJabatan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("jabatan " + kodeJabatan + " tidak ditemukan")
		}
		return err
	}
	return nil
}

// =============================
// 👥 Get anggota + honor turunan (volume × tarif)
// =============================
func (ctrl *PenugasanController) GetAnggota(c *fiber.Ctx) error {
	var header model.PenugasanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}

	var rows []perencanaanDto.AnggotaHonorRow
	err := ctrl.DB.Table("kelompok_penugasan AS k").
		Select(`k.id, k.id_mitra, m.nama_lengkap, m.nik, m.sobat_id,
			k.kode_jabatan, j.nama_jabatan, k.volume_tugas,
			COALESCE(h.tarif, 0) AS tarif,
			k.volume_tugas * COALESCE(h.tarif, 0) AS total_honor`).
		Joins("JOIN mitra m ON m.id = k.id_mitra").
		Joins("JOIN jabatan_mitra j ON j.kode_jabatan = k.kode_jabatan").
		Joins("LEFT JOIN honorarium h ON h.id_subkegiatan = ? AND h.kode_jabatan = k.kode_jabatan", header.IDSubkegiatan).
		Where("k.id_penugasan = ?", header.ID).
		Order("m.nama_lengkap ASC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] Gagal ambil anggota penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil anggota")
	}

	return helper.JsonList(c, "", rows, nil)
}

// =============================
// ➕ Tambah satu anggota (duplikat → 400)
// =============================
func (ctrl *PenugasanController) AddAnggota(c *fiber.Ctx) error {
	var header model.PenugasanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}

	var body dto.AnggotaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePenugasan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := validateAnggotaPenugasan(ctrl.DB, body.IDMitra, body.KodeJabatan); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}

	var dup int64
	if err := ctrl.DB.Model(&model.KelompokPenugasanModel{}).
		Where("id_penugasan = ? AND id_mitra = ?", header.ID, body.IDMitra).
		Count(&dup).Error; err != nil {
		log.Println("[ERROR] Gagal cek duplikat anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Mitra sudah terdaftar di penugasan ini")
	}

	row := model.KelompokPenugasanModel{
		IDPenugasan: header.ID,
		IDMitra:     body.IDMitra,
		KodeJabatan: body.KodeJabatan,
		VolumeTugas: body.VolumeTugas,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal tambah anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", row)
}

// =============================
// 🔄 Update anggota (jabatan/volume)
// =============================
func (ctrl *PenugasanController) UpdateAnggota(c *fiber.Ctx) error {
	var row model.KelompokPenugasanModel
	if err := ctrl.DB.
		Where("id_penugasan = ? AND id = ?", c.Params("id"), c.Params("anggotaId")).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	var body dto.UpdateAnggotaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePenugasan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if body.KodeJabatan != nil {
		var jabatan referensiModel.JabatanMitraModel
		if err := ctrl.DB.First(&jabatan, "kode_jabatan = ?", *body.KodeJabatan).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Jabatan tidak ditemukan")
		}
		row.KodeJabatan = *body.KodeJabatan
	}
	if body.VolumeTugas != nil {
		row.VolumeTugas = *body.VolumeTugas
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update anggota")
	}
	return helper.JsonUpdated(c, "Anggota berhasil diupdate", row)
}

func (ctrl *PenugasanController) DeleteAnggota(c *fiber.Ctx) error {
	var row model.KelompokPenugasanModel
	if err := ctrl.DB.
		Where("id_penugasan = ? AND id = ?", c.Params("id"), c.Params("anggotaId")).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus anggota:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus anggota")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"id": row.ID})
}

// =============================
// 🗑️ Delete header
// =============================
func (ctrl *PenugasanController) DeletePenugasan(c *fiber.Ctx) error {
	var header model.PenugasanModel
	if err := ctrl.DB.First(&header, "id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Penugasan tidak ditemukan")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_penugasan = ?", header.ID).
			Delete(&model.KelompokPenugasanModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&header).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal hapus penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus penugasan")
	}
	return helper.JsonDeleted(c, "Penugasan berhasil dihapus", fiber.Map{"id": header.ID})
}

// =============================
// ✅ Approval: menunggu → disetujui
// =============================
func (ctrl *PenugasanController) ApprovePenugasan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID penugasan tidak valid")
	}

	penugasan, err := service.Approve(ctrl.DB, uint(id))
	if err != nil {
		if err.Error() == "penugasan tidak ditemukan" {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		log.Println("[ERROR] Gagal approve penugasan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui penugasan")
	}
	return helper.JsonUpdated(c, "Penugasan disetujui", penugasan)
}

// =============================
// ⬆️ Promosi dari perencanaan (idempotent)
// =============================
func (ctrl *PenugasanController) ImportFromPerencanaan(c *fiber.Ctx) error {
	var body struct {
		IDPerencanaan []uint `json:"id_perencanaan" validate:"required,min=1"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePenugasan.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	results := make([]model.PenugasanModel, 0, len(body.IDPerencanaan))
	for _, id := range body.IDPerencanaan {
		penugasan, err := service.PromoteFromPerencanaan(ctrl.DB, id)
		if err != nil {
			if err.Error() == "perencanaan tidak ditemukan" {
				return helper.JsonError(c, fiber.StatusNotFound,
					"Perencanaan dengan ID "+strconv.Itoa(int(id))+" tidak ditemukan")
			}
			log.Println("[ERROR] Gagal promosi perencanaan:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal promosi perencanaan: "+err.Error())
		}
		results = append(results, *penugasan)
	}
	return helper.JsonOK(c, "Promosi perencanaan berhasil", results)
}

// =============================
// 🔎 Preview import kandidat anggota (dry-run)
// =============================
// Kolom file: sobat_id, jabatan (teks bebas), volume. Tidak ada yang
// disimpan; konfirmasi lewat AddAnggota / CreatePenugasan.
func (ctrl *PenugasanController) PreviewImport(c *fiber.Ctx) error {
	idSubkegiatan := c.Params("idSubkegiatan")
	var sub kegiatanModel.SubkegiatanModel
	if err := ctrl.DB.First(&sub, "id = ?", idSubkegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subkegiatan tidak ditemukan")
	}

	tahun := c.FormValue("tahun")
	if tahun == "" {
		tahun = strconv.Itoa(time.Now().Year())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan di form")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer f.Close()

	rows, err := importer.ReadRows(fileHeader.Filename, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file: "+err.Error())
	}
	if len(rows) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "File kosong atau hanya berisi header")
	}

	header := rows[0]
	colSobat := importer.FindColumn(header, "sobat_id", "sobat id", "id sobat", "sobatid")
	colJabatan := importer.FindColumn(header, "jabatan", "posisi", "nama jabatan")
	colVolume := importer.FindColumn(header, "volume", "volume_tugas", "volume tugas", "target")
	if colSobat < 0 || colJabatan < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kolom sobat_id / jabatan tidak ditemukan di header file")
	}

	candidates := make([]service.CandidateRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if importer.IsBlankRow(row) {
			continue
		}
		volume := 0
		if colVolume >= 0 {
			volume, _ = strconv.Atoi(strings.TrimSpace(importer.Cell(row, colVolume)))
		}
		candidates = append(candidates, service.CandidateRow{
			Baris:   i + 2,
			SobatID: importer.Cell(row, colSobat),
			Jabatan: importer.Cell(row, colJabatan),
			Volume:  volume,
		})
	}

	resp, err := service.PreviewImport(ctrl.DB, idSubkegiatan, tahun, candidates)
	if err != nil {
		log.Println("[ERROR] Gagal preview import:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal preview import")
	}
	return helper.JsonOK(c,
		"Preview import: "+strconv.Itoa(len(resp.Valid))+" baris valid, "+
			strconv.Itoa(len(resp.Warnings))+" peringatan", resp)
}
