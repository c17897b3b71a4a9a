package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	honorModel "simitra_backend/internals/features/kegiatan/honorarium/model"
	mitraModel "simitra_backend/internals/features/mitra/model"
	"simitra_backend/internals/features/roster/penugasan/dto"
	"simitra_backend/internals/features/roster/penugasan/model"
)

// CandidateRow: satu baris kandidat anggota dari file upload, sebelum
// validasi. Jabatan berupa teks bebas, dicocokkan ke honorarium subkegiatan.
type CandidateRow struct {
	Baris   int
	SobatID string
	Jabatan string
	Volume  int
}

// JabatanOption: jabatan yang terkonfigurasi di honorarium subkegiatan.
type JabatanOption struct {
	KodeJabatan string
	NamaJabatan string
	Tarif       float64
}

// MatchJabatan mencocokkan teks jabatan bebas ke daftar jabatan honorarium.
// Cocok bila nama atau kode saling mengandung (case-insensitive). Kandidat
// pertama yang cocok yang dipakai.
func MatchJabatan(teks string, opsi []JabatanOption) (JabatanOption, bool) {
	needle := strings.ToLower(strings.TrimSpace(teks))
	if needle == "" {
		return JabatanOption{}, false
	}
	for _, o := range opsi {
		nama := strings.ToLower(o.NamaJabatan)
		kode := strings.ToLower(o.KodeJabatan)
		if nama == needle || kode == needle {
			return o, true
		}
		if strings.Contains(nama, needle) || strings.Contains(needle, nama) {
			return o, true
		}
	}
	return JabatanOption{}, false
}

// PreviewImport memvalidasi kandidat anggota penugasan tanpa menyimpan apa
// pun. Baris valid dikembalikan untuk dikonfirmasi di langkah terpisah,
// sisanya jadi warning.
func PreviewImport(db *gorm.DB, idSubkegiatan, tahun string, rows []CandidateRow) (dto.PreviewImportResponse, error) {
	resp := dto.PreviewImportResponse{
		Valid:    []dto.PreviewAnggotaRow{},
		Warnings: []string{},
	}

	var honor []honorModel.HonorariumModel
	if err := db.Preload("Jabatan").
		Where("id_subkegiatan = ?", idSubkegiatan).
		Find(&honor).Error; err != nil {
		return resp, err
	}
	opsi := make([]JabatanOption, 0, len(honor))
	for _, h := range honor {
		o := JabatanOption{KodeJabatan: h.KodeJabatan, Tarif: h.Tarif}
		if h.Jabatan != nil {
			o.NamaJabatan = h.Jabatan.NamaJabatan
		}
		opsi = append(opsi, o)
	}

	// Anggota yang sudah terdaftar di penugasan subkegiatan ini.
	terdaftar := map[uint]bool{}
	var existing model.PenugasanModel
	err := db.Preload("Kelompok").
		Where("id_subkegiatan = ?", idSubkegiatan).
		First(&existing).Error
	if err == nil {
		for _, k := range existing.Kelompok {
			terdaftar[k.IDMitra] = true
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return resp, err
	}

	for _, row := range rows {
		sobatID := strings.TrimSpace(row.SobatID)
		if sobatID == "" {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("Baris %d: sobat_id kosong", row.Baris))
			continue
		}

		var mitra mitraModel.MitraModel
		if err := db.First(&mitra, "sobat_id = ?", sobatID).Error; err != nil {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("Baris %d: mitra dengan sobat_id %s tidak ditemukan", row.Baris, sobatID))
			continue
		}

		var aktif int64
		if err := db.Model(&mitraModel.TahunAktifModel{}).
			Where("id_mitra = ? AND tahun = ? AND status = ?", mitra.ID, tahun, mitraModel.StatusAktif).
			Count(&aktif).Error; err != nil {
			return resp, err
		}
		if aktif == 0 {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("Baris %d: mitra %s tidak aktif tahun %s", row.Baris, mitra.NamaLengkap, tahun))
			continue
		}

		jabatan, ok := MatchJabatan(row.Jabatan, opsi)
		if !ok {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("Baris %d: jabatan %q tidak cocok dengan honorarium subkegiatan", row.Baris, row.Jabatan))
			continue
		}

		if terdaftar[mitra.ID] {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("Baris %d: mitra %s sudah terdaftar di penugasan", row.Baris, mitra.NamaLengkap))
			continue
		}

		resp.Valid = append(resp.Valid, dto.PreviewAnggotaRow{
			Baris:       row.Baris,
			SobatID:     sobatID,
			NamaLengkap: mitra.NamaLengkap,
			IDMitra:     mitra.ID,
			KodeJabatan: jabatan.KodeJabatan,
			NamaJabatan: jabatan.NamaJabatan,
			VolumeTugas: row.Volume,
			Tarif:       jabatan.Tarif,
		})
	}

	return resp, nil
}
