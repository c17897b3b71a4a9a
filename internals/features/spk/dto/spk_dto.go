package dto

import "gorm.io/datatypes"

// ============================
// Template DTO
// ============================

type BagianTeksRequest struct {
	JenisBagian string `json:"jenis_bagian" validate:"required,oneof=pembuka pihak_pertama pihak_kedua kesepakatan penutup"`
	IsiTeks     string `json:"isi_teks"`
}

type PasalRequest struct {
	NomorPasal string `json:"nomor_pasal"`
	JudulPasal string `json:"judul_pasal" validate:"required"`
	IsiPasal   string `json:"isi_pasal"`
}

type CreateTemplateRequest struct {
	NamaTemplate string              `json:"nama_template" validate:"required,min=3,max=255"`
	BagianTeks   []BagianTeksRequest `json:"bagian_teks" validate:"omitempty,dive"`
	Pasal        []PasalRequest      `json:"pasal" validate:"omitempty,dive"`
}

type UpdateTemplateRequest struct {
	NamaTemplate *string             `json:"nama_template" validate:"omitempty,min=3,max=255"`
	BagianTeks   []BagianTeksRequest `json:"bagian_teks" validate:"omitempty,dive"`
	Pasal        []PasalRequest      `json:"pasal" validate:"omitempty,dive"`
}

// ============================
// Setting DTO
// ============================

type CreateSpkSettingRequest struct {
	Periode          string         `json:"periode" validate:"required"`
	NamaPPK          string         `json:"nama_ppk" validate:"required"`
	NipPPK           string         `json:"nip_ppk"`
	JabatanPPK       string         `json:"jabatan_ppk"`
	TanggalSurat     string         `json:"tanggal_surat" validate:"omitempty,datetime=2006-01-02"`
	NomorSuratFormat string         `json:"nomor_surat_format"`
	KomponenHonor    datatypes.JSON `json:"komponen_honor"`
	TemplateID       *uint          `json:"template_id"`
}

type UpdateSpkSettingRequest struct {
	NamaPPK          *string        `json:"nama_ppk"`
	NipPPK           *string        `json:"nip_ppk"`
	JabatanPPK       *string        `json:"jabatan_ppk"`
	TanggalSurat     *string        `json:"tanggal_surat" validate:"omitempty,datetime=2006-01-02"`
	NomorSuratFormat *string        `json:"nomor_surat_format"`
	KomponenHonor    datatypes.JSON `json:"komponen_honor"`
	TemplateID       *uint          `json:"template_id"`
}
