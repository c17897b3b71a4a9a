package dto

// ============================
// Jabatan Mitra
// ============================

type CreateJabatanRequest struct {
	KodeJabatan string `json:"kode_jabatan" validate:"required,min=2,max=20"`
	NamaJabatan string `json:"nama_jabatan" validate:"required,min=3"`
}

type UpdateJabatanRequest struct {
	NamaJabatan string `json:"nama_jabatan" validate:"required,min=3"`
}

// ============================
// Satuan Kegiatan
// ============================

type CreateSatuanRequest struct {
	NamaSatuan string `json:"nama_satuan" validate:"required,min=2"`
	Alias      string `json:"alias"`
}

type UpdateSatuanRequest struct {
	NamaSatuan *string `json:"nama_satuan" validate:"omitempty,min=2"`
	Alias      *string `json:"alias"`
}

// ============================
// Aturan Periode
// ============================

type CreateAturanPeriodeRequest struct {
	Periode    string  `json:"periode" validate:"required,len=4,numeric"`
	BatasHonor float64 `json:"batas_honor" validate:"required,gt=0"`
}

type UpdateAturanPeriodeRequest struct {
	BatasHonor float64 `json:"batas_honor" validate:"required,gt=0"`
}
