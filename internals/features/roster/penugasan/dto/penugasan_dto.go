package dto

// ============================
// Request DTO
// ============================

type AnggotaRequest struct {
	IDMitra     uint   `json:"id_mitra" validate:"required"`
	KodeJabatan string `json:"kode_jabatan" validate:"required"`
	// Penugasan minimal volume 1, sudah final.
	VolumeTugas int `json:"volume_tugas" validate:"required,gte=1"`
}

type CreatePenugasanRequest struct {
	IDSubkegiatan string           `json:"id_subkegiatan" validate:"required"`
	IDPengawas    uint             `json:"id_pengawas" validate:"required"`
	Kelompok      []AnggotaRequest `json:"kelompok" validate:"omitempty,dive"`
}

type UpdateAnggotaRequest struct {
	KodeJabatan *string `json:"kode_jabatan"`
	VolumeTugas *int    `json:"volume_tugas" validate:"omitempty,gte=1"`
}

// ============================
// Response DTO
// ============================

type PreviewAnggotaRow struct {
	Baris       int     `json:"baris"`
	SobatID     string  `json:"sobat_id"`
	NamaLengkap string  `json:"nama_lengkap"`
	IDMitra     uint    `json:"id_mitra"`
	KodeJabatan string  `json:"kode_jabatan"`
	NamaJabatan string  `json:"nama_jabatan"`
	VolumeTugas int     `json:"volume_tugas"`
	Tarif       float64 `json:"tarif"`
}

type PreviewImportResponse struct {
	Valid    []PreviewAnggotaRow `json:"valid"`
	Warnings []string            `json:"warnings"`
}
