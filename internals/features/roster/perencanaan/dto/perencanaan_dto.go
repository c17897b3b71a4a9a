package dto

// ============================
// Request DTO
// ============================

type AnggotaRequest struct {
	IDMitra     uint   `json:"id_mitra" validate:"required"`
	KodeJabatan string `json:"kode_jabatan" validate:"required"`
	// Perencanaan boleh volume 0 (belum final).
	VolumeTugas int `json:"volume_tugas" validate:"gte=0"`
}

type CreatePerencanaanRequest struct {
	IDSubkegiatan string           `json:"id_subkegiatan" validate:"required"`
	IDPengawas    uint             `json:"id_pengawas" validate:"required"`
	Kelompok      []AnggotaRequest `json:"kelompok" validate:"omitempty,dive"`
}

type UpdateAnggotaRequest struct {
	KodeJabatan *string `json:"kode_jabatan"`
	VolumeTugas *int    `json:"volume_tugas" validate:"omitempty,gte=0"`
}

// ============================
// Response DTO
// ============================

// AnggotaHonorRow: anggota roster + total honor turunan (volume × tarif),
// selalu dihitung ulang dari tarif honorarium terkini, tidak disimpan.
type AnggotaHonorRow struct {
	ID          uint    `json:"id"`
	IDMitra     uint    `json:"id_mitra"`
	NamaLengkap string  `json:"nama_lengkap"`
	NIK         string  `json:"nik"`
	SobatID     string  `json:"sobat_id"`
	KodeJabatan string  `json:"kode_jabatan"`
	NamaJabatan string  `json:"nama_jabatan"`
	VolumeTugas int     `json:"volume_tugas"`
	Tarif       float64 `json:"tarif"`
	TotalHonor  float64 `json:"total_honor"`
}
