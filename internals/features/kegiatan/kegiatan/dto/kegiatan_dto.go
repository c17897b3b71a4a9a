package dto

// ============================
// Kegiatan
// ============================

type CreateKegiatanRequest struct {
	NamaKegiatan string `json:"nama_kegiatan" validate:"required,min=3"`
	Deskripsi    string `json:"deskripsi"`
}

type UpdateKegiatanRequest struct {
	NamaKegiatan *string `json:"nama_kegiatan" validate:"omitempty,min=3"`
	Deskripsi    *string `json:"deskripsi"`
}

// ============================
// Subkegiatan
// ============================

type CreateSubkegiatanRequest struct {
	IDKegiatan     uint   `json:"id_kegiatan" validate:"required"`
	NamaSub        string `json:"nama_sub" validate:"required,min=3"`
	TanggalMulai   string `json:"tanggal_mulai" validate:"required,datetime=2006-01-02"`
	TanggalSelesai string `json:"tanggal_selesai" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"omitempty,oneof=berjalan selesai batal"`
}

type UpdateSubkegiatanRequest struct {
	IDKegiatan     *uint   `json:"id_kegiatan"`
	NamaSub        *string `json:"nama_sub" validate:"omitempty,min=3"`
	TanggalMulai   *string `json:"tanggal_mulai" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string `json:"tanggal_selesai" validate:"omitempty,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,oneof=berjalan selesai batal"`
}
