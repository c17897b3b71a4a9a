package dto

type CreateMitraRequest struct {
	NamaLengkap  string `json:"nama_lengkap" validate:"required,min=3"`
	NIK          string `json:"nik" validate:"required,min=8,max=20,numeric"`
	SobatID      string `json:"sobat_id"`
	Alamat       string `json:"alamat"`
	NomorHP      string `json:"nomor_hp"`
	Email        string `json:"email" validate:"omitempty,email"`
	JenisKelamin string `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	TanggalLahir string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	Pendidikan   string `json:"pendidikan"`
	Pekerjaan    string `json:"pekerjaan"`
	// Tahun aktivasi; kosong = tahun berjalan.
	Tahun string `json:"tahun" validate:"omitempty,len=4,numeric"`
}

type UpdateMitraRequest struct {
	NamaLengkap  *string `json:"nama_lengkap" validate:"omitempty,min=3"`
	SobatID      *string `json:"sobat_id"`
	Alamat       *string `json:"alamat"`
	NomorHP      *string `json:"nomor_hp"`
	Email        *string `json:"email" validate:"omitempty,email"`
	JenisKelamin *string `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	TanggalLahir *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	Pendidikan   *string `json:"pendidikan"`
	Pekerjaan    *string `json:"pekerjaan"`
}

type SetTahunAktifRequest struct {
	Tahun  string `json:"tahun" validate:"required,len=4,numeric"`
	Status string `json:"status" validate:"required,oneof=aktif non-aktif"`
}
