package model

import "time"

type MitraModel struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NamaLengkap  string     `gorm:"column:nama_lengkap;type:varchar(255);not null" json:"nama_lengkap"`
	NIK          string     `gorm:"column:nik;type:varchar(20);uniqueIndex;not null" json:"nik"`
	SobatID      string     `gorm:"column:sobat_id;type:varchar(30);index" json:"sobat_id"`
	Alamat       string     `gorm:"column:alamat;type:text" json:"alamat"`
	NomorHP      string     `gorm:"column:nomor_hp;type:varchar(20)" json:"nomor_hp"`
	Email        string     `gorm:"column:email;type:varchar(255)" json:"email"`
	JenisKelamin string     `gorm:"column:jenis_kelamin;type:varchar(10)" json:"jenis_kelamin"`
	TanggalLahir *time.Time `gorm:"column:tanggal_lahir" json:"tanggal_lahir"`
	Pendidikan   string     `gorm:"column:pendidikan;type:varchar(50)" json:"pendidikan"`
	Pekerjaan    string     `gorm:"column:pekerjaan;type:varchar(100)" json:"pekerjaan"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	TahunAktif []TahunAktifModel `gorm:"foreignKey:IDMitra;constraint:OnDelete:CASCADE" json:"tahun_aktif,omitempty"`
}

func (MitraModel) TableName() string {
	return "mitra"
}
