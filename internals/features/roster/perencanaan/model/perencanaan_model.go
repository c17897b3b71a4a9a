package model

import "time"

// PerencanaanModel: header roster tahap perencanaan, maksimal satu per
// subkegiatan.
type PerencanaanModel struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDSubkegiatan string    `gorm:"column:id_subkegiatan;type:varchar(20);uniqueIndex;not null" json:"id_subkegiatan"`
	IDPengawas    uint      `gorm:"column:id_pengawas;not null" json:"id_pengawas"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Kelompok []KelompokPerencanaanModel `gorm:"foreignKey:IDPerencanaan;constraint:OnDelete:CASCADE" json:"kelompok,omitempty"`
}

func (PerencanaanModel) TableName() string {
	return "perencanaan"
}

// KelompokPerencanaanModel: anggota roster perencanaan; satu mitra hanya
// sekali per header.
type KelompokPerencanaanModel struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDPerencanaan uint      `gorm:"column:id_perencanaan;not null;index:idx_perencanaan_mitra,unique" json:"id_perencanaan"`
	IDMitra       uint      `gorm:"column:id_mitra;not null;index:idx_perencanaan_mitra,unique" json:"id_mitra"`
	KodeJabatan   string    `gorm:"column:kode_jabatan;type:varchar(20);not null" json:"kode_jabatan"`
	VolumeTugas   int       `gorm:"column:volume_tugas;not null" json:"volume_tugas"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KelompokPerencanaanModel) TableName() string {
	return "kelompok_perencanaan"
}
