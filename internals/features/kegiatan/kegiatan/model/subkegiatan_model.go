package model

import "time"

// SubkegiatanModel: id berupa string berurutan "sub<N>", dibangkitkan dari
// suffix numerik terbesar yang sudah ada.
type SubkegiatanModel struct {
	ID             string     `gorm:"column:id;primaryKey;type:varchar(20)" json:"id"`
	IDKegiatan     uint       `gorm:"column:id_kegiatan;not null;index" json:"id_kegiatan"`
	NamaSub        string     `gorm:"column:nama_sub;type:varchar(255);not null" json:"nama_sub"`
	TanggalMulai   *time.Time `gorm:"column:tanggal_mulai" json:"tanggal_mulai"`
	TanggalSelesai *time.Time `gorm:"column:tanggal_selesai" json:"tanggal_selesai"`
	Status         string     `gorm:"column:status;type:varchar(30)" json:"status"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Kegiatan *KegiatanModel `gorm:"foreignKey:IDKegiatan;constraint:OnDelete:CASCADE" json:"kegiatan,omitempty"`
}

func (SubkegiatanModel) TableName() string {
	return "subkegiatan"
}
