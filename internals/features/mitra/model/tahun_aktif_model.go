package model

import "time"

const (
	StatusAktif    = "aktif"
	StatusNonAktif = "non-aktif"
)

// TahunAktifModel: satu baris per (mitra, tahun).
type TahunAktifModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDMitra   uint      `gorm:"column:id_mitra;not null;index:idx_mitra_tahun,unique" json:"id_mitra"`
	Tahun     string    `gorm:"column:tahun;type:varchar(4);not null;index:idx_mitra_tahun,unique" json:"tahun"`
	Status    string    `gorm:"column:status;type:varchar(10);not null;default:aktif" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TahunAktifModel) TableName() string {
	return "tahun_aktif"
}
