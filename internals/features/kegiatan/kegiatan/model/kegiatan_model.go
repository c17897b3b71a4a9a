package model

import "time"

type KegiatanModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NamaKegiatan string    `gorm:"column:nama_kegiatan;type:varchar(255);not null" json:"nama_kegiatan"`
	Deskripsi    string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KegiatanModel) TableName() string {
	return "kegiatan"
}
