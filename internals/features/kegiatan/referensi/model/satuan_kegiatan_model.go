package model

import "time"

type SatuanKegiatanModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NamaSatuan string    `gorm:"column:nama_satuan;type:varchar(100);uniqueIndex;not null" json:"nama_satuan"`
	Alias      string    `gorm:"column:alias;type:varchar(50)" json:"alias"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SatuanKegiatanModel) TableName() string {
	return "satuan_kegiatan"
}
