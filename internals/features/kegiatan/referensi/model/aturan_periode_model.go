package model

import "time"

// AturanPeriodeModel: batas honor bulanan per tahun. Untuk tampilan tahunan
// nilainya dikali 12.
type AturanPeriodeModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Periode    string    `gorm:"column:periode;type:varchar(4);uniqueIndex;not null" json:"periode"`
	BatasHonor float64   `gorm:"column:batas_honor;not null" json:"batas_honor"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AturanPeriodeModel) TableName() string {
	return "aturan_periode"
}
