package model

import "time"

// JabatanMitraModel: katalog jabatan, kode_jabatan dipakai sebagai natural
// key oleh honorarium dan anggota roster.
type JabatanMitraModel struct {
	KodeJabatan string    `gorm:"column:kode_jabatan;primaryKey;type:varchar(20)" json:"kode_jabatan"`
	NamaJabatan string    `gorm:"column:nama_jabatan;type:varchar(100);not null" json:"nama_jabatan"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (JabatanMitraModel) TableName() string {
	return "jabatan_mitra"
}
