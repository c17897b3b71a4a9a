package model

import (
	"time"

	kegiatanModel "simitra_backend/internals/features/kegiatan/kegiatan/model"
	referensiModel "simitra_backend/internals/features/kegiatan/referensi/model"
)

// HonorariumModel: tarif untuk pasangan (subkegiatan, jabatan).
// kode_jabatan RESTRICT: jabatan yang masih dipakai tidak bisa dihapus.
type HonorariumModel struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDSubkegiatan string    `gorm:"column:id_subkegiatan;type:varchar(20);not null;index:idx_honor_sub_jabatan,unique" json:"id_subkegiatan"`
	KodeJabatan   string    `gorm:"column:kode_jabatan;type:varchar(20);not null;index:idx_honor_sub_jabatan,unique" json:"kode_jabatan"`
	Tarif         float64   `gorm:"column:tarif;not null" json:"tarif"`
	IDSatuan      uint      `gorm:"column:id_satuan;not null" json:"id_satuan"`
	BasisVolume   int       `gorm:"column:basis_volume" json:"basis_volume"`
	BebanAnggaran string    `gorm:"column:beban_anggaran;type:varchar(50)" json:"beban_anggaran"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Subkegiatan *kegiatanModel.SubkegiatanModel     `gorm:"foreignKey:IDSubkegiatan;constraint:OnDelete:CASCADE" json:"subkegiatan,omitempty"`
	Jabatan     *referensiModel.JabatanMitraModel   `gorm:"foreignKey:KodeJabatan;references:KodeJabatan;constraint:OnDelete:RESTRICT" json:"jabatan,omitempty"`
	Satuan      *referensiModel.SatuanKegiatanModel `gorm:"foreignKey:IDSatuan;constraint:OnDelete:RESTRICT" json:"satuan,omitempty"`
}

func (HonorariumModel) TableName() string {
	return "honorarium"
}
