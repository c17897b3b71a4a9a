package model

import (
	"time"

	"gorm.io/datatypes"
)

// SpkSettingModel: metadata surat per periode YYYY-MM, satu baris per
// periode. komponen_honor berupa JSON naratif komponen pembayaran.
type SpkSettingModel struct {
	ID               uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Periode          string         `gorm:"column:periode;type:varchar(7);uniqueIndex;not null" json:"periode"`
	NamaPPK          string         `gorm:"column:nama_ppk;type:varchar(255);not null" json:"nama_ppk"`
	NipPPK           string         `gorm:"column:nip_ppk;type:varchar(30)" json:"nip_ppk"`
	JabatanPPK       string         `gorm:"column:jabatan_ppk;type:varchar(255)" json:"jabatan_ppk"`
	TanggalSurat     *time.Time     `gorm:"column:tanggal_surat" json:"tanggal_surat"`
	NomorSuratFormat string         `gorm:"column:nomor_surat_format;type:varchar(255)" json:"nomor_surat_format"`
	KomponenHonor    datatypes.JSON `gorm:"column:komponen_honor" json:"komponen_honor"`
	TemplateID       *uint          `gorm:"column:template_id" json:"template_id"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Template *MasterTemplateSpkModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:SET NULL" json:"template,omitempty"`
}

func (SpkSettingModel) TableName() string {
	return "spk_setting"
}
