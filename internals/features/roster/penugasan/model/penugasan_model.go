package model

import "time"

const (
	StatusMenunggu  = "menunggu"
	StatusDisetujui = "disetujui"
)

// PenugasanModel: header roster tahap penugasan. Bisa dibuat langsung atau
// dipromosikan dari perencanaan. Hanya status disetujui yang dihitung di
// laporan honor dan cetak SPK.
type PenugasanModel struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDSubkegiatan   string    `gorm:"column:id_subkegiatan;type:varchar(20);uniqueIndex;not null" json:"id_subkegiatan"`
	IDPengawas      uint      `gorm:"column:id_pengawas;not null" json:"id_pengawas"`
	StatusPenugasan string    `gorm:"column:status_penugasan;type:varchar(15);not null;default:menunggu" json:"status_penugasan"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Kelompok []KelompokPenugasanModel `gorm:"foreignKey:IDPenugasan;constraint:OnDelete:CASCADE" json:"kelompok,omitempty"`
}

func (PenugasanModel) TableName() string {
	return "penugasan"
}

type KelompokPenugasanModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDPenugasan uint      `gorm:"column:id_penugasan;not null;index:idx_penugasan_mitra,unique" json:"id_penugasan"`
	IDMitra     uint      `gorm:"column:id_mitra;not null;index:idx_penugasan_mitra,unique" json:"id_mitra"`
	KodeJabatan string    `gorm:"column:kode_jabatan;type:varchar(20);not null" json:"kode_jabatan"`
	VolumeTugas int       `gorm:"column:volume_tugas;not null" json:"volume_tugas"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KelompokPenugasanModel) TableName() string {
	return "kelompok_penugasan"
}
