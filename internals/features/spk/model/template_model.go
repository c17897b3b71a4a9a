package model

import "time"

// Lima bagian tetap isi surat SPK.
const (
	BagianPembuka      = "pembuka"
	BagianPihakPertama = "pihak_pertama"
	BagianPihakKedua   = "pihak_kedua"
	BagianKesepakatan  = "kesepakatan"
	BagianPenutup      = "penutup"
)

var JenisBagianValid = []string{
	BagianPembuka, BagianPihakPertama, BagianPihakKedua,
	BagianKesepakatan, BagianPenutup,
}

func IsJenisBagianValid(jenis string) bool {
	for _, j := range JenisBagianValid {
		if j == jenis {
			return true
		}
	}
	return false
}

// MasterTemplateSpkModel: maksimal satu template is_active=true di seluruh
// tabel, dijaga transaksi SetActive.
type MasterTemplateSpkModel struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NamaTemplate string    `gorm:"column:nama_template;type:varchar(255);not null" json:"nama_template"`
	IsActive     bool      `gorm:"column:is_active;not null;default:false" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	BagianTeks []TemplateBagianTeksModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"bagian_teks,omitempty"`
	Pasal      []TemplatePasalModel      `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"pasal,omitempty"`
}

func (MasterTemplateSpkModel) TableName() string {
	return "master_template_spk"
}

// TemplateBagianTeksModel: satu baris per (template, jenis_bagian).
type TemplateBagianTeksModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TemplateID  uint      `gorm:"column:template_id;not null;index:idx_template_jenis,unique" json:"template_id"`
	JenisBagian string    `gorm:"column:jenis_bagian;type:varchar(20);not null;index:idx_template_jenis,unique" json:"jenis_bagian"`
	IsiTeks     string    `gorm:"column:isi_teks;type:text" json:"isi_teks"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TemplateBagianTeksModel) TableName() string {
	return "template_bagian_teks"
}

// TemplatePasalModel: daftar pasal diganti utuh saat update, urutan dari
// urutan array request.
type TemplatePasalModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TemplateID uint      `gorm:"column:template_id;not null;index" json:"template_id"`
	NomorPasal string    `gorm:"column:nomor_pasal;type:varchar(20)" json:"nomor_pasal"`
	JudulPasal string    `gorm:"column:judul_pasal;type:varchar(255)" json:"judul_pasal"`
	IsiPasal   string    `gorm:"column:isi_pasal;type:text" json:"isi_pasal"`
	Urutan     int       `gorm:"column:urutan;not null" json:"urutan"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TemplatePasalModel) TableName() string {
	return "template_pasal"
}
