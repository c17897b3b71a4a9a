package model

import "time"

// Key branding yang boleh dibaca publik (landing page / login page).
const (
	KeyLogo       = "logo"
	KeyBackground = "background"
	KeyNamaApp    = "nama_app"
)

var PublicKeys = []string{KeyLogo, KeyBackground, KeyNamaApp}

func IsPublicKey(key string) bool {
	for _, k := range PublicKeys {
		if k == key {
			return true
		}
	}
	return false
}

type SystemSettingModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"column:key;type:varchar(100);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"column:value;type:text" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SystemSettingModel) TableName() string {
	return "system_settings"
}
