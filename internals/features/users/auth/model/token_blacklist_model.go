package model

import "time"

// TokenBlacklistModel menyimpan token yang sudah logout. Hanya token yang
// dipakai saat request logout yang masuk sini; sesi lain tetap hidup.
type TokenBlacklistModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"column:token;type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
