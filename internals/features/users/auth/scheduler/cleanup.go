package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "simitra_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah
// kadaluarsa secara berkala supaya tabel tidak membengkak.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()
		for {
			res := db.Where("expired_at < ?", time.Now()).
				Delete(&authModel.TokenBlacklistModel{})
			if res.Error != nil {
				log.Println("[ERROR] Cleanup blacklist gagal:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] Cleanup blacklist: %d token dihapus", res.RowsAffected)
			}
			<-ticker.C
		}
	}()
}
