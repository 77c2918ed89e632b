package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "panditku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows and dead
// refresh tokens every hour so the tables stay small.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("expired_at < ?", now).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] blacklist cleanup: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup: removed %d expired tokens", res.RowsAffected)
			}

			res = db.Where("expires_at < ?", now).Delete(&authModel.RefreshToken{})
			if res.Error != nil {
				log.Printf("[ERROR] refresh token cleanup: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] refresh token cleanup: removed %d expired sessions", res.RowsAffected)
			}
		}
	}()
}
