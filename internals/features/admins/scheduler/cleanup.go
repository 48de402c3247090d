// file: internals/features/admins/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"lascrfid_backend/internals/features/admins/model"
)

// StartBlacklistCleanupScheduler prunes blacklist rows whose token expiry
// is older than the retention TTL. Rows must outlive the 24h token window;
// the TTL only controls how long the audit rows stick around after that.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expired []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expired).Error; err != nil {
				log.Printf("[CLEANUP ERROR] fetching expired tokens: %v", err)
			} else if len(expired) > 0 {
				// Unscoped: the point is to reclaim rows, not soft-delete them
				if err := db.Unscoped().Delete(&expired).Error; err != nil {
					log.Printf("[CLEANUP ERROR] deleting tokens: %v", err)
				} else {
					log.Printf("[CLEANUP] %d expired blacklist tokens removed", len(expired))
				}
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
