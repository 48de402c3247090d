// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	adminSeeds "lascrfid_backend/internals/seeds/admins"
)

func RunAllSeeds(db *gorm.DB) {
	adminSeeds.EnsureSuperAdmin(db)
}
