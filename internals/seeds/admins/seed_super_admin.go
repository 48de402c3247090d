// file: internals/seeds/admins/seed_super_admin.go
package admins

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"lascrfid_backend/internals/configs"
	authHelper "lascrfid_backend/internals/features/admins/helper"
	model "lascrfid_backend/internals/features/admins/model"
)

// EnsureSuperAdmin bootstraps the first super-admin account from
// SUPERADMIN_EMAIL / SUPERADMIN_PASSWORD. Later super-admins are created
// through the register endpoint; this seed never overwrites anything.
func EnsureSuperAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.AdminModel{}).
		Where("role = ?", model.RoleSuperAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[SEED ERROR] counting super-admins: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("SUPERADMIN_EMAIL")))
	password := configs.GetEnv("SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ No super-admin exists and SUPERADMIN_EMAIL/PASSWORD are not set; skipping bootstrap")
		return
	}
	if err := authHelper.ValidateRegisterInput(email, password); err != nil {
		log.Printf("[SEED ERROR] invalid super-admin credentials: %v", err)
		return
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[SEED ERROR] hashing super-admin password: %v", err)
		return
	}

	admin := model.AdminModel{
		Email:    email,
		Password: hash,
		Role:     model.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] creating super-admin: %v", err)
		return
	}
	log.Printf("✅ Super-admin seeded (%s). Change the password after first login.", email)
}
