// file: internals/features/admins/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// AdminModel represents the admins table. Email is stored lowercased so the
// unique index doubles as the case-insensitive uniqueness guarantee.
// Password only ever holds a bcrypt hash and is never serialized.
type AdminModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (a *AdminModel) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}
