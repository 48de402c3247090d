// file: internals/features/admins/model/token_blacklist_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist stores tokens revoked by logout. A blacklisted token stays
// rejected until its natural expiry; the cleanup scheduler prunes old rows.
type TokenBlacklist struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"type:text;not null;unique" json:"token"`
	ExpiredAt time.Time      `json:"expired_at"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
