// file: internals/features/admins/dto/admin_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "lascrfid_backend/internals/features/admins/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super-admin"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
	if r.Role == "" {
		r.Role = model.RoleAdmin
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

/* =======================================================
   RESPONSE DTO — public admin fields only, never password
   ======================================================= */

type AdminResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromModel(m *model.AdminModel) AdminResponse {
	return AdminResponse{
		ID:        m.ID,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
	}
}

func FromModels(ms []model.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
