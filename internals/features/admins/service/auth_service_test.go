// file: internals/features/admins/service/auth_service_test.go
package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	dto "lascrfid_backend/internals/features/admins/dto"
)

func TestRegisterValidationMessageNamesTheField(t *testing.T) {
	tests := []struct {
		name string
		req  dto.RegisterRequest
		want string
	}{
		{"bad role", dto.RegisterRequest{Email: "a@b.co", Password: "secret1", Role: "owner"}, "Invalid role"},
		{"overlong email", dto.RegisterRequest{Email: strings.Repeat("a", 260) + "@b.co", Password: "secret1", Role: "admin"}, "Invalid email format"},
		{"short password", dto.RegisterRequest{Email: "a@b.co", Password: "12345", Role: "admin"}, "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&tt.req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if got := registerValidationMessage(err); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	valid := dto.RegisterRequest{Email: "a@b.co", Password: "secret1", Role: "super-admin"}
	if err := validate.Struct(&valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_admins_email"}
	if !isUniqueViolation(dup) {
		t.Error("23505 should be recognized")
	}
	if !isUniqueViolation(fmt.Errorf("create: %w", dup)) {
		t.Error("wrapped 23505 should be recognized")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("other SQLSTATEs are not unique violations")
	}
	if isUniqueViolation(fmt.Errorf("duplicate key value violates unique constraint")) {
		t.Error("plain text errors must not match")
	}
}
