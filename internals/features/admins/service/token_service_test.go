// file: internals/features/admins/service/token_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	model "lascrfid_backend/internals/features/admins/model"
)

func testAdmin() *model.AdminModel {
	return &model.AdminModel{
		ID:    uuid.New(),
		Email: "admin@school.edu",
		Role:  model.RoleSuperAdmin,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	admin := testAdmin()
	tok, err := CreateAccessToken(admin)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims, err := ParseAccessToken(tok)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Errorf("adminID = %s, want %s", claims.AdminID, admin.ID)
	}
	if claims.Email != admin.Email {
		t.Errorf("email = %s, want %s", claims.Email, admin.Email)
	}
	if claims.Role != model.RoleSuperAdmin {
		t.Errorf("role = %s, want %s", claims.Role, model.RoleSuperAdmin)
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("token TTL %v is not ~24h", ttl)
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	past := time.Now().Add(-time.Hour)
	claims := jwt.MapClaims{
		"admin_id": uuid.NewString(),
		"email":    "admin@school.edu",
		"role":     model.RoleAdmin,
		"iat":      past.Add(-24 * time.Hour).Unix(),
		"exp":      past.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := ParseAccessToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "the-real-secret")

	claims := jwt.MapClaims{
		"admin_id": uuid.NewString(),
		"email":    "admin@school.edu",
		"role":     model.RoleAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}

	if _, err := ParseAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, tok := range []string{"", "not.a.jwt", "aaa"} {
		if _, err := ParseAccessToken(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseAccessToken(%q) = %v, want ErrTokenInvalid", tok, err)
		}
	}
}
