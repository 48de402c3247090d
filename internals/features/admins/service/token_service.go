// file: internals/features/admins/service/token_service.go
package service

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"lascrfid_backend/internals/configs"
	model "lascrfid_backend/internals/features/admins/model"
)

const accessTTLDefault = 24 * time.Hour

var (
	ErrTokenExpired = errors.New("Token expired")
	ErrTokenInvalid = errors.New("Invalid token")
	ErrNoSecret     = errors.New("JWT_SECRET is not set")
)

// AccessClaims are the claims carried by every issued token.
type AccessClaims struct {
	AdminID   uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", ErrNoSecret
	}
	return secret, nil
}

// CreateAccessToken issues a 24h HS256 token for an admin.
func CreateAccessToken(admin *model.AdminModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
		"role":     admin.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTLDefault).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken validates signature and expiry and extracts the claims.
// Account-level checks (existence, isActive) are the middleware's job.
func ParseAccessToken(tokenString string) (*AccessClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	idStr, _ := claims["admin_id"].(string)
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	out := &AccessClaims{AdminID: adminID, Email: email, Role: role}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
