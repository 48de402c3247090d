// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "lascrfid_backend/internals/features/admins/model"
	service "lascrfid_backend/internals/features/admins/service"
	helper "lascrfid_backend/internals/helpers"
)

// ExtractBearerToken pulls the token out of "Authorization: Bearer <token>".
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader == "" {
		return "", errors.New("Access token required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("Access token required")
	}
	return strings.TrimSpace(parts[1]), nil
}

// AuthMiddleware verifies the bearer token, rejects blacklisted tokens and
// re-fetches the admin row — a valid token for a deleted or deactivated
// account is refused.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		// blacklist check before any crypto work
		var blacklisted model.TokenBlacklist
		if err := db.WithContext(c.UserContext()).
			Where("token = ? AND deleted_at IS NULL", tokenString).
			First(&blacklisted).Error; err == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication error")
		}

		claims, err := service.ParseAccessToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return helper.JsonError(c, fiber.StatusUnauthorized, "Token expired")
			case errors.Is(err, service.ErrNoSecret):
				return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication error")
			default:
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
			}
		}

		var admin model.AdminModel
		if err := db.WithContext(c.UserContext()).
			First(&admin, "id = ?", claims.AdminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or inactive admin account")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication error")
		}
		if !admin.IsActive {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or inactive admin account")
		}

		c.Locals("admin_id", admin.ID.String())
		c.Locals("admin_email", admin.Email)
		c.Locals("admin_role", admin.Role)
		c.Locals("token_string", tokenString)
		c.Locals("token_exp", claims.ExpiresAt)

		return c.Next()
	}
}
