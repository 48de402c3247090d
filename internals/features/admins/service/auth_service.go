// file: internals/features/admins/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	dto "lascrfid_backend/internals/features/admins/dto"
	authHelper "lascrfid_backend/internals/features/admins/helper"
	model "lascrfid_backend/internals/features/admins/model"
	helper "lascrfid_backend/internals/helpers"
)

var validate = validator.New()

// registerValidationMessage names the field that failed struct validation
// instead of collapsing everything into one message.
func registerValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Role":
				return "Invalid role"
			case "Email":
				return "Invalid email format"
			case "Password":
				return "Password must be at least 6 characters long"
			}
		}
	}
	return "Invalid request body"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ==========================
   LOGIN
========================== */

// Login verifies credentials, stamps lastLogin and issues a token.
// Unknown email, wrong password and a deactivated account are all
// indistinguishable to the caller.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := authHelper.ValidateLoginInput(req.Email, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var admin model.AdminModel
	if err := db.WithContext(c.UserContext()).
		Where("email = ?", req.Email).
		First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := authHelper.CheckPasswordHash(admin.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	// deactivated accounts fail the same way as bad credentials
	if !admin.IsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := db.WithContext(c.UserContext()).Model(&admin).
		Update("last_login", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during login")
	}

	token, err := CreateAccessToken(&admin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during login")
	}

	return helper.JsonOK(c, fiber.Map{
		"message": "Login successful",
		"admin":   dto.FromModel(&admin),
		"token":   token,
	})
}

/* ==========================
   REGISTER (super-admin only, gated at the route)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := authHelper.ValidateRegisterInput(req.Email, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, registerValidationMessage(err))
	}

	var count int64
	if err := db.WithContext(c.UserContext()).Model(&model.AdminModel{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating admin account")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Admin with this email already exists")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating admin account")
	}

	admin := model.AdminModel{
		Email:    req.Email,
		Password: hash,
		Role:     req.Role,
		IsActive: true,
	}
	if err := db.WithContext(c.UserContext()).Create(&admin).Error; err != nil {
		// unique index backstop for two concurrent registers
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Admin with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating admin account")
	}

	return helper.JsonCreated(c, fiber.Map{
		"message": "Admin created successfully",
		"admin":   dto.FromModel(&admin),
	})
}

/* ==========================
   CHANGE PASSWORD (self-service)
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password and new password are required")
	}
	if len(req.NewPassword) < 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password must be at least 6 characters long")
	}

	admin, err := AdminFromContext(db, c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := authHelper.CheckPasswordHash(admin.Password, req.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	newHash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error changing password")
	}
	if err := db.WithContext(c.UserContext()).Model(admin).
		Update("password", newHash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error changing password")
	}

	return helper.JsonOK(c, fiber.Map{"message": "Password changed successfully"})
}

/* ==========================
   LOGOUT — blacklist the presented token until it expires
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Access token required")
	}

	expiredAt := time.Now().Add(accessTTLDefault)
	if exp, ok := c.Locals("token_exp").(time.Time); ok && !exp.IsZero() {
		expiredAt = exp
	}

	entry := model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.WithContext(c.UserContext()).Create(&entry).Error; err != nil {
		// already blacklisted is fine; logout stays idempotent
		if !isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error during logout")
		}
	}

	return helper.JsonOK(c, fiber.Map{"message": "Logout successful"})
}

/* ==========================
   Shared lookup
========================== */

// AdminFromContext re-reads the authenticated admin using the id the auth
// middleware stored in locals.
func AdminFromContext(db *gorm.DB, c *fiber.Ctx) (*model.AdminModel, error) {
	idStr, _ := c.Locals("admin_id").(string)
	var admin model.AdminModel
	if err := db.WithContext(c.UserContext()).
		First(&admin, "id = ?", idStr).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
