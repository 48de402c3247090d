// file: internals/features/admins/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "lascrfid_backend/internals/features/admins/dto"
	model "lascrfid_backend/internals/features/admins/model"
	service "lascrfid_backend/internals/features/admins/service"
	helper "lascrfid_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   Credential endpoints
========================== */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

// GET /api/auth/profile
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	admin, err := service.AdminFromContext(ac.DB, c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or inactive admin account")
	}
	return helper.JsonOK(c, fiber.Map{"admin": dto.FromModel(admin)})
}

/* ==========================
   Admin management (super-admin only, gated at the route)
========================== */

// GET /api/auth/admins
func (ac *AuthController) ListAdmins(c *fiber.Ctx) error {
	var admins []model.AdminModel
	if err := ac.DB.WithContext(c.UserContext()).
		Order("created_at").
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching admins")
	}
	return helper.JsonOK(c, fiber.Map{"admins": dto.FromModels(admins)})
}

// DELETE /api/auth/admins/:id
func (ac *AuthController) DeleteAdmin(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid admin id")
	}

	callerID, _ := c.Locals("admin_id").(string)
	if callerID == targetID.String() {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	var target model.AdminModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&target, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting admin")
	}
	if target.IsSuperAdmin() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete other super-admin accounts")
	}

	if err := ac.DB.WithContext(c.UserContext()).Delete(&target).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting admin")
	}
	return helper.JsonOK(c, fiber.Map{"message": "Admin deleted successfully"})
}
