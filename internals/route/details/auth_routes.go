// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "lascrfid_backend/internals/features/admins/controller"
	model "lascrfid_backend/internals/features/admins/model"
	rateLimiter "lascrfid_backend/internals/middlewares"
	authMw "lascrfid_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	// 🔓 Public
	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ac.Login)

	// 🔒 Any authenticated admin
	protectedAuth := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protectedAuth.Get("/profile", ac.Profile)
	protectedAuth.Put("/change-password", ac.ChangePassword)
	protectedAuth.Post("/logout", ac.Logout)

	// 🔒 Super-admin only
	protectedAuth.Post("/register",
		authMw.OnlyRoles("Only super-admin can create new admin accounts", model.RoleSuperAdmin),
		ac.Register)
	protectedAuth.Get("/admins",
		authMw.OnlyRoles("Only super-admin can view all admins", model.RoleSuperAdmin),
		ac.ListAdmins)
	protectedAuth.Delete("/admins/:id",
		authMw.OnlyRoles("Only super-admin can delete admin accounts", model.RoleSuperAdmin),
		ac.DeleteAdmin)
}
