// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "lascrfid_backend/internals/features/students/controller"
	authMw "lascrfid_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	sc := controller.NewStudentController(db)

	// 🔓 Public kiosk lookup (tap RFID → show profile)
	app.Get("/api/rfid/:rfid", sc.LookupByRFID)

	// 🔒 Admin-only student management
	students := app.Group("/api/students", authMw.AuthMiddleware(db))
	students.Get("", sc.ListActive)
	students.Get("/archived", sc.ListArchived) // must be registered before /:id
	students.Post("", sc.Create)
	students.Get("/:id", sc.GetByID)
	students.Put("/:id", sc.Update)
	students.Put("/:id/archive", sc.Archive)
	students.Put("/:id/restore", sc.Restore)
	students.Delete("/:id", sc.Delete)
}
