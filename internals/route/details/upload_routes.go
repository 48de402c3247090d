// file: internals/route/details/upload_routes.go
package details

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "lascrfid_backend/internals/features/uploads/controller"
	ossHelper "lascrfid_backend/internals/helpers/oss"
	authMw "lascrfid_backend/internals/middlewares/auth"
)

func UploadRoutes(app *fiber.App, db *gorm.DB) {
	svc, err := ossHelper.NewOSSServiceFromEnv("photos")
	if err != nil {
		// controller answers 503 until OSS env is provided
		log.Printf("[WARN] photo storage disabled: %v", err)
		svc = nil
	}
	uc := controller.NewUploadController(svc)

	uploads := app.Group("/api/uploads", authMw.AuthMiddleware(db))
	uploads.Post("/photo", uc.Photo)
}
