// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "lascrfid_backend/internals/middlewares"
	routeDetails "lascrfid_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.GlobalRateLimiter())

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up StudentRoutes...")
	routeDetails.StudentRoutes(app, db)

	log.Println("[INFO] Setting up UploadRoutes...")
	routeDetails.UploadRoutes(app, db)
}
