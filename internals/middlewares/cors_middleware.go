// file: internals/middlewares/cors_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"lascrfid_backend/internals/configs"
)

// CorsMiddleware reads allowed origins from CORS_ORIGINS (comma separated).
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.GetEnv("CORS_ORIGINS", "*"))
	allowCredentials := origins != "*"

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: allowCredentials,
	})
}
