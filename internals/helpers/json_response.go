// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helper (standard shape)
   Every error body carries a "message" field.
=================================*/

func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

/* ===============================
   Success helpers
   Payloads carry the resource under a named key
   ("student", "students", "admin", "admins", "token", ...).
=================================*/

func JsonOK(c *fiber.Ctx, payload fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

func JsonCreated(c *fiber.Ctx, payload fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}
