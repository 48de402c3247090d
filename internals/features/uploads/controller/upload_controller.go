// file: internals/features/uploads/controller/upload_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "lascrfid_backend/internals/helpers"
	ossHelper "lascrfid_backend/internals/helpers/oss"
)

// UploadController fronts the object-storage collaborator. The student API
// never interprets the returned URL; the client stores it in "pic".
type UploadController struct {
	OSS *ossHelper.OSSService
}

func NewUploadController(svc *ossHelper.OSSService) *UploadController {
	return &UploadController{OSS: svc}
}

// POST /api/uploads/photo
func (uc *UploadController) Photo(c *fiber.Ctx) error {
	if uc.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Photo storage is not configured")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		fh, err = c.FormFile("file")
	}
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A photo file is required")
	}

	url, err := uc.OSS.UploadPhoto(c.UserContext(), fh)
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "unsupported image format") {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		if strings.Contains(low, "file too large") {
			return helper.JsonError(c, fiber.StatusBadRequest, "File too large")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error uploading photo")
	}

	return helper.JsonOK(c, fiber.Map{"url": url})
}
