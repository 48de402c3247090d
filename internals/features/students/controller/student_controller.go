// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "lascrfid_backend/internals/features/students/dto"
	model "lascrfid_backend/internals/features/students/model"
	service "lascrfid_backend/internals/features/students/service"
	helper "lascrfid_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* =========================
   Helpers
   ========================= */

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params("id"))
	u, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid student id")
	}
	return u, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (h *StudentController) findStudent(c *fiber.Ctx, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================
   Handlers
   ========================= */

// POST /api/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req dto.StudentWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := service.ValidateStudentFormats(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.CheckStudentUniqueness(h.DB.WithContext(c.UserContext()), &req, uuid.Nil); err != nil {
		if errors.Is(err, service.ErrLRNExists) || errors.Is(err, service.ErrRFIDExists) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error adding student")
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if dup := service.MapUniqueViolation(err); dup != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, dup.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error adding student")
	}

	return helper.JsonCreated(c, fiber.Map{
		"message": "Student added successfully",
		"student": m,
	})
}

// GET /api/students
func (h *StudentController) ListActive(c *fiber.Ctx) error {
	return h.list(c, false)
}

// GET /api/students/archived
func (h *StudentController) ListArchived(c *fiber.Ctx) error {
	return h.list(c, true)
}

func (h *StudentController) list(c *fiber.Ctx, archived bool) error {
	var students []model.StudentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("archived = ?", archived).
		Order("last_name, first_name").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching students")
	}
	return helper.JsonOK(c, fiber.Map{"students": students})
}

// GET /api/students/:id
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.findStudent(c, id)
	if err != nil {
		if isNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching student")
	}
	return helper.JsonOK(c, fiber.Map{"student": m})
}

// PUT /api/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.findStudent(c, id)
	if err != nil {
		if isNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	var req dto.StudentWriteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	if err := service.ValidateStudentFormats(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.CheckStudentUniqueness(h.DB.WithContext(c.UserContext()), &req, id); err != nil {
		if errors.Is(err, service.ErrLRNExists) || errors.Is(err, service.ErrRFIDExists) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	req.ApplyTo(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if dup := service.MapUniqueViolation(err); dup != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, dup.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	return helper.JsonOK(c, fiber.Map{
		"message": "Student updated successfully",
		"student": m,
	})
}

// PUT /api/students/:id/archive
func (h *StudentController) Archive(c *fiber.Ctx) error {
	return h.setArchived(c, true)
}

// PUT /api/students/:id/restore
func (h *StudentController) Restore(c *fiber.Ctx) error {
	return h.setArchived(c, false)
}

// applyArchiveTransition moves a student between the active and archived
// states. archivedAt is set on archive and cleared on restore.
func applyArchiveTransition(m *model.StudentModel, archived bool, at time.Time) {
	m.Archived = archived
	if archived {
		m.ArchivedAt = &at
	} else {
		m.ArchivedAt = nil
	}
}

// canHardDelete gates the terminal transition: only archived students may
// be removed for good.
func canHardDelete(m *model.StudentModel) bool {
	return m.Archived
}

func (h *StudentController) setArchived(c *fiber.Ctx, archived bool) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.findStudent(c, id)
	if err != nil {
		if isNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	applyArchiveTransition(m, archived, time.Now())

	// Updates with a map so archived_at can be cleared on restore.
	if err := h.DB.WithContext(c.UserContext()).Model(m).
		Updates(map[string]any{"archived": m.Archived, "archived_at": m.ArchivedAt}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	msg := "Student archived successfully"
	if !archived {
		msg = "Student restored successfully"
	}
	return helper.JsonOK(c, fiber.Map{
		"message": msg,
		"student": m,
	})
}

// DELETE /api/students/:id
// Hard delete is only allowed once a student has been archived.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	m, err := h.findStudent(c, id)
	if err != nil {
		if isNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting student")
	}
	if !canHardDelete(m) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student must be archived before it can be deleted")
	}

	if err := h.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting student")
	}
	return helper.JsonOK(c, fiber.Map{"message": "Student deleted successfully"})
}

// GET /api/rfid/:rfid
// Public kiosk lookup; only active students are visible.
func (h *StudentController) LookupByRFID(c *fiber.Ctx) error {
	rfid := strings.TrimSpace(c.Params("rfid"))
	if rfid == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "RFID is required")
	}

	var m model.StudentModel
	err := h.DB.WithContext(c.UserContext()).
		Where("rfid = ? AND archived = ?", rfid, false).
		First(&m).Error
	if err != nil {
		if isNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching student")
	}
	return helper.JsonOK(c, fiber.Map{"student": m})
}
