// file: internals/features/students/service/student_validation.go
package service

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	dto "lascrfid_backend/internals/features/students/dto"
	model "lascrfid_backend/internals/features/students/model"
)

/* =========================
   Format rules (pure)
   ========================= */

var (
	digitsOnlyRe = regexp.MustCompile(`^[0-9]+$`)
	lrnRe        = regexp.MustCompile(`^[0-9]{12}$`)
	mobileNoRe   = regexp.MustCompile(`^[0-9]{10,11}$`)
)

var (
	ErrLastNameRequired  = errors.New("lastName is required")
	ErrFirstNameRequired = errors.New("firstName is required")
	ErrGrLvlRequired     = errors.New("grlvl is required")
	ErrSYRequired        = errors.New("sy is required")
	ErrLRNFormat         = errors.New("LRN must be exactly 12 digits")
	ErrMobileNoFormat    = errors.New("Mobile number must be 10 or 11 digits")
	ErrRFIDFormat        = errors.New("RFID must contain digits only")

	ErrLRNExists  = errors.New("LRN already exists")
	ErrRFIDExists = errors.New("RFID already exists")
)

// ValidateStudentFormats enforces required fields and field formats.
// The request must be Normalized first so empty optionals are nil.
func ValidateStudentFormats(req *dto.StudentWriteRequest) error {
	if req.LastName == "" {
		return ErrLastNameRequired
	}
	if req.FirstName == "" {
		return ErrFirstNameRequired
	}
	if req.GrLvl == "" {
		return ErrGrLvlRequired
	}
	if req.SY == "" {
		return ErrSYRequired
	}
	if req.LRN != nil && !lrnRe.MatchString(*req.LRN) {
		return ErrLRNFormat
	}
	if req.MobileNo != nil && !mobileNoRe.MatchString(*req.MobileNo) {
		return ErrMobileNoFormat
	}
	if req.RFID != nil && !digitsOnlyRe.MatchString(*req.RFID) {
		return ErrRFIDFormat
	}
	return nil
}

/* =========================
   Uniqueness (store-backed)
   ========================= */

// CheckStudentUniqueness looks lrn/rfid up against the whole collection,
// archived students included. excludeID skips the student being updated.
// The partial unique indexes on the table remain the hard guarantee; this
// pre-check only exists to produce a friendly message.
func CheckStudentUniqueness(db *gorm.DB, req *dto.StudentWriteRequest, excludeID uuid.UUID) error {
	if req.LRN != nil {
		taken, err := fieldTaken(db, "lrn", *req.LRN, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrLRNExists
		}
	}
	if req.RFID != nil {
		taken, err := fieldTaken(db, "rfid", *req.RFID, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrRFIDExists
		}
	}
	return nil
}

func fieldTaken(db *gorm.DB, column, value string, excludeID uuid.UUID) (bool, error) {
	q := db.Model(&model.StudentModel{}).Where(column+" = ?", value)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// MapUniqueViolation turns a 23505 raised by the partial unique indexes
// into the same error the pre-check would have produced. Two concurrent
// creates can both pass the pre-check; the index closes that window.
func MapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_students_lrn":
			return ErrLRNExists
		case "uq_students_rfid":
			return ErrRFIDExists
		}
	}
	return nil
}
