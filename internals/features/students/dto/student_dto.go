// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"

	model "lascrfid_backend/internals/features/students/model"
)

/* =======================================================
   REQUEST DTO
   Empty-string optionals count as "not provided" and are
   stripped during Normalize, before validation & storage.
   ======================================================= */

// StudentWriteRequest is used for both create and full update.
type StudentWriteRequest struct {
	LastName   string  `json:"lastName" validate:"required"`
	FirstName  string  `json:"firstName" validate:"required"`
	MiddleName *string `json:"middleName,omitempty"`
	GrLvl      string  `json:"grlvl" validate:"required"`
	Address    *string `json:"address,omitempty"`
	RFID       *string `json:"rfid,omitempty"`
	LRN        *string `json:"lrn,omitempty"`
	Pic        *string `json:"pic,omitempty"`
	SY         string  `json:"sy" validate:"required"`
	ParentName *string `json:"parentName,omitempty"`
	MobileNo   *string `json:"mobileNo,omitempty"`
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// Normalize trims every field and drops empty optionals.
func (r *StudentWriteRequest) Normalize() {
	r.LastName = strings.TrimSpace(r.LastName)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.GrLvl = strings.TrimSpace(r.GrLvl)
	r.SY = strings.TrimSpace(r.SY)
	r.MiddleName = trimPtr(r.MiddleName)
	r.Address = trimPtr(r.Address)
	r.RFID = trimPtr(r.RFID)
	r.LRN = trimPtr(r.LRN)
	r.Pic = trimPtr(r.Pic)
	r.ParentName = trimPtr(r.ParentName)
	r.MobileNo = trimPtr(r.MobileNo)
}

func (r *StudentWriteRequest) ToModel() *model.StudentModel {
	return &model.StudentModel{
		LastName:   r.LastName,
		FirstName:  r.FirstName,
		MiddleName: r.MiddleName,
		GrLvl:      r.GrLvl,
		Address:    r.Address,
		RFID:       r.RFID,
		LRN:        r.LRN,
		Pic:        r.Pic,
		SY:         r.SY,
		ParentName: r.ParentName,
		MobileNo:   r.MobileNo,
	}
}

// ApplyTo replaces every mutable field of an existing student.
// Archive state is owned by the lifecycle endpoints, not updates.
func (r *StudentWriteRequest) ApplyTo(m *model.StudentModel) {
	m.LastName = r.LastName
	m.FirstName = r.FirstName
	m.MiddleName = r.MiddleName
	m.GrLvl = r.GrLvl
	m.Address = r.Address
	m.RFID = r.RFID
	m.LRN = r.LRN
	m.Pic = r.Pic
	m.SY = r.SY
	m.ParentName = r.ParentName
	m.MobileNo = r.MobileNo
}
