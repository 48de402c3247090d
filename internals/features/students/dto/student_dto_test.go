// file: internals/features/students/dto/student_dto_test.go
package dto

import (
	"testing"

	model "lascrfid_backend/internals/features/students/model"
)

func sp(s string) *string { return &s }

func TestNormalizeTrimsAndStripsEmptyOptionals(t *testing.T) {
	req := &StudentWriteRequest{
		LastName:   "  Reyes  ",
		FirstName:  " Ana ",
		MiddleName: sp("   "),
		GrLvl:      " 7 ",
		Address:    sp(" Quezon City "),
		RFID:       sp(""),
		LRN:        sp(" 123456789012 "),
		SY:         "2025-2026",
		MobileNo:   sp(""),
	}
	req.Normalize()

	if req.LastName != "Reyes" || req.FirstName != "Ana" || req.GrLvl != "7" {
		t.Errorf("required fields not trimmed: %+v", req)
	}
	if req.MiddleName != nil {
		t.Error("blank middleName should become nil")
	}
	if req.RFID != nil || req.MobileNo != nil {
		t.Error("empty optionals should become nil")
	}
	if req.Address == nil || *req.Address != "Quezon City" {
		t.Errorf("address not trimmed: %v", req.Address)
	}
	if req.LRN == nil || *req.LRN != "123456789012" {
		t.Errorf("lrn not trimmed: %v", req.LRN)
	}
}

func TestApplyToDoesNotTouchArchiveState(t *testing.T) {
	m := &model.StudentModel{
		LastName: "Old",
		Archived: true,
	}
	req := &StudentWriteRequest{
		LastName:  "New",
		FirstName: "Ana",
		GrLvl:     "8",
		SY:        "2025-2026",
		RFID:      sp("00123"),
	}
	req.ApplyTo(m)

	if m.LastName != "New" || m.GrLvl != "8" {
		t.Errorf("mutable fields not applied: %+v", m)
	}
	if m.RFID == nil || *m.RFID != "00123" {
		t.Errorf("rfid not applied: %v", m.RFID)
	}
	if !m.Archived {
		t.Error("ApplyTo must not change archive state")
	}
}

func TestApplyToClearsOmittedOptionals(t *testing.T) {
	m := &StudentWriteRequest{
		LastName:  "Reyes",
		FirstName: "Ana",
		GrLvl:     "7",
		SY:        "2025-2026",
	}
	target := &model.StudentModel{RFID: sp("999"), LRN: sp("123456789012")}
	m.ApplyTo(target)

	if target.RFID != nil || target.LRN != nil {
		t.Error("full update with absent optionals should clear them")
	}
}
