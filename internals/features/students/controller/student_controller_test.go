// file: internals/features/students/controller/student_controller_test.go
package controller

import (
	"testing"
	"time"

	model "lascrfid_backend/internals/features/students/model"
)

func TestArchiveTransitionSetsFlagAndTimestamp(t *testing.T) {
	m := &model.StudentModel{LastName: "Cruz", FirstName: "Ana"}
	at := time.Now()

	applyArchiveTransition(m, true, at)

	if !m.Archived {
		t.Error("archive should set archived=true")
	}
	if m.ArchivedAt == nil || !m.ArchivedAt.Equal(at) {
		t.Errorf("archivedAt = %v, want %v", m.ArchivedAt, at)
	}
}

func TestRestoreTransitionClearsTimestamp(t *testing.T) {
	at := time.Now().Add(-time.Hour)
	m := &model.StudentModel{Archived: true, ArchivedAt: &at}

	applyArchiveTransition(m, false, time.Now())

	if m.Archived {
		t.Error("restore should set archived=false")
	}
	if m.ArchivedAt != nil {
		t.Errorf("restore should clear archivedAt, got %v", m.ArchivedAt)
	}
}

func TestArchiveRestoreRoundTrip(t *testing.T) {
	m := &model.StudentModel{}

	applyArchiveTransition(m, true, time.Now())
	applyArchiveTransition(m, false, time.Now())

	if m.Archived || m.ArchivedAt != nil {
		t.Errorf("student should be back to active state, got archived=%v archivedAt=%v", m.Archived, m.ArchivedAt)
	}
}

func TestHardDeleteRequiresArchive(t *testing.T) {
	active := &model.StudentModel{}
	if canHardDelete(active) {
		t.Error("active student must not be deletable")
	}

	applyArchiveTransition(active, true, time.Now())
	if !canHardDelete(active) {
		t.Error("archived student should be deletable")
	}

	applyArchiveTransition(active, false, time.Now())
	if canHardDelete(active) {
		t.Error("restored student must not be deletable again")
	}
}
