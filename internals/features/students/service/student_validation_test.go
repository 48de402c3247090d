// file: internals/features/students/service/student_validation_test.go
package service

import (
	"testing"

	dto "lascrfid_backend/internals/features/students/dto"
)

func strPtr(s string) *string { return &s }

func validRequest() *dto.StudentWriteRequest {
	return &dto.StudentWriteRequest{
		LastName:  "Reyes",
		FirstName: "Ana",
		GrLvl:     "7",
		SY:        "2025-2026",
	}
}

func TestValidateStudentFormats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.StudentWriteRequest)
		wantErr error
	}{
		{"valid minimal", func(r *dto.StudentWriteRequest) {}, nil},
		{"valid full", func(r *dto.StudentWriteRequest) {
			r.RFID = strPtr("0012345678")
			r.LRN = strPtr("123456789012")
			r.MobileNo = strPtr("09171234567")
		}, nil},
		{"missing lastName", func(r *dto.StudentWriteRequest) { r.LastName = "" }, ErrLastNameRequired},
		{"missing firstName", func(r *dto.StudentWriteRequest) { r.FirstName = "" }, ErrFirstNameRequired},
		{"missing grlvl", func(r *dto.StudentWriteRequest) { r.GrLvl = "" }, ErrGrLvlRequired},
		{"missing sy", func(r *dto.StudentWriteRequest) { r.SY = "" }, ErrSYRequired},
		{"lrn too short", func(r *dto.StudentWriteRequest) { r.LRN = strPtr("12345678901") }, ErrLRNFormat},
		{"lrn too long", func(r *dto.StudentWriteRequest) { r.LRN = strPtr("1234567890123") }, ErrLRNFormat},
		{"lrn non-digit", func(r *dto.StudentWriteRequest) { r.LRN = strPtr("12345678901a") }, ErrLRNFormat},
		{"mobile too short", func(r *dto.StudentWriteRequest) { r.MobileNo = strPtr("091712345") }, ErrMobileNoFormat},
		{"mobile 10 digits ok", func(r *dto.StudentWriteRequest) { r.MobileNo = strPtr("9171234567") }, nil},
		{"mobile 12 digits", func(r *dto.StudentWriteRequest) { r.MobileNo = strPtr("639171234567") }, ErrMobileNoFormat},
		{"rfid with letters", func(r *dto.StudentWriteRequest) { r.RFID = strPtr("00ABC123") }, ErrRFIDFormat},
		{"rfid with spaces", func(r *dto.StudentWriteRequest) { r.RFID = strPtr("001 234") }, ErrRFIDFormat},
		{"rfid single digit ok", func(r *dto.StudentWriteRequest) { r.RFID = strPtr("7") }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			if err := ValidateStudentFormats(req); err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}
