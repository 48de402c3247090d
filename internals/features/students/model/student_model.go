// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel represents the students table. rfid and lrn carry partial
// unique indexes so duplicate tags can never be admitted, even when two
// concurrent writes both pass the pre-write existence check.
type StudentModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LastName   string     `gorm:"size:100;not null" json:"lastName"`
	FirstName  string     `gorm:"size:100;not null" json:"firstName"`
	MiddleName *string    `gorm:"size:100" json:"middleName,omitempty"`
	GrLvl      string     `gorm:"column:grlvl;size:50;not null" json:"grlvl"`
	Address    *string    `gorm:"size:255" json:"address,omitempty"`
	RFID       *string    `gorm:"column:rfid;size:20;uniqueIndex:uq_students_rfid,where:rfid IS NOT NULL" json:"rfid,omitempty"`
	LRN        *string    `gorm:"column:lrn;size:12;uniqueIndex:uq_students_lrn,where:lrn IS NOT NULL" json:"lrn,omitempty"`
	Pic        *string    `gorm:"type:text" json:"pic,omitempty"`
	SY         string     `gorm:"column:sy;size:20;not null" json:"sy"`
	ParentName *string    `gorm:"size:100" json:"parentName,omitempty"`
	MobileNo   *string    `gorm:"size:15" json:"mobileNo,omitempty"`
	Archived   bool       `gorm:"not null;default:false" json:"archived"`
	ArchivedAt *time.Time `json:"archivedAt"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StudentModel) TableName() string {
	return "students"
}
