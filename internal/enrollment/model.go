package enrollment

import (
	"fmt"

	"github.com/uptrace/bun"
)

// Enrollment ties a student to a class with the equipment they rent for it.
// All three columns together form the primary key.
type Enrollment struct {
	bun.BaseModel `bun:"table:enrollments,alias:en"`

	ClassID     int    `bun:"class_id,pk" json:"class_id"`
	StudentCI   string `bun:"student_ci,pk,type:char(11)" json:"student_ci"`
	EquipmentID int    `bun:"equipment_id,pk" json:"equipment_id"`
}

func (*Enrollment) ForeignKeys() []string {
	return []string{
		`("class_id") REFERENCES "classes" ("id")`,
		`("student_ci") REFERENCES "students" ("ci")`,
		`("equipment_id") REFERENCES "equipment" ("id")`,
	}
}

func (e *Enrollment) Key() Key {
	return Key{ClassID: e.ClassID, StudentCI: e.StudentCI, EquipmentID: e.EquipmentID}
}

type Key struct {
	ClassID     int    `json:"class_id"`
	StudentCI   string `json:"student_ci"`
	EquipmentID int    `json:"equipment_id"`
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s/%d", k.ClassID, k.StudentCI, k.EquipmentID)
}

type CreateEnrollmentRequest struct {
	ClassID     int    `json:"class_id" validate:"required,gt=0"`
	StudentCI   string `json:"student_ci" validate:"required,len=11"`
	EquipmentID int    `json:"equipment_id" validate:"required,gt=0"`
}

func (r CreateEnrollmentRequest) Key() Key {
	return Key{ClassID: r.ClassID, StudentCI: r.StudentCI, EquipmentID: r.EquipmentID}
}

// UpdateEnrollmentRequest carries the new key of an existing enrollment.
type UpdateEnrollmentRequest struct {
	ClassID     int    `json:"class_id" validate:"required,gt=0"`
	StudentCI   string `json:"student_ci" validate:"required,len=11"`
	EquipmentID int    `json:"equipment_id" validate:"required,gt=0"`
}

func (r UpdateEnrollmentRequest) Key() Key {
	return Key{ClassID: r.ClassID, StudentCI: r.StudentCI, EquipmentID: r.EquipmentID}
}
