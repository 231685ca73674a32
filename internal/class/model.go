package class

import "github.com/uptrace/bun"

// Class is one scheduled occurrence of an activity, taught by an instructor
// in a timeslot.
type Class struct {
	bun.BaseModel `bun:"table:classes,alias:c"`

	ID           int    `bun:"id,pk,autoincrement" json:"id"`
	InstructorCI string `bun:"instructor_ci,type:char(11),notnull" json:"instructor_ci"`
	ActivityID   int    `bun:"activity_id,notnull" json:"activity_id"`
	TimeSlotID   int    `bun:"timeslot_id,notnull" json:"timeslot_id"`
	Taught       bool   `bun:"taught,notnull,default:false" json:"taught"`
}

func (*Class) ForeignKeys() []string {
	return []string{
		`("instructor_ci") REFERENCES "instructors" ("ci")`,
		`("activity_id") REFERENCES "activities" ("id")`,
		`("timeslot_id") REFERENCES "timeslots" ("id")`,
	}
}

type CreateClassRequest struct {
	InstructorCI string `json:"instructor_ci" validate:"required,len=11"`
	ActivityID   int    `json:"activity_id" validate:"required,gt=0"`
	TimeSlotID   int    `json:"timeslot_id" validate:"required,gt=0"`
	Taught       bool   `json:"taught"`
}

type UpdateClassRequest struct {
	InstructorCI string `json:"instructor_ci" validate:"required,len=11"`
	ActivityID   int    `json:"activity_id" validate:"required,gt=0"`
	TimeSlotID   int    `json:"timeslot_id" validate:"required,gt=0"`
	Taught       bool   `json:"taught"`
}
