package timeslot

import "github.com/uptrace/bun"

type TimeSlot struct {
	bun.BaseModel `bun:"table:timeslots,alias:ts"`

	ID        int   `bun:"id,pk,autoincrement" json:"id"`
	StartTime Clock `bun:"start_time,type:time,notnull" json:"start_time"`
	EndTime   Clock `bun:"end_time,type:time,notnull" json:"end_time"`
}

type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}

type UpdateTimeSlotRequest struct {
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
}
