// Package schema lists the tables of the service in creation order.
package schema

import (
	"schedule-service/internal/activity"
	"schedule-service/internal/auth"
	"schedule-service/internal/class"
	"schedule-service/internal/enrollment"
	"schedule-service/internal/equipment"
	"schedule-service/internal/instructor"
	"schedule-service/internal/student"
	"schedule-service/internal/timeslot"
)

// Models returns every table model, parents before the tables that
// reference them.
func Models() []interface{} {
	return []interface{}{
		(*activity.Activity)(nil),
		(*equipment.Equipment)(nil),
		(*instructor.Instructor)(nil),
		(*timeslot.TimeSlot)(nil),
		(*class.Class)(nil),
		(*student.Student)(nil),
		(*enrollment.Enrollment)(nil),
		(*auth.Credential)(nil),
	}
}

// Tables returns the table names in the same order as Models.
func Tables() []string {
	return []string{
		"activities",
		"equipment",
		"instructors",
		"timeslots",
		"classes",
		"students",
		"enrollments",
		"credentials",
	}
}
