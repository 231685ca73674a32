package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScheduleMetrics counts business events of the scheduling domain.
type ScheduleMetrics struct {
	loginAttempts       metric.Int64Counter
	enrollmentsCreated  metric.Int64Counter
	enrollmentConflicts metric.Int64Counter
	enrollmentsCascaded metric.Int64Counter
}

func NewScheduleMetrics(meter metric.Meter) (*ScheduleMetrics, error) {
	sm := &ScheduleMetrics{}

	var err error

	sm.loginAttempts, err = meter.Int64Counter(
		"schedule_service.login.attempts",
		metric.WithDescription("Login attempts by result"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	sm.enrollmentsCreated, err = meter.Int64Counter(
		"schedule_service.enrollments.created",
		metric.WithDescription("Total number of enrollments created"),
		metric.WithUnit("{enrollment}"),
	)
	if err != nil {
		return nil, err
	}

	sm.enrollmentConflicts, err = meter.Int64Counter(
		"schedule_service.enrollments.conflicts",
		metric.WithDescription("Enrollment writes rejected as duplicates"),
		metric.WithUnit("{enrollment}"),
	)
	if err != nil {
		return nil, err
	}

	sm.enrollmentsCascaded, err = meter.Int64Counter(
		"schedule_service.enrollments.cascade_deleted",
		metric.WithDescription("Enrollments removed together with their class"),
		metric.WithUnit("{enrollment}"),
	)
	if err != nil {
		return nil, err
	}

	return sm, nil
}

func (sm *ScheduleMetrics) RecordLogin(ctx context.Context, success bool) {
	if sm != nil && sm.loginAttempts != nil {
		result := "failure"
		if success {
			result = "success"
		}
		sm.loginAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	}
}

func (sm *ScheduleMetrics) RecordEnrollmentCreated(ctx context.Context) {
	if sm != nil && sm.enrollmentsCreated != nil {
		sm.enrollmentsCreated.Add(ctx, 1)
	}
}

func (sm *ScheduleMetrics) RecordEnrollmentConflict(ctx context.Context) {
	if sm != nil && sm.enrollmentConflicts != nil {
		sm.enrollmentConflicts.Add(ctx, 1)
	}
}

func (sm *ScheduleMetrics) RecordEnrollmentsCascaded(ctx context.Context, n int) {
	if sm != nil && sm.enrollmentsCascaded != nil && n > 0 {
		sm.enrollmentsCascaded.Add(ctx, int64(n))
	}
}
