package class

import (
	"context"
	"fmt"

	"schedule-service/internal/activity"
	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
	"schedule-service/internal/instructor"
	"schedule-service/internal/metrics"
	"schedule-service/internal/timeslot"
)

var (
	ErrClassNotFound = apperr.New(apperr.ErrNotFound, "class not found")
	ErrNoClasses     = apperr.New(apperr.ErrNotFound, "no classes found")
)

// EnrollmentCleaner removes the enrollments of a class before the class
// itself goes away.
type EnrollmentCleaner interface {
	DeleteByClass(ctx context.Context, classID int) (int, error)
}

type Service interface {
	CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error)
	GetAllClasses(ctx context.Context) ([]Class, error)
	GetClassByID(ctx context.Context, id int) (*Class, error)
	UpdateClass(ctx context.Context, id int, req UpdateClassRequest) (*Class, error)
	DeleteClass(ctx context.Context, id int) error
}

type service struct {
	repo           Repository
	instructorRepo instructor.Repository
	activityRepo   activity.Repository
	timeslotRepo   timeslot.Repository
	enrollments    EnrollmentCleaner
	events         *events.Emitter
	metrics        *metrics.Metrics
}

func NewService(
	repo Repository,
	instructorRepo instructor.Repository,
	activityRepo activity.Repository,
	timeslotRepo timeslot.Repository,
	enrollments EnrollmentCleaner,
	emitter *events.Emitter,
	m *metrics.Metrics,
) Service {
	return &service{
		repo:           repo,
		instructorRepo: instructorRepo,
		activityRepo:   activityRepo,
		timeslotRepo:   timeslotRepo,
		enrollments:    enrollments,
		events:         emitter,
		metrics:        m,
	}
}

// checkReferences verifies that everything a class points at exists.
// Nothing is written when a reference is missing.
func (s *service) checkReferences(ctx context.Context, instructorCI string, activityID, timeslotID int) error {
	exists, err := s.instructorRepo.Exists(ctx, instructorCI)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("instructor %s does not exist", instructorCI)
	}

	exists, err = s.activityRepo.Exists(ctx, activityID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("activity %d does not exist", activityID)
	}

	exists, err = s.timeslotRepo.Exists(ctx, timeslotID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("timeslot %d does not exist", timeslotID)
	}
	return nil
}

func (s *service) CreateClass(ctx context.Context, req CreateClassRequest) (*Class, error) {
	if err := s.checkReferences(ctx, req.InstructorCI, req.ActivityID, req.TimeSlotID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Class{
		InstructorCI: req.InstructorCI,
		ActivityID:   req.ActivityID,
		TimeSlotID:   req.TimeSlotID,
		Taught:       req.Taught,
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "class.created", created.ID, created)
	return created, nil
}

func (s *service) GetAllClasses(ctx context.Context) ([]Class, error) {
	classes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}
	return classes, nil
}

func (s *service) GetClassByID(ctx context.Context, id int) (*Class, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateClass(ctx context.Context, id int, req UpdateClassRequest) (*Class, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.InstructorCI, req.ActivityID, req.TimeSlotID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &Class{
		ID:           id,
		InstructorCI: req.InstructorCI,
		ActivityID:   req.ActivityID,
		TimeSlotID:   req.TimeSlotID,
		Taught:       req.Taught,
	}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "class.updated", id, updated)
	return updated, nil
}

// DeleteClass removes the class together with its enrollments. The two
// deletes are separate statements; a failure between them leaves the class
// in place without enrollments.
func (s *service) DeleteClass(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.enrollments.DeleteByClass(ctx, id)
	if err != nil {
		return fmt.Errorf("delete enrollments of class %d: %w", id, err)
	}
	s.metrics.Schedule.RecordEnrollmentsCascaded(ctx, removed)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Emit(ctx, "class.deleted", id, map[string]int{"enrollments_removed": removed})
	return nil
}
