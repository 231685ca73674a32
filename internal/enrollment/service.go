package enrollment

import (
	"context"
	"errors"

	"schedule-service/internal/apperr"
	"schedule-service/internal/class"
	"schedule-service/internal/equipment"
	"schedule-service/internal/events"
	"schedule-service/internal/metrics"
	"schedule-service/internal/student"
)

var (
	ErrEnrollmentNotFound  = apperr.New(apperr.ErrNotFound, "enrollment not found")
	ErrNoEnrollments       = apperr.New(apperr.ErrNotFound, "no enrollments found")
	ErrDuplicateEnrollment = apperr.New(apperr.ErrConflict, "duplicate entry")
)

type Service interface {
	CreateEnrollment(ctx context.Context, req CreateEnrollmentRequest) (*Enrollment, error)
	GetAllEnrollments(ctx context.Context) ([]Enrollment, error)
	GetEnrollment(ctx context.Context, key Key) (*Enrollment, error)
	UpdateEnrollment(ctx context.Context, key Key, req UpdateEnrollmentRequest) (*Enrollment, error)
	DeleteEnrollment(ctx context.Context, key Key) error
}

type service struct {
	repo          Repository
	classRepo     class.Repository
	studentRepo   student.Repository
	equipmentRepo equipment.Repository
	events        *events.Emitter
	metrics       *metrics.Metrics
}

func NewService(
	repo Repository,
	classRepo class.Repository,
	studentRepo student.Repository,
	equipmentRepo equipment.Repository,
	emitter *events.Emitter,
	m *metrics.Metrics,
) Service {
	return &service{
		repo:          repo,
		classRepo:     classRepo,
		studentRepo:   studentRepo,
		equipmentRepo: equipmentRepo,
		events:        emitter,
		metrics:       m,
	}
}

func (s *service) checkReferences(ctx context.Context, key Key) error {
	exists, err := s.classRepo.Exists(ctx, key.ClassID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("class %d does not exist", key.ClassID)
	}

	exists, err = s.studentRepo.Exists(ctx, key.StudentCI)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("student %s does not exist", key.StudentCI)
	}

	exists, err = s.equipmentRepo.Exists(ctx, key.EquipmentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("equipment %d does not exist", key.EquipmentID)
	}
	return nil
}

// ensureFree fails with ErrDuplicateEnrollment when key is already taken.
func (s *service) ensureFree(ctx context.Context, key Key) error {
	exists, err := s.repo.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		s.metrics.Schedule.RecordEnrollmentConflict(ctx)
		return ErrDuplicateEnrollment
	}
	return nil
}

// CreateEnrollment rejects a key that already exists. Two concurrent creates
// of the same key both pass the check; the primary key turns the loser into
// a conflict as well.
func (s *service) CreateEnrollment(ctx context.Context, req CreateEnrollmentRequest) (*Enrollment, error) {
	key := req.Key()
	if err := s.checkReferences(ctx, key); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, key); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Enrollment{
		ClassID:     key.ClassID,
		StudentCI:   key.StudentCI,
		EquipmentID: key.EquipmentID,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			s.metrics.Schedule.RecordEnrollmentConflict(ctx)
		}
		return nil, err
	}

	s.metrics.Schedule.RecordEnrollmentCreated(ctx)
	s.events.Emit(ctx, "enrollment.created", key, created)
	return created, nil
}

func (s *service) GetAllEnrollments(ctx context.Context) ([]Enrollment, error) {
	enrollments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return nil, ErrNoEnrollments
	}
	return enrollments, nil
}

func (s *service) GetEnrollment(ctx context.Context, key Key) (*Enrollment, error) {
	return s.repo.GetByKey(ctx, key)
}

// UpdateEnrollment moves the enrollment stored under key to the key in req.
// Moving onto another existing enrollment is a conflict.
func (s *service) UpdateEnrollment(ctx context.Context, key Key, req UpdateEnrollmentRequest) (*Enrollment, error) {
	if _, err := s.repo.GetByKey(ctx, key); err != nil {
		return nil, err
	}

	newKey := req.Key()
	if err := s.checkReferences(ctx, newKey); err != nil {
		return nil, err
	}
	if newKey != key {
		if err := s.ensureFree(ctx, newKey); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateKey(ctx, key, newKey); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByKey(ctx, newKey)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "enrollment.updated", newKey, map[string]interface{}{
		"previous": key,
		"current":  updated,
	})
	return updated, nil
}

func (s *service) DeleteEnrollment(ctx context.Context, key Key) error {
	if _, err := s.repo.GetByKey(ctx, key); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}

	s.events.Emit(ctx, "enrollment.deleted", key, nil)
	return nil
}
