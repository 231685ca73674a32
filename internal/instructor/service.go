package instructor

import (
	"context"

	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
)

var (
	ErrInstructorNotFound = apperr.New(apperr.ErrNotFound, "instructor not found")
	ErrNoInstructors      = apperr.New(apperr.ErrNotFound, "no instructors found")
)

type Service interface {
	CreateInstructor(ctx context.Context, req CreateInstructorRequest) (*Instructor, error)
	GetAllInstructors(ctx context.Context) ([]Instructor, error)
	GetInstructorByCI(ctx context.Context, ci string) (*Instructor, error)
	UpdateInstructor(ctx context.Context, ci string, req UpdateInstructorRequest) (*Instructor, error)
	DeleteInstructor(ctx context.Context, ci string) error
}

type service struct {
	repo   Repository
	events *events.Emitter
}

func NewService(repo Repository, emitter *events.Emitter) Service {
	return &service{
		repo:   repo,
		events: emitter,
	}
}

// CreateInstructor inserts a new instructor. A ci that is already taken is
// reported by the storage layer as a conflict.
func (s *service) CreateInstructor(ctx context.Context, req CreateInstructorRequest) (*Instructor, error) {
	created, err := s.repo.Create(ctx, &Instructor{
		CI:      req.CI,
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "instructor.created", created.CI, created)
	return created, nil
}

func (s *service) GetAllInstructors(ctx context.Context) ([]Instructor, error) {
	instructors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(instructors) == 0 {
		return nil, ErrNoInstructors
	}
	return instructors, nil
}

func (s *service) GetInstructorByCI(ctx context.Context, ci string) (*Instructor, error) {
	return s.repo.GetByCI(ctx, ci)
}

func (s *service) UpdateInstructor(ctx context.Context, ci string, req UpdateInstructorRequest) (*Instructor, error) {
	if _, err := s.repo.GetByCI(ctx, ci); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &Instructor{
		CI:      ci,
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByCI(ctx, ci)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "instructor.updated", ci, updated)
	return updated, nil
}

func (s *service) DeleteInstructor(ctx context.Context, ci string) error {
	if _, err := s.repo.GetByCI(ctx, ci); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, ci); err != nil {
		return err
	}

	s.events.Emit(ctx, "instructor.deleted", ci, nil)
	return nil
}
