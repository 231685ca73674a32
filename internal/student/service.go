package student

import (
	"context"

	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
)

var (
	ErrStudentNotFound = apperr.New(apperr.ErrNotFound, "student not found")
	ErrNoStudents      = apperr.New(apperr.ErrNotFound, "no students found")
)

type Service interface {
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error)
	GetAllStudents(ctx context.Context) ([]Student, error)
	GetStudentByCI(ctx context.Context, ci string) (*Student, error)
	UpdateStudent(ctx context.Context, ci string, req UpdateStudentRequest) (*Student, error)
	DeleteStudent(ctx context.Context, ci string) error
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

func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (*Student, error) {
	birthDate, err := ParseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Student{
		CI:        req.CI,
		Name:      req.Name,
		Surname:   req.Surname,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Email:     req.Email,
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "student.created", created.CI, created)
	return created, nil
}

func (s *service) GetAllStudents(ctx context.Context) ([]Student, error) {
	students, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ErrNoStudents
	}
	return students, nil
}

func (s *service) GetStudentByCI(ctx context.Context, ci string) (*Student, error) {
	return s.repo.GetByCI(ctx, ci)
}

// UpdateStudent replaces the student stored under ci. The ci itself never changes.
func (s *service) UpdateStudent(ctx context.Context, ci string, req UpdateStudentRequest) (*Student, error) {
	birthDate, err := ParseDate(req.BirthDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByCI(ctx, ci); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &Student{
		CI:        ci,
		Name:      req.Name,
		Surname:   req.Surname,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Email:     req.Email,
	}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByCI(ctx, ci)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "student.updated", ci, updated)
	return updated, nil
}

func (s *service) DeleteStudent(ctx context.Context, ci string) error {
	if _, err := s.repo.GetByCI(ctx, ci); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, ci); err != nil {
		return err
	}

	s.events.Emit(ctx, "student.deleted", ci, nil)
	return nil
}
