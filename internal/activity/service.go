package activity

import (
	"context"

	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
)

var (
	ErrActivityNotFound = apperr.New(apperr.ErrNotFound, "activity not found")
	// ErrNoActivities is returned by listing an empty table. Callers cannot
	// tell "no rows yet" apart from a missing resource; clients rely on it.
	ErrNoActivities = apperr.New(apperr.ErrNotFound, "no activities found")
)

type Service interface {
	CreateActivity(ctx context.Context, req CreateActivityRequest) (*Activity, error)
	GetAllActivities(ctx context.Context) ([]Activity, error)
	GetActivityByID(ctx context.Context, id int) (*Activity, error)
	UpdateActivity(ctx context.Context, id int, req UpdateActivityRequest) (*Activity, error)
	DeleteActivity(ctx context.Context, id int) error
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

func (s *service) CreateActivity(ctx context.Context, req CreateActivityRequest) (*Activity, error) {
	created, err := s.repo.Create(ctx, &Activity{
		Description: req.Description,
		Cost:        *req.Cost,
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "activity.created", created.ID, created)
	return created, nil
}

func (s *service) GetAllActivities(ctx context.Context) ([]Activity, error) {
	activities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}
	return activities, nil
}

func (s *service) GetActivityByID(ctx context.Context, id int) (*Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateActivity(ctx context.Context, id int, req UpdateActivityRequest) (*Activity, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &Activity{
		ID:          id,
		Description: req.Description,
		Cost:        *req.Cost,
	}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "activity.updated", id, updated)
	return updated, nil
}

func (s *service) DeleteActivity(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Emit(ctx, "activity.deleted", id, nil)
	return nil
}
