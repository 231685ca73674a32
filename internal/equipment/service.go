package equipment

import (
	"context"

	"schedule-service/internal/activity"
	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
)

var (
	ErrEquipmentNotFound = apperr.New(apperr.ErrNotFound, "equipment not found")
	ErrNoEquipment       = apperr.New(apperr.ErrNotFound, "no equipment found")
)

type Service interface {
	CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error)
	GetAllEquipment(ctx context.Context) ([]Equipment, error)
	GetEquipmentByID(ctx context.Context, id int) (*Equipment, error)
	UpdateEquipment(ctx context.Context, id int, req UpdateEquipmentRequest) (*Equipment, error)
	DeleteEquipment(ctx context.Context, id int) error
}

type service struct {
	repo         Repository
	activityRepo activity.Repository
	events       *events.Emitter
}

func NewService(repo Repository, activityRepo activity.Repository, emitter *events.Emitter) Service {
	return &service{
		repo:         repo,
		activityRepo: activityRepo,
		events:       emitter,
	}
}

func (s *service) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*Equipment, error) {
	if err := s.checkActivity(ctx, req.ActivityID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Equipment{
		ActivityID:  req.ActivityID,
		Description: req.Description,
		Cost:        *req.Cost,
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "equipment.created", created.ID, created)
	return created, nil
}

func (s *service) GetAllEquipment(ctx context.Context) ([]Equipment, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoEquipment
	}
	return items, nil
}

func (s *service) GetEquipmentByID(ctx context.Context, id int) (*Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateEquipment(ctx context.Context, id int, req UpdateEquipmentRequest) (*Equipment, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.checkActivity(ctx, req.ActivityID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &Equipment{
		ID:          id,
		ActivityID:  req.ActivityID,
		Description: req.Description,
		Cost:        *req.Cost,
	}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "equipment.updated", id, updated)
	return updated, nil
}

func (s *service) DeleteEquipment(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Emit(ctx, "equipment.deleted", id, nil)
	return nil
}

func (s *service) checkActivity(ctx context.Context, activityID int) error {
	exists, err := s.activityRepo.Exists(ctx, activityID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("activity %d does not exist", activityID)
	}
	return nil
}
