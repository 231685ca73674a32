package timeslot

import (
	"context"

	"schedule-service/internal/apperr"
	"schedule-service/internal/events"
)

var (
	ErrTimeSlotNotFound = apperr.New(apperr.ErrNotFound, "timeslot not found")
	ErrNoTimeSlots      = apperr.New(apperr.ErrNotFound, "no timeslots found")
)

type Service interface {
	CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error)
	GetAllTimeSlots(ctx context.Context) ([]TimeSlot, error)
	GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error)
	UpdateTimeSlot(ctx context.Context, id int, req UpdateTimeSlotRequest) (*TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, id int) error
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

// window parses both ends of a slot. The slot must not be empty or inverted.
func window(startRaw, endRaw string) (Clock, Clock, error) {
	start, err := ParseClock(startRaw)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(endRaw)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, apperr.Validation("start_time %s must be before end_time %s", start, end)
	}
	return start, end, nil
}

func (s *service) CreateTimeSlot(ctx context.Context, req CreateTimeSlotRequest) (*TimeSlot, error) {
	start, end, err := window(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &TimeSlot{StartTime: start, EndTime: end})
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "timeslot.created", created.ID, created)
	return created, nil
}

func (s *service) GetAllTimeSlots(ctx context.Context) ([]TimeSlot, error) {
	slots, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, ErrNoTimeSlots
	}
	return slots, nil
}

func (s *service) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateTimeSlot(ctx context.Context, id int, req UpdateTimeSlotRequest) (*TimeSlot, error) {
	start, end, err := window(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &TimeSlot{ID: id, StartTime: start, EndTime: end}); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.events.Emit(ctx, "timeslot.updated", id, updated)
	return updated, nil
}

func (s *service) DeleteTimeSlot(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Emit(ctx, "timeslot.deleted", id, nil)
	return nil
}
