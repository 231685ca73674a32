package timeslot

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, slot *TimeSlot) (*TimeSlot, error)
	GetAll(ctx context.Context) ([]TimeSlot, error)
	GetByID(ctx context.Context, id int) (*TimeSlot, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, slot *TimeSlot) error
	Delete(ctx context.Context, id int) error
}

type repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) Repository {
	return &repository{
		db:      db,
		metrics: m,
	}
}

func (r *repository) Create(ctx context.Context, slot *TimeSlot) (*TimeSlot, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(slot).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "timeslots", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return slot, nil
}

func (r *repository) GetAll(ctx context.Context) ([]TimeSlot, error) {
	start := time.Now()
	slots := make([]TimeSlot, 0)
	err := r.db.NewSelect().Model(&slots).Order("start_time ASC", "id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "timeslots", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return slots, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TimeSlot, error) {
	start := time.Now()
	slot := new(TimeSlot)
	err := r.db.NewSelect().Model(slot).Where("id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "timeslots", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrTimeSlotNotFound)
	}
	return slot, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*TimeSlot)(nil)).Where("id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "timeslots", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, slot *TimeSlot) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(slot).
		Column("start_time", "end_time").
		WherePK().
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "timeslots", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model(&TimeSlot{ID: id}).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "timeslots", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrTimeSlotNotFound
	}
	return nil
}
