package activity

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, activity *Activity) (*Activity, error)
	GetAll(ctx context.Context) ([]Activity, error)
	GetByID(ctx context.Context, id int) (*Activity, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, activity *Activity) error
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

func (r *repository) Create(ctx context.Context, activity *Activity) (*Activity, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(activity).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "activities", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return activity, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Activity, error) {
	start := time.Now()
	activities := make([]Activity, 0)
	err := r.db.NewSelect().Model(&activities).Order("id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "activities", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return activities, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Activity, error) {
	start := time.Now()
	activity := new(Activity)
	err := r.db.NewSelect().Model(activity).Where("id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "activities", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrActivityNotFound)
	}
	return activity, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Activity)(nil)).Where("id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "activities", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, activity *Activity) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(activity).
		Column("description", "cost").
		WherePK().
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "activities", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	activity := &Activity{ID: id}
	result, err := r.db.NewDelete().Model(activity).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "activities", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrActivityNotFound
	}
	return nil
}
