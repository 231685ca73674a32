package class

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, class *Class) (*Class, error)
	GetAll(ctx context.Context) ([]Class, error)
	GetByID(ctx context.Context, id int) (*Class, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, class *Class) error
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

func (r *repository) Create(ctx context.Context, class *Class) (*Class, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(class).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "classes", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return class, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Class, error) {
	start := time.Now()
	classes := make([]Class, 0)
	err := r.db.NewSelect().Model(&classes).Order("id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "classes", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Class, error) {
	start := time.Now()
	class := new(Class)
	err := r.db.NewSelect().Model(class).Where("id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "classes", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrClassNotFound)
	}
	return class, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Class)(nil)).Where("id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "classes", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, class *Class) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(class).
		Column("instructor_ci", "activity_id", "timeslot_id", "taught").
		WherePK().
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "classes", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model(&Class{ID: id}).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "classes", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrClassNotFound
	}
	return nil
}
