package instructor

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, instructor *Instructor) (*Instructor, error)
	GetAll(ctx context.Context) ([]Instructor, error)
	GetByCI(ctx context.Context, ci string) (*Instructor, error)
	Exists(ctx context.Context, ci string) (bool, error)
	Update(ctx context.Context, instructor *Instructor) error
	Delete(ctx context.Context, ci string) error
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

func (r *repository) Create(ctx context.Context, instructor *Instructor) (*Instructor, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(instructor).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "instructors", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return instructor, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Instructor, error) {
	start := time.Now()
	instructors := make([]Instructor, 0)
	err := r.db.NewSelect().Model(&instructors).Order("surname ASC", "name ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "instructors", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return instructors, nil
}

func (r *repository) GetByCI(ctx context.Context, ci string) (*Instructor, error) {
	start := time.Now()
	instructor := new(Instructor)
	err := r.db.NewSelect().Model(instructor).Where("ci = ?", ci).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "instructors", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrInstructorNotFound)
	}
	return instructor, nil
}

func (r *repository) Exists(ctx context.Context, ci string) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Instructor)(nil)).Where("ci = ?", ci).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "instructors", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, instructor *Instructor) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(instructor).
		Column("name", "surname", "email").
		WherePK().
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "instructors", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrInstructorNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, ci string) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model(&Instructor{CI: ci}).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "instructors", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrInstructorNotFound
	}
	return nil
}
