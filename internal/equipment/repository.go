package equipment

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, item *Equipment) (*Equipment, error)
	GetAll(ctx context.Context) ([]Equipment, error)
	GetByID(ctx context.Context, id int) (*Equipment, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, item *Equipment) error
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

func (r *repository) Create(ctx context.Context, item *Equipment) (*Equipment, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(item).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "equipment", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return item, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Equipment, error) {
	start := time.Now()
	items := make([]Equipment, 0)
	err := r.db.NewSelect().Model(&items).Order("id ASC").Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "equipment", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Equipment, error) {
	start := time.Now()
	item := new(Equipment)
	err := r.db.NewSelect().Model(item).Where("id = ?", id).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "equipment", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrEquipmentNotFound)
	}
	return item, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().Model((*Equipment)(nil)).Where("id = ?", id).Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "equipment", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

func (r *repository) Update(ctx context.Context, item *Equipment) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model(item).
		Column("activity_id", "description", "cost").
		WherePK().
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "equipment", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	result, err := r.db.NewDelete().Model(&Equipment{ID: id}).WherePK().Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "equipment", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrEquipmentNotFound
	}
	return nil
}
