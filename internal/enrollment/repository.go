package enrollment

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository interface {
	Create(ctx context.Context, enrollment *Enrollment) (*Enrollment, error)
	GetAll(ctx context.Context) ([]Enrollment, error)
	GetByKey(ctx context.Context, key Key) (*Enrollment, error)
	Exists(ctx context.Context, key Key) (bool, error)
	UpdateKey(ctx context.Context, old, updated Key) error
	Delete(ctx context.Context, key Key) error
	DeleteByClass(ctx context.Context, classID int) (int, error)
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

const keyClause = "class_id = ? AND student_ci = ? AND equipment_id = ?"

func keyArgs(key Key) []interface{} {
	return []interface{}{key.ClassID, key.StudentCI, key.EquipmentID}
}

func (r *repository) Create(ctx context.Context, enrollment *Enrollment) (*Enrollment, error) {
	start := time.Now()
	_, err := r.db.NewInsert().Model(enrollment).Returning("*").Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "enrollments", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return enrollment, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Enrollment, error) {
	start := time.Now()
	enrollments := make([]Enrollment, 0)
	err := r.db.NewSelect().
		Model(&enrollments).
		Order("class_id ASC", "student_ci ASC", "equipment_id ASC").
		Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "enrollments", time.Since(start), err)

	if err != nil {
		return nil, apperr.Storage(err)
	}
	return enrollments, nil
}

func (r *repository) GetByKey(ctx context.Context, key Key) (*Enrollment, error) {
	start := time.Now()
	enrollment := new(Enrollment)
	err := r.db.NewSelect().Model(enrollment).Where(keyClause, keyArgs(key)...).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "enrollments", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, ErrEnrollmentNotFound)
	}
	return enrollment, nil
}

func (r *repository) Exists(ctx context.Context, key Key) (bool, error) {
	start := time.Now()
	exists, err := r.db.NewSelect().
		Model((*Enrollment)(nil)).
		Where(keyClause, keyArgs(key)...).
		Exists(ctx)

	r.metrics.Database.RecordQuery(ctx, "exists", "enrollments", time.Since(start), err)

	if err != nil {
		return false, apperr.Storage(err)
	}
	return exists, nil
}

// UpdateKey rewrites the key columns of the row stored under old in place.
func (r *repository) UpdateKey(ctx context.Context, old, updated Key) error {
	start := time.Now()
	result, err := r.db.NewUpdate().
		Model((*Enrollment)(nil)).
		Set("class_id = ?", updated.ClassID).
		Set("student_ci = ?", updated.StudentCI).
		Set("equipment_id = ?", updated.EquipmentID).
		Where(keyClause, keyArgs(old)...).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "update", "enrollments", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, key Key) error {
	start := time.Now()
	result, err := r.db.NewDelete().
		Model((*Enrollment)(nil)).
		Where(keyClause, keyArgs(key)...).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "enrollments", time.Since(start), err)

	if err != nil {
		return apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if rowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

// DeleteByClass removes every enrollment of a class and reports how many went.
func (r *repository) DeleteByClass(ctx context.Context, classID int) (int, error) {
	start := time.Now()
	result, err := r.db.NewDelete().
		Model((*Enrollment)(nil)).
		Where("class_id = ?", classID).
		Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "delete", "enrollments", time.Since(start), err)

	if err != nil {
		return 0, apperr.Storage(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperr.Storage(err)
	}
	return int(rowsAffected), nil
}
