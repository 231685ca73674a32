package auth

import (
	"context"
	"time"

	"schedule-service/internal/apperr"
	"schedule-service/internal/metrics"

	"github.com/uptrace/bun"
)

type Repository struct {
	db      *bun.DB
	metrics *metrics.Metrics
}

func NewRepository(db *bun.DB, m *metrics.Metrics) *Repository {
	return &Repository{
		db:      db,
		metrics: m,
	}
}

func (r *Repository) Create(ctx context.Context, credential *Credential) error {
	start := time.Now()
	_, err := r.db.NewInsert().Model(credential).Exec(ctx)

	r.metrics.Database.RecordQuery(ctx, "insert", "credentials", time.Since(start), err)

	return apperr.Storage(err)
}

func (r *Repository) GetByCI(ctx context.Context, ci string) (*Credential, error) {
	start := time.Now()
	credential := new(Credential)
	err := r.db.NewSelect().Model(credential).Where("ci = ?", ci).Scan(ctx)

	r.metrics.Database.RecordQuery(ctx, "select", "credentials", time.Since(start), err)

	if err != nil {
		return nil, apperr.NotFoundOr(err, errCredentialNotFound)
	}
	return credential, nil
}
