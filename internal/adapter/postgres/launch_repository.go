package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ad-launcher/internal/core/port"
)

// LaunchRepository implements port.LaunchHistory using pgxpool for
// PostgreSQL. It is a pure audit trail: write-once records, no remote
// object graph.
type LaunchRepository struct {
	pool *pgxpool.Pool
}

// NewLaunchRepository returns a new repository instance.
func NewLaunchRepository(pool *pgxpool.Pool) *LaunchRepository {
	return &LaunchRepository{pool: pool}
}

// RecordLaunch stores one launch attempt.
func (r *LaunchRepository) RecordLaunch(ctx context.Context, rec port.LaunchRecord) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO launch_attempts
    (id, campaign_id, adset_id, creative_id, ad_id, failed_step, error, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.CampaignID, rec.AdSetID, rec.CreativeID, rec.AdID,
		rec.FailedStep, rec.Error, rec.CreatedAt)
	return err
}

// ListRecent returns the latest launch attempts, newest first.
func (r *LaunchRepository) ListRecent(ctx context.Context, limit int) ([]port.LaunchRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, adset_id, creative_id, ad_id, failed_step, error, created_at
        FROM launch_attempts
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.LaunchRecord, error) {
		var rec port.LaunchRecord
		err := row.Scan(
			&rec.ID,
			&rec.CampaignID,
			&rec.AdSetID,
			&rec.CreativeID,
			&rec.AdID,
			&rec.FailedStep,
			&rec.Error,
			&rec.CreatedAt,
		)
		return rec, err
	})
}
