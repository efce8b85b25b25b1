package repository

import (
	"context"
	"log/slog"
	"time"

	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/usecase/shared"
)

// OutboxRepository writes notification jobs on the caller's transaction so a
// rolled-back operation leaves nothing to deliver.
type OutboxRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewOutboxRepository(dbtx db.DBTX) shared.OutboxRepository {
	return &OutboxRepository{dbtx: dbtx, logger: slog.Default()}
}

func (r *OutboxRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.dbtx.Exec(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at) VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "insert notification job", err)
	}
	return nil
}
