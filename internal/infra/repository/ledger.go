package repository

import (
	"context"
	"log/slog"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/shared"
)

// LedgerRepository only inserts; the table carries the per-row balance check
// and the domain carries the chain, so an UPDATE path would be a bug.
type LedgerRepository struct {
	dbtx   db.DBTX
	logger *slog.Logger
}

func NewLedgerRepository(dbtx db.DBTX) shared.LedgerRepository {
	return &LedgerRepository{dbtx: dbtx, logger: slog.Default()}
}

const insertLedgerSQL = `
INSERT INTO loyalty_ledger (
	id, customer_id, booking_id, kind, points_amount,
	previous_balance, new_balance, status, actor_id, reason, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (r *LedgerRepository) Insert(ctx context.Context, e *loyalty.Entry) error {
	_, err := r.dbtx.Exec(ctx, insertLedgerSQL,
		e.ID(), e.CustomerID(), e.BookingID(), string(e.Kind()), e.Points(),
		e.PreviousBalance(), e.NewBalance(), string(e.Status()), e.ActorID(), e.Reason(), e.CreatedAt(),
	)
	if err != nil {
		kind := infra.ClassifyPgErr(err)
		if kind == infra.KindCheckViolated {
			return errs.Mark(err, errs.ErrBalanceMismatch)
		}
		return infra.WrapRepoErr(r.logger, kind, "insert ledger entry", err)
	}
	return nil
}
