package readstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/infra"
	"hotel-loyalty-core/internal/infra/db"
	"hotel-loyalty-core/internal/usecase/queries"
)

type LoyaltyReadStore struct {
	dbtx   db.DBTX
	policy *loyalty.TierPolicy
	logger *slog.Logger
}

func NewLoyaltyReadStore(dbtx db.DBTX, policy *loyalty.TierPolicy) queries.LoyaltyReadStore {
	return &LoyaltyReadStore{dbtx: dbtx, policy: policy, logger: slog.Default()}
}

const selectEntriesSQL = `
SELECT id, customer_id, booking_id, kind, points_amount,
	previous_balance, new_balance, status, actor_id, reason, created_at
FROM loyalty_ledger`

func (r *LoyaltyReadStore) FindEntriesByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.LedgerEntryView, error) {
	rows, err := r.dbtx.Query(ctx, selectEntriesSQL+` WHERE customer_id = $1 ORDER BY seq`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find ledger entries", err)
	}
	return r.scanEntries(rows)
}

func (r *LoyaltyReadStore) FindEntriesByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.LedgerEntryView, error) {
	rows, err := r.dbtx.Query(ctx, selectEntriesSQL+` WHERE booking_id = $1 ORDER BY seq`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find ledger entries for booking", err)
	}
	return r.scanEntries(rows)
}

func (r *LoyaltyReadStore) scanEntries(rows pgx.Rows) ([]*queries.LedgerEntryView, error) {
	defer rows.Close()

	entries := []*queries.LedgerEntryView{}
	for rows.Next() {
		entry := &queries.LedgerEntryView{}
		err := rows.Scan(
			&entry.ID, &entry.CustomerID, &entry.BookingID, &entry.Kind, &entry.PointsAmount,
			&entry.PreviousBalance, &entry.NewBalance, &entry.Status, &entry.ActorID, &entry.Reason, &entry.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan ledger entry", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *LoyaltyReadStore) FindAccountByCustomerID(ctx context.Context, customerID uuid.UUID) (*queries.AccountSummaryView, error) {
	var (
		id                    uuid.UUID
		current, lifetime     int64
		tier                  string
		disabled              bool
		enrolledAt, updatedAt time.Time
	)
	err := r.dbtx.QueryRow(ctx,
		`SELECT customer_id, current_points, lifetime_points, tier, is_disabled, enrolled_at, updated_at
		 FROM loyalty_accounts WHERE customer_id = $1`,
		customerID,
	).Scan(&id, &current, &lifetime, &tier, &disabled, &enrolledAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "loyalty account not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find loyalty account", err)
	}

	account := loyalty.ReconstructAccount(id, current, lifetime, loyalty.Tier(tier), disabled, enrolledAt, updatedAt)
	progress := account.Progress(r.policy)

	view := &queries.AccountSummaryView{
		CustomerID:     account.CustomerID(),
		CurrentPoints:  account.CurrentPoints(),
		LifetimePoints: account.LifetimePoints(),
		Tier:           string(account.Tier()),
		PointsToNext:   progress.PointsToNext,
		PercentToNext:  progress.PercentToNext,
		IsDisabled:     account.IsDisabled(),
		EnrolledAt:     account.EnrolledAt(),
	}
	if def, ok := r.policy.Definition(account.Tier()); ok {
		view.Benefits = def.Benefits
	}
	if progress.NextTier != nil {
		next := string(*progress.NextTier)
		view.NextTier = &next
	}
	return view, nil
}
