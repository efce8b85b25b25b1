package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/shared"
)

const tierChangedTopic = "loyalty.tier_changed"

type AppendParams struct {
	CustomerID uuid.UUID
	Kind       loyalty.Kind
	Points     int64
	BookingID  *uuid.UUID
	ActorID    uuid.UUID
	Reason     string
}

// LedgerService is the single write path into the loyalty ledger. Every
// caller runs inside a unit of work; the account row lock taken here
// serializes concurrent appends for one customer, so the balance chain
// (previous_balance of entry N+1 == new_balance of entry N) holds by
// construction.
type LedgerService struct {
	policy *loyalty.TierPolicy
	clock  clock.Clock
}

func NewLedgerService(policy *loyalty.TierPolicy, clk clock.Clock) *LedgerService {
	return &LedgerService{policy: policy, clock: clk}
}

// Append locks the account, builds the next chain entry, applies it to the
// projection and persists both. A tier crossing enqueues a notification job
// on the same transaction. Appending zero points is a caller bug.
func (s *LedgerService) Append(ctx context.Context, tx shared.Tx, p AppendParams) (*loyalty.Entry, *loyalty.TierChange, error) {
	account, err := tx.Accounts().GetForUpdate(ctx, p.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	now := s.clock.Now()
	entry, err := loyalty.NewEntry(
		p.CustomerID,
		p.BookingID,
		p.Kind,
		p.Points,
		account.CurrentPoints(),
		p.ActorID,
		p.Reason,
		now,
	)
	if err != nil {
		return nil, nil, mapLedgerError(err)
	}

	change, err := account.Apply(entry, s.policy, now)
	if err != nil {
		return nil, nil, mapLedgerError(err)
	}

	if err := tx.Ledger().Insert(ctx, entry); err != nil {
		return nil, nil, err
	}
	if err := tx.Accounts().Update(ctx, account); err != nil {
		return nil, nil, err
	}
	if change != nil {
		if err := s.enqueueTierChanged(ctx, tx, account, change, now); err != nil {
			return nil, nil, err
		}
	}
	return entry, change, nil
}

func (s *LedgerService) enqueueTierChanged(ctx context.Context, tx shared.Tx, account *loyalty.Account, change *loyalty.TierChange, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"customer_id":     account.CustomerID().String(),
		"previous_tier":   string(change.Old),
		"new_tier":        string(change.New),
		"lifetime_points": account.LifetimePoints(),
		"changed_at":      now,
	})
	if err != nil {
		return errs.Wrap(err, "marshal tier changed payload")
	}
	return tx.Outbox().CreateJob(ctx, "notification", tierChangedTopic, payload, now)
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, loyalty.ErrInsufficientBalance):
		return errs.Mark(err, errs.ErrInsufficientBalance)
	case errors.Is(err, loyalty.ErrBalanceMismatch):
		return errs.Mark(err, errs.ErrBalanceMismatch)
	case errors.Is(err, loyalty.ErrAccountDisabled):
		return errs.Mark(err, errs.ErrAccountDisabled)
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
