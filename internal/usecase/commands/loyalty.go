package commands

import (
	"context"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/queries"
	"hotel-loyalty-core/internal/usecase/shared"
)

type AdjustPointsParams struct {
	CustomerID uuid.UUID
	// Points is signed: positive credits, negative debits. Zero is rejected.
	Points  int64
	Reason  string
	ActorID uuid.UUID
}

type LoyaltyCommands interface {
	// Adjust appends an ADJUSTMENT_ADMIN entry. It goes through the same
	// chain as every other entry, so a debit past the balance still fails.
	Adjust(ctx context.Context, p AdjustPointsParams) (*queries.LedgerEntryView, error)
	// Enroll opens a loyalty account for an existing customer that has none.
	Enroll(ctx context.Context, customerID uuid.UUID) error
	// Disable soft-closes an account; subsequent appends are rejected.
	Disable(ctx context.Context, customerID uuid.UUID) error
}

type loyaltyCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger *LedgerService
	clock  clock.Clock
}

func NewLoyaltyCommands(uow shared.UnitOfWork, ledger *LedgerService, clk clock.Clock) LoyaltyCommands {
	return &loyaltyCommandsImpl{uow: uow, ledger: ledger, clock: clk}
}

func (c *loyaltyCommandsImpl) Adjust(ctx context.Context, p AdjustPointsParams) (*queries.LedgerEntryView, error) {
	if p.Reason == "" {
		return nil, errs.Mark(errs.New("adjustment requires a reason"), errs.ErrDomainValidation)
	}

	var entry *loyalty.Entry
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		entry, _, err = c.ledger.Append(ctx, tx, AppendParams{
			CustomerID: p.CustomerID,
			Kind:       loyalty.KindAdjustmentAdmin,
			Points:     p.Points,
			ActorID:    p.ActorID,
			Reason:     p.Reason,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return entryToView(entry), nil
}

func (c *loyaltyCommandsImpl) Enroll(ctx context.Context, customerID uuid.UUID) error {
	account := loyalty.NewAccount(customerID, c.clock.Now())
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().Create(ctx, account)
	})
}

func (c *loyaltyCommandsImpl) Disable(ctx context.Context, customerID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.Accounts().GetForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		account.Disable(c.clock.Now())
		return tx.Accounts().Update(ctx, account)
	})
}

func entryToView(e *loyalty.Entry) *queries.LedgerEntryView {
	return &queries.LedgerEntryView{
		ID:              e.ID(),
		CustomerID:      e.CustomerID(),
		BookingID:       e.BookingID(),
		Kind:            string(e.Kind()),
		PointsAmount:    e.Points(),
		PreviousBalance: e.PreviousBalance(),
		NewBalance:      e.NewBalance(),
		Status:          string(e.Status()),
		ActorID:         e.ActorID(),
		Reason:          e.Reason(),
		CreatedAt:       e.CreatedAt(),
	}
}
