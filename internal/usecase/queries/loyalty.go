package queries

import (
	"context"

	"github.com/google/uuid"
)

type LoyaltyQueries interface {
	// Statement returns a customer's ledger entries in insertion order.
	Statement(ctx context.Context, customerID uuid.UUID) ([]*LedgerEntryView, error)
	// StatementForBooking returns the entries one booking produced.
	StatementForBooking(ctx context.Context, bookingID uuid.UUID) ([]*LedgerEntryView, error)
	AccountSummary(ctx context.Context, customerID uuid.UUID) (*AccountSummaryView, error)
}

type LoyaltyReadStore interface {
	FindEntriesByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*LedgerEntryView, error)
	FindEntriesByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*LedgerEntryView, error)
	FindAccountByCustomerID(ctx context.Context, customerID uuid.UUID) (*AccountSummaryView, error)
}

type loyaltyQueriesImpl struct {
	store LoyaltyReadStore
}

func NewLoyaltyQueries(store LoyaltyReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store}
}

func (q *loyaltyQueriesImpl) Statement(ctx context.Context, customerID uuid.UUID) ([]*LedgerEntryView, error) {
	return q.store.FindEntriesByCustomerID(ctx, customerID)
}

func (q *loyaltyQueriesImpl) StatementForBooking(ctx context.Context, bookingID uuid.UUID) ([]*LedgerEntryView, error) {
	return q.store.FindEntriesByBookingID(ctx, bookingID)
}

func (q *loyaltyQueriesImpl) AccountSummary(ctx context.Context, customerID uuid.UUID) (*AccountSummaryView, error) {
	return q.store.FindAccountByCustomerID(ctx, customerID)
}
