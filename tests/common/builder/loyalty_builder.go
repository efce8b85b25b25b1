//go:build unit || e2e

package builder

import (
	"time"

	"hotel-loyalty-core/internal/domain/loyalty"

	"github.com/google/uuid"
)

type EntryBuilder struct {
	CustomerID      uuid.UUID
	BookingID       *uuid.UUID
	Kind            loyalty.Kind
	Points          int64
	PreviousBalance int64
	ActorID         uuid.UUID
	Reason          string
	Now             time.Time
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		CustomerID:      uuid.New(),
		BookingID:       nil,
		Kind:            loyalty.KindEarnConfirm,
		Points:          100,
		PreviousBalance: 0,
		ActorID:         uuid.New(),
		Reason:          "confirmation earn",
		Now:             time.Now().UTC(),
	}
}

func (b *EntryBuilder) With(mutate func(*EntryBuilder)) *EntryBuilder {
	mutate(b)
	return b
}

func (b *EntryBuilder) BuildDomain() (*loyalty.Entry, error) {
	return loyalty.NewEntry(b.CustomerID, b.BookingID, b.Kind, b.Points, b.PreviousBalance, b.ActorID, b.Reason, b.Now)
}

func (b *EntryBuilder) WithCustomerID(customerID uuid.UUID) *EntryBuilder {
	b.CustomerID = customerID
	return b
}

func (b *EntryBuilder) WithBookingID(bookingID uuid.UUID) *EntryBuilder {
	b.BookingID = &bookingID
	return b
}

func (b *EntryBuilder) WithKind(kind loyalty.Kind) *EntryBuilder {
	b.Kind = kind
	return b
}

func (b *EntryBuilder) WithPoints(points int64) *EntryBuilder {
	b.Points = points
	return b
}

func (b *EntryBuilder) WithPreviousBalance(balance int64) *EntryBuilder {
	b.PreviousBalance = balance
	return b
}

type AccountBuilder struct {
	CustomerID     uuid.UUID
	CurrentPoints  int64
	LifetimePoints int64
	Tier           loyalty.Tier
	Disabled       bool
	EnrolledAt     time.Time
	UpdatedAt      time.Time
}

func NewAccountBuilder() *AccountBuilder {
	now := time.Now().UTC()
	return &AccountBuilder{
		CustomerID:     uuid.New(),
		CurrentPoints:  0,
		LifetimePoints: 0,
		Tier:           loyalty.TierBronze,
		EnrolledAt:     now,
		UpdatedAt:      now,
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) BuildDomain() *loyalty.Account {
	return loyalty.ReconstructAccount(
		b.CustomerID, b.CurrentPoints, b.LifetimePoints, b.Tier, b.Disabled, b.EnrolledAt, b.UpdatedAt,
	)
}

func (b *AccountBuilder) WithCustomerID(customerID uuid.UUID) *AccountBuilder {
	b.CustomerID = customerID
	return b
}

func (b *AccountBuilder) WithBalance(current, lifetime int64) *AccountBuilder {
	b.CurrentPoints = current
	b.LifetimePoints = lifetime
	return b
}

func (b *AccountBuilder) WithTier(tier loyalty.Tier) *AccountBuilder {
	b.Tier = tier
	return b
}

func (b *AccountBuilder) AsDisabled() *AccountBuilder {
	b.Disabled = true
	return b
}
