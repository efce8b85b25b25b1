package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountDisabled = errors.New("loyalty account is disabled")
	ErrBalanceMismatch = errors.New("entry previous balance does not match account balance")
	ErrWrongCustomer   = errors.New("entry belongs to a different customer")
)

// Account is the mutable per-customer projection of the ledger. It is only
// ever mutated through Apply, inside the same atomic scope as the ledger
// append it reflects.
type Account struct {
	customerID     uuid.UUID
	currentPoints  int64
	lifetimePoints int64
	tier           Tier
	disabled       bool
	enrolledAt     time.Time
	updatedAt      time.Time
}

func NewAccount(customerID uuid.UUID, now time.Time) *Account {
	return &Account{
		customerID:     customerID,
		currentPoints:  0,
		lifetimePoints: 0,
		tier:           TierBronze,
		enrolledAt:     now,
		updatedAt:      now,
	}
}

func ReconstructAccount(
	customerID uuid.UUID,
	currentPoints, lifetimePoints int64,
	tier Tier,
	disabled bool,
	enrolledAt, updatedAt time.Time,
) *Account {
	return &Account{
		customerID:     customerID,
		currentPoints:  currentPoints,
		lifetimePoints: lifetimePoints,
		tier:           tier,
		disabled:       disabled,
		enrolledAt:     enrolledAt,
		updatedAt:      updatedAt,
	}
}

// Apply folds a freshly created ledger entry into the projection. Credits
// grow the lifetime total; debits never shrink it. Returns a TierChange when
// the lifetime total crosses a threshold.
func (a *Account) Apply(entry *Entry, policy *TierPolicy, now time.Time) (*TierChange, error) {
	if a.disabled {
		return nil, ErrAccountDisabled
	}
	if entry.CustomerID() != a.customerID {
		return nil, ErrWrongCustomer
	}
	if entry.PreviousBalance() != a.currentPoints {
		return nil, ErrBalanceMismatch
	}

	a.currentPoints = entry.NewBalance()
	if entry.Points() > 0 {
		a.lifetimePoints += entry.Points()
	}
	a.updatedAt = now

	newTier := policy.TierFor(a.lifetimePoints).Name
	if newTier != a.tier {
		change := &TierChange{Old: a.tier, New: newTier}
		a.tier = newTier
		return change, nil
	}
	return nil, nil
}

// Disable soft-closes the account. The ledger history stays; no further
// entries can be applied.
func (a *Account) Disable(now time.Time) {
	a.disabled = true
	a.updatedAt = now
}

// TierProgress describes how far the account is from the next tier.
type TierProgress struct {
	NextTier      *Tier
	PointsToNext  int64
	PercentToNext float64
}

func (a *Account) Progress(policy *TierPolicy) TierProgress {
	next, ok := policy.NextTier(a.lifetimePoints)
	if !ok {
		return TierProgress{PercentToNext: 100}
	}

	current := policy.TierFor(a.lifetimePoints)
	span := next.Threshold - current.Threshold
	into := a.lifetimePoints - current.Threshold
	percent := 0.0
	if span > 0 {
		percent = float64(into) / float64(span) * 100
	}

	name := next.Name
	return TierProgress{
		NextTier:      &name,
		PointsToNext:  next.Threshold - a.lifetimePoints,
		PercentToNext: percent,
	}
}

func (a *Account) CustomerID() uuid.UUID { return a.customerID }
func (a *Account) CurrentPoints() int64  { return a.currentPoints }
func (a *Account) LifetimePoints() int64 { return a.lifetimePoints }
func (a *Account) Tier() Tier            { return a.tier }
func (a *Account) IsDisabled() bool      { return a.disabled }
func (a *Account) EnrolledAt() time.Time { return a.enrolledAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
