package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind         = errors.New("invalid ledger entry kind")
	ErrZeroAmount          = errors.New("ledger entry amount cannot be zero")
	ErrAmountSignMismatch  = errors.New("ledger entry amount sign does not match kind")
	ErrInsufficientBalance = errors.New("insufficient points balance")
)

// Kind classifies a point movement by the lifecycle stage that produced it.
type Kind string

const (
	KindEarnConfirm         Kind = "EARN_CONFIRM"
	KindEarnCompletion      Kind = "EARN_COMPLETION"
	KindRedeem              Kind = "REDEEM"
	KindRefundRejection     Kind = "REFUND_REJECTION"
	KindRefundCancellation  Kind = "REFUND_CANCELLATION"
	KindPenaltyCancellation Kind = "PENALTY_CANCELLATION"
	KindAdjustmentAdmin     Kind = "ADJUSTMENT_ADMIN"
	KindExpire              Kind = "EXPIRE"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindEarnConfirm, KindEarnCompletion, KindRedeem, KindRefundRejection,
		KindRefundCancellation, KindPenaltyCancellation, KindAdjustmentAdmin, KindExpire:
		return true
	default:
		return false
	}
}

// IsCredit reports whether the kind only ever adds points. ADJUSTMENT_ADMIN
// is neither: it carries whichever sign the administrator chose.
func (k Kind) IsCredit() bool {
	switch k {
	case KindEarnConfirm, KindEarnCompletion, KindRefundRejection, KindRefundCancellation:
		return true
	default:
		return false
	}
}

func (k Kind) IsDebit() bool {
	switch k {
	case KindRedeem, KindPenaltyCancellation, KindExpire:
		return true
	default:
		return false
	}
}

type EntryStatus string

const (
	EntryStatusCompleted EntryStatus = "COMPLETED"
	EntryStatusCancelled EntryStatus = "CANCELLED"
)

// Entry is one immutable signed point movement. Entries are append-only:
// corrections are new ADJUSTMENT_ADMIN entries, never edits.
type Entry struct {
	id              uuid.UUID
	customerID      uuid.UUID
	bookingID       *uuid.UUID
	kind            Kind
	points          int64
	previousBalance int64
	newBalance      int64
	status          EntryStatus
	actorID         uuid.UUID
	reason          string
	createdAt       time.Time
}

// NewEntry builds the next entry in a customer's chain. previousBalance must
// be the account's current balance read under the same lock that will commit
// this entry; the balance invariant newBalance == previousBalance + points is
// established here and enforced again by the store.
func NewEntry(
	customerID uuid.UUID,
	bookingID *uuid.UUID,
	kind Kind,
	points int64,
	previousBalance int64,
	actorID uuid.UUID,
	reason string,
	now time.Time,
) (*Entry, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if points == 0 {
		return nil, ErrZeroAmount
	}
	if kind.IsCredit() && points < 0 {
		return nil, ErrAmountSignMismatch
	}
	if kind.IsDebit() && points > 0 {
		return nil, ErrAmountSignMismatch
	}

	newBalance := previousBalance + points
	if newBalance < 0 {
		return nil, ErrInsufficientBalance
	}

	return &Entry{
		id:              uuid.New(),
		customerID:      customerID,
		bookingID:       bookingID,
		kind:            kind,
		points:          points,
		previousBalance: previousBalance,
		newBalance:      newBalance,
		status:          EntryStatusCompleted,
		actorID:         actorID,
		reason:          reason,
		createdAt:       now,
	}, nil
}

func ReconstructEntry(
	id, customerID uuid.UUID,
	bookingID *uuid.UUID,
	kind Kind,
	points, previousBalance, newBalance int64,
	status EntryStatus,
	actorID uuid.UUID,
	reason string,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:              id,
		customerID:      customerID,
		bookingID:       bookingID,
		kind:            kind,
		points:          points,
		previousBalance: previousBalance,
		newBalance:      newBalance,
		status:          status,
		actorID:         actorID,
		reason:          reason,
		createdAt:       createdAt,
	}
}

func (e *Entry) ID() uuid.UUID          { return e.id }
func (e *Entry) CustomerID() uuid.UUID  { return e.customerID }
func (e *Entry) BookingID() *uuid.UUID  { return e.bookingID }
func (e *Entry) Kind() Kind             { return e.kind }
func (e *Entry) Points() int64          { return e.points }
func (e *Entry) PreviousBalance() int64 { return e.previousBalance }
func (e *Entry) NewBalance() int64      { return e.newBalance }
func (e *Entry) Status() EntryStatus    { return e.status }
func (e *Entry) ActorID() uuid.UUID     { return e.actorID }
func (e *Entry) Reason() string         { return e.reason }
func (e *Entry) CreatedAt() time.Time   { return e.createdAt }
