package shared

import (
	"context"
	"time"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork is the atomic scope every lifecycle operation runs in: all
// writes inside fn commit together or none do. Implementations retry
// serialization conflicts and bound scope acquisition by a timeout.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Ledger() LedgerRepository
	Accounts() AccountRepository
	Users() UserRepository
	Outbox() OutboxRepository
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// GetForUpdate locks the booking row for the remainder of the scope; it
	// is the first read of every transition so concurrent writers serialize.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	AppendStatusHistory(ctx context.Context, bookingID uuid.UUID, change booking.StatusChange) error
}

// LedgerRepository persists immutable entries. Inserts only; there is no
// update path by design of the schema.
type LedgerRepository interface {
	Insert(ctx context.Context, e *loyalty.Entry) error
}

type AccountRepository interface {
	Create(ctx context.Context, a *loyalty.Account) error
	// GetForUpdate locks the account row, serializing concurrent appends for
	// the same customer.
	GetForUpdate(ctx context.Context, customerID uuid.UUID) (*loyalty.Account, error)
	Update(ctx context.Context, a *loyalty.Account) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User, hashedPassword string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// OutboxRepository queues notification jobs inside the scope; a post-commit
// dispatcher drains them. Delivery failures never touch committed state.
type OutboxRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
