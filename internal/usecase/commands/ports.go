package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Collaborator ports. All three are external services the core consults but
// never owns; implementations live in internal/infra/collaborator.

type RoomSelection struct {
	RoomType string
	Quantity int
}

// QuoteSnapshot is the pricing collaborator's answer. The core never inspects
// how the final price was derived.
type QuoteSnapshot struct {
	BasePriceCents  int64
	FinalPriceCents int64
}

type PricingPort interface {
	Quote(ctx context.Context, hotelID uuid.UUID, rooms []RoomSelection, checkIn, checkOut time.Time) (*QuoteSnapshot, error)
}

type EligibilityResult struct {
	Eligible bool
	Reason   string
}

type EligibilityPort interface {
	CheckRedemptionEligible(ctx context.Context, customerID uuid.UUID, requestedDiscountCents int64) (*EligibilityResult, error)
}

// InventoryPort is consulted, never mutated: the surrounding creation flow
// owns reserve/release.
type InventoryPort interface {
	HoldStillValid(ctx context.Context, bookingID uuid.UUID) (bool, error)
}
