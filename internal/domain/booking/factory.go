package booking

import (
	"errors"

	"hotel-loyalty-core/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrDiscountExceedsPrice = errors.New("redemption discount exceeds booking price")

// Draft is the caller-supplied reservation request before pricing.
type Draft struct {
	CustomerID uuid.UUID
	HotelID    uuid.UUID
	Stay       StayPeriod
	Rooms      []RoomLine
}

// Quote is the pricing collaborator's answer, opaque beyond the two totals.
type Quote struct {
	BasePriceCents  int64
	FinalPriceCents int64
}

// Redemption is a validated request to spend points at creation time.
type Redemption struct {
	Points        int64
	DiscountCents int64
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{clock: clock}
}

// CreateBooking assembles a PENDING booking from a draft and a price quote.
// A redemption, when present, discounts the price before anything is
// persisted; the matching REDEEM ledger entry is the coordinator's job.
func (f *Factory) CreateBooking(draft Draft, quote Quote, redemption *Redemption, createdBy Actor) (*Booking, error) {
	basePrice, err := NewMoney(quote.BasePriceCents)
	if err != nil {
		return nil, err
	}
	finalPrice, err := NewMoney(quote.FinalPriceCents)
	if err != nil {
		return nil, err
	}

	if redemption != nil {
		if redemption.DiscountCents > finalPrice.Cents() {
			return nil, ErrDiscountExceedsPrice
		}
		finalPrice, err = finalPrice.Sub(redemption.DiscountCents)
		if err != nil {
			return nil, err
		}
	}

	return NewBooking(
		draft.CustomerID,
		draft.HotelID,
		draft.Stay,
		draft.Rooms,
		basePrice,
		finalPrice,
		createdBy,
		f.clock.Now(),
	)
}
