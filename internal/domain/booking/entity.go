package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrActorNotPermitted = errors.New("actor role not permitted for this transition")
	ErrCheckInTooEarly   = errors.New("check-in date not reached")
	ErrNoRooms           = errors.New("booking requires at least one room line")
)

// Booking is the reservation aggregate: the room/price snapshot taken at
// creation, the lifecycle status with its append-only history, and the
// loyalty-effect summary tying the booking to its ledger entries.
type Booking struct {
	id         uuid.UUID
	customerID uuid.UUID
	hotelID    uuid.UUID
	stay       StayPeriod
	rooms      []RoomLine
	basePrice  Money
	finalPrice Money
	status     Status
	history    []StatusChange
	effect     LoyaltyEffect
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(
	customerID, hotelID uuid.UUID,
	stay StayPeriod,
	rooms []RoomLine,
	basePrice, finalPrice Money,
	createdBy Actor,
	now time.Time,
) (*Booking, error) {
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}

	b := &Booking{
		id:         uuid.New(),
		customerID: customerID,
		hotelID:    hotelID,
		stay:       stay,
		rooms:      rooms,
		basePrice:  basePrice,
		finalPrice: finalPrice,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}
	b.history = append(b.history, StatusChange{
		Previous:  "",
		Next:      StatusPending,
		ActorID:   createdBy.ID,
		ActorRole: createdBy.Role,
		Reason:    "booking created",
		At:        now,
	})
	return b, nil
}

func ReconstructBooking(
	id, customerID, hotelID uuid.UUID,
	stay StayPeriod,
	rooms []RoomLine,
	basePrice, finalPrice Money,
	status Status,
	history []StatusChange,
	effect LoyaltyEffect,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		customerID: customerID,
		hotelID:    hotelID,
		stay:       stay,
		rooms:      rooms,
		basePrice:  basePrice,
		finalPrice: finalPrice,
		status:     status,
		history:    history,
		effect:     effect,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TransitionTo validates and applies one lifecycle step. On failure the
// booking is left untouched. The returned StatusChange is the history row the
// repository persists.
func (b *Booking) TransitionTo(target Status, actor Actor, reason string, opts TransitionOptions, now time.Time) (StatusChange, error) {
	if !target.IsValid() || !b.status.CanTransitionTo(target) {
		return StatusChange{}, ErrInvalidTransition
	}
	if !RoleMayTransitionTo(actor.Role, target) {
		return StatusChange{}, ErrActorNotPermitted
	}
	if target == StatusCheckedIn && !opts.OverrideCheckInDate && now.Before(b.stay.CheckIn()) {
		return StatusChange{}, ErrCheckInTooEarly
	}

	change := StatusChange{
		Previous:  b.status,
		Next:      target,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Reason:    reason,
		At:        now,
	}
	b.status = target
	b.history = append(b.history, change)
	b.updatedAt = now
	return change, nil
}

func (b *Booking) RecordRedemption(points, discountCents int64, txID uuid.UUID, now time.Time) error {
	effect, err := b.effect.WithRedemption(points, discountCents, txID)
	if err != nil {
		return err
	}
	b.effect = effect
	b.updatedAt = now
	return nil
}

func (b *Booking) RecordConfirmEarn(points int64, txID uuid.UUID, now time.Time) error {
	effect, err := b.effect.WithConfirmEarn(points, txID)
	if err != nil {
		return err
	}
	b.effect = effect
	b.updatedAt = now
	return nil
}

func (b *Booking) RecordCompletionBonus(points int64, txID uuid.UUID, now time.Time) error {
	effect, err := b.effect.WithCompletionBonus(points, txID)
	if err != nil {
		return err
	}
	b.effect = effect
	b.updatedAt = now
	return nil
}

func (b *Booking) RecordRefund(points int64, txID uuid.UUID, now time.Time) error {
	effect, err := b.effect.WithRefund(points, txID)
	if err != nil {
		return err
	}
	b.effect = effect
	b.updatedAt = now
	return nil
}

func (b *Booking) RecordPenaltyShortfall(points int64, now time.Time) {
	b.effect = b.effect.WithShortfall(points)
	b.updatedAt = now
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) HotelID() uuid.UUID    { return b.hotelID }
func (b *Booking) Stay() StayPeriod      { return b.stay }
func (b *Booking) Rooms() []RoomLine     { return b.rooms }
func (b *Booking) BasePrice() Money      { return b.basePrice }
func (b *Booking) FinalPrice() Money     { return b.finalPrice }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) History() []StatusChange {
	return b.history
}
func (b *Booking) Effect() LoyaltyEffect { return b.effect }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
