package booking

import (
	"errors"
	"time"

	"hotel-loyalty-core/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayPeriod = errors.New("check-in must be before check-out")
	ErrStayInPast        = errors.New("check-in cannot be in the past")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidRoomLine   = errors.New("room line requires a type and positive quantity")
)

// StayPeriod is the reserved date range, check-in inclusive and check-out
// exclusive.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time, now time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	if checkIn.Before(now.Truncate(24 * time.Hour)) {
		return StayPeriod{}, ErrStayInPast
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func ReconstructStayPeriod(checkIn, checkOut time.Time) StayPeriod {
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}
}

func (s StayPeriod) CheckIn() time.Time  { return s.checkIn }
func (s StayPeriod) CheckOut() time.Time { return s.checkOut }

func (s StayPeriod) Nights() int {
	nights := int(s.checkOut.Sub(s.checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

// FloorDollars is the whole-dollar amount used for point accrual.
func (m Money) FloorDollars() int64 {
	return m.cents / 100
}

func (m Money) Sub(cents int64) (Money, error) {
	return NewMoney(m.cents - cents)
}

// RoomLine is one room-type selection with its nightly price frozen at
// booking time.
type RoomLine struct {
	roomType         string
	quantity         int
	nightlyRateCents int64
}

func NewRoomLine(roomType string, quantity int, nightlyRateCents int64) (RoomLine, error) {
	if roomType == "" || quantity <= 0 {
		return RoomLine{}, ErrInvalidRoomLine
	}
	if nightlyRateCents < 0 {
		return RoomLine{}, ErrNegativePrice
	}
	return RoomLine{roomType: roomType, quantity: quantity, nightlyRateCents: nightlyRateCents}, nil
}

func (r RoomLine) RoomType() string        { return r.roomType }
func (r RoomLine) Quantity() int           { return r.quantity }
func (r RoomLine) NightlyRateCents() int64 { return r.nightlyRateCents }

// Actor identifies who requested a transition.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// StatusChange is one step of the append-only status history.
type StatusChange struct {
	Previous  Status
	Next      Status
	ActorID   uuid.UUID
	ActorRole user.Role
	Reason    string
	At        time.Time
}

// TransitionOptions carries per-transition flags, e.g. a front-desk override
// of the check-in date guard.
type TransitionOptions struct {
	OverrideCheckInDate bool
}
