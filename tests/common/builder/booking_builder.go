//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/user"

	"github.com/google/uuid"
)

// RoomInput is a raw room-line selection passed to the domain constructors,
// so builder consumers can exercise the validation paths too.
type RoomInput struct {
	RoomType         string
	Quantity         int
	NightlyRateCents int64
}

type BookingBuilder struct {
	CustomerID      uuid.UUID
	HotelID         uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	Rooms           []RoomInput
	BasePriceCents  int64
	FinalPriceCents int64
	CreatedBy       dombooking.Actor
	Now             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	customerID := uuid.New()
	return &BookingBuilder{
		CustomerID: customerID,
		HotelID:    uuid.New(),
		CheckIn:    now.Add(7 * 24 * time.Hour),
		CheckOut:   now.Add(9 * 24 * time.Hour),
		Rooms: []RoomInput{
			{RoomType: "standard_double", Quantity: 1, NightlyRateCents: 20000},
		},
		BasePriceCents:  40000,
		FinalPriceCents: 40000,
		CreatedBy:       dombooking.Actor{ID: customerID, Role: user.RoleGuest},
		Now:             now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.StayPeriod, error) {
	return dombooking.NewStayPeriod(b.CheckIn, b.CheckOut, b.Now)
}

func (b *BookingBuilder) BuildRooms() ([]dombooking.RoomLine, error) {
	rooms := make([]dombooking.RoomLine, 0, len(b.Rooms))
	for _, in := range b.Rooms {
		line, err := dombooking.NewRoomLine(in.RoomType, in.Quantity, in.NightlyRateCents)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, line)
	}
	return rooms, nil
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	rooms, err := b.BuildRooms()
	if err != nil {
		return nil, err
	}
	basePrice, err := dombooking.NewMoney(b.BasePriceCents)
	if err != nil {
		return nil, err
	}
	finalPrice, err := dombooking.NewMoney(b.FinalPriceCents)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.CustomerID, b.HotelID, stay, rooms, basePrice, finalPrice, b.CreatedBy, b.Now)
}

func (b *BookingBuilder) BuildDraft() (dombooking.Draft, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return dombooking.Draft{}, err
	}
	rooms, err := b.BuildRooms()
	if err != nil {
		return dombooking.Draft{}, err
	}
	return dombooking.Draft{
		CustomerID: b.CustomerID,
		HotelID:    b.HotelID,
		Stay:       stay,
		Rooms:      rooms,
	}, nil
}

// Fluent builder methods
func (b *BookingBuilder) WithCustomerID(customerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	b.CreatedBy = dombooking.Actor{ID: customerID, Role: user.RoleGuest}
	return b
}

func (b *BookingBuilder) WithHotelID(hotelID uuid.UUID) *BookingBuilder {
	b.HotelID = hotelID
	return b
}

func (b *BookingBuilder) WithStayDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRooms(rooms ...RoomInput) *BookingBuilder {
	b.Rooms = rooms
	return b
}

func (b *BookingBuilder) WithPrices(baseCents, finalCents int64) *BookingBuilder {
	b.BasePriceCents = baseCents
	b.FinalPriceCents = finalCents
	return b
}

func (b *BookingBuilder) WithCreatedBy(actor dombooking.Actor) *BookingBuilder {
	b.CreatedBy = actor
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}
