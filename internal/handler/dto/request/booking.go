package request

import (
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/usecase/commands"
)

type RoomLineRequest struct {
	RoomType         string `json:"room_type" binding:"required"`
	Quantity         int    `json:"quantity" binding:"required,min=1"`
	NightlyRateCents int64  `json:"nightly_rate_cents" binding:"min=0"`
}

type CreateBookingRequest struct {
	HotelID      uuid.UUID         `json:"hotel_id" binding:"required"`
	CheckIn      time.Time         `json:"check_in" binding:"required"`
	CheckOut     time.Time         `json:"check_out" binding:"required"`
	Rooms        []RoomLineRequest `json:"rooms" binding:"required,min=1,dive"`
	RedeemPoints int64             `json:"redeem_points" binding:"min=0"`
}

func (r CreateBookingRequest) RoomInputs() []commands.RoomLineInput {
	inputs := make([]commands.RoomLineInput, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		inputs = append(inputs, commands.RoomLineInput{
			RoomType:         room.RoomType,
			Quantity:         room.Quantity,
			NightlyRateCents: room.NightlyRateCents,
		})
	}
	return inputs
}

type TransitionRequest struct {
	Target              string `json:"target" binding:"required"`
	Reason              string `json:"reason"`
	OverrideCheckInDate bool   `json:"override_check_in_date"`
}
