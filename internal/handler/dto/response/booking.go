package response

import (
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/usecase/queries"
)

type RoomLineResponse struct {
	RoomType         string `json:"roomType"`
	Quantity         int    `json:"quantity"`
	NightlyRateCents int64  `json:"nightlyRateCents"`
}

type StatusChangeResponse struct {
	Previous  string    `json:"previous"`
	Next      string    `json:"next"`
	ActorID   uuid.UUID `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

type LoyaltyEffectResponse struct {
	PointsUsed      int64      `json:"pointsUsed"`
	DiscountCents   int64      `json:"discountCents"`
	RedemptionTxID  *uuid.UUID `json:"redemptionTxId,omitempty"`
	PointsEarned    int64      `json:"pointsEarned"`
	EarnTxID        *uuid.UUID `json:"earnTxId,omitempty"`
	CompletionBonus int64      `json:"completionBonus"`
	CompletionTxID  *uuid.UUID `json:"completionTxId,omitempty"`
	PointsRefunded  int64      `json:"pointsRefunded"`
	RefundTxID      *uuid.UUID `json:"refundTxId,omitempty"`
	PointsShortfall int64      `json:"pointsShortfall"`
}

type BookingResponse struct {
	ID              uuid.UUID              `json:"id"`
	CustomerID      uuid.UUID              `json:"customerId"`
	HotelID         uuid.UUID              `json:"hotelId"`
	CheckIn         time.Time              `json:"checkIn"`
	CheckOut        time.Time              `json:"checkOut"`
	Rooms           []RoomLineResponse     `json:"rooms"`
	Status          string                 `json:"status"`
	BasePriceCents  int64                  `json:"basePriceCents"`
	FinalPriceCents int64                  `json:"finalPriceCents"`
	Loyalty         LoyaltyEffectResponse  `json:"loyalty"`
	History         []StatusChangeResponse `json:"history"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	HotelID         uuid.UUID `json:"hotelId"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Status          string    `json:"status"`
	FinalPriceCents int64     `json:"finalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:              rm.ID,
		CustomerID:      rm.CustomerID,
		HotelID:         rm.HotelID,
		CheckIn:         rm.CheckIn,
		CheckOut:        rm.CheckOut,
		Status:          rm.Status,
		BasePriceCents:  rm.BasePriceCents,
		FinalPriceCents: rm.FinalPriceCents,
		Loyalty: LoyaltyEffectResponse{
			PointsUsed:      rm.Loyalty.PointsUsed,
			DiscountCents:   rm.Loyalty.DiscountCents,
			RedemptionTxID:  rm.Loyalty.RedemptionTxID,
			PointsEarned:    rm.Loyalty.PointsEarned,
			EarnTxID:        rm.Loyalty.EarnTxID,
			CompletionBonus: rm.Loyalty.CompletionBonus,
			CompletionTxID:  rm.Loyalty.CompletionTxID,
			PointsRefunded:  rm.Loyalty.PointsRefunded,
			RefundTxID:      rm.Loyalty.RefundTxID,
			PointsShortfall: rm.Loyalty.PointsShortfall,
		},
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
	for _, room := range rm.Rooms {
		resp.Rooms = append(resp.Rooms, RoomLineResponse{
			RoomType:         room.RoomType,
			Quantity:         room.Quantity,
			NightlyRateCents: room.NightlyRateCents,
		})
	}
	for _, change := range rm.History {
		resp.History = append(resp.History, StatusChangeResponse{
			Previous:  change.Previous,
			Next:      change.Next,
			ActorID:   change.ActorID,
			ActorRole: change.ActorRole,
			Reason:    change.Reason,
			At:        change.At,
		})
	}
	return resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              rm.ID,
		HotelID:         rm.HotelID,
		CheckIn:         rm.CheckIn,
		CheckOut:        rm.CheckOut,
		Status:          rm.Status,
		FinalPriceCents: rm.FinalPriceCents,
		CreatedAt:       rm.CreatedAt,
	}
}
