package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type RoomLineView struct {
	RoomType         string `json:"room_type"`
	Quantity         int    `json:"quantity"`
	NightlyRateCents int64  `json:"nightly_rate_cents"`
}

type StatusChangeView struct {
	Previous  string    `json:"previous"`
	Next      string    `json:"next"`
	ActorID   uuid.UUID `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Reason    string    `json:"reason"`
	At        time.Time `json:"at"`
}

type LoyaltyEffectView struct {
	PointsUsed      int64      `json:"points_used"`
	DiscountCents   int64      `json:"discount_cents"`
	RedemptionTxID  *uuid.UUID `json:"redemption_tx_id,omitempty"`
	PointsEarned    int64      `json:"points_earned"`
	EarnTxID        *uuid.UUID `json:"earn_tx_id,omitempty"`
	CompletionBonus int64      `json:"completion_bonus"`
	CompletionTxID  *uuid.UUID `json:"completion_tx_id,omitempty"`
	PointsRefunded  int64      `json:"points_refunded"`
	RefundTxID      *uuid.UUID `json:"refund_tx_id,omitempty"`
	PointsShortfall int64      `json:"points_shortfall"`
}

type BookingView struct {
	ID              uuid.UUID          `json:"id"`
	CustomerID      uuid.UUID          `json:"customer_id"`
	HotelID         uuid.UUID          `json:"hotel_id"`
	CheckIn         time.Time          `json:"check_in"`
	CheckOut        time.Time          `json:"check_out"`
	Rooms           []RoomLineView     `json:"rooms"`
	Status          string             `json:"status"`
	BasePriceCents  int64              `json:"base_price_cents"`
	FinalPriceCents int64              `json:"final_price_cents"`
	Loyalty         LoyaltyEffectView  `json:"loyalty"`
	History         []StatusChangeView `json:"history"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Status          string    `json:"status"`
	FinalPriceCents int64     `json:"final_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type LedgerEntryView struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	BookingID       *uuid.UUID `json:"booking_id,omitempty"`
	Kind            string     `json:"kind"`
	PointsAmount    int64      `json:"points_amount"`
	PreviousBalance int64      `json:"previous_balance"`
	NewBalance      int64      `json:"new_balance"`
	Status          string     `json:"status"`
	ActorID         uuid.UUID  `json:"actor_id"`
	Reason          string     `json:"reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AccountSummaryView struct {
	CustomerID     uuid.UUID `json:"customer_id"`
	CurrentPoints  int64     `json:"current_points"`
	LifetimePoints int64     `json:"lifetime_points"`
	Tier           string    `json:"tier"`
	NextTier       *string   `json:"next_tier,omitempty"`
	PointsToNext   int64     `json:"points_to_next"`
	PercentToNext  float64   `json:"percent_to_next"`
	Benefits       []string  `json:"benefits"`
	IsDisabled     bool      `json:"is_disabled"`
	EnrolledAt     time.Time `json:"enrolled_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
