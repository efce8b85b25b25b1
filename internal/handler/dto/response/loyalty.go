package response

import (
	"time"

	"github.com/google/uuid"

	"hotel-loyalty-core/internal/usecase/queries"
)

type LedgerEntryResponse struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customerId"`
	BookingID       *uuid.UUID `json:"bookingId,omitempty"`
	Kind            string     `json:"kind"`
	PointsAmount    int64      `json:"pointsAmount"`
	PreviousBalance int64      `json:"previousBalance"`
	NewBalance      int64      `json:"newBalance"`
	Status          string     `json:"status"`
	Reason          string     `json:"reason"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type AccountSummaryResponse struct {
	CustomerID     uuid.UUID `json:"customerId"`
	CurrentPoints  int64     `json:"currentPoints"`
	LifetimePoints int64     `json:"lifetimePoints"`
	Tier           string    `json:"tier"`
	NextTier       *string   `json:"nextTier,omitempty"`
	PointsToNext   int64     `json:"pointsToNext"`
	PercentToNext  float64   `json:"percentToNext"`
	Benefits       []string  `json:"benefits"`
	IsDisabled     bool      `json:"isDisabled"`
	EnrolledAt     time.Time `json:"enrolledAt"`
}

func FromLedgerEntryView(rm *queries.LedgerEntryView) *LedgerEntryResponse {
	return &LedgerEntryResponse{
		ID:              rm.ID,
		CustomerID:      rm.CustomerID,
		BookingID:       rm.BookingID,
		Kind:            rm.Kind,
		PointsAmount:    rm.PointsAmount,
		PreviousBalance: rm.PreviousBalance,
		NewBalance:      rm.NewBalance,
		Status:          rm.Status,
		Reason:          rm.Reason,
		CreatedAt:       rm.CreatedAt,
	}
}

func FromLedgerEntryViews(rms []*queries.LedgerEntryView) []*LedgerEntryResponse {
	entries := make([]*LedgerEntryResponse, 0, len(rms))
	for _, rm := range rms {
		entries = append(entries, FromLedgerEntryView(rm))
	}
	return entries
}

func FromAccountSummaryView(rm *queries.AccountSummaryView) *AccountSummaryResponse {
	return &AccountSummaryResponse{
		CustomerID:     rm.CustomerID,
		CurrentPoints:  rm.CurrentPoints,
		LifetimePoints: rm.LifetimePoints,
		Tier:           rm.Tier,
		NextTier:       rm.NextTier,
		PointsToNext:   rm.PointsToNext,
		PercentToNext:  rm.PercentToNext,
		Benefits:       rm.Benefits,
		IsDisabled:     rm.IsDisabled,
		EnrolledAt:     rm.EnrolledAt,
	}
}
