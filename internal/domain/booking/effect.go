package booking

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEffectAlreadyApplied = errors.New("loyalty effect stage already applied")

// LoyaltyEffect summarizes every point movement a booking has caused. It is
// an immutable value: each With* returns a rebuilt copy, and each stage's
// ledger transaction reference can be set exactly once over the booking's
// lifetime. The coordinator checks these references before appending, which
// is what makes retried transitions idempotent.
type LoyaltyEffect struct {
	pointsUsed      int64
	discountCents   int64
	redemptionTxID  *uuid.UUID
	pointsEarned    int64
	earnTxID        *uuid.UUID
	completionBonus int64
	completionTxID  *uuid.UUID
	pointsRefunded  int64
	refundTxID      *uuid.UUID
	pointsShortfall int64
}

func ReconstructLoyaltyEffect(
	pointsUsed, discountCents int64, redemptionTxID *uuid.UUID,
	pointsEarned int64, earnTxID *uuid.UUID,
	completionBonus int64, completionTxID *uuid.UUID,
	pointsRefunded int64, refundTxID *uuid.UUID,
	pointsShortfall int64,
) LoyaltyEffect {
	return LoyaltyEffect{
		pointsUsed:      pointsUsed,
		discountCents:   discountCents,
		redemptionTxID:  redemptionTxID,
		pointsEarned:    pointsEarned,
		earnTxID:        earnTxID,
		completionBonus: completionBonus,
		completionTxID:  completionTxID,
		pointsRefunded:  pointsRefunded,
		refundTxID:      refundTxID,
		pointsShortfall: pointsShortfall,
	}
}

func (e LoyaltyEffect) WithRedemption(points, discountCents int64, txID uuid.UUID) (LoyaltyEffect, error) {
	if e.redemptionTxID != nil {
		return e, ErrEffectAlreadyApplied
	}
	e.pointsUsed = points
	e.discountCents = discountCents
	e.redemptionTxID = &txID
	return e, nil
}

func (e LoyaltyEffect) WithConfirmEarn(points int64, txID uuid.UUID) (LoyaltyEffect, error) {
	if e.earnTxID != nil {
		return e, ErrEffectAlreadyApplied
	}
	e.pointsEarned = points
	e.earnTxID = &txID
	return e, nil
}

func (e LoyaltyEffect) WithCompletionBonus(points int64, txID uuid.UUID) (LoyaltyEffect, error) {
	if e.completionTxID != nil {
		return e, ErrEffectAlreadyApplied
	}
	e.completionBonus = points
	e.completionTxID = &txID
	return e, nil
}

func (e LoyaltyEffect) WithRefund(points int64, txID uuid.UUID) (LoyaltyEffect, error) {
	if e.refundTxID != nil {
		return e, ErrEffectAlreadyApplied
	}
	e.pointsRefunded = points
	e.refundTxID = &txID
	return e, nil
}

// WithShortfall records the part of a cancellation penalty that could not be
// collected because the balance ran out. Informational only; no ledger entry.
func (e LoyaltyEffect) WithShortfall(points int64) LoyaltyEffect {
	e.pointsShortfall = points
	return e
}

func (e LoyaltyEffect) PointsUsed() int64          { return e.pointsUsed }
func (e LoyaltyEffect) DiscountCents() int64       { return e.discountCents }
func (e LoyaltyEffect) RedemptionTxID() *uuid.UUID { return e.redemptionTxID }
func (e LoyaltyEffect) PointsEarned() int64        { return e.pointsEarned }
func (e LoyaltyEffect) EarnTxID() *uuid.UUID       { return e.earnTxID }
func (e LoyaltyEffect) CompletionBonus() int64     { return e.completionBonus }
func (e LoyaltyEffect) CompletionTxID() *uuid.UUID { return e.completionTxID }
func (e LoyaltyEffect) PointsRefunded() int64      { return e.pointsRefunded }
func (e LoyaltyEffect) RefundTxID() *uuid.UUID     { return e.refundTxID }
func (e LoyaltyEffect) PointsShortfall() int64     { return e.pointsShortfall }
func (e LoyaltyEffect) HasRedemption() bool        { return e.redemptionTxID != nil }
func (e LoyaltyEffect) HasConfirmEarn() bool       { return e.earnTxID != nil }
func (e LoyaltyEffect) HasCompletionBonus() bool   { return e.completionTxID != nil }
func (e LoyaltyEffect) HasRefund() bool            { return e.refundTxID != nil }
