package booking

import (
	"math"
	"time"
)

// Point accrual and penalty arithmetic for the lifecycle transitions that
// carry a loyalty effect. All functions are pure; the coordinator decides
// when to apply them.

// ConfirmEarnPoints is the confirmation-time earn:
// floor(finalPrice in dollars) × tier multiplier, floored.
func ConfirmEarnPoints(finalPrice Money, tierMultiplier float64) int64 {
	return int64(math.Floor(float64(finalPrice.FloorDollars()) * tierMultiplier))
}

// CompletionBonusPoints is the checkout bonus: 10 points per night plus one
// point per $10 spent, capped.
func CompletionBonusPoints(nights int, finalPrice Money, cap int64) int64 {
	bonus := int64(nights)*10 + finalPrice.FloorDollars()/10
	if bonus > cap {
		bonus = cap
	}
	return bonus
}

// CancellationPenaltyPercent scales the claw-back of the confirmation earn by
// how much notice the guest gave: none inside the free-cancellation window,
// half up to the late threshold, everything after that.
func CancellationPenaltyPercent(now, checkIn time.Time, freeWindow, lateWindow time.Duration) int {
	notice := checkIn.Sub(now)
	switch {
	case notice >= freeWindow:
		return 0
	case notice >= lateWindow:
		return 50
	default:
		return 100
	}
}

// RedemptionDiscountCents converts points to a price discount at the
// programme's points-per-dollar rate.
func RedemptionDiscountCents(points, pointsPerDollar int64) int64 {
	if pointsPerDollar <= 0 {
		return 0
	}
	return points * 100 / pointsPerDollar
}
