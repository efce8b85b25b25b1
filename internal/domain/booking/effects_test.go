//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-loyalty-core/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) booking.Money {
	t.Helper()
	m, err := booking.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestConfirmEarnPoints(t *testing.T) {
	cases := []struct {
		name       string
		cents      int64
		multiplier float64
		want       int64
	}{
		{name: "bronze whole dollars", cents: 40000, multiplier: 1.0, want: 400},
		{name: "bronze floors the cents first", cents: 40099, multiplier: 1.0, want: 400},
		{name: "silver multiplier floored", cents: 40100, multiplier: 1.25, want: 501},
		{name: "silver fractional product floored", cents: 40300, multiplier: 1.25, want: 503},
		{name: "platinum doubles", cents: 24799, multiplier: 2.0, want: 494},
		{name: "zero price earns nothing", cents: 0, multiplier: 2.0, want: 0},
		{name: "sub-dollar price earns nothing", cents: 99, multiplier: 1.5, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := booking.ConfirmEarnPoints(mustMoney(t, c.cents), c.multiplier)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCompletionBonusPoints(t *testing.T) {
	cases := []struct {
		name   string
		nights int
		cents  int64
		cap    int64
		want   int64
	}{
		{name: "nights plus spend", nights: 2, cents: 40000, cap: 200, want: 60},
		{name: "spend floored to ten dollar steps", nights: 1, cents: 19900, cap: 200, want: 29},
		{name: "hits the cap exactly", nights: 10, cents: 100000, cap: 200, want: 200},
		{name: "clamped at the cap", nights: 14, cents: 500000, cap: 200, want: 200},
		{name: "single cheap night", nights: 1, cents: 500, cap: 200, want: 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := booking.CompletionBonusPoints(c.nights, mustMoney(t, c.cents), c.cap)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCancellationPenaltyPercent(t *testing.T) {
	checkIn := time.Date(2026, 6, 20, 15, 0, 0, 0, time.UTC)
	free := 48 * time.Hour
	late := 12 * time.Hour

	cases := []struct {
		name   string
		notice time.Duration
		want   int
	}{
		{name: "well inside free window", notice: 96 * time.Hour, want: 0},
		{name: "exactly at free boundary", notice: 48 * time.Hour, want: 0},
		{name: "just inside late window", notice: 47 * time.Hour, want: 50},
		{name: "exactly at late boundary", notice: 12 * time.Hour, want: 50},
		{name: "last minute", notice: 11 * time.Hour, want: 100},
		{name: "after check-in time", notice: -2 * time.Hour, want: 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			now := checkIn.Add(-c.notice)
			assert.Equal(t, c.want, booking.CancellationPenaltyPercent(now, checkIn, free, late))
		})
	}
}

func TestRedemptionDiscountCents(t *testing.T) {
	t.Run("hundred points per dollar", func(t *testing.T) {
		assert.Equal(t, int64(500), booking.RedemptionDiscountCents(500, 100))
		assert.Equal(t, int64(10000), booking.RedemptionDiscountCents(10000, 100))
	})

	t.Run("zero rate yields no discount", func(t *testing.T) {
		assert.Equal(t, int64(0), booking.RedemptionDiscountCents(500, 0))
	})
}
