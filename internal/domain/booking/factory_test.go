//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreateBooking(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	factory := booking.NewFactory(mockClock)

	bb := builder.NewBookingBuilder().WithNow(mockClock.Now())
	draft, err := bb.BuildDraft()
	require.NoError(t, err)
	quote := booking.Quote{BasePriceCents: 40000, FinalPriceCents: 38000}

	t.Run("without redemption", func(t *testing.T) {
		b, err := factory.CreateBooking(draft, quote, nil, bb.CreatedBy)
		require.NoError(t, err)

		assert.Equal(t, int64(40000), b.BasePrice().Cents())
		assert.Equal(t, int64(38000), b.FinalPrice().Cents())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, mockClock.Now(), b.CreatedAt())
	})

	t.Run("redemption discounts the final price", func(t *testing.T) {
		redemption := &booking.Redemption{Points: 500, DiscountCents: 500}
		b, err := factory.CreateBooking(draft, quote, redemption, bb.CreatedBy)
		require.NoError(t, err)

		assert.Equal(t, int64(40000), b.BasePrice().Cents())
		assert.Equal(t, int64(37500), b.FinalPrice().Cents())
	})

	t.Run("discount may zero the price", func(t *testing.T) {
		redemption := &booking.Redemption{Points: 3800000, DiscountCents: 38000}
		b, err := factory.CreateBooking(draft, quote, redemption, bb.CreatedBy)
		require.NoError(t, err)
		assert.Equal(t, int64(0), b.FinalPrice().Cents())
	})

	t.Run("discount exceeding price rejected", func(t *testing.T) {
		redemption := &booking.Redemption{Points: 3900000, DiscountCents: 39000}
		_, err := factory.CreateBooking(draft, quote, redemption, bb.CreatedBy)
		require.ErrorIs(t, err, booking.ErrDiscountExceedsPrice)
	})

	t.Run("negative quote rejected", func(t *testing.T) {
		_, err := factory.CreateBooking(draft, booking.Quote{BasePriceCents: -1, FinalPriceCents: 0}, nil, bb.CreatedBy)
		require.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}
