//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-loyalty-core/internal/domain/booking"
	"hotel-loyalty-core/internal/domain/user"
	"hotel-loyalty-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBooking(t *testing.T, mutate func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	actual, err := b.BuildDomain()
	require.NoError(t, err)
	return actual
}

func adminActor() booking.Actor {
	return booking.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func receptionistActor() booking.Actor {
	return booking.Actor{ID: uuid.New(), Role: user.RoleReceptionist}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual := buildBooking(t, nil)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, int64(40000), actual.FinalPrice().Cents())
		assert.False(t, actual.Effect().HasRedemption())

		require.Len(t, actual.History(), 1)
		seed := actual.History()[0]
		assert.Equal(t, booking.Status(""), seed.Previous)
		assert.Equal(t, booking.StatusPending, seed.Next)
		assert.Equal(t, "booking created", seed.Reason)
	})

	t.Run("requires at least one room", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		b.Rooms = nil
		_, err := b.BuildDomain()
		require.ErrorIs(t, err, booking.ErrNoRooms)
	})
}

func TestTransitionTo(t *testing.T) {
	now := time.Now().UTC()
	opts := booking.TransitionOptions{}

	t.Run("confirm appends history", func(t *testing.T) {
		b := buildBooking(t, nil)
		actor := adminActor()

		change, err := b.TransitionTo(booking.StatusConfirmed, actor, "payment verified", opts, now)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, change.Previous)
		assert.Equal(t, booking.StatusConfirmed, change.Next)
		assert.Equal(t, actor.ID, change.ActorID)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Len(t, b.History(), 2)
	})

	t.Run("invalid edge leaves booking untouched", func(t *testing.T) {
		b := buildBooking(t, nil)

		_, err := b.TransitionTo(booking.StatusCompleted, adminActor(), "", opts, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Len(t, b.History(), 1)
	})

	t.Run("unknown target status", func(t *testing.T) {
		b := buildBooking(t, nil)

		_, err := b.TransitionTo(booking.Status("ARCHIVED"), adminActor(), "", opts, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("role not permitted", func(t *testing.T) {
		b := buildBooking(t, nil)
		guest := booking.Actor{ID: b.CustomerID(), Role: user.RoleGuest}

		_, err := b.TransitionTo(booking.StatusConfirmed, guest, "", opts, now)
		require.ErrorIs(t, err, booking.ErrActorNotPermitted)
	})

	t.Run("terminal statuses accept nothing", func(t *testing.T) {
		b := buildBooking(t, nil)
		_, err := b.TransitionTo(booking.StatusCancelled, adminActor(), "guest request", opts, now)
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusConfirmed, adminActor(), "", opts, now)
		require.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("check-in before stay date blocked", func(t *testing.T) {
		b := buildBooking(t, nil)
		_, err := b.TransitionTo(booking.StatusConfirmed, adminActor(), "", opts, now)
		require.NoError(t, err)

		_, err = b.TransitionTo(booking.StatusCheckedIn, receptionistActor(), "", opts, now)
		require.ErrorIs(t, err, booking.ErrCheckInTooEarly)
	})

	t.Run("check-in date override", func(t *testing.T) {
		b := buildBooking(t, nil)
		_, err := b.TransitionTo(booking.StatusConfirmed, adminActor(), "", opts, now)
		require.NoError(t, err)

		override := booking.TransitionOptions{OverrideCheckInDate: true}
		_, err = b.TransitionTo(booking.StatusCheckedIn, receptionistActor(), "early arrival", override, now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})

	t.Run("check-in on the stay date", func(t *testing.T) {
		b := buildBooking(t, nil)
		_, err := b.TransitionTo(booking.StatusConfirmed, adminActor(), "", opts, now)
		require.NoError(t, err)

		onDate := b.Stay().CheckIn().Add(2 * time.Hour)
		_, err = b.TransitionTo(booking.StatusCheckedIn, receptionistActor(), "", opts, onDate)
		require.NoError(t, err)
	})

	t.Run("full main line to completed", func(t *testing.T) {
		b := buildBooking(t, nil)
		_, err := b.TransitionTo(booking.StatusConfirmed, adminActor(), "", opts, now)
		require.NoError(t, err)

		arrival := b.Stay().CheckIn().Add(time.Hour)
		_, err = b.TransitionTo(booking.StatusCheckedIn, receptionistActor(), "", opts, arrival)
		require.NoError(t, err)

		departure := b.Stay().CheckOut()
		_, err = b.TransitionTo(booking.StatusCompleted, receptionistActor(), "", opts, departure)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Len(t, b.History(), 4)
	})
}

func TestRecordEffects(t *testing.T) {
	now := time.Now().UTC()

	t.Run("each stage applies once", func(t *testing.T) {
		b := buildBooking(t, nil)

		require.NoError(t, b.RecordRedemption(500, 500, uuid.New(), now))
		require.ErrorIs(t, b.RecordRedemption(500, 500, uuid.New(), now), booking.ErrEffectAlreadyApplied)

		require.NoError(t, b.RecordConfirmEarn(400, uuid.New(), now))
		require.ErrorIs(t, b.RecordConfirmEarn(400, uuid.New(), now), booking.ErrEffectAlreadyApplied)

		require.NoError(t, b.RecordCompletionBonus(60, uuid.New(), now))
		require.ErrorIs(t, b.RecordCompletionBonus(60, uuid.New(), now), booking.ErrEffectAlreadyApplied)

		require.NoError(t, b.RecordRefund(500, uuid.New(), now))
		require.ErrorIs(t, b.RecordRefund(500, uuid.New(), now), booking.ErrEffectAlreadyApplied)

		effect := b.Effect()
		assert.True(t, effect.HasRedemption())
		assert.True(t, effect.HasConfirmEarn())
		assert.True(t, effect.HasCompletionBonus())
		assert.True(t, effect.HasRefund())
		assert.Equal(t, int64(500), effect.PointsUsed())
		assert.Equal(t, int64(400), effect.PointsEarned())
		assert.Equal(t, int64(60), effect.CompletionBonus())
		assert.Equal(t, int64(500), effect.PointsRefunded())
	})

	t.Run("shortfall is informational", func(t *testing.T) {
		b := buildBooking(t, nil)
		b.RecordPenaltyShortfall(150, now)
		assert.Equal(t, int64(150), b.Effect().PointsShortfall())
	})

	t.Run("failed record keeps prior value", func(t *testing.T) {
		b := buildBooking(t, nil)
		firstTx := uuid.New()
		require.NoError(t, b.RecordConfirmEarn(400, firstTx, now))
		require.Error(t, b.RecordConfirmEarn(999, uuid.New(), now))

		assert.Equal(t, int64(400), b.Effect().PointsEarned())
		assert.Equal(t, firstTx, *b.Effect().EarnTxID())
	})
}
