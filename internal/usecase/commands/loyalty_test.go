//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/internal/pkg/clock"
	"hotel-loyalty-core/internal/pkg/errs"
	"hotel-loyalty-core/internal/usecase/commands"
	"hotel-loyalty-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoyaltyEnv() (*fakeStore, commands.LoyaltyCommands, *clock.MockClock) {
	store := newFakeStore()
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	ledger := commands.NewLedgerService(loyalty.DefaultTierPolicy(), clk)
	return store, commands.NewLoyaltyCommands(&fakeUoW{store: store}, ledger, clk), clk
}

func TestAdjustPoints(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("credit adjustment", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().
			WithCustomerID(customerID).
			WithBalance(100, 100).
			BuildDomain()

		view, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     250,
			Reason:     "goodwill for maintenance noise",
			ActorID:    actorID,
		})
		require.NoError(t, err)

		assert.Equal(t, string(loyalty.KindAdjustmentAdmin), view.Kind)
		assert.Equal(t, int64(250), view.PointsAmount)
		assert.Equal(t, int64(100), view.PreviousBalance)
		assert.Equal(t, int64(350), view.NewBalance)
		assert.Equal(t, int64(350), store.accounts[customerID].CurrentPoints())
	})

	t.Run("debit adjustment", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().
			WithCustomerID(customerID).
			WithBalance(500, 500).
			BuildDomain()

		view, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     -200,
			Reason:     "duplicate earn correction",
			ActorID:    actorID,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(300), view.NewBalance)
	})

	t.Run("debit past the balance", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().
			WithCustomerID(customerID).
			WithBalance(100, 100).
			BuildDomain()

		_, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     -101,
			Reason:     "correction",
			ActorID:    actorID,
		})
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("missing reason", func(t *testing.T) {
		_, cmds, _ := newLoyaltyEnv()
		_, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: uuid.New(),
			Points:     100,
			ActorID:    actorID,
		})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("zero points", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().WithCustomerID(customerID).BuildDomain()

		_, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     0,
			Reason:     "noop",
			ActorID:    actorID,
		})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("disabled account", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().
			WithCustomerID(customerID).
			AsDisabled().
			BuildDomain()

		_, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     100,
			Reason:     "should not land",
			ActorID:    actorID,
		})
		require.ErrorIs(t, err, errs.ErrAccountDisabled)
	})

	t.Run("credit crossing a threshold enqueues notification", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().
			WithCustomerID(customerID).
			WithBalance(2400, 2400).
			BuildDomain()

		_, err := cmds.Adjust(ctx, commands.AdjustPointsParams{
			CustomerID: customerID,
			Points:     200,
			Reason:     "promotion bonus",
			ActorID:    actorID,
		})
		require.NoError(t, err)
		assert.Equal(t, loyalty.TierSilver, store.accounts[customerID].Tier())
		assert.Len(t, store.jobsOnTopic("loyalty.tier_changed"), 1)
	})
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	store, cmds, clk := newLoyaltyEnv()
	customerID := uuid.New()

	require.NoError(t, cmds.Enroll(ctx, customerID))

	account := store.accounts[customerID]
	require.NotNil(t, account)
	assert.Equal(t, int64(0), account.CurrentPoints())
	assert.Equal(t, loyalty.TierBronze, account.Tier())
	assert.Equal(t, clk.Now(), account.EnrolledAt())
}

func TestDisable(t *testing.T) {
	ctx := context.Background()

	t.Run("disables an open account", func(t *testing.T) {
		store, cmds, _ := newLoyaltyEnv()
		customerID := uuid.New()
		store.accounts[customerID] = builder.NewAccountBuilder().WithCustomerID(customerID).BuildDomain()

		require.NoError(t, cmds.Disable(ctx, customerID))
		assert.True(t, store.accounts[customerID].IsDisabled())
	})

	t.Run("unknown account", func(t *testing.T) {
		_, cmds, _ := newLoyaltyEnv()
		err := cmds.Disable(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
