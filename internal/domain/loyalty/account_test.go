//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"hotel-loyalty-core/internal/domain/loyalty"
	"hotel-loyalty-core/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, b *builder.EntryBuilder) *loyalty.Entry {
	t.Helper()
	entry, err := b.BuildDomain()
	require.NoError(t, err)
	return entry
}

func TestAccountApply(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()
	now := time.Now().UTC()

	t.Run("credit grows current and lifetime", func(t *testing.T) {
		account := builder.NewAccountBuilder().WithBalance(100, 100).BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().
			WithCustomerID(account.CustomerID()).
			WithPoints(400).
			WithPreviousBalance(100))

		change, err := account.Apply(entry, policy, now)
		require.NoError(t, err)
		assert.Nil(t, change)
		assert.Equal(t, int64(500), account.CurrentPoints())
		assert.Equal(t, int64(500), account.LifetimePoints())
	})

	t.Run("debit leaves lifetime untouched", func(t *testing.T) {
		account := builder.NewAccountBuilder().WithBalance(500, 1200).BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().
			WithCustomerID(account.CustomerID()).
			WithKind(loyalty.KindRedeem).
			WithPoints(-300).
			WithPreviousBalance(500))

		change, err := account.Apply(entry, policy, now)
		require.NoError(t, err)
		assert.Nil(t, change)
		assert.Equal(t, int64(200), account.CurrentPoints())
		assert.Equal(t, int64(1200), account.LifetimePoints())
	})

	t.Run("tier change on crossing threshold", func(t *testing.T) {
		account := builder.NewAccountBuilder().WithBalance(2400, 2400).BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().
			WithCustomerID(account.CustomerID()).
			WithPoints(200).
			WithPreviousBalance(2400))

		change, err := account.Apply(entry, policy, now)
		require.NoError(t, err)
		require.NotNil(t, change)
		assert.Equal(t, loyalty.TierBronze, change.Old)
		assert.Equal(t, loyalty.TierSilver, change.New)
		assert.Equal(t, loyalty.TierSilver, account.Tier())
	})

	t.Run("tier never drops on debit", func(t *testing.T) {
		account := builder.NewAccountBuilder().
			WithBalance(3000, 3000).
			WithTier(loyalty.TierSilver).
			BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().
			WithCustomerID(account.CustomerID()).
			WithKind(loyalty.KindRedeem).
			WithPoints(-2900).
			WithPreviousBalance(3000))

		change, err := account.Apply(entry, policy, now)
		require.NoError(t, err)
		assert.Nil(t, change)
		assert.Equal(t, loyalty.TierSilver, account.Tier())
		assert.Equal(t, int64(100), account.CurrentPoints())
	})

	t.Run("disabled account rejects entries", func(t *testing.T) {
		account := builder.NewAccountBuilder().AsDisabled().BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().WithCustomerID(account.CustomerID()))

		_, err := account.Apply(entry, policy, now)
		require.ErrorIs(t, err, loyalty.ErrAccountDisabled)
	})

	t.Run("wrong customer", func(t *testing.T) {
		account := builder.NewAccountBuilder().BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().WithCustomerID(uuid.New()))

		_, err := account.Apply(entry, policy, now)
		require.ErrorIs(t, err, loyalty.ErrWrongCustomer)
	})

	t.Run("stale previous balance", func(t *testing.T) {
		account := builder.NewAccountBuilder().WithBalance(500, 500).BuildDomain()
		entry := mustEntry(t, builder.NewEntryBuilder().
			WithCustomerID(account.CustomerID()).
			WithPoints(100).
			WithPreviousBalance(400))

		_, err := account.Apply(entry, policy, now)
		require.ErrorIs(t, err, loyalty.ErrBalanceMismatch)
		assert.Equal(t, int64(500), account.CurrentPoints())
	})
}

func TestAccountProgress(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()

	t.Run("bronze midway to silver", func(t *testing.T) {
		account := builder.NewAccountBuilder().WithBalance(1250, 1250).BuildDomain()

		progress := account.Progress(policy)
		require.NotNil(t, progress.NextTier)
		assert.Equal(t, loyalty.TierSilver, *progress.NextTier)
		assert.Equal(t, int64(1250), progress.PointsToNext)
		assert.InDelta(t, 50.0, progress.PercentToNext, 0.01)
	})

	t.Run("platinum has no next tier", func(t *testing.T) {
		account := builder.NewAccountBuilder().
			WithBalance(31000, 31000).
			WithTier(loyalty.TierPlatinum).
			BuildDomain()

		progress := account.Progress(policy)
		assert.Nil(t, progress.NextTier)
		assert.Equal(t, int64(0), progress.PointsToNext)
		assert.InDelta(t, 100.0, progress.PercentToNext, 0.01)
	})
}

func TestNewAccount(t *testing.T) {
	now := time.Now().UTC()
	account := loyalty.NewAccount(uuid.New(), now)

	assert.Equal(t, int64(0), account.CurrentPoints())
	assert.Equal(t, int64(0), account.LifetimePoints())
	assert.Equal(t, loyalty.TierBronze, account.Tier())
	assert.False(t, account.IsDisabled())
	assert.Equal(t, now, account.EnrolledAt())
}

func TestAccountDisable(t *testing.T) {
	now := time.Now().UTC()
	account := builder.NewAccountBuilder().BuildDomain()

	account.Disable(now)
	assert.True(t, account.IsDisabled())
	assert.Equal(t, now, account.UpdatedAt())
}
