//go:build unit

package loyalty_test

import (
	"testing"

	"hotel-loyalty-core/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTierPolicy(t *testing.T) {
	cases := []struct {
		name  string
		defs  []loyalty.TierDefinition
		errIs error
	}{
		{
			name:  "empty definitions",
			defs:  nil,
			errIs: loyalty.ErrNoTierDefinitions,
		},
		{
			name: "first threshold not zero",
			defs: []loyalty.TierDefinition{
				{Name: loyalty.TierBronze, Threshold: 100, Multiplier: 1.0},
			},
			errIs: loyalty.ErrTierThresholdOrder,
		},
		{
			name: "non-increasing thresholds",
			defs: []loyalty.TierDefinition{
				{Name: loyalty.TierBronze, Threshold: 0, Multiplier: 1.0},
				{Name: loyalty.TierSilver, Threshold: 500, Multiplier: 1.25},
				{Name: loyalty.TierGold, Threshold: 500, Multiplier: 1.5},
			},
			errIs: loyalty.ErrTierThresholdOrder,
		},
		{
			name: "single tier",
			defs: []loyalty.TierDefinition{
				{Name: loyalty.TierBronze, Threshold: 0, Multiplier: 1.0},
			},
		},
		{
			name: "ascending ladder",
			defs: []loyalty.TierDefinition{
				{Name: loyalty.TierBronze, Threshold: 0, Multiplier: 1.0},
				{Name: loyalty.TierSilver, Threshold: 1000, Multiplier: 1.25},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			policy, err := loyalty.NewTierPolicy(c.defs)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, policy)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, policy)
		})
	}
}

func TestTierFor(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()

	cases := []struct {
		name     string
		lifetime int64
		want     loyalty.Tier
	}{
		{name: "zero points", lifetime: 0, want: loyalty.TierBronze},
		{name: "just below silver", lifetime: 2499, want: loyalty.TierBronze},
		{name: "exactly silver", lifetime: 2500, want: loyalty.TierSilver},
		{name: "mid gold", lifetime: 15000, want: loyalty.TierGold},
		{name: "exactly platinum", lifetime: 30000, want: loyalty.TierPlatinum},
		{name: "beyond platinum", lifetime: 1000000, want: loyalty.TierPlatinum},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, policy.TierFor(c.lifetime).Name)
		})
	}
}

func TestNextTier(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()

	t.Run("bronze looks up to silver", func(t *testing.T) {
		next, ok := policy.NextTier(100)
		require.True(t, ok)
		assert.Equal(t, loyalty.TierSilver, next.Name)
		assert.Equal(t, int64(2500), next.Threshold)
	})

	t.Run("platinum is the ceiling", func(t *testing.T) {
		_, ok := policy.NextTier(30000)
		assert.False(t, ok)
	})
}

func TestMultiplierFor(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()

	assert.InDelta(t, 1.0, policy.MultiplierFor(loyalty.TierBronze), 0.001)
	assert.InDelta(t, 1.25, policy.MultiplierFor(loyalty.TierSilver), 0.001)
	assert.InDelta(t, 1.5, policy.MultiplierFor(loyalty.TierGold), 0.001)
	assert.InDelta(t, 2.0, policy.MultiplierFor(loyalty.TierPlatinum), 0.001)

	t.Run("unknown tier falls back to base", func(t *testing.T) {
		assert.InDelta(t, 1.0, policy.MultiplierFor("DIAMOND"), 0.001)
	})
}

func TestDefinition(t *testing.T) {
	policy := loyalty.DefaultTierPolicy()

	def, ok := policy.Definition(loyalty.TierPlatinum)
	require.True(t, ok)
	assert.Contains(t, def.Benefits, "lounge_access")

	_, ok = policy.Definition("DIAMOND")
	assert.False(t, ok)
}
