package loyalty

import "errors"

var (
	ErrNoTierDefinitions  = errors.New("tier policy requires at least one definition")
	ErrTierThresholdOrder = errors.New("tier thresholds must start at zero and increase")
)

type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

func (t Tier) String() string {
	return string(t)
}

// TierDefinition is one rung of the programme ladder: unlocked at Threshold
// lifetime points, earning at Multiplier, granting Benefits.
type TierDefinition struct {
	Name       Tier
	Threshold  int64
	Multiplier float64
	Benefits   []string
}

// TierPolicy is the static lifetime-points → tier mapping. Definitions are
// ordered by ascending threshold and never change at runtime.
type TierPolicy struct {
	defs []TierDefinition
}

func NewTierPolicy(defs []TierDefinition) (*TierPolicy, error) {
	if len(defs) == 0 {
		return nil, ErrNoTierDefinitions
	}
	if defs[0].Threshold != 0 {
		return nil, ErrTierThresholdOrder
	}
	for i := 1; i < len(defs); i++ {
		if defs[i].Threshold <= defs[i-1].Threshold {
			return nil, ErrTierThresholdOrder
		}
	}
	return &TierPolicy{defs: defs}, nil
}

func DefaultTierPolicy() *TierPolicy {
	policy, err := NewTierPolicy([]TierDefinition{
		{Name: TierBronze, Threshold: 0, Multiplier: 1.0, Benefits: []string{"member_rates"}},
		{Name: TierSilver, Threshold: 2500, Multiplier: 1.25, Benefits: []string{"member_rates", "late_checkout"}},
		{Name: TierGold, Threshold: 10000, Multiplier: 1.5, Benefits: []string{"member_rates", "late_checkout", "room_upgrade"}},
		{Name: TierPlatinum, Threshold: 30000, Multiplier: 2.0, Benefits: []string{"member_rates", "late_checkout", "room_upgrade", "lounge_access"}},
	})
	if err != nil {
		panic(err)
	}
	return policy
}

// TierFor maps lifetime points to the highest tier whose threshold is met.
func (p *TierPolicy) TierFor(lifetimePoints int64) TierDefinition {
	current := p.defs[0]
	for _, def := range p.defs[1:] {
		if lifetimePoints < def.Threshold {
			break
		}
		current = def
	}
	return current
}

// NextTier returns the definition above the given lifetime total, or false
// when the top tier is already reached.
func (p *TierPolicy) NextTier(lifetimePoints int64) (TierDefinition, bool) {
	for _, def := range p.defs {
		if lifetimePoints < def.Threshold {
			return def, true
		}
	}
	return TierDefinition{}, false
}

func (p *TierPolicy) MultiplierFor(t Tier) float64 {
	for _, def := range p.defs {
		if def.Name == t {
			return def.Multiplier
		}
	}
	return p.defs[0].Multiplier
}

func (p *TierPolicy) Definition(t Tier) (TierDefinition, bool) {
	for _, def := range p.defs {
		if def.Name == t {
			return def, true
		}
	}
	return TierDefinition{}, false
}

// TierChange is emitted when an account's tier moves during a projection
// update. It carries no point movement; consumers are notification-side only.
type TierChange struct {
	Old Tier
	New Tier
}
