package model

// EffectType classifies a time-limited stat modifier.
type EffectType string

// Recognized effect types.
const (
	EffectInjury       EffectType = "injury"
	EffectSlump        EffectType = "slump"
	EffectEventBuff    EffectType = "event-buff"
	EffectEventPenalty EffectType = "event-penalty"
)

// IsValid returns true if the effect type is a recognized enumerant.
func (t EffectType) IsValid() bool {
	switch t {
	case EffectInjury, EffectSlump, EffectEventBuff, EffectEventPenalty:
		return true
	default:
		return false
	}
}

// ActiveEffect is a time-limited stat modifier on a career. An effect with
// WeeksRemaining == 0 never exists in the ledger; it is removed, not kept.
type ActiveEffect struct {
	ID          string     `json:"id"`
	Type        EffectType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`

	// StatDeltas maps stat names to signed contributions; bonuses are
	// positive, penalties negative.
	StatDeltas map[string]int `json:"stat_deltas"`

	WeeksRemaining int `json:"weeks_remaining"`
}

// RecoveryAction is an immutable catalog entry describing a paid way to
// shorten an effect. It is reference data, not owned by any profile.
type RecoveryAction struct {
	ID             string       `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	MoneyCost      int          `json:"money_cost" yaml:"money_cost"`
	EnergyCost     int          `json:"energy_cost" yaml:"energy_cost"`
	WeeksReduction int          `json:"weeks_reduction" yaml:"weeks_reduction"`
	ApplicableTo   []EffectType `json:"applicable_to" yaml:"applicable_to"`
}

// Cost returns the action's price for the economy guard.
func (a RecoveryAction) Cost() Cost {
	return Cost{Money: a.MoneyCost, Energy: a.EnergyCost}
}

// AppliesTo reports whether the action can treat the given effect type.
func (a RecoveryAction) AppliesTo(t EffectType) bool {
	for _, at := range a.ApplicableTo {
		if at == t {
			return true
		}
	}
	return false
}
