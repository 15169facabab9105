package effects

import (
	"math/rand"

	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Option applies a configuration option to the Ledger.
type Option func(*Ledger)

// WithRand sets the random source for risk rolls.
func WithRand(rng *rand.Rand) Option {
	return func(l *Ledger) {
		if rng != nil {
			l.rng = rng
		}
	}
}

// WithRiskPolicy sets the low-energy threshold and the injury/slump odds
// used at week-end settlement.
func WithRiskPolicy(lowEnergyThreshold int, injuryChance, slumpChance float64) Option {
	return func(l *Ledger) {
		if lowEnergyThreshold >= 0 {
			l.lowEnergyThreshold = lowEnergyThreshold
		}
		if injuryChance >= 0 && injuryChance <= 1 {
			l.injuryChance = injuryChance
		}
		if slumpChance >= 0 && slumpChance <= 1 {
			l.slumpChance = slumpChance
		}
	}
}

// WithAfflictions sets the injury/slump templates the risk roll draws from.
func WithAfflictions(afflictions []model.ActiveEffect) Option {
	return func(l *Ledger) {
		l.afflictions = afflictions
	}
}
