// Package economy is the single gate every spending path goes through.
// All costed operations (recovery actions, event choices, games) validate
// and deduct resources here, never by mutating the profile directly.
package economy

import (
	"fmt"

	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Guard validates and applies resource costs against a profile.
type Guard struct {
	maxEnergy int
}

// New creates a Guard with the configured energy cap.
func New(maxEnergy int) *Guard {
	return &Guard{maxEnergy: maxEnergy}
}

// MaxEnergy returns the configured energy cap.
func (g *Guard) MaxEnergy() int {
	return g.maxEnergy
}

// CanAfford is a pure predicate: true iff the profile covers both fields.
func (g *Guard) CanAfford(cost model.Cost, p *model.Profile) bool {
	return p.Money >= cost.Money && p.Energy >= cost.Energy
}

// Apply deducts the cost atomically. It fails with ErrInsufficientResources
// when CanAfford is false and leaves the profile untouched; no partial
// deduction is ever observable.
func (g *Guard) Apply(cost model.Cost, p *model.Profile) error {
	if !g.CanAfford(cost, p) {
		return fmt.Errorf("%w: need %d money and %d energy, have %d and %d",
			ErrInsufficientResources, cost.Money, cost.Energy, p.Money, p.Energy)
	}
	p.Money -= cost.Money
	p.Energy -= cost.Energy
	return nil
}

// Credit adds resources to the profile. Money floors at zero; energy is
// clamped to [0, maxEnergy]. Used by rewards and event outcomes, which may
// carry negative deltas.
func (g *Guard) Credit(money, energy int, p *model.Profile) {
	p.Money += money
	if p.Money < 0 {
		p.Money = 0
	}
	p.Energy += energy
	if p.Energy < 0 {
		p.Energy = 0
	}
	if p.Energy > g.maxEnergy {
		p.Energy = g.maxEnergy
	}
}
