// Package effects tracks time-limited stat modifiers (injuries, slumps,
// event buffs and penalties) with weekly decay.
package effects

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Default risk configuration; overridden via options from config.
const (
	defaultLowEnergyThreshold = 25
	defaultInjuryChance       = 0.20
	defaultSlumpChance        = 0.15
	defaultRandomSeed         = 42
)

// ActionCatalog resolves recovery action ids to catalog entries.
type ActionCatalog interface {
	RecoveryAction(id string) (model.RecoveryAction, bool)
}

// Ledger holds the active effects of one career. Snapshot ordering is
// insertion order, so reads are deterministic.
type Ledger struct {
	guard   *economy.Guard
	actions ActionCatalog

	effects []model.ActiveEffect

	// Week-end risk roll configuration.
	afflictions        []model.ActiveEffect
	lowEnergyThreshold int
	injuryChance       float64
	slumpChance        float64
	rng                *rand.Rand
}

// New creates a Ledger for one career.
func New(guard *economy.Guard, actions ActionCatalog, opts ...Option) *Ledger {
	l := &Ledger{
		guard:              guard,
		actions:            actions,
		lowEnergyThreshold: defaultLowEnergyThreshold,
		injuryChance:       defaultInjuryChance,
		slumpChance:        defaultSlumpChance,
		rng:                rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible careers
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore replaces the ledger contents from a loaded save. Effects at zero
// weeks are dropped rather than resurrected.
func (l *Ledger) Restore(effects []model.ActiveEffect) {
	l.effects = l.effects[:0]
	for _, e := range effects {
		if e.WeeksRemaining >= 1 {
			l.effects = append(l.effects, e)
		}
	}
}

// Add inserts an effect with at least one week remaining. An effect with
// the same id replaces the older one; effects with distinct ids stack.
func (l *Ledger) Add(e model.ActiveEffect) {
	if e.WeeksRemaining < 1 {
		return
	}
	for i := range l.effects {
		if l.effects[i].ID == e.ID {
			l.effects[i] = e
			return
		}
	}
	l.effects = append(l.effects, e)
}

// Tick decrements every effect's remaining weeks by one and removes any
// that reach zero. Called exactly once per week advance.
func (l *Ledger) Tick() {
	kept := l.effects[:0]
	for _, e := range l.effects {
		e.WeeksRemaining--
		if e.WeeksRemaining > 0 {
			kept = append(kept, e)
		}
	}
	l.effects = kept
}

// Active returns a read-only snapshot in insertion order.
func (l *Ledger) Active() []model.ActiveEffect {
	out := make([]model.ActiveEffect, len(l.effects))
	copy(out, l.effects)
	return out
}

// ActiveOfType returns the snapshot filtered to the given types.
func (l *Ledger) ActiveOfType(types ...model.EffectType) []model.ActiveEffect {
	var out []model.ActiveEffect
	for _, e := range l.effects {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// TotalStatModifier sums all active effects' signed contributions to the
// named stat. Every stat-consuming computation reads effective stats
// through this single source of truth.
func (l *Ledger) TotalStatModifier(stat string) int {
	total := 0
	for _, e := range l.effects {
		total += e.StatDeltas[stat]
	}
	return total
}

// ApplyRecovery charges a recovery action through the economy guard and
// shortens the target effect, removing it when it drops to zero weeks.
func (l *Ledger) ApplyRecovery(ctx context.Context, actionID, effectID string, p *model.Profile) error {
	action, ok := l.actions.RecoveryAction(actionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, actionID)
	}

	idx := -1
	for i := range l.effects {
		if l.effects[i].ID == effectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, effectID)
	}

	if !action.AppliesTo(l.effects[idx].Type) {
		return fmt.Errorf("%w: action %s does not treat %s effects",
			ErrNotApplicable, actionID, l.effects[idx].Type)
	}

	if err := l.guard.Apply(action.Cost(), p); err != nil {
		return err
	}

	l.effects[idx].WeeksRemaining -= action.WeeksReduction
	if l.effects[idx].WeeksRemaining <= 0 {
		l.effects = append(l.effects[:idx], l.effects[idx+1:]...)
	}
	return nil
}

// RiskCheck rolls for a new injury or slump when the week ended with low
// energy. Returns the granted effect, or nil when nothing happened. Run by
// the career clock after Tick so the roll sees the post-decay ledger.
func (l *Ledger) RiskCheck(ctx context.Context, p *model.Profile) *model.ActiveEffect {
	if p.Energy >= l.lowEnergyThreshold || len(l.afflictions) == 0 {
		return nil
	}

	roll := l.rng.Float64()
	var wantType model.EffectType
	switch {
	case roll < l.injuryChance:
		wantType = model.EffectInjury
	case roll < l.injuryChance+l.slumpChance:
		wantType = model.EffectSlump
	default:
		return nil
	}

	var pool []model.ActiveEffect
	for _, a := range l.afflictions {
		if a.Type == wantType {
			pool = append(pool, a)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	granted := pool[l.rng.Intn(len(pool))]
	l.Add(granted)
	return &granted
}
