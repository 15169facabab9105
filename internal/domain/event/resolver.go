// Package event presents the weekly event, validates a chosen response
// against affordability, and applies its outcome.
//
// Each career is a small state machine: none -> pending -> resolved.
// At most one unresolved event exists at any time.
package event

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Defaults; overridden via options from config.
const (
	defaultEventChance      = 0.60
	defaultMajorEventChance = 0.15
	defaultRandomSeed       = 42
)

// categoryWeights bias template selection. Bowling and performance events
// dominate; social is the rarest draw.
var categoryWeights = map[model.EventCategory]int{
	model.CategoryPerformance: 25,
	model.CategoryBowling:     25,
	model.CategoryMoney:       20,
	model.CategoryEquipment:   20,
	model.CategorySocial:      10,
}

// Resolver owns one career's weekly event lifecycle.
type Resolver struct {
	guard     *economy.Guard
	ledger    *effects.Ledger
	templates []model.WeeklyEvent

	pending *model.WeeklyEvent

	eventChance float64
	majorChance float64
	rng         *rand.Rand
}

// New creates a Resolver drawing from the given event templates.
func New(guard *economy.Guard, ledger *effects.Ledger, templates []model.WeeklyEvent, opts ...Option) *Resolver {
	r := &Resolver{
		guard:       guard,
		ledger:      ledger,
		templates:   templates,
		eventChance: defaultEventChance,
		majorChance: defaultMajorEventChance,
		rng:         rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible careers
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Restore replaces the pending slot from a loaded save.
func (r *Resolver) Restore(pending *model.WeeklyEvent) {
	if pending == nil || pending.Resolved {
		r.pending = nil
		return
	}
	e := *pending
	r.pending = &e
}

// Pending returns the unresolved event, nil when none is pending.
func (r *Resolver) Pending() *model.WeeklyEvent {
	if r.pending == nil {
		return nil
	}
	e := *r.pending
	return &e
}

// MaybeGenerate draws a new weekly event unless one is already pending.
// Selection is weighted by category, then by major-event rarity within the
// chosen category. Returns nil when the week stays quiet.
func (r *Resolver) MaybeGenerate(ctx context.Context) *model.WeeklyEvent {
	if r.pending != nil || len(r.templates) == 0 {
		return nil
	}
	if r.rng.Float64() >= r.eventChance {
		return nil
	}

	wantMajor := r.rng.Float64() < r.majorChance
	pool := r.pool(wantMajor)
	if len(pool) == 0 {
		pool = r.pool(!wantMajor)
	}
	if len(pool) == 0 {
		return nil
	}

	tpl := pool[r.weightedPick(pool)]
	instance := tpl
	instance.ID = uuid.NewString()
	instance.Resolved = false
	instance.Choices = append([]model.EventChoice(nil), tpl.Choices...)
	r.pending = &instance
	return r.Pending()
}

// pool filters templates by major flag.
func (r *Resolver) pool(major bool) []model.WeeklyEvent {
	var out []model.WeeklyEvent
	for _, t := range r.templates {
		if t.Major == major {
			out = append(out, t)
		}
	}
	return out
}

// weightedPick selects an index into pool using category weights.
func (r *Resolver) weightedPick(pool []model.WeeklyEvent) int {
	total := 0
	for _, t := range pool {
		total += weightOf(t.Category)
	}
	roll := r.rng.Intn(total)
	for i, t := range pool {
		roll -= weightOf(t.Category)
		if roll < 0 {
			return i
		}
	}
	return len(pool) - 1
}

func weightOf(c model.EventCategory) int {
	if w, ok := categoryWeights[c]; ok && w > 0 {
		return w
	}
	return 1
}

// Resolve applies the chosen response: cost through the economy guard,
// immediate money/energy/reputation deltas, and timed stat deltas handed to
// the effect ledger. On success the pending slot is cleared; on failure
// nothing is mutated.
func (r *Resolver) Resolve(ctx context.Context, choiceID string, p *model.Profile) error {
	if r.pending == nil {
		return ErrNoPendingEvent
	}
	choice := r.pending.Choice(choiceID)
	if choice == nil {
		return fmt.Errorf("%w: %s", ErrUnknownChoice, choiceID)
	}

	if err := r.guard.Apply(choice.Cost, p); err != nil {
		return err
	}

	out := choice.Outcome
	r.guard.Credit(out.Money, out.Energy, p)
	if out.Reputation != 0 {
		p.AddStat(model.StatReputation, out.Reputation)
	}
	if out.StatBonus != nil {
		r.ledger.Add(timedEffect(*out.StatBonus, model.EffectEventBuff, r.pending.Title))
	}
	if out.StatPenalty != nil {
		r.ledger.Add(timedEffect(*out.StatPenalty, model.EffectEventPenalty, r.pending.Title))
	}

	r.pending.Resolved = true
	r.pending = nil
	return nil
}

// Dismiss resolves the pending event with no cost and no outcome. Always
// legal while an event is pending, even if every choice is unaffordable.
func (r *Resolver) Dismiss(ctx context.Context) error {
	if r.pending == nil {
		return ErrNoPendingEvent
	}
	r.pending.Resolved = true
	r.pending = nil
	return nil
}

// timedEffect converts a timed stat delta into a ledger effect. Penalties
// carry negative contributions.
func timedEffect(d model.TimedStatDelta, t model.EffectType, source string) model.ActiveEffect {
	amount := d.Amount
	if t == model.EffectEventPenalty && amount > 0 {
		amount = -amount
	}
	return model.ActiveEffect{
		ID:             uuid.NewString(),
		Type:           t,
		Name:           source,
		StatDeltas:     map[string]int{d.Stat: amount},
		WeeksRemaining: d.Weeks,
	}
}
