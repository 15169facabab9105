// Package challenge maintains the current week's objective set, its
// progress, and reward claim state.
package challenge

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/model"
)

// Defaults; overridden via options from config.
const (
	defaultWeeklyCount = 3
	defaultRandomSeed  = 42
)

// Tracker owns one career's weekly challenges.
type Tracker struct {
	guard     *economy.Guard
	templates []catalog.ChallengeTemplate

	current []model.WeeklyChallenge

	count int
	rng   *rand.Rand
}

// New creates a Tracker drawing from the given templates.
func New(guard *economy.Guard, templates []catalog.ChallengeTemplate, opts ...Option) *Tracker {
	t := &Tracker{
		guard:     guard,
		templates: templates,
		count:     defaultWeeklyCount,
		rng:       rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible careers
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Restore replaces the current set from a loaded save. A challenge marked
// claimed without having met its target is corrupted state, reported
// distinctly from ordinary user-facing failures.
func (t *Tracker) Restore(challenges []model.WeeklyChallenge) error {
	for _, c := range challenges {
		if c.Claimed && c.Progress < c.Target {
			return fmt.Errorf("%w: challenge %s claimed at %d/%d",
				ErrCorruptChallenge, c.ID, c.Progress, c.Target)
		}
	}
	t.current = append(t.current[:0], challenges...)
	return nil
}

// InstallWeekly replaces the prior week's set with a fresh one. Unclaimed
// challenges lapse; there is no carry-over. The new set never repeats an
// objective type within the same week.
func (t *Tracker) InstallWeekly(ctx context.Context) []model.WeeklyChallenge {
	t.current = t.current[:0]

	picked := map[model.ChallengeObjective]bool{}
	order := t.rng.Perm(len(t.templates))
	for _, i := range order {
		if len(t.current) == t.count {
			break
		}
		tpl := t.templates[i]
		if picked[tpl.Objective] {
			continue
		}
		picked[tpl.Objective] = true
		t.current = append(t.current, model.WeeklyChallenge{
			ID:          uuid.NewString(),
			Objective:   tpl.Objective,
			Name:        tpl.Name,
			Description: tpl.Description,
			Progress:    0,
			Target:      tpl.Target,
			Reward:      tpl.Reward,
			Claimed:     false,
		})
	}
	return t.Current()
}

// Current returns a read-only snapshot of this week's set.
func (t *Tracker) Current() []model.WeeklyChallenge {
	out := make([]model.WeeklyChallenge, len(t.current))
	copy(out, t.current)
	return out
}

// RecordProgress increments progress on every current challenge with the
// given objective, capped at its target. Over-reporting never pushes
// progress past the target.
func (t *Tracker) RecordProgress(ctx context.Context, objective model.ChallengeObjective, delta int) {
	if delta <= 0 {
		return
	}
	for i := range t.current {
		if t.current[i].Objective != objective {
			continue
		}
		t.current[i].Progress += delta
		if t.current[i].Progress > t.current[i].Target {
			t.current[i].Progress = t.current[i].Target
		}
	}
}

// RecordProgressByID increments progress on one challenge, capped at its
// target. Recording progress has no resource cost.
func (t *Tracker) RecordProgressByID(ctx context.Context, challengeID string, delta int) error {
	for i := range t.current {
		if t.current[i].ID != challengeID {
			continue
		}
		if delta > 0 {
			t.current[i].Progress += delta
			if t.current[i].Progress > t.current[i].Target {
				t.current[i].Progress = t.current[i].Target
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
}

// Claim pays out a completed challenge exactly once. Re-invoking after
// success fails with ErrAlreadyClaimed and never double-pays.
func (t *Tracker) Claim(ctx context.Context, challengeID string, p *model.Profile) error {
	idx := -1
	for i := range t.current {
		if t.current[i].ID == challengeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownChallenge, challengeID)
	}

	c := &t.current[idx]
	if c.Claimed {
		return fmt.Errorf("%w: %s", ErrAlreadyClaimed, challengeID)
	}
	if !c.Complete() {
		return fmt.Errorf("%w: %s at %d/%d", ErrNotComplete, challengeID, c.Progress, c.Target)
	}

	t.guard.Credit(c.Reward.Cash, c.Reward.Energy, p)
	if c.Reward.Reputation != 0 {
		p.AddStat(model.StatReputation, c.Reward.Reputation)
	}
	p.CosmeticTokens += c.Reward.CosmeticTokens
	c.Claimed = true
	return nil
}
