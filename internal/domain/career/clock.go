// Package career owns time: season and week counters, and the end-of-week
// settlement pass across the other components.
package career

import (
	"context"

	"github.com/lanebreak/tenpin/internal/domain/challenge"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/ranking"
)

// defaultSeasonLength is the weeks-per-season fallback; config overrides it.
const defaultSeasonLength = 20

// Clock is the only component that advances week and season.
type Clock struct {
	ledger   *effects.Ledger
	tracker  *challenge.Tracker
	resolver *event.Resolver
	rankings *ranking.Engine

	seasonLength int
}

// WeekReport summarizes one settlement pass for the caller.
type WeekReport struct {
	Season        int                     `json:"season"`
	Week          int                     `json:"week"`
	SeasonRolled  bool                    `json:"season_rolled"`
	NewAffliction *model.ActiveEffect     `json:"new_affliction,omitempty"`
	NewEvent      *model.WeeklyEvent      `json:"new_event,omitempty"`
	Challenges    []model.WeeklyChallenge `json:"challenges"`
	Rankings      model.RankingsSnapshot  `json:"rankings"`
}

// New creates a Clock over the given components.
func New(ledger *effects.Ledger, tracker *challenge.Tracker, resolver *event.Resolver, rankings *ranking.Engine, opts ...Option) *Clock {
	c := &Clock{
		ledger:       ledger,
		tracker:      tracker,
		resolver:     resolver,
		rankings:     rankings,
		seasonLength: defaultSeasonLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SeasonLength returns the configured weeks per season.
func (c *Clock) SeasonLength() int {
	return c.seasonLength
}

// AdvanceWeek runs the settlement pass in its fixed order:
//
//  1. effect decay
//  2. injury/slump risk roll against the pre-advance end-of-week energy
//  3. week increment, rolling the season when the counter passes the limit
//  4. fresh weekly challenge set
//  5. weekly event generation
//  6. rankings refresh
//
// Later steps read state produced by earlier ones, so the order never
// changes: the risk roll and event draw must see the post-decay ledger, and
// challenge installation must not see stale effects.
func (c *Clock) AdvanceWeek(ctx context.Context, p *model.Profile) WeekReport {
	c.ledger.Tick()

	affliction := c.ledger.RiskCheck(ctx, p)

	rolled := false
	p.CurrentWeek++
	if p.CurrentWeek > c.seasonLength {
		p.CurrentSeason++
		p.CurrentWeek = 1
		rolled = true
	}

	challenges := c.tracker.InstallWeekly(ctx)
	newEvent := c.resolver.MaybeGenerate(ctx)
	snapshot := c.rankings.Snapshot(ctx, p)

	return WeekReport{
		Season:        p.CurrentSeason,
		Week:          p.CurrentWeek,
		SeasonRolled:  rolled,
		NewAffliction: affliction,
		NewEvent:      newEvent,
		Challenges:    challenges,
		Rankings:      snapshot,
	}
}
