// Package sim defines the contract for simulating bowling games. The exact
// probability curve is an external, swappable collaborator; the engine only
// depends on the Simulator interface.
package sim

import (
	"context"
	"math/rand"
)

// Scoring constants.
const (
	perfectGame = 300

	defaultBaseScore  = 150
	defaultVariance   = 45
	defaultRandomSeed = 42
)

// Input abstracts what the simulator needs to model one head-to-head game.
type Input struct {
	// PlayerRating is the effective average, stat modifiers included.
	PlayerRating float64
	// OpponentRating is the rival's average.
	OpponentRating float64
}

// Result is the outcome of one simulated game.
type Result struct {
	PlayerScore   int
	OpponentScore int
	Won           bool
}

// Simulator produces game results. Implementations may be replaced without
// touching the engine.
type Simulator interface {
	// Simulate plays one game, honoring ctx for cancellation.
	Simulate(ctx context.Context, in Input) (Result, error)
}

// LaneSimulator implements Simulator with a simple rating-plus-noise model.
type LaneSimulator struct {
	baseScore int
	variance  int
	rng       *rand.Rand
}

// NewLaneSimulator creates a simulator with configuration options.
func NewLaneSimulator(opts ...Option) *LaneSimulator {
	s := &LaneSimulator{
		baseScore: defaultBaseScore,
		variance:  defaultVariance,
		rng:       rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible careers
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate plays one game. A rating of zero (no games on record) falls back
// to the base score before noise.
func (s *LaneSimulator) Simulate(ctx context.Context, in Input) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	player := s.roll(in.PlayerRating)
	opponent := s.roll(in.OpponentRating)

	return Result{
		PlayerScore:   player,
		OpponentScore: opponent,
		Won:           player >= opponent,
	}, nil
}

// roll turns a rating into a clamped game score.
func (s *LaneSimulator) roll(rating float64) int {
	base := int(rating)
	if base <= 0 {
		base = s.baseScore
	}
	score := base + s.rng.Intn(2*s.variance+1) - s.variance
	if score < 0 {
		score = 0
	}
	if score > perfectGame {
		score = perfectGame
	}
	return score
}
