package sim

import "math/rand"

// Option applies a configuration option to the LaneSimulator.
type Option func(*LaneSimulator)

// WithRand sets the random source for score rolls.
func WithRand(rng *rand.Rand) Option {
	return func(s *LaneSimulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithBaseScore sets the fallback score for unrated players.
func WithBaseScore(score int) Option {
	return func(s *LaneSimulator) {
		if score > 0 && score <= perfectGame {
			s.baseScore = score
		}
	}
}

// WithVariance sets the noise range around a rating.
func WithVariance(variance int) Option {
	return func(s *LaneSimulator) {
		if variance >= 0 {
			s.variance = variance
		}
	}
}
