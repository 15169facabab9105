package challenge

import "math/rand"

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithRand sets the random source for template selection.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tracker) {
		if rng != nil {
			t.rng = rng
		}
	}
}

// WithWeeklyCount sets the size of each week's challenge set.
func WithWeeklyCount(count int) Option {
	return func(t *Tracker) {
		if count > 0 {
			t.count = count
		}
	}
}
