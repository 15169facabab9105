package event

import "math/rand"

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithRand sets the random source for event selection.
func WithRand(rng *rand.Rand) Option {
	return func(r *Resolver) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// WithChances sets the weekly event probability and the major-event share.
func WithChances(eventChance, majorChance float64) Option {
	return func(r *Resolver) {
		if eventChance >= 0 && eventChance <= 1 {
			r.eventChance = eventChance
		}
		if majorChance >= 0 && majorChance <= 1 {
			r.majorChance = majorChance
		}
	}
}
