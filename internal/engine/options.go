package engine

import (
	"github.com/lanebreak/tenpin/internal/domain/sim"
	"github.com/lanebreak/tenpin/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConstants sets the game constants, normally from config.
func WithConstants(c Constants) Option {
	return func(s *Service) {
		if c.MaxEnergy > 0 {
			s.constants = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSimulator swaps the game-simulation collaborator.
func WithSimulator(simulator sim.Simulator) Option {
	return func(s *Service) {
		if simulator != nil {
			s.simulator = simulator
		}
	}
}

// WithEntitlements sets the monetization collaborator.
func WithEntitlements(e Entitlements) Option {
	return func(s *Service) {
		if e != nil {
			s.entitlements = e
		}
	}
}

// WithSeed pins the engine's random source for deterministic careers.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		if seed != 0 {
			s.seed = seed
		}
	}
}
