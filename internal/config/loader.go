package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TENPIN_CONFIG is set
//  3. env (prefix TENPIN_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TENPIN_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: TENPIN_ADDR, TENPIN_MAX_ENERGY, ...
	// Map env keys like TENPIN_MAX_ENERGY -> max_energy (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("TENPIN_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tenpin_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the engine cannot run with.
func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.SaveSlots < 1:
		return fmt.Errorf("%w: save_slots must be at least 1", ErrInvalidConfig)
	case cfg.MaxEnergy < 1:
		return fmt.Errorf("%w: max_energy must be at least 1", ErrInvalidConfig)
	case cfg.SeasonLength < 1:
		return fmt.Errorf("%w: season_length must be at least 1", ErrInvalidConfig)
	case cfg.WeeklyChallengeCount < 1:
		return fmt.Errorf("%w: weekly_challenge_count must be at least 1", ErrInvalidConfig)
	case cfg.InjuryChance < 0 || cfg.InjuryChance > 1:
		return fmt.Errorf("%w: injury_chance must be in [0,1]", ErrInvalidConfig)
	case cfg.SlumpChance < 0 || cfg.SlumpChance > 1:
		return fmt.Errorf("%w: slump_chance must be in [0,1]", ErrInvalidConfig)
	case cfg.EventChance < 0 || cfg.EventChance > 1:
		return fmt.Errorf("%w: event_chance must be in [0,1]", ErrInvalidConfig)
	case cfg.MajorEventChance < 0 || cfg.MajorEventChance > 1:
		return fmt.Errorf("%w: major_event_chance must be in [0,1]", ErrInvalidConfig)
	}
	return nil
}
