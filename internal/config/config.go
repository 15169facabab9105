// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All tunable game constants live here, never inline in component logic.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration and game constants. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is where the file-backed save store keeps its blob.
	DataDir string `koanf:"data_dir"`

	// SaveSlots fixes the number of save slots in the registry.
	SaveSlots int `koanf:"save_slots"`

	// MaxEnergy caps the energy resource.
	MaxEnergy int `koanf:"max_energy"`

	// SeasonLength is the number of weeks per season.
	SeasonLength int `koanf:"season_length"`

	// StartingMoney and StartingEnergy seed a fresh career.
	StartingMoney  int `koanf:"starting_money"`
	StartingEnergy int `koanf:"starting_energy"`

	// WeeklyChallengeCount is the size of each week's challenge set.
	WeeklyChallengeCount int `koanf:"weekly_challenge_count"`

	// GameEnergyCost is the energy price of playing one game.
	GameEnergyCost int `koanf:"game_energy_cost"`

	// GamePrize is the payout for winning a head-to-head game.
	GamePrize int `koanf:"game_prize"`

	// LowEnergyThreshold is the energy level under which the week-end
	// settlement rolls for a new injury or slump.
	LowEnergyThreshold int `koanf:"low_energy_threshold"`

	// InjuryChance and SlumpChance weight the week-end risk roll.
	InjuryChance float64 `koanf:"injury_chance"`
	SlumpChance  float64 `koanf:"slump_chance"`

	// EventChance is the probability of a weekly event appearing; among
	// generated events, MajorEventChance selects a major one.
	EventChance      float64 `koanf:"event_chance"`
	MajorEventChance float64 `koanf:"major_event_chance"`

	// RegionReputation maps region names to the reputation required to
	// join that region's leaderboard.
	RegionReputation map[string]int `koanf:"region_reputation"`

	// RandomSeed fixes the engine's random source when non-zero.
	RandomSeed int64 `koanf:"random_seed"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		DataDir:              "data",
		SaveSlots:            3,
		MaxEnergy:            100,
		SeasonLength:         20,
		StartingMoney:        500,
		StartingEnergy:       100,
		WeeklyChallengeCount: 3,
		GameEnergyCost:       10,
		GamePrize:            80,
		LowEnergyThreshold:   25,
		InjuryChance:         0.20,
		SlumpChance:          0.15,
		EventChance:          0.60,
		MajorEventChance:     0.15,
		RegionReputation: map[string]int{
			"local":    0,
			"regional": 100,
			"state":    250,
			"national": 500,
			"pro-tour": 900,
		},
		RandomSeed: 0,
	}
}
