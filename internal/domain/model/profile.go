// Package model contains domain models passed between layers.
package model

// Handedness of a bowler.
type Handedness string

// Recognized handedness values.
const (
	RightHanded Handedness = "right"
	LeftHanded  Handedness = "left"
)

// Style is a bowler's delivery style.
type Style string

// Recognized delivery styles.
const (
	StyleStroker Style = "stroker"
	StyleCranker Style = "cranker"
	StyleTweener Style = "tweener"
	StyleTwoHand Style = "two-handed"
)

// StatReputation is the stat name used for career reputation. Stats are an
// open set; this one is referenced by the ranking and event components.
const StatReputation = "reputation"

// Profile is the player's persistent career state. It is owned exclusively
// by one save slot; the engine mutates it only through guarded operations.
type Profile struct {
	Name       string     `json:"name"`
	Handedness Handedness `json:"handedness"`
	Style      Style      `json:"style"`
	Pro        bool       `json:"pro"`

	Money  int `json:"money"`
	Energy int `json:"energy"`

	// Stats holds named numeric attributes, e.g. reputation.
	Stats map[string]int `json:"stats"`

	// BowlingAverage is derived from played games; nil until the first game.
	BowlingAverage *float64 `json:"bowling_average,omitempty"`
	GamesPlayed    int      `json:"games_played"`
	PinsTotal      int      `json:"pins_total"`

	CurrentSeason int `json:"current_season"`
	CurrentWeek   int `json:"current_week"`

	CosmeticTokens int `json:"cosmetic_tokens"`

	// AlleyEnvironment is cosmetic only and has no gameplay effect.
	AlleyEnvironment string `json:"alley_environment,omitempty"`
}

// Stat returns the named stat, zero when absent.
func (p *Profile) Stat(name string) int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[name]
}

// AddStat adjusts the named stat by delta, flooring at zero.
func (p *Profile) AddStat(name string, delta int) {
	if p.Stats == nil {
		p.Stats = map[string]int{}
	}
	v := p.Stats[name] + delta
	if v < 0 {
		v = 0
	}
	p.Stats[name] = v
}

// Reputation is a convenience accessor for the reputation stat.
func (p *Profile) Reputation() int {
	return p.Stat(StatReputation)
}

// RecordGame folds one game score into the running average.
func (p *Profile) RecordGame(score int) {
	p.GamesPlayed++
	p.PinsTotal += score
	avg := float64(p.PinsTotal) / float64(p.GamesPlayed)
	p.BowlingAverage = &avg
}

// Average returns the bowling average, zero until games are played.
func (p *Profile) Average() float64 {
	if p.BowlingAverage == nil {
		return 0
	}
	return *p.BowlingAverage
}
