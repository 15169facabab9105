package model

// GameState bundles a profile with the engine sub-state that must survive a
// save/load round trip. It is the logical payload of one save slot; the
// repository wraps it in a versioned envelope.
type GameState struct {
	Profile Profile `json:"profile"`

	Effects      []ActiveEffect    `json:"effects"`
	Challenges   []WeeklyChallenge `json:"challenges"`
	PendingEvent *WeeklyEvent      `json:"pending_event,omitempty"`

	Rivals        []Rival        `json:"rivals"`
	PreviousRanks map[Region]int `json:"previous_ranks,omitempty"`
	WidestRegion  Region         `json:"widest_region,omitempty"`
}
