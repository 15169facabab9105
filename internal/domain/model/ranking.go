package model

// Region is one tier of the fixed competitive ladder.
type Region string

// Ladder tiers, narrowest to widest.
const (
	RegionLocal    Region = "local"
	RegionRegional Region = "regional"
	RegionState    Region = "state"
	RegionNational Region = "national"
	RegionProTour  Region = "pro-tour"
)

// regionOrder fixes the ladder ordering.
var regionOrder = []Region{RegionLocal, RegionRegional, RegionState, RegionNational, RegionProTour}

// Regions returns the ladder tiers in ascending width order.
func Regions() []Region {
	out := make([]Region, len(regionOrder))
	copy(out, regionOrder)
	return out
}

// Index returns the region's position on the ladder, -1 when unknown.
func (r Region) Index() int {
	for i, reg := range regionOrder {
		if reg == r {
			return i
		}
	}
	return -1
}

// IsValid returns true if the region is a recognized tier.
func (r Region) IsValid() bool {
	return r.Index() >= 0
}

// Wider reports whether r is a wider tier than other.
func (r Region) Wider(other Region) bool {
	return r.Index() > other.Index()
}

// RankedBowler is one leaderboard row; rank is unique within a region at a
// point in time.
type RankedBowler struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rank         int     `json:"rank"`
	PreviousRank int     `json:"previous_rank"`
	Average      float64 `json:"average"`
}

// PlayerRanking is the player's standing within one region.
type PlayerRanking struct {
	Region       Region `json:"region"`
	Rank         int    `json:"rank"`
	PreviousRank int    `json:"previous_rank"`
	RatingPoints int    `json:"rating_points"`
}

// MatchResult is the last head-to-head outcome against a rival.
type MatchResult string

// Recognized match results.
const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
	ResultNone MatchResult = "none"
)

// HeadToHead is the persistent record against one rival. It changes only
// through explicit match-result reporting.
type HeadToHead struct {
	Wins       int         `json:"wins"`
	Losses     int         `json:"losses"`
	LastResult MatchResult `json:"last_result"`
}

// Rival is a tracked opposing bowler.
type Rival struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Archetype  string     `json:"archetype" yaml:"archetype"`
	Rank       int        `json:"rank" yaml:"rank"`
	Average    float64    `json:"average" yaml:"average"`
	HeadToHead HeadToHead `json:"head_to_head" yaml:"-"`
}

// RankingsSnapshot is the read shape returned by the ranking engine.
type RankingsSnapshot struct {
	PlayerRankings []PlayerRanking           `json:"player_rankings"`
	TopBowlers     map[Region][]RankedBowler `json:"top_bowlers"`
	Rivals         []Rival                   `json:"rivals"`
}
