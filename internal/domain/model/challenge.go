package model

// ChallengeObjective names what a weekly challenge counts. The weekly set
// never contains two challenges with the same objective.
type ChallengeObjective string

// Recognized challenge objectives.
const (
	ObjectivePlayGames     ChallengeObjective = "play-games"
	ObjectiveWinMatches    ChallengeObjective = "win-matches"
	ObjectiveScorePins     ChallengeObjective = "score-pins"
	ObjectiveEarnMoney     ChallengeObjective = "earn-money"
	ObjectiveResolveEvents ChallengeObjective = "resolve-events"
)

// IsValid returns true if the objective is a recognized enumerant.
func (o ChallengeObjective) IsValid() bool {
	switch o {
	case ObjectivePlayGames, ObjectiveWinMatches, ObjectiveScorePins, ObjectiveEarnMoney, ObjectiveResolveEvents:
		return true
	default:
		return false
	}
}

// ChallengeReward is paid once when a completed challenge is claimed.
type ChallengeReward struct {
	Cash           int `json:"cash,omitempty" yaml:"cash"`
	Reputation     int `json:"reputation,omitempty" yaml:"reputation"`
	Energy         int `json:"energy,omitempty" yaml:"energy"`
	CosmeticTokens int `json:"cosmetic_tokens,omitempty" yaml:"cosmetic_tokens"`
}

// WeeklyChallenge is one objective in the current week's set.
// Claimed implies Progress >= Target; claiming is a one-way transition.
type WeeklyChallenge struct {
	ID          string             `json:"id"`
	Objective   ChallengeObjective `json:"objective"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Progress    int                `json:"progress"`
	Target      int                `json:"target"`
	Reward      ChallengeReward    `json:"reward"`
	Claimed     bool               `json:"claimed"`
}

// Complete reports whether the challenge has met its target.
func (c *WeeklyChallenge) Complete() bool {
	return c.Progress >= c.Target
}
