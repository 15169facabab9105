package model

// EventCategory groups weekly events for weighted selection.
type EventCategory string

// Recognized event categories.
const (
	CategoryPerformance EventCategory = "performance"
	CategoryMoney       EventCategory = "money"
	CategoryEquipment   EventCategory = "equipment"
	CategoryBowling     EventCategory = "bowling"
	CategorySocial      EventCategory = "social"
)

// IsValid returns true if the category is a recognized enumerant.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryPerformance, CategoryMoney, CategoryEquipment, CategoryBowling, CategorySocial:
		return true
	default:
		return false
	}
}

// TimedStatDelta describes a stat change that lasts a number of weeks.
// The event resolver converts it into an ActiveEffect.
type TimedStatDelta struct {
	Stat   string `json:"stat" yaml:"stat"`
	Amount int    `json:"amount" yaml:"amount"`
	Weeks  int    `json:"weeks" yaml:"weeks"`
}

// EventOutcome is what resolving a choice does to the career. Money, energy
// and reputation apply immediately; the timed deltas become effects.
type EventOutcome struct {
	Money       int             `json:"money,omitempty" yaml:"money"`
	Energy      int             `json:"energy,omitempty" yaml:"energy"`
	Reputation  int             `json:"reputation,omitempty" yaml:"reputation"`
	StatBonus   *TimedStatDelta `json:"stat_bonus,omitempty" yaml:"stat_bonus"`
	StatPenalty *TimedStatDelta `json:"stat_penalty,omitempty" yaml:"stat_penalty"`
}

// EventChoice is one response to a weekly event.
type EventChoice struct {
	ID      string       `json:"id" yaml:"id"`
	Label   string       `json:"label" yaml:"label"`
	Cost    Cost         `json:"cost" yaml:"cost"`
	Outcome EventOutcome `json:"outcome" yaml:"outcome"`
}

// WeeklyEvent is a pending or resolved event instance. At most one
// unresolved event exists per profile at any time.
type WeeklyEvent struct {
	ID          string        `json:"id" yaml:"id"`
	Category    EventCategory `json:"category" yaml:"category"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description"`
	Major       bool          `json:"major" yaml:"major"`
	Resolved    bool          `json:"resolved" yaml:"-"`
	Choices     []EventChoice `json:"choices" yaml:"choices"`
}

// Choice returns the choice with the given id, nil when absent.
func (e *WeeklyEvent) Choice(id string) *EventChoice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}
