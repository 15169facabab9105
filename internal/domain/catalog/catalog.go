// Package catalog loads the immutable reference data the engine draws from:
// recovery actions, weekly event templates, challenge templates, injury and
// slump templates, rivals and leaderboard bowler names. Catalogs are embedded
// YAML, parsed once at startup and validated for referential integrity.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lanebreak/tenpin/internal/domain/model"
)

// ChallengeTemplate is the static shape a weekly challenge is stamped from.
type ChallengeTemplate struct {
	ID          string                   `yaml:"id"`
	Objective   model.ChallengeObjective `yaml:"objective"`
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	Target      int                      `yaml:"target"`
	Reward      model.ChallengeReward    `yaml:"reward"`
}

// AfflictionTemplate is the static shape of an injury or slump rolled at
// week-end settlement.
type AfflictionTemplate struct {
	ID          string           `yaml:"id"`
	Type        model.EffectType `yaml:"type"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	StatDeltas  map[string]int   `yaml:"stat_deltas"`
	Weeks       int              `yaml:"weeks"`
}

// Catalog holds every reference table, indexed where lookups need it.
type Catalog struct {
	RecoveryActions []model.RecoveryAction
	Events          []model.WeeklyEvent
	Challenges      []ChallengeTemplate
	Afflictions     []AfflictionTemplate
	Rivals          []model.Rival
	BowlerNames     []string

	actionsByID map[string]model.RecoveryAction
}

// Load parses and validates the embedded catalogs.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := yaml.Unmarshal(recoveryYAML, &c.RecoveryActions); err != nil {
		return nil, fmt.Errorf("%w: recovery actions: %w", ErrParseCatalog, err)
	}
	if err := yaml.Unmarshal(eventsYAML, &c.Events); err != nil {
		return nil, fmt.Errorf("%w: events: %w", ErrParseCatalog, err)
	}
	if err := yaml.Unmarshal(challengesYAML, &c.Challenges); err != nil {
		return nil, fmt.Errorf("%w: challenges: %w", ErrParseCatalog, err)
	}
	if err := yaml.Unmarshal(afflictionsYAML, &c.Afflictions); err != nil {
		return nil, fmt.Errorf("%w: afflictions: %w", ErrParseCatalog, err)
	}
	if err := yaml.Unmarshal(rivalsYAML, &c.Rivals); err != nil {
		return nil, fmt.Errorf("%w: rivals: %w", ErrParseCatalog, err)
	}
	if err := yaml.Unmarshal(bowlersYAML, &c.BowlerNames); err != nil {
		return nil, fmt.Errorf("%w: bowler names: %w", ErrParseCatalog, err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	c.actionsByID = make(map[string]model.RecoveryAction, len(c.RecoveryActions))
	for _, a := range c.RecoveryActions {
		c.actionsByID[a.ID] = a
	}

	return c, nil
}

// RecoveryAction returns the catalog entry for id, false when absent.
func (c *Catalog) RecoveryAction(id string) (model.RecoveryAction, bool) {
	a, ok := c.actionsByID[id]
	return a, ok
}

// validate rejects catalogs with unknown enumerants, duplicate ids or
// out-of-range numbers. Every applicable_to, category and objective value
// must be a recognized enumerant.
func (c *Catalog) validate() error {
	seen := map[string]bool{}

	for _, a := range c.RecoveryActions {
		switch {
		case a.ID == "" || seen["recovery:"+a.ID]:
			return fmt.Errorf("%w: recovery action id %q missing or duplicated", ErrInvalidCatalog, a.ID)
		case a.MoneyCost < 0 || a.EnergyCost < 0:
			return fmt.Errorf("%w: recovery action %q has negative cost", ErrInvalidCatalog, a.ID)
		case a.WeeksReduction < 1:
			return fmt.Errorf("%w: recovery action %q must reduce at least one week", ErrInvalidCatalog, a.ID)
		case len(a.ApplicableTo) == 0:
			return fmt.Errorf("%w: recovery action %q applies to nothing", ErrInvalidCatalog, a.ID)
		}
		for _, t := range a.ApplicableTo {
			if !t.IsValid() {
				return fmt.Errorf("%w: recovery action %q applies to unknown effect type %q", ErrInvalidCatalog, a.ID, t)
			}
		}
		seen["recovery:"+a.ID] = true
	}

	for _, e := range c.Events {
		switch {
		case e.ID == "" || seen["event:"+e.ID]:
			return fmt.Errorf("%w: event id %q missing or duplicated", ErrInvalidCatalog, e.ID)
		case !e.Category.IsValid():
			return fmt.Errorf("%w: event %q has unknown category %q", ErrInvalidCatalog, e.ID, e.Category)
		case len(e.Choices) == 0:
			return fmt.Errorf("%w: event %q has no choices", ErrInvalidCatalog, e.ID)
		}
		choiceIDs := map[string]bool{}
		for _, ch := range e.Choices {
			if ch.ID == "" || choiceIDs[ch.ID] {
				return fmt.Errorf("%w: event %q choice id %q missing or duplicated", ErrInvalidCatalog, e.ID, ch.ID)
			}
			if ch.Cost.Money < 0 || ch.Cost.Energy < 0 {
				return fmt.Errorf("%w: event %q choice %q has negative cost", ErrInvalidCatalog, e.ID, ch.ID)
			}
			for _, d := range []*model.TimedStatDelta{ch.Outcome.StatBonus, ch.Outcome.StatPenalty} {
				if d != nil && (d.Stat == "" || d.Weeks < 1) {
					return fmt.Errorf("%w: event %q choice %q has invalid timed stat delta", ErrInvalidCatalog, e.ID, ch.ID)
				}
			}
			choiceIDs[ch.ID] = true
		}
		seen["event:"+e.ID] = true
	}

	for _, t := range c.Challenges {
		switch {
		case t.ID == "" || seen["challenge:"+t.ID]:
			return fmt.Errorf("%w: challenge template id %q missing or duplicated", ErrInvalidCatalog, t.ID)
		case !t.Objective.IsValid():
			return fmt.Errorf("%w: challenge template %q has unknown objective %q", ErrInvalidCatalog, t.ID, t.Objective)
		case t.Target < 1:
			return fmt.Errorf("%w: challenge template %q target must be positive", ErrInvalidCatalog, t.ID)
		}
		seen["challenge:"+t.ID] = true
	}

	for _, a := range c.Afflictions {
		switch {
		case a.ID == "" || seen["affliction:"+a.ID]:
			return fmt.Errorf("%w: affliction id %q missing or duplicated", ErrInvalidCatalog, a.ID)
		case a.Type != model.EffectInjury && a.Type != model.EffectSlump:
			return fmt.Errorf("%w: affliction %q must be an injury or slump, got %q", ErrInvalidCatalog, a.ID, a.Type)
		case a.Weeks < 1:
			return fmt.Errorf("%w: affliction %q must last at least one week", ErrInvalidCatalog, a.ID)
		case len(a.StatDeltas) == 0:
			return fmt.Errorf("%w: affliction %q has no stat deltas", ErrInvalidCatalog, a.ID)
		}
		seen["affliction:"+a.ID] = true
	}

	for _, r := range c.Rivals {
		if r.ID == "" || seen["rival:"+r.ID] {
			return fmt.Errorf("%w: rival id %q missing or duplicated", ErrInvalidCatalog, r.ID)
		}
		seen["rival:"+r.ID] = true
	}

	if len(c.BowlerNames) == 0 {
		return fmt.Errorf("%w: bowler name pool is empty", ErrInvalidCatalog)
	}

	return nil
}
