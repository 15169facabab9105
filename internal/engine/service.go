// Package engine provides the career-progression service that implements
// the dependencies required by the HTTP API: one loaded career, its
// component graph, and the save registry around it.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/domain/career"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/domain/challenge"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/domain/effects"
	"github.com/lanebreak/tenpin/internal/domain/event"
	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/ranking"
	"github.com/lanebreak/tenpin/internal/domain/sim"
	"github.com/lanebreak/tenpin/pkg/logger"
	"github.com/lanebreak/tenpin/pkg/metrics"
)

// Constants bundles the tunable game constants the engine consumes. They
// come from config, never hard-coded inside component logic.
type Constants struct {
	MaxEnergy            int
	SeasonLength         int
	StartingMoney        int
	StartingEnergy       int
	WeeklyChallengeCount int
	GameEnergyCost       int
	GamePrize            int
	LowEnergyThreshold   int
	InjuryChance         float64
	SlumpChance          float64
	EventChance          float64
	MajorEventChance     float64
	RegionReputation     map[string]int
}

// DefaultConstants returns playable defaults; config normally overrides.
func DefaultConstants() Constants {
	return Constants{
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
			"local": 0, "regional": 100, "state": 250, "national": 500, "pro-tour": 900,
		},
	}
}

// NewGameParams is the caller-supplied identity for a fresh career.
type NewGameParams struct {
	Name             string           `json:"name"`
	Handedness       model.Handedness `json:"handedness"`
	Style            model.Style      `json:"style"`
	AlleyEnvironment string           `json:"alley_environment,omitempty"`
}

// Service is the engine boundary consumed by the UI layer. All operations
// are synchronous and atomic from the caller's point of view; the mutex
// only guards against concurrent HTTP callers, not internal scheduling.
type Service struct {
	mu sync.Mutex

	cat      *catalog.Catalog
	registry *repository.Registry
	guard    *economy.Guard

	simulator    sim.Simulator
	entitlements Entitlements
	constants    Constants
	seed         int64
	logger       logger.Logger

	// Components of the currently loaded career; nil when no slot is
	// active. Exactly one career is loaded at a time.
	activeSlot int
	profile    *model.Profile
	ledger     *effects.Ledger
	tracker    *challenge.Tracker
	resolver   *event.Resolver
	rankings   *ranking.Engine
	clock      *career.Clock
}

// New constructs a Service over the catalog and save registry.
func New(cat *catalog.Catalog, registry *repository.Registry, opts ...Option) *Service {
	s := &Service{
		cat:          cat,
		registry:     registry,
		constants:    DefaultConstants(),
		simulator:    sim.NewLaneSimulator(),
		entitlements: NewStaticEntitlements(false),
		seed:         time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.guard = economy.New(s.constants.MaxEnergy)
	if s.logger == nil {
		s.logger = logger.Get().Named("engine")
	}
	return s
}

// requireActive gates every operation that needs a loaded career.
func (s *Service) requireActive() error {
	if s.activeSlot == 0 {
		return ErrNoActiveGame
	}
	return nil
}

// buildComponents wires a fresh component graph for the given state.
func (s *Service) buildComponents(state *model.GameState) error {
	rng := rand.New(rand.NewSource(s.seed)) //nolint:gosec // game randomness, optionally pinned for tests

	s.ledger = effects.New(s.guard, s.cat,
		effects.WithRand(rng),
		effects.WithRiskPolicy(s.constants.LowEnergyThreshold, s.constants.InjuryChance, s.constants.SlumpChance),
		effects.WithAfflictions(s.afflictionPool()),
	)
	s.ledger.Restore(state.Effects)

	s.tracker = challenge.New(s.guard, s.cat.Challenges,
		challenge.WithRand(rng),
		challenge.WithWeeklyCount(s.constants.WeeklyChallengeCount),
	)
	if err := s.tracker.Restore(state.Challenges); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrCorruptSave, err)
	}

	s.resolver = event.New(s.guard, s.ledger, s.cat.Events,
		event.WithRand(rng),
		event.WithChances(s.constants.EventChance, s.constants.MajorEventChance),
	)
	s.resolver.Restore(state.PendingEvent)

	rivals := state.Rivals
	if len(rivals) == 0 {
		rivals = s.cat.Rivals
	}
	s.rankings = ranking.New(s.ledger, s.regionThresholds(), s.cat.BowlerNames, rivals)
	s.rankings.Restore(rivals, state.PreviousRanks, state.WidestRegion)

	s.clock = career.New(s.ledger, s.tracker, s.resolver, s.rankings,
		career.WithSeasonLength(s.constants.SeasonLength),
	)

	s.profile = &state.Profile
	return nil
}

// afflictionPool converts catalog templates into grantable effects.
func (s *Service) afflictionPool() []model.ActiveEffect {
	pool := make([]model.ActiveEffect, 0, len(s.cat.Afflictions))
	for _, a := range s.cat.Afflictions {
		pool = append(pool, model.ActiveEffect{
			ID:             a.ID,
			Type:           a.Type,
			Name:           a.Name,
			Description:    a.Description,
			StatDeltas:     a.StatDeltas,
			WeeksRemaining: a.Weeks,
		})
	}
	return pool
}

// regionThresholds maps configured region names onto ladder tiers,
// dropping unrecognized names.
func (s *Service) regionThresholds() map[model.Region]int {
	out := map[model.Region]int{}
	for name, threshold := range s.constants.RegionReputation {
		r := model.Region(name)
		if r.IsValid() {
			out[r] = threshold
		}
	}
	return out
}

// snapshotState assembles the persistable state of the loaded career.
func (s *Service) snapshotState() model.GameState {
	rivals, prevRanks, widest := s.rankings.State()
	return model.GameState{
		Profile:       *s.profile,
		Effects:       s.ledger.Active(),
		Challenges:    s.tracker.Current(),
		PendingEvent:  s.resolver.Pending(),
		Rivals:        rivals,
		PreviousRanks: prevRanks,
		WidestRegion:  widest,
	}
}

// persist writes the loaded career back into its slot. Persistence happens
// at defined boundaries: after every successful mutating operation.
func (s *Service) persist(ctx context.Context) error {
	if err := s.registry.Save(ctx, s.activeSlot, s.snapshotState()); err != nil {
		metrics.RecordError("registry", "save")
		return err
	}
	metrics.RecordSaveWritten()
	return nil
}

// refreshGauges pushes the loaded career's vitals to metrics.
func (s *Service) refreshGauges() {
	if s.profile == nil {
		return
	}
	metrics.SetActiveEffects(len(s.ledger.Active()))
	metrics.SetCareerClock(s.profile.CurrentSeason, s.profile.CurrentWeek)
}

// StartNewGame creates a fresh career in the given slot, overwriting any
// occupant, and makes it the active career.
func (s *Service) StartNewGame(ctx context.Context, slotID int, params NewGameParams) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params.Name == "" {
		return model.Profile{}, fmt.Errorf("%w: player name required", ErrInvalidParams)
	}
	if params.Handedness == "" {
		params.Handedness = model.RightHanded
	}
	if params.Style == "" {
		params.Style = model.StyleStroker
	}

	state := model.GameState{
		Profile: model.Profile{
			Name:             params.Name,
			Handedness:       params.Handedness,
			Style:            params.Style,
			Money:            s.constants.StartingMoney,
			Energy:           s.constants.StartingEnergy,
			Stats:            map[string]int{model.StatReputation: 0},
			CurrentSeason:    1,
			CurrentWeek:      1,
			AlleyEnvironment: params.AlleyEnvironment,
		},
	}

	if err := s.buildComponents(&state); err != nil {
		return model.Profile{}, err
	}
	s.activeSlot = slotID

	// Week one starts with a challenge set already installed.
	s.tracker.InstallWeekly(ctx)

	if err := s.persist(ctx); err != nil {
		s.unloadLocked()
		return model.Profile{}, err
	}

	s.refreshGauges()
	s.logger.Info(ctx, "new career started",
		logger.Int("slot", slotID), logger.String("player", params.Name))
	return *s.profile, nil
}

// LoadGame makes the career in the given slot the active one.
func (s *Service) LoadGame(ctx context.Context, slotID int) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.registry.Load(ctx, slotID)
	if err != nil {
		metrics.RecordError("registry", "load")
		return model.Profile{}, err
	}
	if err := s.buildComponents(&rec.State); err != nil {
		s.unloadLocked()
		return model.Profile{}, err
	}
	s.activeSlot = slotID

	metrics.RecordSaveLoaded()
	s.refreshGauges()
	s.logger.Info(ctx, "career loaded",
		logger.Int("slot", slotID), logger.String("player", s.profile.Name))
	return *s.profile, nil
}

// DeleteGame vacates a slot. Deleting the active slot unloads it.
func (s *Service) DeleteGame(ctx context.Context, slotID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.Delete(ctx, slotID); err != nil {
		return err
	}
	if slotID == s.activeSlot {
		s.unloadLocked()
	}
	metrics.RecordSaveDeleted()
	return nil
}

// unloadLocked clears the active career. Caller holds the lock.
func (s *Service) unloadLocked() {
	s.activeSlot = 0
	s.profile = nil
	s.ledger = nil
	s.tracker = nil
	s.resolver = nil
	s.rankings = nil
	s.clock = nil
}

// Slots lists every save slot, vacant ones included.
func (s *Service) Slots(ctx context.Context) []repository.SlotSummary {
	return s.registry.Summaries(ctx)
}

// Profile returns a copy of the active career's profile.
func (s *Service) Profile(ctx context.Context) (model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return model.Profile{}, err
	}
	return *s.profile, nil
}

// ActiveEffects returns the ledger snapshot in insertion order.
func (s *Service) ActiveEffects(ctx context.Context) ([]model.ActiveEffect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	return s.ledger.Active(), nil
}

// ActiveEventEffects returns only event-granted buffs and penalties.
func (s *Service) ActiveEventEffects(ctx context.Context) ([]model.ActiveEffect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	return s.ledger.ActiveOfType(model.EffectEventBuff, model.EffectEventPenalty), nil
}

// WeeklyChallenges returns the current week's challenge set.
func (s *Service) WeeklyChallenges(ctx context.Context) ([]model.WeeklyChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	return s.tracker.Current(), nil
}

// PendingEvent returns the unresolved weekly event, nil when none.
func (s *Service) PendingEvent(ctx context.Context) (*model.WeeklyEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return nil, err
	}
	return s.resolver.Pending(), nil
}

// RankingsSnapshot recomputes and returns the standings view.
func (s *Service) RankingsSnapshot(ctx context.Context) (model.RankingsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return model.RankingsSnapshot{}, err
	}
	return s.rankings.Snapshot(ctx, s.profile), nil
}

// ApplyRecoveryAction spends resources to shorten an active effect.
func (s *Service) ApplyRecoveryAction(ctx context.Context, actionID, effectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return err
	}
	if err := s.ledger.ApplyRecovery(ctx, actionID, effectID, s.profile); err != nil {
		metrics.RecordError("effects", "recovery")
		return err
	}
	metrics.RecordRecoveryApplied()
	s.refreshGauges()
	return s.persist(ctx)
}

// RecoveryActions exposes the immutable recovery catalog.
func (s *Service) RecoveryActions(ctx context.Context) []model.RecoveryAction {
	out := make([]model.RecoveryAction, len(s.cat.RecoveryActions))
	copy(out, s.cat.RecoveryActions)
	return out
}

// ClaimChallengeReward pays out a completed challenge exactly once.
func (s *Service) ClaimChallengeReward(ctx context.Context, challengeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return err
	}
	if err := s.tracker.Claim(ctx, challengeID, s.profile); err != nil {
		metrics.RecordError("challenge", "claim")
		return err
	}
	metrics.RecordChallengeClaimed()
	return s.persist(ctx)
}

// ResolveEvent applies a choice to the pending weekly event.
func (s *Service) ResolveEvent(ctx context.Context, choiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return err
	}
	moneyBefore := s.profile.Money
	if err := s.resolver.Resolve(ctx, choiceID, s.profile); err != nil {
		metrics.RecordError("event", "resolve")
		return err
	}
	s.tracker.RecordProgress(ctx, model.ObjectiveResolveEvents, 1)
	if earned := s.profile.Money - moneyBefore; earned > 0 {
		s.tracker.RecordProgress(ctx, model.ObjectiveEarnMoney, earned)
	}
	metrics.RecordEventResolved()
	s.refreshGauges()
	return s.persist(ctx)
}

// DismissEvent resolves the pending event with no cost and no outcome.
func (s *Service) DismissEvent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return err
	}
	if err := s.resolver.Dismiss(ctx); err != nil {
		metrics.RecordError("event", "dismiss")
		return err
	}
	s.tracker.RecordProgress(ctx, model.ObjectiveResolveEvents, 1)
	metrics.RecordEventDismissed()
	return s.persist(ctx)
}

// AdvanceWeek runs the end-of-week settlement pass.
func (s *Service) AdvanceWeek(ctx context.Context) (career.WeekReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return career.WeekReport{}, err
	}

	report := s.clock.AdvanceWeek(ctx, s.profile)

	metrics.RecordWeekAdvanced()
	if report.SeasonRolled {
		metrics.RecordSeasonCompleted()
	}
	if report.NewEvent != nil {
		metrics.RecordEventGenerated()
	}
	if report.NewAffliction != nil {
		metrics.RecordEffectGranted(string(report.NewAffliction.Type))
		s.logger.Info(ctx, "affliction rolled at settlement",
			logger.String("effect", report.NewAffliction.Name),
			logger.Int("weeks", report.NewAffliction.WeeksRemaining))
	}
	s.refreshGauges()

	if err := s.persist(ctx); err != nil {
		return career.WeekReport{}, err
	}
	return report, nil
}

// HasRemoveAds exposes the monetization entitlement, read-only.
func (s *Service) HasRemoveAds(ctx context.Context) bool {
	return s.entitlements.HasRemoveAds(ctx)
}
