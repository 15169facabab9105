package engine

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/lanebreak/tenpin/internal/domain/model"
	"github.com/lanebreak/tenpin/internal/domain/sim"
	"github.com/lanebreak/tenpin/pkg/logger"
	"github.com/lanebreak/tenpin/pkg/metrics"
)

// PlayResult is the outcome of one played game.
type PlayResult struct {
	RivalID       string `json:"rival_id"`
	RivalName     string `json:"rival_name"`
	PlayerScore   int    `json:"player_score"`
	OpponentScore int    `json:"opponent_score"`
	Won           bool   `json:"won"`
	Prize         int    `json:"prize"`
	EnergySpent   int    `json:"energy_spent"`
}

// PlayGame plays one head-to-head game against a drawn rival. Energy is
// charged through the economy guard before anything happens; the result
// feeds the bowling average, the rival head-to-head record, and challenge
// progress. A win pays the configured prize.
func (s *Service) PlayGame(ctx context.Context) (PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireActive(); err != nil {
		return PlayResult{}, err
	}

	cost := model.Cost{Energy: s.constants.GameEnergyCost}
	if err := s.guard.Apply(cost, s.profile); err != nil {
		metrics.RecordError("play", "afford")
		return PlayResult{}, err
	}

	rival := s.drawRival()
	result, err := s.simulator.Simulate(ctx, sim.Input{
		PlayerRating:   s.rankings.EffectiveAverage(s.profile),
		OpponentRating: rival.Average,
	})
	if err != nil {
		// The energy charge must not stick when the collaborator fails.
		s.guard.Credit(0, cost.Energy, s.profile)
		return PlayResult{}, fmt.Errorf("simulate game: %w", err)
	}

	s.profile.RecordGame(result.PlayerScore)
	if err := s.rankings.ReportMatch(ctx, rival.ID, result.Won); err != nil {
		return PlayResult{}, err
	}

	prize := 0
	if result.Won {
		prize = s.constants.GamePrize
		s.guard.Credit(prize, 0, s.profile)
		s.tracker.RecordProgress(ctx, model.ObjectiveWinMatches, 1)
		s.tracker.RecordProgress(ctx, model.ObjectiveEarnMoney, prize)
	}
	s.tracker.RecordProgress(ctx, model.ObjectivePlayGames, 1)
	s.tracker.RecordProgress(ctx, model.ObjectiveScorePins, result.PlayerScore)

	metrics.RecordGamePlayed()
	s.logger.Debug(ctx, "game played",
		logger.String("rival", rival.Name),
		logger.Int("player_score", result.PlayerScore),
		logger.Int("opponent_score", result.OpponentScore),
		logger.Bool("won", result.Won))

	out := PlayResult{
		RivalID:       rival.ID,
		RivalName:     rival.Name,
		PlayerScore:   result.PlayerScore,
		OpponentScore: result.OpponentScore,
		Won:           result.Won,
		Prize:         prize,
		EnergySpent:   cost.Energy,
	}
	if err := s.persist(ctx); err != nil {
		return PlayResult{}, err
	}
	return out, nil
}

// drawRival picks tonight's opponent from the tracked rivals.
func (s *Service) drawRival() model.Rival {
	rivals := s.rankings.Rivals()
	rng := rand.New(rand.NewSource(s.seed + int64(s.profile.GamesPlayed))) //nolint:gosec // game randomness
	return rivals[rng.Intn(len(rivals))]
}
