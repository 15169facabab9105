// Package smokerun drives a full in-process career for a configurable
// number of weeks. It exists for manual smoke testing: a reproducible run
// that exercises play, recovery, challenges, events, and settlement
// without an HTTP server in the loop.
package smokerun

import (
	"context"
	"errors"
	"fmt"

	"github.com/lanebreak/tenpin/internal/adapters/repository"
	"github.com/lanebreak/tenpin/internal/domain/catalog"
	"github.com/lanebreak/tenpin/internal/domain/economy"
	"github.com/lanebreak/tenpin/internal/engine"
	"github.com/lanebreak/tenpin/pkg/logger"
)

// Config controls a simulated career run.
type Config struct {
	Weeks        int
	GamesPerWeek int
	Seed         int64
	PlayerName   string
	Verbose      bool
}

// ShowHelp prints usage information.
func ShowHelp() {
	fmt.Println("simulate - run a reproducible career for N weeks")
	fmt.Println()
	fmt.Println("The run is fully in-process: saves go to an in-memory store and")
	fmt.Println("every random draw derives from -seed, so two runs with the same")
	fmt.Println("flags produce the same career.")
	fmt.Println()
	flagDefaults()
}

func flagDefaults() {
	fmt.Println("Flags:")
	fmt.Println("  -weeks    number of weeks to simulate")
	fmt.Println("  -games    games to attempt per week")
	fmt.Println("  -seed     random seed")
	fmt.Println("  -name     player name")
	fmt.Println("  -verbose  print every game result")
}

// Run executes the simulated career described by config.
func Run(ctx context.Context, config *Config) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	_ = logger.SetLevelString("warn")

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	registry := repository.NewRegistry(repository.NewMemoryStore(), 1)
	svc := engine.New(cat, registry, engine.WithSeed(config.Seed))

	profile, err := svc.StartNewGame(ctx, 1, engine.NewGameParams{Name: config.PlayerName})
	if err != nil {
		return fmt.Errorf("start career: %w", err)
	}
	fmt.Printf("career started: %s, $%d, %d energy\n", profile.Name, profile.Money, profile.Energy)

	for week := 0; week < config.Weeks; week++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := playWeek(ctx, svc, config); err != nil {
			return err
		}

		report, err := svc.AdvanceWeek(ctx)
		if err != nil {
			return fmt.Errorf("advance week: %w", err)
		}

		p, err := svc.Profile(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("S%d W%-2d  $%-5d energy=%-3d avg=%.1f rep=%d",
			report.Season, report.Week, p.Money, p.Energy, p.Average(), p.Reputation())
		if report.SeasonRolled {
			fmt.Print("  [season rolled]")
		}
		if report.NewAffliction != nil {
			fmt.Printf("  [afflicted: %s]", report.NewAffliction.Name)
		}
		if report.NewEvent != nil {
			fmt.Printf("  [event: %s]", report.NewEvent.Title)
		}
		fmt.Println()
	}
	return nil
}

// playWeek spends the week's budget: games first, then challenge claims,
// then the cheapest way out of any pending event.
func playWeek(ctx context.Context, svc *engine.Service, config *Config) error {
	for i := 0; i < config.GamesPerWeek; i++ {
		result, err := svc.PlayGame(ctx)
		if errors.Is(err, economy.ErrInsufficientResources) {
			break
		}
		if err != nil {
			return fmt.Errorf("play game: %w", err)
		}
		if config.Verbose {
			fmt.Printf("  vs %-16s %3d-%3d won=%v prize=$%d\n",
				result.RivalName, result.PlayerScore, result.OpponentScore, result.Won, result.Prize)
		}
	}

	challenges, err := svc.WeeklyChallenges(ctx)
	if err != nil {
		return err
	}
	for _, c := range challenges {
		if !c.Complete() || c.Claimed {
			continue
		}
		if err := svc.ClaimChallengeReward(ctx, c.ID); err != nil {
			return fmt.Errorf("claim challenge: %w", err)
		}
		if config.Verbose {
			fmt.Printf("  claimed challenge: %s\n", c.Description)
		}
	}

	return settleEvent(ctx, svc, config)
}

// settleEvent resolves the pending event with the first affordable choice,
// dismissing when nothing is affordable.
func settleEvent(ctx context.Context, svc *engine.Service, config *Config) error {
	pending, err := svc.PendingEvent(ctx)
	if err != nil {
		return err
	}
	if pending == nil {
		return nil
	}
	for _, choice := range pending.Choices {
		err := svc.ResolveEvent(ctx, choice.ID)
		if errors.Is(err, economy.ErrInsufficientResources) {
			continue
		}
		if err != nil {
			return fmt.Errorf("resolve event: %w", err)
		}
		if config.Verbose {
			fmt.Printf("  event %q resolved with %q\n", pending.Title, choice.Label)
		}
		return nil
	}
	if err := svc.DismissEvent(ctx); err != nil {
		return fmt.Errorf("dismiss event: %w", err)
	}
	if config.Verbose {
		fmt.Printf("  event %q dismissed\n", pending.Title)
	}
	return nil
}
