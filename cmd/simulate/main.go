package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/lanebreak/tenpin/internal/smokerun"
)

// Default configuration constants.
const (
	defaultWeeks        = 20
	defaultGamesPerWeek = 3
	defaultSeed         = 1
	defaultRunTimeout   = 5 * time.Minute
)

func main() {
	var (
		weeks        = flag.Int("weeks", defaultWeeks, "Number of weeks to simulate")
		gamesPerWeek = flag.Int("games", defaultGamesPerWeek, "Games to attempt per week")
		seed         = flag.Int64("seed", defaultSeed, "Random seed for a reproducible run")
		playerName   = flag.String("name", "Test Bowler", "Player name for the simulated career")
		verbose      = flag.Bool("verbose", false, "Print every game result, not just weekly summaries")
		help         = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smokerun.ShowHelp()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &smokerun.Config{
		Weeks:        *weeks,
		GamesPerWeek: *gamesPerWeek,
		Seed:         *seed,
		PlayerName:   *playerName,
		Verbose:      *verbose,
	}

	if err := smokerun.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Simulation failed: " + err.Error() + "\n")
		return
	}
}
