package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/content"
	sessionorch "github.com/ziyadedher/skrish/internal/orchestrators/session"
	"github.com/ziyadedher/skrish/internal/scheduler"
	"github.com/ziyadedher/skrish/internal/services/session"
)

var (
	simGames      int
	simSeed       int64
	simWidth      int
	simHeight     int
	simRooms      int
	simDepth      int
	simMaxRounds  int
	simTuningPath string
	simDefsPath   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play a batch of crawls and report outcome statistics",
	Long: `Simulate plays a batch of crawls with a scripted player that heads for
the stairs and fights whatever blocks the way, then reports how the
batch went. Useful for checking that tuning or content changes keep
the game winnable.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simGames, "games", 25, "number of games to play")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "seed of the first game; later games increment it")
	simulateCmd.Flags().IntVar(&simWidth, "width", 40, "level width in tiles")
	simulateCmd.Flags().IntVar(&simHeight, "height", 20, "level height in tiles")
	simulateCmd.Flags().IntVar(&simRooms, "rooms", 6, "rooms per level")
	simulateCmd.Flags().IntVar(&simDepth, "depth", 3, "levels to clear for a full clear")
	simulateCmd.Flags().IntVar(&simMaxRounds, "max-rounds", 500, "round cap per level before a run counts as stalled")
	simulateCmd.Flags().StringVar(&simTuningPath, "tuning", "", "path to a tuning YAML file (defaults to built-in tuning)")
	simulateCmd.Flags().StringVar(&simDefsPath, "definitions", "", "path to a definitions JSON file (defaults to the embedded catalog)")
}

// runVerdict classifies how one simulated crawl ended.
type runVerdict string

const (
	verdictCleared runVerdict = "cleared"
	verdictDied    runVerdict = "died"
	verdictStalled runVerdict = "stalled"
)

func runSimulate(cmd *cobra.Command, args []string) error {
	if simGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}
	if simDepth < 1 {
		return fmt.Errorf("--depth must be at least 1")
	}

	catalog, err := loadCatalog(simDefsPath)
	if err != nil {
		return err
	}
	tuning, err := loadTuning(simTuningPath)
	if err != nil {
		return err
	}

	counts := map[runVerdict]int{}
	var totalRounds, totalDepth int
	for i := 0; i < simGames; i++ {
		seed := simSeed + int64(i)
		verdict, depth, rounds, err := playGame(cmd.Context(), catalog, tuning, seed)
		if err != nil {
			return fmt.Errorf("seed %d: %w", seed, err)
		}
		counts[verdict]++
		totalRounds += rounds
		totalDepth += depth
	}

	fmt.Printf("games:   %d (%dx%d, %d rooms, depth %d)\n", simGames, simWidth, simHeight, simRooms, simDepth)
	fmt.Printf("cleared: %d\n", counts[verdictCleared])
	fmt.Printf("died:    %d\n", counts[verdictDied])
	fmt.Printf("stalled: %d\n", counts[verdictStalled])
	fmt.Printf("mean rounds: %.1f  mean depth: %.2f\n",
		float64(totalRounds)/float64(simGames), float64(totalDepth)/float64(simGames))
	return nil
}

// playGame plays one crawl to its end: descending after each cleared
// level until the target depth, death, or the round cap.
func playGame(ctx context.Context, catalog *content.Catalog, tuning config.Tuning, seed int64) (runVerdict, int, int, error) {
	orch, err := sessionorch.New(&sessionorch.Config{Catalog: catalog, Tuning: tuning})
	if err != nil {
		return "", 0, 0, err
	}
	var svc session.Service = orch

	if _, err := svc.NewLevel(ctx, &session.NewLevelInput{
		Seed:            seed,
		Width:           simWidth,
		Height:          simHeight,
		TargetRoomCount: simRooms,
	}); err != nil {
		return "", 0, 0, err
	}

	p := &pilot{service: svc}
	rounds := 0
	for depth := 1; ; depth++ {
		outcome, played, err := p.playLevel(ctx, simMaxRounds)
		rounds += played
		if err != nil {
			return "", depth, rounds, err
		}

		switch outcome.Outcome {
		case scheduler.OutcomePlayerLost:
			return verdictDied, depth, rounds, nil
		case scheduler.OutcomePlayerWon:
			if depth == simDepth {
				return verdictCleared, depth, rounds, nil
			}
			if _, err := svc.DescendStairs(ctx, &session.DescendStairsInput{}); err != nil {
				return "", depth, rounds, err
			}
		default:
			return verdictStalled, depth, rounds, nil
		}
	}
}
