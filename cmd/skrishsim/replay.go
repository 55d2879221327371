package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziyadedher/skrish/internal/journal"
	sessionorch "github.com/ziyadedher/skrish/internal/orchestrators/session"
)

var replayDefsPath string

var replayCmd = &cobra.Command{
	Use:   "replay <record.json>",
	Short: "Re-run a recorded crawl and verify it reproduces identically",
	Long: `Replay rebuilds the game a journal record describes, feeds the recorded
actions back in, and reports the first divergence if the engine no
longer produces the same rounds.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayDefsPath, "definitions", "", "path to the definitions JSON the record was played under")
}

func runReplay(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(replayDefsPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}
	var record journal.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse record: %w", err)
	}

	replayer, err := journal.NewReplayer(&journal.ReplayerConfig{
		Factory: sessionorch.ReplayFactory(&sessionorch.Config{
			Catalog: catalog,
			Tuning:  record.Setup.Tuning,
		}),
	})
	if err != nil {
		return err
	}

	result, err := replayer.Replay(cmd.Context(), &record)
	if err != nil {
		return err
	}
	if result.Diverged {
		return fmt.Errorf("replay diverged at turn %d after %d matching rounds: %s",
			result.DivergedTurn, result.RoundsPlayed, result.Reason)
	}

	fmt.Printf("replay matched: %d rounds, seed %d\n", result.RoundsPlayed, record.Setup.Seed)
	return nil
}
