// Package main is the entry point for the skrishsim harness
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziyadedher/skrish/internal/config"
	"github.com/ziyadedher/skrish/internal/content"
)

var rootCmd = &cobra.Command{
	Use:   "skrishsim",
	Short: "Headless harness for the skrish crawl engine",
	Long: `skrishsim drives the crawl engine without a UI: batch simulations
with outcome statistics, journal replay verification, and content
schema generation.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(schemaCmd)
}

// loadCatalog reads monster and item definitions from path, or the
// embedded set when path is empty.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.Load()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	return content.LoadBytes(data)
}

// loadTuning reads a tuning file, or the built-in defaults when path
// is empty.
func loadTuning(path string) (config.Tuning, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
