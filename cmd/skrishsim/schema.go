package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziyadedher/skrish/internal/content"
)

var schemaOutPath string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Emit the JSON schema for monster and item definitions",
	Long: `Schema prints the JSON schema that definitions files are validated
against, for editor completion and CI checks on authored content.`,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOutPath, "out", "", "write the schema to a file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := content.Schema()
	if err != nil {
		return err
	}

	if schemaOutPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(schemaOutPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Printf("schema written to %s\n", schemaOutPath)
	return nil
}
