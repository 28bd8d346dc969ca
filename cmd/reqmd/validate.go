package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [collection file]",
	Short: "Validate a collection file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := collectionFile
		if len(args) > 0 {
			path = args[0]
		}
		resolved, err := resolveCollectionPath(path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(resolved)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", resolved, err)
		}
		if err := storage.ValidateCollection(data); err != nil {
			return fmt.Errorf("%s: %w", resolved, err)
		}

		fmt.Printf("✓ %s is valid\n", resolved)
		return nil
	},
}
