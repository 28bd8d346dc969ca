package main

import (
	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqmd/pkg/storage"
	"github.com/blackcoderx/reqmd/pkg/tui"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse [collection file]",
	Short: "Browse the collection and preview generated docs in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runBrowse(path)
	},
}

// runBrowse loads the collection and starts the terminal browser. An
// empty path falls back to the --collection flag, then the captures
// directory.
func runBrowse(path string) error {
	if path == "" {
		path = collectionFile
	}
	resolved, err := resolveCollectionPath(path)
	if err != nil {
		return err
	}

	collection, err := storage.LoadCollection(resolved)
	if err != nil {
		return err
	}
	chain, err := loadEnvChain()
	if err != nil {
		return err
	}

	return tui.Run(collection, chain)
}
