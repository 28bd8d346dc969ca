package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqmd/pkg/replay"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

var (
	captureAll bool
	captureRPS int
)

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().BoolVar(&captureAll, "all", false, "replay every request in the collection")
	captureCmd.Flags().IntVar(&captureRPS, "rps", 2, "request rate limit for --all (requests per second, 0 = unlimited)")
}

var captureCmd = &cobra.Command{
	Use:   "capture [request name]",
	Short: "Replay requests and refresh their recorded responses",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !captureAll && len(args) == 0 {
			return fmt.Errorf("pass a request name or --all")
		}

		path, err := resolveCollectionPath(collectionFile)
		if err != nil {
			return err
		}
		collection, err := storage.LoadCollection(path)
		if err != nil {
			return err
		}
		chain, err := loadEnvChain()
		if err != nil {
			return err
		}

		executor := replay.NewExecutor(chain)

		if captureAll {
			runner := replay.NewRunner(executor, captureRPS)
			results := runner.CaptureAll(cmd.Context(), collection)
			fmt.Print(replay.FormatResults(results))
			return storage.SaveCollection(collection, path)
		}

		name := args[0]
		req := collection.FindRequest(name)
		if req == nil {
			return fmt.Errorf("request '%s' not found in %s", name, path)
		}

		exchange, err := executor.Execute(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to capture '%s': %w", name, err)
		}
		req.LastExchange = exchange

		if err := storage.SaveCollection(collection, path); err != nil {
			return err
		}
		fmt.Printf("✓ Captured %s: %d\n", name, exchange.Status)
		return nil
	},
}
