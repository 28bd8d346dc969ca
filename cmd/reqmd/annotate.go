package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/reqmd/pkg/llm"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

var (
	annotateAll   bool
	annotateForce bool
)

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().BoolVar(&annotateAll, "all", false, "annotate every request without a description")
	annotateCmd.Flags().BoolVar(&annotateForce, "force", false, "overwrite existing descriptions")
}

// configFromViper assembles the runtime config from viper state,
// falling back to the first-run defaults.
func configFromViper() storage.Config {
	config := storage.DefaultConfig()
	if v := viper.GetString("provider"); v != "" {
		config.Provider = v
	}
	if v := viper.GetString("ollama_url"); v != "" {
		config.OllamaURL = v
	}
	config.OllamaAPIKey = viper.GetString("ollama_api_key")
	config.GeminiAPIKey = viper.GetString("gemini_api_key")
	if v := viper.GetString("default_model"); v != "" {
		config.DefaultModel = v
	}
	return config
}

var annotateCmd = &cobra.Command{
	Use:   "annotate [request name]",
	Short: "Draft request descriptions with the configured model",
	Long: `Annotate asks the configured LLM provider (Ollama or Gemini) to draft a
short description for requests that have none. Existing descriptions,
including ones carrying layout markers, are left alone unless --force
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !annotateAll && len(args) == 0 {
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

		config := configFromViper()
		client, err := llm.NewClient(&config)
		if err != nil {
			return err
		}
		if err := client.CheckConnection(cmd.Context()); err != nil {
			return fmt.Errorf("provider unavailable: %w", err)
		}

		var targets []*storage.Request
		if annotateAll {
			collection.WalkRequests(func(_ []string, req *storage.Request) {
				if annotateForce || strings.TrimSpace(req.Description) == "" {
					targets = append(targets, req)
				}
			})
		} else {
			req := collection.FindRequest(args[0])
			if req == nil {
				return fmt.Errorf("request '%s' not found in %s", args[0], path)
			}
			if !annotateForce && strings.TrimSpace(req.Description) != "" {
				return fmt.Errorf("request '%s' already has a description (use --force)", args[0])
			}
			targets = append(targets, req)
		}

		if len(targets) == 0 {
			fmt.Println("✓ Every request already has a description")
			return nil
		}

		annotated := 0
		for _, req := range targets {
			description, err := llm.Describe(cmd.Context(), client, req)
			if err != nil {
				fmt.Printf("✗ %s: %v\n", req.Name, err)
				continue
			}
			req.Description = description
			annotated++
			fmt.Printf("✓ %s\n", req.Name)
		}

		if annotated == 0 {
			return fmt.Errorf("no descriptions were generated")
		}
		if err := storage.SaveCollection(collection, path); err != nil {
			return err
		}
		fmt.Printf("✓ Annotated %d request(s) in %s\n", annotated, path)
		return nil
	},
}
