package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up the .reqmd workspace and a starter collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		config := storage.DefaultConfig()
		title := "My API"
		defaultEnv := config.Environment

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Collection title").
					Description("Heading of the generated documentation").
					Value(&title),
				huh.NewSelect[string]().
					Title("LLM provider").
					Description("Used by 'reqmd annotate' to draft descriptions").
					Options(
						huh.NewOption("Ollama", "ollama"),
						huh.NewOption("Gemini", "gemini"),
					).
					Value(&config.Provider),
				huh.NewInput().
					Title("Model").
					Description("Model name for the chosen provider").
					Value(&config.DefaultModel),
				huh.NewInput().
					Title("Default environment").
					Description("Environment file loaded when --env is not given").
					Value(&defaultEnv),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("setup canceled: %w", err)
		}

		key := &config.OllamaAPIKey
		keyTitle := "Ollama API key (leave empty for a local instance)"
		if config.Provider == "gemini" {
			key = &config.GeminiAPIKey
			keyTitle = "Gemini API key"
		}
		keyForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(keyTitle).
					EchoMode(huh.EchoModePassword).
					Value(key),
			),
		)
		if err := keyForm.Run(); err != nil {
			return fmt.Errorf("setup canceled: %w", err)
		}

		config.Environment = strings.TrimSpace(defaultEnv)
		if config.Environment == "" {
			config.Environment = "dev"
		}

		if err := storage.EnsureWorkspace(); err != nil {
			return err
		}
		if err := storage.WriteConfig(config); err != nil {
			return err
		}
		if config.Environment != "dev" {
			if err := storage.SaveEnvironment(&storage.Environment{
				Name:      config.Environment,
				Variables: map[string]string{},
			}); err != nil {
				return err
			}
		}

		// Starter collection, unless captures already holds one.
		names, err := storage.ListCollections()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			path := filepath.Join(storage.GetCapturesDir(), slugify(title))
			if err := storage.SaveCollection(starterCollection(title), path); err != nil {
				return err
			}
			fmt.Printf("✓ Created starter collection %s.yaml\n", path)
		}

		fmt.Println("✓ reqmd is ready. Try 'reqmd capture --all' then 'reqmd generate'.")
		return nil
	},
}

// starterCollection builds the first collection written by init.
func starterCollection(title string) *storage.Collection {
	return &storage.Collection{
		Title: title,
		Requests: []storage.Request{
			{
				Name:        "Example Request",
				Description: "Replace me with your own captured requests.",
				Method:      "GET",
				URL:         "https://httpbin.org/json",
			},
		},
	}
}

// slugify turns a collection title into a filename.
func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "collection"
	}
	return b.String()
}
