package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WorkspaceDirName is the folder holding all reqmd state, relative to
// the working directory.
const WorkspaceDirName = ".reqmd"

// Config represents the user's reqmd configuration.
type Config struct {
	Provider     string `json:"provider"`       // LLM provider: ollama or gemini
	OllamaURL    string `json:"ollama_url"`     // Ollama endpoint
	OllamaAPIKey string `json:"ollama_api_key"` // Ollama API key, if the endpoint needs one
	GeminiAPIKey string `json:"gemini_api_key"` // Gemini API key
	DefaultModel string `json:"default_model"`  // Model used by annotate
	Environment  string `json:"environment"`    // Environment loaded when --env is not given
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Provider:     "ollama",
		OllamaURL:    "https://ollama.com",
		DefaultModel: "qwen3-coder:480b-cloud",
		Environment:  "dev",
	}
}

// EnsureWorkspace creates the .reqmd layout when it is missing: the
// default config, the captures directory and a starter dev
// environment.
func EnsureWorkspace() error {
	if _, err := os.Stat(WorkspaceDirName); os.IsNotExist(err) {
		fmt.Println("🔧 Initializing .reqmd workspace for the first time...")

		if err := os.Mkdir(WorkspaceDirName, 0755); err != nil {
			return fmt.Errorf("failed to create workspace folder: %w", err)
		}
		if err := WriteConfig(DefaultConfig()); err != nil {
			return err
		}
		if err := createDefaultEnvironment(); err != nil {
			return err
		}

		fmt.Println("✓ Workspace initialized successfully!")
	}

	// Ensure subdirectories exist, also after upgrades from older
	// versions.
	ensureDir(GetCapturesDir())
	ensureDir(GetEnvironmentsDir())

	return nil
}

// WriteConfig saves cfg as the workspace configuration.
func WriteConfig(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(WorkspaceDirName, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		os.MkdirAll(path, 0755)
	}
}

// createDefaultEnvironment creates a starter dev environment file.
func createDefaultEnvironment() error {
	envContent := `# Development environment
# Add your variables here, e.g.:
# BASE_URL: http://localhost:3000
# API_TOKEN: your-dev-token
`
	if err := os.MkdirAll(GetEnvironmentsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create environments folder: %w", err)
	}

	envPath := filepath.Join(GetEnvironmentsDir(), "dev.yaml")
	if err := os.WriteFile(envPath, []byte(envContent), 0644); err != nil {
		return fmt.Errorf("failed to write dev environment: %w", err)
	}
	return nil
}
