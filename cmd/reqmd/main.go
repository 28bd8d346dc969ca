package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	cfgFile        string
	collectionFile string
	envName        string

	rootCmd = &cobra.Command{
		Use:   "reqmd",
		Short: "reqmd - captured API requests to Markdown docs in your terminal",
		Long: `reqmd turns captured API requests into Markdown documentation.
It renders stored request/response exchanges (including GraphQL queries with
dynamic variables) into readable docs, supports tag markers for custom
layouts, and can re-capture live responses before generating.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if it exists (optional, warn if malformed)
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Interactive mode: browse the collection
			return runBrowse("")
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .reqmd/config.json)")
	rootCmd.PersistentFlags().StringVarP(&collectionFile, "collection", "c", "", "collection file (default: the only file in .reqmd/captures)")
	rootCmd.PersistentFlags().StringVarP(&envName, "env", "e", "", "environment for variable resolution (default from config)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(storage.WorkspaceDirName)
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// resolveCollectionPath picks the collection file to operate on. An
// explicit path wins; otherwise the captures directory must hold
// exactly one collection.
func resolveCollectionPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	dir := storage.GetCapturesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no collections in %s (run 'reqmd init' or pass --collection)", dir)
		}
		return "", fmt.Errorf("failed to read captures directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		files = append(files, name)
	}

	switch len(files) {
	case 0:
		return "", fmt.Errorf("no collections in %s (run 'reqmd init' or pass --collection)", dir)
	case 1:
		return filepath.Join(dir, files[0]), nil
	default:
		return "", fmt.Errorf("multiple collections in %s (%s), pass --collection", dir, strings.Join(files, ", "))
	}
}

// loadEnvChain builds the variable chain for the current invocation:
// the --env flag wins, then the config default, then OS env only.
func loadEnvChain() (*storage.EnvChain, error) {
	name := envName
	if name == "" {
		name = viper.GetString("environment")
	}
	if name == "" {
		return storage.NewEnvChain(nil), nil
	}

	env, err := storage.LoadEnvironment(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment '%s': %w", name, err)
	}
	return storage.NewEnvChain(env), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
