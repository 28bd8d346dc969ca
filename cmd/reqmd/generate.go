package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/blackcoderx/reqmd/pkg/markdown"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

var (
	outputFile string
	checkDrift bool
	previewDoc bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output Markdown file (default: <collection>.md)")
	generateCmd.Flags().BoolVar(&checkDrift, "check", false, "exit non-zero if the output file is out of date")
	generateCmd.Flags().BoolVar(&previewDoc, "preview", false, "render the document to the terminal instead of writing it")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Markdown documentation from a collection",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		doc := markdown.RenderCollection(collection, chain) + "\n"

		if previewDoc {
			return previewMarkdown(doc)
		}

		target := outputFile
		if target == "" {
			target = defaultOutputPath(path)
		}

		if checkDrift {
			return checkDocDrift(target, doc)
		}

		if err := os.WriteFile(target, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		count := 0
		collection.WalkRequests(func([]string, *storage.Request) { count++ })
		fmt.Printf("✓ Wrote %s (%d requests)\n", target, count)
		return nil
	},
}

// defaultOutputPath derives the Markdown filename from the collection file.
func defaultOutputPath(collectionPath string) string {
	base := filepath.Base(collectionPath)
	base = strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
	return base + ".md"
}

// checkDocDrift compares the existing file against the fresh document
// and prints a unified diff when they differ.
func checkDocDrift(target, doc string) error {
	existing, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist, run 'reqmd generate' first", target)
		}
		return fmt.Errorf("failed to read %s: %w", target, err)
	}

	original := string(existing)
	if original == doc {
		fmt.Printf("✓ %s is up to date\n", target)
		return nil
	}

	name := filepath.Base(target)
	edits := udiff.Strings(original, doc)
	unified, err := udiff.ToUnified("a/"+name, "b/"+name, original, edits, 3)
	if err != nil {
		return fmt.Errorf("failed to compute diff: %w", err)
	}

	fmt.Print(unified)
	return fmt.Errorf("%s is out of date, run 'reqmd generate'", target)
}

// previewMarkdown renders the document with Glamour, falling back to
// the raw text when the terminal renderer fails.
func previewMarkdown(doc string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(doc) // Fallback to raw output
		return nil
	}

	out, err := renderer.Render(doc)
	if err != nil {
		fmt.Print(doc) // Fallback
		return nil
	}

	fmt.Print(out)
	return nil
}
