// Package tui provides the terminal browser for a request collection.
// It uses Bubble Tea for the TUI framework with a minimal two-pane design:
// the request list on the left, the generated Markdown on the right.
//
// File organization:
// - app.go: Entry point (Run function)
// - model.go: Model struct and message types
// - init.go: Model initialization
// - update.go: Event handling and state updates
// - view.go: Rendering and display logic
// - keys.go: Keyboard input handling
// - styles.go: Visual styling (colors, borders, etc.)
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// Run starts the collection browser.
// This is the main entry point for the reqmd terminal interface.
func Run(collection *storage.Collection, chain *storage.EnvChain) error {
	m := InitialModel(collection, chain)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	_, err := prog.Run()
	return err
}
