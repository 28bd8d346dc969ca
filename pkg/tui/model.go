package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// focusArea identifies which pane receives keyboard input.
type focusArea int

const (
	focusList focusArea = iota
	focusPreview
)

// requestItem is a list entry for a single request in the collection.
type requestItem struct {
	name   string // display name, group path included
	method string
	url    string
	req    *storage.Request
}

func (i requestItem) Title() string       { return i.name }
func (i requestItem) Description() string { return strings.ToUpper(i.method) + " " + i.url }
func (i requestItem) FilterValue() string { return i.name }

// Model is the Bubble Tea model for the collection browser.
// It manages the state of the terminal interface including:
// - list of the collection's requests
// - viewport showing the generated Markdown for the selection
// - spinner while a document is being regenerated
type Model struct {
	collection *storage.Collection
	chain      *storage.EnvChain

	list     list.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	focus     focusArea
	rendering bool // true while the selected request is being regenerated
	ready     bool
	width     int
	height    int

	markdown    string // raw Markdown of the selected request, for clipboard copy
	renderedFor string // name of the request the viewport currently shows
	statusFlash string // transient footer message (e.g. after a copy)

	// Animation state (harmonica spring for pulsing status circle)
	animSpring harmonica.Spring
	animPos    float64 // Current spring position (0.0 - 1.0)
	animVel    float64 // Current spring velocity
	animTarget float64 // Target position (oscillates between 0 and 1)
}

// renderDoneMsg carries a freshly generated document for the viewport.
type renderDoneMsg struct {
	name     string // request the document belongs to
	markdown string // raw Markdown
	rendered string // glamour output, raw Markdown when rendering failed
}

// animTickMsg drives the harmonica spring animation
type animTickMsg time.Time

// flashClearMsg clears the transient footer message
type flashClearMsg struct{}
