package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackcoderx/reqmd/pkg/storage"
)

// animFPS is the frame rate of the status circle animation.
const animFPS = 30

// requestItems flattens the collection tree into list entries.
// Grouped requests carry their group path in the display name.
func requestItems(collection *storage.Collection) []list.Item {
	var items []list.Item
	collection.WalkRequests(func(path []string, req *storage.Request) {
		name := req.Name
		if len(path) > 0 {
			name = strings.Join(path, " / ") + " / " + req.Name
		}
		items = append(items, requestItem{
			name:   name,
			method: req.Method,
			url:    req.URL,
			req:    req,
		})
	})
	return items
}

// newList creates the request list with the reqmd style.
func newList(collection *storage.Collection) list.Model {
	l := list.New(requestItems(collection), list.NewDefaultDelegate(), 0, 0)
	l.Title = collection.Title
	if l.Title == "" {
		l.Title = "Requests"
	}
	l.Styles.Title = ListTitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

// newSpinner creates a spinner with the reqmd style (dots animation).
func newSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{
			".       ",
			"..      ",
			"...     ",
			"....    ",
			".....   ",
			"......  ",
			"....... ",
			"........",
		},
		FPS: time.Second / 5,
	}
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)
	return sp
}

// newGlamourRenderer creates a glamour renderer for markdown.
func newGlamourRenderer() *glamour.TermRenderer {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	return renderer
}

// updateGlamourWidth recreates the glamour renderer with a new word wrap width.
// This is called when the terminal is resized so markdown renders correctly.
func (m *Model) updateGlamourWidth(width int) {
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		m.renderer = renderer
	}
}

// InitialModel creates and returns the initial browser model.
func InitialModel(collection *storage.Collection, chain *storage.EnvChain) Model {
	return Model{
		collection: collection,
		chain:      chain,
		list:       newList(collection),
		spinner:    newSpinner(),
		renderer:   newGlamourRenderer(),
		focus:      focusList,
		animSpring: harmonica.NewSpring(harmonica.FPS(animFPS), 4.0, 0.3),
		animTarget: 1.0,
	}
}

// animTick schedules the next animation frame.
func animTick() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Init initializes the Bubble Tea model.
// This is called once when the program starts.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		animTick(),
	)
}
