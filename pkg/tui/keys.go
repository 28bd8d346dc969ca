package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg processes keyboard input and returns the updated model and command.
// This centralizes all key handling logic for the browser.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is open it owns every key.
	if m.focus == focusList && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.focus == focusPreview {
			m.focus = focusList
			return m, nil
		}
		return m, tea.Quit

	case "enter", "l", "right":
		return m.handleOpenPreview()

	case "h", "left":
		m.focus = focusList
		return m, nil

	case "y":
		return m.handleCopyMarkdown()

	case "r":
		return m, m.startRender()

	case "up", "down", "j", "k":
		return m.handleMove(msg)

	case "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		// Remaining keys (e.g. "/" to filter) belong to the list.
		if m.focus == focusList {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// handleOpenPreview moves focus to the preview pane, regenerating the
// document if the viewport shows a different request.
func (m Model) handleOpenPreview() (tea.Model, tea.Cmd) {
	if m.focus != focusList {
		return m, nil
	}
	m.focus = focusPreview
	if item, ok := m.list.SelectedItem().(requestItem); ok && item.name != m.renderedFor {
		return m, m.startRender()
	}
	return m, nil
}

// handleMove routes arrow keys to the focused pane. Moving the list
// selection regenerates the preview for the newly selected request.
func (m Model) handleMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, tea.Batch(cmd, m.startRender())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleCopyMarkdown copies the selection's raw Markdown to the clipboard.
func (m Model) handleCopyMarkdown() (tea.Model, tea.Cmd) {
	if m.markdown == "" {
		return m, nil
	}

	if err := clipboard.WriteAll(m.markdown); err != nil {
		m.statusFlash = "clipboard unavailable"
	} else {
		m.statusFlash = "markdown copied"
	}

	return m, tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
		return flashClearMsg{}
	})
}
