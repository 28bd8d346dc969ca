package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/blackcoderx/reqmd/pkg/markdown"
	"github.com/blackcoderx/reqmd/pkg/storage"
)

// renderRequest regenerates the document for item off the update loop.
// Glamour failures fall back to the raw Markdown.
func renderRequest(item requestItem, chain *storage.EnvChain, renderer *glamour.TermRenderer) tea.Cmd {
	return func() tea.Msg {
		md := markdown.RenderRequest(item.req, chain)
		if renderer == nil {
			return renderDoneMsg{name: item.name, markdown: md, rendered: md}
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return renderDoneMsg{name: item.name, markdown: md, rendered: md}
		}
		return renderDoneMsg{name: item.name, markdown: md, rendered: strings.TrimSpace(rendered)}
	}
}

// startRender marks the model busy and returns the regeneration command
// for the current selection.
func (m *Model) startRender() tea.Cmd {
	item, ok := m.list.SelectedItem().(requestItem)
	if !ok {
		return nil
	}
	m.rendering = true
	return tea.Batch(m.spinner.Tick, renderRequest(item, m.chain, m.renderer))
}

// Update handles all messages and updates the model state.
// This is the main event loop handler for the Bubble Tea application.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case renderDoneMsg:
		return m.handleRenderDone(msg)

	case spinner.TickMsg:
		if !m.rendering {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case animTickMsg:
		m = m.stepAnimation()
		return m, animTick()

	case flashClearMsg:
		m.statusFlash = ""
		return m, nil
	}

	// Mouse wheel and anything else scrolls the preview.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleWindowResize adjusts the layout when the terminal is resized.
func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	if listWidth > 40 {
		listWidth = 40
	}
	previewWidth := m.width - listWidth - 4
	if previewWidth < 20 {
		previewWidth = 20
	}

	bodyHeight := m.height - 2
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	m.list.SetSize(listWidth, bodyHeight)

	if !m.ready {
		m.viewport = viewport.New(previewWidth, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = previewWidth
		m.viewport.Height = bodyHeight
	}

	m.updateGlamourWidth(previewWidth - 2)

	// Regenerate the document at the new wrap width.
	return m, m.startRender()
}

// handleRenderDone swaps the freshly generated document into the viewport.
func (m Model) handleRenderDone(msg renderDoneMsg) (Model, tea.Cmd) {
	m.rendering = false

	// A stale result can arrive after the selection moved on.
	if item, ok := m.list.SelectedItem().(requestItem); ok && item.name != msg.name {
		return m, nil
	}

	m.markdown = msg.markdown
	m.renderedFor = msg.name
	m.viewport.SetContent(msg.rendered)
	m.viewport.GotoTop()
	return m, nil
}

// stepAnimation advances the spring and flips the target at the rims,
// producing a steady pulse.
func (m Model) stepAnimation() Model {
	m.animPos, m.animVel = m.animSpring.Update(m.animPos, m.animVel, m.animTarget)
	if m.animTarget == 1.0 && m.animPos > 0.95 {
		m.animTarget = 0.0
	} else if m.animTarget == 0.0 && m.animPos < 0.05 {
		m.animTarget = 1.0
	}
	return m
}
