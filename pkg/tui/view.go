package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the entire browser to a string.
// This is called by Bubble Tea on every update.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	left := ListPaneStyle.Render(m.list.View())

	var preview string
	switch {
	case len(m.list.Items()) == 0:
		preview = PreviewPaneStyle.Render(ErrorStyle.Render("collection has no requests"))
	case m.rendering:
		preview = PreviewPaneStyle.Render(m.spinner.View() + " generating...")
	case m.renderedFor == "":
		preview = PreviewPaneStyle.Render(HelpTextStyle.Render("select a request to preview its documentation"))
	default:
		preview = PreviewPaneStyle.Render(m.viewport.View())
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, preview))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderFooter renders status on the left and shortcuts on the right.
func (m Model) renderFooter() string {
	left := m.statusDot() + " " + FooterAppNameStyle.Render("reqmd")
	switch {
	case m.statusFlash != "":
		left += FlashStyle.Render(" " + m.statusFlash)
	case m.rendering:
		left += FooterInfoStyle.Render(" generating")
	default:
		left += FooterInfoStyle.Render(" " + m.list.Title)
	}

	parts := []string{
		ShortcutKeyStyle.Render("↑↓") + ShortcutDescStyle.Render(" select"),
		ShortcutKeyStyle.Render("enter") + ShortcutDescStyle.Render(" preview"),
		ShortcutKeyStyle.Render("y") + ShortcutDescStyle.Render(" copy"),
		ShortcutKeyStyle.Render("r") + ShortcutDescStyle.Render(" regen"),
		ShortcutKeyStyle.Render("q") + ShortcutDescStyle.Render(" quit"),
	}
	right := strings.Join(parts, "    ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	return FooterStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// statusDot renders the pulsing activity circle driven by the spring.
func (m Model) statusDot() string {
	if m.animPos > 0.5 {
		return StatusDotBrightStyle.Render("●")
	}
	return StatusDotDimStyle.Render("●")
}
