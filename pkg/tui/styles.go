package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor     = lipgloss.Color("#6c6c6c")
	TextColor    = lipgloss.Color("#e0e0e0")
	AccentColor  = lipgloss.Color("#7aa2f7")
	ErrorColor   = lipgloss.Color("#f7768e")
	SuccessColor = lipgloss.Color("#9ece6a")
)

// Pane styles
var (
	ListTitleStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true).
			Padding(0, 1)

	ListPaneStyle = lipgloss.NewStyle().
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(DimColor)

	PreviewPaneStyle = lipgloss.NewStyle().
				PaddingLeft(2)

	HelpTextStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			Italic(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	FooterAppNameStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true)

	FooterInfoStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	FlashStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)

	StatusDotBrightStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	StatusDotDimStyle = lipgloss.NewStyle().
				Foreground(DimColor)
)
