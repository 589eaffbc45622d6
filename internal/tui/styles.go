package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type AppTheme struct {
	Primary string
	Text    string
	Subtle  string
	Error   string
	Warning string
	Success string
}

// GruvboxTheme matches the palette the deployed desktop uses.
func GruvboxTheme() AppTheme {
	return AppTheme{
		Primary: "#d79921",
		Text:    "#ebdbb2",
		Subtle:  "#928374",
		Error:   "#cc241d",
		Warning: "#d65d0e",
		Success: "#98971a",
	}
}

type Styles struct {
	Title   lipgloss.Style
	Normal  lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

func NewStyles(theme AppTheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary)).
			Bold(true).
			MarginLeft(1).
			MarginBottom(1),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Text)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Warning)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),
	}
}
