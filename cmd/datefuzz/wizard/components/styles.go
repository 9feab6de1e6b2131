package components

import "github.com/charmbracelet/lipgloss"

// Teal-on-grey palette, kept deliberately plain for a one-question tool
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("36")).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		MarginBottom(1)

	FaintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))
)
