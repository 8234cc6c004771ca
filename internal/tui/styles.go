package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleFocused = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	stylePreview      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	stylePreviewStale = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	styleConfirmed = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleHelp      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	styleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)
)
