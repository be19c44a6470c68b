package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Style variables for the TUI dashboard.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	skipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))
)
