package tui

import "github.com/charmbracelet/lipgloss"

// Styles. Monochrome: weight and borders only.
var (
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	titleStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)
