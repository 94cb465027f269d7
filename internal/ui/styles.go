package ui

import "github.com/charmbracelet/lipgloss"

// "Deep sea" palette
const (
	ColorAbyss    = "#0B1021" // Background
	ColorFoam     = "#9CCFD8" // Primary UI/Text
	ColorSlate    = "#44506B" // Panels/Borders
	ColorKelp     = "#31748F" // Graphs/Normal Metrics
	ColorCoralRed = "#EB6F92" // Alerts/Errors
)

var (
	// Panel styles
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSlate)).
			Padding(0, 1)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFoam)).
			Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSlate))

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorKelp))

	// Alert styles
	AlertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCoralRed)).
			Bold(true)

	// Bar styles
	BarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorKelp))

	AlertBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCoralRed))
)
