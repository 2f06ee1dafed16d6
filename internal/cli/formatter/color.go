package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Header renders s in the header style.
func Header(s string) string {
	return StyleHeader.Render(s)
}

// KPIColor picks a style for a value measured against a "higher is worse"
// threshold: green under, red over.
func KPIColor(value, limit int) lipgloss.Style {
	if value > limit {
		return StyleRed
	}
	return StyleGreen
}

// ScoreColor picks a style for a score measured against a target: red when
// negative, yellow when under target, green at or above.
func ScoreColor(score, target int) lipgloss.Style {
	switch {
	case score < 0:
		return StyleRed
	case score < target:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Metric renders a labeled KPI value.
func Metric(label, value string, style lipgloss.Style) string {
	return fmt.Sprintf("%s %s", Dim(label+":"), style.Render(value))
}
