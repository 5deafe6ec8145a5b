package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the widget
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected friends, borders
	ColorOwe       = "196" // Red - user owes the friend
	ColorOwed      = "42"  // Green - friend owes the user
	ColorMuted     = "241" // Gray - for hints
)

// Styles contains shared style definitions.
var Styles = struct {
	Title    lipgloss.Style
	Box      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Owe      lipgloss.Style
	Owed     lipgloss.Style
	Even     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Hint     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Cursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Owe: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOwe)),
	Owed: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorOwed)),
	Even:  lipgloss.NewStyle(),
	Label: lipgloss.NewStyle(),
	Focused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
