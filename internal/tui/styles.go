package tui

import "github.com/charmbracelet/lipgloss"

// ============================================================================
// STYLING SYSTEM
// ============================================================================

const (
	arrowWidth   = 5
	headerHeight = 1

	prevGlyph = "◀"
	nextGlyph = "▶"
)

var (
	// titleStyle styles the page name in the header bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	// positionStyle shows where we are in the page list, e.g. "2/5"
	positionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236"))

	// arrowStyle styles the previous/next controls
	arrowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203")) // Red-orange, same as headings

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)
