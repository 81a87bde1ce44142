package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/coursefinder/pkg/deadline"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorError    = "196" // Red for errors
)

// Band stripe colors
var bandColors = map[deadline.Color]string{
	deadline.ColorOpen:       "34",  // green
	deadline.ColorRestricted: "33",  // blue
	deadline.ColorAptitude:   "214", // orange
	deadline.ColorExpired:    "160", // red
	deadline.ColorNeutral:    "240", // gray
}

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	ColonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Italic(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	// Matched characters of the search query
	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Width(18)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))
)

// bandStripe renders the two-cell deadline marker at the start of a row.
// Split bands show the neutral fill in the first cell and the admission
// accent in the second.
func bandStripe(b deadline.Band) string {
	fill := lipgloss.NewStyle().Background(lipgloss.Color(bandColor(b.Fill)))
	if !b.Split {
		return fill.Render("  ")
	}
	accent := lipgloss.NewStyle().Background(lipgloss.Color(bandColor(b.Accent)))
	return fill.Render(" ") + accent.Render(" ")
}

func bandColor(c deadline.Color) string {
	if color, ok := bandColors[c]; ok {
		return color
	}
	return bandColors[deadline.ColorNeutral]
}

// GetActiveHeaderStyle returns the heading style for a pane
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
