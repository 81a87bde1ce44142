package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/coursefinder/pkg/models"
)

func renderHeader(width int, title string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	logo := titleStyle.Render("coursefinder")
	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	if title == "" {
		return headerPadding.Render(logo)
	}

	gap := width - 2 - lipgloss.Width(logo) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	return headerPadding.Render(logo + strings.Repeat(" ", gap) + DescriptionStyle.Render(title))
}

// stateSummary describes the season, sort and page size selections
func stateSummary(fs models.FilterState) string {
	return fmt.Sprintf("%s intake · sort %s %s · %d per page",
		fs.Season, fs.SortBy, fs.SortOrder, fs.PageSize)
}

// sectionHeading renders a heading followed by a colon rule, as used above
// each pane
func sectionHeading(heading string, width int, active bool) string {
	remaining := width - lipgloss.Width(heading) - 3
	if remaining < 0 {
		remaining = 0
	}
	return GetActiveHeaderStyle(active).Render(heading) + " " + ColonStyle.Render(strings.Repeat(":", remaining))
}
