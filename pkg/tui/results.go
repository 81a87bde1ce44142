package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/catalog"
	"github.com/pluqqy/coursefinder/pkg/search"
)

// resultColumns splits the row width between course, university, location
// and deadline
func resultColumns(width int) (name, uni, loc, dl int) {
	// stripe, cursor and column gaps
	avail := width - 9
	if avail < 40 {
		avail = 40
	}
	name = avail * 38 / 100
	uni = avail * 26 / 100
	loc = avail * 16 / 100
	dl = avail - name - uni - loc
	return
}

// renderResultRow renders one course line. query is the free text search
// used to emphasise matched characters in the course name.
func renderResultRow(item catalog.Classified, query string, width int, selected bool) string {
	nameW, uniW, locW, dlW := resultColumns(width)
	c := item.Course

	name := cli.TruncateString(c.CourseName, nameW)
	cells := []string{
		highlight(name, query, selected) + pad(name, nameW),
		cell(c.University, uniW, selected),
		cell(cli.FormatLocation(c), locW, selected),
		cell(cli.FormatDeadline(item.Deadline), dlW, selected),
	}

	cursor := "  "
	if selected {
		cursor = SelectedStyle.Render("▸ ")
	}
	return bandStripe(item.Band) + " " + cursor + strings.Join(cells, " ")
}

func cell(s string, width int, selected bool) string {
	s = cli.TruncateString(s, width)
	return rowStyle(selected).Render(s) + pad(s, width)
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n)
	}
	return ""
}

func rowStyle(selected bool) lipgloss.Style {
	if selected {
		return SelectedStyle
	}
	return NormalStyle
}

// highlight styles the characters of text matched by query
func highlight(text, query string, selected bool) string {
	base := rowStyle(selected)
	matched := search.Highlight(query, text)
	if len(matched) == 0 {
		return base.Render(text)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range text {
		if set[i] {
			b.WriteString(HighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// renderResults renders the result pane: heading, rows and page footer
func renderResults(result catalog.Result, query string, cursor, width, height int) string {
	var b strings.Builder

	heading := fmt.Sprintf("COURSES (%d)", result.Total)
	b.WriteString(ContentPaddingStyle.Render(sectionHeading(heading, width-2, true)))
	b.WriteString("\n\n")

	switch {
	case result.Total == 0:
		b.WriteString(ContentPaddingStyle.Render(EmptyStyle.Render("No courses match the current search and filters. Press r to reset.")))
		b.WriteString("\n")
	case len(result.Bands) == 0:
		b.WriteString(ContentPaddingStyle.Render(EmptyStyle.Render("This page is past the last page. Press ← to go back.")))
		b.WriteString("\n")
	default:
		rows := result.Bands
		if height > 0 && len(rows) > height {
			start := 0
			if cursor >= height {
				start = cursor - height + 1
			}
			rows = rows[start : start+height]
			cursor -= start
		}
		for i, item := range rows {
			b.WriteString(ContentPaddingStyle.Render(renderResultRow(item, query, width-2, i == cursor)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("%s · page %d of %d", result.Page.Summary(), result.Page.Number, result.Page.TotalPages)
	b.WriteString(ContentPaddingStyle.Render(DescriptionStyle.Render(footer)))
	return b.String()
}
