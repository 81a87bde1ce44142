package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
	fmt.Fprintln(t.writer, strings.Repeat("-", 80))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		// Text output is rendered by the caller; this is a fallback
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TruncateString truncates s to maxLen cells, ending in "..." when cut
func TruncateString(s string, maxLen int) string {
	if ansi.PrintableRuneWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(max(maxLen, 0)))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}

// FormatScore renders an optional score, "-" when unknown
func FormatScore(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatTuition renders the tuition model and approximate amount
func FormatTuition(c models.Course) string {
	switch c.TuitionModel {
	case models.TuitionFree:
		return "free"
	case models.TuitionPaid:
		if c.TuitionAmountApprox == nil {
			return "paid"
		}
		amount := fmt.Sprintf("€%.0f", *c.TuitionAmountApprox)
		if c.TuitionPeriod != "" {
			amount += "/" + c.TuitionPeriod
		}
		return amount
	default:
		return "unknown"
	}
}

// FormatDuration renders the programme length in semesters
func FormatDuration(c models.Course) string {
	if c.DurationDisplay != "" {
		return c.DurationDisplay
	}
	if c.DurationSemesters <= 0 {
		return "-"
	}
	if c.DurationSemesters == 1 {
		return "1 semester"
	}
	return fmt.Sprintf("%d semesters", c.DurationSemesters)
}

// FormatLocation joins a course's locations
func FormatLocation(c models.Course) string {
	if c.LocationDisplay != "" {
		return c.LocationDisplay
	}
	return strings.Join(c.Locations(), ", ")
}

// FormatDeadline renders a deadline reading for text output
func FormatDeadline(info deadline.Info) string {
	switch info.Status {
	case deadline.StatusNoDeadline:
		if info.Text == "" {
			return "-"
		}
		return info.Text
	case deadline.StatusPassed:
		return "passed (" + info.Text + ")"
	default:
		return info.Text
	}
}

// BandMarker is a short plain-text stand-in for a deadline band stripe
func BandMarker(b deadline.Band) string {
	return fmt.Sprintf("[%d]", b.Priority)
}
