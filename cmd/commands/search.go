package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/catalog"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query      string             `json:"query" yaml:"query"`
	Season     string             `json:"season" yaml:"season"`
	Total      int                `json:"total" yaml:"total"`
	Page       int                `json:"page" yaml:"page"`
	TotalPages int                `json:"totalPages" yaml:"total_pages"`
	Results    []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	University     string `json:"university" yaml:"university"`
	Location       string `json:"location" yaml:"location"`
	Degree         string `json:"degree" yaml:"degree"`
	Tuition        string `json:"tuition" yaml:"tuition"`
	Deadline       string `json:"deadline" yaml:"deadline"`
	DeadlineStatus string `json:"deadlineStatus" yaml:"deadline_status"`
	BandPriority   int    `json:"bandPriority" yaml:"band_priority"`
	URL            string `json:"url,omitempty" yaml:"url,omitempty"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search and filter the course catalog",
		Long: `Search the course catalog with fuzzy text and field filters and print one
page of results.

` + queryHelp + `

Examples:
  # Fuzzy search
  coursefinder search data science

  # Free Master's courses in Berlin for IELTS 6.5
  coursefinder search degree:Master city:Berlin tuition:free ielts:6.5

  # Winter intake sorted by deadline, second page as JSON
  coursefinder search --season winter --sort deadline -p 2 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, &flags)
		},
	}

	flags.register(cmd, true)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, flags *queryFlags) error {
	cc := commandContext(cmd)
	settings, err := cc.LoadSettings()
	if err != nil {
		return err
	}
	cat, err := cc.LoadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	fs, err := flags.buildState(cmd, settings, args, cc.Logger)
	if err != nil {
		return err
	}

	result, err := cat.Query(fs)
	if err != nil {
		return err
	}

	output := SearchResultOutput{
		Query:      strings.Join(args, " "),
		Season:     string(fs.Season),
		Total:      result.Total,
		Page:       result.Page.Number,
		TotalPages: result.Page.TotalPages,
		Results:    searchItems(result.Bands),
	}

	format := outputFormat(cmd)
	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, output)
	default:
		return outputSearchText(cmd, output, result)
	}
}

func searchItems(bands []catalog.Classified) []SearchItemOutput {
	items := make([]SearchItemOutput, 0, len(bands))
	for _, b := range bands {
		c := b.Course
		items = append(items, SearchItemOutput{
			ID:             c.ID,
			Name:           c.CourseName,
			University:     c.University,
			Location:       cli.FormatLocation(c),
			Degree:         strings.TrimSpace(c.DegreeLevel + " " + c.DegreeType),
			Tuition:        cli.FormatTuition(c),
			Deadline:       cli.FormatDeadline(b.Deadline),
			DeadlineStatus: string(b.Deadline.Status),
			BandPriority:   b.Band.Priority,
			URL:            c.DetailPageURL,
		})
	}
	return items
}

func outputSearchText(cmd *cobra.Command, output SearchResultOutput, result catalog.Result) error {
	if output.Total == 0 {
		cli.PrintInfo("No courses match: %s", output.Query)
		return nil
	}
	if len(output.Results) == 0 {
		cli.PrintInfo("Page %d is past the last page (%d)", output.Page, output.TotalPages)
		return nil
	}

	out := cmd.OutOrStdout()
	table := cli.NewTableFormatter(out)
	table.Header("", "ID", "Course", "University", "Location", "Tuition", "Deadline ("+output.Season+")")
	for i, item := range output.Results {
		table.Row(
			cli.BandMarker(result.Bands[i].Band),
			item.ID,
			cli.TruncateString(item.Name, 40),
			cli.TruncateString(item.University, 30),
			cli.TruncateString(item.Location, 20),
			item.Tuition,
			cli.TruncateString(item.Deadline, 30),
		)
	}
	table.Flush()

	fmt.Fprintf(out, "\n%s · page %d of %d\n", result.Page.Summary(), output.Page, output.TotalPages)
	return nil
}
