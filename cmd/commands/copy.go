package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "copy <course-id>",
		Short: "Copy a course's detail page URL to the clipboard",
		Long: `Copy a course's detail page URL to the system clipboard, or the full
course summary with --details.

Examples:
  # Copy the detail page URL
  coursefinder copy tum-informatics-msc

  # Copy the summary shown by 'show'
  coursefinder copy tum-informatics-msc --details`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip", "clipboard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], details)
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "Copy the full course summary instead of the URL")

	return cmd
}

func runCopy(cmd *cobra.Command, id string, details bool) error {
	cc := commandContext(cmd)
	cat, err := cc.LoadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	course, ok := cat.Find(id)
	if !ok {
		return fmt.Errorf("course '%s' not found", id)
	}

	content := course.DetailPageURL
	what := "URL"
	if details {
		content = formatCourseText(showOutput(course, cat.Deadlines()))
		what = "Details"
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("course '%s' has no detail page URL", id)
	}

	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("%s of '%s' copied to clipboard", what, course.CourseName)

	preview := strings.SplitN(content, "\n", 2)[0]
	cli.PrintInfo("Preview: %s", cli.TruncateString(preview, 80))

	return nil
}
