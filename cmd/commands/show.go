package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// ShowOutput is a course with its deadline reading for both seasons
type ShowOutput struct {
	Course models.Course  `json:"course" yaml:"course"`
	Winter SeasonDeadline `json:"winter" yaml:"winter"`
	Summer SeasonDeadline `json:"summer" yaml:"summer"`
}

// SeasonDeadline is the deadline reading and band for one season
type SeasonDeadline struct {
	Deadline deadline.Info `json:"deadline" yaml:"deadline"`
	Band     deadline.Band `json:"band" yaml:"band"`
	Label    string        `json:"label" yaml:"label"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Display every detail of one course",
		Long: `Display a course with its requirements and the deadline status for both
intake seasons.

Examples:
  # Show a course
  coursefinder show tum-informatics-msc

  # Check deadlines as of a given day
  coursefinder show tum-informatics-msc --today 2025-06-01

  # Output as JSON
  coursefinder show tum-informatics-msc -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cc := commandContext(cmd)
	cat, err := cc.LoadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	course, ok := cat.Find(args[0])
	if !ok {
		return fmt.Errorf("course '%s' not found", args[0])
	}

	output := showOutput(course, cat.Deadlines())

	format := outputFormat(cmd)
	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, output)
	default:
		fmt.Fprint(cmd.OutOrStdout(), formatCourseText(output))
		return nil
	}
}

func showOutput(course models.Course, parser *deadline.Parser) ShowOutput {
	season := func(s models.Season) SeasonDeadline {
		info, band := parser.BandFor(course, s)
		return SeasonDeadline{Deadline: info, Band: band, Label: band.Label()}
	}
	return ShowOutput{
		Course: course,
		Winter: season(models.SeasonWinter),
		Summer: season(models.SeasonSummer),
	}
}

// formatCourseText renders a course as plain labelled lines
func formatCourseText(o ShowOutput) string {
	c := o.Course
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", c.CourseName)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 80))

	line := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&b, "%-18s %s\n", label+":", value)
	}

	line("ID", c.ID)
	line("University", c.University)
	line("Location", cli.FormatLocation(c))
	line("Degree", strings.TrimSpace(c.DegreeLevel+" "+c.DegreeType))
	line("Study type", c.StudyType)
	line("Duration", cli.FormatDuration(c))
	line("Study modes", strings.Join(c.StudyModes, ", "))
	line("Subject", c.SubjectDisplay)
	line("Categories", strings.Join(c.BroadCategories, ", "))
	line("Concentrations", c.AreasOfConcentration)
	line("Admission", string(c.AdmissionMode))
	if c.MinGrade != nil {
		line("Minimum grade", cli.FormatScore(c.MinGrade))
	}
	line("Intake", strings.Join(c.IntakeMonths, ", "))
	line("Tuition", cli.FormatTuition(c))
	line("Language", c.MainInstructionLanguage)

	var scores []string
	for _, test := range models.LanguageTests {
		if v := c.TestScore(test); v != nil {
			scores = append(scores, fmt.Sprintf("%s %s", testLabel(test), cli.FormatScore(v)))
		}
	}
	line("English tests", strings.Join(scores, ", "))
	line("Requirements", c.LanguageRequirementsText)

	line("Winter deadline", fmt.Sprintf("%s [%s]", cli.FormatDeadline(o.Winter.Deadline), o.Winter.Label))
	line("Summer deadline", fmt.Sprintf("%s [%s]", cli.FormatDeadline(o.Summer.Deadline), o.Summer.Label))
	line("Notes", c.Annotation)
	line("Details", c.DetailPageURL)

	return b.String()
}

func testLabel(test models.LanguageTest) string {
	switch test {
	case models.TestIELTS:
		return "IELTS"
	case models.TestTOEFLIbt:
		return "TOEFL iBT"
	case models.TestTOEFLPbt:
		return "TOEFL PBT"
	case models.TestTOEFLCbt:
		return "TOEFL CBT"
	case models.TestTOEIC:
		return "TOEIC"
	default:
		return string(test)
	}
}
