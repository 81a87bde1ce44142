package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// DeadlineOutput is one interpreted deadline text
type DeadlineOutput struct {
	Input  string        `json:"input" yaml:"input"`
	Today  string        `json:"today" yaml:"today"`
	Status string        `json:"status" yaml:"status"`
	Text   string        `json:"text" yaml:"text"`
	Date   string        `json:"date,omitempty" yaml:"date,omitempty"`
	Band   deadline.Band `json:"band" yaml:"band"`
	Label  string        `json:"label" yaml:"label"`
}

// NewDeadlineCommand creates the deadline command
func NewDeadlineCommand() *cobra.Command {
	var admission string

	cmd := &cobra.Command{
		Use:   "deadline <text...>",
		Short: "Interpret a deadline text the way the browser does",
		Long: `Interpret free-form deadline text and show its status and band.

Dates are read as DD.MM.YYYY; for a range the end date decides. Texts
without a date count as "no deadline".

Examples:
  coursefinder deadline "01.04.2025 - 15.07.2025"
  coursefinder deadline "Bewerbungsfrist Nicht-EU-Ausländer; 15.07.2025" --today 2025-08-01
  coursefinder deadline "Bei Hochschule erfragen" --admission nc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeadline(cmd, strings.Join(args, " "), admission)
		},
	}

	cmd.Flags().StringVar(&admission, "admission", "open", "Admission mode for the band: open, nc or aptitude")

	return cmd
}

func runDeadline(cmd *cobra.Command, text, admission string) error {
	mode, err := parseAdmission(admission)
	if err != nil {
		return err
	}

	parser, err := commandContext(cmd).Deadlines()
	if err != nil {
		return err
	}

	info := parser.Parse(text)
	band := deadline.Classify(info.Status, mode)

	output := DeadlineOutput{
		Input:  text,
		Today:  parser.Today().Format(cli.TodayLayout),
		Status: string(info.Status),
		Text:   info.Text,
		Band:   band,
		Label:  band.Label(),
	}
	if !info.Date.IsZero() {
		output.Date = info.Date.Format(cli.TodayLayout)
	}

	format := outputFormat(cmd)
	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, output)
	default:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Status:   %s\n", output.Status)
		if output.Date != "" {
			fmt.Fprintf(out, "Date:     %s (today %s)\n", output.Date, output.Today)
		}
		fmt.Fprintf(out, "Band:     %d, %s\n", band.Priority, output.Label)
		return nil
	}
}

func parseAdmission(s string) (models.AdmissionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return models.AdmissionOpen, nil
	case "nc", "restricted", "nc restricted":
		return models.AdmissionNCRestricted, nil
	case "aptitude", "aptitude test":
		return models.AdmissionAptitudeTest, nil
	default:
		return "", fmt.Errorf("invalid admission mode: %s (must be: open, nc, or aptitude)", s)
	}
}
