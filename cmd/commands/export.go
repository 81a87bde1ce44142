package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/files"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var (
		flags  queryFlags
		toFile string
	)

	cmd := &cobra.Command{
		Use:   "export [query...]",
		Short: "Export every matching course to stdout or a file",
		Long: `Export all courses matching a query, sorted but not paginated.

JSON output is a plain course array, so an exported file can be loaded
again with --data. Text output falls back to JSON.

` + queryHelp + `

Examples:
  # Export free courses in Munich to stdout
  coursefinder export city:Munich tuition:free

  # Save a shortlist for later browsing
  coursefinder export subject:Law ielts:7 --file law.json
  coursefinder --data law.json

  # Export as YAML
  coursefinder export degree:MBA -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, &flags, toFile)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().StringVarP(&toFile, "file", "f", "", "Export to file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, flags *queryFlags, toFile string) error {
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
	courses := cat.Match(fs)

	format := outputFormat(cmd)
	if format == string(cli.FormatText) {
		format = string(cli.FormatJSON)
	}

	if toFile == "" {
		return cli.OutputResults(cmd.OutOrStdout(), format, courses)
	}

	if format == string(cli.FormatJSON) {
		if err := files.WriteCatalog(toFile, courses); err != nil {
			return err
		}
	} else {
		file, err := os.Create(toFile)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		defer file.Close()

		if err := cli.OutputResults(file, format, courses); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	cli.PrintSuccess("Exported %d courses to: %s (%s format)", len(courses), toFile, format)
	return nil
}
