package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/internal/logging"
	"github.com/pluqqy/coursefinder/pkg/state"
	"github.com/pluqqy/coursefinder/pkg/tui"
)

// NewRootCommand creates the coursefinder command tree. Without a
// subcommand it starts the interactive browser.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coursefinder",
		Short: "Browse and filter university course listings in the terminal",
		Long: `Coursefinder loads a course catalog (a JSON array of courses, from a file
or an http(s) URL) and lets you narrow it with a fuzzy search and many
simultaneous filters, sorted and paginated.

Run without a subcommand to open the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			noColor, _ := cmd.Flags().GetBool("no-color")
			cli.SetGlobalFlags(quiet, noColor)
			cli.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

			return cli.ValidateOutputFormat(outputFormat(cmd))
		},
		RunE: runBrowser,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Settings file (default .coursefinder.yaml)")
	flags.StringP("data", "d", "", "Course catalog file or URL (overrides data.path)")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.BoolP("quiet", "q", false, "Suppress informational messages")
	flags.Bool("no-color", false, "Disable colored output")
	flags.String("today", "", "Fixed date for deadline checks (YYYY-MM-DD)")

	cmd.AddCommand(
		NewSearchCommand(),
		NewExportCommand(),
		NewShowCommand(),
		NewDeadlineCommand(),
		NewFacetsCommand(),
		NewCopyCommand(),
		NewSampleCommand(),
		newVersionCommand(version),
	)

	return cmd
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cc := commandContext(cmd)
	settings, err := cc.LoadSettings()
	if err != nil {
		return err
	}

	// the screen belongs to the TUI; log to the configured file or nowhere
	logger, err := logging.NewForTUI(settings.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()
	cc.Logger = logger

	cat, err := cc.LoadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store := state.NewStore(settings.InitialFilterState(), logger)
	app := tui.NewApp(cat, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of coursefinder",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "coursefinder version %s\n", version)
		},
	}
}

// commandContext builds the shared command context from the global flags
func commandContext(cmd *cobra.Command) *cli.CommandContext {
	config, _ := cmd.Flags().GetString("config")
	data, _ := cmd.Flags().GetString("data")
	today, _ := cmd.Flags().GetString("today")
	return cli.NewCommandContext(config, data, today)
}

func outputFormat(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(cli.FormatText)
	}
	return format
}
