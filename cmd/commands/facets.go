package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/catalog"
)

// NewFacetsCommand creates the facets command
func NewFacetsCommand() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "facets [query...]",
		Short: "List the filter values present in the catalog with counts",
		Long: `List every distinct value of the filterable fields and how many courses
carry it. With a query, only matching courses are counted.

` + queryHelp + `

Examples:
  # Values across the whole catalog
  coursefinder facets

  # Cities offering free Master's courses
  coursefinder facets degree:Master tuition:free -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacets(cmd, args, &flags)
		},
	}

	flags.register(cmd, false)

	return cmd
}

func runFacets(cmd *cobra.Command, args []string, flags *queryFlags) error {
	cc := commandContext(cmd)
	settings, err := cc.LoadSettings()
	if err != nil {
		return err
	}
	cat, err := cc.LoadCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	facets := cat.Facets()
	if len(args) > 0 || cmd.Flags().Changed("season") {
		fs, err := flags.buildState(cmd, settings, args, cc.Logger)
		if err != nil {
			return err
		}
		facets = cat.FacetsOf(cat.Match(fs))
	}

	format := outputFormat(cmd)
	switch format {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), format, facets)
	default:
		return outputFacetsText(cmd, facets)
	}
}

func outputFacetsText(cmd *cobra.Command, facets catalog.Facets) error {
	out := cmd.OutOrStdout()
	for _, named := range facets.Named() {
		if len(named.Values) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s (%d)\n", named.Name, len(named.Values))
		table := cli.NewTableFormatter(out)
		for _, v := range named.Values {
			table.Row("  "+v.Value, strconv.Itoa(v.Count))
		}
		table.Flush()
	}
	return nil
}
