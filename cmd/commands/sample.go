package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/examples"
	"github.com/pluqqy/coursefinder/pkg/files"
)

// NewSampleCommand creates the sample command
func NewSampleCommand() *cobra.Command {
	var (
		listOnly bool
		force    bool
		path     string
	)

	cmd := &cobra.Command{
		Use:   "sample [category]",
		Short: "Write a small sample catalog to try coursefinder",
		Long: `Write a sample course catalog so the browser can be tried without a real
dataset.

Categories:
  engineering  - Engineering and computer science courses
  business     - Business, economics and law courses
  humanities   - Humanities and arts courses
  all          - Every sample course (default)`,
		Example: `  # Write every sample course to courses_processed.json
  coursefinder sample

  # Write business courses to a custom file
  coursefinder sample business --file business.json

  # List the sample courses without writing
  coursefinder sample --list

  # Browse the samples
  coursefinder --data business.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "all"
			if len(args) > 0 {
				category = args[0]
			}
			if err := cli.ValidateCategory(category); err != nil {
				return err
			}

			if listOnly {
				return listSamples(cmd, category)
			}
			return installSamples(cmd, category, path, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List sample courses without writing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing catalog file")
	cmd.Flags().StringVar(&path, "file", files.DefaultCatalogFile, "Catalog file to write")

	return cmd
}

func listSamples(cmd *cobra.Command, category string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	out := cmd.OutOrStdout()

	if !quiet {
		if category == "all" {
			fmt.Fprintf(out, "Sample courses (all categories):\n\n")
		} else {
			fmt.Fprintf(out, "Sample courses in category '%s':\n\n", category)
		}
	}

	for _, set := range examples.GetExamples(category) {
		if !quiet {
			fmt.Fprintf(out, "📦 [%s] %s\n", set.Category, set.Name)
			fmt.Fprintf(out, "   %s\n\n", set.Description)
		}
		for _, c := range set.Courses {
			fmt.Fprintf(out, "   • %s  %s (%s)\n", c.ID, c.CourseName, c.University)
		}
		fmt.Fprintln(out)
	}

	return nil
}

func installSamples(cmd *cobra.Command, category, path string, force bool) error {
	n, err := examples.Install(path, category, force)
	if err != nil {
		return err
	}

	cli.PrintSuccess("Wrote %d sample courses to %s", n, path)
	if path == files.DefaultCatalogFile {
		cli.PrintInfo("Run 'coursefinder' to browse them")
	} else {
		cli.PrintInfo("Run 'coursefinder --data %s' to browse them", path)
	}
	return nil
}
