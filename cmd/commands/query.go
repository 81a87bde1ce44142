package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/search"
	"github.com/pluqqy/coursefinder/pkg/state"
)

const queryHelp = `Query Syntax:
  free text            - Fuzzy search in name, subject and concentrations
  subject:Law          - Broad subject category (comma separated for OR)
  degree:Master        - Degree level
  type:Science         - Degree type
  study:Undergraduate  - Study type
  mode:full-time       - Study mode
  admission:open       - open, nc or aptitude
  city:Berlin          - City (comma separated for OR)
  uni:"TU Dresden"     - University
  month:October        - Intake month
  tuition:free         - free, paid or all
  ielts:6.5            - Your IELTS score (also ibt, pbt, cbt, toeic);
                         "none" keeps only courses without a requirement
  grade:2.3            - Minimum grade threshold ("none" as above)
  season:winter        - Intake season
  sort:-tuition        - Sort key, "-" for descending`

// queryFlags are the browse flags shared by commands that run a query
type queryFlags struct {
	season   string
	sortBy   string
	order    string
	page     int
	pageSize int
}

func (f *queryFlags) register(cmd *cobra.Command, paged bool) {
	cmd.Flags().StringVar(&f.season, "season", "", "Intake season: winter or summer")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort key: "+strings.Join(models.SortKeyNames(), ", "))
	cmd.Flags().StringVar(&f.order, "order", "asc", "Sort order: asc or desc")
	if paged {
		cmd.Flags().IntVarP(&f.page, "page", "p", 1, "Page number")
		cmd.Flags().IntVarP(&f.pageSize, "page-size", "n", 0, "Results per page (default display.page_size)")
	}
}

// buildState turns query arguments and flags into a filter state, starting
// from the display settings
func (f *queryFlags) buildState(cmd *cobra.Command, settings *models.Settings, args []string, logger *zap.Logger) (models.FilterState, error) {
	store := state.NewStore(settings.InitialFilterState(), logger)

	patch, err := state.ActionsFromQuery(search.ParseQuery(strings.Join(args, " ")))
	if err != nil {
		return models.FilterState{}, err
	}
	store.Patch(patch.Actions...)

	if cmd.Flags().Changed("season") {
		season, err := cli.ValidateSeason(f.season)
		if err != nil {
			return models.FilterState{}, err
		}
		store.SetSeason(season)
	}
	if cmd.Flags().Changed("sort") || cmd.Flags().Changed("order") {
		by := f.sortBy
		if by == "" {
			by = string(store.State().SortBy)
		}
		key, order, err := cli.ValidateSort(by, f.order)
		if err != nil {
			return models.FilterState{}, err
		}
		store.SetSort(key, order)
	}
	if cmd.Flags().Changed("page-size") {
		if err := cli.ValidatePageSize(f.pageSize); err != nil {
			return models.FilterState{}, err
		}
		store.SetPageSize(f.pageSize)
	}
	if cmd.Flags().Changed("page") {
		if f.page < 1 {
			return models.FilterState{}, fmt.Errorf("invalid page: %d (must be at least 1)", f.page)
		}
		store.SetPage(f.page)
	}

	return store.State(), nil
}
