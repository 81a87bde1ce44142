// Package tui is the interactive course browser
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/coursefinder/pkg/catalog"
	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/search"
	"github.com/pluqqy/coursefinder/pkg/state"
)

type sessionState int

const (
	listView sessionState = iota
	detailView
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

type App struct {
	state     sessionState
	catalog   *catalog.Catalog
	store     *state.Store
	result    catalog.Result
	err       error
	cursor    int
	search    *SearchBar
	detail    *DetailModel
	width     int
	height    int
	statusMsg string
}

// NewApp creates the browser over cat, driven by the filter state in store
func NewApp(cat *catalog.Catalog, store *state.Store) *App {
	a := &App{
		state:   listView,
		catalog: cat,
		store:   store,
		search:  NewSearchBar(),
		detail:  NewDetailModel(),
	}
	a.search.SetValue(store.State().SearchQuery)
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.SetWidth(msg.Width)
		a.detail.SetSize(msg.Width, msg.Height)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.state == detailView {
			return a.updateDetail(msg)
		}
		if a.search.Active() {
			return a.updateSearch(msg)
		}
		return a.updateList(msg)
	}

	if a.search.Active() {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc, tea.KeyTab:
		a.search.SetActive(false)
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.applyQuery(a.search.Value())
	return a, cmd
}

// applyQuery feeds the search bar text through the query language into the
// store. Invalid filter values are reported and skipped.
func (a *App) applyQuery(text string) {
	patch, err := state.ActionsFromQuery(search.ParseQuery(text))
	a.store.Patch(append(state.ClearQueryFilters(), patch.Actions...)...)
	a.statusMsg = ""
	if err != nil {
		a.statusMsg = err.Error()
	}
	a.cursor = 0
	a.refresh()
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fs := a.store.State()

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.Search):
		a.search.SetActive(true)
		return a, nil

	case key.Matches(msg, keys.Season):
		a.store.ToggleSeason()
		a.cursor = 0

	case key.Matches(msg, keys.Sort):
		a.store.SetSort(nextSortKey(fs.SortBy), fs.SortOrder)
		a.cursor = 0

	case key.Matches(msg, keys.Order):
		order := models.SortDesc
		if fs.SortOrder == models.SortDesc {
			order = models.SortAsc
		}
		a.store.SetSort(fs.SortBy, order)
		a.cursor = 0

	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, keys.Down):
		if a.cursor < len(a.result.Bands)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, keys.PrevPage):
		if fs.Page <= 1 {
			return a, nil
		}
		a.store.SetPage(fs.Page - 1)
		a.cursor = 0

	case key.Matches(msg, keys.NextPage):
		if !a.result.Page.CanGoNext {
			return a, nil
		}
		a.store.SetPage(fs.Page + 1)
		a.cursor = 0

	case key.Matches(msg, keys.Larger):
		a.store.SetPageSize(stepPageSize(fs.PageSize, 1))
		a.cursor = 0

	case key.Matches(msg, keys.Smaller):
		a.store.SetPageSize(stepPageSize(fs.PageSize, -1))
		a.cursor = 0

	case key.Matches(msg, keys.Detail):
		item, ok := a.selected()
		if !ok {
			return a, nil
		}
		a.detail.SetSize(a.width, a.height)
		a.detail.SetCourse(item.Course, a.catalog.Deadlines(), fs.Season)
		a.state = detailView
		return a, nil

	case key.Matches(msg, keys.Copy):
		item, ok := a.selected()
		if !ok {
			return a, nil
		}
		return a, copyURL(item.Course)

	case key.Matches(msg, keys.Reset):
		a.store.Reset()
		a.search.SetValue(a.store.State().SearchQuery)
		a.statusMsg = ""
		a.cursor = 0

	default:
		return a, nil
	}

	a.refresh()
	return a, nil
}

func (a *App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.Back):
		a.state = listView
		return a, nil
	case key.Matches(msg, keys.Copy):
		return a, copyURL(a.detail.Course())
	}

	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

// refresh re-runs the catalog query for the current filter state
func (a *App) refresh() {
	result, err := a.catalog.Query(a.store.State())
	a.err = err
	if err != nil {
		return
	}
	a.result = result
	if a.cursor >= len(result.Bands) {
		a.cursor = max(len(result.Bands)-1, 0)
	}
}

func (a *App) selected() (catalog.Classified, bool) {
	if a.cursor < 0 || a.cursor >= len(a.result.Bands) {
		return catalog.Classified{}, false
	}
	return a.result.Bands[a.cursor], true
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case detailView:
		content = lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(a.width, a.detail.Course().ID),
			"",
			a.detail.View(),
			ContentPaddingStyle.Render(helpLine(keys.detailHelp())),
		)
	default:
		content = a.listViewContent()
	}

	if a.statusMsg != "" {
		content = lipgloss.JoinVertical(lipgloss.Top, content, StatusStyle.Render(a.statusMsg))
	}

	return content
}

func (a *App) listViewContent() string {
	fs := a.store.State()

	var body string
	if a.err != nil {
		body = ContentPaddingStyle.Render(ErrorStyle.Render(fmt.Sprintf("Error: %v", a.err)))
	} else {
		// header, search bar, heading, footer and help
		rows := a.height - 12
		body = renderResults(a.result, fs.SearchQuery, a.cursor, a.width, rows)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, stateSummary(fs)),
		a.search.View(),
		"",
		body,
		"",
		ContentPaddingStyle.Render(helpLine(keys.listHelp())),
	)
}

// StatusMsg sets the status line
type StatusMsg string

func copyURL(course models.Course) tea.Cmd {
	return func() tea.Msg {
		url := strings.TrimSpace(course.DetailPageURL)
		if url == "" {
			return StatusMsg(fmt.Sprintf("'%s' has no detail page URL", course.ID))
		}
		if err := writeClipboard(url); err != nil {
			return StatusMsg(fmt.Sprintf("Failed to copy: %v", err))
		}
		return StatusMsg(fmt.Sprintf("✓ %s → clipboard", url))
	}
}

func nextSortKey(current models.SortKey) models.SortKey {
	for i, k := range models.SortKeys {
		if k == current {
			return models.SortKeys[(i+1)%len(models.SortKeys)]
		}
	}
	return models.SortKeys[0]
}

// stepPageSize moves to the next larger (dir > 0) or smaller page size
// option. Sizes outside the option list snap to the nearest option.
func stepPageSize(current, dir int) int {
	opts := models.PageSizeOptions
	if dir > 0 {
		for _, s := range opts {
			if s > current {
				return s
			}
		}
		return opts[len(opts)-1]
	}
	for i := len(opts) - 1; i >= 0; i-- {
		if opts[i] < current {
			return opts[i]
		}
	}
	return opts[0]
}
