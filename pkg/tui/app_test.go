package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/coursefinder/pkg/catalog"
	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/state"
)

func testApp(t *testing.T, pageSize int) *App {
	t.Helper()
	courses := []models.Course{
		{
			ID: "ds", CourseName: "Data Science", University: "Universität Bonn",
			City: "Bonn", DurationSemesters: 4, IntakeSeason: models.IntakeAll,
			AdmissionMode: models.AdmissionOpen, TuitionModel: models.TuitionFree,
			DeadlineSummer: "15.04.2025", DetailPageURL: "https://www.uni-bonn.de/ds",
		},
		{
			ID: "law", CourseName: "Law", University: "Universität Hamburg",
			City: "Hamburg", DurationSemesters: 9, IntakeSeason: models.IntakeAll,
			AdmissionMode: models.AdmissionNCRestricted, TuitionModel: models.TuitionFree,
			DetailPageURL: "https://www.uni-hamburg.de/law",
		},
		{
			ID: "hist", CourseName: "History", University: "Humboldt-Universität zu Berlin",
			City: "Berlin", DurationSemesters: 6, IntakeSeason: models.IntakeAll,
			AdmissionMode: models.AdmissionOpen, TuitionModel: models.TuitionFree,
		},
	}
	clock := deadline.FixedClock{T: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)}
	cat := catalog.New(courses, catalog.Options{Deadlines: deadline.NewParser(nil, clock)})

	initial := models.DefaultFilterState()
	initial.PageSize = pageSize
	return NewApp(cat, state.NewStore(initial, nil))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func TestNewAppRunsInitialQuery(t *testing.T) {
	a := testApp(t, 20)

	if a.result.Total != 3 {
		t.Fatalf("expected 3 courses, got %d", a.result.Total)
	}
	if a.View() != "Loading..." {
		t.Errorf("expected loading view before the first window size")
	}

	press(a, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := a.View()
	for _, want := range []string{"COURSES (3)", "Data Science", "Law", "History", "1–3 of 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSearchBarDrivesFilters(t *testing.T) {
	a := testApp(t, 20)

	press(a, runes("/"))
	if !a.search.Active() {
		t.Fatal("expected search bar to be active after /")
	}

	press(a, runes("city:Berlin"))
	if a.result.Total != 1 || a.result.Bands[0].Course.ID != "hist" {
		t.Fatalf("expected only hist, got %d results", a.result.Total)
	}

	// replacing the query drops the city filter
	press(a, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("law"))
	fs := a.store.State()
	if fs.Cities != nil {
		t.Errorf("expected city filter cleared, got %v", fs.Cities)
	}
	if fs.SearchQuery != "law" {
		t.Errorf("expected search query 'law', got %q", fs.SearchQuery)
	}
	if a.result.Total != 1 || a.result.Bands[0].Course.ID != "law" {
		t.Fatalf("expected only law, got %d results", a.result.Total)
	}

	// keys typed while searching go to the input
	press(a, runes("q"))
	if a.search.Value() != "lawq" {
		t.Errorf("expected q to be typed, got %q", a.search.Value())
	}

	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.search.Active() {
		t.Error("expected enter to leave the search bar")
	}
}

func TestSearchBarReportsInvalidValues(t *testing.T) {
	a := testApp(t, 20)

	press(a, runes("/"), runes("ielts:lots"))
	if !strings.Contains(a.statusMsg, "invalid query value") {
		t.Errorf("expected invalid value status, got %q", a.statusMsg)
	}
	if a.result.Total != 3 {
		t.Errorf("expected the invalid filter to be skipped, got %d results", a.result.Total)
	}
}

func TestListKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []tea.Msg
		check func(t *testing.T, fs models.FilterState)
	}{
		{
			name: "tab toggles season",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.Season != models.SeasonWinter {
					t.Errorf("expected winter, got %s", fs.Season)
				}
			},
		},
		{
			name: "s cycles sort key",
			keys: []tea.Msg{runes("s"), runes("s")},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.SortBy != models.SortUniversity {
					t.Errorf("expected university, got %s", fs.SortBy)
				}
			},
		},
		{
			name: "o toggles order",
			keys: []tea.Msg{runes("o")},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.SortOrder != models.SortDesc {
					t.Errorf("expected desc, got %s", fs.SortOrder)
				}
			},
		},
		{
			name: "right and left move pages",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft}},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.Page != 2 {
					t.Errorf("expected page 2, got %d", fs.Page)
				}
			},
		},
		{
			name: "right stops at the last page",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.Page != 3 {
					t.Errorf("expected page 3, got %d", fs.Page)
				}
			},
		},
		{
			name: "plus grows page size and returns to page 1",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, runes("+")},
			check: func(t *testing.T, fs models.FilterState) {
				if fs.PageSize != 10 || fs.Page != 1 {
					t.Errorf("expected size 10 on page 1, got size %d page %d", fs.PageSize, fs.Page)
				}
			},
		},
		{
			name: "r resets",
			keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, runes("o"), tea.KeyMsg{Type: tea.KeyRight}, runes("r")},
			check: func(t *testing.T, fs models.FilterState) {
				want := models.DefaultFilterState()
				want.PageSize = 1
				if fs.Season != want.Season || fs.SortOrder != want.SortOrder || fs.Page != 1 || fs.PageSize != 1 {
					t.Errorf("expected initial state, got %+v", fs)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp(t, 1)
			press(a, tt.keys...)
			tt.check(t, a.store.State())
		})
	}
}

func TestQuitKey(t *testing.T) {
	a := testApp(t, 20)
	cmd := press(a, runes("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected q to quit")
	}
}

func TestDetailView(t *testing.T) {
	a := testApp(t, 20)
	press(a, tea.WindowSizeMsg{Width: 120, Height: 40}, tea.KeyMsg{Type: tea.KeyEnter})

	if a.state != detailView {
		t.Fatal("expected detail view after enter")
	}
	view := a.View()
	for _, want := range []string{"Universität Bonn", "Summer deadline", "15.04.2025", "esc back"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.state != listView {
		t.Error("expected esc to return to the list")
	}
}

func TestCopyURL(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = orig }()

	a := testApp(t, 20)

	cmd := press(a, runes("c"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	press(a, cmd())
	if copied != "https://www.uni-bonn.de/ds" {
		t.Errorf("unexpected clipboard content %q", copied)
	}
	if !strings.Contains(a.statusMsg, "clipboard") {
		t.Errorf("unexpected status %q", a.statusMsg)
	}

	copied = ""
	cmd = press(a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runes("c"))
	press(a, cmd())
	if copied != "" {
		t.Errorf("expected nothing copied for a course without URL, got %q", copied)
	}
	if !strings.Contains(a.statusMsg, "no detail page URL") {
		t.Errorf("unexpected status %q", a.statusMsg)
	}
}

func TestStepPageSize(t *testing.T) {
	tests := []struct {
		current, dir, want int
	}{
		{20, 1, 50},
		{20, -1, 10},
		{10, -1, 10},
		{100, 1, 100},
		{15, 1, 20},
		{15, -1, 10},
	}
	for _, tt := range tests {
		if got := stepPageSize(tt.current, tt.dir); got != tt.want {
			t.Errorf("stepPageSize(%d, %d) = %d, want %d", tt.current, tt.dir, got, tt.want)
		}
	}
}

func TestBandStripe(t *testing.T) {
	solid := bandStripe(deadline.Classify(deadline.StatusNotPassed, models.AdmissionOpen))
	split := bandStripe(deadline.Classify(deadline.StatusNoDeadline, models.AdmissionOpen))

	for name, s := range map[string]string{"solid": solid, "split": split} {
		if w := len([]rune(stripANSI(s))); w != 2 {
			t.Errorf("%s stripe should be two cells wide, got %d", name, w)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
