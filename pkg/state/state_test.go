package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/search"
)

func onPage(page int) models.FilterState {
	s := models.DefaultFilterState()
	s.Page = page
	return s
}

func TestReducePageRule(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		page   int
	}{
		{"search", SetSearch{Query: "physics"}, 1},
		{"subjects", SetSubjects{Values: []string{"Law"}}, 1},
		{"degree levels", SetDegreeLevels{Values: []string{"Master"}}, 1},
		{"degree types", SetDegreeTypes{Values: []string{"Arts"}}, 1},
		{"study types", SetStudyTypes{Values: []string{"Undergraduate"}}, 1},
		{"study modes", SetStudyModes{Values: []string{"full-time"}}, 1},
		{"admission", SetAdmissionModes{Values: []string{"Open"}}, 1},
		{"cities", SetCities{Values: []string{"Berlin"}}, 1},
		{"universities", SetUniversities{Values: []string{"TU Berlin"}}, 1},
		{"months", SetIntakeMonths{Values: []string{"October"}}, 1},
		{"tuition", SetTuition{Value: models.TuitionFilterFree}, 1},
		{"test score", SetTestScore{Test: models.TestIELTS, Value: models.Float(6.5)}, 1},
		{"test not specified", SetTestNotSpecified{Test: models.TestTOEIC, On: true}, 1},
		{"grade", SetGrade{Value: models.Float(2.0)}, 1},
		{"grade not specified", SetGradeNotSpecified{On: true}, 1},
		{"duration", SetDuration{Min: 2, Max: 6}, 1},
		{"season", SetSeason{Season: models.SeasonWinter}, 1},
		{"page size", SetPageSize{Size: 50}, 1},
		{"reset", Reset{}, 1},
		{"sort keeps page", SetSort{By: models.SortName, Order: models.SortDesc}, 4},
		{"page", SetPage{Page: 3}, 3},
		{"patch touching criteria", Patch{Actions: []Action{SetCities{Values: []string{"Bonn"}}, SetSort{By: models.SortCity}}}, 1},
		{"patch of sort only", Patch{Actions: []Action{SetSort{By: models.SortCity}}}, 4},
		{"patch setting page", Patch{Actions: []Action{SetCities{Values: []string{"Bonn"}}, SetPage{Page: 2}}}, 2},
		{"empty patch", Patch{}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(onPage(4), tt.action)
			assert.Equal(t, tt.page, got.Page)
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := models.DefaultFilterState()
	s.Cities = []string{"Berlin"}
	values := []string{"Hamburg"}

	next := Reduce(s, SetCities{Values: values})
	values[0] = "changed"

	assert.Equal(t, []string{"Berlin"}, s.Cities)
	assert.Equal(t, []string{"Hamburg"}, next.Cities)
}

func TestReduceValues(t *testing.T) {
	s := models.DefaultFilterState()

	s = Reduce(s, SetDuration{Min: 8, Max: 2})
	assert.Equal(t, [2]int{2, 8}, s.Duration)

	s = Reduce(s, SetPage{Page: -3})
	assert.Equal(t, 1, s.Page)

	s = Reduce(s, SetPageSize{Size: 0})
	assert.Equal(t, models.DefaultPageSize, s.PageSize)

	s = Reduce(s, SetTuition{})
	assert.Equal(t, models.TuitionFilterAll, s.Tuition)

	s = Reduce(s, SetTestScore{Test: models.TestTOEFLCbt, Value: models.Float(200)})
	s = Reduce(s, SetTestNotSpecified{Test: models.TestTOEFLCbt, On: true})
	require.NotNil(t, s.TOEFLCbt.Value)
	assert.Equal(t, 200.0, *s.TOEFLCbt.Value)
	assert.True(t, s.TOEFLCbt.NotSpecified)

	s = Reduce(s, SetTestScore{Test: models.TestTOEFLCbt})
	assert.Nil(t, s.TOEFLCbt.Value)
	assert.True(t, s.TOEFLCbt.Active())

	s = Reduce(s, SetSort{Order: models.SortDesc})
	assert.Equal(t, models.SortRelevance, s.SortBy)
	assert.Equal(t, models.SortDesc, s.SortOrder)

	s = Reduce(s, SetSubjects{Values: []string{}})
	assert.Nil(t, s.Subjects)

	s = Reduce(s, Reset{})
	assert.Equal(t, models.DefaultFilterState(), s)
}

func TestStoreTransitionsAndLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	initial := models.DefaultFilterState()
	initial.Season = models.SeasonWinter
	store := NewStore(initial, zap.New(core))

	s := store.SetPage(3)
	assert.Equal(t, 3, s.Page)

	s = store.SetCities([]string{"Berlin"})
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, []string{"Berlin"}, store.State().Cities)

	s = store.ToggleSeason()
	assert.Equal(t, models.SeasonSummer, s.Season)

	s = store.Reset()
	assert.Equal(t, initial, s, "reset returns to the initial state")

	entries := logs.FilterMessage("filter state transition").All()
	require.Len(t, entries, 4)
	assert.Equal(t, "SetPage", entries[0].ContextMap()["action"])
	assert.Equal(t, "Reset", entries[3].ContextMap()["action"])
}

func TestResetBaseline(t *testing.T) {
	initial := models.DefaultFilterState()
	initial.Season = models.SeasonWinter
	initial.PageSize = 50
	initial.Page = 2

	moved := Reduce(initial, SetCities{Values: []string{"Berlin"}})

	assert.Equal(t, models.DefaultFilterState(), Reduce(moved, Reset{}))
	assert.Equal(t, models.DefaultFilterState(), Reduce(moved, Patch{Actions: []Action{Reset{}}}))

	store := NewStore(initial, nil)
	store.SetCities([]string{"Berlin"})
	assert.Equal(t, initial, store.Reset())

	store.SetCities([]string{"Berlin"})
	assert.Equal(t, initial, store.Patch(Reset{}), "reset inside a patch uses the store's initial state")

	s := store.Patch(Reset{}, SetCities{Values: []string{"Bonn"}})
	assert.Equal(t, []string{"Bonn"}, s.Cities)
	assert.Equal(t, models.SeasonWinter, s.Season)
	assert.Equal(t, 1, s.Page)
}

func TestStoreStateIsACopy(t *testing.T) {
	store := NewStore(models.DefaultFilterState(), nil)
	store.SetSubjects([]string{"Law"})

	s := store.State()
	s.Subjects[0] = "changed"
	assert.Equal(t, []string{"Law"}, store.State().Subjects)
}

func TestActionsFromQuery(t *testing.T) {
	pq := search.ParseQuery(`machine learning city:berlin,Munich degree:master admission:nc ielts:6.5 toeic:none grade:2,5 season:Winter sort:-tuition month:october subject:"business / economics"`)

	patch, err := ActionsFromQuery(pq)
	require.NoError(t, err)

	s := Reduce(onPage(5), patch)
	assert.Equal(t, "machine learning", s.SearchQuery)
	assert.Equal(t, []string{"berlin", "Munich"}, s.Cities)
	assert.Equal(t, []string{"Master"}, s.DegreeLevels)
	assert.Equal(t, []string{"NC Restricted"}, s.AdmissionModes)
	assert.Equal(t, []string{"October"}, s.IntakeMonths)
	assert.Equal(t, []string{"Business / Economics"}, s.Subjects)
	require.NotNil(t, s.IELTS.Value)
	assert.Equal(t, 6.5, *s.IELTS.Value)
	assert.True(t, s.TOEIC.NotSpecified)
	require.NotNil(t, s.Grade.Value)
	assert.Equal(t, 2.5, *s.Grade.Value)
	assert.Equal(t, models.SeasonWinter, s.Season)
	assert.Equal(t, models.SortTuition, s.SortBy)
	assert.Equal(t, models.SortDesc, s.SortOrder)
	assert.Equal(t, 1, s.Page)
}

func TestActionsFromQueryInvalidValues(t *testing.T) {
	pq := search.ParseQuery("ielts:high tuition:cheap season:autumn sort:popularity city:Bonn")

	patch, err := ActionsFromQuery(pq)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQueryValue)

	s := Reduce(models.DefaultFilterState(), patch)
	assert.Equal(t, []string{"Bonn"}, s.Cities)
	assert.Nil(t, s.IELTS.Value)
	assert.Equal(t, models.TuitionFilterAll, s.Tuition)
	assert.Equal(t, models.SeasonSummer, s.Season)
	assert.Equal(t, models.SortRelevance, s.SortBy)
}

func TestActionsFromQueryClearsSearch(t *testing.T) {
	patch, err := ActionsFromQuery(search.ParseQuery("city:Bonn"))
	require.NoError(t, err)

	s := models.DefaultFilterState()
	s.SearchQuery = "old"
	assert.Equal(t, "", Reduce(s, patch).SearchQuery)
}

func TestClearQueryFilters(t *testing.T) {
	store := NewStore(models.DefaultFilterState(), nil)
	patch, err := ActionsFromQuery(search.ParseQuery("law city:Berlin tuition:free ielts:6.5 grade:none season:winter"))
	require.NoError(t, err)
	store.Dispatch(patch)

	patch, err = ActionsFromQuery(search.ParseQuery("law"))
	require.NoError(t, err)
	got := store.Patch(append(ClearQueryFilters(), patch.Actions...)...)

	assert.Equal(t, "law", got.SearchQuery)
	assert.Nil(t, got.Cities)
	assert.Equal(t, models.TuitionFilterAll, got.Tuition)
	assert.False(t, got.IELTS.Active())
	assert.False(t, got.Grade.Active())
	assert.Equal(t, models.SeasonWinter, got.Season)
}
