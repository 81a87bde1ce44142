package state

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// Store owns the current filter state. Reset, alone or inside a Patch,
// returns to the state the store was created with.
type Store struct {
	mu      sync.Mutex
	initial models.FilterState
	current models.FilterState
	logger  *zap.Logger
}

// NewStore creates a store starting at initial. A nil logger disables logging.
func NewStore(initial models.FilterState, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		initial: initial.Clone(),
		current: initial.Clone(),
		logger:  logger.Named("state"),
	}
}

// State returns a copy of the current state
func (s *Store) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Dispatch applies a and returns the new state
func (s *Store) Dispatch(a Action) models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevPage := s.current.Page
	s.current = reduce(s.current, a, s.initial)

	s.logger.Debug("filter state transition",
		zap.String("action", actionName(a)),
		zap.Int("page_before", prevPage),
		zap.Int("page", s.current.Page),
		zap.String("query", s.current.SearchQuery),
		zap.String("sort", fmt.Sprintf("%s/%s", s.current.SortBy, s.current.SortOrder)),
	)

	return s.current.Clone()
}

// SetSearch sets the free text query
func (s *Store) SetSearch(query string) models.FilterState {
	return s.Dispatch(SetSearch{Query: query})
}

// SetSubjects sets the selected subject categories
func (s *Store) SetSubjects(values []string) models.FilterState {
	return s.Dispatch(SetSubjects{Values: values})
}

// SetDegreeLevels sets the selected degree levels
func (s *Store) SetDegreeLevels(values []string) models.FilterState {
	return s.Dispatch(SetDegreeLevels{Values: values})
}

// SetDegreeTypes sets the selected degree types
func (s *Store) SetDegreeTypes(values []string) models.FilterState {
	return s.Dispatch(SetDegreeTypes{Values: values})
}

// SetStudyTypes sets the selected study types
func (s *Store) SetStudyTypes(values []string) models.FilterState {
	return s.Dispatch(SetStudyTypes{Values: values})
}

// SetStudyModes sets the selected study modes
func (s *Store) SetStudyModes(values []string) models.FilterState {
	return s.Dispatch(SetStudyModes{Values: values})
}

// SetAdmissionModes sets the selected admission modes
func (s *Store) SetAdmissionModes(values []string) models.FilterState {
	return s.Dispatch(SetAdmissionModes{Values: values})
}

// SetCities sets the selected cities
func (s *Store) SetCities(values []string) models.FilterState {
	return s.Dispatch(SetCities{Values: values})
}

// SetUniversities sets the selected universities
func (s *Store) SetUniversities(values []string) models.FilterState {
	return s.Dispatch(SetUniversities{Values: values})
}

// SetIntakeMonths sets the selected intake months
func (s *Store) SetIntakeMonths(values []string) models.FilterState {
	return s.Dispatch(SetIntakeMonths{Values: values})
}

// SetTuition sets the tuition model filter
func (s *Store) SetTuition(value models.TuitionFilter) models.FilterState {
	return s.Dispatch(SetTuition{Value: value})
}

// SetTestScore sets or clears a language test threshold
func (s *Store) SetTestScore(test models.LanguageTest, value *float64) models.FilterState {
	return s.Dispatch(SetTestScore{Test: test, Value: value})
}

// SetTestNotSpecified toggles the "not specified" option of a language test
func (s *Store) SetTestNotSpecified(test models.LanguageTest, on bool) models.FilterState {
	return s.Dispatch(SetTestNotSpecified{Test: test, On: on})
}

// SetGrade sets or clears the grade threshold
func (s *Store) SetGrade(value *float64) models.FilterState {
	return s.Dispatch(SetGrade{Value: value})
}

// SetGradeNotSpecified toggles the "not specified" grade option
func (s *Store) SetGradeNotSpecified(on bool) models.FilterState {
	return s.Dispatch(SetGradeNotSpecified{On: on})
}

// SetDuration sets the semester range
func (s *Store) SetDuration(min, max int) models.FilterState {
	return s.Dispatch(SetDuration{Min: min, Max: max})
}

// SetSeason selects the intake season
func (s *Store) SetSeason(season models.Season) models.FilterState {
	return s.Dispatch(SetSeason{Season: season})
}

// ToggleSeason switches between winter and summer
func (s *Store) ToggleSeason() models.FilterState {
	return s.SetSeason(s.State().Season.Other())
}

// SetSort sets the sort key and order
func (s *Store) SetSort(by models.SortKey, order models.SortOrder) models.FilterState {
	return s.Dispatch(SetSort{By: by, Order: order})
}

// SetPage moves to a page
func (s *Store) SetPage(page int) models.FilterState {
	return s.Dispatch(SetPage{Page: page})
}

// SetPageSize changes the page size
func (s *Store) SetPageSize(size int) models.FilterState {
	return s.Dispatch(SetPageSize{Size: size})
}

// Reset returns to the initial state
func (s *Store) Reset() models.FilterState {
	return s.Dispatch(Reset{})
}

// Patch applies several actions as one transition
func (s *Store) Patch(actions ...Action) models.FilterState {
	return s.Dispatch(Patch{Actions: actions})
}

func actionName(a Action) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", a), "state.")
}
