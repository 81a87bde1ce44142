// Package state holds the filter state transitions shared by the CLI and TUI
package state

import (
	"github.com/pluqqy/coursefinder/pkg/models"
)

// Action is one filter state transition. The set of actions is closed.
type Action interface {
	isAction()
}

type (
	SetSearch         struct{ Query string }
	SetSubjects       struct{ Values []string }
	SetDegreeLevels   struct{ Values []string }
	SetDegreeTypes    struct{ Values []string }
	SetStudyTypes     struct{ Values []string }
	SetStudyModes     struct{ Values []string }
	SetAdmissionModes struct{ Values []string }
	SetCities         struct{ Values []string }
	SetUniversities   struct{ Values []string }
	SetIntakeMonths   struct{ Values []string }
	SetTuition        struct{ Value models.TuitionFilter }

	// SetTestScore sets or clears (nil) the threshold for one language test
	SetTestScore struct {
		Test  models.LanguageTest
		Value *float64
	}

	// SetTestNotSpecified toggles inclusion of courses without a stated score
	SetTestNotSpecified struct {
		Test models.LanguageTest
		On   bool
	}

	SetGrade             struct{ Value *float64 }
	SetGradeNotSpecified struct{ On bool }

	SetDuration struct{ Min, Max int }
	SetSeason   struct{ Season models.Season }

	SetSort struct {
		By    models.SortKey
		Order models.SortOrder
	}

	SetPage     struct{ Page int }
	SetPageSize struct{ Size int }

	// Reset returns to the baseline state: models.DefaultFilterState under
	// Reduce, the initial state when dispatched to a Store. The baseline's
	// page is kept.
	Reset struct{}

	// Patch applies several actions as one transition
	Patch struct{ Actions []Action }
)

func (SetSearch) isAction()            {}
func (SetSubjects) isAction()          {}
func (SetDegreeLevels) isAction()      {}
func (SetDegreeTypes) isAction()       {}
func (SetStudyTypes) isAction()        {}
func (SetStudyModes) isAction()        {}
func (SetAdmissionModes) isAction()    {}
func (SetCities) isAction()            {}
func (SetUniversities) isAction()      {}
func (SetIntakeMonths) isAction()      {}
func (SetTuition) isAction()           {}
func (SetTestScore) isAction()         {}
func (SetTestNotSpecified) isAction()  {}
func (SetGrade) isAction()             {}
func (SetGradeNotSpecified) isAction() {}
func (SetDuration) isAction()          {}
func (SetSeason) isAction()            {}
func (SetSort) isAction()              {}
func (SetPage) isAction()              {}
func (SetPageSize) isAction()          {}
func (Reset) isAction()                {}
func (Patch) isAction()                {}
