package state

import (
	"github.com/pluqqy/coursefinder/pkg/models"
)

// Reduce returns the state that results from applying a to s. s is not
// modified. Every action that changes which courses match sends the user
// back to page 1; sorting and paging do not. Reset yields
// models.DefaultFilterState.
func Reduce(s models.FilterState, a Action) models.FilterState {
	return reduce(s, a, models.DefaultFilterState())
}

// reduce is Reduce with Reset returning base
func reduce(s models.FilterState, a Action, base models.FilterState) models.FilterState {
	next := apply(s.Clone(), a, base)
	if resetsPage(a) {
		next.Page = 1
	}
	return next
}

// resetsPage reports whether a changes the matching set of courses
func resetsPage(a Action) bool {
	switch a := a.(type) {
	case SetSort, SetPage, Reset:
		return false
	case Patch:
		touches := false
		for _, inner := range a.Actions {
			if _, ok := inner.(SetPage); ok {
				return false
			}
			if resetsPage(inner) {
				touches = true
			}
		}
		return touches
	case nil:
		return false
	default:
		return true
	}
}

// apply performs a without the page rule
func apply(s models.FilterState, a Action, base models.FilterState) models.FilterState {
	switch a := a.(type) {
	case SetSearch:
		s.SearchQuery = a.Query
	case SetSubjects:
		s.Subjects = copyValues(a.Values)
	case SetDegreeLevels:
		s.DegreeLevels = copyValues(a.Values)
	case SetDegreeTypes:
		s.DegreeTypes = copyValues(a.Values)
	case SetStudyTypes:
		s.StudyTypes = copyValues(a.Values)
	case SetStudyModes:
		s.StudyModes = copyValues(a.Values)
	case SetAdmissionModes:
		s.AdmissionModes = copyValues(a.Values)
	case SetCities:
		s.Cities = copyValues(a.Values)
	case SetUniversities:
		s.Universities = copyValues(a.Values)
	case SetIntakeMonths:
		s.IntakeMonths = copyValues(a.Values)
	case SetTuition:
		if a.Value == "" {
			a.Value = models.TuitionFilterAll
		}
		s.Tuition = a.Value
	case SetTestScore:
		tf := s.TestFilter(a.Test)
		tf.Value = copyFloat(a.Value)
		s = s.WithTestFilter(a.Test, tf)
	case SetTestNotSpecified:
		tf := s.TestFilter(a.Test)
		tf.NotSpecified = a.On
		s = s.WithTestFilter(a.Test, tf)
	case SetGrade:
		s.Grade.Value = copyFloat(a.Value)
	case SetGradeNotSpecified:
		s.Grade.NotSpecified = a.On
	case SetDuration:
		lo, hi := a.Min, a.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		s.Duration = [2]int{lo, hi}
	case SetSeason:
		s.Season = a.Season
	case SetSort:
		if a.By != "" {
			s.SortBy = a.By
		}
		if a.Order != "" {
			s.SortOrder = a.Order
		}
	case SetPage:
		s.Page = a.Page
		if s.Page < 1 {
			s.Page = 1
		}
	case SetPageSize:
		if a.Size > 0 {
			s.PageSize = a.Size
		}
	case Reset:
		s = base.Clone()
	case Patch:
		for _, inner := range a.Actions {
			s = apply(s, inner, base)
		}
	}
	return s
}

func copyValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
