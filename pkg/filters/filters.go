// Package filters narrows and orders course collections
package filters

import (
	"github.com/pluqqy/coursefinder/pkg/models"
)

// Build returns the predicates that are active for state. Cheap facets come
// first; order does not affect the result.
func Build(state models.FilterState) []Predicate {
	var preds []Predicate

	if state.Tuition != "" && state.Tuition != models.TuitionFilterAll {
		preds = append(preds, ByTuition(state.Tuition))
	}
	if state.Duration != [2]int{} {
		preds = append(preds, ByDuration(state.Duration[0], state.Duration[1]))
	}
	if state.Season != "" {
		preds = append(preds, BySeason(state.Season))
	}
	if len(state.DegreeLevels) > 0 {
		preds = append(preds, ByDegreeLevels(state.DegreeLevels))
	}
	if len(state.DegreeTypes) > 0 {
		preds = append(preds, ByDegreeTypes(state.DegreeTypes))
	}
	if len(state.StudyTypes) > 0 {
		preds = append(preds, ByStudyTypes(state.StudyTypes))
	}
	if len(state.AdmissionModes) > 0 {
		preds = append(preds, ByAdmissionModes(state.AdmissionModes))
	}
	if len(state.Universities) > 0 {
		preds = append(preds, ByUniversities(state.Universities))
	}
	if len(state.StudyModes) > 0 {
		preds = append(preds, ByStudyModes(state.StudyModes))
	}
	if len(state.Subjects) > 0 {
		preds = append(preds, BySubjects(state.Subjects))
	}
	if len(state.IntakeMonths) > 0 {
		preds = append(preds, ByIntakeMonths(state.IntakeMonths))
	}
	if len(state.Cities) > 0 {
		preds = append(preds, ByCities(state.Cities))
	}
	for _, test := range models.LanguageTests {
		if tf := state.TestFilter(test); tf.Active() {
			preds = append(preds, ByTestScore(test, tf))
		}
	}
	if state.Grade.Active() {
		preds = append(preds, ByGrade(state.Grade))
	}

	return preds
}

// Apply returns the courses passing every active facet of state, in their
// original order. The input is not modified.
func Apply(courses []models.Course, state models.FilterState) []models.Course {
	return Match(courses, Build(state)...)
}

// Match returns the courses passing every predicate, in their original order
func Match(courses []models.Course, preds ...Predicate) []models.Course {
	out := make([]models.Course, 0, len(courses))
next:
	for _, c := range courses {
		for _, p := range preds {
			if !p(c) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}
