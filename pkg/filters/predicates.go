package filters

import (
	"strings"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// Predicate reports whether a course passes one facet
type Predicate func(models.Course) bool

// BySubjects passes courses with at least one broad category in subjects.
// Courses without categories fail.
func BySubjects(subjects []string) Predicate {
	want := foldSet(subjects)
	return func(c models.Course) bool {
		for _, cat := range c.BroadCategories {
			if want[fold(cat)] {
				return true
			}
		}
		return false
	}
}

// ByDegreeLevels passes courses whose degree level is selected
func ByDegreeLevels(levels []string) Predicate {
	return memberOf(levels, func(c models.Course) string { return c.DegreeLevel })
}

// ByDegreeTypes passes courses whose degree type is selected
func ByDegreeTypes(types []string) Predicate {
	return memberOf(types, func(c models.Course) string { return c.DegreeType })
}

// ByStudyTypes passes courses whose study type is selected
func ByStudyTypes(types []string) Predicate {
	return memberOf(types, func(c models.Course) string { return c.StudyType })
}

// ByAdmissionModes passes courses whose admission mode is selected
func ByAdmissionModes(modes []string) Predicate {
	return memberOf(modes, func(c models.Course) string { return string(c.AdmissionMode) })
}

// ByUniversities passes courses offered by a selected university
func ByUniversities(universities []string) Predicate {
	return memberOf(universities, func(c models.Course) string { return c.University })
}

// ByStudyModes passes courses offering any selected study mode
func ByStudyModes(modes []string) Predicate {
	want := stringSet(modes)
	return func(c models.Course) bool {
		for _, m := range c.StudyModes {
			if want[m] {
				return true
			}
		}
		return false
	}
}

// ByCities passes courses located in any selected city. Both sides may be
// comma-packed; comparison ignores case.
func ByCities(cities []string) Predicate {
	want := make(map[string]bool)
	for _, city := range cities {
		for _, part := range models.SplitPacked(city) {
			want[fold(part)] = true
		}
	}
	return func(c models.Course) bool {
		for _, loc := range c.Locations() {
			if want[fold(loc)] {
				return true
			}
		}
		return false
	}
}

// ByIntakeMonths passes courses starting in any selected month
func ByIntakeMonths(months []string) Predicate {
	want := foldSet(months)
	return func(c models.Course) bool {
		for _, m := range c.IntakeMonths {
			if want[fold(m)] {
				return true
			}
		}
		return false
	}
}

// ByTuition passes courses with the selected tuition model. The "all"
// sentinel passes everything.
func ByTuition(t models.TuitionFilter) Predicate {
	return func(c models.Course) bool {
		if t == models.TuitionFilterAll || t == "" {
			return true
		}
		return string(c.TuitionModel) == string(t)
	}
}

// ByTestScore treats the user's score as a ceiling: a course passes when it
// requires at most that score. Courses without a stated requirement always
// pass a set threshold. With NotSpecified alone only courses without a
// stated requirement pass.
func ByTestScore(test models.LanguageTest, tf models.ThresholdFilter) Predicate {
	return threshold(tf, func(c models.Course) *float64 { return c.TestScore(test) }, func(course, user float64) bool {
		return course <= user
	})
}

// ByGrade passes courses whose minimum grade is at least the selected grade.
// Unknown grades pass a set threshold. With NotSpecified alone only courses
// without a grade requirement pass.
func ByGrade(tf models.ThresholdFilter) Predicate {
	return threshold(tf, func(c models.Course) *float64 { return c.MinGrade }, func(course, user float64) bool {
		return course >= user
	})
}

// ByDuration passes courses whose semester count lies in [min, max]
func ByDuration(min, max int) Predicate {
	if min > max {
		min, max = max, min
	}
	return func(c models.Course) bool {
		return c.DurationSemesters >= min && c.DurationSemesters <= max
	}
}

// BySeason passes courses with an intake in season. A deadline for the
// season counts as an intake even when the stored season disagrees.
func BySeason(season models.Season) Predicate {
	return func(c models.Course) bool {
		if c.IntakeSeason == models.IntakeAll || string(c.IntakeSeason) == string(season) {
			return true
		}
		return strings.TrimSpace(c.DeadlineFor(season)) != ""
	}
}

func threshold(tf models.ThresholdFilter, value func(models.Course) *float64, pass func(course, user float64) bool) Predicate {
	return func(c models.Course) bool {
		v := value(c)
		if v == nil {
			return true
		}
		if tf.Value == nil {
			// only NotSpecified is set
			return false
		}
		return pass(*v, *tf.Value)
	}
}

func memberOf(values []string, get func(models.Course) string) Predicate {
	want := stringSet(values)
	return func(c models.Course) bool {
		return want[get(c)]
	}
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func foldSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[fold(v)] = true
	}
	return set
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
