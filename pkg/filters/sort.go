package filters

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// DefaultLocale is used for string collation when none is configured
const DefaultLocale = "de"

// SortOptions carries what the comparators need beyond the courses
type SortOptions struct {
	// Season selects which deadline the deadline key reads
	Season models.Season
	// Deadlines reads deadlines for the deadline key; nil uses the system clock
	Deadlines *deadline.Parser
	// Locale is a BCP 47 tag for name, university and city collation
	Locale string
}

// Sort returns a new slice ordered by key. Descending order inverts the
// comparator; equal elements keep their input order in both directions.
// SortRelevance returns a copy in input order.
func Sort(courses []models.Course, key models.SortKey, order models.SortOrder, opts SortOptions) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)

	cmp := comparator(out, key, opts)
	if cmp == nil {
		return out
	}

	perm := make([]int, len(out))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		c := cmp(perm[a], perm[b])
		if order == models.SortDesc {
			return c > 0
		}
		return c < 0
	})

	sorted := make([]models.Course, len(out))
	for i, p := range perm {
		sorted[i] = out[p]
	}
	return sorted
}

// comparator returns a three-way comparison over indexes into courses, or
// nil when key does not reorder
func comparator(courses []models.Course, key models.SortKey, opts SortOptions) func(i, j int) int {
	switch key {
	case models.SortName:
		return collated(courses, opts.Locale, func(c models.Course) string { return c.CourseName })
	case models.SortUniversity:
		return collated(courses, opts.Locale, func(c models.Course) string { return c.University })
	case models.SortCity:
		return collated(courses, opts.Locale, func(c models.Course) string { return c.City })
	case models.SortDuration:
		return numeric(courses, func(c models.Course) float64 { return float64(c.DurationSemesters) })
	case models.SortTuition:
		return numeric(courses, func(c models.Course) float64 { return orInf(c.TuitionAmountApprox) })
	case models.SortGrade:
		return numeric(courses, func(c models.Course) float64 { return orInf(c.MinGrade) })
	case models.SortDeadline:
		parser := opts.Deadlines
		if parser == nil {
			parser = deadline.NewParser(nil, nil)
		}
		season := opts.Season
		if season == "" {
			season = models.SeasonSummer
		}
		return numeric(courses, func(c models.Course) float64 {
			_, band := parser.BandFor(c, season)
			return float64(band.Priority)
		})
	default:
		return nil
	}
}

func numeric(courses []models.Course, key func(models.Course) float64) func(i, j int) int {
	keys := make([]float64, len(courses))
	for i, c := range courses {
		keys[i] = key(c)
	}
	return func(i, j int) int {
		switch {
		case keys[i] < keys[j]:
			return -1
		case keys[i] > keys[j]:
			return 1
		default:
			return 0
		}
	}
}

func collated(courses []models.Course, locale string, key func(models.Course) string) func(i, j int) int {
	col := NewCollator(locale)
	keys := make([]string, len(courses))
	for i, c := range courses {
		keys[i] = key(c)
	}
	return func(i, j int) int {
		return col.CompareString(keys[i], keys[j])
	}
}

// NewCollator returns a collator for locale, falling back to DefaultLocale
// when the tag cannot be parsed
func NewCollator(locale string) *collate.Collator {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.German
	}
	return collate.New(tag)
}

func orInf(v *float64) float64 {
	if v == nil {
		return math.Inf(1)
	}
	return *v
}
