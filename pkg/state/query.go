package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/search"
)

// ErrInvalidQueryValue is wrapped by ActionsFromQuery for values it cannot use
var ErrInvalidQueryValue = errors.New("invalid query value")

var testFilters = []struct {
	filter string
	test   models.LanguageTest
}{
	{search.FilterIELTS, models.TestIELTS},
	{search.FilterIBT, models.TestTOEFLIbt},
	{search.FilterPBT, models.TestTOEFLPbt},
	{search.FilterCBT, models.TestTOEFLCbt},
	{search.FilterTOEIC, models.TestTOEIC},
}

var admissionAliases = map[string]string{
	"open":          string(models.AdmissionOpen),
	"nc":            string(models.AdmissionNCRestricted),
	"restricted":    string(models.AdmissionNCRestricted),
	"nc restricted": string(models.AdmissionNCRestricted),
	"aptitude":      string(models.AdmissionAptitudeTest),
	"aptitude test": string(models.AdmissionAptitudeTest),
}

// ActionsFromQuery turns a parsed query into a single Patch. The free text
// always becomes the search query. Invalid values are skipped and reported
// together in the returned error; the patch is usable either way.
func ActionsFromQuery(pq *search.ParsedQuery) (Patch, error) {
	actions := []Action{SetSearch{Query: pq.FreeText}}
	var errs []error

	facets := []struct {
		filter  string
		options []string
		action  func([]string) Action
	}{
		{search.FilterSubject, models.SubjectCategories, func(v []string) Action { return SetSubjects{Values: v} }},
		{search.FilterDegree, models.DegreeLevels, func(v []string) Action { return SetDegreeLevels{Values: v} }},
		{search.FilterType, models.DegreeTypes, func(v []string) Action { return SetDegreeTypes{Values: v} }},
		{search.FilterStudy, models.StudyTypes, func(v []string) Action { return SetStudyTypes{Values: v} }},
		{search.FilterMode, models.StudyModes, func(v []string) Action { return SetStudyModes{Values: v} }},
		{search.FilterCity, nil, func(v []string) Action { return SetCities{Values: v} }},
		{search.FilterUni, nil, func(v []string) Action { return SetUniversities{Values: v} }},
		{search.FilterMonth, models.Months, func(v []string) Action { return SetIntakeMonths{Values: v} }},
	}
	for _, f := range facets {
		if values := pq.GetValues(f.filter); len(values) > 0 {
			actions = append(actions, f.action(canonical(values, f.options)))
		}
	}

	if values := pq.GetValues(search.FilterAdmission); len(values) > 0 {
		modes := make([]string, 0, len(values))
		for _, v := range values {
			if alias, ok := admissionAliases[strings.ToLower(v)]; ok {
				v = alias
			}
			modes = append(modes, v)
		}
		actions = append(actions, SetAdmissionModes{Values: modes})
	}

	if f, ok := pq.GetFilter(search.FilterTuition); ok {
		switch t := models.TuitionFilter(strings.ToLower(f.Value)); t {
		case models.TuitionFilterAll, models.TuitionFilterFree, models.TuitionFilterPaid:
			actions = append(actions, SetTuition{Value: t})
		default:
			errs = append(errs, fmt.Errorf("%w: tuition:%s (must be: all, free or paid)", ErrInvalidQueryValue, f.Value))
		}
	}

	for _, tf := range testFilters {
		filter, test := tf.filter, tf.test
		f, ok := pq.GetFilter(filter)
		if !ok {
			continue
		}
		if isNotSpecified(f.Value) {
			actions = append(actions, SetTestNotSpecified{Test: test, On: true})
			continue
		}
		v, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s:%s", ErrInvalidQueryValue, filter, f.Value))
			continue
		}
		actions = append(actions, SetTestScore{Test: test, Value: models.Float(v)})
	}

	if f, ok := pq.GetFilter(search.FilterGrade); ok {
		if isNotSpecified(f.Value) {
			actions = append(actions, SetGradeNotSpecified{On: true})
		} else if v, err := strconv.ParseFloat(strings.Replace(f.Value, ",", ".", 1), 64); err == nil {
			actions = append(actions, SetGrade{Value: models.Float(v)})
		} else {
			errs = append(errs, fmt.Errorf("%w: grade:%s", ErrInvalidQueryValue, f.Value))
		}
	}

	if f, ok := pq.GetFilter(search.FilterSeason); ok {
		season, err := models.ParseSeason(strings.ToLower(f.Value))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidQueryValue, err))
		} else {
			actions = append(actions, SetSeason{Season: season})
		}
	}

	if f, ok := pq.GetFilter(search.FilterSort); ok {
		if a, err := parseSort(f.Value); err != nil {
			errs = append(errs, err)
		} else {
			actions = append(actions, a)
		}
	}

	return Patch{Actions: actions}, errors.Join(errs...)
}

// ClearQueryFilters returns the actions that clear every filter the query
// language can set. Season and sort are left alone; they have their own
// controls in the browser.
func ClearQueryFilters() []Action {
	actions := []Action{
		SetSearch{},
		SetSubjects{},
		SetDegreeLevels{},
		SetDegreeTypes{},
		SetStudyTypes{},
		SetStudyModes{},
		SetAdmissionModes{},
		SetCities{},
		SetUniversities{},
		SetIntakeMonths{},
		SetTuition{Value: models.TuitionFilterAll},
		SetGrade{},
		SetGradeNotSpecified{},
	}
	for _, tf := range testFilters {
		actions = append(actions, SetTestScore{Test: tf.test}, SetTestNotSpecified{Test: tf.test})
	}
	return actions
}

// parseSort accepts "key" for ascending and "-key" for descending order
func parseSort(value string) (SetSort, error) {
	order := models.SortAsc
	value = strings.ToLower(value)
	if strings.HasPrefix(value, "-") {
		order = models.SortDesc
		value = value[1:]
	}
	key, err := models.ParseSortKey(value)
	if err != nil {
		return SetSort{}, fmt.Errorf("%w: %v", ErrInvalidQueryValue, err)
	}
	return SetSort{By: key, Order: order}, nil
}

func isNotSpecified(v string) bool {
	switch strings.ToLower(v) {
	case "none", "unspecified", "not-specified", "n/a":
		return true
	}
	return false
}

// canonical maps values onto the spelling used in options, ignoring case.
// Unknown values are kept as typed.
func canonical(values, options []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v
		for _, o := range options {
			if strings.EqualFold(v, o) {
				out[i] = o
				break
			}
		}
	}
	return out
}
