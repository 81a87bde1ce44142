package catalog

import (
	"sort"
	"strings"

	"github.com/pluqqy/coursefinder/pkg/filters"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// FacetValue is one distinct facet value and the number of courses with it
type FacetValue struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Facets lists the distinct values of every selectable facet
type Facets struct {
	Subjects       []FacetValue `json:"subjects" yaml:"subjects"`
	DegreeLevels   []FacetValue `json:"degreeLevels" yaml:"degree_levels"`
	DegreeTypes    []FacetValue `json:"degreeTypes" yaml:"degree_types"`
	StudyTypes     []FacetValue `json:"studyTypes" yaml:"study_types"`
	StudyModes     []FacetValue `json:"studyModes" yaml:"study_modes"`
	AdmissionModes []FacetValue `json:"admissionModes" yaml:"admission_modes"`
	Cities         []FacetValue `json:"cities" yaml:"cities"`
	Universities   []FacetValue `json:"universities" yaml:"universities"`
	IntakeMonths   []FacetValue `json:"intakeMonths" yaml:"intake_months"`
	TuitionModels  []FacetValue `json:"tuitionModels" yaml:"tuition_models"`
}

// NamedFacet is one facet with its display name
type NamedFacet struct {
	Name   string
	Values []FacetValue
}

// Named returns the facets in display order with their names
func (f Facets) Named() []NamedFacet {
	return []NamedFacet{
		{"subjects", f.Subjects},
		{"degree levels", f.DegreeLevels},
		{"degree types", f.DegreeTypes},
		{"study types", f.StudyTypes},
		{"study modes", f.StudyModes},
		{"admission modes", f.AdmissionModes},
		{"cities", f.Cities},
		{"universities", f.Universities},
		{"intake months", f.IntakeMonths},
		{"tuition", f.TuitionModels},
	}
}

// Facets counts the facet values of all courses. Each course counts once
// per value; cities are split from comma-packed strings. Values are sorted
// with the catalog's collation, months in calendar order.
func (c *Catalog) Facets() Facets {
	return c.FacetsOf(c.courses)
}

// FacetsOf counts the facet values of courses
func (c *Catalog) FacetsOf(courses []models.Course) Facets {
	var (
		subjects   = newCounter()
		levels     = newCounter()
		types      = newCounter()
		studyTypes = newCounter()
		modes      = newCounter()
		admission  = newCounter()
		cities     = newCounter()
		unis       = newCounter()
		months     = newCounter()
		tuition    = newCounter()
	)

	for _, course := range courses {
		subjects.addAll(course.BroadCategories)
		levels.add(course.DegreeLevel)
		types.add(course.DegreeType)
		studyTypes.add(course.StudyType)
		modes.addAll(course.StudyModes)
		admission.add(string(course.AdmissionMode))
		cities.addAll(course.Locations())
		unis.add(course.University)
		months.addAll(course.IntakeMonths)
		tuition.add(string(course.TuitionModel))
	}

	return Facets{
		Subjects:       subjects.sorted(c.locale),
		DegreeLevels:   levels.sorted(c.locale),
		DegreeTypes:    types.sorted(c.locale),
		StudyTypes:     studyTypes.sorted(c.locale),
		StudyModes:     modes.sorted(c.locale),
		AdmissionModes: admission.sorted(c.locale),
		Cities:         cities.sorted(c.locale),
		Universities:   unis.sorted(c.locale),
		IntakeMonths:   months.byCalendar(),
		TuitionModels:  tuition.sorted(c.locale),
	}
}

// counter counts values case-insensitively, keeping the first spelling seen
type counter struct {
	counts   map[string]int
	spelling map[string]string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), spelling: make(map[string]string)}
}

func (c *counter) add(v string) {
	c.addAll([]string{v})
}

// addAll counts each distinct value of one course once
func (c *counter) addAll(values []string) {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := c.spelling[key]; !ok {
			c.spelling[key] = v
		}
		c.counts[key]++
	}
}

func (c *counter) values() []FacetValue {
	out := make([]FacetValue, 0, len(c.counts))
	for key, n := range c.counts {
		out = append(out, FacetValue{Value: c.spelling[key], Count: n})
	}
	return out
}

func (c *counter) sorted(locale string) []FacetValue {
	out := c.values()
	col := filters.NewCollator(locale)
	sort.Slice(out, func(i, j int) bool {
		if r := col.CompareString(out[i].Value, out[j].Value); r != 0 {
			return r < 0
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func (c *counter) byCalendar() []FacetValue {
	rank := make(map[string]int, len(models.Months))
	for i, m := range models.Months {
		rank[strings.ToLower(m)] = i
	}
	out := c.values()
	sort.Slice(out, func(i, j int) bool {
		ri, iok := rank[strings.ToLower(out[i].Value)]
		rj, jok := rank[strings.ToLower(out[j].Value)]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return out[i].Value < out[j].Value
		}
	})
	return out
}
