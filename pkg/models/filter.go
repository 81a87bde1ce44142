package models

import "fmt"

// Season is the intake season a user browses for. Exactly one is selected.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSummer Season = "summer"
)

// ParseSeason converts user input into a Season
func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonWinter, SeasonSummer:
		return Season(s), nil
	default:
		return "", fmt.Errorf("invalid season: %s (must be: winter or summer)", s)
	}
}

// Other returns the opposite season
func (s Season) Other() Season {
	if s == SeasonWinter {
		return SeasonSummer
	}
	return SeasonWinter
}

// TuitionFilter selects courses by tuition model; TuitionFilterAll disables it
type TuitionFilter string

const (
	TuitionFilterAll  TuitionFilter = "all"
	TuitionFilterFree TuitionFilter = "free"
	TuitionFilterPaid TuitionFilter = "paid"
)

// SortKey names a sort comparator
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortName       SortKey = "name"
	SortUniversity SortKey = "university"
	SortCity       SortKey = "city"
	SortDuration   SortKey = "duration"
	SortTuition    SortKey = "tuition"
	SortGrade      SortKey = "grade"
	SortDeadline   SortKey = "deadline"
)

// SortKeys lists every supported sort key in menu order
var SortKeys = []SortKey{
	SortRelevance, SortName, SortUniversity, SortCity,
	SortDuration, SortTuition, SortGrade, SortDeadline,
}

// SortKeyNames returns the SortKeys as strings, for help and error text
func SortKeyNames() []string {
	names := make([]string, len(SortKeys))
	for i, k := range SortKeys {
		names[i] = string(k)
	}
	return names
}

// ParseSortKey converts user input into a SortKey
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid sort key: %s", s)
}

// SortOrder is the sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts user input into a SortOrder
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortAsc, SortDesc:
		return SortOrder(s), nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be: asc or desc)", s)
	}
}

// LanguageTest identifies an English test with a score requirement
type LanguageTest string

const (
	TestIELTS    LanguageTest = "ielts"
	TestTOEFLIbt LanguageTest = "toefl_ibt"
	TestTOEFLPbt LanguageTest = "toefl_pbt"
	TestTOEFLCbt LanguageTest = "toefl_cbt"
	TestTOEIC    LanguageTest = "toeic"
)

// LanguageTests lists the supported tests in display order
var LanguageTests = []LanguageTest{TestIELTS, TestTOEFLIbt, TestTOEFLPbt, TestTOEFLCbt, TestTOEIC}

// ThresholdFilter is a numeric requirement filter. Value is the user's
// threshold (nil when unset). NotSpecified asks for courses that state no
// requirement at all.
type ThresholdFilter struct {
	Value        *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	NotSpecified bool     `json:"notSpecified,omitempty" yaml:"not_specified,omitempty"`
}

// Active reports whether the filter constrains results
func (t ThresholdFilter) Active() bool {
	return t.Value != nil || t.NotSpecified
}

// FilterState holds every search, filter, sort and page selection
type FilterState struct {
	SearchQuery string `json:"searchQuery" yaml:"search_query"`

	Subjects       []string `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	DegreeLevels   []string `json:"degreeLevels,omitempty" yaml:"degree_levels,omitempty"`
	DegreeTypes    []string `json:"degreeTypes,omitempty" yaml:"degree_types,omitempty"`
	StudyTypes     []string `json:"studyTypes,omitempty" yaml:"study_types,omitempty"`
	StudyModes     []string `json:"studyModes,omitempty" yaml:"study_modes,omitempty"`
	AdmissionModes []string `json:"admissionModes,omitempty" yaml:"admission_modes,omitempty"`
	Cities         []string `json:"cities,omitempty" yaml:"cities,omitempty"`
	Universities   []string `json:"universities,omitempty" yaml:"universities,omitempty"`
	IntakeMonths   []string `json:"intakeMonths,omitempty" yaml:"intake_months,omitempty"`

	Tuition TuitionFilter `json:"tuition" yaml:"tuition"`

	IELTS    ThresholdFilter `json:"ielts" yaml:"ielts"`
	TOEFLIbt ThresholdFilter `json:"toeflIbt" yaml:"toefl_ibt"`
	TOEFLPbt ThresholdFilter `json:"toeflPbt" yaml:"toefl_pbt"`
	TOEFLCbt ThresholdFilter `json:"toeflCbt" yaml:"toefl_cbt"`
	TOEIC    ThresholdFilter `json:"toeic" yaml:"toeic"`
	Grade    ThresholdFilter `json:"grade" yaml:"grade"`

	Duration [2]int `json:"duration" yaml:"duration"`
	Season   Season `json:"season" yaml:"season"`

	SortBy    SortKey   `json:"sortBy" yaml:"sort_by"`
	SortOrder SortOrder `json:"sortOrder" yaml:"sort_order"`
	Page      int       `json:"page" yaml:"page"`
	PageSize  int       `json:"pageSize" yaml:"page_size"`
}

// Default bounds and sizes for a fresh FilterState
const (
	DefaultMinDuration = 1
	DefaultMaxDuration = 20
	DefaultPageSize    = 20
)

// PageSizeOptions are the page sizes offered by the UIs
var PageSizeOptions = []int{10, 20, 50, 100}

// DefaultFilterState returns the documented defaults
func DefaultFilterState() FilterState {
	return FilterState{
		Tuition:   TuitionFilterAll,
		Duration:  [2]int{DefaultMinDuration, DefaultMaxDuration},
		Season:    SeasonSummer,
		SortBy:    SortRelevance,
		SortOrder: SortAsc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// TestFilter returns the threshold filter for a language test
func (f FilterState) TestFilter(test LanguageTest) ThresholdFilter {
	switch test {
	case TestIELTS:
		return f.IELTS
	case TestTOEFLIbt:
		return f.TOEFLIbt
	case TestTOEFLPbt:
		return f.TOEFLPbt
	case TestTOEFLCbt:
		return f.TOEFLCbt
	case TestTOEIC:
		return f.TOEIC
	default:
		return ThresholdFilter{}
	}
}

// WithTestFilter returns a copy of f with the filter for test replaced
func (f FilterState) WithTestFilter(test LanguageTest, tf ThresholdFilter) FilterState {
	switch test {
	case TestIELTS:
		f.IELTS = tf
	case TestTOEFLIbt:
		f.TOEFLIbt = tf
	case TestTOEFLPbt:
		f.TOEFLPbt = tf
	case TestTOEFLCbt:
		f.TOEFLCbt = tf
	case TestTOEIC:
		f.TOEIC = tf
	}
	return f
}

// Clone returns a deep copy so callers can mutate slices freely
func (f FilterState) Clone() FilterState {
	c := f
	c.Subjects = cloneStrings(f.Subjects)
	c.DegreeLevels = cloneStrings(f.DegreeLevels)
	c.DegreeTypes = cloneStrings(f.DegreeTypes)
	c.StudyTypes = cloneStrings(f.StudyTypes)
	c.StudyModes = cloneStrings(f.StudyModes)
	c.AdmissionModes = cloneStrings(f.AdmissionModes)
	c.Cities = cloneStrings(f.Cities)
	c.Universities = cloneStrings(f.Universities)
	c.IntakeMonths = cloneStrings(f.IntakeMonths)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
