package models

import "strings"

// AdmissionMode is the competitiveness regime for entry to a course
type AdmissionMode string

const (
	AdmissionOpen         AdmissionMode = "Open"
	AdmissionNCRestricted AdmissionMode = "NC Restricted"
	AdmissionAptitudeTest AdmissionMode = "Aptitude Test"
)

// IntakeSeason is the season attribute stored on a course
type IntakeSeason string

const (
	IntakeWinter  IntakeSeason = "winter"
	IntakeSummer  IntakeSeason = "summer"
	IntakeAll     IntakeSeason = "all"
	IntakeUnknown IntakeSeason = "unknown"
)

// TuitionModel describes whether a course charges tuition
type TuitionModel string

const (
	TuitionFree    TuitionModel = "free"
	TuitionPaid    TuitionModel = "paid"
	TuitionUnknown TuitionModel = "unknown"
)

// Course is one academic program offering at one institution.
// Courses are loaded once and never mutated.
type Course struct {
	ID            string `json:"id" yaml:"id"`
	CourseName    string `json:"courseName" yaml:"course_name"`
	University    string `json:"university" yaml:"university"`
	DetailPageURL string `json:"detailPageUrl" yaml:"detail_page_url"`

	City            string   `json:"city" yaml:"city"`
	Cities          []string `json:"cities,omitempty" yaml:"cities,omitempty"`
	LocationDisplay string   `json:"locationDisplay,omitempty" yaml:"location_display,omitempty"`

	Degree      string `json:"degree,omitempty" yaml:"degree,omitempty"`
	DegreeLevel string `json:"degreeLevel" yaml:"degree_level"`
	DegreeType  string `json:"degreeType" yaml:"degree_type"`
	StudyType   string `json:"studyType" yaml:"study_type"`

	DurationSemesters int    `json:"durationSemesters" yaml:"duration_semesters"`
	DurationDisplay   string `json:"durationDisplay,omitempty" yaml:"duration_display,omitempty"`

	StudyModes []string `json:"studyModes" yaml:"study_modes"`

	Subject              string   `json:"subject" yaml:"subject"`
	BroadCategories      []string `json:"broadCategories" yaml:"broad_categories"`
	SubjectDisplay       string   `json:"subjectDisplay" yaml:"subject_display"`
	AreasOfConcentration string   `json:"areasOfConcentration,omitempty" yaml:"areas_of_concentration,omitempty"`

	AdmissionMode AdmissionMode `json:"admissionMode" yaml:"admission_mode"`
	MinGrade      *float64      `json:"minGrade,omitempty" yaml:"min_grade,omitempty"`

	IntakeMonths []string     `json:"intakeMonths" yaml:"intake_months"`
	IntakeSeason IntakeSeason `json:"intakeSeason" yaml:"intake_season"`

	TuitionModel        TuitionModel `json:"tuitionModel" yaml:"tuition_model"`
	TuitionAmountApprox *float64     `json:"tuitionAmountApprox,omitempty" yaml:"tuition_amount_approx,omitempty"`
	TuitionPeriod       string       `json:"tuitionPeriod,omitempty" yaml:"tuition_period,omitempty"`

	MinIelts    *float64 `json:"minIelts,omitempty" yaml:"min_ielts,omitempty"`
	MinToeflIbt *float64 `json:"minToeflIbt,omitempty" yaml:"min_toefl_ibt,omitempty"`
	MinToeflPbt *float64 `json:"minToeflPbt,omitempty" yaml:"min_toefl_pbt,omitempty"`
	MinToeflCbt *float64 `json:"minToeflCbt,omitempty" yaml:"min_toefl_cbt,omitempty"`
	MinToeic    *float64 `json:"minToeic,omitempty" yaml:"min_toeic,omitempty"`
	CEFRLevel   string   `json:"cefrLevel,omitempty" yaml:"cefr_level,omitempty"`

	DeadlineWinter string `json:"deadlineWinter,omitempty" yaml:"deadline_winter,omitempty"`
	DeadlineSummer string `json:"deadlineSummer,omitempty" yaml:"deadline_summer,omitempty"`

	MainInstructionLanguage  string `json:"mainInstructionLanguage,omitempty" yaml:"main_instruction_language,omitempty"`
	LanguageRequirementsText string `json:"languageRequirementsText,omitempty" yaml:"language_requirements_text,omitempty"`
	Annotation               string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
}

// Locations returns every location name of the course. City and the
// entries of Cities may be comma-packed; they are split, trimmed and
// de-duplicated case-insensitively while keeping first-seen order.
func (c Course) Locations() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(raw string) {
		for _, part := range SplitPacked(raw) {
			key := strings.ToLower(part)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, part)
		}
	}
	add(c.City)
	for _, city := range c.Cities {
		add(city)
	}
	return out
}

// DeadlineFor returns the raw deadline text for the given season
func (c Course) DeadlineFor(season Season) string {
	if season == SeasonWinter {
		return c.DeadlineWinter
	}
	return c.DeadlineSummer
}

// TestScore returns the course's minimum score for a language test
func (c Course) TestScore(test LanguageTest) *float64 {
	switch test {
	case TestIELTS:
		return c.MinIelts
	case TestTOEFLIbt:
		return c.MinToeflIbt
	case TestTOEFLPbt:
		return c.MinToeflPbt
	case TestTOEFLCbt:
		return c.MinToeflCbt
	case TestTOEIC:
		return c.MinToeic
	default:
		return nil
	}
}

// SplitPacked splits a comma-packed value like "Berlin, Potsdam" into
// trimmed, non-empty parts
func SplitPacked(raw string) []string {
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// Float returns a pointer to v. Handy for building courses and filter
// thresholds in code.
func Float(v float64) *float64 {
	return &v
}
