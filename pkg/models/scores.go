package models

// Valid option lists offered by the UIs. The filter engine accepts any
// number; these only drive menus and validation warnings.
var (
	IELTSScores = []float64{5.0, 5.5, 6.0, 6.5, 7.0, 7.5, 8.0, 8.5, 9.0}

	TOEFLIbtScores = stepScores(50, 120, 10)
	TOEFLPbtScores = stepScores(400, 700, 10)
	TOEFLCbtScores = stepScores(150, 300, 10)
	TOEICScores    = stepScores(200, 1000, 50)

	// German scale, 1.0 is best and 3.0 the usual minimum in the data
	GradeOptions = []float64{1.0, 1.5, 1.7, 1.8, 1.9, 2.0, 2.2, 2.3, 2.5, 2.6, 2.7, 2.8, 2.9, 3.0}
)

// Facet option lists as they appear in the dataset
var (
	DegreeLevels   = []string{"Bachelor", "Master", "MBA", "LLM", "Other"}
	DegreeTypes    = []string{"Arts", "Science", "Engineering", "Business", "Education", "Laws", "Other"}
	StudyTypes     = []string{"Second cycle", "Undergraduate"}
	StudyModes     = []string{"full-time", "international course"}
	AdmissionModes = []string{string(AdmissionOpen), string(AdmissionNCRestricted), string(AdmissionAptitudeTest)}
	Months         = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	SubjectCategories = []string{
		"Engineering",
		"IT / Computer Science",
		"Business / Economics",
		"Natural Sciences",
		"Social Sciences",
		"Humanities",
		"Arts / Design",
		"Medicine / Health",
		"Law",
		"Education",
		"General / Interdisciplinary",
	}
)

// ScoreOptions returns the valid score list for a test
func ScoreOptions(test LanguageTest) []float64 {
	switch test {
	case TestIELTS:
		return IELTSScores
	case TestTOEFLIbt:
		return TOEFLIbtScores
	case TestTOEFLPbt:
		return TOEFLPbtScores
	case TestTOEFLCbt:
		return TOEFLCbtScores
	case TestTOEIC:
		return TOEICScores
	default:
		return nil
	}
}

// IsValidScore reports whether v is one of the offered options for test
func IsValidScore(test LanguageTest, v float64) bool {
	return containsFloat(ScoreOptions(test), v)
}

// IsValidGrade reports whether v is one of the offered grade options
func IsValidGrade(v float64) bool {
	return containsFloat(GradeOptions, v)
}

func containsFloat(list []float64, v float64) bool {
	for _, o := range list {
		if o == v {
			return true
		}
	}
	return false
}

func stepScores(from, to, step int) []float64 {
	var out []float64
	for v := from; v <= to; v += step {
		out = append(out, float64(v))
	}
	return out
}
