package examples

import "github.com/pluqqy/coursefinder/pkg/models"

func getBusinessExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Business and Law",
			Description: "Management, economics and law programmes, including an MBA",
			Courses: []models.Course{
				{
					ID:                       "mannheim-mba",
					CourseName:               "Mannheim Full-Time MBA",
					University:               "University of Mannheim",
					DetailPageURL:            "https://www.mannheim-business-school.com/mba",
					City:                     "Mannheim",
					DegreeLevel:              "MBA",
					DegreeType:               "Business",
					StudyType:                "Second cycle",
					DurationSemesters:        2,
					StudyModes:               []string{"full-time", "international course"},
					Subject:                  "Business Administration",
					BroadCategories:          []string{"Business / Economics"},
					SubjectDisplay:           "Business Administration",
					AdmissionMode:            models.AdmissionAptitudeTest,
					IntakeMonths:             []string{"January"},
					IntakeSeason:             models.IntakeSummer,
					TuitionModel:             models.TuitionPaid,
					TuitionAmountApprox:      models.Float(39500),
					TuitionPeriod:            "programme",
					MinToeflIbt:              models.Float(100),
					MinToeflPbt:              models.Float(600),
					MinToeflCbt:              models.Float(250),
					DeadlineSummer:           "01.03.2024 - 30.09.2024",
					MainInstructionLanguage:  "English",
					LanguageRequirementsText: "TOEFL iBT 100",
					Annotation:               "GMAT or GRE required",
				},
				{
					ID:                      "fu-economics-bsc",
					CourseName:              "Economics",
					University:              "Freie Universität Berlin",
					DetailPageURL:           "https://www.fu-berlin.de/economics",
					City:                    "Berlin",
					DegreeLevel:             "Bachelor",
					DegreeType:              "Science",
					StudyType:               "Undergraduate",
					DurationSemesters:       6,
					StudyModes:              []string{"full-time"},
					Subject:                 "Economics",
					BroadCategories:         []string{"Business / Economics", "Social Sciences"},
					SubjectDisplay:          "Economics",
					AdmissionMode:           models.AdmissionNCRestricted,
					MinGrade:                models.Float(1.8),
					IntakeMonths:            []string{"October"},
					IntakeSeason:            models.IntakeWinter,
					TuitionModel:            models.TuitionFree,
					DeadlineWinter:          "15.07.2030",
					MainInstructionLanguage: "German",
				},
				{
					ID:                      "hamburg-llm",
					CourseName:              "Master of Laws (LL.M.)",
					University:              "Universität Hamburg",
					DetailPageURL:           "https://www.jura.uni-hamburg.de/llm",
					City:                    "Hamburg",
					DegreeLevel:             "LLM",
					DegreeType:              "Laws",
					StudyType:               "Second cycle",
					DurationSemesters:       2,
					StudyModes:              []string{"full-time"},
					Subject:                 "Law",
					BroadCategories:         []string{"Law"},
					SubjectDisplay:          "Law",
					AreasOfConcentration:    "European Law, International Commercial Law",
					AdmissionMode:           models.AdmissionOpen,
					IntakeMonths:            []string{"October"},
					IntakeSeason:            models.IntakeWinter,
					TuitionModel:            models.TuitionUnknown,
					MinIelts:                models.Float(7.0),
					DeadlineWinter:          "Bei Hochschule erfragen",
					MainInstructionLanguage: "English",
				},
			},
		},
	}
}
