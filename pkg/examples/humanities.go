package examples

import "github.com/pluqqy/coursefinder/pkg/models"

func getHumanitiesExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Humanities and Arts",
			Description: "History, philosophy and design programmes with open and expired deadlines",
			Courses: []models.Course{
				{
					ID:                      "hu-history-ma",
					CourseName:              "Modern and Contemporary History",
					University:              "Humboldt-Universität zu Berlin",
					DetailPageURL:           "https://www.hu-berlin.de/history",
					City:                    "Berlin",
					DegreeLevel:             "Master",
					DegreeType:              "Arts",
					StudyType:               "Second cycle",
					DurationSemesters:       4,
					StudyModes:              []string{"full-time"},
					Subject:                 "History",
					BroadCategories:         []string{"Humanities"},
					SubjectDisplay:          "History",
					AdmissionMode:           models.AdmissionOpen,
					IntakeMonths:            []string{"October", "April"},
					IntakeSeason:            models.IntakeAll,
					TuitionModel:            models.TuitionFree,
					DeadlineWinter:          "The deadline for the Winter Semester 2024/2025 has expired",
					DeadlineSummer:          "01.12.2029 - 15.01.2030",
					MainInstructionLanguage: "German",
				},
				{
					ID:                      "heidelberg-philosophy-ba",
					CourseName:              "Philosophy",
					University:              "Heidelberg University",
					DetailPageURL:           "https://www.uni-heidelberg.de/philosophy",
					City:                    "Heidelberg",
					DegreeLevel:             "Bachelor",
					DegreeType:              "Arts",
					StudyType:               "Undergraduate",
					DurationSemesters:       6,
					StudyModes:              []string{"full-time"},
					Subject:                 "Philosophy",
					BroadCategories:         []string{"Humanities"},
					SubjectDisplay:          "Philosophy",
					AdmissionMode:           models.AdmissionNCRestricted,
					MinGrade:                models.Float(2.6),
					IntakeMonths:            []string{"October"},
					IntakeSeason:            models.IntakeWinter,
					TuitionModel:            models.TuitionPaid,
					TuitionAmountApprox:     models.Float(1500),
					TuitionPeriod:           "semester",
					DeadlineWinter:          "15.07.2030",
					MainInstructionLanguage: "German",
				},
				{
					ID:                      "udk-design-ma",
					CourseName:              "Design and Computation",
					University:              "Universität der Künste Berlin",
					DetailPageURL:           "https://www.udk-berlin.de/design-computation",
					City:                    "Berlin, Potsdam",
					DegreeLevel:             "Master",
					DegreeType:              "Arts",
					StudyType:               "Second cycle",
					DurationSemesters:       4,
					StudyModes:              []string{"full-time", "international course"},
					Subject:                 "Design",
					BroadCategories:         []string{"Arts / Design", "IT / Computer Science"},
					SubjectDisplay:          "Design",
					AreasOfConcentration:    "Computational Design, Interaction Design",
					AdmissionMode:           models.AdmissionAptitudeTest,
					IntakeMonths:            []string{"October"},
					IntakeSeason:            models.IntakeWinter,
					TuitionModel:            models.TuitionFree,
					MinIelts:                models.Float(6.0),
					DeadlineWinter:          "01.04.2030 - 31.05.2030",
					MainInstructionLanguage: "English",
				},
			},
		},
	}
}
