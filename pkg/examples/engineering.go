package examples

import "github.com/pluqqy/coursefinder/pkg/models"

func getEngineeringExamples() []ExampleSet {
	return []ExampleSet{
		{
			Name:        "Engineering and Computer Science",
			Description: "Technical programmes across admission modes and deadline states",
			Courses: []models.Course{
				{
					ID:                "tum-informatics-msc",
					CourseName:        "Informatics",
					University:        "Technical University of Munich",
					DetailPageURL:     "https://www.tum.de/en/studies/degree-programs/detail/informatics-master-of-science-msc",
					City:              "Munich",
					Cities:            []string{"Garching"},
					Degree:            "Master of Science",
					DegreeLevel:       "Master",
					DegreeType:        "Science",
					StudyType:         "Second cycle",
					DurationSemesters: 4,
					StudyModes:        []string{"full-time"},
					Subject:           "Computer Science",
					BroadCategories:   []string{"IT / Computer Science"},
					SubjectDisplay:    "Computer Science",
					AreasOfConcentration: "Algorithms, Machine Learning, Databases, " +
						"Computer Graphics and Vision, Software Engineering",
					AdmissionMode:            models.AdmissionAptitudeTest,
					IntakeMonths:             []string{"October", "April"},
					IntakeSeason:             models.IntakeAll,
					TuitionModel:             models.TuitionPaid,
					TuitionAmountApprox:      models.Float(3000),
					TuitionPeriod:            "semester",
					MinIelts:                 models.Float(6.5),
					MinToeflIbt:              models.Float(88),
					DeadlineWinter:           "01.01.2030 - 31.05.2030",
					DeadlineSummer:           "01.09.2029 - 30.11.2029",
					MainInstructionLanguage:  "English",
					LanguageRequirementsText: "IELTS 6.5 or TOEFL iBT 88",
				},
				{
					ID:                       "kit-mech-eng-bsc",
					CourseName:               "Mechanical Engineering",
					University:               "Karlsruhe Institute of Technology",
					DetailPageURL:            "https://www.kit.edu/mechanical-engineering",
					City:                     "Karlsruhe",
					DegreeLevel:              "Bachelor",
					DegreeType:               "Engineering",
					StudyType:                "Undergraduate",
					DurationSemesters:        6,
					StudyModes:               []string{"full-time"},
					Subject:                  "Mechanical Engineering",
					BroadCategories:          []string{"Engineering"},
					SubjectDisplay:           "Mechanical Engineering",
					AdmissionMode:            models.AdmissionNCRestricted,
					MinGrade:                 models.Float(2.3),
					IntakeMonths:             []string{"October"},
					IntakeSeason:             models.IntakeWinter,
					TuitionModel:             models.TuitionPaid,
					TuitionAmountApprox:      models.Float(1500),
					TuitionPeriod:            "semester",
					DeadlineWinter:           "Bewerbungsfrist Nicht-EU-Ausländer; 15.07.2024",
					MainInstructionLanguage:  "German",
					LanguageRequirementsText: "DSH-2 or TestDaF 4x4",
				},
				{
					ID:                       "rwth-data-science-msc",
					CourseName:               "Data Science",
					University:               "RWTH Aachen University",
					DetailPageURL:            "https://www.rwth-aachen.de/data-science",
					City:                     "Aachen",
					DegreeLevel:              "Master",
					DegreeType:               "Science",
					StudyType:                "Second cycle",
					DurationSemesters:        4,
					StudyModes:               []string{"full-time", "international course"},
					Subject:                  "Data Science",
					BroadCategories:          []string{"IT / Computer Science", "Natural Sciences"},
					SubjectDisplay:           "Data Science",
					AreasOfConcentration:     "Statistics, Machine Learning, Data Management",
					AdmissionMode:            models.AdmissionOpen,
					IntakeMonths:             []string{"October"},
					IntakeSeason:             models.IntakeWinter,
					TuitionModel:             models.TuitionFree,
					TuitionAmountApprox:      models.Float(0),
					MinIelts:                 models.Float(5.5),
					MinToeflIbt:              models.Float(90),
					MinToeic:                 models.Float(785),
					DeadlineWinter:           "Informationen beim International Office",
					MainInstructionLanguage:  "English",
					LanguageRequirementsText: "IELTS 5.5, TOEFL iBT 90 or TOEIC 785",
				},
				{
					ID:                      "tud-renewable-energy-msc",
					CourseName:              "Renewable Energy Systems",
					University:              "TU Dresden",
					DetailPageURL:           "https://tu-dresden.de/res",
					City:                    "Dresden, Freiberg",
					DegreeLevel:             "Master",
					DegreeType:              "Engineering",
					StudyType:               "Second cycle",
					DurationSemesters:       3,
					StudyModes:              []string{"full-time"},
					Subject:                 "Energy Engineering",
					BroadCategories:         []string{"Engineering"},
					SubjectDisplay:          "Energy Engineering",
					AdmissionMode:           models.AdmissionOpen,
					IntakeMonths:            []string{"April"},
					IntakeSeason:            models.IntakeSummer,
					TuitionModel:            models.TuitionFree,
					MinIelts:                models.Float(7.0),
					DeadlineSummer:          "15.01.2030",
					MainInstructionLanguage: "English",
				},
			},
		},
	}
}
