package deadline

import "github.com/pluqqy/coursefinder/pkg/models"

// Color identifies a band color; renderers map it to a concrete palette
type Color string

const (
	ColorOpen       Color = "open"
	ColorRestricted Color = "restricted"
	ColorAptitude   Color = "aptitude"
	ColorExpired    Color = "expired"
	ColorNeutral    Color = "neutral"
)

// Band is the visual and priority classification of a course's deadline.
// Split bands are drawn half Fill (neutral) and half Accent.
type Band struct {
	Priority int   `json:"priority" yaml:"priority"`
	Fill     Color `json:"fill" yaml:"fill"`
	Accent   Color `json:"accent,omitempty" yaml:"accent,omitempty"`
	Split    bool  `json:"split,omitempty" yaml:"split,omitempty"`
}

// FallbackPriority is used for unknown status/admission combinations
const FallbackPriority = 8

var admissionColors = map[models.AdmissionMode]Color{
	models.AdmissionOpen:         ColorOpen,
	models.AdmissionNCRestricted: ColorRestricted,
	models.AdmissionAptitudeTest: ColorAptitude,
}

var admissionRank = map[models.AdmissionMode]int{
	models.AdmissionOpen:         0,
	models.AdmissionNCRestricted: 1,
	models.AdmissionAptitudeTest: 2,
}

// Classify maps a deadline status and admission mode to a band. Lower
// priorities are shown first:
//
//	not_passed  Open 1, NC Restricted 2, Aptitude Test 3
//	no_deadline Open 4, NC Restricted 5, Aptitude Test 6
//	passed      any mode 7
//	otherwise   8
func Classify(status Status, mode models.AdmissionMode) Band {
	if status == StatusPassed {
		return Band{Priority: 7, Fill: ColorExpired}
	}

	rank, known := admissionRank[mode]
	if !known {
		return Band{Priority: FallbackPriority, Fill: ColorNeutral}
	}

	switch status {
	case StatusNotPassed:
		return Band{Priority: 1 + rank, Fill: admissionColors[mode]}
	case StatusNoDeadline:
		return Band{Priority: 4 + rank, Fill: ColorNeutral, Accent: admissionColors[mode], Split: true}
	}

	return Band{Priority: FallbackPriority, Fill: ColorNeutral}
}

// Label returns a short human readable description of the band
func (b Band) Label() string {
	switch {
	case b.Fill == ColorExpired:
		return "deadline passed"
	case b.Split:
		return "no fixed deadline · " + string(b.Accent)
	case b.Priority < 4:
		return "open for applications · " + string(b.Fill)
	default:
		return "unknown"
	}
}
