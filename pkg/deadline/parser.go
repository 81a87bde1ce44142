package deadline

import (
	"time"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// Status is the outcome of reading a deadline
type Status string

const (
	StatusPassed     Status = "passed"
	StatusNotPassed  Status = "not_passed"
	StatusNoDeadline Status = "no_deadline"
)

// Info describes one deadline reading. Text is the cleaned deadline text
// (empty when there was none). Date is the decisive date when one was
// found, zero otherwise.
type Info struct {
	Status Status    `json:"status" yaml:"status"`
	Text   string    `json:"text,omitempty" yaml:"text,omitempty"`
	Date   time.Time `json:"date,omitempty" yaml:"date,omitempty"`
}

// Parser reads deadline text relative to a clock
type Parser struct {
	interpreter Interpreter
	clock       Clock
}

// NewParser creates a parser. A nil interpreter falls back to the German
// interpreter and a nil clock to the system clock.
func NewParser(interpreter Interpreter, clock Clock) *Parser {
	if interpreter == nil {
		interpreter = NewGermanInterpreter()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Parser{interpreter: interpreter, clock: clock}
}

// Parse interprets deadline text against today's date
func (p *Parser) Parse(text string) Info {
	return p.interpreter.Interpret(text, Today(p.clock.Now()))
}

// ForSeason reads the course's deadline for the selected season
func (p *Parser) ForSeason(course models.Course, season models.Season) Info {
	return p.Parse(course.DeadlineFor(season))
}

// BandFor classifies the course for the selected season
func (p *Parser) BandFor(course models.Course, season models.Season) (Info, Band) {
	info := p.ForSeason(course, season)
	return info, Classify(info.Status, course.AdmissionMode)
}

// Today returns the parser's notion of today (midnight)
func (p *Parser) Today() time.Time {
	return Today(p.clock.Now())
}

var defaultInterpreter = NewGermanInterpreter()

// Parse interprets text with the German interpreter relative to now.
// now is truncated to midnight in its own location.
func Parse(text string, now time.Time) Info {
	return defaultInterpreter.Interpret(text, Today(now))
}
