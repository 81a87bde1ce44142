package deadline

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Interpreter turns free deadline text into an Info. Implementations hold
// the locale-specific vocabulary and date formats; today is already
// truncated to midnight.
type Interpreter interface {
	Interpret(text string, today time.Time) Info
}

// GermanInterpreter understands the DD.MM.YYYY dates and the German/English
// phrasing found in German university listings.
//
// Checks run in a fixed order: expired wording, "ask the institution"
// wording, a date range (its end date decides), a single date, and finally
// no_deadline.
type GermanInterpreter struct {
	prefixPattern   *regexp.Regexp
	expiredPattern  *regexp.Regexp
	contactPatterns []*regexp.Regexp
	rangePattern    *regexp.Regexp
	datePattern     *regexp.Regexp
}

// NewGermanInterpreter creates the default interpreter
func NewGermanInterpreter() *GermanInterpreter {
	return &GermanInterpreter{
		prefixPattern:  regexp.MustCompile(`(?i)^Bewerbungsfrist Nicht-EU-Ausländer;\s*`),
		expiredPattern: regexp.MustCompile(`(?i)expired|abgelaufen|vergangen`),
		contactPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)informationen beim`),
			regexp.MustCompile(`(?i)bei hochschule erfragen`),
			regexp.MustCompile(`(?i)contact`),
			regexp.MustCompile(`(?i)informationen zum`),
			regexp.MustCompile(`(?i)information`),
			regexp.MustCompile(`(?i)erfragen`),
		},
		rangePattern: regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})\s*[—–-]\s*(\d{1,2})\.(\d{1,2})\.(\d{4})`),
		datePattern:  regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`),
	}
}

// Clean strips the non-EU applicant boilerplate prefix and surrounding space
func (g *GermanInterpreter) Clean(text string) string {
	return strings.TrimSpace(g.prefixPattern.ReplaceAllString(text, ""))
}

// Interpret implements Interpreter
func (g *GermanInterpreter) Interpret(text string, today time.Time) Info {
	if strings.TrimSpace(text) == "" {
		return Info{Status: StatusNoDeadline}
	}

	cleaned := g.Clean(text)

	if g.expiredPattern.MatchString(cleaned) {
		return Info{Status: StatusPassed, Text: cleaned}
	}

	for _, p := range g.contactPatterns {
		if p.MatchString(cleaned) {
			return Info{Status: StatusNoDeadline, Text: cleaned}
		}
	}

	if m := g.rangePattern.FindStringSubmatch(cleaned); m != nil {
		end := dateFromParts(m[4], m[5], m[6], today.Location())
		return Info{Status: compare(end, today), Text: cleaned, Date: end}
	}

	if m := g.datePattern.FindStringSubmatch(cleaned); m != nil {
		date := dateFromParts(m[1], m[2], m[3], today.Location())
		return Info{Status: compare(date, today), Text: cleaned, Date: date}
	}

	return Info{Status: StatusNoDeadline, Text: cleaned}
}

func compare(date, today time.Time) Status {
	if date.Before(today) {
		return StatusPassed
	}
	return StatusNotPassed
}

// dateFromParts builds a midnight date. Out-of-range days roll over the way
// time.Date normalizes them (31.02. becomes early March).
func dateFromParts(day, month, year string, loc *time.Location) time.Time {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}
