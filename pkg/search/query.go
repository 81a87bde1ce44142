package search

import (
	"strings"
)

// Filter types understood by ParseQuery
const (
	FilterSubject   = "subject"
	FilterDegree    = "degree"
	FilterType      = "type"
	FilterStudy     = "study"
	FilterMode      = "mode"
	FilterAdmission = "admission"
	FilterCity      = "city"
	FilterUni       = "uni"
	FilterMonth     = "month"
	FilterTuition   = "tuition"
	FilterIELTS     = "ielts"
	FilterIBT       = "ibt"
	FilterPBT       = "pbt"
	FilterCBT       = "cbt"
	FilterTOEIC     = "toeic"
	FilterGrade     = "grade"
	FilterSeason    = "season"
	FilterSort      = "sort"
)

var filterPrefixes = []string{
	FilterSubject, FilterDegree, FilterType, FilterStudy, FilterMode,
	FilterAdmission, FilterCity, FilterUni, FilterMonth, FilterTuition,
	FilterIELTS, FilterIBT, FilterPBT, FilterCBT, FilterTOEIC, FilterGrade,
	FilterSeason, FilterSort,
}

// QueryFilter represents a single filter in a search query
type QueryFilter struct {
	Type  string
	Value string
}

// ParsedQuery represents a parsed search query with multiple filters
type ParsedQuery struct {
	Filters  []QueryFilter
	FreeText string // Any remaining text that isn't part of a filter
}

// ParseQuery splits a query into field filters and free text.
// Example: `city:Berlin subject:"Computer Science" machine learning`
// returns two filters and the free text "machine learning".
func ParseQuery(query string) *ParsedQuery {
	result := &ParsedQuery{
		Filters: []QueryFilter{},
	}

	var free []string
	for _, part := range splitQueryPreservingQuotes(query) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if filter, ok := parseFilter(part); ok {
			result.Filters = append(result.Filters, filter)
			continue
		}
		free = append(free, strings.Trim(part, `"'`))
	}
	result.FreeText = strings.Join(free, " ")

	return result
}

func parseFilter(part string) (QueryFilter, bool) {
	lowerPart := strings.ToLower(part)
	for _, prefix := range filterPrefixes {
		if !strings.HasPrefix(lowerPart, prefix+":") {
			continue
		}
		value := strings.TrimSpace(part[len(prefix)+1:])
		value = strings.Trim(value, `"'`)
		if value == "" {
			return QueryFilter{}, false
		}
		return QueryFilter{Type: prefix, Value: value}, true
	}
	return QueryFilter{}, false
}

// splitQueryPreservingQuotes splits a query string into parts while preserving quoted strings
func splitQueryPreservingQuotes(query string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	quoteChar := rune(0)

	for _, r := range query {
		switch {
		case !inQuotes && (r == '"' || r == '\''):
			inQuotes = true
			quoteChar = r
			current.WriteRune(r)
		case inQuotes && r == quoteChar:
			inQuotes = false
			current.WriteRune(r)
		case !inQuotes && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// HasFilter checks if the parsed query has a specific filter type
func (pq *ParsedQuery) HasFilter(filterType string) bool {
	_, ok := pq.GetFilter(filterType)
	return ok
}

// GetFilter returns the last filter of the specified type
func (pq *ParsedQuery) GetFilter(filterType string) (QueryFilter, bool) {
	for i := len(pq.Filters) - 1; i >= 0; i-- {
		if pq.Filters[i].Type == filterType {
			return pq.Filters[i], true
		}
	}
	return QueryFilter{}, false
}

// GetValues returns the values of all filters of the specified type. Values
// may themselves be comma separated ("city:Berlin,Munich").
func (pq *ParsedQuery) GetValues(filterType string) []string {
	var values []string
	for _, filter := range pq.Filters {
		if filter.Type != filterType {
			continue
		}
		for _, v := range strings.Split(filter.Value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
