package search

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// Field is one weighted, searchable course attribute
type Field struct {
	Name   string
	Weight float64
	Value  func(models.Course) string
}

// DefaultFields are the searched attributes and their weights
var DefaultFields = []Field{
	{Name: "courseName", Weight: 0.4, Value: func(c models.Course) string { return c.CourseName }},
	{Name: "subject", Weight: 0.3, Value: func(c models.Course) string { return c.Subject }},
	{Name: "subjectDisplay", Weight: 0.2, Value: func(c models.Course) string { return c.SubjectDisplay }},
	{Name: "areasOfConcentration", Weight: 0.1, Value: func(c models.Course) string { return c.AreasOfConcentration }},
}

const (
	DefaultThreshold      = 0.4
	DefaultMinMatchLength = 2
)

// Options tunes the fuzzy matcher
type Options struct {
	// Threshold is the highest accepted per-field score in (0,1]. Values near
	// 0 accept exact substrings only, 1 accepts anything. Zero means unset.
	Threshold float64
	// MinMatchLength is the shortest query or token, in runes, that is matched
	MinMatchLength int
	Fields         []Field
}

// DefaultOptions returns the standard matcher configuration
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		MinMatchLength: DefaultMinMatchLength,
		Fields:         DefaultFields,
	}
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 || o.Threshold > 1 {
		o.Threshold = DefaultThreshold
	}
	if o.MinMatchLength < 1 {
		o.MinMatchLength = DefaultMinMatchLength
	}
	if len(o.Fields) == 0 {
		o.Fields = DefaultFields
	}
	return o
}

// Result is one matching course with its relevance in (0,1] and the names of
// the fields that matched. Position is the course's index in the searched
// collection.
type Result struct {
	Course   models.Course `json:"course" yaml:"course"`
	Score    float64       `json:"score" yaml:"score"`
	Fields   []string      `json:"fields" yaml:"fields"`
	Position int           `json:"-" yaml:"-"`
}

// Index holds the normalized searchable text of one course collection
type Index struct {
	opts        Options
	courses     []models.Course
	docs        [][]string // docs[i][f] is field f of course i
	totalWeight float64
	fingerprint uint64
}

// NewIndex builds an index over courses
func NewIndex(courses []models.Course, opts Options) *Index {
	opts = opts.withDefaults()

	idx := &Index{
		opts:        opts,
		courses:     courses,
		docs:        make([][]string, len(courses)),
		fingerprint: fingerprint(courses, opts.Fields),
	}
	for _, f := range opts.Fields {
		idx.totalWeight += f.Weight
	}
	for i, c := range courses {
		doc := make([]string, len(opts.Fields))
		for j, f := range opts.Fields {
			doc[j] = normalize(f.Value(c))
		}
		idx.docs[i] = doc
	}
	return idx
}

// Len returns the number of indexed courses
func (idx *Index) Len() int {
	return len(idx.courses)
}

// Matches reports whether the index can serve searches over courses: same
// length, ids and searchable text in the same order. Other fields are not
// compared; use SearchIn to get results carrying the records of courses.
func (idx *Index) Matches(courses []models.Course) bool {
	if len(courses) != len(idx.courses) {
		return false
	}
	return fingerprint(courses, idx.opts.Fields) == idx.fingerprint
}

// Search returns the matching courses ordered by descending relevance.
// An empty query returns every course with score 1 in index order; a query
// shorter than MinMatchLength returns nothing.
func (idx *Index) Search(query string) []Result {
	q := normalize(query)
	if q == "" {
		results := make([]Result, len(idx.courses))
		for i, c := range idx.courses {
			results[i] = Result{Course: c, Score: 1, Position: i}
		}
		return results
	}
	if len([]rune(q)) < idx.opts.MinMatchLength {
		return []Result{}
	}

	tokens := tokenize(q, idx.opts.MinMatchLength)
	if len(tokens) == 1 && tokens[0] == q {
		tokens = nil
	}

	results := []Result{}
	for i, doc := range idx.docs {
		score, fields := idx.score(q, tokens, doc)
		if len(fields) == 0 {
			continue
		}
		results = append(results, Result{Course: idx.courses[i], Score: score, Fields: fields, Position: i})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results
}

// SearchIn searches the index and returns the records of courses at the
// matched positions. courses must satisfy Matches.
func (idx *Index) SearchIn(query string, courses []models.Course) []Result {
	results := idx.Search(query)
	for i := range results {
		results[i].Course = courses[results[i].Position]
	}
	return results
}

// score computes a course's relevance and its matching fields
func (idx *Index) score(query string, tokens []string, doc []string) (float64, []string) {
	var (
		sum     float64
		matched []string
	)
	for j, text := range doc {
		s := fieldScore(query, text, idx.opts.Threshold)
		if s > 0 && len(tokens) > 0 {
			if ts := idx.tokenScore(tokens, text); ts < s {
				s = ts
			}
		}
		if s <= idx.opts.Threshold {
			f := idx.opts.Fields[j]
			sum += f.Weight * (1 - s)
			matched = append(matched, f.Name)
		}
	}
	if len(matched) == 0 || idx.totalWeight == 0 {
		return 0, nil
	}
	return sum / idx.totalWeight, matched
}

// tokenScore is the mean of the per-token scores against one field
func (idx *Index) tokenScore(tokens []string, text string) float64 {
	var total float64
	for _, tok := range tokens {
		total += fieldScore(tok, text, idx.opts.Threshold)
	}
	return total / float64(len(tokens))
}

// fingerprint hashes the course ids and searchable text in order
func fingerprint(courses []models.Course, fields []Field) uint64 {
	h := fnv.New64a()
	for _, c := range courses {
		h.Write([]byte(c.ID))
		h.Write([]byte{0})
		for _, f := range fields {
			h.Write([]byte(strings.ToLower(f.Value(c))))
			h.Write([]byte{0})
		}
		h.Write([]byte{1})
	}
	return h.Sum64()
}
