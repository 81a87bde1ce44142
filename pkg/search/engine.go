package search

import (
	"strings"
	"sync"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// Engine caches an index between searches. The cached index is rebuilt
// whenever the collection passed to Search differs from the indexed one.
// It is safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	opts  Options
	index *Index
	built int // number of index builds, for tests and debug logging
}

// NewEngine creates a new search engine
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Options returns the engine's effective options
func (e *Engine) Options() Options {
	return e.opts
}

// Index returns a validated index for courses, rebuilding it if needed
func (e *Engine) Index(courses []models.Course) *Index {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.index == nil || !e.index.Matches(courses) {
		e.index = NewIndex(courses, e.opts)
		e.built++
	}
	return e.index
}

// Builds returns how many times the engine has built an index
func (e *Engine) Builds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.built
}

// Search returns the courses matching query ordered by relevance. An empty
// or whitespace query returns courses unchanged.
func (e *Engine) Search(query string, courses []models.Course) []models.Course {
	if strings.TrimSpace(query) == "" {
		return courses
	}
	return coursesOf(e.Index(courses).SearchIn(query, courses))
}

// SearchResults is Search with scores and matched fields
func (e *Engine) SearchResults(query string, courses []models.Course) []Result {
	return e.Index(courses).SearchIn(query, courses)
}

// Search builds a fresh index over courses and searches it
func Search(query string, courses []models.Course, opts Options) []models.Course {
	if strings.TrimSpace(query) == "" {
		return courses
	}
	return coursesOf(NewIndex(courses, opts).Search(query))
}

func coursesOf(results []Result) []models.Course {
	out := make([]models.Course, len(results))
	for i, r := range results {
		out[i] = r.Course
	}
	return out
}
