// Package catalog runs the course pipeline: search, filter, sort, paginate
package catalog

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/filters"
	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/pagination"
	"github.com/pluqqy/coursefinder/pkg/search"
)

// Options configures a Catalog
type Options struct {
	Search    search.Options
	Deadlines *deadline.Parser
	// Locale is the collation locale for string sorts
	Locale string
	Logger *zap.Logger
}

// Classified is a course with its deadline reading for the selected season
type Classified struct {
	Course   models.Course `json:"course" yaml:"course"`
	Deadline deadline.Info `json:"deadline" yaml:"deadline"`
	Band     deadline.Band `json:"band" yaml:"band"`
}

// Result is one page of a query
type Result struct {
	Page pagination.Page[models.Course] `json:"page" yaml:"page"`
	// Total is the number of courses matching before pagination
	Total int `json:"total" yaml:"total"`
	// Bands classifies Page.Items, index for index
	Bands []Classified `json:"bands" yaml:"bands"`
}

// Catalog holds an immutable batch of courses and the search engine built
// over it. It is safe for concurrent use.
type Catalog struct {
	courses   []models.Course
	byID      map[string]int
	engine    *search.Engine
	deadlines *deadline.Parser
	locale    string
	logger    *zap.Logger
}

// New creates a catalog over courses. The slice must not be modified
// afterwards.
func New(courses []models.Course, opts Options) *Catalog {
	if opts.Deadlines == nil {
		opts.Deadlines = deadline.NewParser(nil, nil)
	}
	if opts.Locale == "" {
		opts.Locale = filters.DefaultLocale
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	byID := make(map[string]int, len(courses))
	for i, c := range courses {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = i
		}
	}

	return &Catalog{
		courses:   courses,
		byID:      byID,
		engine:    search.NewEngine(opts.Search),
		deadlines: opts.Deadlines,
		locale:    opts.Locale,
		logger:    opts.Logger.Named("catalog"),
	}
}

// Len returns the number of courses
func (c *Catalog) Len() int {
	return len(c.courses)
}

// Courses returns every course in load order
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

// Deadlines returns the parser used for deadline sorting and bands
func (c *Catalog) Deadlines() *deadline.Parser {
	return c.deadlines
}

// Find returns the course with the given id
func (c *Catalog) Find(id string) (models.Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Course{}, false
	}
	return c.courses[i], true
}

// Match returns every course matching state, searched, filtered and sorted
func (c *Catalog) Match(state models.FilterState) []models.Course {
	matched := c.courses
	if strings.TrimSpace(state.SearchQuery) != "" {
		matched = c.engine.Search(state.SearchQuery, matched)
	}
	matched = filters.Apply(matched, state)
	return filters.Sort(matched, state.SortBy, state.SortOrder, filters.SortOptions{
		Season:    state.Season,
		Deadlines: c.deadlines,
		Locale:    c.locale,
	})
}

// Query runs the pipeline and returns the requested page
func (c *Catalog) Query(state models.FilterState) (Result, error) {
	start := time.Now()

	matched := c.Match(state)
	page, err := pagination.Paginate(matched, state.PageSize, state.Page)
	if err != nil {
		return Result{}, fmt.Errorf("failed to paginate results: %w", err)
	}

	result := Result{
		Page:  page,
		Total: len(matched),
		Bands: c.Classify(page.Items, state.Season),
	}

	c.logger.Debug("query",
		zap.String("search", state.SearchQuery),
		zap.Int("matched", result.Total),
		zap.Int("page", page.Number),
		zap.Int("pages", page.TotalPages),
		zap.Duration("took", time.Since(start)),
	)

	return result, nil
}

// Classify reads the season's deadline band of every course
func (c *Catalog) Classify(courses []models.Course, season models.Season) []Classified {
	out := make([]Classified, len(courses))
	for i, course := range courses {
		info, band := c.deadlines.BandFor(course, season)
		out[i] = Classified{Course: course, Deadline: info, Band: band}
	}
	return out
}
