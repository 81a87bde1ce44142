package models

import (
	"fmt"
	"time"
)

// Settings represents the application configuration
type Settings struct {
	Data    DataSettings    `yaml:"data" mapstructure:"data"`
	Search  SearchSettings  `yaml:"search" mapstructure:"search"`
	Display DisplaySettings `yaml:"display" mapstructure:"display"`
	Sort    SortSettings    `yaml:"sort" mapstructure:"sort"`
	Log     LogSettings     `yaml:"log" mapstructure:"log"`
}

// DataSettings controls where the course catalog comes from
type DataSettings struct {
	Path    string        `yaml:"path" mapstructure:"path"` // file path or http(s) URL
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// SearchSettings tunes fuzzy matching
type SearchSettings struct {
	Threshold      float64 `yaml:"threshold" mapstructure:"threshold"` // in (0,1]; near 0 exact substrings only, 1 match anything
	MinMatchLength int     `yaml:"min_match_length" mapstructure:"min_match_length"`
}

// DisplaySettings holds the initial browse selections
type DisplaySettings struct {
	PageSize  int    `yaml:"page_size" mapstructure:"page_size"`
	Season    string `yaml:"season" mapstructure:"season"`
	SortBy    string `yaml:"sort_by" mapstructure:"sort_by"`
	SortOrder string `yaml:"sort_order" mapstructure:"sort_order"`
}

// SortSettings controls string collation
type SortSettings struct {
	Locale string `yaml:"locale" mapstructure:"locale"` // BCP 47 tag
}

// LogSettings controls structured logging
type LogSettings struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // "console" or "json"
	File   string `yaml:"file" mapstructure:"file"`     // empty logs to stderr (CLI) or nowhere (TUI)
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Data: DataSettings{
			Path:    "courses_processed.json",
			Timeout: 30 * time.Second,
		},
		Search: SearchSettings{
			Threshold:      0.4,
			MinMatchLength: 2,
		},
		Display: DisplaySettings{
			PageSize:  DefaultPageSize,
			Season:    string(SeasonSummer),
			SortBy:    string(SortRelevance),
			SortOrder: string(SortAsc),
		},
		Sort: SortSettings{
			Locale: "de",
		},
		Log: LogSettings{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Validate checks that the settings can drive a browse session
func (s *Settings) Validate() error {
	if s.Search.Threshold <= 0 || s.Search.Threshold > 1 {
		return fmt.Errorf("search.threshold must be greater than 0 and at most 1, got %v", s.Search.Threshold)
	}
	if s.Search.MinMatchLength < 1 {
		return fmt.Errorf("search.min_match_length must be at least 1, got %d", s.Search.MinMatchLength)
	}
	if s.Display.PageSize < 1 {
		return fmt.Errorf("display.page_size must be at least 1, got %d", s.Display.PageSize)
	}
	if _, err := ParseSeason(s.Display.Season); err != nil {
		return fmt.Errorf("display.season: %w", err)
	}
	if _, err := ParseSortKey(s.Display.SortBy); err != nil {
		return fmt.Errorf("display.sort_by: %w", err)
	}
	if _, err := ParseSortOrder(s.Display.SortOrder); err != nil {
		return fmt.Errorf("display.sort_order: %w", err)
	}
	return nil
}

// InitialFilterState returns the default filter state adjusted by the
// display settings. Settings are expected to be validated.
func (s *Settings) InitialFilterState() FilterState {
	fs := DefaultFilterState()
	fs.PageSize = s.Display.PageSize
	if season, err := ParseSeason(s.Display.Season); err == nil {
		fs.Season = season
	}
	if key, err := ParseSortKey(s.Display.SortBy); err == nil {
		fs.SortBy = key
	}
	if order, err := ParseSortOrder(s.Display.SortOrder); err == nil {
		fs.SortOrder = order
	}
	return fs
}
