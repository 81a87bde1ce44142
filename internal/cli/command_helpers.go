package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pluqqy/coursefinder/internal/logging"
	"github.com/pluqqy/coursefinder/pkg/catalog"
	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/files"
	"github.com/pluqqy/coursefinder/pkg/models"
	"github.com/pluqqy/coursefinder/pkg/search"
)

// TodayLayout is the accepted format of the --today flag
const TodayLayout = "2006-01-02"

// CommandContext loads what commands share: settings, logger and catalog.
// Everything is loaded lazily and at most once.
type CommandContext struct {
	ConfigPath string
	DataPath   string // overrides data.path when set
	Today      string // fixed date for deadline checks, TodayLayout

	Settings *models.Settings
	Logger   *zap.Logger

	catalog *catalog.Catalog
}

// NewCommandContext creates a new command context
func NewCommandContext(configPath, dataPath, today string) *CommandContext {
	return &CommandContext{
		ConfigPath: configPath,
		DataPath:   dataPath,
		Today:      today,
	}
}

// LoadSettings reads the settings file and environment
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.LoadSettings(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	if c.DataPath != "" {
		settings.Data.Path = c.DataPath
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns the defaults on error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		settings = models.DefaultSettings()
		if c.DataPath != "" {
			settings.Data.Path = c.DataPath
		}
		c.Settings = settings
	}
	return settings
}

// LoadLogger builds the CLI logger from the settings
func (c *CommandContext) LoadLogger() (*zap.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		return nil, err
	}
	c.Logger = logger
	return logger, nil
}

// Clock returns the clock for deadline checks, fixed when Today is set
func (c *CommandContext) Clock() (deadline.Clock, error) {
	if c.Today == "" {
		return deadline.SystemClock{}, nil
	}
	t, err := time.ParseInLocation(TodayLayout, c.Today, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --today value %q (want %s): %w", c.Today, TodayLayout, err)
	}
	return deadline.FixedClock{T: t}, nil
}

// Deadlines returns a deadline parser bound to the context clock
func (c *CommandContext) Deadlines() (*deadline.Parser, error) {
	clock, err := c.Clock()
	if err != nil {
		return nil, err
	}
	return deadline.NewParser(nil, clock), nil
}

// LoadCatalog reads the dataset and builds the catalog over it
func (c *CommandContext) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	logger, err := c.LoadLogger()
	if err != nil {
		return nil, err
	}
	parser, err := c.Deadlines()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	courses, err := files.LoadCatalog(ctx, settings.Data.Path, settings.Data.Timeout)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		zap.String("source", settings.Data.Path),
		zap.Int("courses", len(courses)),
		zap.Duration("took", time.Since(start)),
	)

	c.catalog = catalog.New(courses, catalog.Options{
		Search:    SearchOptions(settings),
		Deadlines: parser,
		Locale:    settings.Sort.Locale,
		Logger:    logger,
	})
	return c.catalog, nil
}

// SearchOptions converts the search settings into matcher options
func SearchOptions(settings *models.Settings) search.Options {
	opts := search.DefaultOptions()
	opts.Threshold = settings.Search.Threshold
	opts.MinMatchLength = settings.Search.MinMatchLength
	return opts
}
