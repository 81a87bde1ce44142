package files

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pluqqy/coursefinder/pkg/models"
)

const (
	// SettingsFile is the settings file looked up in the working directory
	SettingsFile = ".coursefinder.yaml"
	// EnvPrefix prefixes environment overrides, e.g. COURSEFINDER_DATA_PATH
	EnvPrefix = "COURSEFINDER"
)

// newViper returns a viper instance with every settings key defaulted so
// that environment overrides apply even without a settings file
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := models.DefaultSettings()
	v.SetDefault("data.path", d.Data.Path)
	v.SetDefault("data.timeout", d.Data.Timeout)
	v.SetDefault("search.threshold", d.Search.Threshold)
	v.SetDefault("search.min_match_length", d.Search.MinMatchLength)
	v.SetDefault("display.page_size", d.Display.PageSize)
	v.SetDefault("display.season", d.Display.Season)
	v.SetDefault("display.sort_by", d.Display.SortBy)
	v.SetDefault("display.sort_order", d.Display.SortOrder)
	v.SetDefault("sort.locale", d.Sort.Locale)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	return v
}

// LoadSettings reads settings from path, or from SettingsFile in the working
// directory when path is empty. A missing default file is not an error; a
// missing explicit file is. COURSEFINDER_* environment variables override
// file values.
func LoadSettings(path string) (*models.Settings, error) {
	v := newViper()

	explicit := path != ""
	if !explicit {
		path = SettingsFile
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := &models.Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}
