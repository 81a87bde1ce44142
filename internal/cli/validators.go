package cli

import (
	"fmt"
	"strings"

	"github.com/pluqqy/coursefinder/pkg/examples"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSeason validates the season flag
func ValidateSeason(season string) (models.Season, error) {
	return models.ParseSeason(strings.ToLower(season))
}

// ValidateSort parses a sort key and an order flag
func ValidateSort(key, order string) (models.SortKey, models.SortOrder, error) {
	k, err := models.ParseSortKey(strings.ToLower(key))
	if err != nil {
		return "", "", fmt.Errorf("%w (must be one of: %s)", err, strings.Join(models.SortKeyNames(), ", "))
	}
	o, err := models.ParseSortOrder(strings.ToLower(order))
	if err != nil {
		return "", "", err
	}
	return k, o, nil
}

// ValidatePageSize validates a page size flag
func ValidatePageSize(size int) error {
	if size < 1 {
		return fmt.Errorf("invalid page size: %d (must be at least 1)", size)
	}
	return nil
}

// ValidateCategory validates a sample data category
func ValidateCategory(category string) error {
	if Contains(examples.Categories, category) {
		return nil
	}
	return fmt.Errorf("invalid category: %s (must be: %s)", category, strings.Join(examples.Categories, ", "))
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
