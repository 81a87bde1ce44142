package files

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pluqqy/coursefinder/pkg/models"
)

// ErrInvalidCatalog is returned when catalog data is not a JSON array of courses
var ErrInvalidCatalog = errors.New("invalid course catalog")

// DefaultCatalogFile is the catalog looked up in the working directory
const DefaultCatalogFile = "courses_processed.json"

// maxCatalogSize bounds a downloaded catalog
const maxCatalogSize = 256 << 20

// IsURL reports whether source should be fetched over HTTP
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LoadCatalog reads courses from a file path or an http(s) URL. A zero
// timeout means no timeout beyond ctx.
func LoadCatalog(ctx context.Context, source string, timeout time.Duration) ([]models.Course, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: no data source configured", ErrInvalidCatalog)
	}
	if IsURL(source) {
		return FetchCatalog(ctx, source, timeout)
	}
	return ReadCatalogFile(source)
}

// ReadCatalogFile reads a JSON catalog from disk
func ReadCatalogFile(path string) ([]models.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	courses, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return courses, nil
}

// FetchCatalog downloads a JSON catalog
func FetchCatalog(ctx context.Context, url string, timeout time.Duration) ([]models.Course, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog %s: unexpected status %s", url, resp.Status)
	}

	courses, err := ReadCatalog(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", url, err)
	}
	return courses, nil
}

// ReadCatalog decodes a JSON array of courses
func ReadCatalog(r io.Reader) ([]models.Course, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidCatalog)
	}

	var courses []models.Course
	if err := json.Unmarshal(trimmed, &courses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// WriteCatalog writes courses as an indented JSON array, creating parent
// directories as needed
func WriteCatalog(path string, courses []models.Course) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for catalog: %w", err)
		}
	}

	data, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}
