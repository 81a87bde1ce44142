package files

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pluqqy/coursefinder/pkg/models"
)

const sampleJSON = `[
  {
    "id": "tum-informatics",
    "courseName": "Informatics",
    "university": "TU München",
    "city": "Munich",
    "degreeLevel": "Master",
    "durationSemesters": 4,
    "broadCategories": ["IT / Computer Science"],
    "admissionMode": "Aptitude Test",
    "minIelts": 6.5,
    "minGrade": null,
    "deadlineWinter": "01.01.2030 - 31.05.2030"
  },
  {
    "id": "fu-history",
    "courseName": "History",
    "university": "FU Berlin",
    "city": "Berlin",
    "admissionMode": "Open"
  }
]`

func TestReadCatalog(t *testing.T) {
	courses, err := ReadCatalog(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}

	if len(courses) != 2 {
		t.Fatalf("Expected 2 courses, got %d", len(courses))
	}

	c := courses[0]
	if c.ID != "tum-informatics" || c.DurationSemesters != 4 {
		t.Errorf("Unexpected first course: %+v", c)
	}
	if c.MinIelts == nil || *c.MinIelts != 6.5 {
		t.Errorf("Expected minIelts 6.5, got %v", c.MinIelts)
	}
	if c.MinGrade != nil {
		t.Errorf("Expected null minGrade to stay nil, got %v", *c.MinGrade)
	}
	if c.AdmissionMode != models.AdmissionAptitudeTest {
		t.Errorf("Expected admission mode %q, got %q", models.AdmissionAptitudeTest, c.AdmissionMode)
	}
}

func TestReadCatalogRejectsNonArrays(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"object", `{"courses": []}`},
		{"string", `"courses"`},
		{"broken array", `[{"id": 1,`},
		{"wrong field type", `[{"durationSemesters": "four"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCatalog(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("ReadCatalog(%q) error = %v, want ErrInvalidCatalog", tt.input, err)
			}
		})
	}
}

func TestReadCatalogEmptyArray(t *testing.T) {
	courses, err := ReadCatalog(strings.NewReader("  []  "))
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}
	if courses == nil || len(courses) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", courses)
	}
}

func TestWriteAndReadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "courses.json")
	want := []models.Course{
		{ID: "a", CourseName: "Physics", MinGrade: models.Float(2.5)},
		{ID: "b", CourseName: "Chemistry", Cities: []string{"Jena"}},
	}

	if err := WriteCatalog(path, want); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	got, err := LoadCatalog(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if len(got) != 2 || got[0].CourseName != "Physics" || got[1].Cities[0] != "Jena" {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got[0].MinGrade == nil || *got[0].MinGrade != 2.5 {
		t.Errorf("Expected minGrade 2.5, got %v", got[0].MinGrade)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(context.Background(), filepath.Join(t.TempDir(), "missing.json"), 0)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	if _, err := LoadCatalog(context.Background(), "  ", 0); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Expected ErrInvalidCatalog for empty source, got %v", err)
	}
}

func TestFetchCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/courses.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleJSON))
		case "/object.json":
			w.Write([]byte(`{"error": "nope"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	courses, err := LoadCatalog(context.Background(), server.URL+"/courses.json", 5*time.Second)
	if err != nil {
		t.Fatalf("LoadCatalog over HTTP failed: %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("Expected 2 courses, got %d", len(courses))
	}

	if _, err := LoadCatalog(context.Background(), server.URL+"/object.json", 0); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Expected ErrInvalidCatalog, got %v", err)
	}

	if _, err := LoadCatalog(context.Background(), server.URL+"/missing.json", 0); err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected 404 error, got %v", err)
	}
}

func TestFetchCatalogTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := FetchCatalog(context.Background(), server.URL, 50*time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.org/courses.json", true},
		{"HTTP://example.org/courses.json", true},
		{"courses.json", false},
		{"/data/https.json", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	settings, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	want := models.DefaultSettings()
	if settings.Data != want.Data || settings.Search != want.Search || settings.Display != want.Display {
		t.Errorf("Expected defaults %+v, got %+v", want, settings)
	}
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `data:
  path: https://example.org/courses.json
  timeout: 5s
display:
  page_size: 50
  season: winter
  sort_by: deadline
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	t.Setenv("COURSEFINDER_DISPLAY_PAGE_SIZE", "10")
	t.Setenv("COURSEFINDER_SORT_LOCALE", "en")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if settings.Data.Path != "https://example.org/courses.json" {
		t.Errorf("Data.Path = %q", settings.Data.Path)
	}
	if settings.Data.Timeout != 5*time.Second {
		t.Errorf("Data.Timeout = %v, want 5s", settings.Data.Timeout)
	}
	if settings.Display.PageSize != 10 {
		t.Errorf("Display.PageSize = %d, want env override 10", settings.Display.PageSize)
	}
	if settings.Display.Season != "winter" || settings.Display.SortBy != "deadline" {
		t.Errorf("Display = %+v", settings.Display)
	}
	if settings.Display.SortOrder != "asc" {
		t.Errorf("Display.SortOrder = %q, want default asc", settings.Display.SortOrder)
	}
	if settings.Sort.Locale != "en" {
		t.Errorf("Sort.Locale = %q, want en", settings.Sort.Locale)
	}
	if settings.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", settings.Log.Level)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit settings file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("display:\n  season: autumn\n"), 0644)
	if _, err := LoadSettings(path); err == nil || !strings.Contains(err.Error(), "display.season") {
		t.Errorf("Expected display.season validation error, got %v", err)
	}
}
