package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/files"
	"github.com/pluqqy/coursefinder/pkg/models"
)

func TestOutputResults(t *testing.T) {
	data := map[string]int{"count": 2}

	tests := []struct {
		format   string
		wantErr  bool
		contains string
	}{
		{"json", false, `"count": 2`},
		{"yaml", false, "count: 2"},
		{"text", false, "map[count:2]"},
		{"xml", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("OutputResults(%s) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("OutputResults(%s) = %q, want it to contain %q", tt.format, buf.String(), tt.contains)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"Mechanical Engineering", 10, "Mechani..."},
		{"Universität", 8, "Unive..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.expected {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
		}
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatScore(nil); got != "-" {
		t.Errorf("FormatScore(nil) = %q", got)
	}
	if got := FormatScore(models.Float(6.5)); got != "6.5" {
		t.Errorf("FormatScore(6.5) = %q", got)
	}

	paid := models.Course{TuitionModel: models.TuitionPaid, TuitionAmountApprox: models.Float(1500), TuitionPeriod: "semester"}
	if got := FormatTuition(paid); got != "€1500/semester" {
		t.Errorf("FormatTuition(paid) = %q", got)
	}
	if got := FormatTuition(models.Course{TuitionModel: models.TuitionFree}); got != "free" {
		t.Errorf("FormatTuition(free) = %q", got)
	}
	if got := FormatDuration(models.Course{DurationSemesters: 4}); got != "4 semesters" {
		t.Errorf("FormatDuration(4) = %q", got)
	}
	if got := FormatLocation(models.Course{City: "Berlin, Potsdam"}); got != "Berlin, Potsdam" {
		t.Errorf("FormatLocation = %q", got)
	}
	if got := FormatDeadline(deadline.Info{Status: deadline.StatusPassed, Text: "15.07.2024"}); got != "passed (15.07.2024)" {
		t.Errorf("FormatDeadline(passed) = %q", got)
	}
	if got := BandMarker(deadline.Band{Priority: 4}); got != "[4]" {
		t.Errorf("BandMarker = %q", got)
	}
}

func TestValidators(t *testing.T) {
	if err := ValidateOutputFormat("yaml"); err != nil {
		t.Errorf("ValidateOutputFormat(yaml) = %v", err)
	}
	if err := ValidateOutputFormat("csv"); err == nil {
		t.Error("Expected error for csv")
	}
	if s, err := ValidateSeason("Winter"); err != nil || s != models.SeasonWinter {
		t.Errorf("ValidateSeason(Winter) = %v, %v", s, err)
	}
	if _, _, err := ValidateSort("fame", "asc"); err == nil || !strings.Contains(err.Error(), "deadline") {
		t.Errorf("ValidateSort(fame) error = %v, want list of keys", err)
	}
	if k, o, err := ValidateSort("Tuition", "DESC"); err != nil || k != models.SortTuition || o != models.SortDesc {
		t.Errorf("ValidateSort(Tuition, DESC) = %v, %v, %v", k, o, err)
	}
	if err := ValidatePageSize(0); err == nil {
		t.Error("Expected error for page size 0")
	}
	if err := ValidateCategory("business"); err != nil {
		t.Errorf("ValidateCategory(business) = %v", err)
	}
	if err := ValidateCategory("medicine"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestPrintHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)
	defer SetGlobalFlags(false, false)

	SetGlobalFlags(false, true)
	PrintInfo("loaded %d courses", 3)
	PrintWarning("slow")
	if out.String() != "INFO: loaded 3 courses\n" {
		t.Errorf("PrintInfo wrote %q", out.String())
	}
	if errOut.String() != "WARNING: slow\n" {
		t.Errorf("PrintWarning wrote %q", errOut.String())
	}

	out.Reset()
	SetGlobalFlags(true, true)
	PrintSuccess("done")
	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
}

func TestCommandContextLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "courses.json")
	courses := []models.Course{
		{ID: "a", CourseName: "Physics", DeadlineSummer: "15.07.2025"},
		{ID: "b", CourseName: "Chemistry"},
	}
	if err := files.WriteCatalog(data, courses); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	config := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(config, []byte("log:\n  level: error\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx := NewCommandContext(config, data, "2025-08-01")
	cat, err := ctx.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog has %d courses, want 2", cat.Len())
	}

	want := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local)
	if got := cat.Deadlines().Today(); !got.Equal(want) {
		t.Errorf("Today() = %v, want %v", got, want)
	}
	if info := cat.Deadlines().ForSeason(courses[0], models.SeasonSummer); info.Status != deadline.StatusPassed {
		t.Errorf("deadline status = %s, want passed", info.Status)
	}

	again, err := ctx.LoadCatalog(context.Background())
	if err != nil || again != cat {
		t.Error("LoadCatalog should return the cached catalog")
	}
}

func TestCommandContextErrors(t *testing.T) {
	ctx := NewCommandContext("", "", "01.08.2025")
	if _, err := ctx.Clock(); err == nil {
		t.Error("Expected error for malformed --today")
	}

	ctx = NewCommandContext(filepath.Join(t.TempDir(), "missing.yaml"), "", "")
	if _, err := ctx.LoadSettings(); err == nil {
		t.Error("Expected error for missing explicit config")
	}
	settings := ctx.LoadSettingsWithDefault()
	if settings.Display.PageSize != models.DefaultPageSize {
		t.Errorf("default page size = %d", settings.Display.PageSize)
	}

	ctx = NewCommandContext("", filepath.Join(t.TempDir(), "none.json"), "")
	ctx.Settings = models.DefaultSettings()
	ctx.Settings.Data.Path = ctx.DataPath
	if _, err := ctx.LoadCatalog(context.Background()); err == nil {
		t.Error("Expected error for missing dataset")
	}
}
