package examples

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/coursefinder/pkg/files"
)

func TestGetExamples(t *testing.T) {
	for _, category := range []string{"engineering", "business", "humanities"} {
		sets := GetExamples(category)
		if len(sets) == 0 {
			t.Errorf("GetExamples(%q) returned no sets", category)
		}
		for _, set := range sets {
			if set.Category != category {
				t.Errorf("set %q has category %q, want %q", set.Name, set.Category, category)
			}
		}
	}

	all := Courses("all")
	if want := len(Courses("engineering")) + len(Courses("business")) + len(Courses("humanities")); len(all) != want {
		t.Errorf("Courses(all) = %d courses, want %d", len(all), want)
	}

	if got := GetExamples("nope"); len(got) != 0 {
		t.Errorf("GetExamples(nope) = %v, want empty", got)
	}
}

func TestCourseIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Courses("all") {
		if c.ID == "" {
			t.Errorf("course %q has no id", c.CourseName)
		}
		if seen[c.ID] {
			t.Errorf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.json")

	n, err := Install(path, "business", false)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	if n != len(Courses("business")) {
		t.Errorf("Install wrote %d courses, want %d", n, len(Courses("business")))
	}

	courses, err := files.LoadCatalog(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(courses) != n {
		t.Errorf("Loaded %d courses, want %d", len(courses), n)
	}

	if _, err := Install(path, "all", false); err == nil {
		t.Error("Expected error when catalog exists without force")
	}

	if _, err := Install(path, "all", true); err != nil {
		t.Errorf("Install with force failed: %v", err)
	}

	if _, err := Install(filepath.Join(t.TempDir(), "x.json"), "nope", false); err == nil {
		t.Error("Expected error for unknown category")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("catalog missing after install: %v", err)
	}
}
