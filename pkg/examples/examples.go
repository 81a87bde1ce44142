// Package examples ships small sample catalogs for trying the tool without
// a real dataset
package examples

import (
	"fmt"
	"os"

	"github.com/pluqqy/coursefinder/pkg/files"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// ExampleSet represents a collection of related sample courses
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Courses     []models.Course
}

// Categories lists the valid categories, "all" included
var Categories = []string{"engineering", "business", "humanities", "all"}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "engineering":
		return withCategory(getEngineeringExamples(), "engineering")
	case "business":
		return withCategory(getBusinessExamples(), "business")
	case "humanities":
		return withCategory(getHumanitiesExamples(), "humanities")
	case "all":
		var all []ExampleSet
		all = append(all, GetExamples("engineering")...)
		all = append(all, GetExamples("business")...)
		all = append(all, GetExamples("humanities")...)
		return all
	default:
		return []ExampleSet{}
	}
}

// Courses flattens the example sets of a category into one catalog
func Courses(category string) []models.Course {
	var courses []models.Course
	for _, set := range GetExamples(category) {
		courses = append(courses, set.Courses...)
	}
	return courses
}

// Install writes the sample catalog of a category to path. An existing file
// is only replaced when force is set. It returns the number of courses
// written.
func Install(path, category string, force bool) (int, error) {
	courses := Courses(category)
	if len(courses) == 0 {
		return 0, fmt.Errorf("no examples in category '%s'", category)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return 0, fmt.Errorf("catalog already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := files.WriteCatalog(path, courses); err != nil {
		return 0, err
	}
	return len(courses), nil
}

func withCategory(sets []ExampleSet, category string) []ExampleSet {
	for i := range sets {
		sets[i].Category = category
	}
	return sets
}
