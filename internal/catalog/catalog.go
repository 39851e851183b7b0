// Package catalog supplies the fixed week/course seed the tracker is built
// around. The catalog, not the stored record, defines the canonical course
// set: persisted progress is overlaid onto the seed by week and course ID,
// so IDs must stay stable for the lifetime of a record.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// CourseSeed is one catalog course entry.
type CourseSeed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// WeekSeed is one catalog week entry.
type WeekSeed struct {
	ID      int          `yaml:"id"`
	Title   string       `yaml:"title"`
	Courses []CourseSeed `yaml:"courses"`
}

// Catalog is the full curriculum seed.
type Catalog struct {
	Name  string     `yaml:"name"`
	Weeks []WeekSeed `yaml:"weeks"`
}

// Load reads and validates a catalog YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if errs := Validate(&c); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, errors.Join(errs...))
	}

	slog.Info("catalog loaded", "path", path, "weeks", len(c.Weeks))
	return &c, nil
}

// LoadOrDefault loads the catalog at path, or returns the built-in default
// curriculum when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the catalog structure and returns all problems found.
func Validate(c *Catalog) []error {
	var errs []error

	if len(c.Weeks) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no weeks"))
	}

	weekIDs := make(map[int]bool)
	for i, w := range c.Weeks {
		prefix := fmt.Sprintf("weeks[%d]", i)

		if w.ID <= 0 {
			errs = append(errs, fmt.Errorf("%s.id must be a positive integer", prefix))
		} else if weekIDs[w.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate week id %d", prefix, w.ID))
		} else {
			weekIDs[w.ID] = true
		}

		if w.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}

		courseIDs := make(map[string]bool)
		for j, course := range w.Courses {
			cPrefix := fmt.Sprintf("%s.courses[%d]", prefix, j)
			if course.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", cPrefix))
			} else if courseIDs[course.ID] {
				errs = append(errs, fmt.Errorf("%s.id: duplicate course id %q", cPrefix, course.ID))
			} else {
				courseIDs[course.ID] = true
			}
			if course.Name == "" {
				errs = append(errs, fmt.Errorf("%s.name is required", cPrefix))
			}
		}
	}

	return errs
}

// SeedState builds the zero-progress CurriculumState for this catalog.
func (c *Catalog) SeedState() domain.CurriculumState {
	s := domain.CurriculumState{Weeks: make([]domain.Week, len(c.Weeks))}
	for i, w := range c.Weeks {
		week := domain.Week{
			ID:      w.ID,
			Title:   w.Title,
			Courses: make([]domain.Course, len(w.Courses)),
		}
		for j, course := range w.Courses {
			week.Courses[j] = domain.Course{ID: course.ID, Name: course.Name}
		}
		s.Weeks[i] = week
	}
	return s
}
