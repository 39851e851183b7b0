package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithCompleted() CourseOption {
	return func(c *domain.Course) {
		c.Completed = true
	}
}

func WithStartDate(d time.Time) CourseOption {
	return func(c *domain.Course) {
		c.StartDate = &d
	}
}

func WithEndDate(d time.Time) CourseOption {
	return func(c *domain.Course) {
		c.EndDate = &d
	}
}

func WithCourseID(id string) CourseOption {
	return func(c *domain.Course) {
		c.ID = id
	}
}

// NewTestCourse builds a course with a generated unique ID.
func NewTestCourse(name string, opts ...CourseOption) domain.Course {
	c := domain.Course{
		ID:   uuid.New().String(),
		Name: name,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestWeek builds a week around the given courses.
func NewTestWeek(id int, title string, courses ...domain.Course) domain.Week {
	return domain.Week{ID: id, Title: title, Courses: courses}
}

// NewTestState builds a curriculum tree from weeks. Derived progress fields
// are left at zero; run the result through the progress engine when a test
// needs them populated.
func NewTestState(weeks ...domain.Week) domain.CurriculumState {
	return domain.CurriculumState{Weeks: weeks}
}
