package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func twoWeekState() CurriculumState {
	start := testStart
	return CurriculumState{
		Weeks: []Week{
			{
				ID:    1,
				Title: "Week 1: Foundations",
				Courses: []Course{
					{ID: "c1", Name: "Intro", StartDate: &start, Completed: true},
					{ID: "c2", Name: "Setup"},
				},
			},
			{
				ID:    2,
				Title: "Week 2: Basics",
				Courses: []Course{
					{ID: "c3", Name: "Types"},
				},
			},
		},
	}
}

func TestClone_SharesNoMemory(t *testing.T) {
	s := twoWeekState()
	c := s.Clone()

	c.Weeks[0].Courses[0].Completed = false
	c.Weeks[0].Courses[0].Name = "changed"
	*c.Weeks[0].Courses[0].StartDate = testStart.AddDate(0, 0, 7)
	c.Weeks[1].Courses = append(c.Weeks[1].Courses, Course{ID: "c4"})

	assert.True(t, s.Weeks[0].Courses[0].Completed)
	assert.Equal(t, "Intro", s.Weeks[0].Courses[0].Name)
	assert.Equal(t, testStart, *s.Weeks[0].Courses[0].StartDate)
	assert.Len(t, s.Weeks[1].Courses, 1)
}

func TestClone_NilDatesStayNil(t *testing.T) {
	s := twoWeekState()
	c := s.Clone()
	assert.Nil(t, c.Weeks[0].Courses[1].StartDate)
	assert.Nil(t, c.Weeks[0].Courses[1].EndDate)
}

func TestFindWeek(t *testing.T) {
	s := twoWeekState()
	assert.Equal(t, 0, s.FindWeek(1))
	assert.Equal(t, 1, s.FindWeek(2))
	assert.Equal(t, -1, s.FindWeek(999))
}

func TestFindCourse(t *testing.T) {
	s := twoWeekState()
	w := s.Weeks[0]
	assert.Equal(t, 1, w.FindCourse("c2"))
	assert.Equal(t, -1, w.FindCourse("missing"))
}

func TestCourseCounts(t *testing.T) {
	s := twoWeekState()
	require.Equal(t, 3, s.TotalCourses())
	assert.Equal(t, 1, s.CompletedCourses())
	assert.Equal(t, 1, s.Weeks[0].CompletedCount())
	assert.Equal(t, 0, s.Weeks[1].CompletedCount())
}
