package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
name: Test Track
weeks:
  - id: 1
    title: "Week 1"
    courses:
      - id: a
        name: Alpha
      - id: b
        name: Beta
  - id: 2
    title: "Week 2"
    courses:
      - id: c
        name: Gamma
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	c, err := Load(writeCatalog(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "Test Track", c.Name)
	require.Len(t, c.Weeks, 2)
	assert.Equal(t, "Week 1", c.Weeks[0].Title)
	assert.Len(t, c.Weeks[0].Courses, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeCatalog(t, "weeks: [unclosed"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c := &Catalog{
		Weeks: []WeekSeed{
			{ID: 0, Title: "", Courses: []CourseSeed{
				{ID: "", Name: ""},
				{ID: "dup", Name: "One"},
				{ID: "dup", Name: "Two"},
			}},
			{ID: 1, Title: "ok"},
			{ID: 1, Title: "dup week"},
		},
	}
	errs := Validate(c)
	require.NotEmpty(t, errs)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := ""
	for _, m := range msgs {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "weeks[0].id must be a positive integer")
	assert.Contains(t, joined, "weeks[0].title is required")
	assert.Contains(t, joined, `weeks[0].courses[0].id is required`)
	assert.Contains(t, joined, `weeks[0].courses[0].name is required`)
	assert.Contains(t, joined, `duplicate course id "dup"`)
	assert.Contains(t, joined, "duplicate week id 1")
}

func TestValidate_EmptyCatalog(t *testing.T) {
	errs := Validate(&Catalog{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no weeks")
}

func TestLoadOrDefault(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Weeks)

	c, err = LoadOrDefault(writeCatalog(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "Test Track", c.Name)
}

func TestDefault_IsValid(t *testing.T) {
	assert.Empty(t, Validate(Default()))
}

func TestSeedState(t *testing.T) {
	c, err := Load(writeCatalog(t, validYAML))
	require.NoError(t, err)

	s := c.SeedState()
	require.Len(t, s.Weeks, 2)
	assert.Equal(t, 1, s.Weeks[0].ID)
	assert.Equal(t, "Alpha", s.Weeks[0].Courses[0].Name)
	assert.Equal(t, 0, s.OverallProgress)
	for _, w := range s.Weeks {
		assert.Equal(t, 0, w.Progress)
		for _, course := range w.Courses {
			assert.False(t, course.Completed)
			assert.Nil(t, course.StartDate)
			assert.Nil(t, course.EndDate)
		}
	}
}
