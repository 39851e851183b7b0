package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/coursetrack/internal/state"
	"github.com/alexanderramin/coursetrack/internal/storage"
	"github.com/alexanderramin/coursetrack/internal/testutil"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(storage.NewAdapter(testutil.NewTestKV(t)))
}

func TestStart_FreshStore(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)

	seed := testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1",
			testutil.NewTestCourse("Intro", testutil.WithCourseID("c1")),
			testutil.NewTestCourse("Setup", testutil.WithCourseID("c2")),
		),
	)
	c.Start(ctx, seed)

	got := c.State()
	assert.Equal(t, 0, got.OverallProgress)
	assert.False(t, c.StoreInfo(ctx).HasData, "start alone writes nothing")
}

func TestDispatch_PersistsAcceptedActions(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestKV(t)
	adapter := storage.NewAdapter(kv)

	seed := testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1",
			testutil.NewTestCourse("Intro", testutil.WithCourseID("c1")),
			testutil.NewTestCourse("Setup", testutil.WithCourseID("c2")),
		),
	)

	c := NewController(adapter)
	c.Start(ctx, seed)
	got := c.Dispatch(ctx, state.Action{Type: state.ToggleCompletion, WeekID: 1, CourseID: "c1"})

	assert.Equal(t, 50, got.OverallProgress)
	assert.True(t, c.StoreInfo(ctx).HasData)

	// A fresh controller over the same store restores the progress.
	c2 := NewController(storage.NewAdapter(kv))
	c2.Start(ctx, seed)
	restored := c2.State()
	assert.True(t, restored.Weeks[0].Courses[0].Completed)
	assert.Equal(t, 50, restored.OverallProgress)
}

func TestDispatch_NoOpDoesNotSave(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1", testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"))),
	))

	got := c.Dispatch(ctx, state.Action{Type: state.ToggleCompletion, WeekID: 999, CourseID: "c1"})
	assert.Equal(t, c.State(), got)
	assert.False(t, c.StoreInfo(ctx).HasData, "rejected action must not touch the store")
}

func TestDispatch_SetDates(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1", testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"))),
	))

	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	got := c.Dispatch(ctx, state.Action{Type: state.SetStartDate, WeekID: 1, CourseID: "c1", Date: &start})
	require.NotNil(t, got.Weeks[0].Courses[0].StartDate)
	assert.Equal(t, start, *got.Weeks[0].Courses[0].StartDate)
}

func TestDispatch_SaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	c := NewController(storage.NewAdapter(testutil.BrokenKV{Err: errors.New("disk detached")}))
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1", testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"))),
	))

	got := c.Dispatch(ctx, state.Action{Type: state.ToggleCompletion, WeekID: 1, CourseID: "c1"})
	assert.True(t, got.Weeks[0].Courses[0].Completed, "failed save never reverts the transition")
	assert.Equal(t, 100, got.OverallProgress)
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1",
			testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"), testutil.WithCompleted()),
			testutil.NewTestCourse("Setup", testutil.WithCourseID("c2")),
		),
	))

	r := c.Statistics()
	assert.Equal(t, 2, r.TotalCourses)
	assert.Equal(t, 1, r.CompletedCourses)
	assert.Equal(t, 1, r.InProgressWeeks)
	assert.Equal(t, 50, r.OverallPct)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1", testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"))),
	))

	c.Dispatch(ctx, state.Action{Type: state.ToggleCompletion, WeekID: 1, CourseID: "c1"})
	require.True(t, c.StoreInfo(ctx).HasData)

	assert.True(t, c.Reset(ctx))
	assert.False(t, c.StoreInfo(ctx).HasData)
	got := c.State()
	assert.False(t, got.Weeks[0].Courses[0].Completed)
	assert.Equal(t, 0, got.OverallProgress)
}

func TestState_ReturnsIndependentSnapshot(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t)
	c.Start(ctx, testutil.NewTestState(
		testutil.NewTestWeek(1, "Week 1", testutil.NewTestCourse("Intro", testutil.WithCourseID("c1"))),
	))

	snap := c.State()
	snap.Weeks[0].Courses[0].Completed = true
	assert.False(t, c.State().Weeks[0].Courses[0].Completed, "snapshot edits must not leak back")
}
