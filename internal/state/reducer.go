// Package state holds the single state-transition function for the
// curriculum tree. There are no modes and no hidden state: a transition
// either returns the input unchanged (malformed or unmatched action) or a
// new tree with derived progress freshly recomputed.
package state

import (
	"github.com/alexanderramin/coursetrack/internal/domain"
	"github.com/alexanderramin/coursetrack/internal/progress"
)

// Reduce applies an action to a state and returns the resulting state. The
// input state is never mutated. Malformed payloads (missing IDs, missing
// date, unknown week or course) are a silent no-op: the action channel is
// internal and returning the input unchanged is always safe.
//
// Reduce performs no date validation. A caller that dispatches a
// semantically invalid date (start after end) gets it stored verbatim;
// enforcement is deliberately left to the dispatch boundary, which is
// expected to run the validate package first.
func Reduce(s domain.CurriculumState, a Action) domain.CurriculumState {
	switch a.Type {
	case SetStartDate:
		return setCourseDate(s, a, true)
	case SetEndDate:
		return setCourseDate(s, a, false)
	case ToggleCompletion:
		return toggleCompletion(s, a)
	case LoadData:
		if a.Data == nil {
			return s
		}
		return progress.RecomputeAll(*a.Data)
	default:
		return s
	}
}

func setCourseDate(s domain.CurriculumState, a Action, isStart bool) domain.CurriculumState {
	if a.WeekID <= 0 || a.CourseID == "" || a.Date == nil {
		return s
	}
	wi, ci, found := locate(&s, a)
	if !found {
		return s
	}

	out := s.Clone()
	date := *a.Date
	if isStart {
		out.Weeks[wi].Courses[ci].StartDate = &date
	} else {
		out.Weeks[wi].Courses[ci].EndDate = &date
	}
	return progress.RecomputeAll(out)
}

func toggleCompletion(s domain.CurriculumState, a Action) domain.CurriculumState {
	if a.WeekID <= 0 || a.CourseID == "" {
		return s
	}
	wi, ci, found := locate(&s, a)
	if !found {
		return s
	}

	out := s.Clone()
	out.Weeks[wi].Courses[ci].Completed = !out.Weeks[wi].Courses[ci].Completed
	return progress.RecomputeAll(out)
}

func locate(s *domain.CurriculumState, a Action) (weekIdx, courseIdx int, found bool) {
	wi := s.FindWeek(a.WeekID)
	if wi < 0 {
		return 0, 0, false
	}
	ci := s.Weeks[wi].FindCourse(a.CourseID)
	if ci < 0 {
		return 0, 0, false
	}
	return wi, ci, true
}
