// Package progress derives completion percentages from course completion
// flags. Every function is a pure function of its input; derived fields are
// always replaced, never incrementally adjusted, so recomputing is idempotent.
package progress

import (
	"math"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// WeekProgress returns the week completion percentage, 0-100, rounded to the
// nearest integer. An empty course list is 0, not undefined.
func WeekProgress(courses []domain.Course) int {
	if len(courses) == 0 {
		return 0
	}
	done := 0
	for i := range courses {
		if courses[i].Completed {
			done++
		}
	}
	return pct(done, len(courses))
}

// OverallProgress returns the completion percentage over the flattened
// course set. A week with one course counts per-course, not per-week: this
// is deliberately not an average of the per-week percentages.
func OverallProgress(weeks []domain.Week) int {
	done, total := 0, 0
	for i := range weeks {
		done += weeks[i].CompletedCount()
		total += len(weeks[i].Courses)
	}
	if total == 0 {
		return 0
	}
	return pct(done, total)
}

// RecomputeAll returns a copy of s with every week's Progress and the
// overall percentage replaced by freshly derived values. The input is not
// mutated.
func RecomputeAll(s domain.CurriculumState) domain.CurriculumState {
	out := s.Clone()
	for i := range out.Weeks {
		out.Weeks[i].Progress = WeekProgress(out.Weeks[i].Courses)
	}
	out.OverallProgress = OverallProgress(out.Weeks)
	return out
}

// Report is a derived read-only summary of a state.
type Report struct {
	TotalCourses     int
	CompletedCourses int
	RemainingCourses int
	OverallPct       int

	TotalWeeks      int
	CompletedWeeks  int // progress == 100
	InProgressWeeks int // 0 < progress < 100
	NotStartedWeeks int // progress == 0, including empty weeks
}

// Compute builds a Report from the current tree. Week buckets are derived
// from fresh per-week percentages, so a stale Progress field cannot skew the
// counts.
func Compute(s domain.CurriculumState) Report {
	r := Report{TotalWeeks: len(s.Weeks)}
	for i := range s.Weeks {
		w := &s.Weeks[i]
		done := w.CompletedCount()
		r.TotalCourses += len(w.Courses)
		r.CompletedCourses += done

		switch p := WeekProgress(w.Courses); {
		case p == 100:
			r.CompletedWeeks++
		case p == 0:
			r.NotStartedWeeks++
		default:
			r.InProgressWeeks++
		}
	}
	r.RemainingCourses = r.TotalCourses - r.CompletedCourses
	r.OverallPct = OverallProgress(s.Weeks)
	return r
}

func pct(done, total int) int {
	return int(math.Round(100 * float64(done) / float64(total)))
}
