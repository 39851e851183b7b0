package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/coursetrack/internal/domain"
	"github.com/alexanderramin/coursetrack/internal/progress"
	"github.com/alexanderramin/coursetrack/internal/storage"
)

// FormatStatus renders the overall summary plus one line per week.
func FormatStatus(s domain.CurriculumState, r progress.Report) string {
	var b strings.Builder

	b.WriteString(Header("Curriculum Status"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Overall  %s   %d/%d courses complete\n\n",
		RenderProgress(r.OverallPct, 20), r.CompletedCourses, r.TotalCourses))

	for i := range s.Weeks {
		w := &s.Weeks[i]
		b.WriteString(fmt.Sprintf("%-28s %s  %s\n",
			w.Title, RenderProgress(w.Progress, 12), WeekIndicator(w.Progress)))
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("weeks: %d done, %d in progress, %d not started",
		r.CompletedWeeks, r.InProgressWeeks, r.NotStartedWeeks)))
	b.WriteString("\n")

	return b.String()
}

// FormatWeeks renders every course grouped by week, with completion marks
// and any start/end dates.
func FormatWeeks(s domain.CurriculumState) string {
	var b strings.Builder

	for i := range s.Weeks {
		w := &s.Weeks[i]
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(w.Title), RenderProgress(w.Progress, 12)))

		for j := range w.Courses {
			c := &w.Courses[j]
			mark := Dim("[ ]")
			if c.Completed {
				mark = StyleGreen.Render("[x]")
			}
			b.WriteString(fmt.Sprintf("  %s %-30s %-16s %s\n",
				mark, c.Name, Dim(CourseID(w.ID, c.ID)), Dim(courseDates(c))))
		}
	}

	return b.String()
}

// FormatInfo renders storage diagnostics.
func FormatInfo(info storage.Info) string {
	if !info.HasData {
		return "no saved progress\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("saved record:  %s\n", Bold("present")))
	b.WriteString(fmt.Sprintf("version:       %s\n", info.Version))
	b.WriteString(fmt.Sprintf("last updated:  %s\n", info.LastUpdated))
	b.WriteString(fmt.Sprintf("size:          %d bytes\n", info.Size))
	return b.String()
}

func courseDates(c *domain.Course) string {
	start, end := "", ""
	if c.StartDate != nil {
		start = c.StartDate.Format(domain.DateLayout)
	}
	if c.EndDate != nil {
		end = c.EndDate.Format(domain.DateLayout)
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " →"
	case start == "":
		return "→ " + end
	default:
		return start + " → " + end
	}
}

// CourseID renders the stable identifier used on the command line.
func CourseID(weekID int, courseID string) string {
	return fmt.Sprintf("%d/%s", weekID, courseID)
}
