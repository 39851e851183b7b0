package domain

import "time"

// DateLayout is the calendar-day format used everywhere a course date is
// parsed, rendered, or persisted. Course dates carry no time-of-day meaning
// beyond midnight normalization.
const DateLayout = "2006-01-02"

// Course is a leaf unit of curriculum work.
type Course struct {
	ID        string
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
	Completed bool
}

// Clone returns a deep copy. Date pointers are re-allocated so the copy
// shares no memory with the original.
func (c *Course) Clone() Course {
	out := *c
	out.StartDate = cloneTime(c.StartDate)
	out.EndDate = cloneTime(c.EndDate)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
