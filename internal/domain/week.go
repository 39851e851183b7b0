package domain

// Week is an ordered grouping of courses. Progress is derived by the
// progress engine and never hand-set outside it.
type Week struct {
	ID       int
	Title    string
	Courses  []Course
	Progress int
}

// Clone returns a deep copy of the week and its courses.
func (w *Week) Clone() Week {
	out := *w
	out.Courses = make([]Course, len(w.Courses))
	for i := range w.Courses {
		out.Courses[i] = w.Courses[i].Clone()
	}
	return out
}

// FindCourse returns the index of the course with the given ID, or -1.
func (w *Week) FindCourse(courseID string) int {
	for i := range w.Courses {
		if w.Courses[i].ID == courseID {
			return i
		}
	}
	return -1
}

// CompletedCount returns the number of completed courses in the week.
func (w *Week) CompletedCount() int {
	n := 0
	for i := range w.Courses {
		if w.Courses[i].Completed {
			n++
		}
	}
	return n
}
