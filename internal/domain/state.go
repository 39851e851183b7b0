package domain

// CurriculumState is the aggregate root: the full tree of weeks plus the
// derived overall completion percentage. The session controller owns the
// live instance and replaces it wholesale on every accepted transition;
// nothing mutates a state in place.
type CurriculumState struct {
	Weeks           []Week
	OverallProgress int
}

// Clone returns a deep copy of the entire tree.
func (s *CurriculumState) Clone() CurriculumState {
	out := CurriculumState{OverallProgress: s.OverallProgress}
	out.Weeks = make([]Week, len(s.Weeks))
	for i := range s.Weeks {
		out.Weeks[i] = s.Weeks[i].Clone()
	}
	return out
}

// FindWeek returns the index of the week with the given ID, or -1.
func (s *CurriculumState) FindWeek(weekID int) int {
	for i := range s.Weeks {
		if s.Weeks[i].ID == weekID {
			return i
		}
	}
	return -1
}

// TotalCourses counts courses across all weeks.
func (s *CurriculumState) TotalCourses() int {
	n := 0
	for i := range s.Weeks {
		n += len(s.Weeks[i].Courses)
	}
	return n
}

// CompletedCourses counts completed courses across all weeks.
func (s *CurriculumState) CompletedCourses() int {
	n := 0
	for i := range s.Weeks {
		n += s.Weeks[i].CompletedCount()
	}
	return n
}
