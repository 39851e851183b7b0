package state

import (
	"time"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// ActionType names a state transition. The set is closed; unknown types are
// ignored by the reducer rather than treated as errors, so newer action
// kinds can never crash an older session.
type ActionType string

const (
	SetStartDate     ActionType = "SET_START_DATE"
	SetEndDate       ActionType = "SET_END_DATE"
	ToggleCompletion ActionType = "TOGGLE_COMPLETION"
	LoadData         ActionType = "LOAD_DATA"
)

// Action is a payload-carrying request to mutate the curriculum tree.
// Week IDs are positive; WeekID <= 0 means the field is absent.
type Action struct {
	Type     ActionType
	WeekID   int
	CourseID string

	// Date is the payload for SetStartDate / SetEndDate.
	Date *time.Time

	// Data is the payload for LoadData: a full replacement tree.
	Data *domain.CurriculumState
}
