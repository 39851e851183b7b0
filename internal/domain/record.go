package domain

// SchemaVersion is the stored record schema version. A record whose version
// does not match is treated as absent.
const SchemaVersion = "1.0.0"

// StorageKey is the single key the tracker persists its record under.
const StorageKey = "curriculum-progress-tracker"

// CourseRecord is the durable per-course payload. Absent dates are omitted
// from the serialized form entirely.
type CourseRecord struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Completed bool    `json:"completed"`
}

// StoredRecord is the versioned durable representation of a CurriculumState.
// Curriculum is keyed by week-ID string, then course ID. The record is
// overwritten wholesale on every save; there is no incremental diff.
type StoredRecord struct {
	Version     string                             `json:"version"`
	LastUpdated string                             `json:"lastUpdated"`
	Curriculum  map[string]map[string]CourseRecord `json:"curriculum"`
}
