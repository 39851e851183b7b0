package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// probeKey is a throwaway key written and removed before every operation to
// confirm the store is usable. When the probe fails, each operation returns
// its documented failure value instead of surfacing the backend error.
const probeKey = "coursetrack.probe"

// Adapter round-trips a CurriculumState through a single versioned record
// under domain.StorageKey. All failures are absorbed here: Save and Clear
// report success as a bool, Load reports absence as nil, Info never fails.
type Adapter struct {
	kv  KV
	key string
	now func() time.Time
}

// NewAdapter creates an Adapter over the given store.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{
		kv:  kv,
		key: domain.StorageKey,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Info is the read-only introspection report.
type Info struct {
	HasData     bool
	Version     string
	LastUpdated string
	Size        int
}

// Save converts state to its durable form and overwrites the stored record
// wholesale. On a quota-exceeded write it removes the existing record and
// retries once. Returns false on any failure; the in-memory state is
// unaffected either way.
func (a *Adapter) Save(ctx context.Context, s domain.CurriculumState) bool {
	if !a.available(ctx) {
		return false
	}

	data, err := json.Marshal(a.toRecord(s))
	if err != nil {
		slog.Warn("serializing curriculum record failed", "error", err)
		return false
	}

	err = a.kv.Set(ctx, a.key, data)
	if errors.Is(err, ErrQuotaExceeded) {
		slog.Warn("store quota exceeded, clearing record and retrying once")
		if delErr := a.kv.Delete(ctx, a.key); delErr != nil {
			return false
		}
		err = a.kv.Set(ctx, a.key, data)
	}
	if err != nil {
		slog.Warn("writing curriculum record failed", "error", err)
		return false
	}
	return true
}

// Load reads the stored record and overlays its per-course fields onto a
// copy of seed. Returns nil when no usable record exists: absent key, bad
// JSON, structural violation, or schema version mismatch. Corrupt and
// stale-version records are deleted so they cannot fail every future load.
//
// Weeks and courses missing from the record keep their seed defaults;
// record entries with no matching seed course are ignored; the catalog,
// not the stored record, defines the canonical course set. Derived progress
// fields are NOT recomputed here; callers run the result through the
// progress engine.
func (a *Adapter) Load(ctx context.Context, seed domain.CurriculumState) *domain.CurriculumState {
	if !a.available(ctx) {
		return nil
	}

	data, err := a.kv.Get(ctx, a.key)
	if err != nil {
		return nil
	}

	if err := validateRecordBytes(data); err != nil {
		slog.Warn("deleting corrupted curriculum record", "error", err)
		_ = a.kv.Delete(ctx, a.key)
		return nil
	}

	var rec domain.StoredRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("deleting undecodable curriculum record", "error", err)
		_ = a.kv.Delete(ctx, a.key)
		return nil
	}

	if rec.Version != domain.SchemaVersion {
		slog.Warn("deleting curriculum record with stale schema version",
			"got", rec.Version, "want", domain.SchemaVersion)
		_ = a.kv.Delete(ctx, a.key)
		return nil
	}

	out := overlay(seed, rec)
	return &out
}

// Clear removes the stored record.
func (a *Adapter) Clear(ctx context.Context) bool {
	if !a.available(ctx) {
		return false
	}
	return a.kv.Delete(ctx, a.key) == nil
}

// GetInfo reports whether a record exists and its metadata. It never fails:
// any backend or decode problem reads as "no data".
func (a *Adapter) GetInfo(ctx context.Context) Info {
	if !a.available(ctx) {
		return Info{}
	}
	data, err := a.kv.Get(ctx, a.key)
	if err != nil {
		return Info{}
	}
	var rec domain.StoredRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Info{}
	}
	return Info{
		HasData:     true,
		Version:     rec.Version,
		LastUpdated: rec.LastUpdated,
		Size:        len(data),
	}
}

func (a *Adapter) available(ctx context.Context) bool {
	if err := a.kv.Set(ctx, probeKey, []byte("1")); err != nil {
		return false
	}
	if err := a.kv.Delete(ctx, probeKey); err != nil {
		return false
	}
	return true
}

func (a *Adapter) toRecord(s domain.CurriculumState) domain.StoredRecord {
	curriculum := make(map[string]map[string]domain.CourseRecord, len(s.Weeks))
	for i := range s.Weeks {
		w := &s.Weeks[i]
		weekRec := make(map[string]domain.CourseRecord, len(w.Courses))
		for j := range w.Courses {
			c := &w.Courses[j]
			weekRec[c.ID] = domain.CourseRecord{
				StartDate: formatDate(c.StartDate),
				EndDate:   formatDate(c.EndDate),
				Completed: c.Completed,
			}
		}
		curriculum[strconv.Itoa(w.ID)] = weekRec
	}
	return domain.StoredRecord{
		Version:     domain.SchemaVersion,
		LastUpdated: a.now().Format(time.RFC3339),
		Curriculum:  curriculum,
	}
}

func overlay(seed domain.CurriculumState, rec domain.StoredRecord) domain.CurriculumState {
	out := seed.Clone()
	for i := range out.Weeks {
		w := &out.Weeks[i]
		weekRec, found := rec.Curriculum[strconv.Itoa(w.ID)]
		if !found {
			continue
		}
		for j := range w.Courses {
			c := &w.Courses[j]
			courseRec, found := weekRec[c.ID]
			if !found {
				continue
			}
			c.Completed = courseRec.Completed
			c.StartDate = parseDate(courseRec.StartDate)
			c.EndDate = parseDate(courseRec.EndDate)
		}
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
