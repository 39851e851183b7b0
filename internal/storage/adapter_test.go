package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/coursetrack/internal/domain"
)

// memKV is an in-memory KV for adapter tests, with optional error injection
// per operation.
type memKV struct {
	data    map[string][]byte
	setErr  error
	getErr  error
	delErr  error
	setN    int // fail only the Nth Set (1-based) when setErrOn is used
	setErrN int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, found := m.data[key]
	if !found {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(ctx context.Context, key string, value []byte) error {
	m.setN++
	if m.setErr != nil {
		return m.setErr
	}
	if m.setErrN > 0 && m.setN == m.setErrN {
		return ErrQuotaExceeded
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(ctx context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

var adapterNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestAdapter(kv KV) *Adapter {
	a := NewAdapter(kv)
	a.now = func() time.Time { return adapterNow }
	return a
}

func datedState() domain.CurriculumState {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	return domain.CurriculumState{
		Weeks: []domain.Week{
			{ID: 1, Title: "Week 1", Courses: []domain.Course{
				{ID: "c1", Name: "Intro", StartDate: &start, EndDate: &end, Completed: true},
				{ID: "c2", Name: "Setup"},
			}},
			{ID: 2, Title: "Week 2", Courses: []domain.Course{
				{ID: "c3", Name: "Types", StartDate: &start},
			}},
		},
	}
}

// skeleton returns the same tree with all per-course state zeroed, the way a
// fresh catalog seed looks.
func skeleton() domain.CurriculumState {
	s := datedState()
	for i := range s.Weeks {
		for j := range s.Weeks[i].Courses {
			s.Weeks[i].Courses[j].StartDate = nil
			s.Weeks[i].Courses[j].EndDate = nil
			s.Weeks[i].Courses[j].Completed = false
		}
	}
	return s
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)

	orig := datedState()
	require.True(t, a.Save(ctx, orig))

	loaded := a.Load(ctx, skeleton())
	require.NotNil(t, loaded)

	for i := range orig.Weeks {
		for j := range orig.Weeks[i].Courses {
			want := orig.Weeks[i].Courses[j]
			got := loaded.Weeks[i].Courses[j]
			assert.Equal(t, want.Completed, got.Completed, "course %s", want.ID)
			assert.Equal(t, want.StartDate, got.StartDate, "course %s", want.ID)
			assert.Equal(t, want.EndDate, got.EndDate, "course %s", want.ID)
		}
	}
}

func TestSave_RecordShape(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)
	require.True(t, a.Save(ctx, datedState()))

	var rec domain.StoredRecord
	require.NoError(t, json.Unmarshal(kv.data[domain.StorageKey], &rec))

	assert.Equal(t, "1.0.0", rec.Version)
	assert.Equal(t, adapterNow.Format(time.RFC3339), rec.LastUpdated)

	c1 := rec.Curriculum["1"]["c1"]
	require.NotNil(t, c1.StartDate)
	assert.Equal(t, "2025-03-01", *c1.StartDate)
	assert.True(t, c1.Completed)

	// Absent dates are omitted fields, not empty strings.
	c2 := rec.Curriculum["1"]["c2"]
	assert.Nil(t, c2.StartDate)
	assert.Nil(t, c2.EndDate)
}

func TestLoad_AbsentRecord(t *testing.T) {
	a := newTestAdapter(newMemKV())
	assert.Nil(t, a.Load(context.Background(), skeleton()))
}

func TestLoad_CorruptRecordSelfHeals(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data[domain.StorageKey] = []byte("{not json at all")
	a := newTestAdapter(kv)

	assert.Nil(t, a.Load(ctx, skeleton()))
	_, hasRecord := kv.data[domain.StorageKey]
	assert.False(t, hasRecord, "corrupted record must be deleted")
	assert.False(t, a.GetInfo(ctx).HasData)
}

func TestLoad_StructuralViolationSelfHeals(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	// Well-formed JSON with a non-boolean completed flag.
	kv.data[domain.StorageKey] = []byte(`{
		"version": "1.0.0",
		"lastUpdated": "2025-06-15T10:00:00Z",
		"curriculum": {"1": {"c1": {"completed": "yes"}}}
	}`)
	a := newTestAdapter(kv)

	assert.Nil(t, a.Load(ctx, skeleton()))
	_, hasRecord := kv.data[domain.StorageKey]
	assert.False(t, hasRecord)
}

func TestLoad_VersionMismatchTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)
	require.True(t, a.Save(ctx, datedState()))

	var rec domain.StoredRecord
	require.NoError(t, json.Unmarshal(kv.data[domain.StorageKey], &rec))
	rec.Version = "0.9.0"
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	kv.data[domain.StorageKey] = data

	assert.Nil(t, a.Load(ctx, skeleton()))
	_, hasRecord := kv.data[domain.StorageKey]
	assert.False(t, hasRecord, "stale-version record must be deleted")
}

func TestLoad_UnknownEntriesIgnoredAndSeedWins(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)

	// Record knows c1 plus a course and a week the catalog no longer has.
	kv.data[domain.StorageKey] = []byte(`{
		"version": "1.0.0",
		"lastUpdated": "2025-06-15T10:00:00Z",
		"curriculum": {
			"1": {"c1": {"completed": true}, "ghost": {"completed": true}},
			"99": {"x": {"completed": true}}
		}
	}`)

	loaded := a.Load(ctx, skeleton())
	require.NotNil(t, loaded)

	assert.True(t, loaded.Weeks[0].Courses[0].Completed)
	assert.False(t, loaded.Weeks[0].Courses[1].Completed, "course absent from record keeps seed default")
	require.Len(t, loaded.Weeks, 2, "record cannot add weeks: the catalog is canonical")
	assert.Equal(t, 0, loaded.OverallProgress, "derived fields stay unrecomputed")
}

func TestSave_QuotaExceededRetriesOnce(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)
	require.True(t, a.Save(ctx, datedState()))

	// The probe Set succeeds (call 1); the record Set fails with quota
	// (call 2); the retry after delete succeeds.
	kv.setN = 0
	kv.setErrN = 2
	assert.True(t, a.Save(ctx, datedState()))
	assert.Contains(t, string(kv.data[domain.StorageKey]), `"version":"1.0.0"`)
}

func TestSave_StoreUnavailable(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk detached")
	a := newTestAdapter(kv)

	// The availability probe fails, so every operation degrades to its
	// documented failure value without surfacing the error.
	assert.False(t, a.Save(context.Background(), datedState()))
	assert.Nil(t, a.Load(context.Background(), skeleton()))
	assert.False(t, a.Clear(context.Background()))
	assert.False(t, a.GetInfo(context.Background()).HasData)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)
	require.True(t, a.Save(ctx, datedState()))
	require.True(t, a.GetInfo(ctx).HasData)

	assert.True(t, a.Clear(ctx))
	assert.False(t, a.GetInfo(ctx).HasData)
	assert.Nil(t, a.Load(ctx, skeleton()))
}

func TestGetInfo(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	a := newTestAdapter(kv)

	assert.Equal(t, Info{}, a.GetInfo(ctx))

	require.True(t, a.Save(ctx, datedState()))
	info := a.GetInfo(ctx)
	assert.True(t, info.HasData)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, adapterNow.Format(time.RFC3339), info.LastUpdated)
	assert.Equal(t, len(kv.data[domain.StorageKey]), info.Size)
}
