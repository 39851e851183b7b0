package testutil

import (
	"context"
	"testing"

	"github.com/alexanderramin/coursetrack/internal/storage"
)

// NewTestKV creates an in-memory SQLite key-value store, closed when the
// test completes.
func NewTestKV(t *testing.T) *storage.SQLiteKV {
	t.Helper()
	kv, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		kv.Close()
	})
	return kv
}

// BrokenKV is a KV whose every operation fails with Err. It simulates a
// storage backend that is entirely unavailable, which the persistence
// adapter must absorb without surfacing errors.
type BrokenKV struct {
	Err error
}

func (b BrokenKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, b.Err
}

func (b BrokenKV) Set(ctx context.Context, key string, value []byte) error {
	return b.Err
}

func (b BrokenKV) Delete(ctx context.Context, key string) error {
	return b.Err
}
