// Package storage persists the curriculum tree as a single versioned JSON
// record in a local key-value store. Every environment failure is absorbed
// at the adapter boundary and converted to a boolean or nil return; nothing
// past this package ever sees a storage error.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded classifies a write that failed because the backing
	// store is out of space. The adapter retries such writes once after
	// clearing the existing record.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// KV is the minimal key-value surface the persistence adapter needs. The
// production implementation is SQLite-backed; tests inject in-memory and
// failure-injecting stores.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
