// Package session owns the live CurriculumState for one tracker session.
// The controller is the single writer: every mutation flows through
// Dispatch, which runs the reducer and then persists the accepted result.
// It is not safe for concurrent use and does not need to be: dispatch is
// synchronous and one action at a time.
package session

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/alexanderramin/coursetrack/internal/domain"
	"github.com/alexanderramin/coursetrack/internal/progress"
	"github.com/alexanderramin/coursetrack/internal/state"
	"github.com/alexanderramin/coursetrack/internal/storage"
)

// Controller holds the live state and coordinates the reducer with the
// persistence adapter.
type Controller struct {
	store *storage.Adapter
	seed  domain.CurriculumState
	live  domain.CurriculumState
}

// NewController creates a controller over the given persistence adapter.
func NewController(store *storage.Adapter) *Controller {
	return &Controller{store: store}
}

// Start initializes the live state from the catalog seed, overlaid with any
// usable stored record. A missing or corrupt record silently falls back to
// the seed with zero progress.
func (c *Controller) Start(ctx context.Context, seed domain.CurriculumState) {
	c.seed = seed.Clone()

	base := seed
	if loaded := c.store.Load(ctx, seed); loaded != nil {
		base = *loaded
	}
	c.live = progress.RecomputeAll(base)
}

// Dispatch applies one action. When the reducer accepts it, the resulting
// state becomes live and is persisted before the next action can run. A
// failed save is non-fatal: the in-memory state stays valid and the next
// accepted action retries persistence naturally.
func (c *Controller) Dispatch(ctx context.Context, a state.Action) domain.CurriculumState {
	next := state.Reduce(c.live, a)
	if reflect.DeepEqual(next, c.live) {
		return c.State()
	}

	c.live = next
	if !c.store.Save(ctx, c.live) {
		slog.Warn("saving curriculum state failed, keeping in-memory state", "action", a.Type)
	}
	return c.State()
}

// State returns a read-only snapshot of the live tree.
func (c *Controller) State() domain.CurriculumState {
	return c.live.Clone()
}

// Statistics returns the derived summary report for the live tree.
func (c *Controller) Statistics() progress.Report {
	return progress.Compute(c.live)
}

// StoreInfo reports persistence diagnostics.
func (c *Controller) StoreInfo(ctx context.Context) storage.Info {
	return c.store.GetInfo(ctx)
}

// Reset clears the stored record and restores the seed with zero progress.
// Returns false when the record could not be removed; the in-memory reset
// happens regardless.
func (c *Controller) Reset(ctx context.Context) bool {
	cleared := c.store.Clear(ctx)
	c.live = progress.RecomputeAll(c.seed)
	return cleared
}
