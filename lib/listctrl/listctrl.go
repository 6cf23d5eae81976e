// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package listctrl owns the load lifecycle of one remote collection.
// A [Controller] moves through idle, loading, and then ready or
// failed; a reload that fails keeps the previously loaded items
// visible (stale but available) instead of blanking the screen. Every
// load is generation-tagged so a response arriving after a newer load
// started is discarded rather than overwriting fresher data.
package listctrl

import (
	"context"
	"log/slog"
	"sync"
)

// Phase is the controller's position in the load lifecycle.
type Phase int

const (
	// Idle means no load has been requested yet.
	Idle Phase = iota
	// Loading means a fetch is in flight.
	Loading
	// Ready means the last completed fetch succeeded.
	Ready
	// Failed means the last completed fetch failed. Items from an
	// earlier successful fetch, if any, remain available.
	Failed
)

func (phase Phase) String() string {
	switch phase {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Fetch produces one fresh copy of the collection.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Snapshot is a consistent read of the controller's state, taken
// under the lock so a render never sees a phase from one load and
// items from another.
type Snapshot[T any] struct {
	Phase Phase
	Items []T
	Err   error
	// Stale is true when Items survive from an earlier successful
	// load while the latest one failed.
	Stale bool
}

// Controller tracks the load state of one collection. Safe for
// concurrent use; the UI reads snapshots while loads run in their own
// goroutines.
type Controller[T any] struct {
	mu         sync.Mutex
	phase      Phase
	items      []T
	err        error
	loaded     bool
	generation uint64
	logger     *slog.Logger
}

// New returns an idle controller. A nil logger discards.
func New[T any](logger *slog.Logger) *Controller[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller[T]{logger: logger}
}

// Load runs one fetch and commits the result. Starting a new load
// supersedes any load still in flight: when the older fetch finally
// returns, its result is dropped and the controller's state is left
// untouched. On failure the previous items, if any load ever
// succeeded, remain available and [Snapshot.Stale] is set.
//
// The error from a superseded fetch is not returned either; the load
// that replaced it owns the outcome.
func (controller *Controller[T]) Load(ctx context.Context, fetch Fetch[T]) error {
	controller.mu.Lock()
	controller.generation++
	generation := controller.generation
	controller.phase = Loading
	controller.mu.Unlock()

	items, err := fetch(ctx)

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if generation != controller.generation {
		controller.logger.Debug("discarding superseded fetch result",
			"generation", generation,
			"current", controller.generation,
		)
		return nil
	}
	if err != nil {
		controller.phase = Failed
		controller.err = err
		if !controller.loaded {
			controller.items = nil
		}
		return err
	}
	controller.phase = Ready
	controller.items = items
	controller.err = nil
	controller.loaded = true
	return nil
}

// Seed installs items recovered from a local snapshot before the
// first load, so a screen can paint immediately while the real fetch
// runs. The controller stays idle and unloaded: the next load still
// fetches, and a failed first fetch discards the seed rather than
// presenting cached data as stale server truth. A seed after any load
// has started is ignored.
func (controller *Controller[T]) Seed(items []T) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.generation != 0 || controller.loaded {
		return
	}
	controller.items = items
}

// Snapshot returns a consistent view of the current state. The items
// slice is shared, not copied; callers treat it as read-only.
func (controller *Controller[T]) Snapshot() Snapshot[T] {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return Snapshot[T]{
		Phase: controller.phase,
		Items: controller.items,
		Err:   controller.err,
		Stale: controller.phase == Failed && controller.loaded,
	}
}

// Phase reports the current lifecycle phase.
func (controller *Controller[T]) Phase() Phase {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.phase
}

// Items reports the most recently committed collection. Empty until
// the first successful load.
func (controller *Controller[T]) Items() []T {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.items
}

// Err reports the error from the latest completed load, or nil after
// a success.
func (controller *Controller[T]) Err() error {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.err
}

// Loader is the part of a controller a concurrent group needs; it
// lets [All] mix controllers of different record types.
type Loader interface {
	load(ctx context.Context) error
}

// Bind pairs a controller with its fetch so the pair can join a
// concurrent [All] group.
func Bind[T any](controller *Controller[T], fetch Fetch[T]) Loader {
	return boundLoader[T]{controller: controller, fetch: fetch}
}

type boundLoader[T any] struct {
	controller *Controller[T]
	fetch      Fetch[T]
}

func (bound boundLoader[T]) load(ctx context.Context) error {
	return bound.controller.Load(ctx, bound.fetch)
}

// All runs every bound load concurrently and waits for all of them.
// Each controller commits its own outcome independently; the returned
// error is the first failure observed, or nil when every load
// succeeded. A screen showing several collections uses this for its
// initial load so one slow resource does not serialize the rest.
func All(ctx context.Context, loaders ...Loader) error {
	var wait sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for _, loader := range loaders {
		wait.Add(1)
		go func() {
			defer wait.Done()
			if err := loader.load(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wait.Wait()
	return firstErr
}
