// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package mutate runs write operations against the API and owns the
// ceremony around them: a single in-flight guard so double-submits
// cannot race, a confirmation gate in front of destructive actions,
// reload-on-success so the screen always shows server truth, and
// toast posting on both outcomes. Screens and CLI commands hand the
// dispatcher closures; it never touches records itself.
package mutate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/carewell-health/carewell/lib/api"
)

// ErrBusy is returned when a dispatch is refused because another
// mutation is still in flight.
var ErrBusy = errors.New("another operation is still in progress")

// ErrDeclined is returned when the user answers no at a destructive
// confirmation. Nothing was sent; callers treat it as a quiet no-op.
var ErrDeclined = errors.New("declined")

// Sink receives outcome toasts. *notify.Queue satisfies it.
type Sink interface {
	Success(message string)
	Failure(message string)
}

// Confirmer asks the user before a destructive action proceeds.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Op is one mutation plus its follow-up.
type Op struct {
	// Action performs the write. Required.
	Action func(ctx context.Context) error
	// Reload refreshes the affected collection after a successful
	// write. Optional.
	Reload func(ctx context.Context) error
	// Success is the toast posted when the write lands.
	Success string
}

// Dispatcher serializes mutations. One dispatcher serves one screen
// or command invocation.
type Dispatcher struct {
	sink     Sink
	logger   *slog.Logger
	inflight atomic.Bool
}

// New returns a dispatcher posting outcomes to sink. A nil sink
// drops toasts; a nil logger discards.
func New(sink Sink, logger *slog.Logger) *Dispatcher {
	if sink == nil {
		sink = discardSink{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{sink: sink, logger: logger}
}

// Busy reports whether a mutation is currently in flight.
func (dispatcher *Dispatcher) Busy() bool {
	return dispatcher.inflight.Load()
}

// Dispatch runs one mutation. While it is in flight every further
// dispatch returns [ErrBusy] without sending anything. On success the
// reload runs and the success toast posts; on failure the server's
// message, when present, is posted verbatim and the collection is
// left as it was.
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, op Op) error {
	if !dispatcher.inflight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer dispatcher.inflight.Store(false)

	if err := op.Action(ctx); err != nil {
		dispatcher.logger.Warn("mutation failed", "error", err)
		dispatcher.sink.Failure(api.UserMessage(err))
		return err
	}
	if op.Success != "" {
		dispatcher.sink.Success(op.Success)
	}
	if op.Reload != nil {
		if err := op.Reload(ctx); err != nil {
			dispatcher.logger.Warn("reload after mutation failed", "error", err)
			dispatcher.sink.Failure(api.UserMessage(err))
			return fmt.Errorf("reloading after change: %w", err)
		}
	}
	return nil
}

// DispatchDestructive asks for confirmation first and only then
// dispatches. A declined prompt returns [ErrDeclined] with nothing
// sent and nothing reloaded.
func (dispatcher *Dispatcher) DispatchDestructive(ctx context.Context, confirm Confirmer, prompt string, op Op) error {
	ok, err := confirm.Confirm(prompt)
	if err != nil {
		return fmt.Errorf("confirming: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	return dispatcher.Dispatch(ctx, op)
}

// BulkResult summarizes a bulk dispatch.
type BulkResult struct {
	Succeeded int
	Failed    int
}

// DispatchBulk applies one action per selected identifier,
// sequentially, continuing past individual failures. The selection is
// cleared regardless of outcome so a retry starts from an explicit
// re-selection. The reload runs when at least one action landed. The
// returned error joins the per-identifier failures, or nil when all
// succeeded.
func (dispatcher *Dispatcher) DispatchBulk(ctx context.Context, selection *Selection, action func(ctx context.Context, id string) error, reload func(ctx context.Context) error) (BulkResult, error) {
	if !dispatcher.inflight.CompareAndSwap(false, true) {
		return BulkResult{}, ErrBusy
	}
	defer dispatcher.inflight.Store(false)

	ids := selection.IDs()
	selection.Clear()

	var result BulkResult
	var failures []error
	for _, id := range ids {
		if err := action(ctx, id); err != nil {
			result.Failed++
			failures = append(failures, fmt.Errorf("%s: %w", id, err))
			dispatcher.logger.Warn("bulk action failed", "id", id, "error", err)
			continue
		}
		result.Succeeded++
	}

	switch {
	case result.Failed == 0 && result.Succeeded > 0:
		dispatcher.sink.Success(fmt.Sprintf("%d updated", result.Succeeded))
	case result.Failed > 0:
		dispatcher.sink.Failure(fmt.Sprintf("%d updated, %d failed", result.Succeeded, result.Failed))
	}

	if result.Succeeded > 0 && reload != nil {
		if err := reload(ctx); err != nil {
			dispatcher.logger.Warn("reload after bulk action failed", "error", err)
			failures = append(failures, fmt.Errorf("reloading: %w", err))
		}
	}
	return result, errors.Join(failures...)
}

type discardSink struct{}

func (discardSink) Success(string) {}
func (discardSink) Failure(string) {}

// ConfirmFunc adapts a function to [Confirmer].
type ConfirmFunc func(prompt string) (bool, error)

// Confirm implements [Confirmer].
func (confirm ConfirmFunc) Confirm(prompt string) (bool, error) {
	return confirm(prompt)
}
