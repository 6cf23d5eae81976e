// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package mutate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/carewell-health/carewell/lib/api"
)

type recordingSink struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (sink *recordingSink) Success(message string) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.successes = append(sink.successes, message)
}

func (sink *recordingSink) Failure(message string) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.failures = append(sink.failures, message)
}

func acceptAll(string) (bool, error)  { return true, nil }
func declineAll(string) (bool, error) { return false, nil }

func TestDispatchSuccessReloadsAndToasts(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := New(sink, nil)
	var reloaded bool

	err := dispatcher.Dispatch(context.Background(), Op{
		Action:  func(ctx context.Context) error { return nil },
		Reload:  func(ctx context.Context) error { reloaded = true; return nil },
		Success: "Notice deleted",
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !reloaded {
		t.Error("reload must run after a successful mutation")
	}
	if len(sink.successes) != 1 || sink.successes[0] != "Notice deleted" {
		t.Errorf("successes = %v", sink.successes)
	}
	if len(sink.failures) != 0 {
		t.Errorf("failures = %v, want none", sink.failures)
	}
}

func TestDispatchFailureSkipsReloadAndSurfacesServerMessage(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := New(sink, nil)
	var reloaded bool

	err := dispatcher.Dispatch(context.Background(), Op{
		Action: func(ctx context.Context) error {
			return &api.ServerError{StatusCode: 409, Message: "Duplicate entry"}
		},
		Reload:  func(ctx context.Context) error { reloaded = true; return nil },
		Success: "Created",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if reloaded {
		t.Error("reload must not run after a failed mutation")
	}
	if len(sink.failures) != 1 || sink.failures[0] != "Duplicate entry" {
		t.Errorf("failures = %v, want the server message verbatim", sink.failures)
	}
	if len(sink.successes) != 0 {
		t.Errorf("successes = %v, want none", sink.successes)
	}
}

func TestInFlightGuard(t *testing.T) {
	dispatcher := New(nil, nil)
	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- dispatcher.Dispatch(context.Background(), Op{
			Action: func(ctx context.Context) error {
				close(started)
				<-release
				return nil
			},
		})
	}()
	<-started

	var secondRan bool
	err := dispatcher.Dispatch(context.Background(), Op{
		Action: func(ctx context.Context) error { secondRan = true; return nil },
	})
	if !errors.Is(err, ErrBusy) {
		t.Errorf("second Dispatch = %v, want ErrBusy", err)
	}
	if secondRan {
		t.Error("second action must not run while the first is in flight")
	}

	close(release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first Dispatch: %v", err)
	}

	// Guard releases once the first dispatch completes.
	if err := dispatcher.Dispatch(context.Background(), Op{
		Action: func(ctx context.Context) error { return nil },
	}); err != nil {
		t.Errorf("Dispatch after release: %v", err)
	}
}

func TestDestructiveDeclinedSendsNothing(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := New(sink, nil)
	var acted, reloaded bool

	err := dispatcher.DispatchDestructive(context.Background(), ConfirmFunc(declineAll), "Delete notice n-1?", Op{
		Action: func(ctx context.Context) error { acted = true; return nil },
		Reload: func(ctx context.Context) error { reloaded = true; return nil },
	})
	if !errors.Is(err, ErrDeclined) {
		t.Errorf("err = %v, want ErrDeclined", err)
	}
	if acted || reloaded {
		t.Error("declining the confirmation must send nothing and reload nothing")
	}
	if len(sink.successes)+len(sink.failures) != 0 {
		t.Errorf("no toast expected, got %v / %v", sink.successes, sink.failures)
	}
}

func TestDestructiveConfirmedProceeds(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := New(sink, nil)
	var acted bool

	err := dispatcher.DispatchDestructive(context.Background(), ConfirmFunc(acceptAll), "Delete notice n-1?", Op{
		Action:  func(ctx context.Context) error { acted = true; return nil },
		Success: "Notice deleted",
	})
	if err != nil {
		t.Fatalf("DispatchDestructive: %v", err)
	}
	if !acted {
		t.Error("confirmed destructive action must run")
	}
	if len(sink.successes) != 1 {
		t.Errorf("successes = %v", sink.successes)
	}
}

func TestBulkClearsSelectionRegardless(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := New(sink, nil)
	selection := NewSelection()
	selection.Toggle("a")
	selection.Toggle("b")
	selection.Toggle("c")

	result, err := dispatcher.DispatchBulk(context.Background(), selection,
		func(ctx context.Context, id string) error {
			if id == "b" {
				return errors.New("conflict")
			}
			return nil
		},
		nil,
	)
	if err == nil {
		t.Fatal("expected joined failure")
	}
	if result.Succeeded != 2 || result.Failed != 1 {
		t.Errorf("result = %+v, want 2 succeeded, 1 failed", result)
	}
	if selection.Len() != 0 {
		t.Error("selection must be cleared even when some actions failed")
	}
	if len(sink.failures) != 1 || sink.failures[0] != "2 updated, 1 failed" {
		t.Errorf("failures = %v", sink.failures)
	}
}

func TestBulkRunsInSelectionOrder(t *testing.T) {
	dispatcher := New(nil, nil)
	selection := NewSelection()
	selection.Toggle("first")
	selection.Toggle("second")
	selection.Toggle("third")
	selection.Toggle("second") // deselect

	var order []string
	var reloaded bool
	result, err := dispatcher.DispatchBulk(context.Background(), selection,
		func(ctx context.Context, id string) error {
			order = append(order, id)
			return nil
		},
		func(ctx context.Context) error { reloaded = true; return nil },
	)
	if err != nil {
		t.Fatalf("DispatchBulk: %v", err)
	}
	if result.Succeeded != 2 {
		t.Errorf("result = %+v", result)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Errorf("order = %v, want [first third]", order)
	}
	if !reloaded {
		t.Error("reload must run after successful bulk actions")
	}
}

func TestSelectionToggle(t *testing.T) {
	selection := NewSelection()
	if !selection.Toggle("x") {
		t.Error("first toggle must select")
	}
	if !selection.Selected("x") {
		t.Error("Selected must report true after toggle on")
	}
	if selection.Toggle("x") {
		t.Error("second toggle must deselect")
	}
	if selection.Len() != 0 {
		t.Errorf("Len = %d, want 0", selection.Len())
	}
}
