// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package listctrl

import (
	"context"
	"errors"
	"testing"
)

func TestInitialPhaseIdle(t *testing.T) {
	controller := New[string](nil)
	snapshot := controller.Snapshot()
	if snapshot.Phase != Idle {
		t.Errorf("Phase = %v, want Idle", snapshot.Phase)
	}
	if len(snapshot.Items) != 0 || snapshot.Err != nil || snapshot.Stale {
		t.Errorf("unexpected initial snapshot: %+v", snapshot)
	}
}

func TestSuccessfulLoad(t *testing.T) {
	controller := New[string](nil)
	err := controller.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	snapshot := controller.Snapshot()
	if snapshot.Phase != Ready {
		t.Errorf("Phase = %v, want Ready", snapshot.Phase)
	}
	if len(snapshot.Items) != 2 {
		t.Errorf("Items = %v", snapshot.Items)
	}
}

func TestFirstLoadFailureLeavesEmpty(t *testing.T) {
	controller := New[string](nil)
	loadErr := errors.New("connection refused")
	err := controller.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, loadErr
	})
	if !errors.Is(err, loadErr) {
		t.Fatalf("Load = %v, want the fetch error", err)
	}
	snapshot := controller.Snapshot()
	if snapshot.Phase != Failed {
		t.Errorf("Phase = %v, want Failed", snapshot.Phase)
	}
	if len(snapshot.Items) != 0 {
		t.Errorf("Items = %v, want empty before any success", snapshot.Items)
	}
	if snapshot.Stale {
		t.Error("Stale must be false when nothing was ever loaded")
	}
}

func TestFailedReloadKeepsStaleItems(t *testing.T) {
	controller := New[string](nil)
	ctx := context.Background()
	if err := controller.Load(ctx, func(ctx context.Context) ([]string, error) {
		return []string{"kept"}, nil
	}); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	reloadErr := errors.New("timeout")
	if err := controller.Load(ctx, func(ctx context.Context) ([]string, error) {
		return nil, reloadErr
	}); !errors.Is(err, reloadErr) {
		t.Fatalf("reload = %v, want the fetch error", err)
	}
	snapshot := controller.Snapshot()
	if snapshot.Phase != Failed {
		t.Errorf("Phase = %v, want Failed", snapshot.Phase)
	}
	if len(snapshot.Items) != 1 || snapshot.Items[0] != "kept" {
		t.Errorf("Items = %v, want the previous load preserved", snapshot.Items)
	}
	if !snapshot.Stale {
		t.Error("Stale must be true: items survive a failed reload")
	}
	if !errors.Is(snapshot.Err, reloadErr) {
		t.Errorf("Err = %v, want the reload error", snapshot.Err)
	}
}

func TestSupersededFetchDiscarded(t *testing.T) {
	controller := New[string](nil)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	slowDone := make(chan error, 1)
	go func() {
		slowDone <- controller.Load(ctx, func(ctx context.Context) ([]string, error) {
			close(started)
			<-release
			return []string{"stale"}, nil
		})
	}()

	// The fetch only runs after the load claimed its generation.
	<-started

	if err := controller.Load(ctx, func(ctx context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	}); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	close(release)
	if err := <-slowDone; err != nil {
		t.Fatalf("superseded Load must return nil, got %v", err)
	}

	snapshot := controller.Snapshot()
	if snapshot.Phase != Ready {
		t.Errorf("Phase = %v, want Ready", snapshot.Phase)
	}
	if len(snapshot.Items) != 1 || snapshot.Items[0] != "fresh" {
		t.Errorf("Items = %v, want only the newer load's result", snapshot.Items)
	}
}

func TestSeedPaintsBeforeFirstLoad(t *testing.T) {
	controller := New[string](nil)
	controller.Seed([]string{"cached"})

	snapshot := controller.Snapshot()
	if snapshot.Phase != Idle {
		t.Errorf("Phase = %v, want Idle: a seed is not a load", snapshot.Phase)
	}
	if len(snapshot.Items) != 1 || snapshot.Items[0] != "cached" {
		t.Errorf("Items = %v, want the seeded snapshot", snapshot.Items)
	}
	if snapshot.Stale {
		t.Error("Stale must be false for seeded data")
	}
}

func TestSeedDiscardedOnFirstLoadFailure(t *testing.T) {
	controller := New[string](nil)
	controller.Seed([]string{"cached"})

	loadErr := errors.New("connection refused")
	_ = controller.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, loadErr
	})

	snapshot := controller.Snapshot()
	if len(snapshot.Items) != 0 {
		t.Errorf("Items = %v, want the seed discarded: cached data is not server truth", snapshot.Items)
	}
	if snapshot.Stale {
		t.Error("Stale must be false: no load ever succeeded")
	}
}

func TestSeedIgnoredAfterLoad(t *testing.T) {
	controller := New[string](nil)
	if err := controller.Load(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"server"}, nil
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	controller.Seed([]string{"cached"})
	if items := controller.Items(); len(items) != 1 || items[0] != "server" {
		t.Errorf("Items = %v, want the loaded data untouched", items)
	}
}

func TestAllLoadsConcurrently(t *testing.T) {
	donors := New[string](nil)
	stats := New[int](nil)

	// Each fetch blocks until the other has started; All must run
	// them in parallel or this deadlocks the test timeout.
	donorsStarted := make(chan struct{})
	statsStarted := make(chan struct{})

	err := All(context.Background(),
		Bind(donors, func(ctx context.Context) ([]string, error) {
			close(donorsStarted)
			<-statsStarted
			return []string{"d-1"}, nil
		}),
		Bind(stats, func(ctx context.Context) ([]int, error) {
			close(statsStarted)
			<-donorsStarted
			return []int{42}, nil
		}),
	)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if donors.Phase() != Ready || stats.Phase() != Ready {
		t.Errorf("phases = %v, %v, want Ready, Ready", donors.Phase(), stats.Phase())
	}
}

func TestAllReportsFirstFailureIndependently(t *testing.T) {
	good := New[string](nil)
	bad := New[string](nil)
	fetchErr := errors.New("boom")

	err := All(context.Background(),
		Bind(good, func(ctx context.Context) ([]string, error) {
			return []string{"ok"}, nil
		}),
		Bind(bad, func(ctx context.Context) ([]string, error) {
			return nil, fetchErr
		}),
	)
	if !errors.Is(err, fetchErr) {
		t.Fatalf("All = %v, want the fetch error", err)
	}
	if good.Phase() != Ready {
		t.Errorf("good.Phase = %v, want Ready despite sibling failure", good.Phase())
	}
	if bad.Phase() != Failed {
		t.Errorf("bad.Phase = %v, want Failed", bad.Phase())
	}
}
