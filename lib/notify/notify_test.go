// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"
	"testing"
	"time"
)

func TestPostAndActive(t *testing.T) {
	queue := New()
	queue.Success("Donor updated")
	queue.Failure("Duplicate entry")

	active := queue.Active()
	if len(active) != 2 {
		t.Fatalf("Active = %d notices, want 2", len(active))
	}
	if active[0].Level != Success || active[0].Message != "Donor updated" {
		t.Errorf("first notice = %+v", active[0])
	}
	if active[1].Level != Error || active[1].Message != "Duplicate entry" {
		t.Errorf("second notice = %+v", active[1])
	}
}

func TestEmptyMessageIgnored(t *testing.T) {
	queue := New()
	queue.Post(Info, "")
	if len(queue.Active()) != 0 {
		t.Error("empty message must not enqueue")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	queue := New()
	for i := 0; i < DefaultCapacity+3; i++ {
		queue.Success(fmt.Sprintf("notice %d", i))
	}
	active := queue.Active()
	if len(active) != DefaultCapacity {
		t.Fatalf("Active = %d, want capacity %d", len(active), DefaultCapacity)
	}
	if active[0].Message != "notice 3" {
		t.Errorf("oldest surviving = %q, want notice 3", active[0].Message)
	}
	if active[len(active)-1].Message != fmt.Sprintf("notice %d", DefaultCapacity+2) {
		t.Errorf("newest = %q", active[len(active)-1].Message)
	}
}

func TestExpiry(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	queue := New().WithTTL(3 * time.Second).WithClock(func() time.Time { return current })

	queue.Success("first")
	current = current.Add(2 * time.Second)
	queue.Success("second")

	if got := len(queue.Active()); got != 2 {
		t.Fatalf("Active = %d, want both before expiry", got)
	}

	current = current.Add(1500 * time.Millisecond)
	active := queue.Active()
	if len(active) != 1 || active[0].Message != "second" {
		t.Errorf("Active = %+v, want only the newer notice", active)
	}

	current = current.Add(5 * time.Second)
	if got := len(queue.Active()); got != 0 {
		t.Errorf("Active = %d after everything expired, want 0", got)
	}
}

func TestNextExpiry(t *testing.T) {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	queue := New().WithTTL(4 * time.Second).WithClock(func() time.Time { return current })

	if _, ok := queue.NextExpiry(); ok {
		t.Error("NextExpiry on an empty queue must report false")
	}
	queue.Success("toast")
	expiry, ok := queue.NextExpiry()
	if !ok {
		t.Fatal("NextExpiry must report true with an active notice")
	}
	if want := current.Add(4 * time.Second); !expiry.Equal(want) {
		t.Errorf("NextExpiry = %v, want %v", expiry, want)
	}
}

func TestClear(t *testing.T) {
	queue := New()
	queue.Success("gone")
	queue.Clear()
	if len(queue.Active()) != 0 {
		t.Error("Clear must drop all notices")
	}
}

func TestConcurrentPostNeverBlocks(t *testing.T) {
	queue := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				queue.Post(Info, fmt.Sprintf("worker %d message %d", n, j))
			}
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if got := len(queue.Active()); got > DefaultCapacity {
		t.Errorf("Active = %d, want at most %d", got, DefaultCapacity)
	}
}
