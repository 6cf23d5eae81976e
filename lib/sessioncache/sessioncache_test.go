// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package sessioncache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type noticeSnapshot struct {
	ID    string `cbor:"id"`
	Title string `cbor:"title"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cache := New(t.TempDir())
	saved := []noticeSnapshot{
		{ID: "n-1", Title: "Visiting hours"},
		{ID: "n-2", Title: "Flu season"},
	}
	if err := cache.Save("notices", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var loaded []noticeSnapshot
	savedAt, err := cache.Load("notices", &loaded)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Title != "Visiting hours" {
		t.Errorf("loaded = %+v", loaded)
	}
	if time.Since(savedAt) > time.Minute {
		t.Errorf("savedAt = %v, want roughly now", savedAt)
	}
}

func TestMissingSnapshotIsMiss(t *testing.T) {
	cache := New(t.TempDir())
	var loaded []noticeSnapshot
	if _, err := cache.Load("never-saved", &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("Load = %v, want ErrMiss", err)
	}
}

func TestCorruptSnapshotIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir)
	if err := cache.Save("notices", []noticeSnapshot{{ID: "n-1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := filepath.Join(dir, "notices.snap")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Flip a bit in the compressed payload; the digest must catch it.
	data[len(data)-1] ^= 0x01
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var loaded []noticeSnapshot
	if _, err := cache.Load("notices", &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("Load of corrupted snapshot = %v, want ErrMiss", err)
	}
}

func TestTruncatedSnapshotIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir)
	if err := cache.Save("events", []noticeSnapshot{{ID: "e-1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path := filepath.Join(dir, "events.snap")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)/2], 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var loaded []noticeSnapshot
	if _, err := cache.Load("events", &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("Load of truncated snapshot = %v, want ErrMiss", err)
	}
}

func TestUnknownFormatIsMiss(t *testing.T) {
	dir := t.TempDir()
	cache := New(dir)
	if err := os.WriteFile(filepath.Join(dir, "notices.snap"), []byte("CWSNAP9\nnot a real snapshot"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var loaded []noticeSnapshot
	if _, err := cache.Load("notices", &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("Load of unknown format = %v, want ErrMiss", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	cache := New(t.TempDir())
	if err := cache.Save("notices", []noticeSnapshot{{ID: "old"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := cache.Save("notices", []noticeSnapshot{{ID: "new"}}); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	var loaded []noticeSnapshot
	if _, err := cache.Load("notices", &loaded); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "new" {
		t.Errorf("loaded = %+v, want the overwritten snapshot", loaded)
	}
}

func TestLoadWithinExpiry(t *testing.T) {
	cache := New(t.TempDir())
	if err := cache.Save("notices", []noticeSnapshot{{ID: "n-1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var loaded []noticeSnapshot
	if _, err := cache.LoadWithin("notices", time.Hour, &loaded); err != nil {
		t.Errorf("fresh snapshot within an hour = %v", err)
	}
	if _, err := cache.LoadWithin("notices", -time.Second, &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("expired snapshot = %v, want ErrMiss", err)
	}
}

func TestInvalidateIdempotent(t *testing.T) {
	cache := New(t.TempDir())
	if err := cache.Save("notices", []noticeSnapshot{{ID: "n-1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := cache.Invalidate("notices"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if err := cache.Invalidate("notices"); err != nil {
		t.Errorf("second Invalidate: %v", err)
	}
	var loaded []noticeSnapshot
	if _, err := cache.Load("notices", &loaded); !errors.Is(err, ErrMiss) {
		t.Errorf("Load after Invalidate = %v, want ErrMiss", err)
	}
}
