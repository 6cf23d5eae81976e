// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "prefs.jsonc"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != Default() {
		t.Errorf("loaded = %+v, want defaults", loaded)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	saved := Prefs{ActiveTab: "donors", SplitRatio: 0.55, FuzzySearch: true}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ActiveTab != "donors" || loaded.SplitRatio != 0.55 || !loaded.FuzzySearch {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadAcceptsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	content := `{
  // remembered across sessions
  "activeTab": "feedback",
  "splitRatio": 0.3, /* wider detail pane */
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ActiveTab != "feedback" || loaded.SplitRatio != 0.3 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestMalformedFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	if err := os.WriteFile(path, []byte("{{{{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != Default() {
		t.Errorf("loaded = %+v, want defaults", loaded)
	}
}

func TestSplitRatioClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	if err := os.WriteFile(path, []byte(`{"splitRatio": 0.95}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SplitRatio != Default().SplitRatio {
		t.Errorf("SplitRatio = %v, want the default after clamping", loaded.SplitRatio)
	}
}

func TestStaleBannerDefaultsEnabled(t *testing.T) {
	if !Default().StaleBannerEnabled() {
		t.Error("unset showStale must enable the banner")
	}

	path := filepath.Join(t.TempDir(), "prefs.jsonc")
	if err := os.WriteFile(path, []byte(`{"showStale": false}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.StaleBannerEnabled() {
		t.Error("showStale: false must disable the banner")
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "prefs.jsonc")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}
