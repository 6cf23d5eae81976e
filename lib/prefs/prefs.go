// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package prefs persists the dashboard's cosmetic state — active tab,
// split ratio, fuzzy-search toggle — in a hand-editable JSONC file.
// Comments in the file survive nothing (saves rewrite it as plain
// JSON), but loads accept them so operators can annotate. Preferences
// are best-effort: a missing or unparseable file yields defaults.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Prefs is the dashboard's remembered cosmetic state.
type Prefs struct {
	// ActiveTab is the resource tab shown on launch.
	ActiveTab string `json:"activeTab,omitempty"`

	// SplitRatio is the list/detail split as a fraction of the list
	// pane, clamped to [0.2, 0.8] on load.
	SplitRatio float64 `json:"splitRatio,omitempty"`

	// FuzzySearch toggles fuzzy matching in the search bar;
	// substring matching is the default.
	FuzzySearch bool `json:"fuzzySearch,omitempty"`

	// ShowStale toggles the stale-data banner when a reload fails.
	ShowStale *bool `json:"showStale,omitempty"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		ActiveTab:  "notices",
		SplitRatio: 0.4,
	}
}

// StaleBannerEnabled reports whether the stale-data banner should
// render after a failed reload. Unset means enabled.
func (prefs Prefs) StaleBannerEnabled() bool {
	return prefs.ShowStale == nil || *prefs.ShowStale
}

// Load reads preferences from path. Missing or malformed files yield
// the defaults; only genuine I/O failures (permissions, bad media)
// surface as errors.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading preferences: %w", err)
	}

	loaded := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), &loaded); err != nil {
		return Default(), nil
	}
	return loaded.clamped(), nil
}

// Save writes preferences to path, creating parent directories as
// needed.
func Save(path string, prefs Prefs) error {
	data, err := json.MarshalIndent(prefs.clamped(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

func (prefs Prefs) clamped() Prefs {
	if prefs.SplitRatio < 0.2 || prefs.SplitRatio > 0.8 {
		prefs.SplitRatio = Default().SplitRatio
	}
	if prefs.ActiveTab == "" {
		prefs.ActiveTab = Default().ActiveTab
	}
	return prefs
}
