// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	spliced := SpliceOverlay(view, []string{"XXX"}, 2, 1)
	lines := strings.Split(spliced, "\n")
	if lines[0] != "aaaaaaaaaa" || lines[2] != "cccccccccc" {
		t.Errorf("untouched lines changed: %q", lines)
	}
	if !strings.Contains(lines[1], "XXX") {
		t.Errorf("overlay line = %q, want XXX spliced in", lines[1])
	}
	if !strings.HasPrefix(lines[1], "bb") {
		t.Errorf("overlay line = %q, want prefix preserved", lines[1])
	}
	if !strings.HasSuffix(lines[1], "bbbbb") {
		t.Errorf("overlay line = %q, want suffix preserved", lines[1])
	}
}

func TestSpliceOverlayOutOfRangeIgnored(t *testing.T) {
	view := "only line"
	spliced := SpliceOverlay(view, []string{"X", "Y", "Z"}, 0, 5)
	if spliced != view {
		t.Errorf("out-of-range overlay changed the view: %q", spliced)
	}
}

func TestSpliceOverlayEmpty(t *testing.T) {
	view := "unchanged"
	if got := SpliceOverlay(view, nil, 0, 0); got != view {
		t.Errorf("empty overlay changed the view: %q", got)
	}
}

func TestExtractExcerptSkipsBlanks(t *testing.T) {
	body := "\n\n  \nFirst real line\n\nSecond real line\nThird line"
	excerpt := ExtractExcerpt(body, 40, 2)
	if len(excerpt) != 2 {
		t.Fatalf("excerpt = %v", excerpt)
	}
	if excerpt[0] != "First real line" || excerpt[1] != "Second real line" {
		t.Errorf("excerpt = %v", excerpt)
	}
}

func TestExtractExcerptTruncates(t *testing.T) {
	excerpt := ExtractExcerpt("a very long line that exceeds the width", 10, 1)
	if len(excerpt) != 1 {
		t.Fatalf("excerpt = %v", excerpt)
	}
	if !strings.HasSuffix(excerpt[0], "…") {
		t.Errorf("truncated line = %q, want ellipsis suffix", excerpt[0])
	}
}

func TestRenderScrollbarHeights(t *testing.T) {
	bar := RenderScrollbar(DefaultTheme, 5, 100, 10, 0, true)
	if got := len(strings.Split(bar, "\n")); got != 5 {
		t.Errorf("scrollbar lines = %d, want 5", got)
	}
	if RenderScrollbar(DefaultTheme, 0, 100, 10, 0, false) != "" {
		t.Error("zero height must render nothing")
	}
}

func TestDropdownNavigationWraps(t *testing.T) {
	dropdown := DropdownOverlay{Options: []DropdownOption{
		{Label: "Registered", Value: "registered"},
		{Label: "Contacted", Value: "contacted"},
		{Label: "Completed", Value: "completed"},
	}}
	dropdown.MoveUp()
	if dropdown.Selected().Value != "completed" {
		t.Errorf("MoveUp from top = %q, want wrap to bottom", dropdown.Selected().Value)
	}
	dropdown.MoveDown()
	if dropdown.Selected().Value != "registered" {
		t.Errorf("MoveDown from bottom = %q, want wrap to top", dropdown.Selected().Value)
	}
}

func TestDropdownHitTesting(t *testing.T) {
	dropdown := DropdownOverlay{
		Title:   "Status",
		AnchorX: 10,
		AnchorY: 3,
		Options: []DropdownOption{{Label: "Open"}, {Label: "Closed"}},
	}
	// Rows: 3 heading, 4 first option, 5 second option.
	if !dropdown.Contains(11, 4) {
		t.Error("point inside the dropdown must hit")
	}
	if dropdown.Contains(11, 6) {
		t.Error("point below the dropdown must miss")
	}
	if got := dropdown.OptionAtY(3); got != -1 {
		t.Errorf("OptionAtY on the heading = %d, want -1", got)
	}
	if got := dropdown.OptionAtY(5); got != 1 {
		t.Errorf("OptionAtY = %d, want 1", got)
	}
	if got := dropdown.OptionAtY(9); got != -1 {
		t.Errorf("OptionAtY outside = %d, want -1", got)
	}
}

func TestDropdownRenderIncludesHeading(t *testing.T) {
	dropdown := DropdownOverlay{
		Title:   "Blood group",
		Options: []DropdownOption{{Label: "O+"}, {Label: "O-"}},
		Cursor:  1,
	}
	lines := dropdown.Render(DefaultTheme)
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want heading + 2 options", len(lines))
	}
	if !strings.Contains(lines[0], "Blood group") {
		t.Errorf("first line = %q, want the heading", lines[0])
	}
	if !strings.Contains(lines[2], "> O-") {
		t.Errorf("cursor line = %q, want the marked option", lines[2])
	}
	width := ansi.StringWidth(lines[0])
	for _, line := range lines[1:] {
		if ansi.StringWidth(line) != width {
			t.Errorf("ragged dropdown: %q vs %q", lines[0], line)
		}
	}
}
