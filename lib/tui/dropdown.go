// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	Value string // Wire value sent to the API on selection.
}

// DropdownOverlay renders a floating menu anchored at a screen
// position. It captures all keyboard input when active (up/down to
// navigate, enter to select, escape to dismiss). The screen model
// owns the dropdown instance and routes input to it when focus is
// set. Filter values and status transitions both go through one of
// these.
type DropdownOverlay struct {
	Title    string // Optional heading above the options ("Blood group", "Status").
	Options  []DropdownOption
	Cursor   int
	AnchorX  int    // Screen X coordinate of the dropdown's top-left corner.
	AnchorY  int    // Screen Y coordinate of the dropdown's top-left corner.
	Field    string // Which field this dropdown mutates (e.g., "status", "role").
	RecordID string // The record being mutated.
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the currently highlighted option.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// headingRows is 1 when a title line is drawn above the options.
func (dropdown *DropdownOverlay) headingRows() int {
	if dropdown.Title != "" {
		return 1
	}
	return 0
}

// innerWidth is the content width: the widest of the title and the
// marker-prefixed option labels.
func (dropdown *DropdownOverlay) innerWidth() int {
	width := ansi.StringWidth(dropdown.Title)
	for _, option := range dropdown.Options {
		if w := 2 + ansi.StringWidth(option.Label); w > width {
			width = w
		}
	}
	return width
}

// Width returns the total visible width of the rendered dropdown in
// columns. This matches the width used by Render and is needed for
// mouse hit-testing.
func (dropdown *DropdownOverlay) Width() int {
	return dropdown.innerWidth() + 2
}

// Contains returns true if the screen coordinate (x, y) falls within
// the dropdown's bounding rectangle, heading included.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	height := dropdown.headingRows() + len(dropdown.Options)
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+height {
		return false
	}
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+dropdown.Width()
}

// OptionAtY returns the option index corresponding to the given
// screen Y coordinate, or -1 when the coordinate is outside the
// option rows (the heading line selects nothing).
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY - dropdown.headingRows()
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces the dropdown lines for overlay splicing: the faint
// heading when set, then one row per option. Every line has the same
// visible width with a solid background; the highlighted option uses
// the selection colors across its full row.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	innerWidth := dropdown.innerWidth()
	totalWidth := innerWidth + 2

	background := lipgloss.NewStyle().Background(theme.OverlayBackground)
	headingStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.FaintText)
	optionStyle := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.OverlayForeground)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, dropdown.headingRows()+len(dropdown.Options))
	if dropdown.Title != "" {
		lines = append(lines, PadOverlayLine(
			headingStyle.Render(dropdown.Title), innerWidth, totalWidth, background))
	}
	for index, option := range dropdown.Options {
		if index == dropdown.Cursor {
			lines = append(lines, PadOverlayLine(
				selectedStyle.Render("> "+option.Label), innerWidth, totalWidth, selectedStyle))
			continue
		}
		lines = append(lines, PadOverlayLine(
			optionStyle.Render("  "+option.Label), innerWidth, totalWidth, background))
	}
	return lines
}
