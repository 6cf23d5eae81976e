// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/carewell-health/carewell/lib/listctrl"
	"github.com/carewell-health/carewell/lib/tui"
)

// renderList draws the list pane: one row per visible record with a
// status badge, selection marker, and search-match highlighting, plus
// a scrollbar column on the right edge.
func (model Model) renderList(width, height int) string {
	state := model.screen()
	snapshot := state.controller.Snapshot()

	rowWidth := width - 1 // Reserve the scrollbar column.
	if rowWidth < 4 {
		rowWidth = 4
	}

	rows := make([]string, 0, height)
	switch {
	case snapshot.Phase == listctrl.Loading && !state.loadedOnce:
		rows = append(rows, lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(" Loading "+strings.ToLower(state.spec.Name)+"…"))

	case snapshot.Phase == listctrl.Failed && !snapshot.Stale:
		rows = append(rows, lipgloss.NewStyle().
			Foreground(model.theme.ToastError).
			Render(" "+userMessage(snapshot.Err)))

	case len(state.visible) == 0:
		text := " No " + strings.ToLower(state.spec.Name) + "."
		if state.filters.Active() {
			text = " No matches."
		}
		rows = append(rows, lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(text))

	default:
		end := state.scrollOffset + height
		if end > len(state.visible) {
			end = len(state.visible)
		}
		for index := state.scrollOffset; index < end; index++ {
			rows = append(rows, model.renderRow(state, index, rowWidth))
		}
	}

	for len(rows) < height {
		rows = append(rows, "")
	}

	scrollbar := tui.RenderScrollbar(model.theme, height,
		len(state.visible), height, state.scrollOffset,
		model.focus == FocusList)

	list := lipgloss.NewStyle().Width(rowWidth).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, scrollbar)
}

// renderRow draws one record row: cursor marker, bulk-selection
// marker, status badge, title, then the meta text right-padded in
// faint.
func (model Model) renderRow(state *screenState, index, width int) string {
	record := state.visible[index]
	isCursor := index == state.cursor

	marker := "  "
	if isCursor {
		marker = "> "
	}

	selected := " "
	if state.selection.Selected(record.ID) {
		selected = "▌"
	}

	badge := ""
	if record.Status != "" {
		badge = lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(record.Status)).
			Render("● ")
	}

	title := model.highlightMatch(record.Title, state.filters.Query())
	meta := ""
	if record.Meta != "" {
		meta = lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("  " + record.Meta)
	}

	row := marker + selected + badge + title + meta
	if ansi.StringWidth(row) > width {
		row = ansi.Truncate(row, width-1, "…")
	}

	if isCursor {
		pad := width - ansi.StringWidth(row)
		if pad > 0 {
			row += strings.Repeat(" ", pad)
		}
		return lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Render(ansi.Strip(row))
	}
	return row
}

// highlightMatch emphasizes where the search query matches a title.
// With fuzzy search enabled the fzf match positions are highlighted
// individually; otherwise the first substring occurrence is.
func (model Model) highlightMatch(title, query string) string {
	if query == "" {
		return title
	}
	highlight := lipgloss.NewStyle().Background(model.theme.SearchHighlightBackground)

	if model.preferences.FuzzySearch {
		result := tui.FuzzyMatch(title, []rune(query), model.slab)
		if result.Score <= 0 || len(result.Positions) == 0 {
			return title
		}
		positions := make(map[int]bool, len(result.Positions))
		for _, position := range result.Positions {
			positions[position] = true
		}
		var out strings.Builder
		for index, r := range []rune(title) {
			if positions[index] {
				out.WriteString(highlight.Render(string(r)))
			} else {
				out.WriteRune(r)
			}
		}
		return out.String()
	}

	start := strings.Index(strings.ToLower(title), strings.ToLower(query))
	if start < 0 {
		return title
	}
	end := start + len(query)
	return title[:start] + highlight.Render(title[start:end]) + title[end:]
}

// listStatusLine summarizes the list for the filter bar: counts, the
// active filters, and the load phase.
func (model Model) listStatusLine() string {
	state := model.screen()
	snapshot := state.controller.Snapshot()

	parts := []string{fmt.Sprintf("%d/%d", len(state.visible), len(snapshot.Items))}

	for _, filter := range state.spec.Filters {
		if value := state.filters.Value(filter.Name); value != "" {
			parts = append(parts, filter.Label+"="+value)
		}
	}
	if query := state.filters.Query(); query != "" {
		parts = append(parts, "/"+query)
	}
	if snapshot.Phase == listctrl.Loading {
		parts = append(parts, "reloading…")
	}
	return strings.Join(parts, "  ")
}
