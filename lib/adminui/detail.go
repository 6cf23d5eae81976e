// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/carewell-health/carewell/lib/tui"
)

// renderDetail draws the detail pane for the record under the cursor:
// the title, its label/value fields, then the markdown body rendered
// to ANSI. The pane scrolls independently of the list.
func (model Model) renderDetail(width, height int) string {
	state := model.screen()

	contentWidth := width - 3 // Border column + padding + scrollbar.
	if contentWidth < 10 {
		contentWidth = 10
	}

	record, ok := state.selected()
	if !ok {
		empty := lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render(" Nothing selected.")
		return model.frameDetail([]string{empty}, width, height, 0, 1)
	}

	var lines []string

	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(ansi.Truncate(record.Title, contentWidth, "…"))
	lines = append(lines, title)

	if record.Status != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(record.Status)).
			Render("● "+record.Status))
	}
	lines = append(lines, "")

	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	for _, field := range record.Fields {
		if field.Value == "" {
			continue
		}
		line := labelStyle.Render(field.Label+": ") + field.Value
		if ansi.StringWidth(line) > contentWidth {
			line = ansi.Truncate(line, contentWidth-1, "…")
		}
		lines = append(lines, line)
	}

	if record.Body != "" {
		lines = append(lines, "")
		rendered := renderTerminalMarkdown(record.Body, model.theme, contentWidth)
		lines = append(lines, strings.Split(strings.TrimRight(rendered, "\n"), "\n")...)
	}

	// Clamp the scroll so the last page stays full.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if state.detailScroll > maxScroll {
		state.detailScroll = maxScroll
	}

	total := len(lines)
	visible := lines
	if state.detailScroll < len(visible) {
		visible = visible[state.detailScroll:]
	} else {
		visible = nil
	}
	if len(visible) > height {
		visible = visible[:height]
	}

	return model.frameDetail(visible, width, height, state.detailScroll, total)
}

// frameDetail pads the detail lines to the pane height and attaches
// the border and scrollbar columns.
func (model Model) frameDetail(lines []string, width, height, scrollOffset, total int) string {
	border := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render("│")

	rows := make([]string, height)
	for index := range rows {
		line := ""
		if index < len(lines) {
			line = lines[index]
		}
		rows[index] = border + " " + line
	}

	scrollbar := tui.RenderScrollbar(model.theme, height, total, height,
		scrollOffset, model.focus == FocusDetail)
	body := lipgloss.NewStyle().Width(width - 1).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, body, scrollbar)
}
