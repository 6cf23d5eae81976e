// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/carewell-health/carewell/lib/notify"
	"github.com/carewell-health/carewell/lib/tui"
)

// View implements tea.Model: tab header, filter bar, split list and
// detail panes, status bar, then any active overlay spliced on top.
func (model Model) View() string {
	if !model.ready {
		return "Loading…"
	}

	state := model.screen()
	bodyHeight := model.listHeight()

	listWidth := int(float64(model.width) * model.splitRatio)
	if listWidth < 20 {
		listWidth = 20
	}
	detailWidth := model.width - listWidth
	if detailWidth < 10 {
		detailWidth = 10
	}

	header := model.renderTabs()
	filterBar := model.renderFilterBar()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		model.renderList(listWidth, bodyHeight),
		model.renderDetail(detailWidth, bodyHeight))
	statusBar := model.renderStatusBar()

	view := strings.Join([]string{header, filterBar, body, statusBar}, "\n")

	switch {
	case state.form != nil:
		view = tui.SpliceOverlay(view, model.renderForm(), 4, 2)
	case state.confirm != nil:
		view = tui.SpliceOverlay(view, model.renderConfirm(), 4, 3)
	case state.dropdown != nil:
		view = tui.SpliceOverlay(view, state.dropdown.Render(model.theme),
			state.dropdown.AnchorX, state.dropdown.AnchorY)
	}
	return view
}

// renderTabs draws the tab header with the active tab emphasized.
func (model Model) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	tabs := make([]string, 0, len(model.screens))
	for index, state := range model.screens {
		label := state.spec.Name
		if index == model.active {
			tabs = append(tabs, activeStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, inactiveStyle.Render(" "+label+" "))
		}
	}
	line := " " + strings.Join(tabs, " ")
	if ansi.StringWidth(line) > model.width {
		line = ansi.Truncate(line, model.width, "…")
	}
	return line
}

// renderFilterBar shows the record counts, active filters, search
// query, and the stale banner when the last reload failed.
func (model Model) renderFilterBar() string {
	state := model.screen()

	line := " " + model.listStatusLine()
	if model.focus == FocusSearch {
		line = " /" + string(state.searchBuffer) + "▏"
	}

	snapshot := state.controller.Snapshot()
	if snapshot.Stale && model.preferences.StaleBannerEnabled() {
		banner := lipgloss.NewStyle().
			Background(model.theme.StaleBackground).
			Foreground(model.theme.NormalText).
			Render(" showing older data — " + userMessage(snapshot.Err) + " ")
		line += "  " + banner
	}

	if ansi.StringWidth(line) > model.width {
		line = ansi.Truncate(line, model.width, "…")
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(line)
}

// renderStatusBar shows the most recent active toast, falling back to
// the key help line.
func (model Model) renderStatusBar() string {
	notices := model.toasts.Active()
	if len(notices) > 0 {
		latest := notices[len(notices)-1]
		color := model.theme.ToastSuccess
		if latest.Level == notify.Error {
			color = model.theme.ToastError
		}
		return lipgloss.NewStyle().
			Foreground(color).
			Render(" " + latest.Message)
	}

	help := " j/k move  Tab pane  ←/→ tab  / search  f filter  n new  e edit  d delete  s status  Space select  r reload  q quit"
	if model.screen().spec.ReadOnly {
		help = " j/k move  Tab pane  ←/→ tab  / search  f filter  s status  r reload  q quit"
	}
	if ansi.StringWidth(help) > model.width {
		help = ansi.Truncate(help, model.width, "")
	}
	return lipgloss.NewStyle().Foreground(model.theme.HelpText).Render(help)
}

// renderForm draws the create/edit modal as overlay lines: one row per
// field with label, draft value, a cursor on the focused field, and
// any validation message beneath it.
func (model Model) renderForm() []string {
	state := model.screen()
	form := state.form

	innerWidth := model.width/2 - 4
	if innerWidth < 30 {
		innerWidth = 30
	}

	background := lipgloss.NewStyle().Background(model.theme.OverlayBackground)
	textStyle := lipgloss.NewStyle().
		Background(model.theme.OverlayBackground).
		Foreground(model.theme.OverlayForeground)
	labelStyle := lipgloss.NewStyle().
		Background(model.theme.OverlayBackground).
		Foreground(model.theme.FaintText)
	errorStyle := lipgloss.NewStyle().
		Background(model.theme.OverlayBackground).
		Foreground(model.theme.ToastError)

	title := "New " + state.spec.Singular
	if form.recordID != "" {
		title = "Edit " + state.spec.Singular
	}
	if form.submitting {
		title += " (saving…)"
	}

	var lines []string
	lines = append(lines, tui.PadOverlayLine(
		textStyle.Bold(true).Render(title), innerWidth, innerWidth+2, background))
	lines = append(lines, tui.PadOverlayLine("", innerWidth, innerWidth+2, background))

	for index, field := range state.spec.Form.Fields {
		marker := "  "
		if index == form.fieldCursor {
			marker = "> "
		}
		label := field.Label
		if field.Required {
			label += "*"
		}
		value := form.session.Get(field.Name)
		if index == form.fieldCursor && !form.submitting {
			value += "▏"
		}

		content := textStyle.Render(marker) +
			labelStyle.Render(label+": ") +
			textStyle.Render(value)
		if ansi.StringWidth(content) > innerWidth {
			content = ansi.Truncate(content, innerWidth-1, "…")
		}
		lines = append(lines, tui.PadOverlayLine(content, innerWidth, innerWidth+2, background))

		if form.validation != nil {
			if message := form.validation.For(field.Name); message != "" {
				issue := errorStyle.Render("    " + message)
				lines = append(lines, tui.PadOverlayLine(issue, innerWidth, innerWidth+2, background))
			}
		}
	}

	lines = append(lines, tui.PadOverlayLine("", innerWidth, innerWidth+2, background))
	footer := labelStyle.Render("Enter/C-s save   Esc cancel")
	lines = append(lines, tui.PadOverlayLine(footer, innerWidth, innerWidth+2, background))
	return lines
}

// renderConfirm draws the delete confirmation dialog.
func (model Model) renderConfirm() []string {
	state := model.screen()

	background := lipgloss.NewStyle().Background(model.theme.OverlayBackground)
	textStyle := lipgloss.NewStyle().
		Background(model.theme.OverlayBackground).
		Foreground(model.theme.OverlayForeground)
	faintStyle := lipgloss.NewStyle().
		Background(model.theme.OverlayBackground).
		Foreground(model.theme.FaintText)

	prompt := state.confirm.prompt
	innerWidth := ansi.StringWidth(prompt) + 4
	if innerWidth < 30 {
		innerWidth = 30
	}

	return []string{
		tui.PadOverlayLine(textStyle.Bold(true).Render(prompt), innerWidth, innerWidth+2, background),
		tui.PadOverlayLine("", innerWidth, innerWidth+2, background),
		tui.PadOverlayLine(faintStyle.Render("y confirm   n cancel"), innerWidth, innerWidth+2, background),
	}
}
