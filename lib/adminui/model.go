// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package adminui is the terminal dashboard for managing hospital
// content: one tab per resource, a filterable list pane beside a
// detail pane, modal forms for create/edit, a confirmation gate on
// deletes, and transient toasts for mutation outcomes. Built on
// bubbletea; all remote work runs in commands so the UI never blocks
// on the network.
package adminui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/junegunn/fzf/src/util"

	"github.com/carewell-health/carewell/lib/filterset"
	"github.com/carewell-health/carewell/lib/formdraft"
	"github.com/carewell-health/carewell/lib/listctrl"
	"github.com/carewell-health/carewell/lib/mutate"
	"github.com/carewell-health/carewell/lib/notify"
	"github.com/carewell-health/carewell/lib/prefs"
	"github.com/carewell-health/carewell/lib/sessioncache"
	"github.com/carewell-health/carewell/lib/tui"
)

// snapshotMaxAge bounds how old a session snapshot may be and still be
// painted while the live fetch runs.
const snapshotMaxAge = 24 * time.Hour

// FocusRegion identifies which pane or overlay has keyboard focus.
type FocusRegion int

const (
	// FocusList means navigation keys move the list cursor.
	FocusList FocusRegion = iota
	// FocusDetail means navigation keys scroll the detail pane.
	FocusDetail
	// FocusSearch means keystrokes go to the search input.
	FocusSearch
	// FocusForm means the create/edit modal is active.
	FocusForm
	// FocusConfirm means the delete confirmation dialog is active.
	FocusConfirm
	// FocusDropdown means a filter or status dropdown is active.
	FocusDropdown
)

// Split ratio bounds and step size.
const (
	splitRatioMin  = 0.20
	splitRatioMax  = 0.80
	splitRatioStep = 0.05
)

// loadDoneMsg reports a completed collection load.
type loadDoneMsg struct {
	screen int
	err    error
}

// mutationDoneMsg reports a completed mutation (and its reload).
type mutationDoneMsg struct {
	screen int
	err    error
}

// toastTickMsg redraws the toast bar when the oldest toast expires.
type toastTickMsg struct{}

// dropdownKind distinguishes what an open dropdown mutates.
type dropdownKind int

const (
	dropdownFilter dropdownKind = iota
	dropdownStatus
)

// formState is the live create/edit modal: a draft session plus the
// cursor over its fields.
type formState struct {
	session     *formdraft.Session
	recordID    string // "" when creating.
	fieldCursor int
	validation  *formdraft.ValidationError

	// submitting blocks edits while the dispatch command owns the
	// draft. Cleared when the mutation result arrives.
	submitting bool
}

// confirmState is the pending delete confirmation.
type confirmState struct {
	prompt string
	ids    []string // One entry for a cursor delete, one or more for a selection.

	// fromSelection routes the dispatch through the bulk path, which
	// clears the selection set regardless of outcome.
	fromSelection bool
}

// screenState is the per-tab mutable state.
type screenState struct {
	spec       Screen
	controller *listctrl.Controller[Record]
	filters    *filterset.Set[Record]
	dispatcher *mutate.Dispatcher
	selection  *mutate.Selection

	// visible is the filtered view of the controller's items,
	// rebuilt after loads and filter changes.
	visible []Record

	cursor       int
	scrollOffset int
	detailScroll int

	searchBuffer []rune

	form     *formState
	confirm  *confirmState
	dropdown *tui.DropdownOverlay
	ddKind   dropdownKind

	// filterCycle is the index of the filter the f key opens next.
	filterCycle int

	loadedOnce bool
}

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	screens []*screenState
	active  int

	theme tui.Theme
	keys  KeyMap

	toasts *notify.Queue

	preferences prefs.Prefs
	prefsPath   string

	// cache holds the previous run's collections; nil disables
	// snapshotting.
	cache *sessioncache.Cache

	width      int
	height     int
	ready      bool
	focus      FocusRegion
	splitRatio float64

	// fzf scratch allocation, shared across fuzzy match calls on the
	// UI goroutine.
	slab *util.Slab
}

// NewModel assembles the dashboard from its resource screens.
// Preferences select the starting tab and split ratio; prefsPath may
// be blank to disable persistence, cache may be nil to disable
// snapshot painting.
func NewModel(screens []Screen, preferences prefs.Prefs, prefsPath string, cache *sessioncache.Cache) Model {
	model := Model{
		theme:       tui.DefaultTheme,
		keys:        DefaultKeyMap,
		toasts:      notify.New(),
		preferences: preferences,
		prefsPath:   prefsPath,
		cache:       cache,
		splitRatio:  preferences.SplitRatio,
		slab:        util.MakeSlab(100*1024, 2048),
	}
	if model.splitRatio < splitRatioMin || model.splitRatio > splitRatioMax {
		model.splitRatio = 0.4
	}

	for index, spec := range screens {
		state := &screenState{
			spec:       spec,
			controller: listctrl.New[Record](nil),
			filters:    newFilterSet(spec, preferences.FuzzySearch),
			dispatcher: mutate.New(model.toasts, nil),
			selection:  mutate.NewSelection(),
		}
		if cache != nil {
			var cached []Record
			if _, err := cache.LoadWithin(spec.Slug, snapshotMaxAge, &cached); err == nil {
				state.controller.Seed(cached)
				state.visible = state.filters.Apply(cached)
			}
		}
		model.screens = append(model.screens, state)
		if spec.Slug == preferences.ActiveTab {
			model.active = index
		}
	}
	return model
}

// newFilterSet builds the filter set for a screen from its specs,
// with the title and meta line always searchable. The fuzzy
// preference applies to every screen's search query.
func newFilterSet(spec Screen, fuzzy bool) *filterset.Set[Record] {
	set := filterset.New[Record]().Fuzzy(fuzzy).Searchable(
		func(record Record) string { return record.Title },
		func(record Record) string { return record.Meta },
	)
	for _, filter := range spec.Filters {
		set.Field(filter.Name, filter.Get)
	}
	return set
}

// Init implements tea.Model: kick off the initial load of every tab
// concurrently so switching tabs later is instant.
func (model Model) Init() tea.Cmd {
	var commands []tea.Cmd
	for index := range model.screens {
		commands = append(commands, model.loadScreen(index))
	}
	return tea.Batch(commands...)
}

// loadScreen returns a command running one collection load. The
// controller handles generation tagging; a stale response is
// discarded inside Load.
func (model Model) loadScreen(index int) tea.Cmd {
	state := model.screens[index]
	cache := model.cache
	return func() tea.Msg {
		err := state.controller.Load(context.Background(), state.spec.Source.Load)
		if err == nil && cache != nil {
			// Best-effort: a failed snapshot write never surfaces.
			_ = cache.Save(state.spec.Slug, state.controller.Items())
		}
		return loadDoneMsg{screen: index, err: err}
	}
}

// scheduleToastTick arranges a redraw when the oldest toast expires.
func (model Model) scheduleToastTick() tea.Cmd {
	expiry, ok := model.toasts.NextExpiry()
	if !ok {
		return nil
	}
	wait := time.Until(expiry)
	if wait < 0 {
		wait = 0
	}
	return tea.Tick(wait, func(time.Time) tea.Msg { return toastTickMsg{} })
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		return model, nil

	case loadDoneMsg:
		state := model.screens[message.screen]
		state.loadedOnce = true
		state.rebuildVisible()
		if message.err != nil && message.screen == model.active {
			model.toasts.Failure(userMessage(message.err))
			return model, model.scheduleToastTick()
		}
		return model, nil

	case mutationDoneMsg:
		state := model.screens[message.screen]
		state.rebuildVisible()
		if form := state.form; form != nil {
			// A successful submit closes the session; a server
			// rejection leaves it open with the draft intact.
			if form.session.IsOpen() {
				form.submitting = false
			} else {
				state.form = nil
				if message.screen == model.active && model.focus == FocusForm {
					model.focus = FocusList
				}
			}
		}
		return model, model.scheduleToastTick()

	case toastTickMsg:
		return model, model.scheduleToastTick()

	case tea.KeyMsg:
		return model.handleKey(message)
	}
	return model, nil
}

// handleKey routes keyboard input by focus region.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := model.screen()

	switch model.focus {
	case FocusSearch:
		return model.handleSearchKeys(message)
	case FocusForm:
		return model.handleFormKeys(message)
	case FocusConfirm:
		return model.handleConfirmKeys(message)
	case FocusDropdown:
		return model.handleDropdownKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		model.savePreferences()
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle):
		if model.focus == FocusList {
			model.focus = FocusDetail
		} else {
			model.focus = FocusList
		}

	case key.Matches(message, model.keys.NextTab):
		model.active = (model.active + 1) % len(model.screens)
		model.focus = FocusList

	case key.Matches(message, model.keys.PrevTab):
		model.active = (model.active - 1 + len(model.screens)) % len(model.screens)
		model.focus = FocusList

	case key.Matches(message, model.keys.SplitGrow):
		model.splitRatio = min(model.splitRatio+splitRatioStep, splitRatioMax)

	case key.Matches(message, model.keys.SplitShrink):
		model.splitRatio = max(model.splitRatio-splitRatioStep, splitRatioMin)

	case key.Matches(message, model.keys.Up):
		if model.focus == FocusDetail {
			state.detailScroll = max(state.detailScroll-1, 0)
		} else {
			state.moveCursor(-1, model.listHeight())
		}

	case key.Matches(message, model.keys.Down):
		if model.focus == FocusDetail {
			state.detailScroll++
		} else {
			state.moveCursor(1, model.listHeight())
		}

	case key.Matches(message, model.keys.PageUp):
		if model.focus == FocusDetail {
			state.detailScroll = max(state.detailScroll-model.listHeight(), 0)
		} else {
			state.moveCursor(-model.listHeight(), model.listHeight())
		}

	case key.Matches(message, model.keys.PageDown):
		if model.focus == FocusDetail {
			state.detailScroll += model.listHeight()
		} else {
			state.moveCursor(model.listHeight(), model.listHeight())
		}

	case key.Matches(message, model.keys.Home):
		state.cursor = 0
		state.scrollOffset = 0
		state.detailScroll = 0

	case key.Matches(message, model.keys.End):
		state.moveCursor(len(state.visible), model.listHeight())

	case key.Matches(message, model.keys.SearchActivate):
		model.focus = FocusSearch

	case key.Matches(message, model.keys.SearchClear):
		state.searchBuffer = nil
		state.filters.SetQuery("")
		state.rebuildVisible()

	case key.Matches(message, model.keys.CycleFilter):
		return model.openFilterDropdown()

	case key.Matches(message, model.keys.Reload):
		return model, model.loadScreen(model.active)

	case key.Matches(message, model.keys.New):
		if !state.spec.ReadOnly {
			state.form = &formState{session: formdraft.Open(state.spec.Form, nil)}
			model.focus = FocusForm
		}

	case key.Matches(message, model.keys.Edit):
		if record, ok := state.selected(); ok && !state.spec.ReadOnly {
			state.form = &formState{
				session:  formdraft.Open(state.spec.Form, record.Values),
				recordID: record.ID,
			}
			model.focus = FocusForm
		}

	case key.Matches(message, model.keys.Delete):
		return model.openDeleteConfirm()

	case key.Matches(message, model.keys.Status):
		return model.openStatusDropdown()

	case key.Matches(message, model.keys.Select):
		if record, ok := state.selected(); ok {
			state.selection.Toggle(record.ID)
		}
	}

	return model, nil
}

// screen returns the active tab's state.
func (model Model) screen() *screenState {
	return model.screens[model.active]
}

// selected returns the record under the cursor.
func (state *screenState) selected() (Record, bool) {
	if state.cursor < 0 || state.cursor >= len(state.visible) {
		return Record{}, false
	}
	return state.visible[state.cursor], true
}

// moveCursor shifts the cursor by delta, clamped, and keeps it inside
// the visible window.
func (state *screenState) moveCursor(delta, visibleRows int) {
	state.cursor += delta
	if state.cursor < 0 {
		state.cursor = 0
	}
	if state.cursor >= len(state.visible) {
		state.cursor = len(state.visible) - 1
	}
	if state.cursor < 0 {
		state.cursor = 0
	}
	if visibleRows <= 0 {
		return
	}
	if state.cursor < state.scrollOffset {
		state.scrollOffset = state.cursor
	}
	if state.cursor >= state.scrollOffset+visibleRows {
		state.scrollOffset = state.cursor - visibleRows + 1
	}
	state.detailScroll = 0
}

// rebuildVisible re-derives the filtered view from the controller's
// items, preserving cursor position by record identity when possible.
func (state *screenState) rebuildVisible() {
	var selectedID string
	if record, ok := state.selected(); ok {
		selectedID = record.ID
	}

	state.visible = state.filters.Apply(state.controller.Items())

	state.cursor = 0
	if selectedID != "" {
		for index, record := range state.visible {
			if record.ID == selectedID {
				state.cursor = index
				break
			}
		}
	}
	if state.scrollOffset > state.cursor {
		state.scrollOffset = state.cursor
	}
}

// savePreferences persists the cosmetic state. Best-effort: failures
// are ignored, the dashboard is exiting.
func (model *Model) savePreferences() {
	if model.prefsPath == "" {
		return
	}
	model.preferences.ActiveTab = model.screen().spec.Slug
	model.preferences.SplitRatio = model.splitRatio
	_ = prefs.Save(model.prefsPath, model.preferences)
}

// listHeight is the number of list rows that fit the current layout.
func (model Model) listHeight() int {
	// Header (tabs) + filter bar + status bar occupy four rows.
	height := model.height - 4
	if height < 1 {
		height = 1
	}
	return height
}
