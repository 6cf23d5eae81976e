// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carewell-health/carewell/lib/formdraft"
	"github.com/carewell-health/carewell/lib/mutate"
	"github.com/carewell-health/carewell/lib/tui"
)

// handleSearchKeys edits the search buffer. Every keystroke reapplies
// the filters so the list narrows live.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := model.screen()

	switch message.Type {
	case tea.KeyEsc:
		state.searchBuffer = nil
		state.filters.SetQuery("")
		state.rebuildVisible()
		model.focus = FocusList
		return model, nil

	case tea.KeyEnter:
		model.focus = FocusList
		return model, nil

	case tea.KeyBackspace:
		if len(state.searchBuffer) > 0 {
			state.searchBuffer = state.searchBuffer[:len(state.searchBuffer)-1]
		}

	case tea.KeyRunes, tea.KeySpace:
		state.searchBuffer = append(state.searchBuffer, message.Runes...)
		if message.Type == tea.KeySpace {
			state.searchBuffer = append(state.searchBuffer, ' ')
		}

	default:
		return model, nil
	}

	state.filters.SetQuery(string(state.searchBuffer))
	state.rebuildVisible()
	return model, nil
}

// handleFormKeys drives the create/edit modal: up/down move between
// fields, printable keys edit the current field, ctrl+s submits, esc
// cancels.
func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := model.screen()
	form := state.form
	if form == nil || !form.session.IsOpen() {
		model.focus = FocusList
		state.form = nil
		return model, nil
	}
	if form.submitting {
		return model, nil
	}
	fields := state.spec.Form.Fields

	switch message.Type {
	case tea.KeyEsc:
		form.session.Cancel()
		state.form = nil
		model.focus = FocusList
		return model, nil

	case tea.KeyUp:
		if form.fieldCursor > 0 {
			form.fieldCursor--
		}
		return model, nil

	case tea.KeyDown, tea.KeyTab:
		if form.fieldCursor < len(fields)-1 {
			form.fieldCursor++
		}
		return model, nil

	case tea.KeyEnter:
		// Enter advances until the last field, where it submits.
		if form.fieldCursor < len(fields)-1 {
			form.fieldCursor++
			return model, nil
		}
		return model.submitForm()

	case tea.KeyCtrlS:
		return model.submitForm()

	case tea.KeyBackspace:
		name := fields[form.fieldCursor].Name
		value := []rune(form.session.Get(name))
		if len(value) > 0 {
			form.session.Set(name, string(value[:len(value)-1]))
		}
		return model, nil

	case tea.KeyRunes, tea.KeySpace:
		name := fields[form.fieldCursor].Name
		value := form.session.Get(name) + string(message.Runes)
		if message.Type == tea.KeySpace {
			value += " "
		}
		form.session.Set(name, value)
		return model, nil
	}
	return model, nil
}

// submitForm validates on the UI goroutine so issues render
// immediately, then hands a clean draft to the dispatcher in a
// command. The session stays open until the server accepts.
func (model Model) submitForm() (tea.Model, tea.Cmd) {
	index := model.active
	state := model.screen()
	form := state.form

	var validation *formdraft.ValidationError
	if err := form.session.Validate(); errors.As(err, &validation) {
		form.validation = validation
		return model, nil
	}
	form.validation = nil

	session := form.session
	recordID := form.recordID
	spec := state.spec
	reload := func(ctx context.Context) error {
		return state.controller.Load(ctx, spec.Source.Load)
	}
	success := "Created " + spec.Singular
	if recordID != "" {
		success = "Updated " + spec.Singular
	}

	command := func() tea.Msg {
		err := session.Submit(context.Background(), func(ctx context.Context, values formdraft.Values) error {
			return state.dispatcher.Dispatch(ctx, mutate.Op{
				Action: func(ctx context.Context) error {
					if recordID == "" {
						return spec.Source.Create(ctx, values)
					}
					return spec.Source.Update(ctx, recordID, values)
				},
				Reload:  reload,
				Success: success,
			})
		})
		return mutationDoneMsg{screen: index, err: err}
	}

	form.submitting = true
	return model, command
}

// handleConfirmKeys resolves the delete confirmation dialog. Decline
// sends nothing.
func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	index := model.active
	state := model.screen()
	confirm := state.confirm
	if confirm == nil {
		model.focus = FocusList
		return model, nil
	}

	switch message.String() {
	case "y", "Y", "enter":
		state.confirm = nil
		model.focus = FocusList
		return model, model.deleteCmd(index, confirm.ids, confirm.fromSelection)
	case "n", "N", "esc", "q":
		state.confirm = nil
		model.focus = FocusList
		return model, nil
	}
	return model, nil
}

// deleteCmd removes the confirmed records. Selection-originated
// deletes always go through the bulk path so the selection set clears
// regardless of outcome, even for a single checked record.
func (model Model) deleteCmd(index int, ids []string, fromSelection bool) tea.Cmd {
	state := model.screens[index]
	spec := state.spec
	reload := func(ctx context.Context) error {
		return state.controller.Load(ctx, spec.Source.Load)
	}

	if !fromSelection && len(ids) == 1 {
		id := ids[0]
		return func() tea.Msg {
			err := state.dispatcher.Dispatch(context.Background(), mutate.Op{
				Action:  func(ctx context.Context) error { return spec.Source.Delete(ctx, id) },
				Reload:  reload,
				Success: "Deleted " + spec.Singular,
			})
			return mutationDoneMsg{screen: index, err: err}
		}
	}

	return func() tea.Msg {
		_, err := state.dispatcher.DispatchBulk(context.Background(), state.selection,
			func(ctx context.Context, id string) error { return spec.Source.Delete(ctx, id) },
			reload)
		return mutationDoneMsg{screen: index, err: err}
	}
}

// openDeleteConfirm opens the confirmation dialog. Any checked record
// takes precedence over the cursor row: deleting must target what the
// user marked, not where they happen to be.
func (model Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	state := model.screen()
	if state.spec.ReadOnly {
		return model, nil
	}

	if count := state.selection.Len(); count > 0 {
		prompt := fmt.Sprintf("Delete %d selected %ss?", count, state.spec.Singular)
		if count == 1 {
			prompt = fmt.Sprintf("Delete the selected %s?", state.spec.Singular)
		}
		state.confirm = &confirmState{
			prompt:        prompt,
			ids:           state.selection.IDs(),
			fromSelection: true,
		}
		model.focus = FocusConfirm
		return model, nil
	}

	record, ok := state.selected()
	if !ok {
		return model, nil
	}
	state.confirm = &confirmState{
		prompt: fmt.Sprintf("Delete %s %q?", state.spec.Singular, record.Title),
		ids:    []string{record.ID},
	}
	model.focus = FocusConfirm
	return model, nil
}

// openFilterDropdown opens the next equality-filter dropdown; pressing
// f repeatedly cycles through the screen's filters.
func (model Model) openFilterDropdown() (tea.Model, tea.Cmd) {
	state := model.screen()
	if len(state.spec.Filters) == 0 {
		return model, nil
	}
	filter := state.spec.Filters[state.filterCycle%len(state.spec.Filters)]
	state.filterCycle++

	options := append([]tui.DropdownOption{{Label: "All", Value: ""}}, filter.Options...)
	dropdown := &tui.DropdownOverlay{
		Title:   filter.Label,
		Options: options,
		Field:   filter.Name,
		AnchorX: 2,
		AnchorY: 2,
	}
	for index, option := range options {
		if option.Value == state.filters.Value(filter.Name) {
			dropdown.Cursor = index
		}
	}
	state.dropdown = dropdown
	state.ddKind = dropdownFilter
	model.focus = FocusDropdown
	return model, nil
}

// openStatusDropdown opens the status picker for the record under the
// cursor.
func (model Model) openStatusDropdown() (tea.Model, tea.Cmd) {
	state := model.screen()
	if len(state.spec.Statuses) == 0 {
		return model, nil
	}
	record, ok := state.selected()
	if !ok {
		return model, nil
	}

	dropdown := &tui.DropdownOverlay{
		Title:    "Status",
		Options:  state.spec.Statuses,
		Field:    "status",
		RecordID: record.ID,
		AnchorX:  2,
		AnchorY:  3,
	}
	for index, option := range state.spec.Statuses {
		if option.Value == record.Status {
			dropdown.Cursor = index
		}
	}
	state.dropdown = dropdown
	state.ddKind = dropdownStatus
	model.focus = FocusDropdown
	return model, nil
}

// handleDropdownKeys navigates and resolves the open dropdown.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	index := model.active
	state := model.screen()
	dropdown := state.dropdown
	if dropdown == nil {
		model.focus = FocusList
		return model, nil
	}

	switch {
	case message.Type == tea.KeyEsc:
		state.dropdown = nil
		model.focus = FocusList
		return model, nil

	case key.Matches(message, model.keys.Up):
		dropdown.MoveUp()
		return model, nil

	case key.Matches(message, model.keys.Down):
		dropdown.MoveDown()
		return model, nil

	case message.Type == tea.KeyEnter:
		selected := dropdown.Selected()
		kind := state.ddKind
		state.dropdown = nil
		model.focus = FocusList

		if kind == dropdownFilter {
			state.filters.SetValue(dropdown.Field, selected.Value)
			state.rebuildVisible()
			return model, nil
		}
		return model, model.statusCmd(index, dropdown.RecordID, selected.Value)
	}
	return model, nil
}

// statusCmd patches one record's status and reloads.
func (model Model) statusCmd(index int, recordID, status string) tea.Cmd {
	state := model.screens[index]
	spec := state.spec
	return func() tea.Msg {
		err := state.dispatcher.Dispatch(context.Background(), mutate.Op{
			Action: func(ctx context.Context) error {
				return spec.Source.SetStatus(ctx, recordID, status)
			},
			Reload: func(ctx context.Context) error {
				return state.controller.Load(ctx, spec.Source.Load)
			},
			Success: "Status updated",
		})
		return mutationDoneMsg{screen: index, err: err}
	}
}
