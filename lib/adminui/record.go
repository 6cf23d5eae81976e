// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package adminui

import (
	"context"

	"github.com/carewell-health/carewell/lib/api"
	"github.com/carewell-health/carewell/lib/formdraft"
	"github.com/carewell-health/carewell/lib/tui"
)

// Record is the screen-neutral projection of one API record. Each
// resource screen converts its typed records into this shape once per
// load; everything downstream (list rows, detail pane, filters, form
// seeding) works against it.
type Record struct {
	// ID is the server-assigned identifier, used for mutations.
	ID string

	// Title is the primary list-row text.
	Title string

	// Status drives the row's status badge color. Blank for
	// resources without a status.
	Status string

	// Meta is the secondary list-row text (blood group and phone for
	// a donor, department for an appointment).
	Meta string

	// Fields are the label/value pairs shown at the top of the
	// detail pane.
	Fields []FieldValue

	// Body is the markdown body rendered below the fields, when the
	// resource has one.
	Body string

	// Values seed the edit form for this record.
	Values formdraft.Values
}

// FieldValue is one label/value row in the detail pane.
type FieldValue struct {
	Label string
	Value string
}

// Source is the data access a screen needs. The concrete
// implementations adapt the typed API collections.
type Source interface {
	// Load fetches a fresh copy of the collection.
	Load(ctx context.Context) ([]Record, error)

	// Create posts a new record built from form values.
	Create(ctx context.Context, values formdraft.Values) error

	// Update replaces the record with id using form values.
	Update(ctx context.Context, id string, values formdraft.Values) error

	// SetStatus patches just the status field of the record with id.
	SetStatus(ctx context.Context, id, status string) error

	// Delete removes the record with id.
	Delete(ctx context.Context, id string) error
}

// FilterSpec is one equality-filter dropdown in a screen's filter
// bar. The empty-value option ("All") deactivates the filter.
type FilterSpec struct {
	Name    string // Filter key, also the dropdown's mutation field.
	Label   string
	Options []tui.DropdownOption
	Get     func(Record) string
}

// Screen is the static description of one resource tab.
type Screen struct {
	// Name is the tab label ("Donors", "Notices").
	Name string

	// Slug keys preferences and session-cache snapshots.
	Slug string

	// Singular names the record in toasts and confirmation prompts
	// ("donor", "notice").
	Singular string

	// Filters are the equality filters offered in the filter bar.
	Filters []FilterSpec

	// Statuses, when non-empty, enables the status dropdown on the
	// selected record.
	Statuses []tui.DropdownOption

	// Form is the create/edit schema.
	Form formdraft.Schema

	// ReadOnly disables create/edit/delete (donation stats,
	// visitor-submitted feedback is status-only).
	ReadOnly bool

	// Source performs the data access.
	Source Source
}

// userMessage maps an error onto the toast text the operator sees,
// preferring the server's own message.
func userMessage(err error) string {
	return api.UserMessage(err)
}
