// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package formdraft holds the editable state behind a create or edit
// modal. A [Session] opens blank or seeded from an existing record,
// accumulates field edits, and refuses to submit until its schema's
// required and cross-field checks pass. Validation failures are a
// distinct error class from server rejections: the former never leave
// the process, the latter arrive after a dispatch.
package formdraft

import (
	"context"
	"fmt"
	"strings"
)

// Values is a flat field-name to value map. Record types marshal in
// and out of it at the screen boundary.
type Values map[string]string

// Clone returns an independent copy.
func (values Values) Clone() Values {
	cloned := make(Values, len(values))
	for name, value := range values {
		cloned[name] = value
	}
	return cloned
}

// Field describes one form field.
type Field struct {
	Name     string
	Label    string
	Required bool
}

// Check is a cross-field rule. It returns nil when satisfied.
type Check func(values Values) *Issue

// Schema is the static shape of one form: its fields plus any
// cross-field rules.
type Schema struct {
	Fields []Field
	Checks []Check
}

// RequireWhen builds the common conditional rule: when the trigger
// field holds triggerValue (case-insensitive), the dependent field
// must be non-blank.
func RequireWhen(trigger, triggerValue, dependent, message string) Check {
	return func(values Values) *Issue {
		if !strings.EqualFold(strings.TrimSpace(values[trigger]), triggerValue) {
			return nil
		}
		if strings.TrimSpace(values[dependent]) != "" {
			return nil
		}
		return &Issue{Field: dependent, Message: message}
	}
}

// Issue is one validation finding, tied to a field when one applies.
type Issue struct {
	Field   string
	Message string
}

// ValidationError carries every issue found in one validation pass.
type ValidationError struct {
	Issues []Issue
}

func (validation *ValidationError) Error() string {
	if len(validation.Issues) == 1 {
		return validation.Issues[0].Message
	}
	return fmt.Sprintf("%d fields need attention", len(validation.Issues))
}

// For returns the message attached to a field, or "" when the field
// is clean.
func (validation *ValidationError) For(field string) string {
	for _, issue := range validation.Issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

// Session is one open modal's draft. Not safe for concurrent use; a
// session lives on the UI goroutine.
type Session struct {
	schema Schema
	draft  Values
	seed   Values
	open   bool
}

// Open starts a session seeded from an existing record's values. A
// nil seed opens a blank form.
func Open(schema Schema, seed Values) *Session {
	if seed == nil {
		seed = Values{}
	}
	return &Session{
		schema: schema,
		draft:  seed.Clone(),
		seed:   seed.Clone(),
		open:   true,
	}
}

// IsOpen reports whether the session is still accepting edits.
func (session *Session) IsOpen() bool {
	return session.open
}

// Get returns the draft value of a field.
func (session *Session) Get(name string) string {
	return session.draft[name]
}

// Set merges one field edit into the draft. Edits after cancel or a
// successful submit are ignored.
func (session *Session) Set(name, value string) {
	if !session.open {
		return
	}
	session.draft[name] = value
}

// Values returns a copy of the current draft.
func (session *Session) Values() Values {
	return session.draft.Clone()
}

// Dirty reports whether the draft differs from its seed.
func (session *Session) Dirty() bool {
	if len(session.draft) != len(session.seed) {
		return true
	}
	for name, value := range session.draft {
		if session.seed[name] != value {
			return true
		}
	}
	return false
}

// Validate runs the required-field and cross-field checks against the
// current draft. Returns a *ValidationError listing every issue, or
// nil when the draft is submittable.
func (session *Session) Validate() error {
	var issues []Issue
	for _, field := range session.schema.Fields {
		if field.Required && strings.TrimSpace(session.draft[field.Name]) == "" {
			issues = append(issues, Issue{
				Field:   field.Name,
				Message: field.Label + " is required",
			})
		}
	}
	for _, check := range session.schema.Checks {
		if issue := check(session.draft); issue != nil {
			issues = append(issues, *issue)
		}
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

// Submit validates and, only when clean, hands the draft to dispatch
// exactly once. A validation failure returns the *ValidationError
// with nothing dispatched and the session still open. A dispatch
// failure also leaves the session open with the draft intact so the
// user can correct and retry. Success closes the session.
func (session *Session) Submit(ctx context.Context, dispatch func(ctx context.Context, values Values) error) error {
	if !session.open {
		return fmt.Errorf("form is no longer open")
	}
	if err := session.Validate(); err != nil {
		return err
	}
	if err := dispatch(ctx, session.draft.Clone()); err != nil {
		return err
	}
	session.open = false
	return nil
}

// Cancel closes the session and discards the draft. Safe to call any
// number of times.
func (session *Session) Cancel() {
	session.open = false
}
