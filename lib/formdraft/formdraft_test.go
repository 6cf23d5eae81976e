// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package formdraft

import (
	"context"
	"errors"
	"testing"
)

func userSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "fullName", Label: "Full name", Required: true},
			{Name: "email", Label: "Email", Required: true},
			{Name: "role", Label: "Role"},
			{Name: "category", Label: "Category"},
		},
		Checks: []Check{
			RequireWhen("role", "specialist", "category", "Category is required for specialists"),
		},
	}
}

func TestOpenSeededFromRecord(t *testing.T) {
	session := Open(userSchema(), Values{"fullName": "Amina Rahman", "email": "amina@carewell.test"})
	if !session.IsOpen() {
		t.Fatal("session must open")
	}
	if session.Get("fullName") != "Amina Rahman" {
		t.Errorf("fullName = %q", session.Get("fullName"))
	}
	if session.Dirty() {
		t.Error("freshly seeded session must not be dirty")
	}
	session.Set("fullName", "Amina R. Rahman")
	if !session.Dirty() {
		t.Error("edit must mark the session dirty")
	}
}

func TestOpenBlank(t *testing.T) {
	session := Open(userSchema(), nil)
	if session.Get("fullName") != "" {
		t.Errorf("blank form must start empty, got %q", session.Get("fullName"))
	}
}

func TestRequiredFieldsBlockSubmit(t *testing.T) {
	session := Open(userSchema(), nil)
	session.Set("fullName", "Brian Okafor")
	// email left blank

	var dispatched bool
	err := session.Submit(context.Background(), func(ctx context.Context, values Values) error {
		dispatched = true
		return nil
	})
	if dispatched {
		t.Fatal("invalid draft must not be dispatched")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if validation.For("email") != "Email is required" {
		t.Errorf("email issue = %q", validation.For("email"))
	}
	if validation.For("fullName") != "" {
		t.Errorf("fullName must be clean, got %q", validation.For("fullName"))
	}
	if !session.IsOpen() {
		t.Error("session must stay open after a validation failure")
	}
}

func TestCrossFieldCheck(t *testing.T) {
	session := Open(userSchema(), nil)
	session.Set("fullName", "Dr. Mendes")
	session.Set("email", "mendes@carewell.test")
	session.Set("role", "Specialist")

	err := session.Validate()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("Validate = %v, want *ValidationError", err)
	}
	if validation.For("category") != "Category is required for specialists" {
		t.Errorf("category issue = %q", validation.For("category"))
	}

	session.Set("category", "Cardiology")
	if err := session.Validate(); err != nil {
		t.Errorf("Validate after fixing = %v, want nil", err)
	}
}

func TestWhitespaceOnlyFailsRequired(t *testing.T) {
	session := Open(userSchema(), nil)
	session.Set("fullName", "   ")
	session.Set("email", "x@carewell.test")
	err := session.Validate()
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.For("fullName") == "" {
		t.Errorf("whitespace-only value must fail required check, got %v", err)
	}
}

func TestSubmitDispatchesOnceAndCloses(t *testing.T) {
	session := Open(userSchema(), nil)
	session.Set("fullName", "Dev Patel")
	session.Set("email", "dev@carewell.test")

	var calls int
	dispatch := func(ctx context.Context, values Values) error {
		calls++
		if values["fullName"] != "Dev Patel" {
			t.Errorf("dispatched values = %v", values)
		}
		return nil
	}
	if err := session.Submit(context.Background(), dispatch); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if calls != 1 {
		t.Errorf("dispatch ran %d times, want exactly once", calls)
	}
	if session.IsOpen() {
		t.Error("successful submit must close the session")
	}

	// A second submit on the closed session must not dispatch again.
	if err := session.Submit(context.Background(), dispatch); err == nil {
		t.Error("submit on a closed session must error")
	}
	if calls != 1 {
		t.Errorf("dispatch ran %d times after closed resubmit", calls)
	}
}

func TestDispatchFailureKeepsDraft(t *testing.T) {
	session := Open(userSchema(), nil)
	session.Set("fullName", "Dev Patel")
	session.Set("email", "dev@carewell.test")

	serverErr := errors.New("Duplicate entry")
	err := session.Submit(context.Background(), func(ctx context.Context, values Values) error {
		return serverErr
	})
	if !errors.Is(err, serverErr) {
		t.Fatalf("Submit = %v, want the dispatch error", err)
	}
	if !session.IsOpen() {
		t.Error("session must stay open after a dispatch failure")
	}
	if session.Get("fullName") != "Dev Patel" {
		t.Error("draft must survive a dispatch failure")
	}
}

func TestCancelIdempotent(t *testing.T) {
	session := Open(userSchema(), Values{"fullName": "Carla"})
	session.Set("fullName", "Changed")
	session.Cancel()
	session.Cancel()
	session.Cancel()
	if session.IsOpen() {
		t.Error("cancel must close the session")
	}
	before := session.Get("fullName")
	session.Set("fullName", "After cancel")
	if session.Get("fullName") != before {
		t.Error("edits after cancel must be ignored")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	single := &ValidationError{Issues: []Issue{{Field: "email", Message: "Email is required"}}}
	if single.Error() != "Email is required" {
		t.Errorf("single-issue Error = %q", single.Error())
	}
	multi := &ValidationError{Issues: []Issue{
		{Field: "email", Message: "Email is required"},
		{Field: "fullName", Message: "Full name is required"},
	}}
	if multi.Error() != "2 fields need attention" {
		t.Errorf("multi-issue Error = %q", multi.Error())
	}
}
