// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnwrapEnvelopeObject(t *testing.T) {
	data := []byte(`{"data": {"id": "n-1", "title": "Visiting hours"}}`)
	got := string(UnwrapEnvelope(data))
	if got != `{"id": "n-1", "title": "Visiting hours"}` {
		t.Errorf("unexpected unwrap result: %s", got)
	}
}

func TestUnwrapEnvelopeArray(t *testing.T) {
	data := []byte(`{"data": [1, 2, 3]}`)
	got := string(UnwrapEnvelope(data))
	if got != `[1, 2, 3]` {
		t.Errorf("unexpected unwrap result: %s", got)
	}
}

func TestUnwrapEnvelopeBareArray(t *testing.T) {
	data := []byte(`[{"id": "n-1"}]`)
	got := string(UnwrapEnvelope(data))
	if got != string(data) {
		t.Errorf("bare array should pass through unchanged, got %s", got)
	}
}

func TestUnwrapEnvelopePlainObject(t *testing.T) {
	data := []byte(`{"id": "n-1"}`)
	got := string(UnwrapEnvelope(data))
	if got != string(data) {
		t.Errorf("object without data field should pass through, got %s", got)
	}
}

func TestUnwrapEnvelopeNullData(t *testing.T) {
	got := string(UnwrapEnvelope([]byte(`{"data": null}`)))
	if got != "null" {
		t.Errorf("null data should unwrap to null, got %s", got)
	}
}

func TestDecodeResponseEnvelopedCollection(t *testing.T) {
	body := strings.NewReader(`{"data": [{"id": "d-1"}, {"id": "d-2"}]}`)
	var items []struct {
		ID string `json:"id"`
	}
	if err := DecodeResponse(body, &items); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if len(items) != 2 || items[0].ID != "d-1" {
		t.Errorf("unexpected decode result: %+v", items)
	}
}

func TestDecodeResponseNullDataYieldsEmpty(t *testing.T) {
	body := strings.NewReader(`{"data": null}`)
	var items []struct {
		ID string `json:"id"`
	}
	if err := DecodeResponse(body, &items); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty collection, got %+v", items)
	}
}

func TestDecodeResponseShapeMismatch(t *testing.T) {
	// An object where a collection is expected is a shape mismatch:
	// the target stays empty and the error identifies the case.
	body := strings.NewReader(`{"count": 3}`)
	var items []struct {
		ID string `json:"id"`
	}
	err := DecodeResponse(body, &items)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("target must stay empty on mismatch, got %+v", items)
	}
}

func TestErrorBody(t *testing.T) {
	got := ErrorBody(strings.NewReader(`{"message":"boom"}`))
	if got != `{"message":"boom"}` {
		t.Errorf("unexpected error body: %s", got)
	}
}
