// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O utilities for the Carewell client.
//
// Response helpers (ReadResponse, DecodeResponse, ErrorBody) bound all
// body reads at MaxResponseSize to prevent unbounded memory allocation
// from a misbehaving server. UnwrapEnvelope normalizes the API's two
// collection shapes (bare JSON value vs {"data": ...} envelope) at the
// gateway boundary so higher layers always see a consistent shape.
package netutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 64 MB.
// Legitimate Carewell API responses are orders of magnitude smaller;
// the limit exists solely so a pathological response cannot exhaust
// memory.
const MaxResponseSize int64 = 64 << 20

// ErrShapeMismatch reports a 2xx response whose body did not decode
// into the expected shape (for example, an object where a collection
// was expected, or an envelope with no usable data field). The decode
// target is left at its zero value, so collection callers can treat
// the result as empty after logging.
var ErrShapeMismatch = errors.New("response shape mismatch")

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON API response body (up to MaxResponseSize
// bytes), strips any {"data": ...} envelope, and decodes the result
// into v. A type-level mismatch between body and target returns an
// error wrapping [ErrShapeMismatch] with v untouched.
func DecodeResponse(body io.Reader, v any) error {
	data, err := ReadResponse(body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	payload := UnwrapEnvelope(data)
	if err := json.Unmarshal(payload, v); err != nil {
		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) {
			return fmt.Errorf("decoding %s into %s: %w", typeError.Value, typeError.Type, ErrShapeMismatch)
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// ErrorBody reads an HTTP error response body and returns it as a
// string for diagnostic error messages. Read errors are silently
// ignored — a partial or empty body is still useful in an error
// message.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	return string(data)
}

// UnwrapEnvelope returns the inner value of a {"data": ...} envelope,
// or the input unchanged when no envelope is present. The API returns
// both shapes depending on the resource; normalizing here removes
// per-screen defensive code.
//
// A data field that is present but null yields JSON null, which
// decodes as a no-op and leaves the target at its zero value — an
// empty collection for list callers.
func UnwrapEnvelope(data []byte) []byte {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		// Bare arrays and scalars do not decode into an object;
		// they are already the payload.
		return data
	}
	raw, ok := probe["data"]
	if !ok {
		// A plain object response (single entity without envelope).
		return data
	}
	if len(raw) == 0 || string(raw) == "null" {
		return []byte("null")
	}
	return raw
}
