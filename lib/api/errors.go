// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/carewell-health/carewell/lib/netutil"
)

// ServerError is a non-2xx response from the API. Message holds the
// server's human-readable message field when the error body carried
// one; callers surface it verbatim to the operator.
type ServerError struct {
	StatusCode int
	Message    string
}

// Error returns the message when the server provided one, otherwise a
// generic status line.
func (serverErr *ServerError) Error() string {
	if serverErr.Message != "" {
		return serverErr.Message
	}
	return fmt.Sprintf("HTTP %d", serverErr.StatusCode)
}

// serverError builds a ServerError from an error response. The API's
// error convention is a JSON body with a "message" field; anything
// else degrades to the raw body text (bounded) or the bare status.
func serverError(response *http.Response) *ServerError {
	body := netutil.ErrorBody(response.Body)

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		message := payload.Message
		if message == "" {
			message = payload.Error
		}
		if message != "" {
			return &ServerError{StatusCode: response.StatusCode, Message: message}
		}
	}
	return &ServerError{StatusCode: response.StatusCode}
}

// UserMessage extracts the text to show an operator for a failed
// call: the server's message when present, otherwise a generic
// transport-failure string. Validation errors are a distinct class
// and never pass through here.
func UserMessage(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}
	if err != nil {
		return "request failed: " + err.Error()
	}
	return ""
}
