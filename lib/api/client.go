// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package api provides a typed HTTP client for the Carewell Health
// content-management REST API. All backend access goes through a
// single [Client]: it owns the base URL, attaches the bearer token
// from an injected read-only [TokenSource], defaults to JSON bodies
// (multipart for file uploads), and normalizes the API's response
// envelopes so callers always see consistent shapes.
//
// The client mirrors the API's wire format with its own record types,
// avoiding any dependency on backend code. One attempt per call — no
// retry, no circuit breaking. Each request carries a timeout so a
// silent server cannot hold a loading state forever.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carewell-health/carewell/lib/netutil"
)

// DefaultTimeout bounds a single API request. The original client had
// no timeout at all; a hung server left the loading indicator up
// indefinitely. The bound is generous enough for slow admin endpoints.
const DefaultTimeout = 15 * time.Second

// TokenSource yields the current bearer token. The gateway treats the
// token as read-only: it reads on every request and never refreshes or
// rotates it. An empty token means "not logged in" and simply omits
// the Authorization header.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource returning a fixed string. Useful in
// tests and for CAREWELL_TOKEN environment overrides.
type StaticToken string

// Token returns the fixed token value.
func (token StaticToken) Token() string { return string(token) }

// Client is the HTTP gateway to the Carewell API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests
// that need a custom transport.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// WithLogger sets the logger for request-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

// New creates a Client for the API at baseURL. The token source is
// consulted on every request; pass [StaticToken]("") for
// unauthenticated access to public endpoints.
func New(baseURL string, tokens TokenSource, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		tokens:     tokens,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// BaseURL returns the configured API base URL.
func (client *Client) BaseURL() string { return client.baseURL }

// do issues a request with the given method, path, and optional JSON
// body, returning the raw response. The bearer token is attached when
// present. Callers own closing the response body.
func (client *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestURL := client.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	client.authorize(request)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return response, nil
}

// authorize attaches the bearer token header when a token is present.
// A missing token is not an error — public endpoints work without it.
func (client *Client) authorize(request *http.Request) {
	if token := client.tokens.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
}

// decodeInto checks the response status and decodes the body into v
// (which may be nil for calls that discard the response). Non-2xx
// responses become a [*ServerError] carrying the server's message.
func decodeInto(response *http.Response, operation string, v any) error {
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%s: %w", operation, serverError(response))
	}
	if v == nil {
		return nil
	}
	if err := netutil.DecodeResponse(response.Body, v); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}
