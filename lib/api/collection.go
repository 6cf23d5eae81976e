// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/carewell-health/carewell/lib/netutil"
)

// Collection is the typed CRUD surface for one resource path. Every
// management screen drives the same five verbs; binding the record
// type once here replaces the per-endpoint method boilerplate the
// screens would otherwise duplicate.
type Collection[T any] struct {
	client *Client
	path   string
}

// List fetches the full collection, optionally narrowed by
// server-side query parameters. A 2xx response whose body does not
// contain the expected collection (shape mismatch) yields an empty
// slice: the degradation is logged, not surfaced, matching the API's
// envelope tolerance contract.
func (collection Collection[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	response, err := collection.client.do(ctx, http.MethodGet, collection.path, query, nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := decodeInto(response, "list "+collection.path, &items); err != nil {
		if errors.Is(err, netutil.ErrShapeMismatch) {
			collection.client.logger.Warn("collection response shape mismatch",
				"path", collection.path,
				"error", err,
			)
			return []T{}, nil
		}
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get fetches a single entity by identifier.
func (collection Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	response, err := collection.client.do(ctx, http.MethodGet, collection.path+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return item, err
	}
	err = decodeInto(response, "get "+collection.path, &item)
	return item, err
}

// Create posts a new entity and returns the server's copy (with its
// assigned identifier).
func (collection Collection[T]) Create(ctx context.Context, record T) (T, error) {
	var created T
	response, err := collection.client.do(ctx, http.MethodPost, collection.path, nil, record)
	if err != nil {
		return created, err
	}
	err = decodeInto(response, "create "+collection.path, &created)
	return created, err
}

// Update replaces an entity with a full record (PUT).
func (collection Collection[T]) Update(ctx context.Context, id string, record T) (T, error) {
	var updated T
	response, err := collection.client.do(ctx, http.MethodPut, collection.path+"/"+url.PathEscape(id), nil, record)
	if err != nil {
		return updated, err
	}
	err = decodeInto(response, "update "+collection.path, &updated)
	return updated, err
}

// Patch applies a partial update (commonly a status transition). The
// fields map is sent as the JSON body.
func (collection Collection[T]) Patch(ctx context.Context, id string, fields map[string]any) (T, error) {
	var patched T
	response, err := collection.client.do(ctx, http.MethodPatch, collection.path+"/"+url.PathEscape(id), nil, fields)
	if err != nil {
		return patched, err
	}
	err = decodeInto(response, "patch "+collection.path, &patched)
	return patched, err
}

// Delete removes an entity. The identifier must originate from a
// fetched collection — callers never fabricate IDs.
func (collection Collection[T]) Delete(ctx context.Context, id string) error {
	response, err := collection.client.do(ctx, http.MethodDelete, collection.path+"/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return err
	}
	return decodeInto(response, "delete "+collection.path, nil)
}
