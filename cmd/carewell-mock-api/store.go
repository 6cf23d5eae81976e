// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"sync"

	"github.com/google/uuid"
)

// record is one stored entity: plain JSON shapes, no typed schema.
// The mock mirrors the wire format, not the backend's models.
type record = map[string]any

// store is the in-memory database: one ordered slice per resource.
// Insertion order is stable so list output is deterministic for
// tests.
type store struct {
	mu          sync.RWMutex
	collections map[string][]record
}

func newStore() *store {
	return &store{collections: make(map[string][]record)}
}

// list returns a copy of the collection.
func (s *store) list(resource string) []record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.collections[resource]
	copied := make([]record, len(records))
	for index, r := range records {
		copied[index] = cloneRecord(r)
	}
	return copied
}

// get returns a copy of one record by id.
func (s *store) get(resource, id string) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.collections[resource] {
		if r["id"] == id {
			return cloneRecord(r), true
		}
	}
	return nil, false
}

// insert assigns a fresh id and appends the record.
func (s *store) insert(resource string, r record) record {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := cloneRecord(r)
	stored["id"] = uuid.NewString()
	s.collections[resource] = append(s.collections[resource], stored)
	return cloneRecord(stored)
}

// seed appends a record keeping its given id. Used by fixtures only.
func (s *store) seed(resource string, r record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r["id"] == nil || r["id"] == "" {
		r["id"] = uuid.NewString()
	}
	s.collections[resource] = append(s.collections[resource], cloneRecord(r))
}

// replace swaps the full record body, keeping the id.
func (s *store) replace(resource, id string, r record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, existing := range s.collections[resource] {
		if existing["id"] == id {
			stored := cloneRecord(r)
			stored["id"] = id
			s.collections[resource][index] = stored
			return cloneRecord(stored), true
		}
	}
	return nil, false
}

// patch merges fields into the record.
func (s *store) patch(resource, id string, fields record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, existing := range s.collections[resource] {
		if existing["id"] == id {
			updated := cloneRecord(existing)
			for key, value := range fields {
				if key == "id" {
					continue
				}
				updated[key] = value
			}
			s.collections[resource][index] = updated
			return cloneRecord(updated), true
		}
	}
	return nil, false
}

// remove deletes the record by id.
func (s *store) remove(resource, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.collections[resource]
	for index, existing := range records {
		if existing["id"] == id {
			s.collections[resource] = append(records[:index], records[index+1:]...)
			return true
		}
	}
	return false
}

// hasDuplicate reports whether another record carries the same value
// in the given field. Drives the 409 "Duplicate entry" responses.
func (s *store) hasDuplicate(resource, field string, value any, excludeID string) bool {
	if value == nil || value == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.collections[resource] {
		if existing["id"] == excludeID {
			continue
		}
		if existing[field] == value {
			return true
		}
	}
	return false
}

// count tallies records, optionally grouped by a field's value.
func (s *store) countBy(resource, field string) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, existing := range s.collections[resource] {
		if value, ok := existing[field].(string); ok && value != "" {
			counts[value]++
		}
	}
	return counts
}

func (s *store) size(resource string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[resource])
}

func cloneRecord(r record) record {
	cloned := make(record, len(r))
	for key, value := range r {
		cloned[key] = value
	}
	return cloned
}
