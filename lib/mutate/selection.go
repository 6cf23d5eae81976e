// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package mutate

import "sync"

// Selection accumulates record identifiers for a bulk action. Order
// of first selection is preserved so bulk operations run in a
// predictable sequence. Safe for concurrent use.
type Selection struct {
	mu    sync.Mutex
	order []string
	set   map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{set: make(map[string]struct{})}
}

// Toggle adds the identifier when absent and removes it when present.
// Reports whether the identifier is selected afterwards.
func (selection *Selection) Toggle(id string) bool {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	if _, ok := selection.set[id]; ok {
		delete(selection.set, id)
		for i, existing := range selection.order {
			if existing == id {
				selection.order = append(selection.order[:i], selection.order[i+1:]...)
				break
			}
		}
		return false
	}
	selection.set[id] = struct{}{}
	selection.order = append(selection.order, id)
	return true
}

// Selected reports whether the identifier is currently selected.
func (selection *Selection) Selected(id string) bool {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	_, ok := selection.set[id]
	return ok
}

// IDs returns the selected identifiers in first-selected order.
func (selection *Selection) IDs() []string {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	ids := make([]string, len(selection.order))
	copy(ids, selection.order)
	return ids
}

// Len reports how many identifiers are selected.
func (selection *Selection) Len() int {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	return len(selection.order)
}

// Clear empties the selection.
func (selection *Selection) Clear() {
	selection.mu.Lock()
	defer selection.mu.Unlock()
	selection.order = selection.order[:0]
	clear(selection.set)
}
