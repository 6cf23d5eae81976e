// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package filterset narrows record collections for the management
// screens. A [Set] combines named equality filters (status, category,
// blood group) with a free-text search query; all active criteria must
// match for a record to pass. The query matches as a case-insensitive
// substring by default, or fzf-style fuzzy when [Set.Fuzzy] is on.
// Evaluation is pure: [Set.Apply] never mutates its input and the same
// input always yields the same output.
package filterset

import (
	"strings"

	"github.com/junegunn/fzf/src/util"

	"github.com/carewell-health/carewell/lib/tui"
)

// Getter extracts the string a filter or the search query is matched
// against. Records expose their filterable fields through getters so
// the set stays independent of any concrete record type.
type Getter[T any] func(T) string

type field[T any] struct {
	name string
	get  Getter[T]
}

// Set is the filter state for one screen: zero or more equality
// filters plus a search query. The zero value is unusable; construct
// with [New] and register fields before use.
type Set[T any] struct {
	fields     []field[T]
	searchable []Getter[T]
	values     map[string]string
	query      string
	queryRunes []rune

	fuzzy bool
	slab  *util.Slab
}

// New returns an empty set. Register equality filters with
// [Set.Field] and search targets with [Set.Searchable].
func New[T any]() *Set[T] {
	return &Set[T]{values: make(map[string]string)}
}

// Field registers a named equality filter. Matching is
// case-insensitive exact equality against the getter's value.
func (set *Set[T]) Field(name string, get Getter[T]) *Set[T] {
	set.fields = append(set.fields, field[T]{name: name, get: get})
	return set
}

// Searchable registers getters the search query is matched against. A
// record passes the search when the query matches any registered
// getter's value: case-insensitive substring by default, fuzzy when
// [Set.Fuzzy] is enabled.
func (set *Set[T]) Searchable(getters ...Getter[T]) *Set[T] {
	set.searchable = append(set.searchable, getters...)
	return set
}

// Fuzzy switches the search query between substring and fzf-style
// fuzzy matching. Fuzzy queries match characters in order without
// requiring adjacency, so "kmu" finds "Kamal Uddin". Equality filters
// are unaffected.
func (set *Set[T]) Fuzzy(enabled bool) *Set[T] {
	set.fuzzy = enabled
	if enabled && set.slab == nil {
		set.slab = util.MakeSlab(100*1024, 2048)
	}
	return set
}

// SetValue sets the current value of a named filter. The empty string
// and the sentinel "all" (any case) both deactivate the filter.
// Setting a name that was never registered is a no-op.
func (set *Set[T]) SetValue(name, value string) {
	if !set.registered(name) {
		return
	}
	if value == "" || strings.EqualFold(value, "all") {
		delete(set.values, name)
		return
	}
	set.values[name] = value
}

// Value reports the current value of a named filter, or "" when the
// filter is inactive.
func (set *Set[T]) Value(name string) string {
	return set.values[name]
}

// SetQuery replaces the search query. Leading and trailing whitespace
// is ignored; a blank query deactivates the search.
func (set *Set[T]) SetQuery(query string) {
	set.query = strings.TrimSpace(query)
	set.queryRunes = []rune(set.query)
}

// Query reports the current search query.
func (set *Set[T]) Query() string {
	return set.query
}

// Reset deactivates every filter and clears the search query.
func (set *Set[T]) Reset() {
	clear(set.values)
	set.query = ""
	set.queryRunes = nil
}

// Active reports whether any filter or the search query is currently
// narrowing results.
func (set *Set[T]) Active() bool {
	return len(set.values) > 0 || set.query != ""
}

// Matches reports whether a single record passes every active
// criterion. An inactive set matches everything.
func (set *Set[T]) Matches(item T) bool {
	for _, f := range set.fields {
		want, active := set.values[f.name]
		if !active {
			continue
		}
		if !strings.EqualFold(f.get(item), want) {
			return false
		}
	}
	if set.query == "" {
		return true
	}
	if set.fuzzy {
		for _, get := range set.searchable {
			if tui.FuzzyMatch(get(item), set.queryRunes, set.slab).Score > 0 {
				return true
			}
		}
		return false
	}
	needle := strings.ToLower(set.query)
	for _, get := range set.searchable {
		if strings.Contains(strings.ToLower(get(item)), needle) {
			return true
		}
	}
	return false
}

// Apply returns the records that pass [Set.Matches], preserving input
// order. The input slice is never modified; the result is always a
// fresh slice, so deactivating filters later restores the full
// collection from the caller's original.
func (set *Set[T]) Apply(items []T) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if set.Matches(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (set *Set[T]) registered(name string) bool {
	for _, f := range set.fields {
		if f.name == name {
			return true
		}
	}
	return false
}
