// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package filterset

import (
	"reflect"
	"testing"
)

type donor struct {
	name       string
	bloodGroup string
	status     string
}

func donorSet() *Set[donor] {
	return New[donor]().
		Field("bloodGroup", func(d donor) string { return d.bloodGroup }).
		Field("status", func(d donor) string { return d.status }).
		Searchable(
			func(d donor) string { return d.name },
			func(d donor) string { return d.bloodGroup },
		)
}

var donors = []donor{
	{name: "Amina Rahman", bloodGroup: "O+", status: "registered"},
	{name: "Brian Okafor", bloodGroup: "A-", status: "completed"},
	{name: "Carla Mendes", bloodGroup: "O+", status: "completed"},
	{name: "Dev Patel", bloodGroup: "B+", status: "registered"},
}

func TestEqualityFilter(t *testing.T) {
	set := donorSet()
	set.SetValue("bloodGroup", "O+")
	got := set.Apply(donors)
	if len(got) != 2 || got[0].name != "Amina Rahman" || got[1].name != "Carla Mendes" {
		t.Errorf("Apply = %+v, want the two O+ donors in input order", got)
	}
}

func TestFiltersCompose(t *testing.T) {
	set := donorSet()
	set.SetValue("bloodGroup", "O+")
	set.SetValue("status", "completed")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Carla Mendes" {
		t.Errorf("Apply = %+v, want only Carla Mendes", got)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	set := donorSet()
	set.SetQuery("RAHM")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Amina Rahman" {
		t.Errorf("Apply = %+v, want only Amina Rahman", got)
	}
}

func TestSearchMatchesAnySearchableField(t *testing.T) {
	set := donorSet()
	set.SetQuery("a-")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Brian Okafor" {
		t.Errorf("Apply = %+v, want the A- donor via blood group field", got)
	}
}

func TestSearchCombinesWithFilters(t *testing.T) {
	set := donorSet()
	set.SetValue("status", "registered")
	set.SetQuery("o+")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Amina Rahman" {
		t.Errorf("Apply = %+v, want registered AND matching o+", got)
	}
}

func TestSentinelsDeactivate(t *testing.T) {
	set := donorSet()
	set.SetValue("status", "completed")
	set.SetValue("status", "All")
	if got := set.Apply(donors); len(got) != len(donors) {
		t.Errorf("after All sentinel, Apply kept %d of %d", len(got), len(donors))
	}
	set.SetValue("status", "completed")
	set.SetValue("status", "")
	if got := set.Apply(donors); len(got) != len(donors) {
		t.Errorf("after empty sentinel, Apply kept %d of %d", len(got), len(donors))
	}
	if set.Active() {
		t.Error("set must report inactive once all filters cleared")
	}
}

func TestUnregisteredFilterIgnored(t *testing.T) {
	set := donorSet()
	set.SetValue("department", "cardiology")
	if set.Active() {
		t.Error("setting an unregistered filter must not activate the set")
	}
	if got := set.Apply(donors); len(got) != len(donors) {
		t.Errorf("Apply dropped records for an unregistered filter: %+v", got)
	}
}

func TestApplyIsPure(t *testing.T) {
	set := donorSet()
	set.SetValue("bloodGroup", "O+")
	set.SetQuery("carla")

	before := make([]donor, len(donors))
	copy(before, donors)

	first := set.Apply(donors)
	second := set.Apply(donors)

	if !reflect.DeepEqual(donors, before) {
		t.Error("Apply mutated its input slice")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Apply not deterministic: %+v vs %+v", first, second)
	}
}

func TestResetRestoresFullCollection(t *testing.T) {
	set := donorSet()
	set.SetValue("status", "completed")
	set.SetQuery("carla")
	if got := set.Apply(donors); len(got) != 1 {
		t.Fatalf("narrowed Apply = %+v", got)
	}
	set.Reset()
	got := set.Apply(donors)
	if !reflect.DeepEqual(got, donors) {
		t.Errorf("after Reset, Apply = %+v, want the full collection", got)
	}
}

func TestFuzzyQueryMatchesNonAdjacent(t *testing.T) {
	set := donorSet().Fuzzy(true)
	set.SetQuery("amrh")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Amina Rahman" {
		t.Errorf("Apply = %+v, want Amina Rahman via fuzzy match", got)
	}
}

func TestSubstringModeRejectsFuzzyQuery(t *testing.T) {
	set := donorSet()
	set.SetQuery("amrh")
	if got := set.Apply(donors); len(got) != 0 {
		t.Errorf("Apply = %+v, want nothing: substring mode needs adjacency", got)
	}
}

func TestFuzzyCombinesWithFilters(t *testing.T) {
	set := donorSet().Fuzzy(true)
	set.SetValue("status", "completed")
	set.SetQuery("crlmds")
	got := set.Apply(donors)
	if len(got) != 1 || got[0].name != "Carla Mendes" {
		t.Errorf("Apply = %+v, want completed AND fuzzy-matching Carla Mendes", got)
	}
}

func TestBlankQueryMatchesAll(t *testing.T) {
	set := donorSet()
	set.SetQuery("   ")
	if set.Active() {
		t.Error("whitespace-only query must not activate the search")
	}
	if got := set.Apply(donors); len(got) != len(donors) {
		t.Errorf("Apply = %+v, want everything", got)
	}
}
