// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"testing"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
)

// Every API resource the client types must be reachable from the
// command tree, each with the standard CRUD subcommands.
func TestRootCoversEveryResource(t *testing.T) {
	root := Root()

	groups := []string{
		"notices", "services", "events", "news", "research", "users",
		"donors", "urgent", "appointments", "feedback", "careers",
		"ambulance", "gallery",
	}
	for _, name := range groups {
		group := findSubcommand(root, name)
		if group == nil {
			t.Errorf("command group %q missing from the tree", name)
			continue
		}
		for _, sub := range []string{"list", "get", "create", "update", "delete"} {
			if findSubcommand(group, sub) == nil {
				t.Errorf("%s is missing the %s subcommand", name, sub)
			}
		}
	}
}

func TestResourceExtrasRegistered(t *testing.T) {
	root := Root()
	if findSubcommand(findSubcommand(root, "donors"), "stats") == nil {
		t.Error("donors must carry the stats subcommand")
	}
	if findSubcommand(findSubcommand(root, "gallery"), "upload") == nil {
		t.Error("gallery must carry the upload subcommand")
	}
}

func findSubcommand(parent *cli.Command, name string) *cli.Command {
	if parent == nil {
		return nil
	}
	for _, command := range parent.Subcommands {
		if command.Name == name {
			return command
		}
	}
	return nil
}
