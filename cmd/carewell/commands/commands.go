// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete carewell CLI command tree: the
// dashboard, authentication, and one command group per API resource.
package commands

import (
	"fmt"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
	"github.com/carewell-health/carewell/lib/version"
)

// Root builds and returns the complete carewell command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "carewell",
		Description: `Carewell: hospital content management from the terminal.

Manage notices, services, events, blood donation, appointments, and
the rest of the public site's content through the Carewell API.`,
		Subcommands: []*cli.Command{
			dashboardCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			noticesCommand(),
			servicesCommand(),
			eventsCommand(),
			newsCommand(),
			researchCommand(),
			usersCommand(),
			donorsCommand(),
			urgentCommand(),
			appointmentsCommand(),
			feedbackCommand(),
			careersCommand(),
			ambulanceCommand(),
			galleryCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Println(version.String())
					return nil
				},
			},
		},
	}
}
