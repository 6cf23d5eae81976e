// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
	"github.com/carewell-health/carewell/lib/adminui"
	"github.com/carewell-health/carewell/lib/prefs"
	"github.com/carewell-health/carewell/lib/sessioncache"
)

// dashboardCommand launches the interactive terminal dashboard.
func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Summary: "Interactive terminal dashboard",
		Description: `Open the full-screen management dashboard: one tab per resource,
with filtering, search, create/edit forms, and status transitions.`,
		Run: func(args []string) error {
			app, err := newAppContext("dashboard")
			if err != nil {
				return err
			}
			if err := app.Config.EnsurePaths(); err != nil {
				return err
			}

			preferences, err := prefs.Load(app.Config.Paths.Prefs)
			if err != nil {
				// Defaults already applied; note and continue.
				app.Logger.Warn("loading preferences", "error", err)
			}
			cache := sessioncache.New(app.Config.Paths.Cache)

			model := adminui.NewModel(
				adminui.Screens(app.Client),
				preferences,
				app.Config.Paths.Prefs,
				cache,
			)

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}
}
