// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
	"github.com/carewell-health/carewell/lib/api"
	"github.com/carewell-health/carewell/lib/config"
	"github.com/carewell-health/carewell/lib/credential"
)

// appContext bundles the pieces every command needs: resolved
// configuration, the API client with the sealed-token source behind
// it, and a scoped logger.
type appContext struct {
	Config *config.Config
	Client *api.Client
	Store  *credential.Store
	Logger *slog.Logger
}

// newAppContext resolves configuration and builds the API client.
// CAREWELL_CONFIG selects the config file; without it the built-in
// defaults apply (localhost API, ~/.config/carewell state).
func newAppContext(command string) (*appContext, error) {
	logger := cli.NewCommandLogger().With("command", command)

	var cfg *config.Config
	var err error
	if os.Getenv("CAREWELL_CONFIG") != "" {
		cfg, err = config.Load()
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	} else {
		cfg = config.Default()
	}

	store := credential.NewStore(cfg.Paths.Credentials)
	client := api.New(cfg.API.BaseURL, credential.Source{Store: store},
		api.WithTimeout(cfg.API.RequestTimeout()),
		api.WithLogger(logger),
	)

	return &appContext{
		Config: cfg,
		Client: client,
		Store:  store,
		Logger: logger,
	}, nil
}
