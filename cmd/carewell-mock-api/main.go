// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

// Command carewell-mock-api serves an in-memory stand-in for the
// Carewell backend: same paths, same envelopes, same error shapes.
// Point the carewell CLI at it for local development and demos.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory may carry CAREWELL_MOCK_TOKEN;
	// its absence is fine.
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("carewell-mock-api", pflag.ContinueOnError)
	addr := flags.String("addr", ":4000", "listen address")
	seed := flags.Bool("seed", true, "load fixture data on startup")
	token := flags.String("token", os.Getenv("CAREWELL_MOCK_TOKEN"),
		"required bearer token (empty disables auth)")
	verbose := flags.BoolP("verbose", "v", false, "log every request")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store := newStore()
	if *seed {
		seedFixtures(store)
	}
	server := newServer(store, *token, logger)

	logger.Info("mock API listening",
		"addr", *addr,
		"seeded", *seed,
		"auth", *token != "",
	)
	httpServer := &http.Server{Addr: *addr, Handler: server.router()}
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
