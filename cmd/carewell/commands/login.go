// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
)

type loginParams struct {
	Token string `flag:"token" desc:"API token (prompted interactively when omitted)"`
}

// loginCommand stores the API token, sealed at rest. Interactive use
// prompts with echo off; scripts pass --token or pipe the token on
// stdin.
func loginCommand() *cli.Command {
	var params loginParams
	return &cli.Command{
		Name:    "login",
		Summary: "Store the API token for this machine",
		Usage:   "carewell login [--token <token>]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("login", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext("login")
			if err != nil {
				return err
			}

			token := params.Token
			if token == "" {
				token, err = readToken()
				if err != nil {
					return err
				}
			}
			if token == "" {
				return fmt.Errorf("no token provided")
			}

			if err := app.Store.SaveToken(token); err != nil {
				return err
			}

			// Verify the token against the API before declaring
			// success; a typo'd token would otherwise surface as a
			// confusing 401 later.
			profile, err := app.Client.Profile(context.Background())
			if err != nil {
				fmt.Fprintln(os.Stderr, "token stored, but verification failed:", err)
				return &cli.ExitError{Code: 1}
			}
			fmt.Fprintf(os.Stderr, "logged in as %s (%s)\n", profile.FullName, profile.Role)
			return nil
		},
	}
}

// readToken prompts on a terminal with echo off, or reads one line
// from piped stdin.
func readToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "API token: ")
		token, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(token)), nil
	}

	var token string
	if _, err := fmt.Fscanln(os.Stdin, &token); err != nil {
		return "", fmt.Errorf("reading token from stdin: %w", err)
	}
	return strings.TrimSpace(token), nil
}

// logoutCommand removes the stored token. Idempotent.
func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Remove the stored API token",
		Run: func(args []string) error {
			app, err := newAppContext("logout")
			if err != nil {
				return err
			}
			if err := app.Store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "logged out")
			return nil
		},
	}
}

// whoamiCommand shows the authenticated admin's own record.
func whoamiCommand() *cli.Command {
	var params struct {
		cli.JSONOutput
	}
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the authenticated account",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("whoami", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext("whoami")
			if err != nil {
				return err
			}
			if !app.Store.HasToken() && os.Getenv("CAREWELL_TOKEN") == "" {
				fmt.Fprintln(os.Stderr, "not logged in")
				return &cli.ExitError{Code: 1}
			}
			profile, err := app.Client.Profile(context.Background())
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(profile); done {
				return err
			}
			fmt.Printf("%s <%s> (%s)\n", profile.FullName, profile.Email, profile.Role)
			return nil
		},
	}
}
