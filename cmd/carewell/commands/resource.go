// Copyright 2026 The Carewell Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/carewell-health/carewell/cmd/carewell/cli"
	"github.com/carewell-health/carewell/lib/api"
	"github.com/carewell-health/carewell/lib/mutate"
)

// column describes one field of the text table a list command prints.
type column[T any] struct {
	header string
	value  func(T) string
}

// resourceSpec declares one resource command group. The generic
// builder turns it into the standard list/get/create/update/
// set-status/delete subcommands.
type resourceSpec[T any] struct {
	name       string // Command group name ("donors").
	singular   string // Record name for prompts ("donor").
	collection func(*api.Client) api.Collection[T]
	columns    []column[T]
	// extra subcommands appended after the standard set (stats,
	// upload).
	extra []*cli.Command
}

// resourceGroup builds the command group for one resource.
func resourceGroup[T any](spec resourceSpec[T]) *cli.Command {
	group := &cli.Command{
		Name:    spec.name,
		Summary: "Manage " + spec.name,
		Subcommands: []*cli.Command{
			listCommand(spec),
			getCommand(spec),
			createCommand(spec),
			updateCommand(spec),
			setStatusCommand(spec),
			deleteCommand(spec),
		},
	}
	group.Subcommands = append(group.Subcommands, spec.extra...)
	return group
}

type listParams struct {
	cli.JSONOutput
	Filters []string `flag:"filter,f" desc:"server-side filter as key=value (repeatable)"`
}

func listCommand[T any](spec resourceSpec[T]) *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List " + spec.name,
		Usage:   fmt.Sprintf("carewell %s list [--filter key=value] [--json]", spec.name),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			app, err := newAppContext(spec.name + "/list")
			if err != nil {
				return err
			}

			query, err := parseFilters(params.Filters)
			if err != nil {
				return err
			}

			items, err := spec.collection(app.Client).List(context.Background(), query)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(items); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			headers := make([]string, len(spec.columns))
			for index, col := range spec.columns {
				headers[index] = strings.ToUpper(col.header)
			}
			fmt.Fprintln(tw, strings.Join(headers, "\t"))
			for _, item := range items {
				values := make([]string, len(spec.columns))
				for index, col := range spec.columns {
					values[index] = col.value(item)
				}
				fmt.Fprintln(tw, strings.Join(values, "\t"))
			}
			return tw.Flush()
		},
	}
}

func getCommand[T any](spec resourceSpec[T]) *cli.Command {
	return &cli.Command{
		Name:    "get",
		Summary: "Fetch one " + spec.singular + " by ID",
		Usage:   fmt.Sprintf("carewell %s get <id>", spec.name),
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ID argument")
			}
			app, err := newAppContext(spec.name + "/get")
			if err != nil {
				return err
			}
			item, err := spec.collection(app.Client).Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			return cli.WriteJSON(item)
		},
	}
}

func createCommand[T any](spec resourceSpec[T]) *cli.Command {
	return &cli.Command{
		Name:    "create",
		Summary: "Create a " + spec.singular + " from JSON",
		Usage:   fmt.Sprintf("carewell %s create <json|-> ", spec.name),
		Examples: []cli.Example{{
			Description: "create from a shell heredoc",
			Command:     fmt.Sprintf("carewell %s create - < record.json", spec.name),
		}},
		Run: func(args []string) error {
			record, err := readRecordJSON[T](args)
			if err != nil {
				return err
			}
			app, err := newAppContext(spec.name + "/create")
			if err != nil {
				return err
			}
			created, err := spec.collection(app.Client).Create(context.Background(), record)
			if err != nil {
				return err
			}
			return cli.WriteJSON(created)
		},
	}
}

func updateCommand[T any](spec resourceSpec[T]) *cli.Command {
	return &cli.Command{
		Name:    "update",
		Summary: "Replace a " + spec.singular + " with JSON",
		Usage:   fmt.Sprintf("carewell %s update <id> <json|->", spec.name),
		Run: func(args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("expected an ID argument")
			}
			record, err := readRecordJSON[T](args[1:])
			if err != nil {
				return err
			}
			app, err := newAppContext(spec.name + "/update")
			if err != nil {
				return err
			}
			updated, err := spec.collection(app.Client).Update(context.Background(), args[0], record)
			if err != nil {
				return err
			}
			return cli.WriteJSON(updated)
		},
	}
}

func setStatusCommand[T any](spec resourceSpec[T]) *cli.Command {
	return &cli.Command{
		Name:    "set-status",
		Summary: "Patch a " + spec.singular + "'s status",
		Usage:   fmt.Sprintf("carewell %s set-status <id> <status>", spec.name),
		Run: func(args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <id> <status>")
			}
			app, err := newAppContext(spec.name + "/set-status")
			if err != nil {
				return err
			}
			patched, err := spec.collection(app.Client).Patch(context.Background(),
				args[0], map[string]any{"status": args[1]})
			if err != nil {
				return err
			}
			return cli.WriteJSON(patched)
		},
	}
}

type deleteParams struct {
	Yes bool `flag:"yes,y" desc:"skip the confirmation prompt"`
}

func deleteCommand[T any](spec resourceSpec[T]) *cli.Command {
	var params deleteParams
	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a " + spec.singular,
		Usage:   fmt.Sprintf("carewell %s delete <id> [--yes]", spec.name),
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one ID argument")
			}
			app, err := newAppContext(spec.name + "/delete")
			if err != nil {
				return err
			}

			confirm := terminalConfirm
			if params.Yes {
				confirm = func(string) (bool, error) { return true, nil }
			}

			dispatcher := mutate.New(printSink{}, app.Logger)
			err = dispatcher.DispatchDestructive(context.Background(),
				mutate.ConfirmFunc(confirm),
				fmt.Sprintf("Delete %s %s?", spec.singular, args[0]),
				mutate.Op{
					Action: func(ctx context.Context) error {
						return spec.collection(app.Client).Delete(ctx, args[0])
					},
					Success: "Deleted " + spec.singular + " " + args[0],
				})
			if errors.Is(err, mutate.ErrDeclined) {
				fmt.Fprintln(os.Stderr, "aborted")
				return nil
			}
			return err
		},
	}
}

// terminalConfirm asks y/N on the terminal.
func terminalConfirm(prompt string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// printSink writes mutation outcomes to the terminal instead of a
// toast bar.
type printSink struct{}

func (printSink) Success(message string) { fmt.Fprintln(os.Stderr, message) }
func (printSink) Failure(message string) { fmt.Fprintln(os.Stderr, "error: "+message) }

// readRecordJSON decodes a record from the single JSON argument, or
// from stdin when the argument is "-" or absent.
func readRecordJSON[T any](args []string) (T, error) {
	var record T

	var raw []byte
	switch {
	case len(args) == 0 || args[0] == "-":
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return record, fmt.Errorf("reading stdin: %w", err)
		}
		raw = content
	case len(args) == 1:
		raw = []byte(args[0])
	default:
		return record, fmt.Errorf("expected one JSON argument or - for stdin")
	}

	if err := json.Unmarshal(raw, &record); err != nil {
		return record, fmt.Errorf("parsing record JSON: %w", err)
	}
	return record, nil
}

// parseFilters turns repeated key=value pairs into query parameters.
func parseFilters(filters []string) (url.Values, error) {
	if len(filters) == 0 {
		return nil, nil
	}
	query := url.Values{}
	for _, filter := range filters {
		key, value, ok := strings.Cut(filter, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", filter)
		}
		query.Set(key, value)
	}
	return query, nil
}
