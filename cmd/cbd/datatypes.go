/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/cbd-helper/internal/app"
	"github.com/cristianoliveira/cbd-helper/internal/colors"
)

type dataTypesClient interface {
	ShowDataTypes(ctx context.Context) (app.Snapshot, error)
	SetDataTypes(ctx context.Context, ids []string) error
	DisableDataTypes(ctx context.Context, ids ...string) error
	EnableDataTypes(ctx context.Context, ids ...string) error
}

const dataTypesCommandLong = `Manage the stored data type configuration.

USAGE:
    cbd datatypes <subcommand>

SUBCOMMANDS:
    show                 Print dataTypes and disabledDataTypes as JSON
    set <id>...          Replace the list of known data types
    disable <id>...      Turn data types off
    enable <id>...       Turn data types back on

EXAMPLES:
    cbd datatypes set history downloads cookies cache
    cbd datatypes disable cookies
    cbd datatypes show`

// NewDataTypesCmd creates the datatypes command with explicit dependencies.
func NewDataTypesCmd(client dataTypesClient) *cobra.Command {
	if client == nil {
		panic("NewDataTypesCmd: client dependency cannot be nil")
	}

	dataTypesCmd := &cobra.Command{
		Use:   "datatypes",
		Short: "Manage data type settings",
		Long:  dataTypesCommandLong,
	}

	dataTypesCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the data type settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot, err := client.ShowDataTypes(cmd.Context())
				if err != nil {
					return fmt.Errorf("datatypes show: %w", err)
				}
				data, err := json.MarshalIndent(snapshot, "", "  ")
				if err != nil {
					return fmt.Errorf("datatypes show: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <id>...",
			Short: "Replace the list of data types",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := client.SetDataTypes(cmd.Context(), splitIDs(args)); err != nil {
					return err
				}
				colors.Success("data types updated")
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable <id>...",
			Short: "Disable data types",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := client.DisableDataTypes(cmd.Context(), splitIDs(args)...); err != nil {
					return err
				}
				colors.Success("disabled " + strings.Join(splitIDs(args), ", "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "enable <id>...",
			Short: "Enable data types",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := client.EnableDataTypes(cmd.Context(), splitIDs(args)...); err != nil {
					return err
				}
				colors.Success("enabled " + strings.Join(splitIDs(args), ", "))
				return nil
			},
		},
	)
	return dataTypesCmd
}

// splitIDs accepts both "a b" and "a,b".
func splitIDs(args []string) []string {
	var ids []string
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
