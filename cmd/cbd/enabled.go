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
)

type enabledClient interface {
	EnabledDataTypes(ctx context.Context) ([]string, error)
}

const enabledCommandLong = `Print the data types that are enabled.

The result is the stored dataTypes list without the entries of
disabledDataTypes, in dataTypes order.

USAGE:
    cbd enabled [OPTIONS]

OPTIONS:
    --json      Print a JSON array
    -h, --help  Show this help`

// NewEnabledCmd creates the enabled command with explicit dependencies.
func NewEnabledCmd(client enabledClient) *cobra.Command {
	if client == nil {
		panic("NewEnabledCmd: client dependency cannot be nil")
	}

	var asJSON bool
	enabledCmd := &cobra.Command{
		Use:   "enabled",
		Short: "Print the enabled data types",
		Long:  enabledCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := client.EnabledDataTypes(cmd.Context())
			if err != nil {
				return fmt.Errorf("enabled: %w", err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(enabled)
			}
			if len(enabled) > 0 {
				fmt.Fprintln(out, strings.Join(enabled, "\n"))
			}
			return nil
		},
	}
	enabledCmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON array")
	return enabledCmd
}
