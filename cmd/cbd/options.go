/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type optionsClient interface {
	RunOptions(ctx context.Context) error
}

// NewOptionsCmd creates the options command with explicit dependencies.
func NewOptionsCmd(client optionsClient) *cobra.Command {
	if client == nil {
		panic("NewOptionsCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "options",
		Short: "Open the interactive options page",
		Long: `Open the interactive options page.

KEY BINDINGS:
    j/k         Move down/up
    space       Toggle the selected data type
    c           Open the contribution page
    p           Open the project page
    ?           Show all key bindings
    q           Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.RunOptions(cmd.Context()); err != nil {
				return fmt.Errorf("options: %w", err)
			}
			return nil
		},
	}
}
