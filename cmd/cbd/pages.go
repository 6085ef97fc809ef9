/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/cbd-helper/internal/host"
)

type contributeClient interface {
	ShowContributePage(ctx context.Context, action string) (host.Tab, error)
	ContributePageLastOpen(ctx context.Context) (time.Time, bool, error)
}

type projectClient interface {
	ShowProjectPage(ctx context.Context) (host.Tab, error)
}

const contributeCommandLong = `Open the contribution page next to the active tab.

The time of the last opening is stored and can be printed with --status.

USAGE:
    cbd contribute [OPTIONS]

OPTIONS:
    --action NAME   Pass an action to the page
    --status        Print when the page was last opened instead
    -h, --help      Show this help`

// NewContributeCmd creates the contribute command with explicit dependencies.
func NewContributeCmd(client contributeClient) *cobra.Command {
	if client == nil {
		panic("NewContributeCmd: client dependency cannot be nil")
	}

	var (
		action string
		status bool
	)
	contributeCmd := &cobra.Command{
		Use:   "contribute",
		Short: "Open the contribution page",
		Long:  contributeCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status {
				return printLastOpen(cmd, client)
			}
			tab, err := client.ShowContributePage(cmd.Context(), action)
			if err != nil {
				return fmt.Errorf("contribute: %w", err)
			}
			printTab(cmd, tab)
			return nil
		},
	}
	contributeCmd.Flags().StringVar(&action, "action", "", "Pass an action to the page")
	contributeCmd.Flags().BoolVar(&status, "status", false, "Print when the page was last opened")
	return contributeCmd
}

func printLastOpen(cmd *cobra.Command, client contributeClient) error {
	at, ok, err := client.ContributePageLastOpen(cmd.Context())
	if err != nil {
		return fmt.Errorf("contribute: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "never opened")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), at.Format(time.RFC3339))
	return nil
}

// NewProjectCmd creates the project command with explicit dependencies.
func NewProjectCmd(client projectClient) *cobra.Command {
	if client == nil {
		panic("NewProjectCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "project",
		Short: "Open the project homepage",
		Long:  `Open the project homepage next to the active tab.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := client.ShowProjectPage(cmd.Context())
			if err != nil {
				return fmt.Errorf("project: %w", err)
			}
			printTab(cmd, tab)
			return nil
		},
	}
}

func printTab(cmd *cobra.Command, tab host.Tab) {
	if tab.ID == "" {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "opened tab %s at index %d\n", tab.ID, tab.Index)
}
