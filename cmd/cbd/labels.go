/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/cbd-helper/internal/app"
	"github.com/cristianoliveira/cbd-helper/internal/i18n"
)

type labelsClient interface {
	Localizer() (i18n.Localizer, error)
}

const labelsCommandLong = `Resolve the localized labels of a catalog.

The catalog is a TOML file of [[group]] tables, each with a name and a list
of item IDs. Each item's label is looked up as <scope>_<id>, or <id> when no
scope is given. With --short-scope a short label is resolved as well.

USAGE:
    cbd labels --catalog FILE [OPTIONS]

OPTIONS:
    --catalog FILE        Catalog to resolve
    --scope NAME          Message prefix for labels
    --short-scope NAME    Message prefix for short labels
    --json                Print JSON
    -h, --help            Show this help

EXAMPLES:
    cbd labels --catalog catalog.toml --scope dataType --short-scope shortDataType`

var (
	groupStyle = lipgloss.NewStyle().Bold(true)
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewLabelsCmd creates the labels command with explicit dependencies.
func NewLabelsCmd(client labelsClient) *cobra.Command {
	if client == nil {
		panic("NewLabelsCmd: client dependency cannot be nil")
	}

	var (
		catalogPath string
		opts        app.LabelOptions
		asJSON      bool
	)
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "Resolve catalog labels",
		Long:  labelsCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := app.LoadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("labels: %w", err)
			}
			loc, err := client.Localizer()
			if err != nil {
				return fmt.Errorf("labels: %w", err)
			}
			labels := app.ListItems(loc, catalog, opts)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(labels)
			}
			printLabels(cmd.OutOrStdout(), labels)
			return nil
		},
	}
	labelsCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog TOML file")
	labelsCmd.Flags().StringVar(&opts.Scope, "scope", "", "Message prefix for labels")
	labelsCmd.Flags().StringVar(&opts.ShortScope, "short-scope", "", "Message prefix for short labels")
	labelsCmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	_ = labelsCmd.MarkFlagRequired("catalog")
	return labelsCmd
}

func printLabels(w io.Writer, labels app.Labels) {
	for i, group := range labels {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, groupStyle.Render(group.Name))
		for _, item := range group.Items {
			line := "  " + item.Label
			if item.ShortLabel != nil {
				line += " / " + *item.ShortLabel
			}
			fmt.Fprintln(w, strings.TrimRight(line, " ")+" "+idStyle.Render("("+item.ID+")"))
		}
	}
}
