/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
	"github.com/cristianoliveira/cbd-helper/internal/config"
	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/logging"
	"github.com/cristianoliveira/cbd-helper/internal/version"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "cbd",
	Short:         "Helpers of the Clear Browsing Data extension.",
	Long:          `Inspect data type settings, render labels, raise notifications and open the extension pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := Setup(); err != nil {
			return err
		}
		logging.Component("cli").Info("command started", "command", cmd.CommandPath(), "args_count", len(args))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug("logger shutdown:", err.Error())
		}
	},
}

// Setup loads configuration and starts logging. It is safe to call more than once.
func Setup() error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false) || colors.DebugEnabled())
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
	return nil
}

// Execute runs the root command. Errors are reported and returned.
func Execute() error {
	err := RootCmd.Execute()
	apperrors.Report(apperrors.NewDefaultCLIHandler(), err)
	return err
}

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{
	"enabled",
	"datatypes",
	"labels",
	"notify",
	"contribute",
	"project",
	"options",
	"help",
	"version",
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show this help message",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	})
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			if cmd.Long != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", cmd.Long)
			}
			return
		}
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", c.Name(), c.Short))
				break
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), `cbd v%s

%s

USAGE:
    cbd [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
}
