/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/cbd-helper/internal/app"
)

type notifyClient interface {
	Notify(ctx context.Context, req app.NotificationRequest) (string, error)
}

const notifyCommandLong = `Show a notification.

Either a literal message or --message-id must be given. The title defaults
to the extension name. Notifications of the same type replace each other.

USAGE:
    cbd notify [MESSAGE] [OPTIONS]

OPTIONS:
    --message-id NAME   Localized message to show
    --title TEXT        Notification title
    --type TYPE         Notification type (default: info)
    -h, --help          Show this help

EXAMPLES:
    cbd notify --message-id info_dataCleared
    cbd notify --type error "Clearing failed"`

// NewNotifyCmd creates the notify command with explicit dependencies.
func NewNotifyCmd(client notifyClient) *cobra.Command {
	if client == nil {
		panic("NewNotifyCmd: client dependency cannot be nil")
	}

	var req app.NotificationRequest
	notifyCmd := &cobra.Command{
		Use:   "notify [message]",
		Short: "Show a notification",
		Long:  notifyCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Message = strings.TrimSpace(strings.Join(args, " "))
			if req.Message == "" && req.MessageID == "" {
				return fmt.Errorf("notify: a message or --message-id is required")
			}
			id, err := client.Notify(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("notify: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	notifyCmd.Flags().StringVar(&req.MessageID, "message-id", "", "Localized message to show")
	notifyCmd.Flags().StringVar(&req.Title, "title", "", "Notification title")
	notifyCmd.Flags().StringVar(&req.Type, "type", app.DefaultNotificationType, "Notification type")
	return notifyCmd
}
