package app

import (
	"context"

	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/i18n"
)

const (
	// DefaultNotificationType is used when a request has no type.
	DefaultNotificationType = "info"

	notificationIDPrefix = "cbd-notification-"
	notificationTemplate = "basic"
	notificationIconPath = "/src/icons/app/icon-48.png"
)

// NotificationRequest describes a notification. Either Message or MessageID
// should be set; Message wins when both are.
type NotificationRequest struct {
	Message   string
	MessageID string
	Title     string
	Type      string
}

// NotificationID returns the host ID for notifications of type kind.
// Notifications of one type replace each other.
func NotificationID(kind string) string {
	if kind == "" {
		kind = DefaultNotificationType
	}
	return notificationIDPrefix + kind
}

// Notifier shows localized notifications.
type Notifier struct {
	notifications host.Notifications
	loc           i18n.Localizer
}

// NewNotifier creates a Notifier.
func NewNotifier(notifications host.Notifications, loc i18n.Localizer) *Notifier {
	if notifications == nil {
		panic("NewNotifier: notifications dependency cannot be nil")
	}
	if loc == nil {
		panic("NewNotifier: localizer dependency cannot be nil")
	}
	return &Notifier{notifications: notifications, loc: loc}
}

// Show resolves the title and message of req and creates the notification.
// It returns the ID reported by the host.
func (n *Notifier) Show(ctx context.Context, req NotificationRequest) (string, error) {
	title := req.Title
	if title == "" {
		title = n.loc.Text("extensionName")
	}
	message := req.Message
	if message == "" && req.MessageID != "" {
		message = n.loc.Text(req.MessageID)
	}

	id, err := n.notifications.Create(ctx, NotificationID(req.Type), host.NotificationOptions{
		Type:    notificationTemplate,
		Title:   title,
		Message: message,
		IconURL: notificationIconPath,
	})
	if err != nil {
		return "", apperrors.HostAPI("create notification", err)
	}
	return id, nil
}
