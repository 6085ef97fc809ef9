package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cristianoliveira/cbd-helper/internal/errors"
	"github.com/cristianoliveira/cbd-helper/internal/host"
	"github.com/cristianoliveira/cbd-helper/internal/i18n"
)

var notifyLocalizer = i18n.StaticLocalizer{
	"extensionName":   "Clear Browsing Data",
	"info_dataCleared": "Browsing data has been cleared.",
}

func TestShowResolvesTitleAndMessage(t *testing.T) {
	notifications := new(mockNotifications)
	notifications.On("Create", mock.Anything, "cbd-notification-info", host.NotificationOptions{
		Type:    "basic",
		Title:   "Clear Browsing Data",
		Message: "Browsing data has been cleared.",
		IconURL: "/src/icons/app/icon-48.png",
	}).Return("cbd-notification-info", nil)

	id, err := NewNotifier(notifications, notifyLocalizer).Show(context.Background(), NotificationRequest{MessageID: "info_dataCleared"})

	require.NoError(t, err)
	assert.Equal(t, "cbd-notification-info", id)
	notifications.AssertExpectations(t)
}

func TestShowUsesLiteralValuesAndType(t *testing.T) {
	notifications := new(mockNotifications)
	notifications.On("Create", mock.Anything, "cbd-notification-error", host.NotificationOptions{
		Type:    "basic",
		Title:   "Custom",
		Message: "literal",
		IconURL: "/src/icons/app/icon-48.png",
	}).Return("host-id", nil)

	id, err := NewNotifier(notifications, notifyLocalizer).Show(context.Background(), NotificationRequest{
		Message:   "literal",
		MessageID: "info_dataCleared",
		Title:     "Custom",
		Type:      "error",
	})

	require.NoError(t, err)
	assert.Equal(t, "host-id", id, "the host result is returned as is")
	notifications.AssertExpectations(t)
}

func TestShowWrapsHostFailure(t *testing.T) {
	notifications := new(mockNotifications)
	notifications.On("Create", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("denied"))

	_, err := NewNotifier(notifications, notifyLocalizer).Show(context.Background(), NotificationRequest{Message: "x"})

	assert.ErrorIs(t, err, apperrors.ErrHostAPI)
	assert.ErrorContains(t, err, "denied")
}

func TestNotificationIDIsStablePerType(t *testing.T) {
	assert.Equal(t, "cbd-notification-info", NotificationID(""))
	assert.Equal(t, "cbd-notification-warning", NotificationID("warning"))
	assert.Equal(t, NotificationID("error"), NotificationID("error"))
}

func TestNewNotifierPanicsOnNilDependencies(t *testing.T) {
	assert.Panics(t, func() { NewNotifier(nil, notifyLocalizer) })
	assert.Panics(t, func() { NewNotifier(new(mockNotifications), nil) })
}
