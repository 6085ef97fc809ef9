package tmux

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/cbd-helper/internal/host"
)

// windowFormat prints the index and ID of a window.
const windowFormat = "#{window_index} #{window_id}"

// Host implements host.Tabs and host.Notifications on top of tmux.
// Window indexes are tab indexes; a new tab runs the browser command in a
// new window.
type Host struct {
	client          Client
	browserCommand  string
	displayDuration time.Duration
}

var (
	_ host.Tabs          = (*Host)(nil)
	_ host.Notifications = (*Host)(nil)
)

// New creates a Host backed by client.
func New(client Client, opts ...Option) *Host {
	if client == nil {
		panic("tmux.New: client cannot be nil")
	}
	h := &Host{
		client:          client,
		browserCommand:  DefaultBrowserCommand,
		displayDuration: DefaultDisplayDuration,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ActiveTab returns the current window.
func (h *Host) ActiveTab(ctx context.Context) (host.Tab, error) {
	stdout, _, err := h.client.Run(ctx, "display", "-p", windowFormat)
	if err != nil {
		return host.Tab{}, fmt.Errorf("failed to get active window: %w", err)
	}
	return parseWindow(stdout)
}

// CreateTab opens url in a new window at opts.Index, shifting later windows
// up. An index of zero or less lets tmux pick the first free index.
func (h *Host) CreateTab(ctx context.Context, url string, opts host.CreateTabOptions) (host.Tab, error) {
	args := []string{"new-window", "-P", "-F", windowFormat}
	if opts.Index > 0 {
		args = append(args, "-a", "-t", ":"+strconv.Itoa(opts.Index-1))
	}
	args = append(args, h.browserCommand+" "+shellQuote(url))

	stdout, _, err := h.client.Run(ctx, args...)
	if err != nil {
		return host.Tab{}, fmt.Errorf("failed to open window: %w", err)
	}
	tab, err := parseWindow(stdout)
	if err != nil {
		return host.Tab{}, err
	}
	tab.URL = url
	return tab, nil
}

// Create displays the notification on the status line and returns id.
func (h *Host) Create(ctx context.Context, id string, opts host.NotificationOptions) (string, error) {
	text := opts.Message
	if opts.Title != "" {
		text = opts.Title + ": " + text
	}
	ms := strconv.FormatInt(h.displayDuration.Milliseconds(), 10)
	if _, _, err := h.client.Run(ctx, "display-message", "-d", ms, escapeFormat(text)); err != nil {
		return "", fmt.Errorf("failed to display notification %s: %w", id, err)
	}
	return id, nil
}

func parseWindow(out string) (host.Tab, error) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return host.Tab{}, fmt.Errorf("%w: window %q", ErrUnexpectedOutput, strings.TrimSpace(out))
	}
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return host.Tab{}, errors.Join(ErrUnexpectedOutput, err)
	}
	return host.Tab{ID: fields[1], Index: index}, nil
}

// shellQuote quotes s for the shell tmux runs window commands with.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// escapeFormat stops tmux from expanding #{...} sequences in message text.
func escapeFormat(s string) string {
	return strings.ReplaceAll(s, "#", "##")
}
