// Package desktop hosts the helpers in a desktop session: URLs open in the
// system browser and notifications print to the terminal.
package desktop

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pkg/browser"

	"github.com/cristianoliveira/cbd-helper/internal/host"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyles  = map[string]lipgloss.Style{
		"info":    box(lipgloss.Color("12")),
		"success": box(lipgloss.Color("10")),
		"warning": box(lipgloss.Color("11")),
		"error":   box(lipgloss.Color("9")),
	}
)

func box(border lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// Host implements host.Tabs and host.Notifications for a desktop session.
// The system browser decides tab placement, so requested indexes are only
// recorded.
type Host struct {
	out     io.Writer
	openURL func(string) error

	mu     sync.Mutex
	active host.Tab
}

var (
	_ host.Tabs          = (*Host)(nil)
	_ host.Notifications = (*Host)(nil)
)

// Option configures a Host.
type Option func(*Host)

// WithOutput sets where notifications are printed. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(h *Host) { h.out = w }
}

// WithOpener replaces the function used to open URLs.
func WithOpener(fn func(string) error) Option {
	return func(h *Host) { h.openURL = fn }
}

// New creates a desktop Host.
func New(opts ...Option) *Host {
	h := &Host{
		out:     os.Stderr,
		openURL: browser.OpenURL,
		active:  host.Tab{ID: "0"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ActiveTab returns the last tab this host opened, or a placeholder at index 0.
func (h *Host) ActiveTab(_ context.Context) (host.Tab, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active, nil
}

// CreateTab opens url in the system browser.
func (h *Host) CreateTab(ctx context.Context, url string, opts host.CreateTabOptions) (host.Tab, error) {
	if err := ctx.Err(); err != nil {
		return host.Tab{}, err
	}
	if err := h.openURL(url); err != nil {
		return host.Tab{}, fmt.Errorf("open %s: %w", url, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = host.Tab{ID: uuid.NewString(), Index: opts.Index, URL: url}
	return h.active, nil
}

// Create prints the notification and returns id.
func (h *Host) Create(ctx context.Context, id string, opts host.NotificationOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	style, ok := boxStyles[notificationKind(id)]
	if !ok {
		style = boxStyles["info"]
	}
	body := opts.Message
	if opts.Title != "" {
		body = titleStyle.Render(opts.Title) + "\n" + body
	}
	if _, err := fmt.Fprintln(h.out, style.Render(body)); err != nil {
		return "", err
	}
	return id, nil
}

// notificationKind extracts the type suffix of a cbd-notification-<type> ID.
func notificationKind(id string) string {
	kind, _ := strings.CutPrefix(id, "cbd-notification-")
	if kind == id {
		return ""
	}
	return kind
}

func init() {
	// pkg/browser echoes the launcher's output to the terminal by default.
	browser.Stdout = io.Discard
}
