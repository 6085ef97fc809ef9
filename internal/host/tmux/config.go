package tmux

import "time"

const (
	// DefaultTimeout is the default timeout for tmux commands.
	DefaultTimeout = 5 * time.Second

	// DefaultDisplayDuration is how long notifications stay on the status line.
	DefaultDisplayDuration = 4 * time.Second

	// DefaultBrowserCommand opens a URL inside a new window.
	DefaultBrowserCommand = "w3m"
)

// ClientOption is a functional option for configuring a DefaultClient.
type ClientOption func(*DefaultClient)

// WithSocketName selects the tmux server socket (tmux -L).
func WithSocketName(name string) ClientOption {
	return func(c *DefaultClient) {
		c.socketName = name
	}
}

// WithTimeout sets the timeout for tmux command execution.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *DefaultClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Option configures a Host.
type Option func(*Host)

// WithBrowserCommand sets the program new windows run with the URL as argument.
func WithBrowserCommand(command string) Option {
	return func(h *Host) {
		if command != "" {
			h.browserCommand = command
		}
	}
}

// WithDisplayDuration sets how long notifications are displayed.
func WithDisplayDuration(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.displayDuration = d
		}
	}
}
