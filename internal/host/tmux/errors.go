package tmux

import "errors"

var (
	// ErrTmuxNotRunning is returned when tmux server is not available.
	ErrTmuxNotRunning = errors.New("tmux server is not running")

	// ErrUnexpectedOutput is returned when tmux prints something we cannot parse.
	ErrUnexpectedOutput = errors.New("unexpected tmux output")
)
