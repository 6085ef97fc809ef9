// Package tmux hosts the helpers in a tmux session: windows stand in for
// tabs and the status line displays notifications.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/cristianoliveira/cbd-helper/internal/colors"
)

// Client runs tmux commands.
type Client interface {
	// Run executes tmux with args and returns stdout and stderr.
	Run(ctx context.Context, args ...string) (string, string, error)
}

// runner executes a program. Swapped in tests.
type runner func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

func execRunner(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// DefaultClient implements Client by executing the tmux binary.
type DefaultClient struct {
	socketName string
	timeout    time.Duration
	run        runner
}

// NewDefaultClient creates a new DefaultClient with the given options.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		timeout: DefaultTimeout,
		run:     execRunner,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Run implements Client. Each call is bounded by the client timeout.
func (c *DefaultClient) Run(ctx context.Context, args ...string) (string, string, error) {
	start := time.Now()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	colors.StructuredDebug("tmux", "run", "started", nil, command, map[string]any{"args_count": len(args)})

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmdArgs := []string{}
	if c.socketName != "" {
		cmdArgs = append(cmdArgs, "-L", c.socketName)
	}
	cmdArgs = append(cmdArgs, args...)

	stdout, stderr, err := c.run(ctx, "tmux", cmdArgs...)
	fields := map[string]any{"args_count": len(args), "duration_seconds": time.Since(start).Seconds()}
	if err != nil {
		colors.StructuredError("tmux", "run", "failed", err, command, fields)
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return stdout, stderr, fmt.Errorf("tmux command %v failed: %w", args, err)
	}
	colors.StructuredDebug("tmux", "run", "completed", nil, command, fields)
	return stdout, stderr, nil
}

// HasSession reports whether a tmux server is reachable.
func HasSession(ctx context.Context, c Client) bool {
	_, _, err := c.Run(ctx, "has-session")
	return err == nil
}
