// Package invoke runs backend argument vectors as child processes.
//
// The invoker is deliberately thin: it spawns one process, waits for it to
// finish, and reports the exit code. Its one piece of intelligence is
// classifying launch failures, so callers can tell a missing tool apart
// from an argument vector the OS refused to accept.
package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ErrToolNotFound indicates the backend executable could not be located.
var ErrToolNotFound = errors.New("tool not found")

// ErrCommandTooLong indicates the argument vector exceeds the maximum
// command-line length the OS accepts (E2BIG). This typically happens when
// a very large scene list is folded into a single mkvmerge invocation.
var ErrCommandTooLong = errors.New("command line too long")

// Invocation is one argument vector to execute. Each element of Args is a
// single token passed to the program as-is; nothing is re-split or routed
// through a shell.
type Invocation struct {
	Args []string
	// Suppress discards the child's stdout and stderr instead of
	// inheriting the parent's.
	Suppress bool
}

// Invoker runs one external command to completion.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) (int, error)
}

// Runner is the exec-based Invoker used outside of tests.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Invoke executes the argument vector and blocks until the child exits.
//
// Returns the child's exit code when the program ran, whether it succeeded
// or not. Returns ErrToolNotFound or ErrCommandTooLong (wrapped with the
// program name) when the child could not be launched at all.
func (r *Runner) Invoke(ctx context.Context, inv Invocation) (int, error) {
	if len(inv.Args) == 0 {
		return -1, fmt.Errorf("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)
	if inv.Suppress {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	// A child killed by context cancellation exits with -1; report the
	// cancellation itself so callers don't mistake it for a backend failure.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, classifyLaunchError(inv.Args[0], err)
}

// classifyLaunchError maps the exec layer's launch failures onto the
// invoker's error taxonomy.
func classifyLaunchError(program string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", program, ErrToolNotFound)
	}
	if errors.Is(err, unix.E2BIG) {
		return fmt.Errorf("%s: %w", program, ErrCommandTooLong)
	}
	return fmt.Errorf("launching %s: %w", program, err)
}
