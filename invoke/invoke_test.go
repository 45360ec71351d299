package invoke

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestClassifyLaunchError_ToolNotFound(t *testing.T) {
	execErr := &exec.Error{Name: "mkvmerge", Err: exec.ErrNotFound}

	err := classifyLaunchError("mkvmerge", execErr)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "mkvmerge") {
		t.Errorf("Expected program name in error, got %q", err.Error())
	}
}

func TestClassifyLaunchError_CommandTooLong(t *testing.T) {
	pathErr := &os.PathError{Op: "fork/exec", Path: "/usr/bin/mkvmerge", Err: unix.E2BIG}

	err := classifyLaunchError("mkvmerge", pathErr)
	if !errors.Is(err, ErrCommandTooLong) {
		t.Errorf("Expected ErrCommandTooLong, got %v", err)
	}
}

func TestClassifyLaunchError_Generic(t *testing.T) {
	pathErr := &os.PathError{Op: "fork/exec", Path: "/usr/bin/ffmpeg", Err: unix.EACCES}

	err := classifyLaunchError("ffmpeg", pathErr)
	if errors.Is(err, ErrToolNotFound) || errors.Is(err, ErrCommandTooLong) {
		t.Errorf("Generic launch failure should not classify as a sentinel, got %v", err)
	}
	if err == nil {
		t.Error("Expected an error")
	}
}

func TestInvoke_EmptyArgs(t *testing.T) {
	r := NewRunner()
	if _, err := r.Invoke(context.Background(), Invocation{}); err == nil {
		t.Error("Expected error for empty argument vector")
	}
}

func TestInvoke_CancelledContext(t *testing.T) {
	r := NewRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := r.Invoke(ctx, Invocation{Args: []string{"sleep", "60"}, Suppress: true})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if code != -1 {
		t.Errorf("Expected exit code -1 for a cancelled invocation, got %d", code)
	}
	if errors.Is(err, ErrToolNotFound) || errors.Is(err, ErrCommandTooLong) {
		t.Errorf("Cancellation must not classify as a launch failure, got %v", err)
	}
}

func TestInvoke_ContextKillsChild(t *testing.T) {
	r := NewRunner()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	code, err := r.Invoke(ctx, Invocation{Args: []string{"sleep", "60"}, Suppress: true})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected the context error for a killed child, got %v", err)
	}
	if code != -1 {
		t.Errorf("Expected exit code -1 for a killed child, got %d", code)
	}
}

func TestInvoke_MissingProgram(t *testing.T) {
	r := NewRunner()
	inv := Invocation{
		Args:     []string{"scenesplit-test-no-such-program-404"},
		Suppress: true,
	}

	_, err := r.Invoke(context.Background(), inv)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Expected ErrToolNotFound for missing program, got %v", err)
	}
}
