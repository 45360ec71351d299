// Package probe checks whether the external split backends are installed.
//
// Availability is decided by invoking each backend with a harmless flag and
// comparing the exit code against the tool's own "bad usage" sentinel: the
// tool ran, printed its usage line, and exited. The sentinel codes are
// version-dependent, which is why this check lives behind the Prober type
// rather than being spread through the splitters.
package probe

import (
	"errors"
	"io"
	"os/exec"
)

// Bad-usage exit codes observed when each tool is invoked with no source
// files. Anything else (including a launch failure) means the backend is
// not usable.
const (
	mkvmergeUsageExit = 2
	ffmpegUsageExit   = 1
)

// runFunc executes a probe command and returns its exit code. A non-nil
// error means the program could not be launched at all.
type runFunc func(name string, args ...string) (int, error)

// Prober reports backend availability.
type Prober struct {
	run runFunc
}

// New creates a Prober that spawns real child processes.
func New() *Prober {
	return &Prober{run: runDiscarded}
}

// runDiscarded runs a short-lived probe process with all output discarded.
func runDiscarded(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// MkvmergeAvailable gracefully checks whether mkvmerge can be used.
// Absence of the executable is a normal false, never an error.
func (p *Prober) MkvmergeAvailable() bool {
	code, err := p.run("mkvmerge", "--quiet")
	if err != nil {
		return false
	}
	return code == mkvmergeUsageExit
}

// FFmpegAvailable gracefully checks whether ffmpeg can be used.
// Absence of the executable is a normal false, never an error.
func (p *Prober) FFmpegAvailable() bool {
	code, err := p.run("ffmpeg", "-v", "quiet")
	if err != nil {
		return false
	}
	return code == ffmpegUsageExit
}

// BackendAvailable reports availability for a backend by name.
// Unknown backend names are never available.
func (p *Prober) BackendAvailable(backend string) bool {
	switch backend {
	case "mkvmerge":
		return p.MkvmergeAvailable()
	case "ffmpeg":
		return p.FFmpegAvailable()
	default:
		return false
	}
}
