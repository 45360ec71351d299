package models

import (
	"fmt"
	"time"
)

// SplitStatus is the terminal state of one split call.
type SplitStatus string

const (
	// StatusNoOp means there was nothing to do (no inputs or no scenes).
	StatusNoOp SplitStatus = "noop"
	// StatusSuccess means every requested scene was written.
	StatusSuccess SplitStatus = "success"
	// StatusBackendFailure means the backend ran and returned nonzero.
	StatusBackendFailure SplitStatus = "backend_failure"
	// StatusToolNotFound means the backend executable is not installed.
	StatusToolNotFound SplitStatus = "tool_not_found"
	// StatusCommandTooLong means the argument vector exceeded the OS limit.
	StatusCommandTooLong SplitStatus = "command_too_long"
)

// SplitResult represents the outcome of one split call.
//
// This structure tracks both the terminal status and the measurements
// needed for throughput reporting. It enforces logical consistency:
// a successful result carries exit code 0, and a backend failure must
// carry the nonzero code the backend returned.
type SplitResult struct {
	Status      SplitStatus   `json:"status"`
	ExitCode    int           `json:"exit_code"`
	FramesTotal int64         `json:"frames_total"`
	Elapsed     time.Duration `json:"elapsed"`
}

// NoOpResult returns the sentinel result for "nothing to do".
func NoOpResult() SplitResult {
	return SplitResult{Status: StatusNoOp}
}

// Ran reports whether any backend invocation was attempted.
func (r SplitResult) Ran() bool {
	return r.Status != StatusNoOp
}

// Throughput returns the average processing speed in frames per second,
// or 0 when no elapsed time was measured.
func (r SplitResult) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.FramesTotal) / r.Elapsed.Seconds()
}

// Validate checks if the SplitResult has consistent state.
//
// Returns an error if:
//   - Status is StatusSuccess but ExitCode is nonzero
//   - Status is StatusBackendFailure but ExitCode is zero
//   - Status is StatusNoOp but a nonzero exit code or frame total is set
func (r SplitResult) Validate() error {
	switch r.Status {
	case StatusSuccess:
		if r.ExitCode != 0 {
			return fmt.Errorf("successful result cannot have exit code %d", r.ExitCode)
		}
	case StatusBackendFailure:
		if r.ExitCode == 0 {
			return fmt.Errorf("backend failure must carry a nonzero exit code")
		}
	case StatusNoOp:
		if r.ExitCode != 0 || r.FramesTotal != 0 {
			return fmt.Errorf("no-op result cannot carry an exit code or frame total")
		}
	case StatusToolNotFound, StatusCommandTooLong:
		// No exit code from the backend in either case.
	default:
		return fmt.Errorf("unknown status %q", r.Status)
	}
	return nil
}
