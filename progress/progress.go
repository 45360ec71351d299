// Package progress reports per-frame progress during a split.
//
// The splitters talk to a Reporter capability rather than a concrete bar,
// so callers can hide progress entirely (Null) or substitute their own
// sink in tests.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives frame-count progress for one split call. Start is
// called at most once, before the first Advance; Finish at most once,
// after the last.
type Reporter interface {
	Start(totalFrames int64)
	Advance(frames int64)
	Finish()
}

// Bar renders a terminal progress bar counting frames.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates an unstarted terminal progress bar.
func NewBar() *Bar {
	return &Bar{}
}

// Start initializes the bar with the total frame span of the split.
func (b *Bar) Start(totalFrames int64) {
	b.bar = progressbar.NewOptions64(totalFrames,
		progressbar.OptionSetDescription("splitting"),
		progressbar.OptionSetItsString("frame"),
		progressbar.OptionShowIts(),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

// Advance adds the given number of frames to the bar. Safe to call before
// Start; such updates are dropped.
func (b *Bar) Advance(frames int64) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Add64(frames)
}

// Finish completes the bar and moves the cursor past it.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}

// Null is a Reporter that discards all updates.
type Null struct{}

// Start implements Reporter.
func (Null) Start(int64) {}

// Advance implements Reporter.
func (Null) Advance(int64) {}

// Finish implements Reporter.
func (Null) Finish() {}
