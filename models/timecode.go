// Package models provides core data structures for the scene splitter.
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"scenesplit/internal/timeutil"
)

// FrameTimecode is a frame-accurate position in a video.
//
// Positions are stored as a whole frame count at a fixed frame rate, which
// keeps scene boundaries exact regardless of how they were originally
// expressed. The upstream scene-detection step hands boundaries to the
// splitters as pairs of FrameTimecodes.
//
// Use NewFrameTimecode, TimecodeFromSeconds or ParseTimecode to create
// validated instances.
type FrameTimecode struct {
	frames int64
	fps    float64
}

// NewFrameTimecode creates a FrameTimecode from a frame count and frame rate.
//
// Returns an error if frames is negative or fps is not positive.
func NewFrameTimecode(frames int64, fps float64) (FrameTimecode, error) {
	if frames < 0 {
		return FrameTimecode{}, fmt.Errorf("frame count cannot be negative: %d", frames)
	}
	if fps <= 0 {
		return FrameTimecode{}, fmt.Errorf("frame rate must be positive: %f", fps)
	}
	return FrameTimecode{frames: frames, fps: fps}, nil
}

// TimecodeFromSeconds creates a FrameTimecode from a position in seconds,
// rounded to the nearest whole frame.
func TimecodeFromSeconds(seconds, fps float64) (FrameTimecode, error) {
	if seconds < 0 {
		return FrameTimecode{}, fmt.Errorf("seconds cannot be negative: %f", seconds)
	}
	return NewFrameTimecode(int64(math.Round(seconds*fps)), fps)
}

// ParseTimecode creates a FrameTimecode from a textual position.
//
// Two forms are accepted:
//   - "HH:MM:SS" or "HH:MM:SS.mmm" timecodes
//   - a plain decimal number of seconds, e.g. "90" or "30.53"
func ParseTimecode(value string, fps float64) (FrameTimecode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return FrameTimecode{}, fmt.Errorf("timecode cannot be empty")
	}

	if !strings.Contains(value, ":") {
		seconds, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return FrameTimecode{}, fmt.Errorf("invalid seconds value %q: %w", value, err)
		}
		return TimecodeFromSeconds(seconds, fps)
	}

	parts := strings.Split(value, ":")
	if len(parts) != 3 {
		return FrameTimecode{}, fmt.Errorf("invalid timecode %q: expected HH:MM:SS[.mmm]", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return FrameTimecode{}, fmt.Errorf("invalid hours in timecode %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return FrameTimecode{}, fmt.Errorf("invalid minutes in timecode %q", value)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return FrameTimecode{}, fmt.Errorf("invalid seconds in timecode %q", value)
	}
	total := float64(hours)*3600 + float64(minutes)*60 + seconds
	return TimecodeFromSeconds(total, fps)
}

// Frames returns the position as a whole frame count.
func (t FrameTimecode) Frames() int64 {
	return t.frames
}

// FPS returns the frame rate the position is expressed in.
func (t FrameTimecode) FPS() float64 {
	return t.fps
}

// Seconds returns the position in seconds.
func (t FrameTimecode) Seconds() float64 {
	return float64(t.frames) / t.fps
}

// Timecode returns the position in HH:MM:SS.mmm form, as used for the
// mkvmerge `--split parts:` boundary list.
func (t FrameTimecode) Timecode() string {
	return timeutil.FormatSeconds(t.Seconds())
}

// Sub returns the duration between t and an earlier position, clamped at
// zero frames.
func (t FrameTimecode) Sub(other FrameTimecode) FrameTimecode {
	frames := t.frames - other.frames
	if frames < 0 {
		frames = 0
	}
	return FrameTimecode{frames: frames, fps: t.fps}
}

// Before reports whether t is strictly earlier than other.
func (t FrameTimecode) Before(other FrameTimecode) bool {
	return t.frames < other.frames
}

// String implements fmt.Stringer.
func (t FrameTimecode) String() string {
	return t.Timecode()
}
