package models

import "fmt"

// Scene represents one segment of the source video to be written out.
//
// Scenes are produced by an upstream detection step as (start, end)
// timecode pairs, ordered by start time. Each scene becomes one output
// file. Adjacent scenes are normally contiguous, but that is not enforced
// here: the splitters use each scene's own end boundary as-is.
//
// Use NewScene to create a validated Scene instance.
type Scene struct {
	Start FrameTimecode
	End   FrameTimecode
}

// NewScene creates a new Scene with validation.
//
// Returns an error if Start is not strictly before End.
func NewScene(start, end FrameTimecode) (Scene, error) {
	s := Scene{Start: start, End: end}
	if err := s.Validate(); err != nil {
		return Scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// Validate checks that the scene covers a non-empty time range.
func (s Scene) Validate() error {
	if !s.Start.Before(s.End) {
		return fmt.Errorf("start %s must be before end %s", s.Start, s.End)
	}
	return nil
}

// Frames returns the scene duration as a frame count.
func (s Scene) Frames() int64 {
	return s.End.Sub(s.Start).Frames()
}

// DurationSeconds returns the scene duration in seconds.
func (s Scene) DurationSeconds() float64 {
	return s.End.Sub(s.Start).Seconds()
}

// SceneList is an ordered sequence of scenes for one split call.
// The splitters treat it as read-only.
type SceneList []Scene

// TotalFrames returns the frame span from the first scene's start to the
// last scene's end, or 0 for an empty list. This is the basis for progress
// totals and throughput reporting.
func (l SceneList) TotalFrames() int64 {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End.Frames() - l[0].Start.Frames()
}
