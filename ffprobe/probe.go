// Package ffprobe extracts the media metadata the splitter needs to turn
// textual cut points into frame-accurate timecodes: the video frame rate
// and the container duration.
package ffprobe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Stream represents one media stream reported by ffprobe.
type Stream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	Duration     string `json:"duration,omitempty"`
}

// Format represents the container format information.
type Format struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// Result holds the metadata extracted from a media file.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Probe runs ffprobe against the given path and parses its JSON output.
func Probe(path string) (*Result, error) {
	cmd := exec.Command("ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}
	return Parse(output)
}

// Parse decodes raw ffprobe JSON output.
func Parse(data []byte) (*Result, error) {
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &result, nil
}

// FrameRate returns the frame rate of the first video stream.
//
// ffprobe reports rates as rationals like "30000/1001"; the average frame
// rate is preferred, falling back to the raw rate when the average is
// missing or degenerate ("0/0").
func (r *Result) FrameRate() (float64, error) {
	for _, s := range r.Streams {
		if s.CodecType != "video" {
			continue
		}
		if fps, err := parseRational(s.AvgFrameRate); err == nil && fps > 0 {
			return fps, nil
		}
		if fps, err := parseRational(s.RFrameRate); err == nil && fps > 0 {
			return fps, nil
		}
		return 0, fmt.Errorf("video stream %d has no usable frame rate", s.Index)
	}
	return 0, fmt.Errorf("no video stream found")
}

// Duration returns the container duration in seconds.
func (r *Result) Duration() (float64, error) {
	if r.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}
	duration, err := strconv.ParseFloat(r.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", r.Format.Duration, err)
	}
	return duration, nil
}

// parseRational parses ffprobe's "num/den" rate notation. A plain decimal
// is accepted too.
func parseRational(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty rational")
	}
	num, den, found := strings.Cut(value, "/")
	if !found {
		return strconv.ParseFloat(value, 64)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rational %q: %w", value, err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rational %q: %w", value, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("invalid rational %q: zero denominator", value)
	}
	return n / d, nil
}
