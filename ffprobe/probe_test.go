package ffprobe

import (
	"math"
	"testing"
)

const sampleOutput = `{
	"streams": [
		{
			"index": 0,
			"codec_name": "h264",
			"codec_type": "video",
			"r_frame_rate": "30000/1001",
			"avg_frame_rate": "30000/1001"
		},
		{
			"index": 1,
			"codec_name": "aac",
			"codec_type": "audio",
			"r_frame_rate": "0/0",
			"avg_frame_rate": "0/0"
		}
	],
	"format": {
		"filename": "input.mp4",
		"format_name": "mov,mp4,m4a,3gp,3g2,mj2",
		"duration": "600.480000"
	}
}`

func TestParse(t *testing.T) {
	result, err := Parse([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Streams) != 2 {
		t.Errorf("Expected 2 streams, got %d", len(result.Streams))
	}
	if result.Format.Filename != "input.mp4" {
		t.Errorf("Expected filename 'input.mp4', got %q", result.Format.Filename)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestFrameRate(t *testing.T) {
	result, err := Parse([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	fps, err := result.FrameRate()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(fps-29.97) > 0.001 {
		t.Errorf("Expected ~29.97 fps, got %f", fps)
	}
}

func TestFrameRate_NoVideoStream(t *testing.T) {
	result := &Result{
		Streams: []Stream{{Index: 0, CodecType: "audio"}},
	}
	if _, err := result.FrameRate(); err == nil {
		t.Error("Expected error without a video stream")
	}
}

func TestFrameRate_FallsBackToRawRate(t *testing.T) {
	result := &Result{
		Streams: []Stream{{
			Index:        0,
			CodecType:    "video",
			AvgFrameRate: "0/0",
			RFrameRate:   "25/1",
		}},
	}
	fps, err := result.FrameRate()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fps != 25.0 {
		t.Errorf("Expected 25.0 fps, got %f", fps)
	}
}

func TestDuration(t *testing.T) {
	result, err := Parse([]byte(sampleOutput))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	duration, err := result.Duration()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if duration != 600.48 {
		t.Errorf("Expected duration 600.48, got %f", duration)
	}
}

func TestDuration_Missing(t *testing.T) {
	result := &Result{}
	if _, err := result.Duration(); err == nil {
		t.Error("Expected error for missing duration")
	}
}

func TestParseRational(t *testing.T) {
	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{"30000/1001", 29.97002997, false},
		{"25/1", 25.0, false},
		{"24", 24.0, false},
		{"0/0", 0, true},
		{"", 0, true},
		{"abc/1", 0, true},
	}

	for _, tt := range tests {
		got, err := parseRational(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseRational(%q): expected error", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRational(%q): unexpected error %v", tt.value, err)
			continue
		}
		if math.Abs(got-tt.want) > 0.0001 {
			t.Errorf("parseRational(%q) = %f; want %f", tt.value, got, tt.want)
		}
	}
}
