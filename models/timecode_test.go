package models

import (
	"math"
	"testing"
)

func TestNewFrameTimecode(t *testing.T) {
	tc, err := NewFrameTimecode(300, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tc.Frames() != 300 {
		t.Errorf("Expected 300 frames, got %d", tc.Frames())
	}
	if tc.Seconds() != 10.0 {
		t.Errorf("Expected 10.0 seconds, got %f", tc.Seconds())
	}

	if _, err := NewFrameTimecode(-1, 30.0); err == nil {
		t.Error("Expected error for negative frame count")
	}
	if _, err := NewFrameTimecode(0, 0); err == nil {
		t.Error("Expected error for zero frame rate")
	}
}

func TestTimecodeFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		fps     float64
		frames  int64
	}{
		{"Whole seconds", 10.0, 30.0, 300},
		{"Fractional frame rounds", 1.02, 29.97, 31},
		{"Zero", 0, 25.0, 0},
		{"NTSC minute", 60.0, 29.97, 1798},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := TimecodeFromSeconds(tt.seconds, tt.fps)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.Frames() != tt.frames {
				t.Errorf("Expected %d frames, got %d", tt.frames, tc.Frames())
			}
		})
	}

	if _, err := TimecodeFromSeconds(-1, 30.0); err == nil {
		t.Error("Expected error for negative seconds")
	}
}

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		seconds float64
		wantErr bool
	}{
		{"Full timecode", "00:01:30.000", 90.0, false},
		{"Timecode without millis", "01:00:00", 3600.0, false},
		{"Plain seconds", "30.53", 30.53, false},
		{"Whole seconds", "90", 90.0, false},
		{"With whitespace", " 00:00:10.500 ", 10.5, false},
		{"Empty", "", 0, true},
		{"Too few fields", "01:30", 0, true},
		{"Minutes out of range", "00:61:00", 0, true},
		{"Seconds out of range", "00:00:60.5", 0, true},
		{"Garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := ParseTimecode(tt.value, 30.0)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.value, err)
			}
			if math.Abs(tc.Seconds()-tt.seconds) > 1.0/30.0 {
				t.Errorf("ParseTimecode(%q) = %f seconds; want %f", tt.value, tc.Seconds(), tt.seconds)
			}
		})
	}
}

func TestTimecodeRendering(t *testing.T) {
	tc, _ := NewFrameTimecode(2700, 30.0)
	if tc.Timecode() != "00:01:30.000" {
		t.Errorf("Expected '00:01:30.000', got %q", tc.Timecode())
	}
	if tc.String() != tc.Timecode() {
		t.Error("String() should match Timecode()")
	}
}

func TestTimecodeSub(t *testing.T) {
	start, _ := NewFrameTimecode(100, 30.0)
	end, _ := NewFrameTimecode(400, 30.0)

	dur := end.Sub(start)
	if dur.Frames() != 300 {
		t.Errorf("Expected duration of 300 frames, got %d", dur.Frames())
	}

	// Subtracting a later position clamps at zero.
	clamped := start.Sub(end)
	if clamped.Frames() != 0 {
		t.Errorf("Expected clamped duration of 0 frames, got %d", clamped.Frames())
	}

	if !start.Before(end) {
		t.Error("Expected start to be before end")
	}
	if end.Before(start) {
		t.Error("Expected end not to be before start")
	}
}
