package naming

import "testing"

func TestSceneNumberWidth(t *testing.T) {
	tests := []struct {
		total int
		width int
	}{
		{0, 3},
		{1, 3},
		{2, 3},
		{999, 3},
		{1000, 4},
		{1200, 4},
		{9999, 4},
		{10000, 5},
	}

	for _, tt := range tests {
		if got := SceneNumberWidth(tt.total); got != tt.width {
			t.Errorf("SceneNumberWidth(%d) = %d; want %d", tt.total, got, tt.width)
		}
	}
}

func TestRenderScene(t *testing.T) {
	// 1200 scenes needs 4 digits.
	got := RenderScene("$VIDEO_NAME-$SCENE_NUMBER", "clip", 5, 1200)
	if got != "clip-0005" {
		t.Errorf("Expected 'clip-0005', got %q", got)
	}

	// Small scene counts still pad to 3 digits.
	got = RenderScene("$VIDEO_NAME-Scene-$SCENE_NUMBER", "movie", 1, 2)
	if got != "movie-Scene-001" {
		t.Errorf("Expected 'movie-Scene-001', got %q", got)
	}

	// A template without the scene-number placeholder is unaffected by
	// the scene count.
	got = RenderScene("$VIDEO_NAME", "clip", 1, 2)
	if got != "clip" {
		t.Errorf("Expected 'clip', got %q", got)
	}
}

func TestRenderScene_BraceSpelling(t *testing.T) {
	got := RenderScene("${VIDEO_NAME}-${SCENE_NUMBER}", "clip", 7, 10)
	if got != "clip-007" {
		t.Errorf("Expected 'clip-007', got %q", got)
	}
}

func TestRenderScene_UnknownPlaceholderPassesThrough(t *testing.T) {
	got := RenderScene("$VIDEO_NAME-$RESOLUTION-$SCENE_NUMBER", "clip", 2, 5)
	if got != "clip-$RESOLUTION-002" {
		t.Errorf("Unknown placeholder should be left intact, got %q", got)
	}
}

func TestStripAutoNumbering(t *testing.T) {
	tests := []struct {
		template string
		expected string
	}{
		{"$VIDEO_NAME-$SCENE_NUMBER", "$VIDEO_NAME"},
		{"$VIDEO_NAME$SCENE_NUMBER", "$VIDEO_NAME"},
		{"$VIDEO_NAME-${SCENE_NUMBER}", "$VIDEO_NAME"},
		{"$VIDEO_NAME", "$VIDEO_NAME"},
		{"out-$SCENE_NUMBER.mkv", "out.mkv"},
	}

	for _, tt := range tests {
		if got := StripAutoNumbering(tt.template); got != tt.expected {
			t.Errorf("StripAutoNumbering(%q) = %q; want %q", tt.template, got, tt.expected)
		}
	}
}

func TestRenderRemux(t *testing.T) {
	got := RenderRemux("$VIDEO_NAME-$SCENE_NUMBER.mkv", "my video")
	if got != "my video.mkv" {
		t.Errorf("Expected 'my video.mkv', got %q", got)
	}

	// Unknown placeholders survive remux rendering too.
	got = RenderRemux("$VIDEO_NAME-$CODEC", "clip")
	if got != "clip-$CODEC" {
		t.Errorf("Expected 'clip-$CODEC', got %q", got)
	}
}
