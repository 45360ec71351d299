package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	content := `
inputs:
  - /videos/movie.mkv
scene_file: /videos/cuts.csv
output_template: "$VIDEO_NAME-$SCENE_NUMBER.mkv"
backend: mkvmerge
suppress_output: true
log_level: debug
`
	path := filepath.Join(t.TempDir(), "scenesplit.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(cfg.Inputs) != 1 || cfg.Inputs[0] != "/videos/movie.mkv" {
		t.Errorf("Unexpected inputs: %v", cfg.Inputs)
	}
	if cfg.Backend != "mkvmerge" {
		t.Errorf("Expected backend 'mkvmerge', got %s", cfg.Backend)
	}
	if !cfg.SuppressOutput {
		t.Error("Expected suppress_output true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %s", cfg.LogLevel)
	}
	// Fields absent from the file keep their defaults.
	if cfg.HideProgress {
		t.Error("Expected hide_progress to keep its default false")
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("inputs: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadConfigFile(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile("/nonexistent/scenesplit.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestSaveConfigFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Inputs = []string{"movie.mkv"}
	cfg.Backend = "mkvmerge"

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	if err := SaveConfigFile(cfg, path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	loaded, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}
	if loaded.Backend != "mkvmerge" {
		t.Errorf("Round trip lost backend, got %s", loaded.Backend)
	}
	if len(loaded.Inputs) != 1 || loaded.Inputs[0] != "movie.mkv" {
		t.Errorf("Round trip lost inputs: %v", loaded.Inputs)
	}
}
