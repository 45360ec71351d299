package config

// Config holds all splitter configuration options
type Config struct {
	// Required fields
	Inputs    []string `yaml:"inputs"`     // input video path(s)
	SceneFile string   `yaml:"scene_file"` // cut file with scene boundaries

	// Output settings
	OutputTemplate string `yaml:"output_template"` // may use $VIDEO_NAME and $SCENE_NUMBER
	VideoName      string `yaml:"video_name"`      // substituted for $VIDEO_NAME; defaults to the first input's base name

	// Backend settings
	Backend     string  `yaml:"backend"`      // "ffmpeg" (re-encode) or "mkvmerge" (remux)
	EncoderArgs string  `yaml:"encoder_args"` // ffmpeg only; empty = built-in default
	FrameRate   float64 `yaml:"frame_rate"`   // 0 = probe the input with ffprobe

	// Behavioral flags
	SuppressOutput bool   `yaml:"suppress_output"` // silence backend output
	HideProgress   bool   `yaml:"hide_progress"`   // ffmpeg only; no progress bar
	DryRun         bool   `yaml:"dry_run"`         // print commands without running
	LogLevel       string `yaml:"log_level"`       // debug, info, warn, error
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Inputs:    nil,
		SceneFile: "",

		// Output defaults
		OutputTemplate: "$VIDEO_NAME-Scene-$SCENE_NUMBER.mp4",
		VideoName:      "", // derived from the first input when empty

		// Backend defaults (ffmpeg: frame-accurate, no container constraints)
		Backend:     "ffmpeg",
		EncoderArgs: "", // splitter's built-in default
		FrameRate:   0,  // probe

		// Behavioral defaults
		SuppressOutput: false,
		HideProgress:   false,
		DryRun:         false,
		LogLevel:       "info",
	}
}

// Copy creates a copy of the config
func (c *Config) Copy() *Config {
	copied := *c
	copied.Inputs = append([]string(nil), c.Inputs...)
	return &copied
}

// BackendValues returns valid backend values
func BackendValues() []string {
	return []string{"ffmpeg", "mkvmerge"}
}

// IsValidBackend checks if backend is valid
func IsValidBackend(backend string) bool {
	for _, valid := range BackendValues() {
		if backend == valid {
			return true
		}
	}
	return false
}

// LogLevelValues returns valid log level values
func LogLevelValues() []string {
	return []string{"debug", "info", "warn", "error"}
}

// IsValidLogLevel checks if level is valid
func IsValidLogLevel(level string) bool {
	for _, valid := range LogLevelValues() {
		if level == valid {
			return true
		}
	}
	return false
}
