package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if len(c.Inputs) == 0 {
		errors = append(errors, "at least one input file is required")
	} else {
		for _, input := range c.Inputs {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("input file does not exist: %s", input))
			}
		}
	}

	if c.SceneFile == "" {
		errors = append(errors, "scene file is required")
	} else if _, err := os.Stat(c.SceneFile); os.IsNotExist(err) {
		errors = append(errors, fmt.Sprintf("scene file does not exist: %s", c.SceneFile))
	}

	if c.OutputTemplate == "" {
		errors = append(errors, "output template is required")
	}

	// Validate backend
	if !IsValidBackend(c.Backend) {
		errors = append(errors, fmt.Sprintf("invalid backend '%s', must be one of: %s",
			c.Backend, strings.Join(BackendValues(), ", ")))
	}

	// The ffmpeg backend refuses concatenated inputs; catch it here so the
	// user gets a configuration error instead of a runtime failure.
	if c.Backend == "ffmpeg" && len(c.Inputs) > 1 {
		errors = append(errors, "the ffmpeg backend accepts exactly one input; use -copy for concatenated inputs")
	}

	// Validate frame rate (0 is valid, means probe)
	if c.FrameRate < 0 {
		errors = append(errors, "frame rate cannot be negative (use 0 to probe the input)")
	}

	// Validate log level
	if !IsValidLogLevel(c.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s', must be one of: %s",
			c.LogLevel, strings.Join(LogLevelValues(), ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
