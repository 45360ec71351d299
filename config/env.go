package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MergeFromEnv overrides config values from SCENESPLIT_* environment
// variables. A .env file in the working directory is loaded first when
// present; a missing .env file is not an error.
func (c *Config) MergeFromEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv("SCENESPLIT_INPUT"); v != "" {
		c.Inputs = splitInputList(v)
	}
	if v := os.Getenv("SCENESPLIT_SCENE_FILE"); v != "" {
		c.SceneFile = v
	}
	if v := os.Getenv("SCENESPLIT_OUTPUT_TEMPLATE"); v != "" {
		c.OutputTemplate = v
	}
	if v := os.Getenv("SCENESPLIT_VIDEO_NAME"); v != "" {
		c.VideoName = v
	}
	if v := os.Getenv("SCENESPLIT_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("SCENESPLIT_ENCODER_ARGS"); v != "" {
		c.EncoderArgs = v
	}
	if v := os.Getenv("SCENESPLIT_FRAME_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SCENESPLIT_FRAME_RATE %q: %w", v, err)
		}
		c.FrameRate = rate
	}
	if v := os.Getenv("SCENESPLIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	return nil
}
