package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// MergeFromFlags parses command-line flags and overrides config values
func (c *Config) MergeFromFlags() error {
	fs := flag.NewFlagSet("scenesplit", flag.ContinueOnError)
	fs.Usage = printUsage

	// Required fields
	input := fs.String("input", "", "Input video path(s), comma-separated (required)")
	sceneFile := fs.String("scenes", "", "Cut file with scene boundaries (required)")

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Backend shortcuts
	copyMode := fs.Bool("copy", false, "Use the mkvmerge backend (lossless remux)")
	backend := fs.String("backend", "", "Split backend: ffmpeg, mkvmerge (default: from config)")

	// Output settings
	template := fs.String("output", "", "Output filename template, may use $VIDEO_NAME and $SCENE_NUMBER (default: from config)")
	videoName := fs.String("video-name", "", "Display name substituted for $VIDEO_NAME (default: input base name)")

	// Backend settings
	encoderArgs := fs.String("encoder-args", "", "Encoder argument override for ffmpeg (default: built-in)")
	frameRate := fs.Float64("frame-rate", -1, "Frame rate of the input (default: probe with ffprobe)")

	// Behavioral flags
	quiet := fs.Bool("quiet", false, "Suppress backend output")
	hideProgress := fs.Bool("no-progress", false, "Hide the progress bar (ffmpeg backend)")
	dryRun := fs.Bool("dry-run", false, "Print the backend commands without running them")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error (default: from config)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Override with flag values (only if explicitly set)
	if *input != "" {
		c.Inputs = splitInputList(*input)
	}
	// Positional arguments are additional input paths.
	c.Inputs = append(c.Inputs, fs.Args()...)

	if *sceneFile != "" {
		c.SceneFile = *sceneFile
	}

	// Handle backend shortcut
	if *copyMode {
		c.Backend = "mkvmerge"
	} else if *backend != "" {
		c.Backend = *backend
	}

	if *template != "" {
		c.OutputTemplate = *template
	}
	if *videoName != "" {
		c.VideoName = *videoName
	}
	if *encoderArgs != "" {
		c.EncoderArgs = *encoderArgs
	}
	if *frameRate >= 0 {
		c.FrameRate = *frameRate
	}

	if *quiet {
		c.SuppressOutput = true
	}
	if *hideProgress {
		c.HideProgress = true
	}
	if *dryRun {
		c.DryRun = true
	}
	if *logLevel != "" {
		c.LogLevel = *logLevel
	}

	return nil
}

// splitInputList splits a comma-separated input list, dropping empty entries.
func splitInputList(value string) []string {
	var inputs []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			inputs = append(inputs, part)
		}
	}
	return inputs
}

// printUsage prints help text
func printUsage() {
	fmt.Fprintf(os.Stderr, `scenesplit - Split a video into per-scene files with mkvmerge or ffmpeg

USAGE:
  scenesplit -input FILE -scenes FILE [OPTIONS] [EXTRA INPUTS...]

REQUIRED FLAGS:
  -input string
        Input video path(s), comma-separated (required)
  -scenes string
        Cut file with one scene per row: start,end timecodes (required)

CONFIGURATION:
  -config string
        Path to config file (default: search ./scenesplit.yaml, ~/.scenesplit/config.yaml, /etc/scenesplit/config.yaml)

BACKEND:
  -copy
        Use the mkvmerge backend: lossless remux, supports concatenated inputs
  -backend string
        Split backend: ffmpeg, mkvmerge (default: ffmpeg)
  -encoder-args string
        Encoder argument override for ffmpeg (default: %q)
  -frame-rate float
        Frame rate of the input (default: probe with ffprobe)

OUTPUT:
  -output string
        Output filename template; $VIDEO_NAME and $SCENE_NUMBER are substituted
        (default: $VIDEO_NAME-Scene-$SCENE_NUMBER.mp4)
  -video-name string
        Display name substituted for $VIDEO_NAME (default: input base name)

BEHAVIOR:
  -quiet
        Suppress backend output
  -no-progress
        Hide the progress bar (ffmpeg backend)
  -dry-run
        Print the backend commands without running them
  -log-level string
        Log level: debug, info, warn, error (default: info)

ENVIRONMENT:
  Variables prefixed with SCENESPLIT_ override the config file, e.g.
  SCENESPLIT_BACKEND=mkvmerge. A .env file in the working directory is
  loaded first if present.
`, "-c:v libx264 -preset fast -crf 21 -c:a aac")
}
