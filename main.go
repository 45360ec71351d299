package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"scenesplit/config"
	"scenesplit/export"
	"scenesplit/ffprobe"
	"scenesplit/internal/logging"
	"scenesplit/models"
	"scenesplit/probe"
	"scenesplit/scenes"
	"scenesplit/splitter"
)

func main() {
	// Step 1: Load configuration (CLI flags > environment > config file > defaults)
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.WithRunID(logging.NewLogger(cfg.LogLevel), uuid.NewString())

	// Step 2: Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Step 3: Register signal handlers (Ctrl+C, SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupt received, stopping...")
		cancel()
	}()

	// Step 4: Run the split
	code, err := runSplit(ctx, cfg, logger)
	if err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "Split cancelled by user")
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// runSplit executes the complete split workflow and returns the process
// exit code.
func runSplit(ctx context.Context, cfg *config.Config, logger *slog.Logger) (int, error) {
	// Frame rate: explicit config wins, otherwise probe the first input.
	fps := cfg.FrameRate
	if fps == 0 {
		result, err := ffprobe.Probe(cfg.Inputs[0])
		if err != nil {
			return 1, fmt.Errorf("media analysis failed: %w", err)
		}
		fps, err = result.FrameRate()
		if err != nil {
			return 1, fmt.Errorf("failed to determine frame rate: %w", err)
		}
		logger.Debug("probed frame rate", "input", cfg.Inputs[0], "fps", fps)
	}

	sceneList, err := scenes.Load(cfg.SceneFile, fps)
	if err != nil {
		return 1, fmt.Errorf("failed to load scene file: %w", err)
	}
	logger.Info("loaded scenes",
		"scene_file", cfg.SceneFile,
		"scenes", len(sceneList),
		"fps", fps)

	backendLogger := logging.WithBackend(logger, cfg.Backend)

	switch cfg.Backend {
	case "mkvmerge":
		return runMkvmerge(ctx, cfg, sceneList, backendLogger)
	case "ffmpeg":
		return runFFmpeg(ctx, cfg, sceneList, backendLogger)
	default:
		return 1, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func runMkvmerge(ctx context.Context, cfg *config.Config, sceneList models.SceneList, logger *slog.Logger) (int, error) {
	split := splitter.NewMkvmergeSplitter(cfg.Inputs, sceneList).
		SetTemplate(cfg.OutputTemplate).
		SetVideoName(cfg.VideoName).
		SetSuppressOutput(cfg.SuppressOutput).
		SetLogger(logger)

	if cfg.DryRun {
		fmt.Println(split.DryRun())
		return 0, nil
	}

	if !probe.New().MkvmergeAvailable() {
		fmt.Fprintln(os.Stderr, "mkvmerge is not available on PATH.")
		fmt.Fprintln(os.Stderr, "Install the MKVToolNix suite (https://mkvtoolnix.download/) or use the ffmpeg backend.")
		return 1, nil
	}

	result, err := split.Split(ctx)
	if err != nil {
		return 1, err
	}
	return finish(cfg, sceneList, result)
}

func runFFmpeg(ctx context.Context, cfg *config.Config, sceneList models.SceneList, logger *slog.Logger) (int, error) {
	split := splitter.NewFFmpegSplitter(cfg.Inputs, sceneList).
		SetTemplate(cfg.OutputTemplate).
		SetVideoName(cfg.VideoName).
		SetSuppressOutput(cfg.SuppressOutput).
		SetHideProgress(cfg.HideProgress).
		SetLogger(logger)

	if cfg.EncoderArgs != "" {
		args, err := splitter.ParseEncoderArgs(cfg.EncoderArgs)
		if err != nil {
			return 1, fmt.Errorf("invalid encoder arguments: %w", err)
		}
		split.SetEncoderArgs(args)
	}

	if cfg.DryRun {
		fmt.Println(split.DryRun())
		return 0, nil
	}

	if !probe.New().FFmpegAvailable() {
		fmt.Fprintln(os.Stderr, "ffmpeg is not available on PATH.")
		fmt.Fprintln(os.Stderr, "Install ffmpeg (https://ffmpeg.org/download.html) and try again.")
		return 1, nil
	}

	result, err := split.Split(ctx)
	if err != nil {
		return 1, err
	}
	return finish(cfg, sceneList, result)
}

// finish maps a split result to a process exit code, writing a cut list
// for manual recovery when the command line was too long to spawn.
func finish(cfg *config.Config, sceneList models.SceneList, result models.SplitResult) (int, error) {
	switch result.Status {
	case models.StatusNoOp, models.StatusSuccess:
		return 0, nil
	case models.StatusBackendFailure:
		// A signal-killed child reports -1, which is not a valid exit code.
		if result.ExitCode < 0 {
			return 1, nil
		}
		return result.ExitCode, nil
	case models.StatusCommandTooLong:
		name := outputName(cfg)
		csvPath := name + "-cuts.csv"
		if err := export.SaveCutList(csvPath, sceneList); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save cut list: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Saved cut list to %s for manual splitting.\n", csvPath)
		}
		edlPath := name + ".edl"
		if err := export.SaveEDL(edlPath, sceneList, name, filepath.Base(cfg.Inputs[0])); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to save EDL: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Saved EDL to %s for editor handoff.\n", edlPath)
		}
		return 1, nil
	default:
		return 1, nil
	}
}

// outputName derives the base name for recovery artifacts from the video
// name, falling back to the first input's base name.
func outputName(cfg *config.Config) string {
	name := cfg.VideoName
	if name == "" {
		base := filepath.Base(cfg.Inputs[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return name
}
