package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"scenesplit/invoke"
	"scenesplit/models"
	"scenesplit/naming"
	"scenesplit/progress"
)

// FFmpegSplitter splits by re-encoding, invoking ffmpeg once per scene.
//
// Exactly one input path is supported; concatenating multiple inputs would
// require a temporary file list for ffmpeg's concat demuxer and is refused
// outright instead of being mis-encoded.
type FFmpegSplitter struct {
	inputs    []string
	scenes    models.SceneList
	template  string
	videoName string

	encoderArgs    []string
	suppressOutput bool
	hideProgress   bool

	invoker  invoke.Invoker
	logger   *slog.Logger
	reporter progress.Reporter
}

// NewFFmpegSplitter creates a splitter for the given inputs and scenes with
// default settings, including the default encoder arguments.
func NewFFmpegSplitter(inputs []string, scenes models.SceneList) *FFmpegSplitter {
	defaults, _ := ParseEncoderArgs(DefaultEncoderArgs)
	return &FFmpegSplitter{
		inputs:      inputs,
		scenes:      scenes,
		template:    "$VIDEO_NAME-Scene-$SCENE_NUMBER.mp4",
		videoName:   "video",
		encoderArgs: defaults,
		invoker:     invoke.NewRunner(),
		logger:      slog.Default(),
		reporter:    progress.NewBar(),
	}
}

// SetTemplate sets the output filename template. $SCENE_NUMBER is replaced
// with the zero-padded 1-based scene index.
func (f *FFmpegSplitter) SetTemplate(template string) *FFmpegSplitter {
	f.template = template
	return f
}

// SetVideoName sets the display name substituted for $VIDEO_NAME.
func (f *FFmpegSplitter) SetVideoName(name string) *FFmpegSplitter {
	f.videoName = name
	return f
}

// SetEncoderArgs replaces the per-scene encoder argument tokens. Use
// ParseEncoderArgs to tokenize a caller-supplied override string.
func (f *FFmpegSplitter) SetEncoderArgs(args []string) *FFmpegSplitter {
	f.encoderArgs = args
	return f
}

// SetSuppressOutput silences ffmpeg entirely (-v quiet) for every scene.
func (f *FFmpegSplitter) SetSuppressOutput(suppress bool) *FFmpegSplitter {
	f.suppressOutput = suppress
	return f
}

// SetHideProgress disables the progress indicator.
func (f *FFmpegSplitter) SetHideProgress(hide bool) *FFmpegSplitter {
	f.hideProgress = hide
	return f
}

// SetInvoker replaces the command invoker (used by tests).
func (f *FFmpegSplitter) SetInvoker(inv invoke.Invoker) *FFmpegSplitter {
	f.invoker = inv
	return f
}

// SetLogger replaces the logger.
func (f *FFmpegSplitter) SetLogger(logger *slog.Logger) *FFmpegSplitter {
	f.logger = logger
	return f
}

// SetReporter replaces the progress reporter.
func (f *FFmpegSplitter) SetReporter(r progress.Reporter) *FFmpegSplitter {
	f.reporter = r
	return f
}

// BuildSceneArgs constructs the ffmpeg argument vector for one scene.
// index is 0-based; the scene number in the rendered filename is
// zero-padded against the call's total scene count.
//
// Full ffmpeg output is shown only for the first scene: if it fails, the
// errors are on screen and the loop stops. Later scenes run at error-only
// verbosity.
func (f *FFmpegSplitter) BuildSceneArgs(index int, scene models.Scene) []string {
	args := []string{"ffmpeg"}
	if f.suppressOutput {
		args = append(args, "-v", "quiet")
	} else if index > 0 {
		args = append(args, "-v", "error")
	}

	args = append(args,
		"-y",
		"-ss", formatSeconds(scene.Start.Seconds()),
		"-i", f.inputs[0],
		"-t", formatSeconds(scene.DurationSeconds()),
	)
	args = append(args, f.encoderArgs...)
	args = append(args,
		"-sn",
		naming.RenderScene(f.template, f.videoName, index+1, len(f.scenes)),
	)
	return args
}

// DryRun returns the per-scene commands that would be executed, one per
// line, without running anything.
func (f *FFmpegSplitter) DryRun() string {
	lines := make([]string, 0, len(f.scenes))
	for i, scene := range f.scenes {
		lines = append(lines, strings.Join(f.BuildSceneArgs(i, scene), " "))
	}
	return strings.Join(lines, "\n")
}

// Split runs the per-scene loop. Returns the no-op result when there are
// no inputs or no scenes, and ErrUnsupportedConfig (before spawning
// anything) when more than one input was supplied.
//
// The loop is fail-fast: the first nonzero backend exit stops it, leaving
// already-written scene files in place.
func (f *FFmpegSplitter) Split(ctx context.Context) (models.SplitResult, error) {
	if len(f.inputs) == 0 || len(f.scenes) == 0 {
		return models.NoOpResult(), nil
	}
	if len(f.inputs) > 1 {
		f.logger.Error("splitting multiple appended inputs with ffmpeg is not supported yet; " +
			"use the mkvmerge backend, which supports concatenated inputs")
		return models.NoOpResult(), fmt.Errorf("%w: ffmpeg accepts exactly one input, got %d",
			ErrUnsupportedConfig, len(f.inputs))
	}

	f.logger.Info("splitting input with ffmpeg",
		"scenes", len(f.scenes),
		"template", f.template)

	totalFrames := f.scenes.TotalFrames()

	reporterActive := false
	if f.reporter != nil && !f.hideProgress {
		f.reporter.Start(totalFrames)
		reporterActive = true
	}

	exitCode := 0
	start := time.Now()

	for i, scene := range f.scenes {
		code, err := f.invoker.Invoke(ctx, invoke.Invocation{
			Args:     f.BuildSceneArgs(i, scene),
			Suppress: f.suppressOutput,
		})
		switch {
		case errors.Is(err, invoke.ErrCommandTooLong):
			if reporterActive {
				f.reporter.Finish()
			}
			f.logger.Error(commandTooLongHelp)
			return models.SplitResult{Status: models.StatusCommandTooLong, Elapsed: time.Since(start)}, nil
		case errors.Is(err, invoke.ErrToolNotFound):
			if reporterActive {
				f.reporter.Finish()
			}
			f.logger.Error("ffmpeg could not be found on the system; " +
				"install ffmpeg to enable video splitting")
			return models.SplitResult{Status: models.StatusToolNotFound, Elapsed: time.Since(start)}, nil
		case err != nil:
			if reporterActive {
				f.reporter.Finish()
			}
			return models.SplitResult{Status: models.StatusBackendFailure, ExitCode: -1, Elapsed: time.Since(start)},
				err
		}

		if i == 0 && !f.suppressOutput && len(f.scenes) > 1 {
			f.logger.Info("ffmpeg output for the first scene shown above; " +
				"remaining scenes will only show errors")
		}

		if code != 0 {
			f.logger.Error("error splitting scene",
				"scene", i+1,
				"exit_code", code)
			exitCode = code
			break
		}

		if reporterActive {
			f.reporter.Advance(scene.Frames())
		}
	}
	elapsed := time.Since(start)

	if reporterActive {
		f.reporter.Finish()
		f.logger.Info("average processing speed",
			"frames_per_sec", float64(totalFrames)/elapsed.Seconds())
	}

	status := models.StatusSuccess
	if exitCode != 0 {
		status = models.StatusBackendFailure
	}
	return models.SplitResult{
		Status:      status,
		ExitCode:    exitCode,
		FramesTotal: totalFrames,
		Elapsed:     elapsed,
	}, nil
}

// formatSeconds renders a seconds value the way ffmpeg expects for -ss/-t.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
