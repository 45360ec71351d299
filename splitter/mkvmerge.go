package splitter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"scenesplit/invoke"
	"scenesplit/models"
	"scenesplit/naming"
)

// MkvmergeSplitter splits via a single mkvmerge invocation carrying every
// cut point, remuxing losslessly. mkvmerge numbers the output parts itself,
// so one rendered output name covers the whole call.
//
// Multiple inputs are supported: mkvmerge treats them as one concatenated
// source.
type MkvmergeSplitter struct {
	inputs    []string
	scenes    models.SceneList
	template  string
	videoName string

	suppressOutput bool

	invoker invoke.Invoker
	logger  *slog.Logger
}

// NewMkvmergeSplitter creates a splitter for the given inputs and scenes
// with default settings.
func NewMkvmergeSplitter(inputs []string, scenes models.SceneList) *MkvmergeSplitter {
	return &MkvmergeSplitter{
		inputs:    inputs,
		scenes:    scenes,
		template:  "$VIDEO_NAME-Scene-$SCENE_NUMBER.mkv",
		videoName: "video",
		invoker:   invoke.NewRunner(),
		logger:    slog.Default(),
	}
}

// SetTemplate sets the output filename template. Scene-number placeholders
// are stripped at build time because mkvmerge appends its own suffix.
func (m *MkvmergeSplitter) SetTemplate(template string) *MkvmergeSplitter {
	m.template = template
	return m
}

// SetVideoName sets the display name substituted for $VIDEO_NAME.
func (m *MkvmergeSplitter) SetVideoName(name string) *MkvmergeSplitter {
	m.videoName = name
	return m
}

// SetSuppressOutput adds --quiet to the invocation and discards child output.
func (m *MkvmergeSplitter) SetSuppressOutput(suppress bool) *MkvmergeSplitter {
	m.suppressOutput = suppress
	return m
}

// SetInvoker replaces the command invoker (used by tests).
func (m *MkvmergeSplitter) SetInvoker(inv invoke.Invoker) *MkvmergeSplitter {
	m.invoker = inv
	return m
}

// SetLogger replaces the logger.
func (m *MkvmergeSplitter) SetLogger(logger *slog.Logger) *MkvmergeSplitter {
	m.logger = logger
	return m
}

// BuildArgs constructs the complete mkvmerge argument vector.
//
// Cut points are passed as a `parts:` split directive with one
// start-end timecode pair per scene. Each pair uses that scene's own end
// boundary; nothing is inferred from the following scene, so a gap between
// scenes stays a gap in the output.
func (m *MkvmergeSplitter) BuildArgs() []string {
	args := []string{"mkvmerge"}
	if m.suppressOutput {
		args = append(args, "--quiet")
	}

	parts := make([]string, 0, len(m.scenes))
	for _, scene := range m.scenes {
		parts = append(parts, scene.Start.Timecode()+"-"+scene.End.Timecode())
	}

	args = append(args,
		"-o", naming.RenderRemux(m.template, m.videoName),
		"--split", "parts:"+strings.Join(parts, ","),
		// mkvmerge reads "a.mkv +b.mkv" as one concatenated source; the
		// joined list is a single argument token.
		strings.Join(m.inputs, " +"),
	)
	return args
}

// DryRun returns the command that would be executed without running it.
func (m *MkvmergeSplitter) DryRun() string {
	return strings.Join(m.BuildArgs(), " ")
}

// Split executes the remux. Returns the no-op result when there are no
// inputs or no scenes. A nonzero backend exit code is reported in the
// result, not as an error; only launch failures the caller cannot act on
// from the result alone are returned as errors.
func (m *MkvmergeSplitter) Split(ctx context.Context) (models.SplitResult, error) {
	if len(m.inputs) == 0 || len(m.scenes) == 0 {
		return models.NoOpResult(), nil
	}

	m.logger.Info("splitting input with mkvmerge",
		"inputs", len(m.inputs),
		"scenes", len(m.scenes),
		"template", m.template)

	totalFrames := m.scenes.TotalFrames()
	start := time.Now()
	code, err := m.invoker.Invoke(ctx, invoke.Invocation{
		Args:     m.BuildArgs(),
		Suppress: m.suppressOutput,
	})
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, invoke.ErrCommandTooLong):
		m.logger.Error(commandTooLongHelp)
		return models.SplitResult{Status: models.StatusCommandTooLong, Elapsed: elapsed}, nil
	case errors.Is(err, invoke.ErrToolNotFound):
		m.logger.Error("mkvmerge could not be found on the system; " +
			"install mkvmerge (part of MKVToolNix) to enable video splitting")
		return models.SplitResult{Status: models.StatusToolNotFound, Elapsed: elapsed}, nil
	case err != nil:
		return models.SplitResult{Status: models.StatusBackendFailure, ExitCode: -1, Elapsed: elapsed},
			err
	}

	if code != 0 {
		m.logger.Error("error splitting video",
			"backend", "mkvmerge",
			"exit_code", code)
		return models.SplitResult{
			Status:      models.StatusBackendFailure,
			ExitCode:    code,
			FramesTotal: totalFrames,
			Elapsed:     elapsed,
		}, nil
	}

	result := models.SplitResult{
		Status:      models.StatusSuccess,
		FramesTotal: totalFrames,
		Elapsed:     elapsed,
	}
	if !m.suppressOutput {
		m.logger.Info("average processing speed",
			"frames_per_sec", result.Throughput())
	}
	return result, nil
}
