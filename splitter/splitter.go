// Package splitter builds and runs the backend commands that cut a source
// video into per-scene output files.
//
// Two interchangeable strategies are provided. MkvmergeSplitter folds the
// whole scene list into one lossless remux invocation; FFmpegSplitter
// re-encodes, invoking the backend once per scene. Both follow the same
// builder pattern: construct with the inputs and scene list, adjust with
// chained setters, then call Split.
package splitter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedConfig indicates a splitter was configured in a way its
// backend cannot execute (e.g. multiple inputs for ffmpeg). The failure is
// raised before any child process is spawned.
var ErrUnsupportedConfig = errors.New("unsupported splitter configuration")

// DefaultEncoderArgs is the encoder argument override used by the ffmpeg
// strategy when the caller does not supply one.
const DefaultEncoderArgs = "-c:v libx264 -preset fast -crf 21 -c:a aac"

// Remediation guidance logged when a backend command exceeds the OS
// argument-vector limit. Splitting very long scene lists needs a cut-list
// export instead of a single command.
const commandTooLongHelp = "cannot split video: too many scenes make the resulting command " +
	"too large for the OS to process; export the scene list as a cut file " +
	"and split the video from that instead"

// ParseEncoderArgs tokenizes an encoder argument override string into
// discrete argument tokens.
//
// Escaped quote sequences (\") are unescaped first, then the string is
// split on whitespace. Tokens are passed to the backend verbatim, never
// through a shell, so shell metacharacters that would rely on shell
// interpretation are rejected here rather than silently ignored.
func ParseEncoderArgs(override string) ([]string, error) {
	unescaped := strings.ReplaceAll(override, `\"`, `"`)
	tokens := strings.Fields(unescaped)
	for _, token := range tokens {
		if strings.ContainsAny(token, "|;&<>`") {
			return nil, fmt.Errorf("encoder argument %q contains shell metacharacters; "+
				"arguments are passed directly to the backend without a shell", token)
		}
	}
	return tokens, nil
}
