// Package naming renders output filenames from user-supplied templates.
//
// Templates may reference $VIDEO_NAME and, for the per-scene ffmpeg
// strategy, $SCENE_NUMBER. Substitution is textual and tolerant: any
// placeholder this package does not recognize is left in the result
// untouched rather than causing a failure.
package naming

import (
	"fmt"
	"math"
	"strings"
)

// Recognized template placeholders.
const (
	PlaceholderVideoName   = "$VIDEO_NAME"
	PlaceholderSceneNumber = "$SCENE_NUMBER"
)

// RenderRemux renders the single output filename for the mkvmerge strategy.
//
// mkvmerge appends its own `-NNN` sequence suffix to every split part, so
// any scene-number placeholder is stripped from the template first; both
// the hyphen-prefixed and bare spellings are removed.
func RenderRemux(template, videoName string) string {
	return substitute(StripAutoNumbering(template), map[string]string{
		"VIDEO_NAME": videoName,
	})
}

// RenderScene renders the output filename for one scene in the ffmpeg
// strategy. index is 1-based; total is the scene count of the whole call
// and determines the zero-padded width of the scene number.
func RenderScene(template, videoName string, index, total int) string {
	number := fmt.Sprintf("%0*d", SceneNumberWidth(total), index)
	return substitute(template, map[string]string{
		"VIDEO_NAME":   videoName,
		"SCENE_NUMBER": number,
	})
}

// SceneNumberWidth returns the zero-padding width for scene numbers:
// at least 3 digits, and enough digits for the largest scene number, so
// every generated filename has the same length and sorts lexicographically
// in scene order.
func SceneNumberWidth(total int) int {
	if total < 1 {
		return 3
	}
	width := int(math.Floor(math.Log10(float64(total)))) + 1
	if width < 3 {
		width = 3
	}
	return width
}

// StripAutoNumbering removes the scene-number placeholder from a template,
// covering both the "-$SCENE_NUMBER" and "$SCENE_NUMBER" spellings.
func StripAutoNumbering(template string) string {
	for _, spelling := range []string{
		"-${SCENE_NUMBER}", "-" + PlaceholderSceneNumber,
		"${SCENE_NUMBER}", PlaceholderSceneNumber,
	} {
		template = strings.ReplaceAll(template, spelling, "")
	}
	return template
}

// substitute replaces each named placeholder in $NAME and ${NAME} form.
// Unknown placeholders pass through unchanged.
func substitute(template string, vars map[string]string) string {
	for name, value := range vars {
		template = strings.ReplaceAll(template, "${"+name+"}", value)
		template = strings.ReplaceAll(template, "$"+name, value)
	}
	return template
}
