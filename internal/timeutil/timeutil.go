// Package timeutil provides time formatting utilities for backend commands.
package timeutil

import (
	"fmt"
	"math"
)

// FormatSeconds converts seconds to HH:MM:SS.mmm format.
//
// This rendering is used for mkvmerge `--split parts:` boundaries and for
// human-readable scene listings. Millisecond precision keeps the split
// points frame-accurate for frame rates up to 1000 fps.
//
// Example:
//
//	FormatSeconds(0)       // "00:00:00.000"
//	FormatSeconds(90)      // "00:01:30.000"
//	FormatSeconds(3661)    // "01:01:01.000"
//	FormatSeconds(30.53)   // "00:00:30.530"
//	FormatSeconds(59.9996) // "00:01:00.000"
func FormatSeconds(seconds float64) string {
	// Round to whole milliseconds first so carry into the minute field is
	// handled before the fields are split apart.
	ms := int64(math.Round(seconds * 1000))
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	secs := float64(ms%60000) / 1000
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, secs)
}
