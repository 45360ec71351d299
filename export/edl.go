package export

import (
	"fmt"
	"math"
	"os"
	"strings"

	"scenesplit/models"
)

// GenerateEDL renders the scene list as a CMX3600 edit decision list, with
// one cut event per scene against a single source reel. The record track
// is laid out back to back, so the EDL reassembles the scenes without the
// gaps the source may contain between them.
func GenerateEDL(scenes models.SceneList, title, sourceName string) string {
	fps := 30
	if len(scenes) > 0 {
		fps = int(math.Round(scenes[0].Start.FPS()))
		if fps <= 0 {
			fps = 30
		}
	}

	dropFrame := false
	if len(scenes) > 0 {
		rate := scenes[0].Start.FPS()
		dropFrame = math.Abs(rate-29.97) < 0.01 || math.Abs(rate-59.94) < 0.01
	}

	lines := []string{fmt.Sprintf("TITLE: %s", title)}
	if dropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	recordOffset := int64(0)
	for i, scene := range scenes {
		srcIn := framesToEDLTimecode(scene.Start.Frames(), fps)
		srcOut := framesToEDLTimecode(scene.End.Frames(), fps)
		recIn := framesToEDLTimecode(recordOffset, fps)
		recOut := framesToEDLTimecode(recordOffset+scene.Frames(), fps)

		lines = append(lines,
			fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s", i+1, "AX", "V", srcIn, srcOut, recIn, recOut),
			fmt.Sprintf("* FROM CLIP NAME:  %s", sourceName),
		)
		recordOffset += scene.Frames()
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// SaveEDL writes the scene list as a CMX3600 EDL to a file.
func SaveEDL(path string, scenes models.SceneList, title, sourceName string) error {
	if err := os.WriteFile(path, []byte(GenerateEDL(scenes, title, sourceName)), 0o644); err != nil {
		return fmt.Errorf("failed to write EDL file: %w", err)
	}
	return nil
}

// framesToEDLTimecode renders a frame count as HH:MM:SS:FF.
func framesToEDLTimecode(frames int64, fps int) string {
	ff := frames % int64(fps)
	totalSeconds := frames / int64(fps)
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	hours := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, ff)
}
