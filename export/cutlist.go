// Package export writes scene lists out as cut files.
//
// This is the escape hatch for splits whose argument vector exceeds the
// OS command-line limit: instead of one giant command, the scene list is
// saved to disk so the video can be split in batches from the file, or
// carried into an editing tool as an EDL.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"scenesplit/models"
)

// WriteCutList writes the scene list as CSV in the shape the scenes
// package reads back: a header row, then one row per scene with start and
// end timecodes plus their frame numbers.
func WriteCutList(w io.Writer, scenes models.SceneList) error {
	writer := csv.NewWriter(w)

	header := []string{"start", "end", "start_frame", "end_frame"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write cut list header: %w", err)
	}
	for i, scene := range scenes {
		record := []string{
			scene.Start.Timecode(),
			scene.End.Timecode(),
			strconv.FormatInt(scene.Start.Frames(), 10),
			strconv.FormatInt(scene.End.Frames(), 10),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write scene %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveCutList writes the scene list as CSV to a file.
func SaveCutList(path string, scenes models.SceneList) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create cut list file: %w", err)
	}
	if err := WriteCutList(f, scenes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
