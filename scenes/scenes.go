// Package scenes loads scene boundary lists from cut files.
//
// A cut file is a CSV with one scene per row: start and end boundary in
// the first two columns, as timecodes ("00:01:30.000") or plain seconds
// ("90.5"). An optional header row is skipped. This is the same shape the
// splitter writes back out when a command grows too long for the OS and
// the scene list has to be carried in a file instead.
package scenes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"scenesplit/models"
)

// Load reads a cut file from disk. The frame rate is used to convert each
// boundary into a frame-accurate timecode.
func Load(path string, fps float64) (models.SceneList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	scenes, err := Parse(f, fps)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}
	return scenes, nil
}

// Parse reads scene rows from r. Scenes must be ordered by start time;
// contiguity between scenes is not required and not enforced.
func Parse(r io.Reader, fps float64) (models.SceneList, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var scenes models.SceneList
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 columns, got %d", row, len(record))
		}

		start, err := models.ParseTimecode(record[0], fps)
		if err != nil {
			// A non-parseable first row is treated as a header.
			if row == 1 {
				continue
			}
			return nil, fmt.Errorf("row %d: invalid start boundary: %w", row, err)
		}
		end, err := models.ParseTimecode(record[1], fps)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid end boundary: %w", row, err)
		}

		scene, err := models.NewScene(start, end)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if n := len(scenes); n > 0 && scene.Start.Before(scenes[n-1].Start) {
			return nil, fmt.Errorf("row %d: scenes must be ordered by start time", row)
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}
