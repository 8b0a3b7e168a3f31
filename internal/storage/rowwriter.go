package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/features"
)

// RowWriter streams one truck-day's 1440 rows to a CSV file under
// <outputDir>/truck_<id>/day_<d>.csv, in the fixed 230-column schema. No
// parquet or arrow library appears anywhere in the example pack, so CSV via
// the standard library is the grounded choice here (see DESIGN.md).
type RowWriter struct {
	f   *os.File
	w   *csv.Writer
	cols []string
}

// DayFilePath is the canonical path for one truck-day's output file.
func DayFilePath(outputDir string, truckID, dayIndex int) string {
	return filepath.Join(outputDir, fmt.Sprintf("truck_%d", truckID), fmt.Sprintf("day_%d.csv", dayIndex))
}

// NewRowWriter opens (truncating) the output file for one truck-day and
// writes the header row.
func NewRowWriter(outputDir string, truckID, dayIndex int) (*RowWriter, error) {
	path := DayFilePath(outputDir, truckID, dayIndex)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.IO("NewRowWriter", "mkdir truck output dir", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, apperrors.IO("NewRowWriter", "create day file", err)
	}
	w := csv.NewWriter(f)
	cols := features.OutputColumns()
	if err := w.Write(cols); err != nil {
		f.Close()
		return nil, apperrors.IO("NewRowWriter", "write header", err)
	}
	return &RowWriter{f: f, w: w, cols: cols}, nil
}

// WriteRow renders one assembled row in canonical column order.
func (rw *RowWriter) WriteRow(timestamp int64, truckID int, engineType string, dayIndex, episodeID int, featureMap map[string]float64, faultID, faultStage string, rulHours float64, pathALabel string) error {
	record := make([]string, 0, len(rw.cols))
	record = append(record,
		strconv.FormatInt(timestamp, 10),
		strconv.Itoa(truckID),
		engineType,
		strconv.Itoa(dayIndex),
		strconv.Itoa(episodeID),
	)
	for _, col := range features.FeatureColumns() {
		record = append(record, strconv.FormatFloat(featureMap[col], 'g', -1, 64))
	}
	record = append(record,
		faultID,
		faultStage,
		strconv.FormatFloat(rulHours, 'g', -1, 64),
		pathALabel,
	)
	if err := rw.w.Write(record); err != nil {
		return apperrors.IO("WriteRow", "write csv record", err)
	}
	return nil
}

// Close flushes and closes the underlying file, surfacing any buffered
// write error.
func (rw *RowWriter) Close() error {
	rw.w.Flush()
	if err := rw.w.Error(); err != nil {
		rw.f.Close()
		return apperrors.IO("Close", "flush csv writer", err)
	}
	if err := rw.f.Close(); err != nil {
		return apperrors.IO("Close", "close day file", err)
	}
	return nil
}
