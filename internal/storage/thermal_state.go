// Package storage persists and reloads the sidecar files that carry state
// across day boundaries and summarize a completed run: thermal-state
// snapshots, maintenance logs, fleet stratification metadata, and the
// generation manifest, plus the row writer for the 230-column output schema.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/rs/zerolog"
)

// thermalStateRecord mirrors spec.md §6.4's thermal_state sidecar schema.
type thermalStateRecord struct {
	TruckID   int                `json:"truck_id"`
	DayIndex  int                `json:"day_index"`
	Timestamp int64              `json:"timestamp"`
	T1        float64            `json:"T1"`
	T2        float64            `json:"T2"`
	T3        float64            `json:"T3"`
	T4        float64            `json:"T4"`
	T5        float64            `json:"T5"`
	T6        float64            `json:"T6"`
}

func thermalStatePath(outputDir string, truckID, dayIndex int) string {
	return filepath.Join(outputDir, "thermal_state", fmt.Sprintf("truck_%d", truckID), fmt.Sprintf("day_%d.json", dayIndex))
}

// SaveThermalState writes the end-of-day temperature vector for
// (truckID, dayIndex) so the next day's simulation can resume from it.
func SaveThermalState(outputDir string, truckID, dayIndex int, timestamp int64, temps map[string]float64) error {
	rec := thermalStateRecord{
		TruckID:   truckID,
		DayIndex:  dayIndex,
		Timestamp: timestamp,
		T1:        temps["t1"],
		T2:        temps["t2"],
		T3:        temps["t3"],
		T4:        temps["t4"],
		T5:        temps["t5"],
		T6:        temps["t6"],
	}
	path := thermalStatePath(outputDir, truckID, dayIndex)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.IO("SaveThermalState", "mkdir thermal_state dir", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return apperrors.IO("SaveThermalState", "marshal thermal state", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.IO("SaveThermalState", "write thermal state", err)
	}
	return nil
}

// LoadThermalState reads the previous day's temperature vector. A missing
// file is not an error — the caller falls back to idle baselines — but any
// other I/O or decode failure is.
func LoadThermalState(outputDir string, truckID, dayIndex int, log zerolog.Logger) (map[string]float64, bool, error) {
	path := thermalStatePath(outputDir, truckID, dayIndex)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Int("truck_id", truckID).Int("day_index", dayIndex).Msg("no persisted thermal state, falling back to idle baseline")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.IO("LoadThermalState", "read thermal state", err)
	}
	var rec thermalStateRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, apperrors.IO("LoadThermalState", "decode thermal state", err)
	}
	return map[string]float64{
		"t1": rec.T1, "t2": rec.T2, "t3": rec.T3, "t4": rec.T4, "t5": rec.T5, "t6": rec.T6,
	}, true, nil
}
