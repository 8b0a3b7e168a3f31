package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/maintenance"
)

func maintenanceLogPath(outputDir string, truckID int) string {
	return filepath.Join(outputDir, "metadata", fmt.Sprintf("truck_%d", truckID), "maintenance_log.json")
}

// SaveMaintenanceLog writes a truck's full detection/inspection/outcome
// event history, overwriting any prior copy — called once at the end of
// that truck's generation run.
func SaveMaintenanceLog(outputDir string, truckID int, events []maintenance.Event) error {
	path := maintenanceLogPath(outputDir, truckID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.IO("SaveMaintenanceLog", "mkdir metadata dir", err)
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return apperrors.IO("SaveMaintenanceLog", "marshal maintenance log", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.IO("SaveMaintenanceLog", "write maintenance log", err)
	}
	return nil
}
