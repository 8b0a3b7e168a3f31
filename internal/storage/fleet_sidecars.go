package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/fleet"
)

// SaveSplitFiles writes metadata/{train,val,test}_trucks.txt, one truck id
// per line.
func SaveSplitFiles(outputDir string, meta fleet.Metadata) error {
	files := map[string][]int{
		"train_trucks.txt": meta.TrainIDs,
		"val_trucks.txt":   meta.ValIDs,
		"test_trucks.txt":  meta.TestIDs,
	}
	dir := filepath.Join(outputDir, "metadata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.IO("SaveSplitFiles", "mkdir metadata dir", err)
	}
	for name, ids := range files {
		lines := make([]string, len(ids))
		for i, id := range ids {
			lines[i] = fmt.Sprintf("%d", id)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			return apperrors.IO("SaveSplitFiles", "write "+name, err)
		}
	}
	return nil
}

// fleetStratification mirrors metadata/fleet_stratification.json: fleet-wide
// modern/older counts plus the truck count of each split. The modern/older
// count is not broken down per split.
type fleetStratification struct {
	TotalTrucks int            `json:"total_trucks"`
	ModernCount int            `json:"modern_count"`
	OlderCount  int            `json:"older_count"`
	Seed        int64          `json:"seed"`
	Splits      map[string]int `json:"splits"`
}

// SaveFleetStratification writes the fleet-level summary sidecar.
func SaveFleetStratification(outputDir string, meta fleet.Metadata) error {
	rec := fleetStratification{
		TotalTrucks: meta.TotalTrucks,
		ModernCount: meta.ModernCount,
		OlderCount:  meta.OlderCount,
		Seed:        meta.Seed,
		Splits: map[string]int{
			"train": len(meta.TrainIDs),
			"val":   len(meta.ValIDs),
			"test":  len(meta.TestIDs),
		},
	}
	dir := filepath.Join(outputDir, "metadata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.IO("SaveFleetStratification", "mkdir metadata dir", err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return apperrors.IO("SaveFleetStratification", "marshal stratification", err)
	}
	path := filepath.Join(dir, "fleet_stratification.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.IO("SaveFleetStratification", "write stratification", err)
	}
	return nil
}

// GenerationManifest records the parameters of a completed run plus the
// fleet-wide count of assigned faults per fault type, mirroring
// batch_generator.py's _write_manifest.
type GenerationManifest struct {
	RunID             string         `json:"run_id"`
	GenerationDate    string         `json:"generation_date"`
	SpecVersion       string         `json:"spec_version"`
	NumTrucks         int            `json:"num_trucks"`
	NumDays           int            `json:"num_days"`
	TotalWindows      int64          `json:"total_windows"`
	Seed              int64          `json:"seed"`
	FaultDistribution map[string]int `json:"fault_distribution"`
}

// SaveGenerationManifest writes metadata/generation_manifest.json.
func SaveGenerationManifest(outputDir string, manifest GenerationManifest) error {
	dir := filepath.Join(outputDir, "metadata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.IO("SaveGenerationManifest", "mkdir metadata dir", err)
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return apperrors.IO("SaveGenerationManifest", "marshal manifest", err)
	}
	path := filepath.Join(dir, "generation_manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.IO("SaveGenerationManifest", "write manifest", err)
	}
	return nil
}
