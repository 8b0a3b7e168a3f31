package fleetconfig

import (
	"github.com/fleetsynth/dieselgen/internal/apperrors"
)

// GeneratorConfig holds every CLI-flag-driven setting for a generation run.
// Unlike the teacher's env-var Config, nothing here is read from the
// environment: spec.md §6.5 requires that no environment variable influence
// numeric output, so every knob is explicit and traceable to a flag.
type GeneratorConfig struct {
	Trucks               int
	Days                 int
	Seed                 int64
	OutputDir            string
	Workers              int
	SkipExisting         bool
	SingleTruck          int  // -1 means "all trucks"
	SingleDay            int  // -1 means "all days"
	ValidationCheckpoint bool
	Verbose              bool
}

// DefaultGeneratorConfig mirrors the reference CLI's defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Trucks:       FleetSize,
		Days:         SimulationDays,
		Seed:         42,
		OutputDir:    "output/",
		Workers:      1,
		SkipExisting: true,
		SingleTruck:  -1,
		SingleDay:    -1,
	}
}

// Validate checks the configuration for fatal, pre-generation problems.
func (c GeneratorConfig) Validate() error {
	if c.Trucks <= 0 || c.Trucks > FleetSize {
		return apperrors.Config("GeneratorConfig.Validate", "trucks must be in [1, 200]")
	}
	if c.Days <= 0 || c.Days > SimulationDays {
		return apperrors.Config("GeneratorConfig.Validate", "days must be in [1, 183]")
	}
	if c.Workers <= 0 {
		return apperrors.Config("GeneratorConfig.Validate", "workers must be >= 1")
	}
	if c.OutputDir == "" {
		return apperrors.Config("GeneratorConfig.Validate", "output-dir must not be empty")
	}
	if c.SingleTruck >= 0 && (c.SingleTruck < 1 || c.SingleTruck > c.Trucks) {
		return apperrors.Config("GeneratorConfig.Validate", "single-truck out of range")
	}
	if c.SingleDay >= 0 && c.SingleDay >= c.Days {
		return apperrors.Config("GeneratorConfig.Validate", "single-day out of range")
	}
	return nil
}
