// Package fleet builds the 200-truck fleet: engine profiles, bearing
// geometry, sampled thermal baselines, and the stratified train/val/test
// split.
package fleet

import "github.com/fleetsynth/dieselgen/internal/fleetconfig"

// BearingGeometry parameterizes the five characteristic bearing fault
// frequencies (shaft, BPFO, BPFI, BSF, FTF).
type BearingGeometry struct {
	NBalls          int
	BallDiaMM       float64
	PitchDiaMM      float64
	ContactAngleDeg float64
}

// ThermalBaseline is one sensor's sampled idle/cruise/tau parameters.
type ThermalBaseline struct {
	IdleTemp   float64
	CruiseTemp float64
	DeltaLoad  float64
	Tau        float64
}

// EngineProfile carries every physical parameter a truck's engine variant
// needs: bearing geometry for vibration fault frequencies, per-sensor
// thermal baselines for the lag model, and descriptive metadata (carried
// from the original implementation's schema but not load-bearing for any
// numeric path today).
type EngineProfile struct {
	Name               string // "modern" or "older"
	DisplacementRangeL fleetconfig.Range
	NMainBearings      int
	CruiseRPMRange     fleetconfig.Range
	BearingGeometry    BearingGeometry
	ThermalBaselines   map[string]ThermalBaseline
	TurboDeltaBaseline fleetconfig.Range
}

// Truck is a single fleet member's static configuration.
type Truck struct {
	TruckID    int
	EngineType string // "modern" or "older"
	Profile    EngineProfile
	Seed       int64 // master_seed + truck_id
	Split      string // "train", "val", "test"
}

// Metadata summarizes the generated fleet for the manifest/sidecar files.
type Metadata struct {
	TotalTrucks  int
	ModernCount  int
	OlderCount   int
	TrainIDs     []int
	ValIDs       []int
	TestIDs      []int
	Seed         int64
}
