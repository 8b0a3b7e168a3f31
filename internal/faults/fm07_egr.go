package faults

import (
	"crypto/sha256"
	"encoding/binary"
	"math"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// EGRCoolerFault is FM-07: EGR cooler failure, combining gradual fouling
// (T5 rises over hundreds of hours) with sudden coolant-leak spikes (T1/T5)
// in stage 3/4. Leak occurrence is decided by hashing (seed, tHours) rather
// than drawing from a stateful RNG, so the same (truck, day, window) always
// produces the same leak/no-leak outcome regardless of worker count, worker
// scheduling, or process boundaries.
type EGRCoolerFault struct {
	base
	deltaT5Max            float64
	leakT1Spike           float64
	leakT5Spike           float64
	leakProbabilityPerHour float64
	seed                  int64
}

func NewEGRCoolerFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, deltaT5Max, leakT1Spike, leakT5Spike float64, seed int64) *EGRCoolerFault {
	return &EGRCoolerFault{
		base:                   base{id: "FM-07", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		deltaT5Max:             deltaT5Max,
		leakT1Spike:            leakT1Spike,
		leakT5Spike:            leakT5Spike,
		leakProbabilityPerHour: fleetconfig.FM07LeakProbabilityPerHour,
		seed:                   seed,
	}
}

func (f *EGRCoolerFault) AffectedSensorHint() string { return "t1/t5" }

// deterministicUnit returns a deterministic pseudo-random value in [0, 1)
// derived from (seed, tHours) via SHA-256, with no mutable state — safe to
// call from any goroutine/process in any order.
func deterministicUnit(seed int64, tHours float64) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(tHours))
	sum := sha256.Sum256(buf[:])
	v := binary.LittleEndian.Uint64(sum[:8])
	return float64(v) / float64(^uint64(0))
}

func (f *EGRCoolerFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	stage := f.CurrentStage(tHours)

	foulingFactor := severity * 0.4
	deltaT5 := f.deltaT5Max * foulingFactor

	thermal := map[string]float64{"t5": deltaT5}

	if stage == fleetconfig.FaultStageStage3 || stage == fleetconfig.FaultStageStage4 {
		p := f.leakProbabilityPerHour / 60.0 // per-window probability
		r := deterministicUnit(f.seed, tHours)
		if r < p*severity {
			thermal["t1"] = thermal["t1"] + f.leakT1Spike
			thermal["t5"] = thermal["t5"] + f.leakT5Spike
		}
	}

	return FaultEffect{Vibration: map[string]VibrationEffect{}, Thermal: thermal}
}
