package faults

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// EffectOp is how a fault's vibration effect composes with the sensor's
// healthy baseline value.
type EffectOp int

const (
	OpSet      EffectOp = iota // override the baseline outright
	OpMultiply                 // scale the baseline
	OpAdd                      // add to the baseline
)

// VibrationEffect is one fault's modification of a single named vibration
// feature (e.g. "acc1_rms", "acc1_mid_high_energy").
type VibrationEffect struct {
	Op    EffectOp
	Value float64
}

// FaultEffect is a single fault mode's contribution at one instant: a set of
// named vibration-feature modifiers plus a set of per-sensor thermal
// offsets in °C. "t4_turbo_factor" is a reserved thermal-effect key carrying
// FM-05's turbo efficiency-loss factor rather than a literal offset.
type FaultEffect struct {
	Vibration map[string]VibrationEffect
	Thermal   map[string]float64
}

// NoEffect is the zero-value FaultEffect returned while a fault is dormant.
func NoEffect() FaultEffect {
	return FaultEffect{Vibration: map[string]VibrationEffect{}, Thermal: map[string]float64{}}
}

// FaultMode is the common interface every FM-01..FM-08 implementation
// satisfies: a pure function of simulation time, RPM, and load to a
// FaultEffect, plus the internal-state accessors the label producer uses.
// Ground-truth labels are computed from these accessors — never from the
// synthesized features Effects() feeds into — so the model can never leak
// its own answer through the feature vector.
type FaultMode interface {
	ID() string
	AffectedSensorHint() string // informational; "" if not sensor-specific
	OnsetHours() float64
	TimeSinceOnset(tHours float64) float64
	CurrentSeverity(tHours float64) float64
	CurrentStage(tHours float64) fleetconfig.FaultStage
	CurrentRUL(tHours float64) float64
	PathALabel(tHours float64) string
	Effects(tHours, rpm, load float64) FaultEffect
	SetImproving(startHours, startSeverity, tau float64)
	ClearImproving()
}

// improveState overrides a fault's normal time-driven severity with an
// exponential decay once the maintenance engine has put it into
// monitor-improve: a continuous self-resolution trajectory, as opposed to
// the discontinuous reset a repair performs.
type improveState struct {
	startHours    float64
	startSeverity float64
	tau           float64
}

// base holds the fields and accessor logic every concrete fault mode
// shares; concrete types embed it and implement only Effects and
// AffectedSensorHint.
type base struct {
	id             string
	onsetHours     float64
	degradation    *DegradationModel
	totalLifeHours float64
	improving      *improveState
}

func (b *base) ID() string { return b.id }

// OnsetHours returns the fault's fixed onset time, used to break ties
// between equally-staged active faults in favor of whichever started
// degrading first.
func (b *base) OnsetHours() float64 { return b.onsetHours }

func (b *base) TimeSinceOnset(tHours float64) float64 {
	dt := tHours - b.onsetHours
	if dt < 0 {
		return 0
	}
	return dt
}

// SetImproving puts the fault into a monitor-improve trajectory: severity
// decays exponentially toward zero from startSeverity with time constant
// tau, instead of continuing to climb the normal degradation curve.
func (b *base) SetImproving(startHours, startSeverity, tau float64) {
	b.improving = &improveState{startHours: startHours, startSeverity: startSeverity, tau: tau}
}

// ClearImproving ends a monitor-improve trajectory, reverting to the normal
// time-driven severity curve (used when a continuing fault is re-detected
// and forced into repair).
func (b *base) ClearImproving() {
	b.improving = nil
}

func (b *base) CurrentSeverity(tHours float64) float64 {
	if b.improving != nil {
		dt := tHours - b.improving.startHours
		if dt < 0 {
			dt = 0
		}
		return b.improving.startSeverity * math.Exp(-dt/b.improving.tau)
	}
	dt := b.TimeSinceOnset(tHours)
	if dt <= 0 {
		return 0
	}
	return b.degradation.SeverityAt(dt)
}

// CurrentStage derives stage from the time-based degradation curve as
// normal, except while improving: then it derives stage from the decaying
// severity itself, so stage tracks the fault's self-resolution down to
// HEALTHY once severity falls below the noise floor.
func (b *base) CurrentStage(tHours float64) fleetconfig.FaultStage {
	if b.improving != nil {
		sev := b.CurrentSeverity(tHours)
		if sev < 0.01 {
			return fleetconfig.FaultStageHealthy
		}
		return fleetconfig.StageAtLifePct(sev)
	}
	dt := b.TimeSinceOnset(tHours)
	return b.degradation.StageAt(dt, b.totalLifeHours)
}

func (b *base) CurrentRUL(tHours float64) float64 {
	if b.improving != nil {
		return fleetconfig.RULSentinel
	}
	end := b.onsetHours + b.totalLifeHours
	rul := end - tHours
	if rul < 0 {
		return 0
	}
	return rul
}

// PathALabel classifies the current stage into the coarse NORMAL /
// IMMINENT / CRITICAL path-A taxonomy. Stage 3 splits into IMMINENT vs
// CRITICAL at the 85%-of-life mark within the fault's total life.
func (b *base) PathALabel(tHours float64) string {
	stage := b.CurrentStage(tHours)
	switch stage {
	case fleetconfig.FaultStageHealthy, fleetconfig.FaultStageStage1, fleetconfig.FaultStageStage2:
		return "NORMAL"
	case fleetconfig.FaultStageStage3:
		dt := b.TimeSinceOnset(tHours)
		lifePct := 1.0
		if b.totalLifeHours > 0 {
			lifePct = dt / b.totalLifeHours
		}
		if lifePct < 0.85 {
			return "IMMINENT"
		}
		return "CRITICAL"
	default:
		return "CRITICAL"
	}
}
