package faults

import "math"

// DPFBlockageFault is FM-08: sustained T3 elevation from particulate-filter
// blockage, partially cleared by regeneration cycles every
// regenIntervalHours (regen never fully resets the underlying severity
// trend, only the visible thermal effect).
type DPFBlockageFault struct {
	base
	deltaT3Max         float64
	regenIntervalHours float64
	regenClearance     float64
}

func NewDPFBlockageFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, deltaT3Max, regenIntervalHours float64) *DPFBlockageFault {
	return &DPFBlockageFault{
		base:               base{id: "FM-08", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		deltaT3Max:         deltaT3Max,
		regenIntervalHours: regenIntervalHours,
		regenClearance:     0.3,
	}
}

func (f *DPFBlockageFault) AffectedSensorHint() string { return "t3" }

func (f *DPFBlockageFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	dt := f.TimeSinceOnset(tHours)

	nRegens := int(dt / f.regenIntervalHours)
	effective := severity * math.Pow(1.0-f.regenClearance, float64(nRegens))
	floor := severity * 0.5
	if effective < floor {
		effective = floor
	}
	if effective > severity {
		effective = severity
	}

	deltaT3 := f.deltaT3Max * effective
	return FaultEffect{
		Vibration: map[string]VibrationEffect{},
		Thermal:   map[string]float64{"t3": deltaT3},
	}
}
