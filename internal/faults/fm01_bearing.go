package faults

import "github.com/fleetsynth/dieselgen/internal/fleetconfig"

// BearingWearFault is FM-01: bearing wear affecting ACC-1 or ACC-2 through a
// 4-stage RMS/kurtosis/spectral-kurtosis progression.
type BearingWearFault struct {
	base
	affectedSensor string // "acc1" or "acc2"
}

func NewBearingWearFault(onsetHours float64, degradation *DegradationModel, totalLifeHours float64, affectedSensor string) *BearingWearFault {
	return &BearingWearFault{
		base:           base{id: "FM-01", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		affectedSensor: affectedSensor,
	}
}

func (f *BearingWearFault) AffectedSensorHint() string { return f.affectedSensor }

func (f *BearingWearFault) Effects(tHours, rpm, load float64) FaultEffect {
	stage := f.CurrentStage(tHours)
	severity := f.CurrentSeverity(tHours)
	if stage == fleetconfig.FaultStageHealthy || severity <= 0 {
		return NoEffect()
	}

	params, ok := fleetconfig.BearingStages[stage]
	if !ok {
		return NoEffect()
	}
	frac := severity
	if frac > 1.0 {
		frac = 1.0
	}
	rmsTarget := params.RMS.Lo + frac*(params.RMS.Hi-params.RMS.Lo)
	kurtTarget := params.Kurtosis.Lo + frac*(params.Kurtosis.Hi-params.Kurtosis.Lo)
	skTarget := params.SK.Lo + frac*(params.SK.Hi-params.SK.Lo)

	loadFactor := 0.7 + 0.3*load
	sensor := f.affectedSensor

	crest := rmsTarget * 3.0 / maxFloat(rmsTarget, 0.01)

	return FaultEffect{
		Vibration: map[string]VibrationEffect{
			sensor + "_rms":                 {OpSet, rmsTarget * loadFactor},
			sensor + "_kurtosis":            {OpSet, kurtTarget},
			sensor + "_sk_max":              {OpSet, skTarget},
			sensor + "_crest_factor":        {OpSet, crest},
			sensor + "_mid_high_energy":     {OpMultiply, 1.0 + severity*10.0},
			sensor + "_mid_high_peak_shift": {OpSet, 1.0},
		},
		Thermal: map[string]float64{},
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
