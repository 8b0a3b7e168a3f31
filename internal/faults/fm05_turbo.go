package faults

import "github.com/fleetsynth/dieselgen/internal/fleetconfig"

// TurboDegradationFault is FM-05: turbocharger efficiency loss. The T3-T4
// delta shrinks (expressed as a reserved "t4_turbo_factor" thermal-effect
// key the thermal model post-processes); stage 3+ additionally raises
// broadband (1-5kHz) ACC-3 vibration from a degrading journal bearing.
type TurboDegradationFault struct {
	base
	degradationFactorMax float64
}

func NewTurboDegradationFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, degradationFactorMax float64) *TurboDegradationFault {
	return &TurboDegradationFault{
		base:                  base{id: "FM-05", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		degradationFactorMax:  degradationFactorMax,
	}
}

func (f *TurboDegradationFault) AffectedSensorHint() string { return "t3/t4/acc3" }

func (f *TurboDegradationFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	stage := f.CurrentStage(tHours)
	degradationFactor := severity * f.degradationFactorMax

	vib := map[string]VibrationEffect{}
	if stage == fleetconfig.FaultStageStage3 || stage == fleetconfig.FaultStageStage4 {
		vib["acc3_broadband_energy"] = VibrationEffect{OpMultiply, 1.0 + severity*3.0}
		vib["acc3_rms"] = VibrationEffect{OpMultiply, 1.0 + severity*1.5}
	}

	return FaultEffect{
		Vibration: vib,
		Thermal:   map[string]float64{"t4_turbo_factor": degradationFactor},
	}
}
