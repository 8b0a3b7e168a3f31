package faults

// InjectorWearFault is FM-06: fuel injector wear. T3 rises with an
// injector wear factor and ACC-1/ACC-2 pick up energy in the 10-25kHz band.
type InjectorWearFault struct {
	base
	deltaT3Max      float64
	deltaTInjector  float64
}

func NewInjectorWearFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, deltaT3Max, deltaTInjector float64) *InjectorWearFault {
	return &InjectorWearFault{
		base:           base{id: "FM-06", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		deltaT3Max:     deltaT3Max,
		deltaTInjector: deltaTInjector,
	}
}

func (f *InjectorWearFault) AffectedSensorHint() string { return "t3/acc1/acc2" }

func (f *InjectorWearFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	wear := severity * 0.22 // roughly the midpoint of the 0.15-0.30 full-wear range
	deltaT3 := f.deltaTInjector * wear

	return FaultEffect{
		Vibration: map[string]VibrationEffect{
			"acc1_high_energy": {OpMultiply, 1.0 + severity*5.0},
			"acc2_high_energy": {OpMultiply, 1.0 + severity*5.0},
			"acc1_rms":         {OpMultiply, 1.0 + severity*0.3},
			"acc2_rms":         {OpMultiply, 1.0 + severity*0.3},
			"acc1_kurtosis":    {OpAdd, severity * 1.0},
			"acc2_kurtosis":    {OpAdd, severity * 1.0},
		},
		Thermal: map[string]float64{"t3": deltaT3},
	}
}
