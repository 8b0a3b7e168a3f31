package faults

// ValveTrainWearFault is FM-03: increased impact energy in the 500-2000 Hz
// band on ACC-1/ACC-2 from worn valve train components.
type ValveTrainWearFault struct {
	base
	energyMultiplierMax float64
	kurtosisIncreaseMax float64
}

func NewValveTrainWearFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, energyMultiplierMax, kurtosisIncreaseMax float64) *ValveTrainWearFault {
	return &ValveTrainWearFault{
		base:                base{id: "FM-03", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		energyMultiplierMax: energyMultiplierMax,
		kurtosisIncreaseMax: kurtosisIncreaseMax,
	}
}

func (f *ValveTrainWearFault) AffectedSensorHint() string { return "acc1/acc2" }

func (f *ValveTrainWearFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	return FaultEffect{
		Vibration: map[string]VibrationEffect{
			"acc1_mid_low_energy": {OpMultiply, 1.0 + severity*f.energyMultiplierMax},
			"acc2_mid_low_energy": {OpMultiply, 1.0 + severity*f.energyMultiplierMax},
			"acc1_kurtosis":       {OpAdd, severity * f.kurtosisIncreaseMax},
			"acc2_kurtosis":       {OpAdd, severity * f.kurtosisIncreaseMax},
			"acc1_rms":            {OpMultiply, 1.0 + severity*0.5},
			"acc2_rms":            {OpMultiply, 1.0 + severity*0.5},
		},
		Thermal: map[string]float64{},
	}
}
