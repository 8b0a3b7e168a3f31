package faults

// OilDegradationFault is FM-04: rising oil temperature (T2) proportional to
// severity and load.
type OilDegradationFault struct {
	base
	deltaT2Max float64
}

func NewOilDegradationFault(onsetHours float64, degradation *DegradationModel, totalLifeHours, deltaT2Max float64) *OilDegradationFault {
	return &OilDegradationFault{
		base:       base{id: "FM-04", onsetHours: onsetHours, degradation: degradation, totalLifeHours: totalLifeHours},
		deltaT2Max: deltaT2Max,
	}
}

func (f *OilDegradationFault) AffectedSensorHint() string { return "t2" }

func (f *OilDegradationFault) Effects(tHours, rpm, load float64) FaultEffect {
	severity := f.CurrentSeverity(tHours)
	if severity <= 0 {
		return NoEffect()
	}
	deltaT2 := f.deltaT2Max * severity * load
	return FaultEffect{
		Vibration: map[string]VibrationEffect{},
		Thermal:   map[string]float64{"t2": deltaT2},
	}
}
