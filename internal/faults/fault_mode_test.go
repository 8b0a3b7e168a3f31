package faults

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

func TestCurrentRULDecreasesAsFaultProgressesThenFloorsAtZero(t *testing.T) {
	deg := NewDegradationModel(0.05, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	early := fm.CurrentRUL(100)
	late := fm.CurrentRUL(900)
	if late >= early {
		t.Fatalf("CurrentRUL should decrease over time: early=%v late=%v", early, late)
	}
	if r := fm.CurrentRUL(5000); r != 0 {
		t.Errorf("CurrentRUL() past end of life = %v, want 0", r)
	}
}

func TestTimeSinceOnsetFloorsAtZeroBeforeOnset(t *testing.T) {
	deg := NewDegradationModel(0.05, 1000, 1)
	fm := NewBearingWearFault(500, deg, 1000, fleetconfig.SensorACC1)
	if got := fm.TimeSinceOnset(100); got != 0 {
		t.Errorf("TimeSinceOnset(before onset) = %v, want 0", got)
	}
	if got := fm.TimeSinceOnset(600); got != 100 {
		t.Errorf("TimeSinceOnset(600) = %v, want 100", got)
	}
}

func TestSetImprovingOverridesSeverityWithExponentialDecay(t *testing.T) {
	deg := NewDegradationModel(0.0, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	startSeverity := fm.CurrentSeverity(800)
	fm.SetImproving(800, startSeverity, 100)

	if got := fm.CurrentSeverity(800); got != startSeverity {
		t.Errorf("CurrentSeverity at improve start = %v, want %v", got, startSeverity)
	}
	later := fm.CurrentSeverity(900)
	if later >= startSeverity {
		t.Fatalf("severity should decay once improving: start=%v later=%v", startSeverity, later)
	}
}

func TestImprovingSeverityBelowThresholdReportsHealthyAndSentinelRUL(t *testing.T) {
	deg := NewDegradationModel(0.0, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	fm.SetImproving(0, 0.005, 50) // already below the 0.01 floor
	if stage := fm.CurrentStage(0); stage != fleetconfig.FaultStageHealthy {
		t.Errorf("CurrentStage() = %v, want HEALTHY once improving severity is below 0.01", stage)
	}
	if rul := fm.CurrentRUL(0); rul != fleetconfig.RULSentinel {
		t.Errorf("CurrentRUL() = %v, want sentinel %v", rul, fleetconfig.RULSentinel)
	}
}

func TestCurrentRULIsSentinelWhileImprovingEvenAboveTheHealthyThreshold(t *testing.T) {
	deg := NewDegradationModel(0.0, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	startSeverity := fm.CurrentSeverity(800)
	fm.SetImproving(800, startSeverity, 100)

	if rul := fm.CurrentRUL(800); rul != fleetconfig.RULSentinel {
		t.Errorf("CurrentRUL() at the moment improving starts = %v, want sentinel %v (severity %v is still well above 0.01)", rul, fleetconfig.RULSentinel, startSeverity)
	}
}

func TestClearImprovingRevertsToTimeDrivenCurve(t *testing.T) {
	deg := NewDegradationModel(0.0, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	normal := fm.CurrentSeverity(500)
	fm.SetImproving(500, normal, 50)
	fm.ClearImproving()
	if got := fm.CurrentSeverity(500); got != normal {
		t.Errorf("CurrentSeverity() after ClearImproving = %v, want %v (the normal curve value)", got, normal)
	}
}

func TestPathALabelTracksStageThresholds(t *testing.T) {
	deg := NewDegradationModel(0.0, 1000, 1)
	fm := NewBearingWearFault(0, deg, 1000, fleetconfig.SensorACC1)

	if got := fm.PathALabel(0); got != "NORMAL" {
		t.Errorf("PathALabel(healthy) = %v, want NORMAL", got)
	}
	if got := fm.PathALabel(1000); got != "CRITICAL" {
		t.Errorf("PathALabel(end of life) = %v, want CRITICAL", got)
	}
}

func TestEffectsReturnsNoEffectBeforeOnset(t *testing.T) {
	deg := NewDegradationModel(0.05, 1000, 1)
	fm := NewBearingWearFault(500, deg, 1000, fleetconfig.SensorACC1)
	eff := fm.Effects(100, 1500, 0.5)
	if len(eff.Vibration) != 0 || len(eff.Thermal) != 0 {
		t.Errorf("Effects() before onset = %+v, want the zero FaultEffect", eff)
	}
}
