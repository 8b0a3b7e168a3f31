package faults

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// TestScenarioBFM01StageProgression is the literal FM-01 progression
// scenario: a bearing-wear fault onset at t=0 with a 100-hour total life,
// observed with maintenance out of the picture (no detection/repair calls at
// all — just the fault's own time-driven curve) over simulated days 0-4.
// Severity must be strictly higher at day 4's end than at day 0's end, and
// the stage must have advanced past stage 1 somewhere in the span.
func TestScenarioBFM01StageProgression(t *testing.T) {
	deg := NewDegradationModel(0.02, 100, 7)
	fm := NewBearingWearFault(0, deg, 100, fleetconfig.SensorACC1)

	day0End := 24.0
	day4End := 5 * 24.0

	sevDay0 := fm.CurrentSeverity(day0End)
	sevDay4 := fm.CurrentSeverity(day4End)
	if sevDay4 <= sevDay0 {
		t.Fatalf("severity did not progress: day0=%v day4=%v", sevDay0, sevDay4)
	}

	sawPastStage1 := false
	for h := 0.0; h <= day4End; h += 1.0 {
		if fm.CurrentStage(h).Rank() > fleetconfig.FaultStageStage1.Rank() {
			sawPastStage1 = true
			break
		}
	}
	if !sawPastStage1 {
		t.Fatal("stage never advanced past STAGE1 across days 0-4 of a 100-hour total life fault")
	}
}
