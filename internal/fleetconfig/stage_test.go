package fleetconfig

import "testing"

func TestStageAtLifePctThresholds(t *testing.T) {
	cases := []struct {
		lifePct float64
		want    FaultStage
	}{
		{-0.1, FaultStageHealthy},
		{0, FaultStageHealthy},
		{0.01, FaultStageStage1},
		{0.59, FaultStageStage1},
		{0.60, FaultStageStage2},
		{0.74, FaultStageStage2},
		{0.75, FaultStageStage3},
		{0.94, FaultStageStage3},
		{0.95, FaultStageStage4},
		{1.0, FaultStageStage4},
		{1.5, FaultStageStage4},
	}
	for _, c := range cases {
		if got := StageAtLifePct(c.lifePct); got != c.want {
			t.Errorf("StageAtLifePct(%v) = %v, want %v", c.lifePct, got, c.want)
		}
	}
}

func TestFaultStageRankIsMonotonicallyIncreasing(t *testing.T) {
	stages := []FaultStage{FaultStageHealthy, FaultStageStage1, FaultStageStage2, FaultStageStage3, FaultStageStage4}
	for i := 1; i < len(stages); i++ {
		if stages[i].Rank() <= stages[i-1].Rank() {
			t.Errorf("%v.Rank()=%d is not greater than %v.Rank()=%d", stages[i], stages[i].Rank(), stages[i-1], stages[i-1].Rank())
		}
	}
}

func TestFaultStageStringIsHumanReadable(t *testing.T) {
	cases := map[FaultStage]string{
		FaultStageHealthy: "HEALTHY",
		FaultStageStage1:  "STAGE1",
		FaultStageStage2:  "STAGE2",
		FaultStageStage3:  "STAGE3",
		FaultStageStage4:  "STAGE4",
		FaultStage(99):    "UNKNOWN",
	}
	for stage, want := range cases {
		if got := stage.String(); got != want {
			t.Errorf("FaultStage(%d).String() = %q, want %q", int(stage), got, want)
		}
	}
}
