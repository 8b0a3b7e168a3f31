package fleetconfig

// FaultStage is the degradation stage of an active fault, derived from
// elapsed life percentage (or, for a fault on a monitor-improve trajectory,
// from its decaying severity) — never from synthesized features.
type FaultStage int

const (
	FaultStageHealthy FaultStage = iota
	FaultStageStage1
	FaultStageStage2
	FaultStageStage3
	FaultStageStage4
)

func (s FaultStage) String() string {
	switch s {
	case FaultStageHealthy:
		return "HEALTHY"
	case FaultStageStage1:
		return "STAGE1"
	case FaultStageStage2:
		return "STAGE2"
	case FaultStageStage3:
		return "STAGE3"
	case FaultStageStage4:
		return "STAGE4"
	default:
		return "UNKNOWN"
	}
}

// Rank orders stages for worst-fault-wins comparison across multiple active
// faults on the same truck.
func (s FaultStage) Rank() int {
	return int(s)
}

// StageAtLifePct maps elapsed-life fraction (since fault onset, divided by
// total life) to a degradation stage using the fixed thresholds shared by
// every fault mode's stage labeling.
func StageAtLifePct(lifePct float64) FaultStage {
	switch {
	case lifePct <= 0:
		return FaultStageHealthy
	case lifePct < 0.60:
		return FaultStageStage1
	case lifePct < 0.75:
		return FaultStageStage2
	case lifePct < 0.95:
		return FaultStageStage3
	default:
		return FaultStageStage4
	}
}
