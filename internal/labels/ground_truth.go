// Package labels computes ground-truth labels strictly from each fault
// mode's internal state — never from the vibration/thermal features
// synthesized alongside them — so a trained model can never recover its
// own answer through a feature-label shortcut.
package labels

import (
	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// GroundTruth is the per-window label record.
type GroundTruth struct {
	FaultID      string  // "HEALTHY" when no fault is active, else "FM-01".."FM-08"
	FaultStage   string  // HEALTHY/STAGE1../STAGE4
	RULHours     float64 // fleetconfig.RULSentinel when no fault is active
	PathALabel   string  // NORMAL/IMMINENT/CRITICAL
}

// Compute selects the worst active fault at tHours across every fault mode
// assigned to a truck (zero, one, or several under multi-fault assignment).
// "Active" means the fault's stage is anything other than HEALTHY — a fault
// at STAGE1 already counts, unlike a strict elapsed-time-only onset check.
// Ties in stage rank break on earliest onset.
func Compute(tHours float64, faultModes []faults.FaultMode) GroundTruth {
	var worst faults.FaultMode
	var worstStage fleetconfig.FaultStage

	for _, fm := range faultModes {
		stage := fm.CurrentStage(tHours)
		if stage == fleetconfig.FaultStageHealthy {
			continue
		}
		if worst == nil {
			worst, worstStage = fm, stage
			continue
		}
		if stage.Rank() > worstStage.Rank() {
			worst, worstStage = fm, stage
			continue
		}
		if stage.Rank() == worstStage.Rank() && fm.OnsetHours() < worst.OnsetHours() {
			worst, worstStage = fm, stage
		}
	}

	if worst == nil {
		return GroundTruth{
			FaultID:    "HEALTHY",
			FaultStage: fleetconfig.FaultStageHealthy.String(),
			RULHours:   fleetconfig.RULSentinel,
			PathALabel: "NORMAL",
		}
	}

	return GroundTruth{
		FaultID:    worst.ID(),
		FaultStage: worstStage.String(),
		RULHours:   worst.CurrentRUL(tHours),
		PathALabel: worst.PathALabel(tHours),
	}
}
