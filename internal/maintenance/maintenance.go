// Package maintenance implements the truck-level maintenance lifecycle
// state machine (detection, inspection scheduling, outcome sampling, repair,
// and post-repair fault reassignment) that the rest of the simulation has no
// counterpart for — it is this generator's own addition to the pipeline,
// grounded only on the teacher's explicit-state, callback-driven machine
// idiom, not on any reference formula.
package maintenance

import (
	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// LifecycleState is the truck's coarse maintenance state.
type LifecycleState int

const (
	StateOperating LifecycleState = iota
	StateRepairScheduled
	StateInRepair
)

func (s LifecycleState) String() string {
	switch s {
	case StateOperating:
		return "OPERATING"
	case StateRepairScheduled:
		return "REPAIR_SCHEDULED"
	case StateInRepair:
		return "IN_REPAIR"
	default:
		return "UNKNOWN"
	}
}

// ManagedFault wraps a faults.FaultMode with the detection/inspection
// bookkeeping the maintenance engine alone owns; the fault mode itself
// stays ignorant of maintenance state beyond the SetImproving override.
type ManagedFault struct {
	Mode          faults.FaultMode
	DetectProb    [3]float64 // indexed by stage rank - 2 (stage2, stage3, stage4)
	Detected      bool
	DetectionDay  int
	InspectionDay int // -1 when none scheduled
	ForceRepair   bool
}

func newManagedFault(mode faults.FaultMode, rng *simnoise.Generator) *ManagedFault {
	return &ManagedFault{
		Mode: mode,
		DetectProb: [3]float64{
			rng.Uniform(fleetconfig.DetectionProbStage2Range.Lo, fleetconfig.DetectionProbStage2Range.Hi),
			rng.Uniform(fleetconfig.DetectionProbStage3Range.Lo, fleetconfig.DetectionProbStage3Range.Hi),
			fleetconfig.DetectionProbStage4Fixed,
		},
		InspectionDay: -1,
	}
}

func (mf *ManagedFault) detectProbFor(stage fleetconfig.FaultStage) float64 {
	switch stage {
	case fleetconfig.FaultStageStage2:
		return mf.DetectProb[0]
	case fleetconfig.FaultStageStage3:
		return mf.DetectProb[1]
	case fleetconfig.FaultStageStage4:
		return mf.DetectProb[2]
	default:
		return 0
	}
}

func inspectionDelayDays(stage fleetconfig.FaultStage, rng *simnoise.Generator) int {
	var r fleetconfig.Range
	switch stage {
	case fleetconfig.FaultStageStage2:
		r = fleetconfig.InspectionDelayDaysStage2
	case fleetconfig.FaultStageStage3:
		r = fleetconfig.InspectionDelayDaysStage3
	default:
		r = fleetconfig.InspectionDelayDaysStage4
	}
	return rng.UniformInt(int(r.Lo), int(r.Hi))
}

func repairDurationDays(stage fleetconfig.FaultStage, rng *simnoise.Generator) int {
	var r fleetconfig.Range
	switch stage {
	case fleetconfig.FaultStageStage2:
		r = fleetconfig.RepairDurationDaysStage2
	case fleetconfig.FaultStageStage3:
		r = fleetconfig.RepairDurationDaysStage3
	default:
		r = fleetconfig.RepairDurationDaysStage4
	}
	return rng.UniformInt(int(r.Lo), int(r.Hi))
}

// outcome is one of the three inspection results.
type outcome int

const (
	outcomeRepair outcome = iota
	outcomeMonitor
	outcomeFalsePositive
)

func sampleOutcome(stage fleetconfig.FaultStage, forceRepair bool, rng *simnoise.Generator) outcome {
	if forceRepair {
		return outcomeRepair
	}
	probs, ok := fleetconfig.OutcomeProbsByStage[stage]
	if !ok {
		return outcomeRepair
	}
	r := rng.Float64()
	if r < probs[0] {
		return outcomeRepair
	}
	if r < probs[0]+probs[1] {
		return outcomeMonitor
	}
	return outcomeFalsePositive
}

// Event is one maintenance log entry as persisted to
// metadata/truck_<id>/maintenance_log.json.
type Event struct {
	EpisodeIDBefore int    `json:"episode_id_before"`
	EpisodeIDAfter  int    `json:"episode_id_after"`
	FaultRepaired   string `json:"fault_repaired,omitempty"`
	DetectionDay    int    `json:"detection_day"`
	DetectionStage  string `json:"detection_stage"`
	InspectionDay   int    `json:"inspection_day"`
	Outcome         string `json:"outcome"`
	RepairStartDay  int    `json:"repair_start_day,omitempty"`
	RepairEndDay    int    `json:"repair_end_day,omitempty"`
	ReturnToServiceDay int `json:"return_to_service_day,omitempty"`
}

// TruckState is one truck's full maintenance lifecycle state, advanced one
// simulated day at a time by the orchestrator after that day's rows are
// written.
type TruckState struct {
	TruckID       int
	EngineType    string
	EpisodeID     int
	State         LifecycleState
	Faults        []*ManagedFault
	Log           []Event
	TotalSimHours float64

	repairStartDay int
	repairEndDay   int
	repairStage    fleetconfig.FaultStage
	repairTrigger  *ManagedFault

	// ThermalResetPending is set for the day a truck returns from repair;
	// the orchestrator must discard persisted thermal state and
	// re-initialize from idle baselines for that day.
	ThermalResetPending bool

	rng *simnoise.Generator
}

// NewTruckState seeds a truck's maintenance state with its initially
// assigned faults (from fleet-level assignment) and a maintenance-specific
// RNG stream distinct from the degradation/vibration/thermal streams.
func NewTruckState(truckID int, engineType string, initialFaults []faults.FaultMode, maintenanceSeed int64, totalSimHours float64) *TruckState {
	rng := simnoise.New(maintenanceSeed)
	ts := &TruckState{
		TruckID:        truckID,
		EngineType:     engineType,
		State:          StateOperating,
		TotalSimHours:  totalSimHours,
		repairStartDay: -1,
		repairEndDay:   -1,
		rng:            rng,
	}
	for _, fm := range initialFaults {
		ts.Faults = append(ts.Faults, newManagedFault(fm, rng))
	}
	return ts
}

// ActiveFaultModes returns the faults.FaultMode handles of every currently
// tracked fault, for the feature/label pipeline to consult.
func (ts *TruckState) ActiveFaultModes() []faults.FaultMode {
	out := make([]faults.FaultMode, 0, len(ts.Faults))
	for _, mf := range ts.Faults {
		out = append(out, mf.Mode)
	}
	return out
}

// InRepairOnDay reports whether rows for dayIndex must be suppressed
// because the truck is mid-repair.
func (ts *TruckState) InRepairOnDay(dayIndex int) bool {
	if ts.State != StateInRepair {
		return false
	}
	if ts.repairEndDay < 0 {
		return true
	}
	return dayIndex >= ts.repairStartDay && dayIndex <= ts.repairEndDay
}

func activeFaultIDs(faultsList []*ManagedFault, tHours float64) map[string]bool {
	out := map[string]bool{}
	for _, mf := range faultsList {
		if mf.Mode.CurrentStage(tHours).Rank() > 0 {
			out[mf.Mode.ID()] = true
		}
	}
	return out
}

// AdvanceDay runs the detection → inspection → repair state machine for one
// day boundary, called with the elapsed simulation hours at the end of
// dayIndex. It returns true if the truck returned to service on this call
// (signaling the orchestrator to reset thermal state for the next day).
func (ts *TruckState) AdvanceDay(dayIndex int, tHoursEndOfDay float64) bool {
	ts.ThermalResetPending = false

	if ts.State == StateInRepair {
		if dayIndex >= ts.repairEndDay {
			ts.completeRepair(dayIndex, tHoursEndOfDay)
			return true
		}
		return false
	}

	// Step 1: Bernoulli detection trials for every active, undetected fault
	// at stage >= 2.
	for _, mf := range ts.Faults {
		if mf.Detected {
			continue
		}
		stage := mf.Mode.CurrentStage(tHoursEndOfDay)
		if stage.Rank() < fleetconfig.FaultStageStage2.Rank() {
			continue
		}
		p := mf.detectProbFor(stage)
		if ts.rng.Bool(p) {
			mf.Detected = true
			mf.DetectionDay = dayIndex
			mf.InspectionDay = dayIndex + inspectionDelayDays(stage, ts.rng)
			ts.State = StateRepairScheduled
		}
	}

	// Step 2/3/4/5: resolve every inspection scheduled for today.
	for _, mf := range ts.Faults {
		if !mf.Detected || mf.InspectionDay != dayIndex {
			continue
		}
		stage := mf.Mode.CurrentStage(tHoursEndOfDay)
		out := sampleOutcome(stage, mf.ForceRepair, ts.rng)
		switch out {
		case outcomeRepair:
			ts.triggerRepair(mf, stage, dayIndex, tHoursEndOfDay)
			// Step 6: a repair resolves every other pending inspection too.
			return false
		case outcomeMonitor:
			mf.Detected = false
			mf.InspectionDay = -1
			mf.ForceRepair = false
			if ts.rng.Bool(0.5) {
				tau := ts.rng.Uniform(fleetconfig.ImproveTauHoursRange.Lo, fleetconfig.ImproveTauHoursRange.Hi)
				mf.Mode.SetImproving(tHoursEndOfDay, mf.Mode.CurrentSeverity(tHoursEndOfDay), tau)
			} else {
				mf.ForceRepair = true
			}
			ts.logEvent(mf, dayIndex, stage, "monitor")
		case outcomeFalsePositive:
			mf.Detected = false
			mf.InspectionDay = -1
			mf.ForceRepair = false
			ts.logEvent(mf, dayIndex, stage, "false_positive")
		}
	}

	if ts.State == StateRepairScheduled && !ts.anyPendingInspection() {
		ts.State = StateOperating
	}
	return false
}

func (ts *TruckState) anyPendingInspection() bool {
	for _, mf := range ts.Faults {
		if mf.Detected && mf.InspectionDay >= 0 {
			return true
		}
	}
	return false
}

func (ts *TruckState) logEvent(mf *ManagedFault, dayIndex int, stage fleetconfig.FaultStage, out string) {
	ts.Log = append(ts.Log, Event{
		EpisodeIDBefore: ts.EpisodeID,
		EpisodeIDAfter:  ts.EpisodeID,
		FaultRepaired:   mf.Mode.ID(),
		DetectionDay:    mf.DetectionDay,
		DetectionStage:  stage.String(),
		InspectionDay:   dayIndex,
		Outcome:         out,
	})
}

func (ts *TruckState) triggerRepair(trigger *ManagedFault, stage fleetconfig.FaultStage, dayIndex int, tHoursEndOfDay float64) {
	duration := repairDurationDays(stage, ts.rng)
	ts.State = StateInRepair
	ts.repairStartDay = dayIndex + 1
	ts.repairEndDay = dayIndex + duration
	ts.repairStage = stage
	ts.repairTrigger = trigger

	// Cancel every other pending inspection: the repair resolves all faults.
	for _, mf := range ts.Faults {
		if mf != trigger {
			mf.InspectionDay = -1
		}
	}

	ts.Log = append(ts.Log, Event{
		EpisodeIDBefore: ts.EpisodeID,
		EpisodeIDAfter:  ts.EpisodeID + 1,
		FaultRepaired:   trigger.Mode.ID(),
		DetectionDay:    trigger.DetectionDay,
		DetectionStage:  stage.String(),
		InspectionDay:   dayIndex,
		Outcome:         "repair",
		RepairStartDay:  ts.repairStartDay,
		RepairEndDay:    ts.repairEndDay,
	})
}

func (ts *TruckState) completeRepair(dayIndex int, tHoursEndOfDay float64) {
	active := activeFaultIDs(ts.Faults, tHoursEndOfDay)
	remaining := make([]*ManagedFault, 0, len(ts.Faults))
	for _, mf := range ts.Faults {
		if active[mf.Mode.ID()] {
			continue
		}
		remaining = append(remaining, mf)
	}
	ts.Faults = remaining
	ts.EpisodeID++

	if len(ts.Log) > 0 {
		last := &ts.Log[len(ts.Log)-1]
		last.EpisodeIDAfter = ts.EpisodeID
		last.ReturnToServiceDay = dayIndex + 1
	}

	returnHours := float64(dayIndex+1) * fleetconfig.HoursPerDay
	if ts.TotalSimHours-returnHours >= fleetconfig.PostRepairHealthyBufferHours && ts.rng.Bool(fleetconfig.PostRepairReassignProb) {
		newType := ts.pickUnusedFaultType(active)
		if newType != "" {
			onset := returnHours + fleetconfig.PostRepairHealthyBufferHours +
				ts.rng.Uniform(0, ts.TotalSimHours-returnHours-fleetconfig.PostRepairHealthyBufferHours)
			mode := faults.NewByID(newType, onset, ts.EngineType, ts.rng)
			if mode != nil {
				ts.Faults = append(ts.Faults, newManagedFault(mode, ts.rng))
			}
		}
	}

	ts.State = StateOperating
	ts.repairStartDay, ts.repairEndDay = -1, -1
	ts.repairTrigger = nil
	ts.ThermalResetPending = true
}

func (ts *TruckState) pickUnusedFaultType(activeAtRepair map[string]bool) string {
	candidates := make([]string, 0, len(fleetconfig.FaultIDs))
	for _, id := range fleetconfig.FaultIDs {
		if !activeAtRepair[id] {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	return candidates[ts.rng.UniformInt(0, len(candidates)-1)]
}

// FinalizeUnresolved appends a "simulation_end" event for every detected
// fault still tracked when the simulation horizon ends; undetected faults
// are not logged.
func (ts *TruckState) FinalizeUnresolved(finalDay int) {
	for _, mf := range ts.Faults {
		if !mf.Detected {
			continue
		}
		ts.Log = append(ts.Log, Event{
			EpisodeIDBefore: ts.EpisodeID,
			EpisodeIDAfter:  ts.EpisodeID,
			FaultRepaired:   mf.Mode.ID(),
			DetectionDay:    mf.DetectionDay,
			InspectionDay:   mf.InspectionDay,
			Outcome:         "simulation_end",
		})
	}
}
