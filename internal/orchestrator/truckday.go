// Package orchestrator drives one truck's sequence of simulated days and
// the fleet-wide worker pool that dispatches trucks concurrently, wiring
// together every other package in the pipeline: operating-state simulation,
// fault effects, thermal and vibration synthesis, feature assembly, label
// production, and the maintenance lifecycle engine.
package orchestrator

import (
	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/features"
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/labels"
	"github.com/fleetsynth/dieselgen/internal/maintenance"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
	"github.com/fleetsynth/dieselgen/internal/simulation"
	"github.com/fleetsynth/dieselgen/internal/storage"
	"github.com/fleetsynth/dieselgen/internal/thermal"
	"github.com/fleetsynth/dieselgen/internal/vibration"
	"github.com/rs/zerolog"
)

const secondsPerDay = int64(fleetconfig.WindowsPerDay) * 60

// GenerateTruckDay produces one truck-day's worth of rows, or does nothing
// if the maintenance engine reports the truck IN_REPAIR for dayIndex (spec
// §4.9 step 3: "suppress row emission"). It returns whether a file was
// written, along with a tally of path_A_label values across the rows
// written (empty when suppressed) for the fleet-wide class-distribution
// check.
func GenerateTruckDay(outputDir string, truck fleet.Truck, dayIndex int, ts *maintenance.TruckState, ambient simulation.AmbientModel, log zerolog.Logger) (bool, map[string]int, error) {
	labelCounts := map[string]int{}
	tHoursEndOfDay := float64(dayIndex+1) * float64(fleetconfig.HoursPerDay)

	if ts.InRepairOnDay(dayIndex) {
		// Still advance the state machine on every suppressed day, not just
		// the ones with rows: this is what lets repair completion (fault
		// clearing, episode_id increment, thermal reset) land on the last
		// suppressed day, so the first day with rows after IN_REPAIR already
		// reflects the post-repair state instead of the stale pre-repair one.
		ts.AdvanceDay(dayIndex, tHoursEndOfDay)
		log.Debug().Int("truck_id", truck.TruckID).Int("day_index", dayIndex).Msg("truck in repair, suppressing row emission")
		return false, labelCounts, nil
	}

	daySeed := truck.Seed*1000 + int64(dayIndex)
	rng := simnoise.New(daySeed)

	prevTemps, found, err := storage.LoadThermalState(outputDir, truck.TruckID, dayIndex-1, log)
	if err != nil {
		return false, labelCounts, err
	}
	if !found || ts.ThermalResetPending {
		prevTemps = thermal.DefaultIdleTemps(truck.Profile)
	}

	// Trucks start each simulated day parked: the richer, physically
	// motivated carryover this generator uses in place of the reference
	// implementation's "always cruise after day zero" shortcut.
	modes := simulation.SimulateDay(rng, fleetconfig.ModeIdle)
	rpm, load := simulation.GenerateRPMLoad(modes, truck.EngineType, rng)

	writer, err := storage.NewRowWriter(outputDir, truck.TruckID, dayIndex)
	if err != nil {
		return false, labelCounts, err
	}

	activeFaults := ts.ActiveFaultModes()
	baseTimestamp := int64(dayIndex) * secondsPerDay

	for i := 0; i < fleetconfig.WindowsPerDay; i++ {
		tHours := float64(dayIndex)*float64(fleetconfig.HoursPerDay) + float64(i)/60.0
		timestamp := baseTimestamp + int64(i)*60

		effects := make([]faults.FaultEffect, 0, len(activeFaults))
		for _, fm := range activeFaults {
			effects = append(effects, fm.Effects(tHours, rpm[i], load[i]))
		}

		vibFeatures := vibration.Synthesize(load[i], effects, rng)
		thermalFeatures, updatedTemps := thermal.Synthesize(load[i], truck.Profile, ambient.Temperature(dayIndex, i*60), effects, prevTemps, rng)
		prevTemps = updatedTemps

		rpmEst, loadProxy := features.Conditioning(rpm[i], thermalFeatures["t3_mean"], truck.EngineType, rng)
		featureMap, err := features.Assemble(rpmEst, loadProxy, vibFeatures, thermalFeatures)
		if err != nil {
			writer.Close()
			return false, labelCounts, err
		}

		label := labels.Compute(tHours, activeFaults)
		labelCounts[label.PathALabel]++

		if err := writer.WriteRow(timestamp, truck.TruckID, truck.EngineType, dayIndex, ts.EpisodeID, featureMap, label.FaultID, label.FaultStage, label.RULHours, label.PathALabel); err != nil {
			writer.Close()
			return false, labelCounts, err
		}
	}

	if err := writer.Close(); err != nil {
		return false, labelCounts, err
	}

	lastTimestamp := baseTimestamp + secondsPerDay
	if err := storage.SaveThermalState(outputDir, truck.TruckID, dayIndex, lastTimestamp, prevTemps); err != nil {
		return false, labelCounts, err
	}

	ts.AdvanceDay(dayIndex, tHoursEndOfDay)

	return true, labelCounts, nil
}
