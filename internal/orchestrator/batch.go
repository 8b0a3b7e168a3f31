package orchestrator

import (
	"fmt"
	"os"

	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/maintenance"
	"github.com/fleetsynth/dieselgen/internal/simulation"
	"github.com/fleetsynth/dieselgen/internal/storage"
	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"
)

// RunSpec bounds the generation run: the trucks to process, the day range,
// and the concurrency the worker pool should use.
type RunSpec struct {
	OutputDir     string
	FirstDay      int
	LastDay       int // inclusive
	Workers       int
	SkipExisting  bool
}

// RunFleet dispatches one workerpool task per truck; within a task, days
// run strictly in ascending order (thermal and maintenance state carry from
// day to day) while trucks run fully concurrently across the pool, matching
// spec.md §5. It also returns the fleet-wide tally of path_A_label values
// written, for the caller's post-run class-distribution check.
func RunFleet(spec RunSpec, trucks []fleet.Truck, schedule map[int][]faults.FaultMode, masterSeed int64, log zerolog.Logger) ([]*maintenance.TruckState, map[string]int, []error) {
	ambient := simulation.DefaultAmbientModel()

	states := make([]*maintenance.TruckState, len(trucks))
	errs := make([]error, len(trucks))
	perTruckCounts := make([]map[string]int, len(trucks))

	wp := workerpool.New(spec.Workers)
	for idx, truck := range trucks {
		idx, truck := idx, truck
		wp.Submit(func() {
			ts := maintenance.NewTruckState(truck.TruckID, truck.EngineType, schedule[truck.TruckID], masterSeed+int64(truck.TruckID)+500000, faults.TotalSimHours)
			states[idx] = ts
			truckCounts := map[string]int{}
			perTruckCounts[idx] = truckCounts

			tlog := log.With().Int("truck_id", truck.TruckID).Logger()
			for day := spec.FirstDay; day <= spec.LastDay; day++ {
				if spec.SkipExisting && dayFileExists(spec.OutputDir, truck.TruckID, day) {
					continue
				}
				_, dayCounts, err := GenerateTruckDay(spec.OutputDir, truck, day, ts, ambient, tlog)
				for label, n := range dayCounts {
					truckCounts[label] += n
				}
				if err != nil {
					errs[idx] = fmt.Errorf("truck %d day %d: %w", truck.TruckID, day, err)
					return
				}
			}
			ts.FinalizeUnresolved(spec.LastDay)
			if err := storage.SaveMaintenanceLog(spec.OutputDir, truck.TruckID, ts.Log); err != nil {
				errs[idx] = err
			}
		})
	}
	wp.StopWait()

	totalCounts := map[string]int{}
	for _, counts := range perTruckCounts {
		for label, n := range counts {
			totalCounts[label] += n
		}
	}

	return states, totalCounts, errs
}

func dayFileExists(outputDir string, truckID, dayIndex int) bool {
	_, err := os.Stat(storage.DayFilePath(outputDir, truckID, dayIndex))
	return err == nil
}

// TotalWindows returns the nominal window count numTrucks × numDays ×
// WindowsPerDay for the generation manifest; days suppressed by a repair or
// skipped as already existing are not subtracted.
func TotalWindows(numTrucks, numDays int) int64 {
	return int64(numTrucks) * int64(numDays) * int64(fleetconfig.WindowsPerDay)
}
