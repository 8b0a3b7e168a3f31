// Command generator produces the synthetic fleet predictive-maintenance
// dataset: a deterministic, reproducible batch run over a stratified truck
// fleet, driven entirely by CLI flags (never environment variables).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/orchestrator"
	"github.com/fleetsynth/dieselgen/internal/simulation"
	"github.com/fleetsynth/dieselgen/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	cfg := fleetconfig.DefaultGeneratorConfig()

	root := &cobra.Command{
		Use:   "generator",
		Short: "Generate the synthetic fleet predictive-maintenance dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	root.Flags().IntVar(&cfg.Trucks, "trucks", cfg.Trucks, "number of trucks in the fleet (1-200)")
	root.Flags().IntVar(&cfg.Days, "days", cfg.Days, "number of simulated days per truck (1-183)")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "master seed for the entire run")
	root.Flags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory to write output and sidecar files into")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of trucks to process concurrently")
	root.Flags().BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "skip truck-days whose output file already exists")
	root.Flags().IntVar(&cfg.SingleTruck, "single-truck", cfg.SingleTruck, "generate only this truck id (-1 for all)")
	root.Flags().IntVar(&cfg.SingleDay, "single-day", cfg.SingleDay, "generate only this day index (-1 for all)")
	root.Flags().BoolVar(&cfg.ValidationCheckpoint, "validation-checkpoint", cfg.ValidationCheckpoint, "run the fixed 10-truck controlled-fault validation fleet instead")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug-level logging")

	if err := root.Execute(); err != nil {
		kind := apperrors.KindOf(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(kind.ExitCode())
	}
}

func run(cfg fleetconfig.GeneratorConfig) error {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := simulation.ValidateTransitionMatrix(); err != nil {
		return err
	}

	var trucks []fleet.Truck
	var schedule map[int][]faults.FaultMode
	var meta fleet.Metadata

	if cfg.ValidationCheckpoint {
		trucks, schedule = orchestrator.BuildValidationFleet(cfg.Seed)
		log.Info().Int("trucks", len(trucks)).Msg("running validation-checkpoint fleet")
	} else {
		trucks, meta = fleet.CreateFleet(cfg.Seed)
		if cfg.Trucks < len(trucks) {
			trucks = trucks[:cfg.Trucks]
		}
		schedule = faults.AssignFaults(trucks, cfg.Seed)
		if err := storage.SaveSplitFiles(cfg.OutputDir, meta); err != nil {
			return err
		}
		if err := storage.SaveFleetStratification(cfg.OutputDir, meta); err != nil {
			return err
		}
	}

	if cfg.SingleTruck >= 0 {
		filtered := make([]fleet.Truck, 0, 1)
		for _, t := range trucks {
			if t.TruckID == cfg.SingleTruck {
				filtered = append(filtered, t)
			}
		}
		trucks = filtered
	}

	firstDay, lastDay := 0, cfg.Days-1
	if cfg.SingleDay >= 0 {
		firstDay, lastDay = cfg.SingleDay, cfg.SingleDay
	}

	spec := orchestrator.RunSpec{
		OutputDir:    cfg.OutputDir,
		FirstDay:     firstDay,
		LastDay:      lastDay,
		Workers:      cfg.Workers,
		SkipExisting: cfg.SkipExisting,
	}

	log.Info().Int("trucks", len(trucks)).Int("first_day", firstDay).Int("last_day", lastDay).Msg("starting generation run")

	_, labelCounts, errs := orchestrator.RunFleet(spec, trucks, schedule, cfg.Seed, log)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	fullRun := !cfg.ValidationCheckpoint && cfg.SingleTruck < 0 && cfg.SingleDay < 0
	if fullRun {
		if err := orchestrator.ValidateClassDistribution(labelCounts); err != nil {
			return err
		}
	}

	if !cfg.ValidationCheckpoint {
		manifest := storage.GenerationManifest{
			RunID:             uuid.NewString(),
			GenerationDate:    time.Now().UTC().Format(time.RFC3339),
			SpecVersion:       "1.0",
			NumTrucks:         len(trucks),
			NumDays:           cfg.Days,
			TotalWindows:      orchestrator.TotalWindows(len(trucks), cfg.Days),
			Seed:              cfg.Seed,
			FaultDistribution: faultDistributionCounts(schedule),
		}
		if err := storage.SaveGenerationManifest(cfg.OutputDir, manifest); err != nil {
			return err
		}
	}

	log.Info().Msg("generation run complete")
	return nil
}

func faultDistributionCounts(schedule map[int][]faults.FaultMode) map[string]int {
	counts := map[string]int{}
	for _, list := range schedule {
		for _, fm := range list {
			counts[fm.ID()]++
		}
	}
	return counts
}
