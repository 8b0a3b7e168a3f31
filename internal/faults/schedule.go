package faults

import (
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// TotalSimHours is the full simulation horizon in hours (183 days).
const TotalSimHours = float64(fleetconfig.SimulationDays * fleetconfig.HoursPerDay)

// AssignFaults assigns fault modes and onset times to the fleet: ~30%
// healthy, ~40% single-fault, ~20% double, ~10% triple, with fault types
// distributed round-robin across the fleet for balanced representation of
// all eight modes. The schedule RNG is independent of any truck's own seed,
// matching the reference assignment's seed+1000 offset.
func AssignFaults(trucks []fleet.Truck, masterSeed int64) map[int][]FaultMode {
	rng := simnoise.New(masterSeed + 1000)
	n := len(trucks)

	nHealthy := int(float64(n) * fleetconfig.FaultDistribution[0])
	nSingle := int(float64(n) * fleetconfig.FaultDistribution[1])
	nDouble := int(float64(n) * fleetconfig.FaultDistribution[2])
	nTriple := n - nHealthy - nSingle - nDouble

	counts := make([]int, 0, n)
	for i := 0; i < nHealthy; i++ {
		counts = append(counts, 0)
	}
	for i := 0; i < nSingle; i++ {
		counts = append(counts, 1)
	}
	for i := 0; i < nDouble; i++ {
		counts = append(counts, 2)
	}
	for i := 0; i < nTriple; i++ {
		counts = append(counts, 3)
	}
	rng.ShuffleInts(counts)

	schedule := make(map[int][]FaultMode, n)
	faultTypeCounter := 0
	maxOnset := TotalSimHours * 0.70

	for i, truck := range trucks {
		nFaults := counts[i]
		used := map[string]bool{}
		list := make([]FaultMode, 0, nFaults)

		for j := 0; j < nFaults; j++ {
			fid := ""
			for attempt := 0; attempt < len(fleetconfig.FaultIDs); attempt++ {
				candidate := fleetconfig.FaultIDs[(faultTypeCounter+attempt)%len(fleetconfig.FaultIDs)]
				if !used[candidate] {
					fid = candidate
					break
				}
			}
			if fid == "" {
				for _, candidate := range fleetconfig.FaultIDs {
					if !used[candidate] {
						fid = candidate
						break
					}
				}
			}
			used[fid] = true
			faultTypeCounter = (faultTypeCounter + 1) % len(fleetconfig.FaultIDs)

			onset := rng.Uniform(0, maxOnset)
			fm := NewByID(fid, onset, truck.EngineType, rng)
			list = append(list, fm)
		}
		schedule[truck.TruckID] = list
	}
	return schedule
}

// NewByID constructs a fresh fault-mode instance of the given FM-xx type
// with freshly sampled progression parameters, for both initial fleet
// assignment and post-repair reassignment (§4.9.1).
func NewByID(faultID string, onsetHours float64, engineType string, rng *simnoise.Generator) FaultMode {
	seed := rng.UniformInt(0, 1<<31-1)

	switch faultID {
	case "FM-01":
		p := fleetconfig.BearingDegradation[engineType]
		sigma := rng.Uniform(p.SigmaRange.Lo, p.SigmaRange.Hi)
		tStage2 := rng.Uniform(p.TStage2Hours.Lo, p.TStage2Hours.Hi)
		dt23 := rng.Uniform(p.DT23Hours.Lo, p.DT23Hours.Hi)
		dt34 := rng.Uniform(p.DT34Hours.Lo, p.DT34Hours.Hi)
		totalLife := tStage2 + dt23 + dt34
		deg := NewDegradationModel(sigma, totalLife+100, int64(seed))
		sensor := fleetconfig.SensorACC1
		if rng.Bool(0.5) {
			sensor = fleetconfig.SensorACC2
		}
		return NewBearingWearFault(onsetHours, deg, totalLife, sensor)

	case "FM-02":
		totalLife := rng.Uniform(fleetconfig.FM02CoolingProgressionHours.Lo, fleetconfig.FM02CoolingProgressionHours.Hi)
		delta := rng.Uniform(fleetconfig.FM02CoolingDeltaT1Max.Lo, fleetconfig.FM02CoolingDeltaT1Max.Hi)
		deg := NewDegradationModel(0.08, totalLife+100, int64(seed))
		return NewCoolingDegradationFault(onsetHours, deg, totalLife, delta)

	case "FM-03":
		totalLife := rng.Uniform(fleetconfig.ValveTrainProgressionHours.Lo, fleetconfig.ValveTrainProgressionHours.Hi)
		energyMult := rng.Uniform(fleetconfig.ValveTrainEnergyMultMax.Lo, fleetconfig.ValveTrainEnergyMultMax.Hi)
		kurtInc := rng.Uniform(fleetconfig.ValveTrainKurtosisIncMax.Lo, fleetconfig.ValveTrainKurtosisIncMax.Hi)
		deg := NewDegradationModel(0.10, totalLife+100, int64(seed))
		return NewValveTrainWearFault(onsetHours, deg, totalLife, energyMult, kurtInc)

	case "FM-04":
		totalLife := rng.Uniform(fleetconfig.FM04OilProgressionHours.Lo, fleetconfig.FM04OilProgressionHours.Hi)
		delta := rng.Uniform(fleetconfig.FM04OilDeltaT2Max.Lo, fleetconfig.FM04OilDeltaT2Max.Hi)
		deg := NewDegradationModel(0.08, totalLife+100, int64(seed))
		return NewOilDegradationFault(onsetHours, deg, totalLife, delta)

	case "FM-05":
		totalLife := rng.Uniform(fleetconfig.FM05TurboProgressionHours.Lo, fleetconfig.FM05TurboProgressionHours.Hi)
		degMax := rng.Uniform(fleetconfig.FM05TurboDegFactorMax.Lo, fleetconfig.FM05TurboDegFactorMax.Hi)
		deg := NewDegradationModel(0.10, totalLife+100, int64(seed))
		return NewTurboDegradationFault(onsetHours, deg, totalLife, degMax)

	case "FM-06":
		totalLife := rng.Uniform(fleetconfig.FM06InjectorProgressionHours.Lo, fleetconfig.FM06InjectorProgressionHours.Hi)
		deltaT3 := rng.Uniform(fleetconfig.FM06InjectorDeltaT3Max.Lo, fleetconfig.FM06InjectorDeltaT3Max.Hi)
		deltaInj := rng.Uniform(fleetconfig.FM06InjectorDeltaTFull.Lo, fleetconfig.FM06InjectorDeltaTFull.Hi)
		deg := NewDegradationModel(0.08, totalLife+100, int64(seed))
		return NewInjectorWearFault(onsetHours, deg, totalLife, deltaT3, deltaInj)

	case "FM-07":
		totalLife := rng.Uniform(fleetconfig.FM07FoulingProgressionHours.Lo, fleetconfig.FM07FoulingProgressionHours.Hi)
		deltaT5 := rng.Uniform(fleetconfig.FM07FoulingDeltaT5Max.Lo, fleetconfig.FM07FoulingDeltaT5Max.Hi)
		leakT1 := rng.Uniform(fleetconfig.FM07LeakDeltaT1Spike.Lo, fleetconfig.FM07LeakDeltaT1Spike.Hi)
		leakT5 := rng.Uniform(fleetconfig.FM07LeakDeltaT5Spike.Lo, fleetconfig.FM07LeakDeltaT5Spike.Hi)
		deg := NewDegradationModel(0.12, totalLife+100, int64(seed))
		return NewEGRCoolerFault(onsetHours, deg, totalLife, deltaT5, leakT1, leakT5, int64(seed))

	case "FM-08":
		totalLife := rng.Uniform(fleetconfig.FM08DPFProgressionHours.Lo, fleetconfig.FM08DPFProgressionHours.Hi)
		deltaT3 := rng.Uniform(fleetconfig.FM08DPFDeltaT3Max.Lo, fleetconfig.FM08DPFDeltaT3Max.Hi)
		regenInt := rng.Uniform(fleetconfig.FM08DPFRegenIntervalHours.Lo, fleetconfig.FM08DPFRegenIntervalHours.Hi)
		deg := NewDegradationModel(0.15, totalLife+100, int64(seed))
		return NewDPFBlockageFault(onsetHours, deg, totalLife, deltaT3, regenInt)
	}
	return nil
}
