package fleet

import (
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// NewEngineProfile samples a complete engine profile for the given variant.
// Thermal baselines are sampled per-truck from the spec's ranges (idle and
// delta-load drawn independently, cruise derived as idle+delta so the
// spec's delta-load range is respected exactly); bearing geometry is the
// variant's fixed default (see DefaultGeometry).
func NewEngineProfile(engineType string, rng *simnoise.Generator) EngineProfile {
	if engineType == "modern" {
		return EngineProfile{
			Name:               "modern",
			DisplacementRangeL: fleetconfig.Range{Lo: 12.7, Hi: 15.0},
			NMainBearings:      7,
			CruiseRPMRange:     fleetconfig.Range{Lo: 1400, Hi: 1550},
			BearingGeometry:    DefaultGeometry("modern"),
			ThermalBaselines:   sampleThermalBaselines("modern", rng),
			TurboDeltaBaseline: fleetconfig.TurboDeltaBaseline["modern"],
		}
	}
	return EngineProfile{
		Name:               "older",
		DisplacementRangeL: fleetconfig.Range{Lo: 10.4, Hi: 14.3},
		NMainBearings:      7,
		CruiseRPMRange:     fleetconfig.Range{Lo: 1500, Hi: 1700},
		BearingGeometry:    DefaultGeometry("older"),
		ThermalBaselines:   sampleThermalBaselines("older", rng),
		TurboDeltaBaseline: fleetconfig.TurboDeltaBaseline["older"],
	}
}

func sampleThermalBaselines(engineType string, rng *simnoise.Generator) map[string]ThermalBaseline {
	out := make(map[string]ThermalBaseline, len(fleetconfig.TempSensors))
	for sensor, spec := range fleetconfig.ThermalBaselineRanges[engineType] {
		idle := rng.Uniform(spec.Idle.Lo, spec.Idle.Hi)
		delta := rng.Uniform(spec.DeltaLoad.Lo, spec.DeltaLoad.Hi)
		out[sensor] = ThermalBaseline{
			IdleTemp:   idle,
			CruiseTemp: idle + delta,
			DeltaLoad:  delta,
			Tau:        rng.Uniform(spec.Tau.Lo, spec.Tau.Hi),
		}
	}
	return out
}
