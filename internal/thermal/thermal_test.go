package thermal

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

func testProfile() fleet.EngineProfile {
	return fleet.NewEngineProfile("modern", simnoise.New(1))
}

func TestSynthesizeProducesExactlyThirtyNineFeatures(t *testing.T) {
	profile := testProfile()
	prev := DefaultIdleTemps(profile)
	rng := simnoise.New(1)

	features, _ := Synthesize(0.5, profile, 20.0, nil, prev, rng)
	if len(features) != 39 {
		t.Fatalf("len(features) = %d, want 39", len(features))
	}
}

func TestSynthesizeKeepsTemperaturesWithinPhysicalBounds(t *testing.T) {
	profile := testProfile()
	prev := DefaultIdleTemps(profile)
	rng := simnoise.New(2)

	_, updated := Synthesize(1.0, profile, 40.0, nil, prev, rng)
	for sensor, temp := range updated {
		bounds := fleetconfig.TempBounds[sensor]
		if temp < bounds.Lo || temp > bounds.Hi {
			t.Errorf("%s = %v, outside physical bounds [%v, %v]", sensor, temp, bounds.Lo, bounds.Hi)
		}
	}
}

func TestSynthesizeCarriesStateAcrossWindows(t *testing.T) {
	profile := testProfile()
	prev := DefaultIdleTemps(profile)
	rng := simnoise.New(3)

	_, afterWindow1 := Synthesize(0.8, profile, 25.0, nil, prev, rng)
	_, afterWindow2 := Synthesize(0.8, profile, 25.0, nil, afterWindow1, rng)

	// Under sustained load, the engine should keep warming toward the load
	// target rather than resetting to idle every window.
	if afterWindow2[fleetconfig.SensorT1] < afterWindow1[fleetconfig.SensorT1]-5 {
		t.Errorf("t1 dropped sharply across a sustained-load window boundary: %v -> %v",
			afterWindow1[fleetconfig.SensorT1], afterWindow2[fleetconfig.SensorT1])
	}
}

func TestSynthesizeAppliesThermalFaultOffsets(t *testing.T) {
	profile := testProfile()
	prev := DefaultIdleTemps(profile)

	healthy, _ := Synthesize(0.5, profile, 20.0, nil, prev, simnoise.New(5))
	withFault, _ := Synthesize(0.5, profile, 20.0, []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{}, Thermal: map[string]float64{"t1": 20.0}},
	}, prev, simnoise.New(5))

	if withFault["t1_mean"] <= healthy["t1_mean"] {
		t.Errorf("t1_mean with a +20C fault offset (%v) should exceed the healthy baseline (%v)",
			withFault["t1_mean"], healthy["t1_mean"])
	}
}

func TestSynthesizeClampsOffsetsToMaxThermalOffset(t *testing.T) {
	profile := testProfile()
	prev := DefaultIdleTemps(profile)

	withHugeFault, _ := Synthesize(0.5, profile, 20.0, []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{}, Thermal: map[string]float64{"t6": 10000.0}},
	}, prev, simnoise.New(6))

	bounds := fleetconfig.TempBounds[fleetconfig.SensorT6]
	if withHugeFault["t6_mean"] > bounds.Hi {
		t.Errorf("t6_mean = %v, exceeds physical bound %v despite the offset clamp", withHugeFault["t6_mean"], bounds.Hi)
	}
}
