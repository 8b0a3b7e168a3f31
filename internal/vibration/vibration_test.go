package vibration

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

func TestSynthesizeProducesExactly180Features(t *testing.T) {
	features := Synthesize(0.5, nil, simnoise.New(1))
	if len(features) != 180 {
		t.Fatalf("len(features) = %d, want 180", len(features))
	}
}

func TestSynthesizeAllValuesAreFinite(t *testing.T) {
	features := Synthesize(0.8, nil, simnoise.New(2))
	for k, v := range features {
		if v != v { // NaN check without importing math
			t.Errorf("%s is NaN", k)
		}
	}
}

func TestMergeEffectsMultipliesEnergyAcrossFaults(t *testing.T) {
	effects := []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{"acc1_mid_high_energy": {Op: faults.OpMultiply, Value: 2.0}}},
		{Vibration: map[string]faults.VibrationEffect{"acc1_mid_high_energy": {Op: faults.OpMultiply, Value: 3.0}}},
	}
	merged := mergeEffects(effects)
	got := merged["acc1_mid_high_energy"]
	if got.Op != faults.OpMultiply || got.Value != 6.0 {
		t.Errorf("merged multiply effect = %+v, want Value=6.0", got)
	}
}

func TestMergeEffectsTakesMaxForShapeFeatures(t *testing.T) {
	effects := []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{"acc1_kurtosis": {Op: faults.OpSet, Value: 4.0}}},
		{Vibration: map[string]faults.VibrationEffect{"acc1_kurtosis": {Op: faults.OpSet, Value: 9.0}}},
	}
	merged := mergeEffects(effects)
	if got := merged["acc1_kurtosis"].Value; got != 9.0 {
		t.Errorf("merged shape-feature value = %v, want the max (9.0)", got)
	}
}

func TestMergeEffectsAccumulatesAddEffects(t *testing.T) {
	effects := []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{"acc1_offset": {Op: faults.OpAdd, Value: 1.0}}},
		{Vibration: map[string]faults.VibrationEffect{"acc1_offset": {Op: faults.OpAdd, Value: 2.5}}},
	}
	merged := mergeEffects(effects)
	if got := merged["acc1_offset"].Value; got != 3.5 {
		t.Errorf("merged add effect = %v, want 3.5", got)
	}
}

func TestSynthesizeIsDeterministicForTheSameSeed(t *testing.T) {
	a := Synthesize(0.6, nil, simnoise.New(10))
	b := Synthesize(0.6, nil, simnoise.New(10))
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("feature %s diverged: %v != %v", k, v, b[k])
		}
	}
}

func TestSynthesizeElevatesRMSUnderABearingFaultEffect(t *testing.T) {
	healthy := Synthesize(0.5, nil, simnoise.New(3))
	faulted := Synthesize(0.5, []faults.FaultEffect{
		{Vibration: map[string]faults.VibrationEffect{"acc1_rms": {Op: faults.OpSet, Value: 5.0}}},
	}, simnoise.New(3))

	if faulted["acc1_rms_x_mean"] <= healthy["acc1_rms_x_mean"] {
		t.Errorf("faulted acc1_rms_x_mean (%v) should exceed healthy (%v)",
			faulted["acc1_rms_x_mean"], healthy["acc1_rms_x_mean"])
	}
}
