package features

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/thermal"
	"github.com/fleetsynth/dieselgen/internal/vibration"
)

func sampleVibrationAndThermal() (map[string]float64, map[string]float64) {
	vib := vibration.Synthesize(0.5, nil, newTestRNG())
	prof := testEngineProfile()
	prev := thermal.DefaultIdleTemps(prof)
	th, _ := thermal.Synthesize(0.5, prof, 20.0, nil, prev, newTestRNG())
	return vib, th
}

func TestAssembleProducesExactly221Features(t *testing.T) {
	vib, th := sampleVibrationAndThermal()
	merged, err := Assemble(1500, 0.4, vib, th)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(merged) != NFeatures {
		t.Fatalf("len(merged) = %d, want %d", len(merged), NFeatures)
	}
}

func TestAssembleRejectsAMissingColumn(t *testing.T) {
	vib, th := sampleVibrationAndThermal()
	delete(th, "t1_mean")
	if _, err := Assemble(1500, 0.4, vib, th); err == nil {
		t.Fatal("Assemble() with a missing thermal column = nil error, want SchemaError")
	}
}

func TestAssembleRejectsAnExtraColumn(t *testing.T) {
	vib, th := sampleVibrationAndThermal()
	th["unexpected_extra_column"] = 1.0
	if _, err := Assemble(1500, 0.4, vib, th); err == nil {
		t.Fatal("Assemble() with an extra column = nil error, want SchemaError")
	}
}

func TestFeatureColumnsMatchesNFeatures(t *testing.T) {
	if got := len(FeatureColumns()); got != NFeatures {
		t.Fatalf("len(FeatureColumns()) = %d, want %d", got, NFeatures)
	}
}

func TestOutputColumnsIs230Wide(t *testing.T) {
	want := len(MetadataColumns) + NFeatures + len(LabelColumns)
	if got := len(OutputColumns()); got != want {
		t.Fatalf("len(OutputColumns()) = %d, want %d", got, want)
	}
}

func TestOrderedValuesFollowsFeatureColumnsOrder(t *testing.T) {
	vib, th := sampleVibrationAndThermal()
	merged, err := Assemble(1500, 0.4, vib, th)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	values := OrderedValues(merged)
	cols := FeatureColumns()
	if len(values) != len(cols) {
		t.Fatalf("len(values) = %d, len(cols) = %d", len(values), len(cols))
	}
	for i, c := range cols {
		if values[i] != merged[c] {
			t.Fatalf("OrderedValues()[%d] = %v, want merged[%q] = %v", i, values[i], c, merged[c])
		}
	}
}
