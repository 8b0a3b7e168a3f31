package storage

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSaveThenLoadThermalStateRoundTrips(t *testing.T) {
	dir := t.TempDir()
	temps := map[string]float64{"t1": 65.0, "t2": 80.0, "t3": 180.0, "t4": 120.0, "t5": 90.0, "t6": 35.0}

	if err := SaveThermalState(dir, 1, 3, 259200, temps); err != nil {
		t.Fatalf("SaveThermalState() error = %v", err)
	}

	got, found, err := LoadThermalState(dir, 1, 3, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadThermalState() error = %v", err)
	}
	if !found {
		t.Fatal("LoadThermalState() found = false, want true after a save")
	}
	for sensor, want := range temps {
		if got[sensor] != want {
			t.Errorf("%s = %v, want %v", sensor, got[sensor], want)
		}
	}
}

func TestLoadThermalStateMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	got, found, err := LoadThermalState(dir, 1, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadThermalState() on a missing file error = %v, want nil", err)
	}
	if found {
		t.Fatal("LoadThermalState() found = true for a missing file, want false")
	}
	if got != nil {
		t.Errorf("LoadThermalState() map = %v, want nil", got)
	}
}
