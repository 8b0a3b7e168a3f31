package orchestrator

import "testing"

func TestBuildValidationFleetHasTenTrucksWithExpectedFaultCounts(t *testing.T) {
	trucks, schedule := BuildValidationFleet(42)
	if len(trucks) != 10 {
		t.Fatalf("len(trucks) = %d, want 10", len(trucks))
	}

	wantFaultCount := map[int]int{0: 0, 1: 0, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 2, 9: 2}
	for truckID, want := range wantFaultCount {
		if got := len(schedule[truckID]); got != want {
			t.Errorf("truck %d has %d faults, want %d", truckID, got, want)
		}
	}
}

func TestBuildValidationFleetAlternatesEngineType(t *testing.T) {
	trucks, _ := BuildValidationFleet(42)
	for i, tr := range trucks {
		want := "modern"
		if i%2 == 1 {
			want = "older"
		}
		if tr.EngineType != want {
			t.Errorf("truck %d engine type = %q, want %q", i, tr.EngineType, want)
		}
	}
}

func TestBuildValidationFleetIsDeterministic(t *testing.T) {
	a, scheduleA := BuildValidationFleet(7)
	b, scheduleB := BuildValidationFleet(7)
	for i := range a {
		if a[i].Seed != b[i].Seed {
			t.Fatalf("truck %d seed differs between runs", i)
		}
	}
	for truckID, listA := range scheduleA {
		listB := scheduleB[truckID]
		if len(listA) != len(listB) {
			t.Fatalf("truck %d fault count differs between runs", truckID)
		}
		for i := range listA {
			if listA[i].ID() != listB[i].ID() {
				t.Fatalf("truck %d fault %d id differs between runs", truckID, i)
			}
		}
	}
}
