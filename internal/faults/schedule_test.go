package faults

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

func TestNewByIDCoversEveryClosedSetFaultID(t *testing.T) {
	rng := simnoise.New(1)
	for _, id := range fleetconfig.FaultIDs {
		fm := NewByID(id, 0, "modern", rng)
		if fm == nil {
			t.Fatalf("NewByID(%s) = nil", id)
		}
		if fm.ID() != id {
			t.Errorf("NewByID(%s).ID() = %s", id, fm.ID())
		}
	}
}

func TestNewByIDRejectsUnknownFaultID(t *testing.T) {
	rng := simnoise.New(1)
	if fm := NewByID("FM-99", 0, "modern", rng); fm != nil {
		t.Errorf("NewByID(unknown) = %v, want nil", fm)
	}
}

func TestAssignFaultsNeverAssignsTheSameFaultTypeTwiceToOneTruck(t *testing.T) {
	trucks, _ := fleet.CreateFleet(42)
	schedule := AssignFaults(trucks, 42)
	for truckID, list := range schedule {
		seen := map[string]bool{}
		for _, fm := range list {
			if seen[fm.ID()] {
				t.Fatalf("truck %d has duplicate fault type %s", truckID, fm.ID())
			}
			seen[fm.ID()] = true
		}
		if len(list) > 3 {
			t.Fatalf("truck %d assigned %d faults, max is 3", truckID, len(list))
		}
	}
}

func TestAssignFaultsApproximatesTheFaultCountDistribution(t *testing.T) {
	trucks, _ := fleet.CreateFleet(42)
	schedule := AssignFaults(trucks, 42)

	counts := map[int]int{}
	for _, list := range schedule {
		counts[len(list)]++
	}
	n := len(trucks)
	for faultCount, wantFrac := range fleetconfig.FaultDistribution {
		got := float64(counts[faultCount]) / float64(n)
		if diff := got - wantFrac; diff > 0.05 || diff < -0.05 {
			t.Errorf("fraction of trucks with %d faults = %v, want close to %v", faultCount, got, wantFrac)
		}
	}
}

func TestAssignFaultsIsDeterministic(t *testing.T) {
	trucks, _ := fleet.CreateFleet(42)
	a := AssignFaults(trucks, 42)
	b := AssignFaults(trucks, 42)
	for truckID, listA := range a {
		listB := b[truckID]
		if len(listA) != len(listB) {
			t.Fatalf("truck %d: fault count differs between runs", truckID)
		}
		for i := range listA {
			if listA[i].ID() != listB[i].ID() {
				t.Fatalf("truck %d fault %d: %s != %s", truckID, i, listA[i].ID(), listB[i].ID())
			}
		}
	}
}
