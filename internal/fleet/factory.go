package fleet

import (
	"sort"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// CreateFleet builds the fleet of fleetconfig.FleetSize trucks with a
// stratified train/val/test split that preserves the modern/older ratio in
// every split. Truck seeds are `masterSeed + truckID`, fixed at fleet
// creation time and never recomputed downstream.
func CreateFleet(masterSeed int64) ([]Truck, Metadata) {
	splitRNG := simnoise.New(masterSeed)

	nModern := int(float64(fleetconfig.FleetSize) * fleetconfig.ModernFraction)
	nOlder := fleetconfig.FleetSize - nModern

	modernIDs := makeRange(1, nModern)
	olderIDs := makeRange(nModern+1, fleetconfig.FleetSize)
	splitRNG.ShuffleInts(modernIDs)
	splitRNG.ShuffleInts(olderIDs)

	total := fleetconfig.SplitRatios["train"] + fleetconfig.SplitRatios["val"] + fleetconfig.SplitRatios["test"]
	mTrain := nModern * fleetconfig.SplitRatios["train"] / total
	mVal := nModern * fleetconfig.SplitRatios["val"] / total
	mTest := nModern - mTrain - mVal

	oTrain := fleetconfig.SplitRatios["train"] - mTrain
	oVal := fleetconfig.SplitRatios["val"] - mVal
	oTest := fleetconfig.SplitRatios["test"] - mTest
	_ = oTest // derived for symmetry with the reference split; remainder goes to test below

	splitMap := make(map[int]string, fleetconfig.FleetSize)
	assignSplit(splitMap, modernIDs[:mTrain], "train")
	assignSplit(splitMap, modernIDs[mTrain:mTrain+mVal], "val")
	assignSplit(splitMap, modernIDs[mTrain+mVal:], "test")
	assignSplit(splitMap, olderIDs[:oTrain], "train")
	assignSplit(splitMap, olderIDs[oTrain:oTrain+oVal], "val")
	assignSplit(splitMap, olderIDs[oTrain+oVal:], "test")

	trucks := make([]Truck, 0, fleetconfig.FleetSize)
	for truckID := 1; truckID <= fleetconfig.FleetSize; truckID++ {
		engineType := "older"
		if truckID <= nModern {
			engineType = "modern"
		}
		seed := masterSeed + int64(truckID)
		truckRNG := simnoise.New(seed)
		profile := NewEngineProfile(engineType, truckRNG)

		trucks = append(trucks, Truck{
			TruckID:    truckID,
			EngineType: engineType,
			Profile:    profile,
			Seed:       seed,
			Split:      splitMap[truckID],
		})
	}

	meta := Metadata{
		TotalTrucks: fleetconfig.FleetSize,
		ModernCount: nModern,
		OlderCount:  nOlder,
		TrainIDs:    idsWithSplit(trucks, "train"),
		ValIDs:      idsWithSplit(trucks, "val"),
		TestIDs:     idsWithSplit(trucks, "test"),
		Seed:        masterSeed,
	}
	return trucks, meta
}

func makeRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func assignSplit(m map[int]string, ids []int, split string) {
	for _, id := range ids {
		m[id] = split
	}
}

func idsWithSplit(trucks []Truck, split string) []int {
	out := []int{}
	for _, t := range trucks {
		if t.Split == split {
			out = append(out, t.TruckID)
		}
	}
	sort.Ints(out)
	return out
}
