package features

import (
	"testing"

	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

func newTestRNG() *simnoise.Generator { return simnoise.New(1) }

func testEngineProfile() fleet.EngineProfile {
	return fleet.NewEngineProfile("modern", simnoise.New(1))
}

func TestConditioningRPMEstIsCloseToTrueRPM(t *testing.T) {
	rng := simnoise.New(1)
	rpmEst, _ := Conditioning(1500, 250, "modern", rng)
	diff := rpmEst - 1500
	if diff > 1500*0.2 || diff < -1500*0.2 {
		t.Errorf("rpm_est = %v, strayed too far from true rpm 1500", rpmEst)
	}
}

func TestConditioningLoadProxyTracksT3Baseline(t *testing.T) {
	rng := simnoise.New(1)
	baseline := fleetconfig.ConditioningT3Baseline["modern"]

	_, atLo := Conditioning(1500, baseline.Lo, "modern", rng)
	if atLo < -0.01 || atLo > 0.01 {
		t.Errorf("load_proxy at baseline.Lo = %v, want ~0", atLo)
	}

	_, atHi := Conditioning(1500, baseline.Hi, "modern", rng)
	if atHi < 0.99 || atHi > 1.01 {
		t.Errorf("load_proxy at baseline.Hi = %v, want ~1", atHi)
	}
}
