package features

import (
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// Conditioning computes the two conditioning features carried in every
// feature vector: a noisy RPM estimate (as a model consuming this dataset
// would see from an ECU, not the clean simulated RPM) and a load proxy
// derived from T3 thermal response rather than the true load signal.
func Conditioning(rpm, t3Mean float64, engineType string, rng *simnoise.Generator) (rpmEst, loadProxy float64) {
	rpmEst = rpm + rng.Gaussian(0, rpm*fleetconfig.RPMEstNoiseFraction)

	baseline := fleetconfig.ConditioningT3Baseline[engineType]
	denom := baseline.Hi - baseline.Lo
	if denom == 0 {
		return rpmEst, 0
	}
	loadProxy = (t3Mean - baseline.Lo) / denom
	return rpmEst, loadProxy
}
