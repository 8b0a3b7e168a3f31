package simulation

import (
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// GenerateRPMLoad turns a sequence of operating modes into smoothed RPM and
// load arrays. Each window's target is a truncated-normal draw within the
// mode's range; targets are then passed through first-order exponential
// smoothing (alpha=1/5, an effective 5-minute time constant) so consecutive
// windows don't jump discontinuously at mode transitions.
func GenerateRPMLoad(modes []fleetconfig.OperatingMode, engineType string, rng *simnoise.Generator) (rpm, load []float64) {
	n := len(modes)
	rpm = make([]float64, n)
	load = make([]float64, n)

	for i, mode := range modes {
		rpmRange := fleetconfig.RPMRanges[mode][engineType]
		loadRange := fleetconfig.LoadRanges[mode]
		rpm[i] = rng.TruncatedNormal(rpmRange.Lo, rpmRange.Hi)
		load[i] = rng.TruncatedNormal(loadRange.Lo, loadRange.Hi)
	}

	const alpha = 1.0 / 5.0
	for i := 1; i < n; i++ {
		rpm[i] = rpm[i-1] + alpha*(rpm[i]-rpm[i-1])
		load[i] = load[i-1] + alpha*(load[i]-load[i-1])
	}
	return rpm, load
}
