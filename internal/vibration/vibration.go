// Package vibration synthesizes the 180 vibration features (3 sensors x 3
// axes x time/frequency-domain statistics) directly from the operating
// point and merged fault effects — no raw waveform is ever materialized.
package vibration

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

func applyEffect(baseVal float64, effects map[string]faults.VibrationEffect, key string) float64 {
	eff, ok := effects[key]
	if !ok {
		return baseVal
	}
	switch eff.Op {
	case faults.OpSet:
		return eff.Value
	case faults.OpMultiply:
		return baseVal * eff.Value
	case faults.OpAdd:
		return baseVal + eff.Value
	default:
		return baseVal
	}
}

func isShapeFeature(key string) bool {
	return contains(key, "kurtosis") || contains(key, "sk") || contains(key, "crest")
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && indexOf(s, sub) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// mergeEffects combines every active fault's vibration effects on the same
// key per the composition rule: multiply (energy-domain) multiplies
// together, add accumulates, and set (shape-domain: kurtosis/sk/crest)
// takes the max across faults rather than letting the last fault silently
// win.
func mergeEffects(list []faults.FaultEffect) map[string]faults.VibrationEffect {
	merged := map[string]faults.VibrationEffect{}
	for _, fe := range list {
		for key, eff := range fe.Vibration {
			existing, ok := merged[key]
			if !ok {
				merged[key] = eff
				continue
			}
			switch eff.Op {
			case faults.OpSet:
				if isShapeFeature(key) {
					if eff.Value > existing.Value {
						merged[key] = eff
					}
				} else {
					merged[key] = eff
				}
			case faults.OpMultiply:
				merged[key] = faults.VibrationEffect{Op: faults.OpMultiply, Value: existing.Value * eff.Value}
			case faults.OpAdd:
				merged[key] = faults.VibrationEffect{Op: faults.OpAdd, Value: existing.Value + eff.Value}
			}
		}
	}
	return merged
}

func synthesizeSensor(sensor string, load float64, merged map[string]faults.VibrationEffect, rng *simnoise.Generator) map[string]float64 {
	params := fleetconfig.HealthyVibration[sensor]
	rmsBase := rng.Uniform(params.RMSBase.Lo, params.RMSBase.Hi) * (0.7 + 0.3*load)

	bands := fleetconfig.BandsFor(sensor)
	nSubWindows := fleetconfig.WindowsPerAggACC12
	if sensor == fleetconfig.SensorACC3 {
		nSubWindows = fleetconfig.WindowsPerAggACC3
	}
	noise := fleetconfig.VibrationNoiseFraction

	features := map[string]float64{}

	for _, axis := range fleetconfig.Axes {
		rmsVal := applyEffect(rmsBase, merged, sensor+"_rms")
		rmsVal *= 1.0 + rng.Gaussian(0, 0.05)
		rmsVal = math.Max(rmsVal, 0.001)

		kurtosisBase := params.KurtosisBase + rng.Gaussian(0, 0.2)
		kurtosisVal := applyEffect(kurtosisBase, merged, sensor+"_kurtosis")
		kurtosisVal = math.Max(kurtosisVal, 2.0)

		crestFactor := rng.Uniform(params.CrestFactorBase.Lo, params.CrestFactorBase.Hi)
		crestFactor = applyEffect(crestFactor, merged, sensor+"_crest_factor")

		peakVal := rmsVal * crestFactor

		features[sensor+"_rms_"+axis+"_mean"] = rmsVal * (1 + rng.Gaussian(0, noise*0.3))
		features[sensor+"_rms_"+axis+"_std"] = rmsVal * math.Abs(rng.Gaussian(0.05, 0.02))
		features[sensor+"_peak_"+axis+"_mean"] = peakVal * (1 + rng.Gaussian(0, noise))
		features[sensor+"_crest_factor_"+axis+"_mean"] = crestFactor * (1 + rng.Gaussian(0, noise*0.5))
		features[sensor+"_kurtosis_"+axis+"_mean"] = kurtosisVal * (1 + rng.Gaussian(0, noise*0.3))
		features[sensor+"_kurtosis_"+axis+"_max"] = kurtosisVal * (1.0 + 0.15*math.Log(float64(nSubWindows))*rng.Uniform(0.5, 1.5))

		totalEnergy := rmsVal * rmsVal

		for _, band := range bands {
			bandCenter := (band.LoHz + band.HiHz) / 2.0
			baseFraction := 1.0 / (1.0 + bandCenter/1000.0)
			bandEnergy := totalEnergy * baseFraction

			bandKey := sensor + "_" + band.Name + "_energy"
			bandEnergy = applyEffect(bandEnergy, merged, bandKey)
			bandEnergy = math.Max(bandEnergy, 1e-8)

			bandwidth := band.HiHz - band.LoHz
			energyDensity := bandEnergy / bandwidth

			features[sensor+"_band_"+band.Name+"_energy_"+axis+"_mean"] = energyDensity * (1 + rng.Gaussian(0, noise))
			features[sensor+"_band_"+band.Name+"_energy_"+axis+"_std"] = energyDensity * math.Abs(rng.Gaussian(0.1, 0.03))

			peakFreq := rng.Uniform(band.LoHz+bandwidth*0.2, band.HiHz-bandwidth*0.2)
			shiftKey := sensor + "_" + band.Name + "_peak_shift"
			if _, ok := merged[shiftKey]; ok {
				peakFreq = band.LoHz + bandwidth*0.4
			}
			features[sensor+"_band_"+band.Name+"_peak_freq_"+axis+"_mean"] = peakFreq

			centroid := bandCenter + rng.Gaussian(0, bandwidth*0.05)
			features[sensor+"_band_"+band.Name+"_centroid_"+axis+"_mean"] = simnoise.Clamp(centroid, band.LoHz, band.HiHz)
		}
	}

	skBase := rng.Uniform(1.0, 5.0)
	skVal := applyEffect(skBase, merged, sensor+"_sk_max")
	features[sensor+"_sk_max_value"] = skVal * (1 + rng.Gaussian(0, noise))

	var skFreq float64
	if _, ok := merged[sensor+"_mid_high_peak_shift"]; ok {
		skFreq = rng.Uniform(2000, 10000)
	} else if _, ok := merged[sensor+"_broadband_energy"]; ok {
		skFreq = rng.Uniform(1000, 5000)
	} else {
		skFreq = rng.Uniform(500, 5000)
	}
	features[sensor+"_sk_max_freq"] = skFreq

	return features
}

// Synthesize produces all 180 vibration features for one 60-second window.
func Synthesize(load float64, effects []faults.FaultEffect, rng *simnoise.Generator) map[string]float64 {
	merged := mergeEffects(effects)
	all := make(map[string]float64, 180)
	for _, sensor := range fleetconfig.VibrationSensors {
		for k, v := range synthesizeSensor(sensor, load, merged, rng) {
			all[k] = v
		}
	}
	return all
}
