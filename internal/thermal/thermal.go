// Package thermal simulates the six engine temperature sensors with a
// first-order lag model at 1-second resolution inside each 60-second
// feature window, persisting end-of-window state across windows and days.
package thermal

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/faults"
	"github.com/fleetsynth/dieselgen/internal/fleet"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

const secondsPerWindow = 60

// DefaultIdleTemps returns each sensor's sampled idle temperature from the
// truck's engine profile — the fallback used on day 0 or whenever a thermal
// state sidecar is missing.
func DefaultIdleTemps(profile fleet.EngineProfile) map[string]float64 {
	out := make(map[string]float64, len(fleetconfig.TempSensors))
	for _, sensor := range fleetconfig.TempSensors {
		baseline := profile.ThermalBaselines[sensor]
		out[sensor] = baseline.IdleTemp
	}
	return out
}

func targetTemperature(baseline fleet.ThermalBaseline, load, ambientTemp float64) float64 {
	target := baseline.IdleTemp + baseline.DeltaLoad*load
	target += 0.5 * (ambientTemp - fleetconfig.AmbientTRef)
	return target
}

// Synthesize computes the 39 thermal features for one 60-second window and
// returns the end-of-window temperatures for the next window's state.
func Synthesize(
	load float64,
	profile fleet.EngineProfile,
	ambientTemp float64,
	effects []faults.FaultEffect,
	prevTemps map[string]float64,
	rng *simnoise.Generator,
) (map[string]float64, map[string]float64) {
	offsets := map[string]float64{}
	turboFactor := 0.0

	for _, fe := range effects {
		for key, value := range fe.Thermal {
			if key == "t4_turbo_factor" {
				if value > turboFactor {
					turboFactor = value
				}
				continue
			}
			offsets[key] += value
		}
	}
	for key, v := range offsets {
		limit := fleetconfig.MaxThermalOffset[key]
		if limit == 0 {
			limit = 100.0
		}
		offsets[key] = simnoise.Clamp(v, -limit, limit)
	}

	traces := make(map[string][secondsPerWindow]float64, len(fleetconfig.TempSensors))

	for _, sensor := range fleetconfig.TempSensors {
		baseline := profile.ThermalBaselines[sensor]
		tau := baseline.Tau
		target := targetTemperature(baseline, load, ambientTemp)
		target += offsets[sensor]

		current, ok := prevTemps[sensor]
		if !ok {
			current = baseline.IdleTemp
		}

		var trace [secondsPerWindow]float64
		for s := 0; s < secondsPerWindow; s++ {
			if tau > 0 {
				current += (target - current) * (1.0 / tau)
			} else {
				current = target
			}
			current += rng.Gaussian(0, fleetconfig.ThermalNoiseStd)
			trace[s] = current
		}
		bounds := fleetconfig.TempBounds[sensor]
		for s := range trace {
			trace[s] = simnoise.Clamp(trace[s], bounds.Lo, bounds.Hi)
		}
		traces[sensor] = trace
	}

	if turboFactor > 0 {
		t3, okT3 := traces[fleetconfig.SensorT3]
		t4, okT4 := traces[fleetconfig.SensorT4]
		if okT3 && okT4 {
			t3Mean := mean(t3)
			t4Mean := mean(t4)
			baselineDelta := t3Mean - t4Mean
			if baselineDelta > 0 {
				reduction := baselineDelta * turboFactor
				var shifted [secondsPerWindow]float64
				for i, v := range t4 {
					shifted[i] = v + reduction
				}
				traces[fleetconfig.SensorT4] = shifted
			}
		}
	}

	features := make(map[string]float64, 39)
	for _, sensor := range fleetconfig.TempSensors {
		trace := traces[sensor]
		m, sd, mx, mn, slope := statsOf(trace)
		features[sensor+"_mean"] = m
		features[sensor+"_std"] = sd
		features[sensor+"_max"] = mx
		features[sensor+"_min"] = mn
		features[sensor+"_range"] = mx - mn
		features[sensor+"_slope"] = slope
	}
	features["t3_t4_delta"] = features["t3_mean"] - features["t4_mean"]
	features["t1_t5_delta"] = features["t1_mean"] - features["t5_mean"]

	t3Trace := traces[fleetconfig.SensorT3]
	exceed := 0.0
	for _, v := range t3Trace {
		if v > fleetconfig.T3ExceedanceThresholdC {
			exceed++
		}
	}
	features["t3_exceedance_duration"] = exceed

	updated := make(map[string]float64, len(fleetconfig.TempSensors))
	for _, sensor := range fleetconfig.TempSensors {
		trace := traces[sensor]
		updated[sensor] = trace[len(trace)-1]
	}

	return features, updated
}

func mean(trace [secondsPerWindow]float64) float64 {
	sum := 0.0
	for _, v := range trace {
		sum += v
	}
	return sum / float64(len(trace))
}

func statsOf(trace [secondsPerWindow]float64) (m, sd, mx, mn, slope float64) {
	m = mean(trace)
	mx, mn = trace[0], trace[0]
	sqSum := 0.0
	for _, v := range trace {
		if v > mx {
			mx = v
		}
		if v < mn {
			mn = v
		}
		d := v - m
		sqSum += d * d
	}
	sd = math.Sqrt(sqSum / float64(len(trace)))
	slope = linregSlope(trace)
	return
}

// linregSlope fits a least-squares line to (index, value) pairs and returns
// its slope, matching numpy.polyfit degree-1 behavior for evenly-spaced x.
func linregSlope(trace [secondsPerWindow]float64) float64 {
	n := float64(len(trace))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range trace {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
