// Package faults implements the logistic-growth degradation model and the
// eight closed-set fault modes (FM-01..FM-08), each a pure function of
// (elapsed time, RPM, load) to a FaultEffect.
package faults

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// DegradationModel models one fault instance's severity progression: a
// logistic-growth base curve from 0 to 1 over totalHours, perturbed by a
// bounded mean-reverting noise path (see simnoise.MeanRevertingPath) scaled
// by sigma. This is deliberately not a Wiener process — an unbounded random
// walk would let noise dominate the trend over a multi-thousand-hour
// horizon and could push severity in either direction indefinitely.
type DegradationModel struct {
	sigma      float64
	totalHours float64
	noise      []float64
}

// NewDegradationModel precomputes the noise path at hourly resolution.
func NewDegradationModel(sigma float64, totalHours float64, seed int64) *DegradationModel {
	n := int(totalHours) + 2
	rng := simnoise.New(seed)
	return &DegradationModel{
		sigma:      sigma,
		totalHours: totalHours,
		noise:      rng.MeanRevertingPath(n, fleetconfig.DegradationNoiseDecay),
	}
}

// SeverityAt returns the fault severity in [0,1] at tHours since onset.
func (d *DegradationModel) SeverityAt(tHours float64) float64 {
	if tHours <= 0 {
		return 0.0
	}
	if tHours >= d.totalHours {
		return 1.0
	}

	k := fleetconfig.DegradationSteepness
	tFrac := tHours / d.totalHours
	base := (math.Exp(k*tFrac) - 1.0) / (math.Exp(k) - 1.0)

	idx := int(tHours)
	frac := tHours - float64(idx)
	var noiseVal float64
	if idx >= len(d.noise)-1 {
		noiseVal = d.noise[len(d.noise)-1]
	} else {
		noiseVal = d.noise[idx] + frac*(d.noise[idx+1]-d.noise[idx])
	}

	raw := base + d.sigma*noiseVal*base*0.5
	return simnoise.Clamp(raw, 0.0, 1.0)
}

// StageAt maps elapsed hours (since onset) and total life to a fault stage.
func (d *DegradationModel) StageAt(tHours, totalLifeHours float64) fleetconfig.FaultStage {
	if tHours <= 0 {
		return fleetconfig.FaultStageHealthy
	}
	lifePct := 1.0
	if totalLifeHours > 0 {
		lifePct = tHours / totalLifeHours
	}
	return fleetconfig.StageAtLifePct(lifePct)
}
