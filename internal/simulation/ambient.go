package simulation

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// AmbientModel produces a seasonal + daily sinusoidal ambient temperature,
// with no stochastic component — ambient temperature is a deterministic
// function of (day, second-of-day) alone.
type AmbientModel struct {
	Mean         float64
	SeasonalAmp  float64
	DailyAmp     float64
}

// DefaultAmbientModel returns the fleet-wide ambient model parameters.
func DefaultAmbientModel() AmbientModel {
	return AmbientModel{
		Mean:        fleetconfig.AmbientTempMean,
		SeasonalAmp: fleetconfig.AmbientTempSeasonalAmp,
		DailyAmp:    fleetconfig.AmbientTempDailyAmp,
	}
}

// Temperature returns the ambient temperature in °C for a given day index
// and second-of-day. Seasonal cycle peaks around day 90 (summer); daily
// cycle peaks at 14:00.
func (a AmbientModel) Temperature(dayIndex, secondOfDay int) float64 {
	seasonal := a.SeasonalAmp * math.Cos(2*math.Pi*float64(dayIndex-90)/365.0)
	hourFraction := float64(secondOfDay) / 86400.0
	daily := a.DailyAmp * math.Cos(2*math.Pi*(hourFraction-14.0/24.0))
	return a.Mean + seasonal + daily
}
