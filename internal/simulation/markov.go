// Package simulation generates the per-window duty-cycle (Markov chain),
// RPM/load, and ambient-temperature sequences that drive the rest of the
// feature pipeline.
package simulation

import (
	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
	"github.com/fleetsynth/dieselgen/internal/simnoise"
)

// ValidateTransitionMatrix checks that fleetconfig.TransitionMatrix is a
// well-formed stochastic matrix, failing fast (ConfigError) if the shared
// constant has been edited into something invalid.
func ValidateTransitionMatrix() error {
	for i, row := range fleetconfig.TransitionMatrix {
		sum := 0.0
		for _, p := range row {
			if p < 0 {
				return apperrors.Config("ValidateTransitionMatrix", "negative transition probability")
			}
			sum += p
		}
		if sum < 0.999 || sum > 1.001 {
			return apperrors.Config("ValidateTransitionMatrix", "transition matrix row does not sum to 1.0")
		}
		_ = i
	}
	return nil
}

// SimulateDay generates the sequence of operating modes for one truck-day
// (fleetconfig.WindowsPerDay samples at 60-second resolution) by walking
// the fixed transition matrix starting from initialState.
func SimulateDay(rng *simnoise.Generator, initialState fleetconfig.OperatingMode) []fleetconfig.OperatingMode {
	states := make([]fleetconfig.OperatingMode, fleetconfig.WindowsPerDay)
	state := initialState
	for i := 0; i < fleetconfig.WindowsPerDay; i++ {
		states[i] = state
		row := fleetconfig.TransitionMatrix[state]
		next := rng.SelectWeighted(row[:])
		state = fleetconfig.OperatingMode(next)
	}
	return states
}
