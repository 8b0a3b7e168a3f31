package fleet

import (
	"math"

	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// ShaftFrequencyHz converts RPM to shaft rotational frequency in Hz.
func ShaftFrequencyHz(rpm float64) float64 {
	return rpm / 60.0
}

func ratioCos(bg BearingGeometry) float64 {
	return (bg.BallDiaMM / bg.PitchDiaMM) * math.Cos(bg.ContactAngleDeg*math.Pi/180.0)
}

// BPFO is the Ball Pass Frequency Outer race (Hz).
func BPFO(bg BearingGeometry, rpm float64) float64 {
	fs := ShaftFrequencyHz(rpm)
	return (float64(bg.NBalls) / 2.0) * fs * (1.0 - ratioCos(bg))
}

// BPFI is the Ball Pass Frequency Inner race (Hz).
func BPFI(bg BearingGeometry, rpm float64) float64 {
	fs := ShaftFrequencyHz(rpm)
	return (float64(bg.NBalls) / 2.0) * fs * (1.0 + ratioCos(bg))
}

// BSF is the Ball Spin Frequency (Hz).
func BSF(bg BearingGeometry, rpm float64) float64 {
	fs := ShaftFrequencyHz(rpm)
	rc := ratioCos(bg)
	return (bg.PitchDiaMM / (2.0 * bg.BallDiaMM)) * fs * (1.0 - rc*rc)
}

// FTF is the Fundamental Train (cage) Frequency (Hz).
func FTF(bg BearingGeometry, rpm float64) float64 {
	fs := ShaftFrequencyHz(rpm)
	return (fs / 2.0) * (1.0 - ratioCos(bg))
}

// CharacteristicFrequencies returns the five characteristic bearing
// frequencies (shaft, BPFO, BPFI, BSF, FTF) at the given RPM.
type CharacteristicFrequencies struct {
	ShaftHz float64
	BPFOHz  float64
	BPFIHz  float64
	BSFHz   float64
	FTFHz   float64
}

func Characteristics(bg BearingGeometry, rpm float64) CharacteristicFrequencies {
	return CharacteristicFrequencies{
		ShaftHz: ShaftFrequencyHz(rpm),
		BPFOHz:  BPFO(bg, rpm),
		BPFIHz:  BPFI(bg, rpm),
		BSFHz:   BSF(bg, rpm),
		FTFHz:   FTF(bg, rpm),
	}
}

// DefaultGeometry returns the fixed per-engine-variant bearing geometry.
// The geometry is a deterministic property of the engine variant (same
// bearing part number across all trucks of that variant), not an
// independently-sampled per-truck quantity — see DESIGN.md OQ-1.
func DefaultGeometry(engineType string) BearingGeometry {
	d := fleetconfig.BearingGeometryOlder
	if engineType == "modern" {
		d = fleetconfig.BearingGeometryModern
	}
	return BearingGeometry{
		NBalls:          d.NBalls,
		BallDiaMM:       d.BallDiaMM,
		PitchDiaMM:      d.PitchDiaMM,
		ContactAngleDeg: d.ContactAngleDeg,
	}
}
