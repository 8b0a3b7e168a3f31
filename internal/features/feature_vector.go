// Package features assembles the per-window conditioning features and the
// canonical 221-column feature vector (2 conditioning + 180 vibration + 39
// thermal), enforcing the fixed column order and length every downstream
// consumer depends on.
package features

import (
	"fmt"

	"github.com/fleetsynth/dieselgen/internal/apperrors"
	"github.com/fleetsynth/dieselgen/internal/fleetconfig"
)

// NFeatures is the hard length invariant every assembled feature vector
// must satisfy: 2 conditioning + 180 vibration + 39 thermal.
const NFeatures = 221

const nVibration = 180
const nThermal = 39

// MetadataColumns and LabelColumns bracket the feature columns in the final
// 230-column output row (5 + 221 + 4): timestamp, truck_id, engine_type,
// day_index, episode_id, matching the row writer's column order exactly.
var MetadataColumns = []string{"timestamp", "truck_id", "engine_type", "day_index", "episode_id"}
var ConditioningColumns = []string{"rpm_est", "load_proxy"}
var LabelColumns = []string{"fault_mode", "fault_severity", "rul_hours", "path_A_label"}

func vibrationColumns() []string {
	cols := make([]string, 0, nVibration)
	for _, sensor := range fleetconfig.VibrationSensors {
		for _, axis := range fleetconfig.Axes {
			cols = append(cols,
				sensor+"_rms_"+axis+"_mean",
				sensor+"_rms_"+axis+"_std",
				sensor+"_peak_"+axis+"_mean",
				sensor+"_crest_factor_"+axis+"_mean",
				sensor+"_kurtosis_"+axis+"_mean",
				sensor+"_kurtosis_"+axis+"_max",
			)
			for _, band := range fleetconfig.BandsFor(sensor) {
				cols = append(cols,
					sensor+"_band_"+band.Name+"_energy_"+axis+"_mean",
					sensor+"_band_"+band.Name+"_energy_"+axis+"_std",
					sensor+"_band_"+band.Name+"_peak_freq_"+axis+"_mean",
					sensor+"_band_"+band.Name+"_centroid_"+axis+"_mean",
				)
			}
		}
		cols = append(cols, sensor+"_sk_max_value", sensor+"_sk_max_freq")
	}
	return cols
}

func thermalColumns() []string {
	cols := make([]string, 0, nThermal)
	for _, sensor := range fleetconfig.TempSensors {
		cols = append(cols,
			sensor+"_mean", sensor+"_std", sensor+"_max",
			sensor+"_min", sensor+"_range", sensor+"_slope",
		)
	}
	cols = append(cols, "t3_t4_delta", "t1_t5_delta", "t3_exceedance_duration")
	return cols
}

// FeatureColumns returns the canonical, fixed-order list of the 221 feature
// column names: conditioning, then vibration, then thermal.
func FeatureColumns() []string {
	cols := make([]string, 0, NFeatures)
	cols = append(cols, ConditioningColumns...)
	cols = append(cols, vibrationColumns()...)
	cols = append(cols, thermalColumns()...)
	return cols
}

// OutputColumns returns the full 230-column output schema: metadata,
// features, labels.
func OutputColumns() []string {
	cols := make([]string, 0, len(MetadataColumns)+NFeatures+len(LabelColumns))
	cols = append(cols, MetadataColumns...)
	cols = append(cols, FeatureColumns()...)
	cols = append(cols, LabelColumns...)
	return cols
}

// Assemble merges conditioning, vibration, and thermal feature maps into a
// single feature map and validates the 221-length invariant, returning a
// SchemaError if any canonical column is missing or any extra key snuck in.
func Assemble(rpmEst, loadProxy float64, vibrationFeatures, thermalFeatures map[string]float64) (map[string]float64, error) {
	merged := make(map[string]float64, NFeatures)
	merged["rpm_est"] = rpmEst
	merged["load_proxy"] = loadProxy
	for k, v := range vibrationFeatures {
		merged[k] = v
	}
	for k, v := range thermalFeatures {
		merged[k] = v
	}

	if len(merged) != NFeatures {
		return nil, apperrors.Schema("Assemble", fmt.Sprintf("expected %d features, assembled %d", NFeatures, len(merged)))
	}
	for _, col := range FeatureColumns() {
		if _, ok := merged[col]; !ok {
			return nil, apperrors.Schema("Assemble", "missing feature column: "+col)
		}
	}
	return merged, nil
}

// OrderedValues renders a feature map in canonical column order, for the
// row writer.
func OrderedValues(featureMap map[string]float64) []float64 {
	cols := FeatureColumns()
	out := make([]float64, len(cols))
	for i, c := range cols {
		out[i] = featureMap[c]
	}
	return out
}
