// Package fleetconfig centralizes the physical constants, frequency bands,
// stage thresholds, and CLI-driven run configuration shared by every
// simulation package. Values here are transcribed from the spec's reference
// constants table — no component is allowed to hardcode a numeric range
// locally.
package fleetconfig

// OperatingMode indexes the 4-state duty-cycle Markov chain.
type OperatingMode int

const (
	ModeIdle OperatingMode = iota
	ModeCity
	ModeCruise
	ModeHeavy
)

func (m OperatingMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeCity:
		return "city"
	case ModeCruise:
		return "cruise"
	case ModeHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// NumOperatingModes is the fixed dimensionality of the Markov chain.
const NumOperatingModes = 4

// TransitionMatrix is the fixed 4x4 duty-cycle transition matrix, rows
// summing to 1.0: idle, city, cruise, heavy.
var TransitionMatrix = [NumOperatingModes][NumOperatingModes]float64{
	{0.70, 0.25, 0.04, 0.01}, // from idle
	{0.10, 0.60, 0.25, 0.05}, // from city
	{0.02, 0.15, 0.75, 0.08}, // from cruise
	{0.05, 0.20, 0.70, 0.05}, // from heavy
}

// Range is an inclusive [Lo, Hi] numeric range.
type Range struct{ Lo, Hi float64 }

// RPMRanges maps operating mode -> engine type -> RPM range.
var RPMRanges = map[OperatingMode]map[string]Range{
	ModeIdle:   {"modern": {600, 800}, "older": {600, 800}},
	ModeCity:   {"modern": {1000, 1400}, "older": {1000, 1400}},
	ModeCruise: {"modern": {1400, 1550}, "older": {1500, 1700}},
	ModeHeavy:  {"modern": {1600, 2100}, "older": {1600, 2100}},
}

// LoadRanges maps operating mode -> normalized load range.
var LoadRanges = map[OperatingMode]Range{
	ModeIdle:   {0.0, 0.1},
	ModeCity:   {0.2, 0.5},
	ModeCruise: {0.6, 0.9},
	ModeHeavy:  {0.9, 1.2},
}

// Vibration sensor identifiers and sampling configuration.
const (
	SensorACC1 = "acc1" // front main bearing, 50kHz, 3 axes
	SensorACC2 = "acc2" // rear main bearing, 50kHz, 3 axes
	SensorACC3 = "acc3" // turbocharger, 10kHz, 3 axes
)

var VibrationSensors = []string{SensorACC1, SensorACC2, SensorACC3}

var Axes = []string{"x", "y", "z"}

// ACC12Bands are the frequency bands tracked for ACC-1/ACC-2 (50kHz sensors).
var ACC12Bands = []BandDef{
	{"low", 0, 500},
	{"mid_low", 500, 2000},
	{"mid_high", 2000, 10000},
	{"high", 10000, 25000},
}

// ACC3Bands are the frequency bands tracked for ACC-3 (10kHz sensor).
var ACC3Bands = []BandDef{
	{"low", 0, 1000},
	{"broadband", 1000, 5000},
}

// BandDef names a contiguous frequency band in Hz.
type BandDef struct {
	Name  string
	LoHz  float64
	HiHz  float64
}

func BandsFor(sensor string) []BandDef {
	if sensor == SensorACC3 {
		return ACC3Bands
	}
	return ACC12Bands
}

// WindowsPerAggACC12/ACC3 are the number of FFT sub-windows the 60s
// aggregation period covers at each sensor's sample rate, used to model
// extreme-value statistics (max-kurtosis) over the aggregation period.
const (
	WindowsPerAggACC12 = 2929
	WindowsPerAggACC3  = 585
)

// VibrationNoiseFraction is the relative noise applied to synthesized
// vibration feature values.
const VibrationNoiseFraction = 0.10

// HealthyVibration holds the baseline (fault-free) vibration parameters per
// sensor.
type HealthyVibrationParams struct {
	RMSBase          Range
	KurtosisBase     float64
	CrestFactorBase  Range
}

var HealthyVibration = map[string]HealthyVibrationParams{
	SensorACC1: {RMSBase: Range{0.05, 0.15}, KurtosisBase: 3.0, CrestFactorBase: Range{2.5, 4.0}},
	SensorACC2: {RMSBase: Range{0.05, 0.15}, KurtosisBase: 3.0, CrestFactorBase: Range{2.5, 4.0}},
	SensorACC3: {RMSBase: Range{0.02, 0.08}, KurtosisBase: 3.0, CrestFactorBase: Range{2.5, 4.0}},
}

// Temperature sensors and their physically plausible bounds in °C.
const (
	SensorT1 = "t1" // engine coolant outlet
	SensorT2 = "t2" // engine oil
	SensorT3 = "t3" // EGT pre-turbo
	SensorT4 = "t4" // EGT post-turbo
	SensorT5 = "t5" // EGR cooler outlet
	SensorT6 = "t6" // intake manifold
)

var TempSensors = []string{SensorT1, SensorT2, SensorT3, SensorT4, SensorT5, SensorT6}

var TempBounds = map[string]Range{
	SensorT1: {0, 120},
	SensorT2: {0, 150},
	SensorT3: {0, 900},
	SensorT4: {0, 700},
	SensorT5: {0, 600},
	SensorT6: {0, 200},
}

// MaxThermalOffset caps the combined fault-induced offset applied to each
// sensor, preventing multi-fault stacking from producing non-physical
// temperatures.
var MaxThermalOffset = map[string]float64{
	SensorT1: 50.0,
	SensorT2: 50.0,
	SensorT3: 250.0,
	SensorT4: 200.0,
	SensorT5: 100.0,
	SensorT6: 30.0,
}

// ThermalRangeSpec is the sampling range for one sensor's baseline
// parameters for one engine type.
type ThermalRangeSpec struct {
	Idle      Range
	DeltaLoad Range
	Tau       Range
}

// ThermalBaselineRanges gives engine type -> sensor -> sampling ranges for
// idle temperature, idle-to-cruise delta, and lag time constant.
var ThermalBaselineRanges = map[string]map[string]ThermalRangeSpec{
	"modern": {
		SensorT1: {Idle: Range{60, 70}, DeltaLoad: Range{25, 35}, Tau: Range{60, 120}},
		SensorT2: {Idle: Range{70, 80}, DeltaLoad: Range{25, 40}, Tau: Range{90, 180}},
		SensorT3: {Idle: Range{150, 200}, DeltaLoad: Range{240, 350}, Tau: Range{15, 30}},
		SensorT4: {Idle: Range{100, 130}, DeltaLoad: Range{5, 30}, Tau: Range{20, 40}},
		SensorT5: {Idle: Range{80, 100}, DeltaLoad: Range{70, 180}, Tau: Range{30, 60}},
		SensorT6: {Idle: Range{30, 40}, DeltaLoad: Range{20, 50}, Tau: Range{10, 20}},
	},
	"older": {
		SensorT1: {Idle: Range{65, 75}, DeltaLoad: Range{25, 35}, Tau: Range{60, 120}},
		SensorT2: {Idle: Range{80, 90}, DeltaLoad: Range{25, 40}, Tau: Range{90, 180}},
		SensorT3: {Idle: Range{160, 210}, DeltaLoad: Range{240, 350}, Tau: Range{15, 30}},
		SensorT4: {Idle: Range{110, 140}, DeltaLoad: Range{5, 30}, Tau: Range{20, 40}},
		SensorT5: {Idle: Range{90, 110}, DeltaLoad: Range{70, 180}, Tau: Range{30, 60}},
		SensorT6: {Idle: Range{35, 45}, DeltaLoad: Range{20, 50}, Tau: Range{10, 20}},
	},
}

// TurboDeltaBaseline is the T3-T4 cruise delta range per engine type.
var TurboDeltaBaseline = map[string]Range{
	"modern": {200, 280},
	"older":  {150, 250},
}

// ThermalNoiseStd is the per-second sensor noise standard deviation in °C.
const ThermalNoiseStd = 1.0

// AmbientTRef is the reference ambient temperature the thermal model
// corrects around.
const AmbientTRef = 25.0

// Ambient temperature model constants.
const (
	AmbientTempMean        = 15.0
	AmbientTempSeasonalAmp = 15.0
	AmbientTempDailyAmp    = 5.0
)

// EGT / T3 thresholds.
const (
	EGTAlarmThresholdC       = 677.0
	T3ExceedanceThresholdC   = 677.0
)

// BearingGeometryDefaults holds the fixed per-engine-variant bearing
// geometry used to compute the five characteristic frequencies.
type BearingGeometryDefaults struct {
	NBalls          int
	BallDiaMM       float64
	PitchDiaMM      float64
	ContactAngleDeg float64
}

var BearingGeometryModern = BearingGeometryDefaults{NBalls: 12, BallDiaMM: 20.0, PitchDiaMM: 120.0, ContactAngleDeg: 0.0}
var BearingGeometryOlder = BearingGeometryDefaults{NBalls: 10, BallDiaMM: 18.0, PitchDiaMM: 110.0, ContactAngleDeg: 0.0}

// Bearing wear (FM-01) progression parameter ranges per engine type.
type BearingDegradationRanges struct {
	LambdaRange   Range
	SigmaRange    Range
	TStage2Hours  Range
	DT23Hours     Range
	DT34Hours     Range
}

var BearingDegradation = map[string]BearingDegradationRanges{
	"modern": {LambdaRange: Range{0.0001, 0.0003}, SigmaRange: Range{0.05, 0.15}, TStage2Hours: Range{2000, 4000}, DT23Hours: Range{200, 500}, DT34Hours: Range{50, 150}},
	"older":  {LambdaRange: Range{0.0002, 0.0005}, SigmaRange: Range{0.10, 0.20}, TStage2Hours: Range{1500, 3000}, DT23Hours: Range{150, 400}, DT34Hours: Range{30, 100}},
}

// BearingStageParams gives the target RMS/kurtosis/spectral-kurtosis ranges
// for each bearing-wear stage, keyed by life-percentage-through-fault.
type BearingStageParams struct {
	LifePct   Range
	RMS       Range
	Kurtosis  Range
	SK        Range
}

var BearingStages = map[FaultStage]BearingStageParams{
	FaultStageStage1: {LifePct: Range{0.0, 0.60}, RMS: Range{0.05, 0.15}, Kurtosis: Range{2.5, 3.5}, SK: Range{1.0, 5.0}},
	FaultStageStage2: {LifePct: Range{0.60, 0.75}, RMS: Range{0.15, 0.30}, Kurtosis: Range{4.0, 6.0}, SK: Range{5.0, 8.0}},
	FaultStageStage3: {LifePct: Range{0.75, 0.95}, RMS: Range{0.30, 1.50}, Kurtosis: Range{6.0, 10.0}, SK: Range{10.0, 20.0}},
	FaultStageStage4: {LifePct: Range{0.95, 1.00}, RMS: Range{1.50, 5.00}, Kurtosis: Range{3.0, 5.0}, SK: Range{5.0, 8.0}},
}

// ValveTrainParams (FM-03) progression ranges.
var ValveTrainEnergyMultMax = Range{3.0, 8.0}
var ValveTrainKurtosisIncMax = Range{1.0, 3.0}
var ValveTrainProgressionHours = Range{1000, 3000}

// Thermal fault progression ranges (FM-02, FM-04..FM-08).
var (
	FM02CoolingDeltaT1Max         = Range{10, 30}
	FM02CoolingProgressionHours   = Range{500, 1500}
	FM04OilDeltaT2Max             = Range{10, 30}
	FM04OilProgressionHours       = Range{500, 1500}
	FM05TurboDegFactorMax         = Range{0.2, 0.4}
	FM05TurboProgressionHours     = Range{500, 1000}
	FM06InjectorDeltaT3Max        = Range{30, 80}
	FM06InjectorDeltaTFull        = Range{50, 100}
	FM06InjectorProgressionHours  = Range{1000, 2000}
	FM07FoulingDeltaT5Max         = Range{20, 60}
	FM07FoulingProgressionHours   = Range{500, 1500}
	FM07LeakDeltaT1Spike          = Range{10, 30}
	FM07LeakDeltaT5Spike          = Range{30, 80}
	FM07LeakDurationSec           = Range{30, 120}
	FM07LeakProbabilityPerHour    = 0.002
	FM08DPFDeltaT3Max             = Range{100, 200}
	FM08DPFRegenIntervalHours     = Range{200, 400}
	FM08DPFRegenClearance         = 0.3
	FM08DPFProgressionHours       = Range{100, 500}
)

// Fleet-level constants.
const (
	FleetSize           = 200
	ModernFraction      = 0.80
	SimulationDays      = 183
	HoursPerDay         = 24
	WindowsPerDay       = 1440
	DutyCycleHours      = 15
)

// SplitRatios gives the relative size of the train/val/test split (sums to
// 200 across the default fleet size).
var SplitRatios = map[string]int{"train": 120, "val": 50, "test": 30}

// FaultDistribution is the fraction of the fleet assigned zero/one/two/three
// simultaneous faults.
var FaultDistribution = map[int]float64{
	0: 0.30, // healthy
	1: 0.40, // single fault
	2: 0.20, // double fault
	3: 0.10, // triple fault
}

// FaultIDs is the closed set of fault-mode identifiers, in round-robin
// assignment order.
var FaultIDs = []string{"FM-01", "FM-02", "FM-03", "FM-04", "FM-05", "FM-06", "FM-07", "FM-08"}

// DegradationSteepness is the logistic growth curve's steepness constant k
// shared by every fault mode's severity curve.
const DegradationSteepness = 5.0

// DegradationNoiseDecay is the AR(1) decay coefficient for the bounded
// mean-reverting degradation noise path.
const DegradationNoiseDecay = 0.95

// RULSentinel is the literal remaining-useful-life value reported for a
// truck with no active fault.
const RULSentinel = 99999.0

// ValidationTolerance is the ± fractional band validation range-checks
// expand a nominal range by before comparing an observed mean.
const ValidationTolerance = 0.20

// PathALabelBounds gives the required proportion range for each path_A_label
// class across a full generation run; a run whose observed proportions fall
// outside these bounds fails the post-run class-distribution check.
var PathALabelBounds = map[string]Range{
	"NORMAL":   {Lo: 0.93, Hi: 0.96},
	"IMMINENT": {Lo: 0.03, Hi: 0.05},
	"CRITICAL": {Lo: 0.005, Hi: 0.02},
}

// ConditioningT3Baseline gives the fixed (not per-truck-sampled) idle and
// cruise EGT reference points used to normalize the load_proxy conditioning
// feature, per engine type.
var ConditioningT3Baseline = map[string]Range{
	"modern": {Lo: 175.0, Hi: 400.0},
	"older":  {Lo: 185.0, Hi: 400.0},
}

// RPMEstNoiseFraction is the relative noise applied to the rpm_est
// conditioning feature.
const RPMEstNoiseFraction = 0.03

// Maintenance lifecycle engine (C9) parameters — no original_source
// analog; sampled/selected to match spec.md's detection, inspection, and
// repair-duration ranges.
var (
	DetectionProbStage2Range = Range{0.20, 0.30}
	DetectionProbStage3Range = Range{0.60, 0.80}
	DetectionProbStage4Fixed = 0.95

	InspectionDelayDaysStage2 = Range{7, 21}
	InspectionDelayDaysStage3 = Range{1, 3}
	InspectionDelayDaysStage4 = Range{0, 1}

	RepairDurationDaysStage2 = Range{1, 2}
	RepairDurationDaysStage3 = Range{2, 5}
	RepairDurationDaysStage4 = Range{5, 10}

	ImproveTauHoursRange = Range{200, 500}
)

// Inspection outcome probabilities per stage: {Repair, Monitor, FalsePositive}.
var OutcomeProbsByStage = map[FaultStage][3]float64{
	FaultStageStage2: {0.85, 0.10, 0.05},
	FaultStageStage3: {0.90, 0.08, 0.02},
	FaultStageStage4: {1.00, 0.00, 0.00},
}

// PostRepairReassignProb and PostRepairHealthyBufferHours govern §4.9.1.
const (
	PostRepairReassignProb      = 0.70
	PostRepairHealthyBufferHours = 720.0
)
