package forecast

const (
	// at least two events are required to derive one interval
	MinForecastRecords = 2

	DefaultWindowSize      = 10
	DefaultSigmaMultiplier = 2.0

	// coefficient-of-variation bounds for the confidence classes
	DefaultCVHighMax   = 0.15
	DefaultCVMediumMax = 0.35

	// below this mean interval cv is numerically meaningless
	MinMeanIntervalSec = 1e-9
)
