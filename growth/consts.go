package growth

const (
	// below this |L| the Box-Cox transform degenerates to the log form
	LMSEpsilon = 1e-7

	MinPercentile = 0.0
	MaxPercentile = 100.0
)

var (
	// Z-scores of the curves the charting layer draws behind the child's
	// datapoints: 3rd, 15th, 50th, 85th, 97th percentile.
	AllCurveZScores = []float64{-1.88079, -1.03643, 0, 1.03643, 1.88079}
)
