package model

// LMSRow holds the Box-Cox parameters of the reference distribution at one
// age: skewness (L), median (M), coefficient of variation (S).
type LMSRow struct {
	AgeDays int     `json:"age_days" yaml:"age_days"`
	L       float64 `json:"l" yaml:"l"`
	M       float64 `json:"m" yaml:"m"`
	S       float64 `json:"s" yaml:"s"`
}

type TableKey struct {
	Metric Metric
	Sex    Sex
}

// ReferenceTable maps (metric, sex) to LMS rows sorted strictly increasing
// by AgeDays. Loaded once at process start and read-only afterwards.
type ReferenceTable struct {
	Series map[TableKey][]LMSRow
}

func (t *ReferenceTable) Rows(metric Metric, sex Sex) ([]LMSRow, bool) {
	if t == nil || t.Series == nil {
		return nil, false
	}
	rows, ok := t.Series[TableKey{Metric: metric, Sex: sex}]
	if !ok || len(rows) == 0 {
		return nil, false
	}
	return rows, true
}

func (t *ReferenceTable) IsEmpty() bool {
	if t == nil {
		return true
	}
	return len(t.Series) == 0
}

type PercentileResult struct {
	ZScore     float64 `json:"z,omitempty"`
	Percentile float64 `json:"p,omitempty"`
}

// MeasurementPercentile pairs one measurement with its standardized result,
// the shape the charting layer plots.
type MeasurementPercentile struct {
	Record MeasurementRecord
	Result PercentileResult
}

// CurvePoint is one sample of a reference percentile curve: the measurement
// value at AgeDays that sits exactly at the curve's Z-score.
type CurvePoint struct {
	AgeDays int     `json:"age_days"`
	Value   float64 `json:"v"`
}
