package growth

import (
	"context"
	"math"

	"github.com/leona-app/analytics/common"
	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ComputePercentile converts one raw measurement into a standardized score
// and population percentile against the preloaded reference table.
//
// It fails with common.ErrorInvalidMeasurement when value is non-positive,
// common.ErrorOutOfDomain when ageDays falls outside the table coverage for
// (metric, sex), and common.ErrorCorruptReferenceData when the table itself
// is malformed. Ages outside the domain are never extrapolated.
func ComputePercentile(ctx context.Context, table *model.ReferenceTable,
	metric model.Metric, sex model.Sex, ageDays int, value float64) (*model.PercentileResult, error) {
	logger := utils.GetLogger(ctx)

	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, common.ErrorInvalidMeasurement
	}
	if ageDays < 0 {
		return nil, common.ErrorOutOfDomain
	}

	rows, ok := table.Rows(metric, sex)
	if !ok {
		logger.Error("reference series missing",
			zap.Stringer("metric", metric), zap.Stringer("sex", sex))
		return nil, common.ErrorCorruptReferenceData
	}

	r0, r1, ok := locateRows(rows, ageDays)
	if !ok {
		return nil, common.ErrorOutOfDomain
	}
	if rowMalformed(r0) || rowMalformed(r1) {
		logger.Error("malformed reference row",
			zap.Stringer("metric", metric), zap.Stringer("sex", sex),
			zap.Int("ageDays", ageDays))
		return nil, common.ErrorCorruptReferenceData
	}

	row := interpolateRow(r0, r1, ageDays)
	z := zScore(row, value)

	percentile := stdNormal.CDF(z) * 100
	percentile = math.Min(math.Max(percentile, MinPercentile), MaxPercentile)

	return &model.PercentileResult{
		ZScore:     z,
		Percentile: percentile,
	}, nil
}

// SampleCurve evaluates the reference curve at the given Z-score for every
// table age, the series the charting layer draws as a percentile band.
func SampleCurve(ctx context.Context, table *model.ReferenceTable,
	metric model.Metric, sex model.Sex, z float64) ([]model.CurvePoint, error) {
	logger := utils.GetLogger(ctx)

	rows, ok := table.Rows(metric, sex)
	if !ok {
		logger.Error("reference series missing",
			zap.Stringer("metric", metric), zap.Stringer("sex", sex))
		return nil, common.ErrorCorruptReferenceData
	}

	res := make([]model.CurvePoint, 0, len(rows))
	for _, row := range rows {
		if rowMalformed(row) {
			logger.Error("malformed reference row",
				zap.Stringer("metric", metric), zap.Stringer("sex", sex),
				zap.Int("ageDays", row.AgeDays))
			return nil, common.ErrorCorruptReferenceData
		}
		res = append(res, model.CurvePoint{
			AgeDays: row.AgeDays,
			Value:   utils.FormatFloat(valueAtZ(row, z), 3),
		})
	}
	return res, nil
}
