package growth

import (
	"context"
	"errors"

	"github.com/leona-app/analytics/common"
	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
	"go.uber.org/zap"
)

// ComputePercentiles evaluates a chronological slice of measurements in one
// call, the entry point the charting layer uses to plot a child against the
// reference curves. Measurements that fail with caller errors (non-positive
// value, age outside coverage) are logged and skipped so that one bad entry
// doesn't blank the whole chart; a corrupt table aborts the batch.
func ComputePercentiles(ctx context.Context, table *model.ReferenceTable,
	records []model.MeasurementRecord) ([]model.MeasurementPercentile, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("ComputePercentiles recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("recordCnt", len(records)))
		}
	}()

	res := make([]model.MeasurementPercentile, 0, len(records))

	for _, record := range records {
		result, err := ComputePercentile(ctx, table, record.Metric, record.Sex,
			record.AgeDays, record.Value)
		if err != nil {
			if errors.Is(err, common.ErrorCorruptReferenceData) {
				return nil, err
			}
			logger.Warn("skip measurement", zap.Error(err),
				zap.Stringer("metric", record.Metric), zap.Int("ageDays", record.AgeDays),
				zap.Float64("value", record.Value))
			continue
		}

		res = append(res, model.MeasurementPercentile{
			Record: record,
			Result: model.PercentileResult{
				ZScore:     utils.FormatFloat(result.ZScore, 3),
				Percentile: utils.FormatFloat(result.Percentile, 3),
			},
		})
	}

	return res, nil
}

// SampleStandardCurves samples the whole reference band the growth charts
// draw behind a child's datapoints, one curve per entry in AllCurveZScores,
// keyed by Z-score.
func SampleStandardCurves(ctx context.Context, table *model.ReferenceTable,
	metric model.Metric, sex model.Sex) (map[float64][]model.CurvePoint, error) {
	res := make(map[float64][]model.CurvePoint, len(AllCurveZScores))

	for _, z := range AllCurveZScores {
		points, err := SampleCurve(ctx, table, metric, sex, z)
		if err != nil {
			return nil, err
		}
		res[z] = points
	}

	return res, nil
}
