package forecast

import (
	"time"

	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// windowTail keeps at most windowSize of the most recent records strictly
// before now, preserving chronological order.
func windowTail(records []model.FeedingRecord, now time.Time, windowSize int) []model.FeedingRecord {
	cut := len(records)
	for cut > 0 && !records[cut-1].Time.Before(now) {
		cut--
	}
	records = records[:cut]

	if windowSize > 0 && len(records) > windowSize {
		records = records[len(records)-windowSize:]
	}
	return records
}

// intervals returns the consecutive inter-event gaps in seconds, in
// chronological order. Duplicate timestamps contribute a zero gap.
func intervals(records []model.FeedingRecord) []float64 {
	if len(records) < 2 {
		return nil
	}
	res := make([]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		res = append(res, utils.SecondsBetween(records[i-1].Time, records[i].Time))
	}
	return res
}

// linearWeights returns weights proportional to the window index plus one,
// normalized to sum 1, so recent records dominate the volume estimate.
func linearWeights(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = float64(i + 1)
	}
	sum := floats.Sum(res)
	for i := range res {
		res[i] /= sum
	}
	return res
}

// volumeEstimate computes the recency-weighted average volume over the
// window. Records without a volume (nursing sessions) keep their window
// position but don't contribute; nil when no record carries a volume.
func volumeEstimate(records []model.FeedingRecord) *float64 {
	rawWeights := linearWeights(len(records))

	values, weights := []float64{}, []float64{}
	for i, record := range records {
		if record.VolumeMl == nil {
			continue
		}
		values = append(values, *record.VolumeMl)
		weights = append(weights, rawWeights[i])
	}

	if len(values) == 0 {
		return nil
	}

	res := stat.Mean(values, weights)
	return &res
}
