package forecast

import (
	"context"
	"sort"
	"time"

	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
)

type dayAccumulator struct {
	summary   model.DailySummary
	volumeCnt int
}

// SummarizeDays aggregates a feeding series into per-day totals for the
// statistics dashboard, ordered by day ascending. Days without records are
// omitted; the volume mean covers only the records that carried a volume.
func SummarizeDays(ctx context.Context, series *model.FeedingSeries) []model.DailySummary {
	if series.IsEmpty() {
		return nil
	}

	byDay := map[time.Time]*dayAccumulator{}

	for _, record := range series.Records {
		day := utils.DayOf(record.Time)
		acc, ok := byDay[day]
		if !ok {
			acc = &dayAccumulator{summary: model.DailySummary{Day: day}}
			byDay[day] = acc
		}

		acc.summary.FeedCount++
		if record.VolumeMl != nil {
			acc.summary.TotalVolumeMl += *record.VolumeMl
			acc.volumeCnt++
		}
		if record.Channel == model.ChannelBreastfeeding && record.DurationSec != nil {
			acc.summary.BreastfeedDuration += *record.DurationSec
		}
	}

	res := make([]model.DailySummary, 0, len(byDay))
	for _, acc := range byDay {
		if acc.volumeCnt > 0 {
			acc.summary.MeanVolumeMl = acc.summary.TotalVolumeMl / float64(acc.volumeCnt)
		}
		res = append(res, acc.summary)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Day.Before(res[j].Day) })
	return res
}
