package forecast

import (
	"context"
	"time"

	"github.com/leona-app/analytics/common"
	"github.com/leona-app/analytics/model"
	"github.com/leona-app/analytics/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// Config holds the forecast tuning heuristics. The defaults reproduce the
// product's shipped behavior; none of the constants is a physical
// constraint, so they stay adjustable.
type Config struct {
	// WindowSize is the maximum number of recent records analyzed per
	// forecast.
	WindowSize int `yaml:"window_size"`

	// SigmaMultiplier scales the interval standard deviation added to the
	// mean to form the overdue bound.
	SigmaMultiplier float64 `yaml:"sigma_multiplier"`

	// CVHighMax and CVMediumMax are the upper coefficient-of-variation
	// bounds of the High and Medium confidence classes.
	CVHighMax   float64 `yaml:"cv_high_max"`
	CVMediumMax float64 `yaml:"cv_medium_max"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowSize:      DefaultWindowSize,
		SigmaMultiplier: DefaultSigmaMultiplier,
		CVHighMax:       DefaultCVHighMax,
		CVMediumMax:     DefaultCVMediumMax,
	}
}

// ForecastNext predicts the next feeding on the channels selected by keep,
// from the most recent windowful of history strictly before now.
//
// It returns common.ErrorNotEnoughHistory when fewer than two qualifying
// records exist; callers render that as "not enough data yet", not as a
// failure. A nil cfg uses DefaultConfig, a nil keep matches every channel.
func ForecastNext(ctx context.Context, series *model.FeedingSeries,
	keep ChannelPredicate, now time.Time, cfg *Config) (*model.Forecast, error) {
	logger := utils.GetLogger(ctx)

	if cfg == nil {
		cfg = DefaultConfig()
	}
	if keep == nil {
		keep = func(model.Channel) bool { return true }
	}

	records := series.Filter(func(r model.FeedingRecord) bool { return keep(r.Channel) })
	records = windowTail(records, now, cfg.WindowSize)

	if len(records) < MinForecastRecords {
		logger.Info("not enough history, skip forecast", zap.Int("cnt", len(records)))
		return nil, common.ErrorNotEnoughHistory
	}

	gaps := intervals(records)
	meanInterval := stat.Mean(gaps, nil)
	stdDevInterval := stat.PopStdDev(gaps, nil)

	maxDelay := meanInterval + cfg.SigmaMultiplier*stdDevInterval
	if maxDelay < meanInterval {
		maxDelay = meanInterval
	}

	lastEventTime := records[len(records)-1].Time

	return &model.Forecast{
		PredictedTime:     lastEventTime.Add(time.Duration(meanInterval * float64(time.Second))),
		PredictedVolumeMl: volumeEstimate(records),
		Confidence:        classifyConfidence(meanInterval, stdDevInterval, cfg),
		AvgIntervalSec:    meanInterval,
		StdDevIntervalSec: stdDevInterval,
		MaxDelaySec:       maxDelay,
		Overdue:           now.Sub(lastEventTime).Seconds() > maxDelay,
	}, nil
}

// classifyConfidence maps relative interval dispersion to a confidence
// class: tight, regular gaps predict better than erratic ones, and the
// coefficient of variation scales with the typical gap length.
func classifyConfidence(meanInterval, stdDevInterval float64, cfg *Config) model.Confidence {
	if meanInterval < MinMeanIntervalSec {
		return model.ConfidenceLow
	}

	cv := stdDevInterval / meanInterval
	switch {
	case cv < cfg.CVHighMax:
		return model.ConfidenceHigh
	case cv < cfg.CVMediumMax:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
