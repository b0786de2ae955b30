package model

import (
	"fmt"
	"time"
)

type Confidence int

const (
	ConfidenceLow    Confidence = 1
	ConfidenceMedium Confidence = 2
	ConfidenceHigh   Confidence = 3
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	}
	return fmt.Sprintf("confidence(%d)", int(c))
}

// Forecast is one next-feeding prediction. PredictedVolumeMl is nil when no
// record in the window carried a volume (pure breastfeeding history).
type Forecast struct {
	PredictedTime     time.Time
	PredictedVolumeMl *float64
	Confidence        Confidence
	AvgIntervalSec    float64
	StdDevIntervalSec float64
	MaxDelaySec       float64
	Overdue           bool
}

func (f *Forecast) DebugString() string {
	res := fmt.Sprintf("predictedTime: %v, confidence: %v, avgInterval: %vs, maxDelay: %vs, overdue: %v",
		f.PredictedTime, f.Confidence, f.AvgIntervalSec, f.MaxDelaySec, f.Overdue)
	return res
}

// CombinedForecast is the "next feeding regardless of type" result.
// WithoutBreastfeeding re-runs the same pipeline over the volume-carrying
// channels only; it is nil when those channels alone lack enough history.
type CombinedForecast struct {
	AllMilk              *Forecast
	WithoutBreastfeeding *Forecast
}

// DailySummary aggregates one calendar day of feedings for the statistics
// dashboard.
type DailySummary struct {
	Day                time.Time `json:"day"`
	FeedCount          int       `json:"feed_count"`
	TotalVolumeMl      float64   `json:"total_volume_ml"`
	MeanVolumeMl       float64   `json:"mean_volume_ml,omitempty"`
	BreastfeedDuration float64   `json:"breastfeed_duration_sec,omitempty"`
}
