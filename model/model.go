package model

import (
	"fmt"
	"time"
)

type Channel int

const (
	ChannelBreastfeeding Channel = 1
	ChannelFormula       Channel = 2
	ChannelExpressedMilk Channel = 3
	ChannelSolid         Channel = 4
)

func (c Channel) String() string {
	switch c {
	case ChannelBreastfeeding:
		return "breastfeeding"
	case ChannelFormula:
		return "formula"
	case ChannelExpressedMilk:
		return "expressed_milk"
	case ChannelSolid:
		return "solid"
	}
	return fmt.Sprintf("channel(%d)", int(c))
}

// HasVolume reports whether events on this channel carry a milliliter
// volume. Breastfeeding is tracked by duration only.
func (c Channel) HasVolume() bool {
	return c == ChannelFormula || c == ChannelExpressedMilk || c == ChannelSolid
}

// FeedingRecord is one logged feeding event. Records are immutable once
// handed to the engines.
type FeedingRecord struct {
	Time        time.Time
	Channel     Channel
	VolumeMl    *float64
	DurationSec *float64
}

func (r *FeedingRecord) Before(record FeedingRecord) bool {
	return r.Time.Before(record.Time)
}

// FeedingSeries is a subject-scoped snapshot of feeding records, ordered by
// time ascending; duplicate timestamps keep insertion order. The engines
// never mutate it.
type FeedingSeries struct {
	Records []FeedingRecord
}

func (s *FeedingSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Records) == 0
}

func (s *FeedingSeries) DebugString() string {
	res := fmt.Sprintf("recordCount: %+v", len(s.Records))
	return res
}

// Filter returns the records matching keep, preserving order. The result
// shares no backing storage with the series.
func (s *FeedingSeries) Filter(keep func(FeedingRecord) bool) []FeedingRecord {
	if s.IsEmpty() {
		return nil
	}
	res := make([]FeedingRecord, 0, len(s.Records))
	for _, record := range s.Records {
		if keep(record) {
			res = append(res, record)
		}
	}
	return res
}

type Metric int

const (
	MetricWeight            Metric = 1
	MetricHeight            Metric = 2
	MetricHeadCircumference Metric = 3
)

func (m Metric) String() string {
	switch m {
	case MetricWeight:
		return "weight"
	case MetricHeight:
		return "height"
	case MetricHeadCircumference:
		return "head_circumference"
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

type Sex int

const (
	SexMale   Sex = 1
	SexFemale Sex = 2
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	}
	return fmt.Sprintf("sex(%d)", int(s))
}

// MeasurementRecord is one anthropometric measurement: kg for weight,
// cm for height and head circumference.
type MeasurementRecord struct {
	Date    time.Time
	Metric  Metric
	Value   float64
	AgeDays int
	Sex     Sex
}
