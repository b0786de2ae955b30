package utils

import (
	"math"
	"time"
)

func SecondsBetween(t1, t2 time.Time) float64 {
	return t2.Sub(t1).Seconds()
}

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}
