package utils

import (
	"math"
	"time"

	"wardlab-service/internal/pkg/constvars"
)

// ShiftBucket classifies an hour-of-day into the day or night shift.
// The timestamp is used as stored; no timezone conversion happens here.
func ShiftBucket(t time.Time) string {
	hour := t.Hour()
	if hour >= constvars.ShiftDayStartHour && hour < constvars.ShiftDayEndHour {
		return constvars.ShiftDay
	}
	return constvars.ShiftNight
}

// DateKey renders the date-only bucket key used by trend analytics.
func DateKey(t time.Time) string {
	return t.Format(constvars.AnalyticsDateKeyFormat)
}

// RoundTwoDecimals rounds to 2 decimal places, half away from zero.
func RoundTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
