package util

import (
	"math"
	"time"
)

// Round rounds to 2 decimals.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

// BytesToMB converts a value in bytes to megabytes, rounded to 2 decimals.
func BytesToMB[T ~int | ~int64 | ~float64](bytes T) float64 {
	return Round(float64(bytes) / 1024.0 / 1024.0)
}

// Percent converts a ratio in [0,1] to a rounded percentage.
func Percent(ratio float64) float64 {
	return Round(ratio * 100)
}

// DurationOrDash formats d truncated to seconds, or "-" when d is nil.
func DurationOrDash(d *time.Duration) string {
	if d == nil {
		return "-"
	}
	return d.Truncate(time.Second).String()
}
