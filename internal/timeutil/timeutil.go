// Package timeutil provides helpers for time-related calculations.
package timeutil

import "math"

const secondsInAMinute = 60

// Round rounds a time value in seconds to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs splits a seconds value into whole minutes and
// leftover seconds. Negative inputs are treated as zero.
func SecsToMinsAndSecs(seconds float64) (mins, secs int) {
	total := int(math.Ceil(seconds))
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}
