package core

import "math"

// Counter widths of the peripheral's timing counters. Edge-filter counters
// are 16 bit, the event window counter is 24 bit.
const (
	FilterTickLimit uint32 = 0xFFFF
	WindowTickLimit uint32 = 0xFFFFFF
)

// TicksFromSeconds converts a time in seconds to hardware clock ticks.
// clockPeriod is the duration of one tick in seconds and must be positive.
// The result is rounded to the nearest tick; limit is the maximum value the
// target counter can hold.
//
// Zero seconds always converts to zero ticks. A rounded result above limit
// returns ErrOutOfRange; the value is never saturated.
func TicksFromSeconds(seconds, clockPeriod float64, limit uint32) (uint32, error) {
	if math.IsNaN(seconds) || seconds < 0 {
		return 0, ErrInvalidParameter
	}
	if math.IsNaN(clockPeriod) || clockPeriod <= 0 {
		return 0, ErrInvalidParameter
	}
	if seconds == 0 {
		return 0, nil
	}
	ticks := math.Round(seconds / clockPeriod)
	if ticks > float64(limit) {
		return 0, ErrOutOfRange
	}
	return uint32(ticks), nil
}

// SecondsFromTicks is the inverse conversion, used when reporting resolved
// configuration back in engineering units.
func SecondsFromTicks(ticks uint32, clockPeriod float64) float64 {
	return float64(ticks) * clockPeriod
}
