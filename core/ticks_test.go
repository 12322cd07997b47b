package core

import (
	"errors"
	"math"
	"testing"
)

func TestTicksFromSeconds(t *testing.T) {
	testCases := []struct {
		name    string
		seconds float64
		period  float64
		limit   uint32
		want    uint32
		wantErr error
	}{
		{"zero seconds", 0, 1e-8, FilterTickLimit, 0, nil},
		{"half microsecond at 100MHz", 0.5e-6, 1e-8, FilterTickLimit, 50, nil},
		{"one microsecond at 100MHz", 1e-6, 1e-8, WindowTickLimit, 100, nil},
		{"rounds to nearest", 1.26e-8, 1e-8, FilterTickLimit, 1, nil},
		{"rounds up", 1.5e-8, 1e-8, FilterTickLimit, 2, nil},
		{"at limit", 65535e-8, 1e-8, FilterTickLimit, 65535, nil},
		{"above limit", 65536e-8, 1e-8, FilterTickLimit, 0, ErrOutOfRange},
		{"negative seconds", -1e-6, 1e-8, FilterTickLimit, 0, ErrInvalidParameter},
		{"nan seconds", math.NaN(), 1e-8, FilterTickLimit, 0, ErrInvalidParameter},
		{"zero period", 1e-6, 0, FilterTickLimit, 0, ErrInvalidParameter},
		{"negative period", 1e-6, -1e-8, FilterTickLimit, 0, ErrInvalidParameter},
	}

	for _, tc := range testCases {
		got, err := TicksFromSeconds(tc.seconds, tc.period, tc.limit)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected error %v, got %v", tc.name, tc.wantErr, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %d ticks, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTicksFromSecondsZeroIsExact(t *testing.T) {
	// Zero means "no filtering" or "no threshold" depending on the call
	// site; it must map to 0 for any clock period, without rounding.
	for _, period := range []float64{1e-9, 1e-8, 1e-7, 1.0 / 3.0} {
		got, err := TicksFromSeconds(0, period, WindowTickLimit)
		if err != nil {
			t.Fatalf("period %g: unexpected error %v", period, err)
		}
		if got != 0 {
			t.Errorf("period %g: expected 0 ticks, got %d", period, got)
		}
	}
}

func TestTicksFromSecondsMonotonic(t *testing.T) {
	const period = 1e-8
	prev := uint32(0)
	for s := 0.0; s <= 500e-8; s += 0.37e-8 {
		got, err := TicksFromSeconds(s, period, FilterTickLimit)
		if err != nil {
			t.Fatalf("seconds %g: unexpected error %v", s, err)
		}
		if got < prev {
			t.Fatalf("seconds %g: ticks decreased from %d to %d", s, prev, got)
		}
		prev = got
	}
}
