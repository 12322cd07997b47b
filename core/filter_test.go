package core

import (
	"errors"
	"testing"
)

func TestResolveFilter(t *testing.T) {
	const period = 1e-8

	testCases := []struct {
		name    string
		cfg     FilterConfig
		want    ResolvedFilter
		wantErr error
	}{
		{
			name: "no filter",
			cfg:  FilterConfig{Mode: FilterModeNone},
			want: ResolvedFilter{Mode: FilterModeNone},
		},
		{
			name: "delay debounce both edges",
			cfg: FilterConfig{
				Mode:                  FilterModeDelayDebounceBothEdge,
				RisingEdgeFilterTime:  0.5e-6,
				FallingEdgeFilterTime: 0.5e-6,
			},
			want: ResolvedFilter{
				Mode:             FilterModeDelayDebounceBothEdge,
				RisingEdgeTicks:  50,
				FallingEdgeTicks: 50,
			},
		},
		{
			name: "immediate debounce clears timer on glitch",
			cfg: FilterConfig{
				Mode:                 FilterModeImmediateDebounceRisingEdge,
				ClearTimerOnGlitch:   true,
				RisingEdgeFilterTime: 1e-6,
			},
			want: ResolvedFilter{
				Mode:               FilterModeImmediateDebounceRisingEdge,
				ClearTimerOnGlitch: true,
				RisingEdgeTicks:    100,
			},
		},
		{
			name: "prescaler",
			cfg:  FilterConfig{Mode: FilterModePrescaler, PrescalerFactor: 8},
			want: ResolvedFilter{Mode: FilterModePrescaler, Prescaler: 8},
		},
		{
			name:    "prescaler factor zero",
			cfg:     FilterConfig{Mode: FilterModePrescaler},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "negative falling time",
			cfg: FilterConfig{
				Mode:                  FilterModeImmediateDebounceFallingEdge,
				FallingEdgeFilterTime: -1e-6,
			},
			wantErr: ErrInvalidParameter,
		},
		{
			name: "filter time beyond counter width",
			cfg: FilterConfig{
				Mode:                 FilterModeDelayDebounceRisingEdge,
				RisingEdgeFilterTime: 1.0, // 1e8 ticks, far over 16 bit
			},
			wantErr: ErrOutOfRange,
		},
		{
			name:    "unknown mode",
			cfg:     FilterConfig{Mode: FilterModePrescaler + 1},
			wantErr: ErrInvalidParameter,
		},
	}

	for _, tc := range testCases {
		got, err := resolveFilter(tc.cfg, period)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected error %v, got %v", tc.name, tc.wantErr, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestResolveFilterPrescalerCheckedFirst(t *testing.T) {
	// A config broken in several ways reports the structural mistake
	// before the time range one.
	cfg := FilterConfig{
		Mode:                 FilterModePrescaler,
		PrescalerFactor:      0,
		RisingEdgeFilterTime: 1.0,
	}
	if _, err := resolveFilter(cfg, 1e-8); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
