package core

// FilterMode selects the debounce behavior of one input filter cell.
type FilterMode uint8

const (
	// FilterModeNone passes the input through unfiltered.
	FilterModeNone FilterMode = iota

	// Immediate debounce: an edge is accepted immediately, then further
	// edges of the same polarity are ignored for the filter time.
	FilterModeImmediateDebounceRisingEdge
	FilterModeImmediateDebounceFallingEdge
	FilterModeImmediateDebounceBothEdge

	// Delayed debounce: an edge is accepted only after the input has been
	// stable for the filter time.
	FilterModeDelayDebounceRisingEdge
	FilterModeDelayDebounceFallingEdge
	FilterModeDelayDebounceBothEdge

	// FilterModePrescaler forwards every n-th edge, n = PrescalerFactor.
	FilterModePrescaler
)

// FilterConfig describes the requested debounce behavior of one input, with
// times in seconds. It is a pure value type copied into tick-resolved state
// at configuration time.
type FilterConfig struct {
	// Mode is the filter mode.
	Mode FilterMode

	// ClearTimerOnGlitch clears the filter timer on a glitch instead of
	// decrementing it.
	ClearTimerOnGlitch bool

	// RisingEdgeFilterTime is the rising edge filter time in seconds. In
	// delayed debounce modes this is the minimum stable time.
	RisingEdgeFilterTime float64

	// FallingEdgeFilterTime is the falling edge filter time in seconds.
	FallingEdgeFilterTime float64

	// PrescalerFactor is the edge divider, only meaningful in prescaler
	// mode where it must be greater than zero.
	PrescalerFactor uint32
}

// ResolvedFilter is a FilterConfig with all times converted to clock ticks,
// ready to be written to the filter cell.
type ResolvedFilter struct {
	Mode               FilterMode
	ClearTimerOnGlitch bool
	RisingEdgeTicks    uint32
	FallingEdgeTicks   uint32
	Prescaler          uint32
}

// resolveFilter validates cfg and converts its times to ticks. Validation
// order: prescaler factor first, then time signs, then range conversion, so
// a configuration with several mistakes reports the structural one first.
func resolveFilter(cfg FilterConfig, clockPeriod float64) (ResolvedFilter, error) {
	if cfg.Mode > FilterModePrescaler {
		return ResolvedFilter{}, ErrInvalidParameter
	}
	if cfg.Mode == FilterModePrescaler && cfg.PrescalerFactor == 0 {
		return ResolvedFilter{}, ErrInvalidParameter
	}
	rising, err := TicksFromSeconds(cfg.RisingEdgeFilterTime, clockPeriod, FilterTickLimit)
	if err != nil {
		return ResolvedFilter{}, err
	}
	falling, err := TicksFromSeconds(cfg.FallingEdgeFilterTime, clockPeriod, FilterTickLimit)
	if err != nil {
		return ResolvedFilter{}, err
	}
	return ResolvedFilter{
		Mode:               cfg.Mode,
		ClearTimerOnGlitch: cfg.ClearTimerOnGlitch,
		RisingEdgeTicks:    rising,
		FallingEdgeTicks:   falling,
		Prescaler:          cfg.PrescalerFactor,
	}, nil
}
