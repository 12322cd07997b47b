package core

// ChannelState is the fully tick-resolved configuration of one channel, the
// value the driver writes through the Module interface. Bit-level register
// encoding is the module implementation's concern.
type ChannelState struct {
	MonClass    InputClass
	MonIndex    uint8
	MonInverted bool
	MonFilter   ResolvedFilter

	RefClass    InputClass
	RefIndex    uint8
	RefInverted bool
	RefFilter   ResolvedFilter

	WindowControlSource  WindowControlSource
	WindowRun            WindowRunControl
	WindowClearEvent     WindowClearEvent
	WindowInverted       bool
	WindowThresholdTicks uint32

	EventSource  EventSource
	EventTrigger EventTrigger

	TriggerThreshold uint8
	Accumulator      int8
}

// Module is the abstract register-access interface the driver writes
// through. Target-specific code implements it over the memory-mapped
// peripheral; the sim package implements it in plain Go for tests and
// host-side development.
//
// Glitch flags, the event status and the event enable mask are also written
// by the hardware as signals arrive, so implementations back them with the
// module's registers rather than shadow copies. The driver brackets its
// read-modify-write sequences on them with an interrupt-disabled critical
// section.
type Module interface {
	// ClockPeriod returns the duration of one module clock tick in
	// seconds.
	ClockPeriod() float64

	// ApplyChannel writes a resolved channel configuration.
	ApplyChannel(ch ChannelID, state ChannelState)

	// ClearChannel returns a channel to its reset state.
	ClearChannel(ch ChannelID)

	// BindAccumulator routes a channel's events to a shared accumulator
	// with the given trigger threshold.
	BindAccumulator(idx uint8, ch ChannelID, threshold uint8)

	// ReleaseAccumulator unbinds an accumulator.
	ReleaseAccumulator(idx uint8)

	// EventEnableMask reads the per-channel system event enable bits.
	EventEnableMask() uint32

	// SetEventEnableMask writes the per-channel system event enable bits.
	SetEventEnableMask(mask uint32)

	// EventStatus reads the latched per-channel event flags.
	EventStatus() uint16

	// ClearEventStatus clears the given latched event flags.
	ClearEventStatus(mask uint16)

	// MonGlitch reads the sticky glitch flags of a channel's monitor
	// input filter.
	MonGlitch(ch ChannelID) (rising, falling bool)

	// ClearMonGlitch clears the monitor glitch flags of a channel.
	ClearMonGlitch(ch ChannelID)

	// RefGlitch reads the sticky glitch flags of a channel's reference
	// input filter.
	RefGlitch(ch ChannelID) (rising, falling bool)

	// ClearRefGlitch clears the reference glitch flags of a channel.
	ClearRefGlitch(ch ChannelID)

	// History reads the four event history snapshots, most recent first.
	// Bit n of each mask corresponds to channel n.
	History() (a, b, c, d uint16)

	// ClearHistory clears the event history.
	ClearHistory()
}
