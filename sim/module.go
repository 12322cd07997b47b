// Package sim provides an in-memory implementation of the signal-monitor
// peripheral's register interface. It stands in for the memory-mapped module
// in tests and host-side development, and emulates the hardware side of the
// registers: event latching, accumulator counting and history recording.
package sim

import "iomon/core"

type glitchFlags struct {
	rising  bool
	falling bool
}

// Module is a simulated peripheral module. The zero value is not usable;
// create instances with NewModule.
//
// Methods of core.Module plus the test hooks below. The hooks play the role
// of the electrical signals: Event injects a filtered channel event exactly
// where the hardware's comparator would, InjectMonGlitch / InjectRefGlitch
// set the sticky flags the filter cells would set.
type Module struct {
	clockPeriod float64

	channels   [core.ChannelCount]core.ChannelState
	configured [core.ChannelCount]bool

	accumBound     [core.AccumulatorCount]bool
	accumChannel   [core.AccumulatorCount]core.ChannelID
	accumThreshold [core.AccumulatorCount]uint8
	accumCount     [core.AccumulatorCount]uint8

	eventEnable uint32
	eventStatus uint16

	monGlitch [core.ChannelCount]glitchFlags
	refGlitch [core.ChannelCount]glitchFlags

	history [4]uint16
}

// NewModule creates a simulated module whose clock tick lasts clockPeriod
// seconds. A typical value is 1e-8 (100 MHz module clock).
func NewModule(clockPeriod float64) *Module {
	return &Module{clockPeriod: clockPeriod}
}

// ClockPeriod implements core.Module.
func (m *Module) ClockPeriod() float64 { return m.clockPeriod }

// ApplyChannel implements core.Module.
func (m *Module) ApplyChannel(ch core.ChannelID, state core.ChannelState) {
	m.channels[ch] = state
	m.configured[ch] = true
}

// ClearChannel implements core.Module.
func (m *Module) ClearChannel(ch core.ChannelID) {
	m.channels[ch] = core.ChannelState{}
	m.configured[ch] = false
}

// BindAccumulator implements core.Module.
func (m *Module) BindAccumulator(idx uint8, ch core.ChannelID, threshold uint8) {
	m.accumBound[idx] = true
	m.accumChannel[idx] = ch
	m.accumThreshold[idx] = threshold
	m.accumCount[idx] = 0
}

// ReleaseAccumulator implements core.Module.
func (m *Module) ReleaseAccumulator(idx uint8) {
	m.accumBound[idx] = false
	m.accumCount[idx] = 0
}

// EventEnableMask implements core.Module.
func (m *Module) EventEnableMask() uint32 { return m.eventEnable }

// SetEventEnableMask implements core.Module.
func (m *Module) SetEventEnableMask(mask uint32) { m.eventEnable = mask }

// EventStatus implements core.Module.
func (m *Module) EventStatus() uint16 { return m.eventStatus }

// ClearEventStatus implements core.Module.
func (m *Module) ClearEventStatus(mask uint16) { m.eventStatus &^= mask }

// MonGlitch implements core.Module.
func (m *Module) MonGlitch(ch core.ChannelID) (rising, falling bool) {
	return m.monGlitch[ch].rising, m.monGlitch[ch].falling
}

// ClearMonGlitch implements core.Module.
func (m *Module) ClearMonGlitch(ch core.ChannelID) {
	m.monGlitch[ch] = glitchFlags{}
}

// RefGlitch implements core.Module.
func (m *Module) RefGlitch(ch core.ChannelID) (rising, falling bool) {
	return m.refGlitch[ch].rising, m.refGlitch[ch].falling
}

// ClearRefGlitch implements core.Module.
func (m *Module) ClearRefGlitch(ch core.ChannelID) {
	m.refGlitch[ch] = glitchFlags{}
}

// History implements core.Module.
func (m *Module) History() (a, b, c, d uint16) {
	return m.history[0], m.history[1], m.history[2], m.history[3]
}

// ClearHistory implements core.Module.
func (m *Module) ClearHistory() {
	m.history = [4]uint16{}
}

// Event injects one filtered comparison event on a channel, as the hardware
// would generate it after input filtering and event source selection. The
// event is pushed into the history and, if the channel's system event is
// enabled, counted toward its trigger threshold; reaching the threshold
// latches the channel's event status flag.
func (m *Module) Event(ch core.ChannelID) {
	if !m.configured[ch] {
		return
	}
	m.history[3] = m.history[2]
	m.history[2] = m.history[1]
	m.history[1] = m.history[0]
	m.history[0] = 1 << ch

	if m.eventEnable&(1<<ch) == 0 {
		return
	}
	threshold := m.channels[ch].TriggerThreshold
	switch {
	case threshold == 0:
		// System event disabled.
	case threshold == 1:
		m.eventStatus |= 1 << ch
	default:
		idx := m.channels[ch].Accumulator
		if idx < 0 || !m.accumBound[idx] {
			return
		}
		m.accumCount[idx]++
		if m.accumCount[idx] >= m.accumThreshold[idx] {
			m.accumCount[idx] = 0
			m.eventStatus |= 1 << ch
		}
	}
}

// InjectMonGlitch sets the sticky monitor glitch flags of a channel.
func (m *Module) InjectMonGlitch(ch core.ChannelID, rising, falling bool) {
	m.monGlitch[ch].rising = m.monGlitch[ch].rising || rising
	m.monGlitch[ch].falling = m.monGlitch[ch].falling || falling
}

// InjectRefGlitch sets the sticky reference glitch flags of a channel.
func (m *Module) InjectRefGlitch(ch core.ChannelID, rising, falling bool) {
	m.refGlitch[ch].rising = m.refGlitch[ch].rising || rising
	m.refGlitch[ch].falling = m.refGlitch[ch].falling || falling
}

// ChannelState returns the applied configuration of a channel and whether
// the channel is configured at all.
func (m *Module) ChannelState(ch core.ChannelID) (core.ChannelState, bool) {
	return m.channels[ch], m.configured[ch]
}

// AccumulatorBinding returns the channel and threshold an accumulator is
// bound to, and whether it is bound.
func (m *Module) AccumulatorBinding(idx uint8) (core.ChannelID, uint8, bool) {
	return m.accumChannel[idx], m.accumThreshold[idx], m.accumBound[idx]
}
