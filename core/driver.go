// Driver for a signal-monitor peripheral: a fixed block of comparison
// channels that check a monitored signal against a reference and raise
// system events when the comparison fails.
//
// The driver owns the peripheral's two countable resource pools (channels
// and shared event accumulators), converts all second-denominated timing to
// hardware ticks and writes the resolved state through the Module interface.
package core

// Driver wraps one peripheral instance. Create it with NewDriver, once per
// physical module, at system start; it is never torn down.
type Driver struct {
	module   Module
	reg      resourceRegistry
	channels [ChannelCount]*Channel

	// EventFunc, when set, is invoked by Service once for each newly
	// latched channel event. It runs in the dispatcher's context and must
	// not block.
	EventFunc func(ch ChannelID)
}

// NewDriver initializes a driver for the given module handle. Both used
// masks start empty. The hardware is not touched beyond recording the
// handle. A nil module returns ErrInvalidParameter.
func NewDriver(module Module) (*Driver, error) {
	if module == nil {
		return nil, ErrInvalidParameter
	}
	return &Driver{module: module}, nil
}

// Channel returns the configured channel with the given id, or nil.
func (d *Driver) Channel(id ChannelID) *Channel {
	if id >= ChannelCount {
		return nil
	}
	return d.channels[id]
}

// DisableEvents atomically disables all system event generation for the
// module and returns the prior enable mask. Pass the mask to RestoreEvents
// to re-enable exactly the events that were armed; the pair brackets
// transient reconfiguration that must not race with hardware event
// generation.
func (d *Driver) DisableEvents() uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	mask := d.module.EventEnableMask()
	d.module.SetEventEnableMask(0)
	return mask
}

// RestoreEvents re-enables the events in mask. The mask must come from a
// matching DisableEvents call on the same driver; anything else is caller
// error, this is a save/restore pair, not a general setter.
func (d *Driver) RestoreEvents(mask uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	d.module.SetEventEnableMask(mask)
}

// EnableEvent arms the channel's system event.
func (c *Channel) EnableEvent() {
	if c.driver == nil {
		return
	}
	state := disableInterrupts()
	defer restoreInterrupts(state)

	m := c.driver.module
	m.SetEventEnableMask(m.EventEnableMask() | 1<<c.id)
}

// DisableEvent disarms the channel's system event.
func (c *Channel) DisableEvent() {
	if c.driver == nil {
		return
	}
	state := disableInterrupts()
	defer restoreInterrupts(state)

	m := c.driver.module
	m.SetEventEnableMask(m.EventEnableMask() &^ (1 << c.id))
}

// MonGlitch returns the sticky glitch flags of the monitor input filter.
func (c *Channel) MonGlitch() (rising, falling bool) {
	return c.driver.module.MonGlitch(c.id)
}

// ClearMonGlitch clears the monitor glitch flags.
func (c *Channel) ClearMonGlitch() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.driver.module.ClearMonGlitch(c.id)
}

// RefGlitch returns the sticky glitch flags of the reference input filter.
func (c *Channel) RefGlitch() (rising, falling bool) {
	return c.driver.module.RefGlitch(c.id)
}

// ClearRefGlitch clears the reference glitch flags.
func (c *Channel) ClearRefGlitch() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	c.driver.module.ClearRefGlitch(c.id)
}

// ClearAllGlitches clears monitor and reference glitch flags on every
// channel of the module.
func (d *Driver) ClearAllGlitches() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for ch := ChannelID(0); ch < ChannelCount; ch++ {
		d.module.ClearMonGlitch(ch)
		d.module.ClearRefGlitch(ch)
	}
}

// History returns the four event history snapshots, latest first, oldest
// last. Bit n of each mask corresponds to channel n. Pure read, no mutation.
func (d *Driver) History() (latest, prev1, prev2, oldest uint16) {
	return d.module.History()
}

// ClearHistory clears the module's event history.
func (d *Driver) ClearHistory() {
	d.module.ClearHistory()
}
