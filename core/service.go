package core

// Service is the single entry point for the external cyclic dispatcher. It
// is called at a fixed cadence from the scheduler's task context, takes no
// inputs, never blocks, and does bounded work: it drains the latched event
// flags and hands each evented channel to EventFunc.
//
// Events latched while Service runs are picked up on the next cycle; the
// latch is read and cleared under an interrupt-disabled critical section so
// no event is lost between the read and the clear.
func (d *Driver) Service() {
	state := disableInterrupts()
	pending := d.module.EventStatus()
	d.module.ClearEventStatus(pending)
	restoreInterrupts(state)

	if pending == 0 || d.EventFunc == nil {
		return
	}
	for ch := ChannelID(0); ch < ChannelCount; ch++ {
		if pending&(1<<ch) != 0 {
			d.EventFunc(ch)
		}
	}
}
