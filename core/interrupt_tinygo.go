//go:build tinygo

package core

import "runtime/interrupt"

// The glitch flags, event status and event enable mask are written by the
// hardware as signals arrive. Read-modify-write sequences on them run with
// interrupts suppressed so a half-applied mask is never observable.

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
