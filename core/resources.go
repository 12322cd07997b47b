package core

import "math/bits"

// Pool sizes of the peripheral. Both are hardware constants: one used-bit per
// monitor channel and one per shared event accumulator.
const (
	ChannelCount     = 16
	AccumulatorCount = 4
)

// resourceRegistry tracks which channels and shared accumulators are bound.
// The two masks are the single source of truth for allocation: a set bit
// means exactly one active channel owns that resource.
//
// The registry performs no locking. Configuration is expected to happen
// single-threaded at start-up, before the peripheral's interrupts are
// enabled; concurrent mutation requires external serialization.
type resourceRegistry struct {
	channelUsed uint16
	accumUsed   uint8
}

func (r *resourceRegistry) channelInUse(id ChannelID) bool {
	return r.channelUsed&(1<<id) != 0
}

// tryAllocChannel checks and sets the used bit for a channel in one step.
func (r *resourceRegistry) tryAllocChannel(id ChannelID) error {
	if r.channelInUse(id) {
		return ErrAlreadyUsed
	}
	r.channelUsed |= 1 << id
	return nil
}

// releaseChannel clears the used bit. Releasing an unused channel is a no-op.
func (r *resourceRegistry) releaseChannel(id ChannelID) {
	r.channelUsed &^= 1 << id
}

func (r *resourceRegistry) accumulatorInUse(idx uint8) bool {
	return r.accumUsed&(1<<idx) != 0
}

// tryAllocAccumulator checks and sets the used bit for one accumulator.
func (r *resourceRegistry) tryAllocAccumulator(idx uint8) error {
	if idx >= AccumulatorCount {
		return ErrInvalidParameter
	}
	if r.accumulatorInUse(idx) {
		return ErrAlreadyUsed
	}
	r.accumUsed |= 1 << idx
	return nil
}

// allocFreeAccumulator claims the lowest free accumulator and returns its
// index. The lowest-index-first policy makes allocation order deterministic
// and therefore testable.
func (r *resourceRegistry) allocFreeAccumulator() (uint8, error) {
	idx, err := r.firstFreeAccumulator()
	if err != nil {
		return 0, err
	}
	r.accumUsed |= 1 << idx
	return idx, nil
}

// firstFreeAccumulator returns the index allocFreeAccumulator would claim,
// without claiming it. Used to validate availability before a configuration
// transaction commits.
func (r *resourceRegistry) firstFreeAccumulator() (uint8, error) {
	idx := uint8(bits.TrailingZeros8(^r.accumUsed))
	if idx >= AccumulatorCount {
		return 0, ErrResourceExhausted
	}
	return idx, nil
}

// releaseAccumulator clears the used bit. Idempotent.
func (r *resourceRegistry) releaseAccumulator(idx uint8) {
	if idx < AccumulatorCount {
		r.accumUsed &^= 1 << idx
	}
}
