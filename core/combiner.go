package core

// allocateAccumulator claims a shared event accumulator for a channel whose
// trigger threshold needs one. Policy: lowest free index first, so allocation
// order is deterministic.
//
// Returns ErrResourceExhausted when every accumulator is bound. Exhaustion is
// a static property of the requested configuration; retrying cannot succeed.
func allocateAccumulator(reg *resourceRegistry) (uint8, error) {
	return reg.allocFreeAccumulator()
}
