package core

// ChannelID identifies one monitor/reference comparison channel,
// 0..ChannelCount-1.
type ChannelID uint8

// InputClass names the routing table an input index refers to. The mapping
// from (class, index) to a physical signal lives in system-level routing
// tables outside this package; the driver only forwards the pair.
type InputClass uint8

const (
	// InputClassPin selects a port pin input.
	InputClassPin InputClass = iota

	// InputClassTimerOut selects a timer module output.
	InputClassTimerOut

	// InputClassCompareOut selects a compare unit output.
	InputClassCompareOut
)

// Each routing table has at most 16 entries per channel.
const inputIndexLimit = 15

// MonInput selects the monitor signal of a channel.
type MonInput struct {
	Class InputClass
	Index uint8
}

// RefInput selects the reference signal of a channel.
type RefInput struct {
	Class InputClass
	Index uint8
}

func validInput(class InputClass, index uint8) bool {
	return class <= InputClassCompareOut && index <= inputIndexLimit
}
