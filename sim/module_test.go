package sim

import (
	"testing"

	"iomon/core"
)

func applyChannel(m *Module, ch core.ChannelID, threshold uint8, accumulator int8) {
	m.ApplyChannel(ch, core.ChannelState{
		TriggerThreshold: threshold,
		Accumulator:      accumulator,
	})
	if accumulator >= 0 {
		m.BindAccumulator(uint8(accumulator), ch, threshold)
	}
	m.SetEventEnableMask(m.EventEnableMask() | 1<<ch)
}

func TestEventOnUnconfiguredChannel(t *testing.T) {
	m := NewModule(1e-8)

	m.Event(4)
	if a, b, c, d := m.History(); a|b|c|d != 0 {
		t.Error("unconfigured channel recorded history")
	}
	if m.EventStatus() != 0 {
		t.Error("unconfigured channel latched an event")
	}
}

func TestImmediateTriggerLatches(t *testing.T) {
	m := NewModule(1e-8)
	applyChannel(m, 2, 1, core.NoAccumulator)

	m.Event(2)
	if m.EventStatus() != 1<<2 {
		t.Errorf("expected status bit for channel 2, got %#x", m.EventStatus())
	}

	m.ClearEventStatus(1 << 2)
	if m.EventStatus() != 0 {
		t.Errorf("status not cleared: %#x", m.EventStatus())
	}
}

func TestAccumulatorCountsToThreshold(t *testing.T) {
	m := NewModule(1e-8)
	applyChannel(m, 0, 3, 1)

	m.Event(0)
	m.Event(0)
	if m.EventStatus() != 0 {
		t.Fatalf("latched below threshold: %#x", m.EventStatus())
	}
	m.Event(0)
	if m.EventStatus() != 1<<0 {
		t.Fatalf("expected latch at threshold, got %#x", m.EventStatus())
	}

	// The count restarts after a latch.
	m.ClearEventStatus(1 << 0)
	m.Event(0)
	m.Event(0)
	if m.EventStatus() != 0 {
		t.Errorf("count did not restart after latch: %#x", m.EventStatus())
	}
}

func TestDisabledEventRecordsHistoryOnly(t *testing.T) {
	m := NewModule(1e-8)
	applyChannel(m, 5, 1, core.NoAccumulator)
	m.SetEventEnableMask(0)

	m.Event(5)
	if m.EventStatus() != 0 {
		t.Errorf("disabled channel latched an event: %#x", m.EventStatus())
	}
	// The raw comparison event is still visible in the history.
	if a, _, _, _ := m.History(); a != 1<<5 {
		t.Errorf("expected history to record the raw event, got %#x", a)
	}
}

func TestHistoryShifts(t *testing.T) {
	m := NewModule(1e-8)
	for _, ch := range []core.ChannelID{0, 1, 2, 3, 4} {
		applyChannel(m, ch, 0, core.NoAccumulator)
	}

	for _, ch := range []core.ChannelID{0, 1, 2, 3, 4} {
		m.Event(ch)
	}

	a, b, c, d := m.History()
	if a != 1<<4 || b != 1<<3 || c != 1<<2 || d != 1<<1 {
		t.Errorf("oldest event not shifted out: a=%#x b=%#x c=%#x d=%#x", a, b, c, d)
	}
}

func TestReleaseAccumulatorResetsCount(t *testing.T) {
	m := NewModule(1e-8)
	applyChannel(m, 0, 2, 0)

	m.Event(0)
	m.ReleaseAccumulator(0)
	m.BindAccumulator(0, 0, 2)

	// The partial count from before the rebind must be gone.
	m.Event(0)
	if m.EventStatus() != 0 {
		t.Errorf("stale count survived rebind: %#x", m.EventStatus())
	}
}
