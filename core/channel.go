package core

// WindowControlSource selects the signal that controls the event window
// timer.
type WindowControlSource uint8

const (
	WindowControlMon WindowControlSource = iota
	WindowControlRef
)

// WindowRunControl selects how the event window timer runs.
type WindowRunControl uint8

const (
	WindowRunFreeRunning WindowRunControl = iota
	WindowRunGated
)

// WindowClearEvent selects the edge of the control signal that clears the
// event window timer.
type WindowClearEvent uint8

const (
	WindowClearNone WindowClearEvent = iota
	WindowClearRisingEdge
	WindowClearFallingEdge
	WindowClearAnyEdge
)

// EventSource selects the combination of monitor and reference signals that
// generates channel events.
type EventSource uint8

const (
	EventSourceMon EventSource = iota
	EventSourceRef
	EventSourceMonXorRef
	EventSourceMonAndRef
	EventSourceMonOrRef
)

// EventTrigger selects the edge of the event source that raises an event.
type EventTrigger uint8

const (
	EventTriggerRisingEdge EventTrigger = iota
	EventTriggerFallingEdge
	EventTriggerBothEdge
)

// MonConfig configures the monitor input of a channel.
type MonConfig struct {
	Input    MonInput
	Inverted bool
	Filter   FilterConfig
}

// RefConfig configures the reference input of a channel.
type RefConfig struct {
	Input    RefInput
	Inverted bool
	Filter   FilterConfig
}

// EventWindowConfig configures the time window during which monitor and
// reference comparison events are counted.
type EventWindowConfig struct {
	ControlSource WindowControlSource
	Run           WindowRunControl
	ClearEvent    WindowClearEvent
	Inverted      bool

	// Threshold is the event window length in seconds. Zero disables
	// event generation for the channel.
	Threshold float64
}

// EventConfig configures how channel events are derived from the compared
// signals.
type EventConfig struct {
	Source  EventSource
	Trigger EventTrigger
}

// Trigger threshold domain. Values from 2 up to TriggerThresholdLimit count
// events on a shared accumulator before raising the system event; the limit
// is the accumulator counter width.
const TriggerThresholdLimit = 15

// ChannelConfig is the declarative configuration request for one channel.
// All times are in seconds; the configure call resolves them to ticks.
type ChannelConfig struct {
	Channel     ChannelID
	Mon         MonConfig
	Ref         RefConfig
	EventWindow EventWindowConfig
	Event       EventConfig

	// SystemEventTriggerThreshold is the number of channel events that
	// raises the system event. 0 disables the system event, 1 raises it
	// immediately on each event, 2..TriggerThresholdLimit accumulate
	// events on a shared accumulator first.
	SystemEventTriggerThreshold uint8
}

// NewChannelConfig returns the default channel configuration: channel 0,
// unfiltered non-inverted pin inputs, free running window with no threshold,
// event on any monitor edge, system event disabled.
func NewChannelConfig() ChannelConfig {
	return ChannelConfig{
		Event: EventConfig{
			Source:  EventSourceMon,
			Trigger: EventTriggerBothEdge,
		},
	}
}

// NoAccumulator marks a channel that owns no shared accumulator.
const NoAccumulator int8 = -1

// Channel is one configured monitor/reference comparison unit. It is
// returned by ConfigureChannel and holds the resolved resource bindings.
type Channel struct {
	driver      *Driver
	id          ChannelID
	monInput    MonInput
	refInput    RefInput
	accumulator int8
	threshold   uint8
}

// ID returns the channel identifier.
func (c *Channel) ID() ChannelID { return c.id }

// AccumulatorIndex returns the shared accumulator bound to this channel, or
// NoAccumulator. The index is non-negative exactly when the configured
// trigger threshold was 2 or more.
func (c *Channel) AccumulatorIndex() int8 { return c.accumulator }

// TriggerThreshold returns the configured system event trigger threshold.
func (c *Channel) TriggerThreshold() uint8 { return c.threshold }

// MonInput returns the configured monitor input selector.
func (c *Channel) MonInput() MonInput { return c.monInput }

// RefInput returns the configured reference input selector.
func (c *Channel) RefInput() RefInput { return c.refInput }

// ConfigureChannel validates cfg, resolves every time value to ticks, binds
// the channel (and a shared accumulator when the trigger threshold needs
// one) and writes the resolved state to the hardware module.
//
// The call is all-or-nothing: every validation step runs before any used
// mask is touched, so a failed configuration leaves the driver exactly as it
// was. Errors: ErrAlreadyUsed for a double-booked channel,
// ErrResourceExhausted when the threshold needs an accumulator and none is
// free, ErrInvalidParameter / ErrOutOfRange from parameter validation.
func (d *Driver) ConfigureChannel(cfg ChannelConfig) (*Channel, error) {
	if cfg.Channel >= ChannelCount {
		return nil, ErrInvalidParameter
	}
	if d.reg.channelInUse(cfg.Channel) {
		return nil, ErrAlreadyUsed
	}
	if !validInput(cfg.Mon.Input.Class, cfg.Mon.Input.Index) {
		return nil, ErrInvalidParameter
	}
	if !validInput(cfg.Ref.Input.Class, cfg.Ref.Input.Index) {
		return nil, ErrInvalidParameter
	}

	period := d.module.ClockPeriod()

	monFilter, err := resolveFilter(cfg.Mon.Filter, period)
	if err != nil {
		return nil, err
	}
	refFilter, err := resolveFilter(cfg.Ref.Filter, period)
	if err != nil {
		return nil, err
	}
	windowTicks, err := TicksFromSeconds(cfg.EventWindow.Threshold, period, WindowTickLimit)
	if err != nil {
		return nil, err
	}

	// Trigger thresholds 0 and 1 need no accumulator; 2..limit need one,
	// picked lowest-free-first. Availability is only checked here; the
	// claim happens below, after validation is complete.
	if cfg.SystemEventTriggerThreshold > TriggerThresholdLimit {
		return nil, ErrInvalidParameter
	}
	accumulator := NoAccumulator
	if cfg.SystemEventTriggerThreshold >= 2 {
		idx, err := d.reg.firstFreeAccumulator()
		if err != nil {
			return nil, err
		}
		accumulator = int8(idx)
	}

	// Validation done, commit. Neither claim can fail: the channel bit
	// was checked above and configuration is serialized by contract.
	if err := d.reg.tryAllocChannel(cfg.Channel); err != nil {
		return nil, err
	}
	if accumulator != NoAccumulator {
		idx, err := allocateAccumulator(&d.reg)
		if err != nil {
			d.reg.releaseChannel(cfg.Channel)
			return nil, err
		}
		accumulator = int8(idx)
	}

	state := ChannelState{
		MonClass:    cfg.Mon.Input.Class,
		MonIndex:    cfg.Mon.Input.Index,
		MonInverted: cfg.Mon.Inverted,
		MonFilter:   monFilter,

		RefClass:    cfg.Ref.Input.Class,
		RefIndex:    cfg.Ref.Input.Index,
		RefInverted: cfg.Ref.Inverted,
		RefFilter:   refFilter,

		WindowControlSource:  cfg.EventWindow.ControlSource,
		WindowRun:            cfg.EventWindow.Run,
		WindowClearEvent:     cfg.EventWindow.ClearEvent,
		WindowInverted:       cfg.EventWindow.Inverted,
		WindowThresholdTicks: windowTicks,

		EventSource:  cfg.Event.Source,
		EventTrigger: cfg.Event.Trigger,

		TriggerThreshold: cfg.SystemEventTriggerThreshold,
		Accumulator:      accumulator,
	}
	d.module.ApplyChannel(cfg.Channel, state)
	if accumulator != NoAccumulator {
		d.module.BindAccumulator(uint8(accumulator), cfg.Channel, cfg.SystemEventTriggerThreshold)
	}

	ch := &Channel{
		driver:      d,
		id:          cfg.Channel,
		monInput:    cfg.Mon.Input,
		refInput:    cfg.Ref.Input,
		accumulator: accumulator,
		threshold:   cfg.SystemEventTriggerThreshold,
	}
	d.channels[cfg.Channel] = ch

	// A non-zero trigger threshold arms the channel's system event.
	if cfg.SystemEventTriggerThreshold > 0 {
		ch.EnableEvent()
	}
	return ch, nil
}

// ReleaseChannel unbinds a configured channel: its event is disabled, its
// hardware state cleared and its used bits (channel and accumulator, if any)
// released for reuse.
func (d *Driver) ReleaseChannel(c *Channel) {
	if c == nil || c.driver != d {
		return
	}
	c.DisableEvent()
	d.module.ClearChannel(c.id)
	if c.accumulator != NoAccumulator {
		d.module.ReleaseAccumulator(uint8(c.accumulator))
		d.reg.releaseAccumulator(uint8(c.accumulator))
		c.accumulator = NoAccumulator
	}
	d.reg.releaseChannel(c.id)
	d.channels[c.id] = nil
	c.driver = nil
}
