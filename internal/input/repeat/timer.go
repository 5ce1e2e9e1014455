package repeat

import "time"

// State identifies the observable state of the repeat machine.
type State int

const (
	// StateIdle means no timeout is armed; wait indefinitely.
	StateIdle State = iota

	// StatePending means a non-modifier key is held and the first
	// repeat timeout is armed.
	StatePending

	// StateRepeating means at least one timeout has fired without an
	// intervening real report; the interval is accelerating.
	StateRepeating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateRepeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Forever is the Wait result meaning "block with no timeout".
const Forever time.Duration = -1

// Default repeat timing.
const (
	// DefaultDelay is the interval before the first synthesized repeat.
	DefaultDelay = 250 * time.Millisecond

	// DefaultFloor is the shortest interval acceleration reaches.
	DefaultFloor = 50 * time.Millisecond
)

// Timer is the per-stream repeat state machine. It is owned by a
// single router goroutine and needs no locking.
type Timer struct {
	state    State
	interval time.Duration
	delay    time.Duration
	floor    time.Duration
	enabled  bool
}

// NewTimer returns an enabled timer with the given timing. Zero delay
// or floor fall back to the defaults.
func NewTimer(delay, floor time.Duration) *Timer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if floor <= 0 {
		floor = DefaultFloor
	}
	return &Timer{delay: delay, floor: floor, enabled: true}
}

// NewDisabledTimer returns a timer that always waits forever.
// Disabling repeat is a static configuration choice made at stream
// start.
func NewDisabledTimer() *Timer {
	return &Timer{}
}

// State returns the current machine state.
func (t *Timer) State() State { return t.state }

// Wait returns the timeout for the next blocking wait, or Forever.
func (t *Timer) Wait() time.Duration {
	if !t.enabled || t.state == StateIdle {
		return Forever
	}
	return t.interval
}

// Observe records the press/release summary of a real report.
// A release always disarms the timer, even if other keys remain held.
// Otherwise a new non-modifier press arms the low-frequency timeout.
func (t *Timer) Observe(pressedNonModifier, released bool) {
	if !t.enabled {
		return
	}
	switch {
	case released:
		t.state = StateIdle
		t.interval = 0
	case pressedNonModifier:
		t.state = StatePending
		t.interval = t.delay
	}
}

// Expire advances the machine after a wait timeout. The caller then
// replays the last report to synthesize the repeat. Each expiry shrinks
// the interval by a quarter, clamped at the floor.
func (t *Timer) Expire() {
	if !t.enabled || t.state == StateIdle {
		return
	}
	t.state = StateRepeating
	t.interval = t.interval * 3 / 4
	if t.interval < t.floor {
		t.interval = t.floor
	}
}

// Glitch resets the timer after a malformed report. Wrong-size reads
// are transient; the safe response is to stop repeating.
func (t *Timer) Glitch() {
	t.state = StateIdle
	t.interval = 0
}
