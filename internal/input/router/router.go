package router

import (
	"time"

	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/input/key"
	"github.com/dshills/vcmux/internal/input/repeat"
	"github.com/dshills/vcmux/internal/input/report"
)

// Source is a raw keyboard report stream.
type Source interface {
	// Read fills buf with one report and returns the byte count.
	Read(buf []byte) (int, error)

	// WaitReadable blocks until a report is available or the timeout
	// elapses. A negative timeout waits forever.
	WaitReadable(timeout time.Duration) (ready bool, err error)
}

// Router drives one keyboard's reports into the console registry.
type Router struct {
	src   Source
	reg   *console.Registry
	ctl   *Controls
	timer *repeat.Timer
	log   pslog.Logger

	// Double-buffered report state: the raw bytes of the last two
	// reports and their parsed key sets, flipped by parity. Keeping
	// the previous raw report allows the repeat path to replay it.
	rawPrev [report.Size]byte
	rawCur  [report.Size]byte
	keys    [2]report.KeySet
	cur     int

	mods key.Modifiers
}

// Config assembles a router.
type Config struct {
	// Source is the report stream. Required.
	Source Source

	// Registry resolves the active console. Required.
	Registry *console.Registry

	// Controls handles the intercepted hot-keys. Required.
	Controls *Controls

	// Timer is the repeat state machine; nil disables key repeat.
	Timer *repeat.Timer

	// Log receives the one line a dying router emits.
	Log pslog.Logger
}

// New creates a router. Run it on its own goroutine.
func New(cfg Config) *Router {
	t := cfg.Timer
	if t == nil {
		t = repeat.NewDisabledTimer()
	}
	return &Router{
		src:   cfg.Source,
		reg:   cfg.Registry,
		ctl:   cfg.Controls,
		timer: t,
		log:   cfg.Log,
	}
}

// Run reads reports until the source fails or ends. It is the body of
// the per-device input goroutine.
func (r *Router) Run() {
	for {
		ready, err := r.src.WaitReadable(r.timer.Wait())
		if err != nil {
			r.logExit("input wait failed", err)
			return
		}

		if !ready {
			// Timed out: a repeat is due. Replay the previous and
			// current report so the held keys fire again, then
			// accelerate.
			r.processReport(r.rawPrev[:])
			r.processReport(r.rawCur[:])
			r.timer.Expire()
			continue
		}

		r.rawPrev = r.rawCur
		n, err := r.src.Read(r.rawCur[:])
		if err != nil {
			r.logExit("input read failed", err)
			return
		}
		if n != report.Size {
			// Transient glitch: skip the sample, stop any repeat.
			r.timer.Glitch()
			continue
		}

		pressed, released, ok := r.processReport(r.rawCur[:])
		if !ok {
			r.timer.Glitch()
			continue
		}
		r.timer.Observe(pressed.AnyNonModifier(), released.Any())
	}
}

// processReport parses one raw report, applies modifier updates, and
// dispatches every newly pressed key. The returned transition sets
// feed the repeat decision.
func (r *Router) processReport(raw []byte) (pressed, released report.KeySet, ok bool) {
	ks, err := report.Parse(raw)
	if err != nil {
		return pressed, released, false
	}

	prev := r.cur
	r.cur = 1 - r.cur
	r.keys[r.cur] = ks

	pressed = report.Pressed(r.keys[prev], r.keys[r.cur])
	released = report.Released(r.keys[prev], r.keys[r.cur])

	pressed.ForEach(func(c key.Code) {
		r.mods |= key.ModifierFromCode(c)
		r.handleKeyPress(c)
	})
	released.ForEach(func(c key.Code) {
		r.mods &^= key.ModifierFromCode(c)
	})
	return pressed, released, true
}

// handleKeyPress runs one key-down through the control-key intercept
// and otherwise routes it to the active console. Input with no active
// console is dropped, not buffered.
func (r *Router) handleKeyPress(c key.Code) {
	if r.ctl.Handle(c, r.mods) {
		return
	}
	r.reg.RouteKey(c, r.mods)
}

func (r *Router) logExit(msg string, err error) {
	if r.log != nil {
		r.log.Warn(msg, "err", err)
	}
}
