package router

import (
	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/input/key"
	"github.com/dshills/vcmux/internal/power"
)

// Controls intercepts the hot-key combinations the multiplexer
// consumes itself: console switching, scrollback, fullscreen, and the
// reboot chord. Intercepted keys never reach a console's input queue.
type Controls struct {
	reg   *console.Registry
	power power.Gateway
	log   pslog.Logger
}

// NewControls creates the control-key handler. The gateway may be nil;
// the reboot chord is then still swallowed, just inert.
func NewControls(reg *console.Registry, gw power.Gateway, log pslog.Logger) *Controls {
	return &Controls{reg: reg, power: gw, log: log}
}

// Handle tests one key-down against the control table and performs the
// bound action. It reports whether the key was consumed.
func (ct *Controls) Handle(c key.Code, mods key.Modifiers) bool {
	switch {
	case c >= key.CodeF1 && c <= key.CodeF10:
		if mods.HasAlt() {
			// Out-of-range selections fail quietly; the chord is
			// still consumed.
			_ = ct.reg.SetActive(int(c - key.CodeF1))
			return true
		}

	case c == key.CodeF11:
		if mods.HasAlt() {
			if s := ct.reg.Active(); s != nil {
				s.SetFullscreen(!s.Fullscreen())
			}
			return true
		}

	case c == key.CodeTab:
		if mods.HasAlt() {
			ct.reg.CycleActive(mods.HasShift())
			return true
		}

	case c == key.CodeUp:
		if mods.HasAlt() {
			ct.scrollActive(-1, false)
			return true
		}
	case c == key.CodeDown:
		if mods.HasAlt() {
			ct.scrollActive(1, false)
			return true
		}
	case c == key.CodePageUp:
		if mods.HasShift() {
			ct.scrollActive(-1, true)
			return true
		}
	case c == key.CodePageDown:
		if mods.HasShift() {
			ct.scrollActive(1, true)
			return true
		}

	case c == key.CodeDelete:
		if mods.HasCtrl() && mods.HasAlt() {
			ct.reboot()
			return true
		}
	}
	return false
}

func (ct *Controls) scrollActive(dir int, halfPage bool) {
	s := ct.reg.Active()
	if s == nil {
		return
	}
	if halfPage {
		s.ScrollHalfPage(dir)
	} else {
		s.ScrollViewport(dir)
	}
}

func (ct *Controls) reboot() {
	if ct.power == nil {
		return
	}
	if err := ct.power.Request(power.OpReboot, nil); err != nil && ct.log != nil {
		ct.log.Error("reboot request failed", "err", err)
	}
}
