package producer

import (
	"time"

	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/render"
)

// DefaultBatteryInterval is the pause between battery polls.
const DefaultBatteryInterval = time.Second

// BatterySource reads one raw battery report per call. The wire format
// is the power device's: "e" for an error state, "c" prefix plus
// percentage while charging, bare percentage otherwise.
type BatterySource interface {
	Read() (string, error)
}

// BatteryPoller keeps the registry's battery record current and nudges
// the status line when it changes.
type BatteryPoller struct {
	src      BatterySource
	reg      *console.Registry
	r        render.Renderer
	interval time.Duration
	log      pslog.Logger
}

// NewBatteryPoller creates a poller. A zero interval means the
// default.
func NewBatteryPoller(src BatterySource, reg *console.Registry, r render.Renderer, interval time.Duration, log pslog.Logger) *BatteryPoller {
	if interval <= 0 {
		interval = DefaultBatteryInterval
	}
	if r == nil {
		r = render.Nop{}
	}
	return &BatteryPoller{src: src, reg: reg, r: r, interval: interval, log: log}
}

// Run polls until the source fails. A failed source leaves the last
// record standing with the error state, then the poller exits.
func (bp *BatteryPoller) Run() {
	for {
		raw, err := bp.src.Read()
		if err != nil {
			bp.reg.SetBattery(console.BatteryInfo{State: console.BatteryError, Pct: -1})
			bp.r.FlushStatus()
			if bp.log != nil {
				bp.log.Warn("battery source failed", "err", err)
			}
			return
		}

		info := console.ParseBattery(raw)
		if info != bp.reg.Battery() {
			bp.reg.SetBattery(info)
			bp.r.FlushStatus()
		}
		time.Sleep(bp.interval)
	}
}
