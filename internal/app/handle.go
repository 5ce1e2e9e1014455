package app

import (
	"sync/atomic"

	"github.com/dshills/vcmux/internal/console"
	"github.com/dshills/vcmux/internal/term"
)

// ControlOp selects a Handle.Control operation.
type ControlOp int

const (
	// OpGetDimensions returns the console's Dimensions.
	OpGetDimensions ControlOp = iota
	// OpSetActive makes this console the active one.
	OpSetActive
	// OpFlush redraws the whole screen if this console is visible.
	OpFlush
	// OpFlushRegion redraws a Region if this console is visible.
	OpFlushRegion
	// OpSetFullscreen toggles status-row ownership; arg is a bool.
	OpSetFullscreen
	// OpGetFramebuffer snapshots the visible grid into a []term.Cell
	// arg and returns the Dimensions it used.
	OpGetFramebuffer
)

// Dimensions is the result of OpGetDimensions and OpGetFramebuffer.
type Dimensions struct {
	Cols, Rows int
}

// Region is the argument of OpFlushRegion, in character cells.
type Region struct {
	X, Y, W, H int
}

// Handle is one client's console. Reads drain the input queue, writes
// feed the terminal engine, and Close removes the console from the
// display rotation.
type Handle struct {
	m      *Multiplexer
	s      *console.Session
	closed atomic.Bool
}

// Read drains queued input. It returns console.ErrWouldBlock when the
// queue is empty; clients poll or wait on their own schedule.
func (h *Handle) Read(p []byte) (int, error) {
	if h.closed.Load() {
		return 0, ErrClosed
	}
	return h.s.ReadInput(p)
}

// Write feeds output bytes through the terminal engine.
func (h *Handle) Write(p []byte) (int, error) {
	if h.closed.Load() {
		return 0, ErrClosed
	}
	return h.s.Write(p)
}

// Control performs one console operation.
func (h *Handle) Control(op ControlOp, arg any) (any, error) {
	if h.closed.Load() {
		return nil, ErrClosed
	}

	switch op {
	case OpGetDimensions:
		cols, rows := h.s.Size()
		return Dimensions{Cols: cols, Rows: rows}, nil

	case OpSetActive:
		return nil, h.m.reg.SetActiveSession(h.s.ID())

	case OpFlush:
		if h.s.Active() {
			h.m.r.FlushAll()
		}
		return nil, nil

	case OpFlushRegion:
		reg, ok := arg.(Region)
		if !ok {
			return nil, ErrInvalidArgs
		}
		cols, rows := h.s.Size()
		if reg.X < 0 || reg.Y < 0 || reg.W < 0 || reg.H < 0 ||
			reg.X+reg.W > cols || reg.Y+reg.H > rows {
			return nil, ErrInvalidArgs
		}
		if h.s.Active() {
			h.m.r.FlushRegion(reg.X, reg.Y, reg.W, reg.H)
		}
		return nil, nil

	case OpSetFullscreen:
		on, ok := arg.(bool)
		if !ok {
			return nil, ErrInvalidArgs
		}
		h.s.SetFullscreen(on)
		return nil, nil

	case OpGetFramebuffer:
		buf, ok := arg.([]term.Cell)
		if !ok {
			return nil, ErrInvalidArgs
		}
		cols, rows := h.s.Size()
		if len(buf) < cols*rows {
			return nil, ErrBufferTooSmall
		}
		for y := 0; y < rows; y++ {
			h.s.Snapshot(y, buf[y*cols:(y+1)*cols])
		}
		return Dimensions{Cols: cols, Rows: rows}, nil

	default:
		return nil, ErrNotSupported
	}
}

// Close removes the console. A closed handle rejects every further
// operation; closing twice is a no-op.
func (h *Handle) Close() error {
	if h.closed.Swap(true) {
		return nil
	}
	return h.m.reg.Remove(h.s.ID())
}

// Session exposes the underlying session for in-process collaborators.
func (h *Handle) Session() *console.Session { return h.s }
