package console

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/vcmux/internal/console/queue"
	"github.com/dshills/vcmux/internal/input/key"
	"github.com/dshills/vcmux/internal/render"
	"github.com/dshills/vcmux/internal/term"
)

// Session is one virtual console: a character grid, a bounded input
// queue, and the bookkeeping the registry and router need.
//
// The session lock guards output state (grid, damage, viewport,
// flags); the queue carries its own lock for input state. Cross-thread
// holders reference a session by ID, never by pointer across a lock
// release.
type Session struct {
	id    uuid.UUID
	title string

	mu     sync.Mutex
	grid   term.Engine
	damage render.Damage
	vpy    int // viewport offset into scrollback, always <= 0
	flags  Flags

	active atomic.Bool

	queue  *queue.Queue
	keymap *key.Keymap
	r      render.Renderer
}

// SessionConfig configures a new session.
type SessionConfig struct {
	// Title is shown in the status line.
	Title string

	// Engine is the terminal-emulation collaborator. Required.
	Engine term.Engine

	// Keymap used to decode input routed to this console. Defaults to
	// QWERTY.
	Keymap *key.Keymap

	// QueueSize is the input queue capacity in bytes; 0 means the
	// default.
	QueueSize int

	// Renderer receives flush requests. Defaults to render.Nop.
	Renderer render.Renderer
}

// NewSession creates a session. It is inert until added to a registry.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Keymap == nil {
		cfg.Keymap = key.QWERTY()
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.Nop{}
	}
	s := &Session{
		id:     uuid.New(),
		title:  cfg.Title,
		grid:   cfg.Engine,
		queue:  queue.New(cfg.QueueSize),
		keymap: cfg.Keymap,
		r:      cfg.Renderer,
	}
	s.grid.OnRowTouched(s.damage.Mark)
	return s
}

// ID returns the session's stable identity.
func (s *Session) ID() uuid.UUID { return s.id }

// Title returns the session title.
func (s *Session) Title() string { return s.title }

// Queue returns the session's input queue.
func (s *Session) Queue() *queue.Queue { return s.queue }

// Keymap returns the keymap input routed to this console decodes with.
func (s *Session) Keymap() *key.Keymap { return s.keymap }

// Active reports whether this session currently owns the display.
func (s *Session) Active() bool { return s.active.Load() }

// Size returns the grid dimensions.
func (s *Session) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Size()
}

// Write feeds bytes through the terminal engine and flushes exactly
// the damaged row band. A write to an inactive console that had no
// unread output marks it and triggers a status-line-only redraw;
// background writers never pay full-frame cost.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()

	if s.flags.Has(FlagResetScroll) {
		s.flags &^= FlagResetScroll
		s.vpy = 0
	}

	_, rows := s.grid.Size()
	s.damage.Reset(rows)
	for _, b := range p {
		s.grid.PutByte(b)
	}

	var y0, y1, cols int
	flushRegion := false
	if s.damage.Dirty() && s.active.Load() {
		y0, y1 = s.damage.Bounds()
		cols, _ = s.grid.Size()
		flushRegion = true
	}

	statusOnly := false
	if !s.active.Load() && !s.flags.Has(FlagHasInput) {
		s.flags |= FlagHasInput
		statusOnly = true
	}
	s.mu.Unlock()

	if flushRegion {
		s.r.FlushRegion(0, y0, cols, y1-y0+1)
	}
	if statusOnly {
		s.r.FlushStatus()
	}
	return len(p), nil
}

// ReadInput drains up to len(p) bytes of queued input. It returns
// ErrWouldBlock when the queue is empty.
func (s *Session) ReadInput(p []byte) (int, error) {
	n := s.queue.Read(p)
	if n == 0 {
		return 0, ErrWouldBlock
	}
	return n, nil
}

// ScrollViewport moves the scrollback viewport by delta rows (negative
// is up, into history) and redraws the screen if anything changed and
// the session is visible.
func (s *Session) ScrollViewport(delta int) {
	s.mu.Lock()
	lines := s.grid.ScrollbackLen()
	vpy := s.vpy + delta
	if vpy < -lines {
		vpy = -lines
	}
	if vpy > 0 {
		vpy = 0
	}
	changed := vpy != s.vpy
	s.vpy = vpy
	visible := s.active.Load()
	s.mu.Unlock()

	if changed && visible {
		s.r.FlushAll()
	}
}

// ScrollHalfPage scrolls the viewport by half the screen height in the
// given direction (-1 up, +1 down).
func (s *Session) ScrollHalfPage(dir int) {
	s.mu.Lock()
	_, rows := s.grid.Size()
	s.mu.Unlock()
	s.ScrollViewport(dir * rows / 2)
}

// Viewport returns the current viewport offset.
func (s *Session) Viewport() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vpy
}

// SetFullscreen toggles whether this console also owns the status
// line's row, resizing the grid to match.
func (s *Session) SetFullscreen(on bool) {
	s.mu.Lock()
	if s.flags.Has(FlagFullscreen) == on {
		s.mu.Unlock()
		return
	}
	if on {
		s.flags |= FlagFullscreen
	} else {
		s.flags &^= FlagFullscreen
	}
	cols, rows := s.r.Size()
	if !on {
		rows--
	}
	s.grid.Resize(cols, rows)
	visible := s.active.Load()
	s.mu.Unlock()

	if visible {
		s.r.FlushAll()
	}
}

// Fullscreen reports whether the fullscreen flag is set.
func (s *Session) Fullscreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags.Has(FlagFullscreen)
}

// Flags returns a snapshot of the session flags.
func (s *Session) Flags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Snapshot copies one on-screen row, shifted by the viewport offset,
// into dst and returns the copied width. Renderer backends pull rows
// through this instead of touching the grid directly.
func (s *Session) Snapshot(y int, dst []term.Cell) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.viewRow(y)
	if src == nil {
		return 0
	}
	return copy(dst, src)
}

// viewRow resolves screen row y through the viewport: negative vpy
// pulls rows out of scrollback history.
func (s *Session) viewRow(y int) []term.Cell {
	if s.vpy == 0 {
		return s.grid.Row(y)
	}
	sbLen := s.grid.ScrollbackLen()
	idx := sbLen + s.vpy + y
	if idx < sbLen {
		return s.grid.ScrollbackRow(idx)
	}
	return s.grid.Row(idx - sbLen)
}

// setActive is called by the registry, under the registry lock.
func (s *Session) setActive(on bool) {
	s.active.Store(on)
	if on {
		s.mu.Lock()
		s.flags &^= FlagHasInput
		s.mu.Unlock()
	}
}

// markResetScroll is called by the registry when input lands on an
// empty queue.
func (s *Session) markResetScroll() {
	s.mu.Lock()
	s.flags |= FlagResetScroll
	s.mu.Unlock()
}

// statusSnapshot returns what the status line needs, under the
// session lock.
func (s *Session) statusSnapshot() (title string, active, unread, scrollUp, scrollDown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.grid.ScrollbackLen()
	return s.title,
		s.active.Load(),
		s.flags.Has(FlagHasInput),
		lines > 0 && -s.vpy < lines,
		s.vpy < 0
}
