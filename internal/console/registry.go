package console

import (
	"sync"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/dshills/vcmux/internal/input/key"
	"github.com/dshills/vcmux/internal/render"
)

// Registry is the ordered collection of console sessions and the
// single source of truth for "the active console". Insertion order is
// display order; a session's display index is its current position and
// is recomputed after every removal.
//
// Every operation takes the registry lock for its full duration and
// releases it before any renderer call.
type Registry struct {
	mu        sync.Mutex
	sessions  []*Session
	active    *Session
	activeIdx int
	battery   BatteryInfo

	r   render.Renderer
	log pslog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(r render.Renderer, log pslog.Logger) *Registry {
	if r == nil {
		r = render.Nop{}
	}
	return &Registry{
		r:       r,
		log:     log,
		battery: BatteryInfo{State: BatteryUnavailable, Pct: -1},
	}
}

// Count returns the number of sessions.
func (reg *Registry) Count() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.sessions)
}

// Add appends a session to the display order and returns its index.
// The first session added becomes active. Either way the screen is
// redrawn so the status line reflects the new total.
func (reg *Registry) Add(s *Session) int {
	reg.mu.Lock()
	reg.sessions = append(reg.sessions, s)
	idx := len(reg.sessions) - 1
	if reg.active == nil {
		reg.setActiveLocked(s, idx)
	}
	reg.mu.Unlock()

	if reg.log != nil {
		reg.log.Info("console added", "index", idx, "title", s.Title(), "id", s.ID())
	}
	reg.r.FlushAll()
	return idx
}

// Remove deletes the session with the given identity. If it was
// active, the session now occupying the old active slot becomes active
// (clamped to the last session when the slot fell off the end). The
// reselection happens under the same lock acquisition as the removal,
// so no observer ever sees an active pointer at a removed session.
func (reg *Registry) Remove(id uuid.UUID) error {
	reg.mu.Lock()
	i := reg.indexOfLocked(id)
	if i < 0 {
		reg.mu.Unlock()
		return ErrUnknownConsole
	}
	s := reg.sessions[i]
	reg.sessions = append(reg.sessions[:i], reg.sessions[i+1:]...)

	if s == reg.active {
		s.setActive(false)
		reg.active = nil
		if reg.activeIdx >= len(reg.sessions) {
			reg.activeIdx = len(reg.sessions) - 1
		}
		if len(reg.sessions) > 0 {
			reg.setActiveLocked(reg.sessions[reg.activeIdx], reg.activeIdx)
		}
	} else if i < reg.activeIdx {
		reg.activeIdx--
	}
	render := reg.active != nil
	reg.mu.Unlock()

	if reg.log != nil {
		reg.log.Info("console removed", "title", s.Title(), "id", id)
	}
	if render {
		reg.r.FlushAll()
	}
	return nil
}

// SetActive makes the session at the given display index active.
// Selecting the already-active session is a successful no-op that
// triggers no redraw.
func (reg *Registry) SetActive(index int) error {
	reg.mu.Lock()
	if index < 0 || index >= len(reg.sessions) {
		reg.mu.Unlock()
		return ErrInvalidConsole
	}
	s := reg.sessions[index]
	if s == reg.active {
		reg.mu.Unlock()
		return nil
	}
	reg.setActiveLocked(s, index)
	reg.mu.Unlock()

	reg.r.FlushAll()
	return nil
}

// SetActiveSession makes the session with the given identity active.
func (reg *Registry) SetActiveSession(id uuid.UUID) error {
	reg.mu.Lock()
	i := reg.indexOfLocked(id)
	if i < 0 {
		reg.mu.Unlock()
		return ErrUnknownConsole
	}
	s := reg.sessions[i]
	if s == reg.active {
		reg.mu.Unlock()
		return nil
	}
	reg.setActiveLocked(s, i)
	reg.mu.Unlock()

	reg.r.FlushAll()
	return nil
}

// CycleActive switches to the next (or previous) console in display
// order, wrapping at the ends. A no-op with fewer than two sessions.
func (reg *Registry) CycleActive(backward bool) {
	reg.mu.Lock()
	n := len(reg.sessions)
	if n < 2 || reg.active == nil {
		reg.mu.Unlock()
		return
	}
	idx := reg.activeIdx
	if backward {
		idx--
		if idx < 0 {
			idx = n - 1
		}
	} else {
		idx++
		if idx >= n {
			idx = 0
		}
	}
	reg.setActiveLocked(reg.sessions[idx], idx)
	reg.mu.Unlock()

	reg.r.FlushAll()
}

// Active returns the active session, or nil. The pointer may go stale
// the moment the call returns; queue operations must revalidate via
// PushToActive instead.
func (reg *Registry) Active() *Session {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.active
}

// ActiveIndex returns the active session's display index.
func (reg *Registry) ActiveIndex() (int, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if reg.active == nil {
		return 0, false
	}
	return reg.activeIdx, true
}

// IndexOf returns the current display index of the given identity.
func (reg *Registry) IndexOf(id uuid.UUID) (int, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	i := reg.indexOfLocked(id)
	return i, i >= 0
}

// PushToActive atomically resolves the active console and pushes the
// whole sequence into its input queue. It returns false when there is
// no active console (input is dropped, not buffered) or when the queue
// lacks space for the full sequence. Input landing on an empty queue
// flags the console for a scroll reset.
func (reg *Registry) PushToActive(seq []byte) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	s := reg.active
	if s == nil {
		return false
	}
	if s.queue.Len() == 0 {
		s.markResetScroll()
	}
	return s.queue.Push(seq)
}

// RouteKey decodes a key press with the active console's keymap and
// pushes the resulting byte sequence into its input queue. Resolving
// the active console, decoding, and pushing all happen under one lock
// acquisition, so a concurrent console switch can never split them.
// It returns false when there is no active console or the sequence was
// dropped for lack of queue space.
func (reg *Registry) RouteKey(c key.Code, mods key.Modifiers) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	s := reg.active
	if s == nil {
		return false
	}

	var buf [key.SequenceMax]byte
	n := key.Decode(c, mods, s.keymap, buf[:])
	if n == 0 {
		return true
	}
	if s.queue.Len() == 0 {
		s.markResetScroll()
	}
	return s.queue.Push(buf[:n])
}

// SetBattery updates the shared battery record.
func (reg *Registry) SetBattery(info BatteryInfo) {
	reg.mu.Lock()
	reg.battery = info
	reg.mu.Unlock()
}

// Battery returns the shared battery record.
func (reg *Registry) Battery() BatteryInfo {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.battery
}

// setActiveLocked flips the active flag from the old session to the
// new one and clears the new session's unread marker. Callers hold the
// registry lock.
func (reg *Registry) setActiveLocked(s *Session, index int) {
	if reg.active != nil {
		reg.active.setActive(false)
	}
	s.setActive(true)
	reg.active = s
	reg.activeIdx = index
}

// indexOfLocked scans for an identity. Display indices are positions,
// never stored, so a scan is the lookup.
func (reg *Registry) indexOfLocked(id uuid.UUID) int {
	for i, s := range reg.sessions {
		if s.id == id {
			return i
		}
	}
	return -1
}
