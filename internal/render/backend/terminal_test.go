package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vcmux/internal/term"
)

// gridSource serves a fixed grid and status text.
type gridSource struct {
	rows       []string
	status     string
	fullscreen bool
}

func (s *gridSource) ActiveRow(y int, dst []term.Cell) int {
	if y < 0 || y >= len(s.rows) {
		return 0
	}
	row := s.rows[y]
	n := len(row)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = term.Cell{Ch: row[i], FG: term.DefaultFG, BG: term.DefaultBG}
	}
	return n
}

func (s *gridSource) Status(width int) string { return s.status }
func (s *gridSource) Fullscreen() bool        { return s.fullscreen }

func newSimTerminal(t *testing.T, src Source, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tm := NewTerminalWithScreen(sim, src)
	if err := tm.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	return tm, sim
}

// screenRow extracts the runes of one screen row as a string.
func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func TestTerminalFlushAllLayout(t *testing.T) {
	src := &gridSource{
		rows:   []string{"first", "second"},
		status: "[0] shell",
	}
	tm, sim := newSimTerminal(t, src, 10, 4)
	defer tm.Fini()

	tm.FlushAll()

	if got := screenRow(sim, 0); got != "[0] shell " {
		t.Errorf("status row = %q, want %q", got, "[0] shell ")
	}
	if got := screenRow(sim, 1); got != "first     " {
		t.Errorf("row 1 = %q, want %q", got, "first     ")
	}
	if got := screenRow(sim, 2); got != "second    " {
		t.Errorf("row 2 = %q, want %q", got, "second    ")
	}
}

func TestTerminalFullscreenOwnsTopRow(t *testing.T) {
	src := &gridSource{
		rows:       []string{"covered"},
		status:     "status",
		fullscreen: true,
	}
	tm, sim := newSimTerminal(t, src, 10, 3)
	defer tm.Fini()

	tm.FlushAll()

	if got := screenRow(sim, 0); got != "covered   " {
		t.Errorf("top row = %q, want the console row", got)
	}

	// Status flushes are swallowed while fullscreen.
	tm.FlushStatus()
	if got := screenRow(sim, 0); got != "covered   " {
		t.Errorf("top row after FlushStatus = %q, want unchanged", got)
	}
}

func TestTerminalFlushRegionBand(t *testing.T) {
	src := &gridSource{
		rows:   []string{"aaaa", "bbbb", "cccc"},
		status: "s",
	}
	tm, sim := newSimTerminal(t, src, 6, 5)
	defer tm.Fini()

	tm.FlushRegion(0, 1, 6, 2)

	// Only console rows 1 and 2 were drawn; row 0 is still blank.
	if got := screenRow(sim, 1); got != "      " {
		t.Errorf("untouched row = %q, want blank", got)
	}
	if got := screenRow(sim, 2); got != "bbbb  " {
		t.Errorf("band row = %q, want %q", got, "bbbb  ")
	}
	if got := screenRow(sim, 3); got != "cccc  " {
		t.Errorf("band row = %q, want %q", got, "cccc  ")
	}
}

func TestTerminalStatusHighlight(t *testing.T) {
	src := &gridSource{
		status: "\x1b[36m\x1b[1m[0] sh\x1b[m ok",
	}
	tm, sim := newSimTerminal(t, src, 12, 3)
	defer tm.Fini()

	tm.FlushStatus()

	if got := screenRow(sim, 0); got != "[0] sh ok   " {
		t.Errorf("status row = %q, want %q", got, "[0] sh ok   ")
	}

	cells, _, _ := sim.GetContents()
	fg, _, attrs := cells[0].Style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("highlighted fragment lost its bold attribute")
	}
	if fg != tcell.PaletteColor(6) {
		t.Errorf("highlighted fg = %v, want cyan", fg)
	}
	// Past the reset the plain style returns.
	_, _, attrs = cells[7].Style.Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("reset did not clear bold")
	}
}
