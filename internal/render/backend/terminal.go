package backend

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vcmux/internal/render"
	"github.com/dshills/vcmux/internal/term"
)

// Source supplies what the terminal draws: the active console's cells,
// the composed status line, and whether the console owns the status
// row.
type Source interface {
	// ActiveRow copies one row of the active console into dst and
	// returns the copied width; 0 when there is no such row.
	ActiveRow(y int, dst []term.Cell) int

	// Status returns the status line, clipped to width, with minimal
	// SGR coloring embedded.
	Status(width int) string

	// Fullscreen reports whether the active console covers the status
	// row.
	Fullscreen() bool
}

// Terminal implements render.Renderer using tcell for terminal output.
type Terminal struct {
	mu      sync.Mutex
	screen  tcell.Screen
	src     Source
	scratch []term.Cell
}

// NewTerminal creates a terminal backend on a real screen. The source
// may be nil at first; flushes are dropped until SetSource.
func NewTerminal(src Source) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, src), nil
}

// NewTerminalWithScreen wraps an existing screen; tests hand in a
// tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen, src Source) *Terminal {
	return &Terminal{screen: screen, src: src}
}

// SetSource binds the display source. Construction order puts the
// terminal before the registry it draws, so the source arrives late.
func (t *Terminal) SetSource(src Source) {
	t.mu.Lock()
	t.src = src
	t.mu.Unlock()
}

// Init takes over the terminal.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

// Size returns the full surface size, status row included.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// FlushRegion redraws a band of console rows.
func (t *Terminal) FlushRegion(x, y, w, h int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.src == nil {
		return
	}
	for row := y; row < y+h; row++ {
		t.drawConsoleRow(row)
	}
	t.screen.Show()
}

// FlushAll redraws the whole surface.
func (t *Terminal) FlushAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.src == nil {
		return
	}
	offset := t.rowOffset()
	if offset > 0 {
		t.drawStatus()
	}
	_, height := t.screen.Size()
	for row := 0; row < height-offset; row++ {
		t.drawConsoleRow(row)
	}
	t.screen.Show()
}

// FlushStatus redraws the status row only. A fullscreen console owns
// that row, so this is a no-op then.
func (t *Terminal) FlushStatus() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.src == nil {
		return
	}
	if t.rowOffset() == 0 {
		return
	}
	t.drawStatus()
	t.screen.Show()
}

// rowOffset is the screen row where console row 0 lands.
func (t *Terminal) rowOffset() int {
	if t.src.Fullscreen() {
		return 0
	}
	return 1
}

// drawConsoleRow blits one console row to its screen position.
func (t *Terminal) drawConsoleRow(row int) {
	width, height := t.screen.Size()
	sy := row + t.rowOffset()
	if sy < 0 || sy >= height {
		return
	}

	if cap(t.scratch) < width {
		t.scratch = make([]term.Cell, width)
	}
	cells := t.scratch[:width]
	n := t.src.ActiveRow(row, cells)

	for x := 0; x < width; x++ {
		if x >= n {
			t.screen.SetContent(x, sy, ' ', nil, tcell.StyleDefault)
			continue
		}
		t.screen.SetContent(x, sy, cellRune(cells[x]), nil, cellStyle(cells[x]))
	}
}

// drawStatus paints the status line, interpreting the embedded SGR
// codes the composer uses for the active-console highlight.
func (t *Terminal) drawStatus() {
	width, _ := t.screen.Size()
	line := t.src.Status(width)

	style := tcell.StyleDefault
	x := 0
	for i := 0; i < len(line) && x < width; {
		if line[i] == 0x1b && i+1 < len(line) && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			style = applySGR(style, line[i+2:j])
			i = j + 1
			continue
		}
		t.screen.SetContent(x, 0, rune(line[i]), nil, style)
		x++
		i++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
}

// applySGR handles the subset of SGR the status composer emits:
// reset, bold, and palette foregrounds.
func applySGR(style tcell.Style, params string) tcell.Style {
	if params == "" {
		return tcell.StyleDefault
	}
	for _, p := range strings.Split(params, ";") {
		switch {
		case p == "" || p == "0":
			style = tcell.StyleDefault
		case p == "1":
			style = style.Bold(true)
		case len(p) == 2 && p[0] == '3' && p[1] >= '0' && p[1] <= '7':
			style = style.Foreground(tcell.PaletteColor(int(p[1] - '0')))
		case p == "39":
			style = style.Foreground(tcell.ColorDefault)
		}
	}
	return style
}

func cellRune(c term.Cell) rune {
	if c.Ch == 0 {
		return ' '
	}
	return rune(c.Ch)
}

func cellStyle(c term.Cell) tcell.Style {
	style := tcell.StyleDefault
	if c.FG != term.DefaultFG {
		style = style.Foreground(tcell.PaletteColor(int(c.FG & 0x0f)))
	}
	if c.BG != term.DefaultBG {
		style = style.Background(tcell.PaletteColor(int(c.BG & 0x0f)))
	}
	return style
}

var _ render.Renderer = (*Terminal)(nil)
