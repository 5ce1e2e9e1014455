package term

// DefaultScrollback is the default scrollback depth in rows.
const DefaultScrollback = 1024

const tabStop = 8

// parser states for escape handling.
type parseState int

const (
	stateNormal parseState = iota
	stateEscape
	stateCSI
)

// Grid is the built-in Engine: a flat character grid with wrapping,
// scrolling and a bounded scrollback ring.
type Grid struct {
	cols, rows int
	cells      []Cell // rows*cols, row-major

	x, y int

	scrollback [][]Cell // ring, oldest at sbHead
	sbHead     int
	sbLen      int

	state parseState

	onRow func(int)
}

// NewGrid returns a cleared grid with the given dimensions and the
// default scrollback depth.
func NewGrid(cols, rows int) *Grid {
	return NewGridScrollback(cols, rows, DefaultScrollback)
}

// NewGridScrollback returns a cleared grid with an explicit scrollback
// depth. Depth 0 disables scrollback.
func NewGridScrollback(cols, rows, depth int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if depth < 0 {
		depth = 0
	}
	g := &Grid{
		cols:       cols,
		rows:       rows,
		cells:      blankRowBuf(cols * rows),
		scrollback: make([][]Cell, depth),
	}
	return g
}

func blankRowBuf(n int) []Cell {
	buf := make([]Cell, n)
	for i := range buf {
		buf[i] = Cell{Ch: ' ', FG: DefaultFG, BG: DefaultBG}
	}
	return buf
}

// OnRowTouched implements Engine.
func (g *Grid) OnRowTouched(fn func(int)) { g.onRow = fn }

// Size implements Engine.
func (g *Grid) Size() (int, int) { return g.cols, g.rows }

// Cursor implements Engine.
func (g *Grid) Cursor() (int, int) { return g.x, g.y }

// Row implements Engine.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.rows {
		return nil
	}
	return g.cells[y*g.cols : (y+1)*g.cols]
}

// ScrollbackLen implements Engine.
func (g *Grid) ScrollbackLen() int { return g.sbLen }

// ScrollbackRow implements Engine.
func (g *Grid) ScrollbackRow(i int) []Cell {
	if i < 0 || i >= g.sbLen {
		return nil
	}
	return g.scrollback[(g.sbHead+i)%len(g.scrollback)]
}

// Resize implements Engine. Content in the surviving rectangle is
// preserved; the cursor is clamped into bounds.
func (g *Grid) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols == g.cols && rows == g.rows {
		return
	}

	next := blankRowBuf(cols * rows)
	copyRows := g.rows
	if rows < copyRows {
		copyRows = rows
	}
	copyCols := g.cols
	if cols < copyCols {
		copyCols = cols
	}
	for y := 0; y < copyRows; y++ {
		copy(next[y*cols:y*cols+copyCols], g.cells[y*g.cols:y*g.cols+copyCols])
	}
	g.cells = next
	g.cols, g.rows = cols, rows

	if g.x >= cols {
		g.x = cols - 1
	}
	if g.y >= rows {
		g.y = rows - 1
	}
	for y := 0; y < rows; y++ {
		g.touch(y)
	}
}

// PutByte implements Engine.
func (g *Grid) PutByte(b byte) {
	switch g.state {
	case stateEscape:
		switch {
		case b == '[':
			g.state = stateCSI
		case b >= 0x20 && b <= 0x2f:
			// Intermediate byte; the final byte is still coming.
		default:
			// Final byte of a non-CSI escape; consumed without effect.
			g.state = stateNormal
		}
		return
	case stateCSI:
		// Parameter and intermediate bytes run until a final byte.
		if b >= 0x40 && b <= 0x7e {
			g.state = stateNormal
		}
		return
	}

	switch b {
	case 0x1b:
		g.state = stateEscape
	case '\n':
		g.lineFeed()
	case '\r':
		g.x = 0
	case '\b':
		if g.x > 0 {
			g.x--
		}
	case '\t':
		g.x = (g.x/tabStop + 1) * tabStop
		if g.x >= g.cols {
			g.x = g.cols - 1
		}
	case 0x07:
		// bell, ignored
	default:
		if b >= 0x20 && b < 0x7f {
			g.putChar(b)
		}
	}
}

func (g *Grid) putChar(b byte) {
	if g.x >= g.cols {
		g.x = 0
		g.lineFeed()
	}
	g.cells[g.y*g.cols+g.x] = Cell{Ch: b, FG: DefaultFG, BG: DefaultBG}
	g.touch(g.y)
	g.x++
}

func (g *Grid) lineFeed() {
	g.x = 0
	if g.y+1 < g.rows {
		g.y++
		return
	}
	g.scrollUp()
}

// scrollUp shifts the screen up one row, pushing the evicted top row
// into the scrollback ring. Every row moves, so every row is damaged.
func (g *Grid) scrollUp() {
	if len(g.scrollback) > 0 {
		evicted := make([]Cell, g.cols)
		copy(evicted, g.cells[:g.cols])
		slot := (g.sbHead + g.sbLen) % len(g.scrollback)
		g.scrollback[slot] = evicted
		if g.sbLen < len(g.scrollback) {
			g.sbLen++
		} else {
			g.sbHead = (g.sbHead + 1) % len(g.scrollback)
		}
	}

	copy(g.cells, g.cells[g.cols:])
	blank := blankRowBuf(g.cols)
	copy(g.cells[(g.rows-1)*g.cols:], blank)
	for y := 0; y < g.rows; y++ {
		g.touch(y)
	}
}

func (g *Grid) touch(y int) {
	if g.onRow != nil {
		g.onRow(y)
	}
}
