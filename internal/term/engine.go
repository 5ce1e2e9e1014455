package term

// Default cell colors, indices into the renderer's palette.
const (
	DefaultFG = 0x7
	DefaultBG = 0x0
)

// Cell is one character cell of the grid.
type Cell struct {
	Ch byte
	FG uint8
	BG uint8
}

// Engine is the terminal-emulation collaborator consumed by the
// console write path. Implementations are not safe for concurrent use;
// the owning console serializes access under its own lock.
type Engine interface {
	// PutByte feeds one output byte into the emulator.
	PutByte(b byte)

	// Resize changes the grid dimensions, clamping the cursor.
	Resize(cols, rows int)

	// Size returns the current grid dimensions.
	Size() (cols, rows int)

	// Cursor returns the current cursor position.
	Cursor() (x, y int)

	// Row returns the cells of one on-screen row.
	Row(y int) []Cell

	// ScrollbackLen returns the number of rows available above the
	// screen.
	ScrollbackLen() int

	// ScrollbackRow returns a scrollback row; 0 is the oldest.
	ScrollbackRow(i int) []Cell

	// OnRowTouched installs the damage side channel, invoked with the
	// row index for every on-screen row a byte mutates.
	OnRowTouched(fn func(row int))
}
