package render

// Renderer is the external rendering collaborator. Coordinates are
// character cells, not pixels. Implementations must tolerate being
// called from multiple goroutines; callers never invoke the renderer
// while holding the registry lock.
type Renderer interface {
	// FlushRegion redraws the given cell rectangle of the active
	// console.
	FlushRegion(x, y, w, h int)

	// FlushAll redraws the entire screen, status line included.
	FlushAll()

	// FlushStatus redraws only the status line.
	FlushStatus()

	// Size returns the display dimensions in cells, including the
	// status row.
	Size() (cols, rows int)
}

// Nop is a Renderer that does nothing, for consoles without a display.
type Nop struct{}

// FlushRegion implements Renderer.
func (Nop) FlushRegion(x, y, w, h int) {}

// FlushAll implements Renderer.
func (Nop) FlushAll() {}

// FlushStatus implements Renderer.
func (Nop) FlushStatus() {}

// Size implements Renderer.
func (Nop) Size() (int, int) { return 80, 25 }
