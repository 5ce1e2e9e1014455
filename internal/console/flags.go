package console

// Flags is the per-session flag set.
type Flags uint8

const (
	// FlagHasInput marks an inactive console with unread output, shown
	// as an indicator in the status line.
	FlagHasInput Flags = 1 << 0

	// FlagResetScroll requests a viewport reset to the bottom on the
	// next write; set when input arrives on an empty queue.
	FlagResetScroll Flags = 1 << 1

	// FlagFullscreen gives the console the status line's row as well.
	FlagFullscreen Flags = 1 << 2
)

// Has reports whether all bits in f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }
