package key

import "errors"

// Sentinel errors for keymap loading.
var (
	// ErrKeymapUnnamed is returned when a keymap file has no name field.
	ErrKeymapUnnamed = errors.New("keymap file has no name")

	// ErrKeymapBadCode is returned when a keymap entry targets a
	// modifier or out-of-range keycode.
	ErrKeymapBadCode = errors.New("keymap entry has invalid keycode")
)
