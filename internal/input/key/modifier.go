package key

import "strings"

// Modifiers is a bitmask of currently held modifier keys.
// Left and right variants are tracked separately so that releasing one
// side does not clear the other.
type Modifiers uint8

const (
	// ModNone means no modifiers are held.
	ModNone Modifiers = 0

	// ModLeftShift is the left shift key.
	ModLeftShift Modifiers = 1 << 0
	// ModRightShift is the right shift key.
	ModRightShift Modifiers = 1 << 1
	// ModLeftAlt is the left alt key.
	ModLeftAlt Modifiers = 1 << 2
	// ModRightAlt is the right alt key.
	ModRightAlt Modifiers = 1 << 3
	// ModLeftCtrl is the left control key.
	ModLeftCtrl Modifiers = 1 << 4
	// ModRightCtrl is the right control key.
	ModRightCtrl Modifiers = 1 << 5

	// ModShift matches either shift key.
	ModShift = ModLeftShift | ModRightShift
	// ModAlt matches either alt key.
	ModAlt = ModLeftAlt | ModRightAlt
	// ModCtrl matches either control key.
	ModCtrl = ModLeftCtrl | ModRightCtrl
)

// ModifierFromCode returns the modifier bit for a modifier keycode,
// or ModNone if the keycode is not a modifier.
func ModifierFromCode(c Code) Modifiers {
	switch c {
	case CodeLeftShift:
		return ModLeftShift
	case CodeRightShift:
		return ModRightShift
	case CodeLeftAlt:
		return ModLeftAlt
	case CodeRightAlt:
		return ModRightAlt
	case CodeLeftCtrl:
		return ModLeftCtrl
	case CodeRightCtrl:
		return ModRightCtrl
	}
	return ModNone
}

// HasShift returns true if either shift key is held.
func (m Modifiers) HasShift() bool { return m&ModShift != 0 }

// HasAlt returns true if either alt key is held.
func (m Modifiers) HasAlt() bool { return m&ModAlt != 0 }

// HasCtrl returns true if either control key is held.
func (m Modifiers) HasCtrl() bool { return m&ModCtrl != 0 }

// String returns a "+"-joined list of held modifiers.
func (m Modifiers) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	return strings.Join(parts, "+")
}
