package key

// mapEntry holds the unshifted and shifted character for one keycode.
// A zero byte means the keycode produces no printable character.
type mapEntry struct {
	base    byte
	shifted byte
}

// Keymap translates keycodes into printable characters for the current
// shift state. Keycodes above the printable range always map to zero.
type Keymap struct {
	name    string
	entries [0x64]mapEntry
}

// Name returns the keymap's name.
func (km *Keymap) Name() string { return km.name }

// Map returns the printable character for a keycode under the given
// shift state, or zero if the keycode has no printable mapping.
func (km *Keymap) Map(c Code, shift bool) byte {
	if int(c) >= len(km.entries) {
		return 0
	}
	e := km.entries[c]
	if shift {
		return e.shifted
	}
	return e.base
}

// set assigns both characters for a keycode.
func (km *Keymap) set(c Code, base, shifted byte) {
	if int(c) < len(km.entries) {
		km.entries[c] = mapEntry{base: base, shifted: shifted}
	}
}

// QWERTY returns the built-in US QWERTY keymap.
func QWERTY() *Keymap {
	km := &Keymap{name: "qwerty"}

	for c := CodeA; c <= CodeZ; c++ {
		ch := byte('a' + (c - CodeA))
		km.set(c, ch, ch-'a'+'A')
	}

	digits := []struct {
		code    Code
		base    byte
		shifted byte
	}{
		{Code1, '1', '!'},
		{Code2, '2', '@'},
		{Code3, '3', '#'},
		{Code4, '4', '$'},
		{Code5, '5', '%'},
		{Code6, '6', '^'},
		{Code7, '7', '&'},
		{Code8, '8', '*'},
		{Code9, '9', '('},
		{Code0, '0', ')'},
	}
	for _, d := range digits {
		km.set(d.code, d.base, d.shifted)
	}

	km.set(CodeSpace, ' ', ' ')
	km.set(CodeMinus, '-', '_')
	km.set(CodeEqual, '=', '+')
	km.set(CodeLeftBrace, '[', '{')
	km.set(CodeRightBrace, ']', '}')
	km.set(CodeBackslash, '\\', '|')
	km.set(CodeSemicolon, ';', ':')
	km.set(CodeApostrophe, '\'', '"')
	km.set(CodeGrave, '`', '~')
	km.set(CodeComma, ',', '<')
	km.set(CodeDot, '.', '>')
	km.set(CodeSlash, '/', '?')

	// Keypad digits and operators. NumLock handling is up to the
	// report source; the boot protocol reports these usages directly.
	km.set(CodeKPDivide, '/', '/')
	km.set(CodeKPMultiply, '*', '*')
	km.set(CodeKPSubtract, '-', '-')
	km.set(CodeKPAdd, '+', '+')
	km.set(CodeKP1, '1', '1')
	km.set(CodeKP2, '2', '2')
	km.set(CodeKP3, '3', '3')
	km.set(CodeKP4, '4', '4')
	km.set(CodeKP5, '5', '5')
	km.set(CodeKP6, '6', '6')
	km.set(CodeKP7, '7', '7')
	km.set(CodeKP8, '8', '8')
	km.set(CodeKP9, '9', '9')
	km.set(CodeKP0, '0', '0')
	km.set(CodeKPDot, '.', '.')

	return km
}
