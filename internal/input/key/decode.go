package key

// SequenceMax is the longest byte sequence Decode can produce.
// Callers pass a buffer of exactly this size; the bound is a contract,
// and Decode refuses any other buffer length.
const SequenceMax = 4

// Decode converts a key press into its ANSI/VT100 byte sequence and
// returns the number of bytes written into buf. It writes nothing for
// bare modifiers and unmapped keys.
//
// Printable keys come from the keymap; holding Ctrl converts a letter
// to its control code. Named keys map to fixed VT100 sequences of one
// to four bytes.
func Decode(c Code, mods Modifiers, km *Keymap, buf []byte) int {
	if len(buf) != SequenceMax {
		return 0
	}

	if ch := km.Map(c, mods.HasShift()); ch != 0 {
		if mods.HasCtrl() {
			sub := byte('a')
			if mods.HasShift() {
				sub = 'A'
			}
			buf[0] = ch - sub + 1
		} else {
			buf[0] = ch
		}
		return 1
	}

	switch c {
	case CodeEnter, CodeKPEnter:
		buf[0] = '\n'
		return 1
	case CodeBackspace:
		buf[0] = '\b'
		return 1
	case CodeTab:
		buf[0] = '\t'
		return 1
	case CodeEscape:
		buf[0] = 0x1b
		return 1

	case CodeUp:
		return putCSI(buf, 'A')
	case CodeDown:
		return putCSI(buf, 'B')
	case CodeRight:
		return putCSI(buf, 'C')
	case CodeLeft:
		return putCSI(buf, 'D')
	case CodeHome:
		return putCSI(buf, 'H')
	case CodeEnd:
		return putCSI(buf, 'F')

	case CodeDelete:
		return putTilde(buf, '3')
	case CodePageUp:
		return putTilde(buf, '5')
	case CodePageDown:
		return putTilde(buf, '6')
	}

	// Unmapped keys and bare modifiers produce nothing.
	return 0
}

func putCSI(buf []byte, final byte) int {
	buf[0] = 0x1b
	buf[1] = '['
	buf[2] = final
	return 3
}

func putTilde(buf []byte, param byte) int {
	buf[0] = 0x1b
	buf[1] = '['
	buf[2] = param
	buf[3] = '~'
	return 4
}
