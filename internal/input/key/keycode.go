package key

import "fmt"

// Code is a USB HID usage code from the keyboard usage page.
type Code uint8

// Keyboard usage codes (HID usage page 0x07).
const (
	CodeNone Code = 0x00

	CodeA Code = 0x04
	CodeB Code = 0x05
	CodeC Code = 0x06
	CodeD Code = 0x07
	CodeE Code = 0x08
	CodeF Code = 0x09
	CodeG Code = 0x0a
	CodeH Code = 0x0b
	CodeI Code = 0x0c
	CodeJ Code = 0x0d
	CodeK Code = 0x0e
	CodeL Code = 0x0f
	CodeM Code = 0x10
	CodeN Code = 0x11
	CodeO Code = 0x12
	CodeP Code = 0x13
	CodeQ Code = 0x14
	CodeR Code = 0x15
	CodeS Code = 0x16
	CodeT Code = 0x17
	CodeU Code = 0x18
	CodeV Code = 0x19
	CodeW Code = 0x1a
	CodeX Code = 0x1b
	CodeY Code = 0x1c
	CodeZ Code = 0x1d

	Code1 Code = 0x1e
	Code2 Code = 0x1f
	Code3 Code = 0x20
	Code4 Code = 0x21
	Code5 Code = 0x22
	Code6 Code = 0x23
	Code7 Code = 0x24
	Code8 Code = 0x25
	Code9 Code = 0x26
	Code0 Code = 0x27

	CodeEnter      Code = 0x28
	CodeEscape     Code = 0x29
	CodeBackspace  Code = 0x2a
	CodeTab        Code = 0x2b
	CodeSpace      Code = 0x2c
	CodeMinus      Code = 0x2d
	CodeEqual      Code = 0x2e
	CodeLeftBrace  Code = 0x2f
	CodeRightBrace Code = 0x30
	CodeBackslash  Code = 0x31
	CodeSemicolon  Code = 0x33
	CodeApostrophe Code = 0x34
	CodeGrave      Code = 0x35
	CodeComma      Code = 0x36
	CodeDot        Code = 0x37
	CodeSlash      Code = 0x38
	CodeCapsLock   Code = 0x39

	CodeF1  Code = 0x3a
	CodeF2  Code = 0x3b
	CodeF3  Code = 0x3c
	CodeF4  Code = 0x3d
	CodeF5  Code = 0x3e
	CodeF6  Code = 0x3f
	CodeF7  Code = 0x40
	CodeF8  Code = 0x41
	CodeF9  Code = 0x42
	CodeF10 Code = 0x43
	CodeF11 Code = 0x44
	CodeF12 Code = 0x45

	CodePrintScreen Code = 0x46
	CodeScrollLock  Code = 0x47
	CodePause       Code = 0x48
	CodeInsert      Code = 0x49
	CodeHome        Code = 0x4a
	CodePageUp      Code = 0x4b
	CodeDelete      Code = 0x4c
	CodeEnd         Code = 0x4d
	CodePageDown    Code = 0x4e
	CodeRight       Code = 0x4f
	CodeLeft        Code = 0x50
	CodeDown        Code = 0x51
	CodeUp          Code = 0x52

	CodeNumLock    Code = 0x53
	CodeKPDivide   Code = 0x54
	CodeKPMultiply Code = 0x55
	CodeKPSubtract Code = 0x56
	CodeKPAdd      Code = 0x57
	CodeKPEnter    Code = 0x58
	CodeKP1        Code = 0x59
	CodeKP2        Code = 0x5a
	CodeKP3        Code = 0x5b
	CodeKP4        Code = 0x5c
	CodeKP5        Code = 0x5d
	CodeKP6        Code = 0x5e
	CodeKP7        Code = 0x5f
	CodeKP8        Code = 0x60
	CodeKP9        Code = 0x61
	CodeKP0        Code = 0x62
	CodeKPDot      Code = 0x63

	CodeLeftCtrl   Code = 0xe0
	CodeLeftShift  Code = 0xe1
	CodeLeftAlt    Code = 0xe2
	CodeLeftGUI    Code = 0xe3
	CodeRightCtrl  Code = 0xe4
	CodeRightShift Code = 0xe5
	CodeRightAlt   Code = 0xe6
	CodeRightGUI   Code = 0xe7
)

// IsModifier returns true for the modifier usage range (LeftCtrl..RightGUI).
func (c Code) IsModifier() bool {
	return c >= CodeLeftCtrl && c <= CodeRightGUI
}

// IsFunctionKey returns true for F1-F12.
func (c Code) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF12
}

// String returns a human-readable name for the keycode.
func (c Code) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + (c - CodeA)))
	case c >= Code1 && c <= Code9:
		return string(rune('1' + (c - Code1)))
	case c == Code0:
		return "0"
	case c.IsFunctionKey():
		return fmt.Sprintf("F%d", c-CodeF1+1)
	}
	switch c {
	case CodeNone:
		return "None"
	case CodeEnter:
		return "Enter"
	case CodeEscape:
		return "Escape"
	case CodeBackspace:
		return "Backspace"
	case CodeTab:
		return "Tab"
	case CodeSpace:
		return "Space"
	case CodeInsert:
		return "Insert"
	case CodeHome:
		return "Home"
	case CodePageUp:
		return "PageUp"
	case CodeDelete:
		return "Delete"
	case CodeEnd:
		return "End"
	case CodePageDown:
		return "PageDown"
	case CodeRight:
		return "Right"
	case CodeLeft:
		return "Left"
	case CodeDown:
		return "Down"
	case CodeUp:
		return "Up"
	case CodeLeftCtrl:
		return "LeftCtrl"
	case CodeLeftShift:
		return "LeftShift"
	case CodeLeftAlt:
		return "LeftAlt"
	case CodeLeftGUI:
		return "LeftGUI"
	case CodeRightCtrl:
		return "RightCtrl"
	case CodeRightShift:
		return "RightShift"
	case CodeRightAlt:
		return "RightAlt"
	case CodeRightGUI:
		return "RightGUI"
	default:
		return fmt.Sprintf("Code(0x%02x)", uint8(c))
	}
}
