package key

import (
	"errors"
	"testing"
)

func TestQWERTYMap(t *testing.T) {
	km := QWERTY()
	tests := []struct {
		code  Code
		shift bool
		want  byte
	}{
		{CodeA, false, 'a'},
		{CodeA, true, 'A'},
		{CodeZ, false, 'z'},
		{Code2, false, '2'},
		{Code2, true, '@'},
		{CodeGrave, true, '~'},
		{CodeEnter, false, 0},  // named key, not printable
		{CodeEscape, false, 0}, // named key, not printable
		{CodeLeftShift, false, 0},
		{CodeF1, false, 0},
	}

	for _, tt := range tests {
		if got := km.Map(tt.code, tt.shift); got != tt.want {
			t.Errorf("Map(%v, shift=%v) = %q, want %q", tt.code, tt.shift, got, tt.want)
		}
	}
}

func TestMapOutOfRange(t *testing.T) {
	km := QWERTY()
	if got := km.Map(CodeLeftCtrl, false); got != 0 {
		t.Errorf("Map(LeftCtrl) = %q, want 0", got)
	}
	if got := km.Map(Code(0xff), false); got != 0 {
		t.Errorf("Map(0xff) = %q, want 0", got)
	}
}

func TestParseKeymapOverlay(t *testing.T) {
	data := []byte(`
name: test-swap
mappings:
  - code: 0x04 # A key
    base: q
    shifted: Q
`)
	km, err := ParseKeymap(data)
	if err != nil {
		t.Fatalf("ParseKeymap() error = %v", err)
	}
	if km.Name() != "test-swap" {
		t.Errorf("Name() = %q, want %q", km.Name(), "test-swap")
	}
	if got := km.Map(CodeA, false); got != 'q' {
		t.Errorf("overlay Map(A) = %q, want 'q'", got)
	}
	if got := km.Map(CodeA, true); got != 'Q' {
		t.Errorf("overlay Map(A, shift) = %q, want 'Q'", got)
	}
	// Untouched keys keep the QWERTY mapping.
	if got := km.Map(CodeB, false); got != 'b' {
		t.Errorf("overlay Map(B) = %q, want 'b'", got)
	}
}

func TestParseKeymapErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"missing name", "mappings: []", ErrKeymapUnnamed},
		{"modifier code", "name: bad\nmappings:\n  - code: 0xe0\n    base: x", ErrKeymapBadCode},
		{"out of range", "name: bad\nmappings:\n  - code: 0x90\n    base: x", ErrKeymapBadCode},
	}

	for _, tt := range tests {
		if _, err := ParseKeymap([]byte(tt.data)); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: ParseKeymap() error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestModifierFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Modifiers
	}{
		{CodeLeftShift, ModLeftShift},
		{CodeRightShift, ModRightShift},
		{CodeLeftAlt, ModLeftAlt},
		{CodeRightAlt, ModRightAlt},
		{CodeLeftCtrl, ModLeftCtrl},
		{CodeRightCtrl, ModRightCtrl},
		{CodeLeftGUI, ModNone}, // GUI keys carry no modifier semantics here
		{CodeA, ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromCode(tt.code); got != tt.want {
			t.Errorf("ModifierFromCode(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
