// Package key defines HID keycodes, modifier state, and keymaps, and
// converts key presses into the ANSI/VT100 byte sequences a console
// consumer expects.
//
// Decoding is a pure function: given a keycode, the current modifier
// mask, and a keymap, Decode writes at most four bytes. Sequences never
// exceed four bytes; that bound is part of the contract with callers
// that stack-allocate the output buffer.
package key
