// Package term defines the terminal-emulation contract the console
// write path feeds, plus a basic character-grid implementation.
//
// The engine consumes output one byte at a time and reports which grid
// row each byte touched through a side channel; the write path turns
// those row touches into a dirty region for the renderer. The built-in
// Grid handles printable bytes, the common control bytes, wrapping and
// scrollback. It deliberately does not implement a full escape-sequence
// grammar; unrecognized escape sequences are consumed without effect.
package term
