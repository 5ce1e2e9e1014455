// Package backend hosts the multiplexer display on a real terminal via
// tcell. The status line occupies the top row; the active console's
// grid fills the rest, or the whole screen when it is fullscreen.
package backend
