// Package queue provides the bounded per-console input buffer.
//
// Pushes are all-or-nothing: a decoded key's byte sequence is either
// written in full or rejected in full, so a reader never sees a
// truncated escape sequence. When the queue is full new input is
// dropped rather than blocking the router; lost keystrokes are
// preferred over a stalled input thread.
package queue
