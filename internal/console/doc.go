// Package console implements the virtual console sessions and the
// registry that multiplexes them onto one display.
//
// A Session owns a terminal-emulation engine, a bounded input queue,
// and the dirty-region accumulator for its write path. The Registry
// holds every session in display order, tracks the single active
// session, and serializes all membership and activation changes under
// one global lock.
//
// Lock order is strict: the registry lock is always acquired before
// any session lock, never the reverse. Rendering is triggered after
// the registry lock has been released; no registry operation blocks on
// I/O while holding it.
package console
