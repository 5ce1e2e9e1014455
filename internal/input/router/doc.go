// Package router runs the per-keyboard input loop: it reads raw
// reports, diffs them into key transitions, intercepts the console
// hot-keys, and feeds everything else through the key decoder into the
// active console's input queue.
//
// One router goroutine serves one report source. Routers are not
// cancelled from outside; a router exits when its source returns a
// read error or ends, which is also how device removal is detected.
package router
