// Package devwatch discovers keyboard device nodes. It scans an input
// directory once, then watches it for newly created nodes; every node
// that probes as a keyboard gets its own router goroutine. The watcher
// is the only component stopped by context cancellation; the routers it
// spawns run until their device disappears.
package devwatch
