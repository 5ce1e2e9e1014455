// Package app wires the multiplexer together and exposes the client
// surface: Open a console, Read its input, Write its output, Control
// it, Close it. Run starts the background machinery — the keyboard
// device watcher, the platform log feed, and the battery poller.
package app
