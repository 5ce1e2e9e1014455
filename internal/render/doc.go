// Package render tracks partial-screen damage and defines the contract
// with the external rendering collaborator.
//
// The write path accumulates the touched row band of each write batch
// into a Damage value and flushes exactly that band. Writers to
// background consoles never pay full-frame redraw cost; only a console
// switch or an explicit flush renders the whole screen.
package render
