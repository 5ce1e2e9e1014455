// Package report parses raw keyboard boot-protocol reports into key
// bitmaps and computes press/release transitions between consecutive
// samples.
//
// A report is a snapshot of every key currently held, not an edge
// event. The router keeps the previous sample and diffs each new one
// against it to recover key-down and key-up transitions.
package report
