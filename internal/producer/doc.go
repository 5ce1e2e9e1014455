// Package producer holds the background feeds that write into consoles
// without a client attached: the kernel log reader and the battery
// poller. Each producer is a single goroutine that runs until its
// source fails, then announces the failure once and exits.
package producer
