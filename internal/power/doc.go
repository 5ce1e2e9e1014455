// Package power is the narrow gateway to the platform's power
// management. Requests are fire-and-forget: the multiplexer asks once
// and never retries, because the only caller is the reboot hot-key.
package power
