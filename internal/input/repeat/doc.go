// Package repeat implements the key-repeat state machine for one input
// stream.
//
// The machine decides how long the router's next wait may block. While
// no repeat is due it waits forever. After a report that newly presses
// a non-modifier key it arms a low-frequency timeout; each expiry
// synthesizes a repeat and shrinks the interval toward a high-frequency
// floor. Any report that releases a key disarms the timer, so a repeat
// never fires through a release event.
package repeat
