package console

import "strconv"

// BatteryState is the charge state reported by the battery poller.
type BatteryState int

const (
	// BatteryUnavailable means no battery source has reported yet.
	BatteryUnavailable BatteryState = iota
	// BatteryNotCharging means the battery is discharging or full.
	BatteryNotCharging
	// BatteryCharging means the battery is charging.
	BatteryCharging
	// BatteryError means the source reported an error state.
	BatteryError
)

// String returns the state name.
func (s BatteryState) String() string {
	switch s {
	case BatteryUnavailable:
		return "unavailable"
	case BatteryNotCharging:
		return "not-charging"
	case BatteryCharging:
		return "charging"
	case BatteryError:
		return "error"
	default:
		return "unknown"
	}
}

// BatteryInfo is the shared battery record, updated by the poller and
// read by the status-line composer. It lives under the registry lock
// for simplicity, not for any logical coupling with the session list.
type BatteryInfo struct {
	State BatteryState
	Pct   int
}

// ParseBattery decodes a raw battery source string: "e" reports an
// error state, a "c" prefix means charging followed by the percentage,
// anything else is a bare percentage.
func ParseBattery(s string) BatteryInfo {
	if len(s) == 0 {
		return BatteryInfo{State: BatteryUnavailable, Pct: -1}
	}
	switch s[0] {
	case 'e':
		return BatteryInfo{State: BatteryError, Pct: -1}
	case 'c':
		pct, _ := strconv.Atoi(trimDigits(s[1:]))
		return BatteryInfo{State: BatteryCharging, Pct: pct}
	default:
		pct, _ := strconv.Atoi(trimDigits(s))
		return BatteryInfo{State: BatteryNotCharging, Pct: pct}
	}
}

// trimDigits returns the leading digit run of s.
func trimDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
