package console

import (
	"strconv"
	"strings"
)

// SGR fragments used in the status line. The active console's entry is
// drawn bold cyan; every fragment ends with a reset.
const (
	sgrActive = "\x1b[36m\x1b[1m"
	sgrReset  = "\x1b[m"
)

// StatusLine composes the status text: one fragment per session in
// display order, the active one highlighted, with unread-input and
// scrollback markers, then the battery state. Output stops once the
// requested width of visible characters is filled, so the result is
// bounded regardless of session count.
func (reg *Registry) StatusLine(width int) string {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var b strings.Builder
	left := width

	for i, s := range reg.sessions {
		if left <= 0 {
			break
		}
		title, active, unread, scrollUp, scrollDown := s.statusSnapshot()

		if active {
			b.WriteString(sgrActive)
		}
		var frag strings.Builder
		frag.WriteByte('[')
		frag.WriteString(strconv.Itoa(i))
		frag.WriteString("] ")
		frag.WriteString(title)
		frag.WriteByte(marker(unread, '*'))
		frag.WriteString("    ")
		frag.WriteByte(marker(scrollUp, '<'))
		frag.WriteByte(marker(scrollDown, '>'))
		frag.WriteByte(' ')

		left -= writeClipped(&b, frag.String(), left)
		b.WriteString(sgrReset)
	}

	if bat := reg.batteryTextLocked(); bat != "" && left >= len(bat) {
		b.WriteString(bat)
	}
	return b.String()
}

// writeClipped writes at most limit bytes of s and returns the count.
func writeClipped(b *strings.Builder, s string, limit int) int {
	if len(s) > limit {
		s = s[:limit]
	}
	b.WriteString(s)
	return len(s)
}

func marker(on bool, ch byte) byte {
	if on {
		return ch
	}
	return ' '
}

// batteryTextLocked formats the battery record for the status line.
// Callers hold the registry lock.
func (reg *Registry) batteryTextLocked() string {
	switch reg.battery.State {
	case BatteryCharging:
		return "c" + strconv.Itoa(reg.battery.Pct) + "%"
	case BatteryNotCharging:
		return strconv.Itoa(reg.battery.Pct) + "%"
	case BatteryError:
		return "b:err"
	default:
		return ""
	}
}
