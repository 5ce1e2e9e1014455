package report

import (
	"fmt"

	"github.com/dshills/vcmux/internal/input/key"
)

// Size is the length of a boot-protocol keyboard report:
// one modifier byte, one reserved byte, six keycode slots.
const Size = 8

// rollover is reported in every keycode slot when too many keys are
// held to represent; such reports are ignored slot-by-slot.
const rollover = 0x01

// Parse converts a raw boot-protocol report into a KeySet.
// Reports of the wrong length are rejected; the caller treats that as
// a transient read glitch.
func Parse(buf []byte) (KeySet, error) {
	var ks KeySet
	if len(buf) != Size {
		return ks, fmt.Errorf("%w: got %d bytes, want %d", ErrBadReport, len(buf), Size)
	}

	// Modifier byte: bit i maps to usage 0xe0+i.
	for i := 0; i < 8; i++ {
		if buf[0]&(1<<i) != 0 {
			ks.Set(key.CodeLeftCtrl + key.Code(i))
		}
	}

	for _, kc := range buf[2:] {
		if kc == 0 || kc == rollover {
			continue
		}
		ks.Set(key.Code(kc))
	}
	return ks, nil
}
