package report

import (
	"math/bits"

	"github.com/dshills/vcmux/internal/input/key"
)

// words in the bitmap; 8 x 32 bits covers the full usage range.
// The modifier usages (0xe0..0xe7) all land in the last word.
const setWords = 8

// KeySet is a bitmap of keycodes, one bit per possible usage.
// The zero value is the empty set.
type KeySet struct {
	mask [setWords]uint32
}

// Set adds a keycode to the set.
func (s *KeySet) Set(c key.Code) {
	s.mask[c/32] |= 1 << (c % 32)
}

// Clear removes a keycode from the set.
func (s *KeySet) Clear(c key.Code) {
	s.mask[c/32] &^= 1 << (c % 32)
}

// Contains reports whether the keycode is in the set.
func (s *KeySet) Contains(c key.Code) bool {
	return s.mask[c/32]&(1<<(c%32)) != 0
}

// Any reports whether the set holds any key at all.
func (s *KeySet) Any() bool {
	for _, w := range s.mask {
		if w != 0 {
			return true
		}
	}
	return false
}

// AnyNonModifier reports whether the set holds any key outside the
// modifier word.
func (s *KeySet) AnyNonModifier() bool {
	for _, w := range s.mask[:setWords-1] {
		if w != 0 {
			return true
		}
	}
	return false
}

// Pressed returns the keys present in cur but not in prev.
func Pressed(prev, cur KeySet) KeySet {
	var d KeySet
	for i := range d.mask {
		d.mask[i] = cur.mask[i] &^ prev.mask[i]
	}
	return d
}

// Released returns the keys present in prev but not in cur.
func Released(prev, cur KeySet) KeySet {
	return Pressed(cur, prev)
}

// ForEach calls fn for every key in the set, in ascending keycode
// order.
func (s *KeySet) ForEach(fn func(key.Code)) {
	for i, w := range s.mask {
		for w != 0 {
			bit := bits.TrailingZeros32(w)
			w &^= 1 << bit
			fn(key.Code(i*32 + bit))
		}
	}
}
