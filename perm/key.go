// SPDX-License-Identifier: MIT

package perm

import (
	"strconv"
	"strings"
)

// Key space constants.
const (
	// KeyBits is the width of a scrambling key.
	KeyBits = 15
	// KeyMask keeps the low 15 bits of any supplied key.
	KeyMask = 0x7FFF
	// KeySpace is the number of distinct keys (2^15).
	KeySpace = 1 << KeyBits

	// StepBits is the width of the step sub-field s.
	StepBits = 7
	// StepMask extracts s from a key.
	StepMask = 0x7F
	// StepSpace is the number of distinct steps (2^7).
	StepSpace = 1 << StepBits

	// OffsetSpace is the number of distinct offsets r (2^8).
	OffsetSpace = KeySpace >> StepBits
)

// Key is a 15-bit scrambling key: (offset << 7) | step.
type Key uint16

// NewKey assembles a key from its step s and offset r. Both are masked to
// their bit widths.
func NewKey(s, r int) Key {
	return Key(((r & (OffsetSpace - 1)) << StepBits) | (s & StepMask))
}

// KeyFromInt masks an arbitrary integer to 15 bits.
func KeyFromInt(v int) Key {
	return Key(v & KeyMask)
}

// ParseKey parses a decimal key and masks it to 15 bits, so "32769" yields 1.
// Negative numbers are masked in two's complement, as an int would be.
func ParseKey(s string) (Key, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, permErrorf(opParseKey, ErrBadKey)
	}
	return KeyFromInt(int(v)), nil
}

// Step returns s = key & 0x7F.
func (k Key) Step() int { return int(k) & StepMask }

// Offset returns r = key >> 7.
func (k Key) Offset() int { return int(k&KeyMask) >> StepBits }

// Stride returns the multiplicative stride 2s+1.
func (k Key) Stride() int { return 2*k.Step() + 1 }

// String renders the key as a decimal number.
func (k Key) String() string { return strconv.Itoa(int(k)) }
