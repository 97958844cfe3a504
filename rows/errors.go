// SPDX-License-Identifier: MIT

package rows

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil matrix or image argument.
	ErrNilInput = errors.New("rows: nil input")

	// ErrSizeMismatch indicates that the permutation length differs from the
	// row count, or that source and destination shapes differ.
	ErrSizeMismatch = errors.New("rows: permutation size does not match row count")

	// ErrOutOfRange indicates a permutation entry outside [0, rows).
	ErrOutOfRange = errors.New("rows: permutation entry out of range")
)

const (
	opScramble       = "Scramble"
	opUnscramble     = "Unscramble"
	opUnscrambleInto = "UnscrambleInto"
	opScrambleImg    = "ScrambleImage"
	opUnscrambleImg  = "UnscrambleImage"
)

func rowsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
