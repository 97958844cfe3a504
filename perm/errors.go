// SPDX-License-Identifier: MIT

package perm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a permutation is requested for n <= 0 rows.
	ErrInvalidSize = errors.New("perm: size must be > 0")

	// ErrNotBijective indicates a permutation with duplicate or out-of-range
	// destinations where a bijection on {0..n-1} was required.
	ErrNotBijective = errors.New("perm: permutation is not a bijection")

	// ErrBadKey is returned by ParseKey for text that is not a decimal integer.
	ErrBadKey = errors.New("perm: invalid key")
)

// Operation names for error wrapping.
const (
	opGenerate = "Generate"
	opInverse  = "Inverse"
	opValidate = "Validate"
	opParseKey = "ParseKey"
)

func permErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
