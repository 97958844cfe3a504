// SPDX-License-Identifier: MIT
// Package gray: sentinel error set.
// Every message is prefixed with "gray: ..." and callers match with errors.Is.

package gray

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("gray: invalid shape")

	// ErrRagged indicates that input rows do not all have the same length.
	ErrRagged = errors.New("gray: rows have different lengths")

	// ErrValueOutOfRange indicates a sample outside [0,255].
	ErrValueOutOfRange = errors.New("gray: value outside [0,255]")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Row return this instead of panicking.
	ErrOutOfRange = errors.New("gray: index out of range")

	// ErrNilImage indicates that a nil image.Image was passed to FromImage.
	ErrNilImage = errors.New("gray: nil image")
)
