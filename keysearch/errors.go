// SPDX-License-Identifier: MIT

package keysearch

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("keysearch: nil matrix")

	// ErrUnsupportedStrategy indicates a Strategy value or name that is not known.
	ErrUnsupportedStrategy = errors.New("keysearch: unsupported strategy")

	// ErrUnknownKernel indicates a Kernel value or name that is not known.
	ErrUnknownKernel = errors.New("keysearch: unknown kernel")

	// ErrBadOption indicates a numeric option outside its documented range.
	ErrBadOption = errors.New("keysearch: option out of range")

	// ErrNoCandidates indicates that every candidate of a sweep was skipped.
	ErrNoCandidates = errors.New("keysearch: no candidate evaluated")
)

const (
	opExhaustive     = "Exhaustive"
	opTwoStage       = "TwoStage"
	opSearch         = "Search"
	opParseStrategy  = "ParseStrategy"
	opParseKernel    = "ParseKernel"
	opValidateOption = "validateOptions"
)

func searchErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
