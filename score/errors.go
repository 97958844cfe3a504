// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch indicates two rows of different lengths were compared
	// where equal lengths are required (Euclidean distance).
	ErrSizeMismatch = errors.New("score: rows have different lengths")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("score: nil matrix")

	// ErrUnknownMethod indicates a Method value or name that is not a scorer.
	ErrUnknownMethod = errors.New("score: unknown method")

	// ErrRowOutOfRange indicates a row order entry outside [-1, rows).
	ErrRowOutOfRange = errors.New("score: row index out of range")
)

const (
	opEuclideanDistance = "EuclideanDistance"
	opScore             = "Score"
	opParseMethod       = "ParseMethod"
	opNewTable          = "NewTable"
	opScoreOrder        = "Table.ScoreOrder"
)

func scoreErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
