// SPDX-License-Identifier: MIT

package score

import (
	"math"
	"strings"

	"github.com/katalvlaran/rowcrypt/gray"
)

// Method selects a coherence scorer and, with it, the comparison direction.
type Method int

const (
	// Pearson maximizes the mean adjacent-row correlation.
	Pearson Method = iota

	// Euclidean minimizes the summed adjacent-row distance.
	Euclidean
)

// Method names accepted by ParseMethod. "euclidienne" is kept as an alias of
// "euclidean" for existing scripts.
const (
	namePearson     = "pearson"
	nameEuclidean   = "euclidean"
	nameEuclidienne = "euclidienne"
)

// Methods lists every scorer, in declaration order.
func Methods() []Method { return []Method{Pearson, Euclidean} }

// ParseMethod maps a case-insensitive name to a Method.
//
// Errors:
//   - ErrUnknownMethod for any other name.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case namePearson:
		return Pearson, nil
	case nameEuclidean, nameEuclidienne:
		return Euclidean, nil
	default:
		return 0, scoreErrorf(opParseMethod, ErrUnknownMethod)
	}
}

// Valid reports whether m is a known scorer.
func (m Method) Valid() bool {
	return m == Pearson || m == Euclidean
}

// String returns the canonical lower-case name.
func (m Method) String() string {
	switch m {
	case Pearson:
		return namePearson
	case Euclidean:
		return nameEuclidean
	default:
		return "unknown"
	}
}

// Better reports whether score a is strictly better than b under m.
// Equal scores are never better, which keeps the first of tied candidates.
func (m Method) Better(a, b float64) bool {
	if m == Euclidean {
		return a < b
	}
	return a > b
}

// Worst returns the starting value for a best-so-far tracker: any real score
// is Better than it.
func (m Method) Worst() float64 {
	if m == Euclidean {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// Score rates g with the selected scorer.
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//   - ErrUnknownMethod for an invalid Method.
func (m Method) Score(g *gray.Matrix) (float64, error) {
	if g == nil {
		return 0, scoreErrorf(opScore, ErrNilMatrix)
	}
	switch m {
	case Pearson:
		return PearsonScore(g), nil
	case Euclidean:
		return EuclideanScore(g), nil
	default:
		return 0, scoreErrorf(opScore, ErrUnknownMethod)
	}
}
