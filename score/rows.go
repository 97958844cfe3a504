// SPDX-License-Identifier: MIT

package score

import "math"

// PearsonCorrelation returns the sample correlation coefficient of a and b
// over matching columns:
//
//	(nΣxy − ΣxΣy) / (sqrt(nΣx² − (Σx)²) · sqrt(nΣy² − (Σy)²))
//
// which equals (Σxy − n·x̄·ȳ) / (sqrt(Σx² − n·x̄²) · sqrt(Σy² − n·ȳ²)).
//
// MAIN DESCRIPTION:
//   - Linear coherence of two neighbor rows; +1 for rows that rise and fall
//     together, 0 for unrelated or flat rows.
//
// Implementation:
//   - Stage 1: neutral 0 for empty or length-mismatched rows.
//   - Stage 2: one pass accumulating Σx, Σy, Σx², Σy², Σxy in int64 (exact
//     for any row shorter than 2^40 pixels).
//   - Stage 3: correlation() turns the moments into the coefficient.
//
// Behavior highlights:
//   - Degenerate pairs score 0 instead of failing: different lengths, empty
//     rows, or a row with zero variance.
//   - Exactly symmetric, and bit-identical to Table.ScoreOrder for the
//     same pair.
//
// Complexity:
//   - Time O(len(a)), Space O(1).
func PearsonCorrelation(a, b []uint8) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}
	b = b[:n]

	var sx, sy, sxx, syy, sxy int64
	var x, y int64
	for i := range a {
		x, y = int64(a[i]), int64(b[i])
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	return correlation(int64(n), sx, sy, sxx, syy, sxy)
}

// EuclideanDistance returns sqrt(Σ(x−y)²) over matching columns.
//
// Errors:
//   - ErrSizeMismatch when len(a) != len(b).
func EuclideanDistance(a, b []uint8) (float64, error) {
	if len(a) != len(b) {
		return 0, scoreErrorf(opEuclideanDistance, ErrSizeMismatch)
	}
	b = b[:len(a)]

	var sum, d int64
	for i := range a {
		d = int64(a[i]) - int64(b[i])
		sum += d * d
	}
	return distance(sum), nil
}

// correlation turns exact integer moments into a Pearson coefficient.
// The float steps are fixed so every caller gets the same bits.
func correlation(n, sx, sy, sxx, syy, sxy int64) float64 {
	vx := n*sxx - sx*sx
	vy := n*syy - sy*sy
	if vx == 0 || vy == 0 {
		return 0
	}
	cov := n*sxy - sx*sy
	return float64(cov) / (math.Sqrt(float64(vx)) * math.Sqrt(float64(vy)))
}

// distance turns an exact squared distance into a Euclidean distance.
func distance(sq int64) float64 {
	return math.Sqrt(float64(sq))
}
