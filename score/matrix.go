// SPDX-License-Identifier: MIT

package score

import "github.com/katalvlaran/rowcrypt/gray"

// PearsonScore returns the arithmetic mean of PearsonCorrelation over the
// rows−1 adjacent pairs of m, in row order. It returns 0 for a nil matrix or
// fewer than two rows. Higher is more coherent.
//
// Complexity: O(rows·cols).
func PearsonScore(m *gray.Matrix) float64 {
	if m == nil || m.Rows() < 2 {
		return 0
	}
	var total float64
	var i int
	for i = 0; i < m.Rows()-1; i++ {
		total += PearsonCorrelation(m.Row(i), m.Row(i+1))
	}
	return total / float64(m.Rows()-1)
}

// EuclideanScore returns the sum (not the mean) of EuclideanDistance over the
// adjacent pairs of m, in row order. It returns 0 for a nil matrix or fewer
// than two rows. Lower is more coherent.
//
// Rows of a gray.Matrix always share one length, so no pair can fail.
//
// Complexity: O(rows·cols).
func EuclideanScore(m *gray.Matrix) float64 {
	if m == nil || m.Rows() < 2 {
		return 0
	}
	var total float64
	var i int
	for i = 0; i < m.Rows()-1; i++ {
		d, _ := EuclideanDistance(m.Row(i), m.Row(i+1))
		total += d
	}
	return total
}
