// SPDX-License-Identifier: MIT

// Package score rates how row-coherent a grayscale matrix looks.
//
// Two scorers share one hypothesis: adjacent rows of a natural image vary
// smoothly, so a correctly ordered reconstruction scores better than a
// scrambled one.
//
//   - Pearson:   mean correlation of adjacent rows, higher is better.
//   - Euclidean: summed distance of adjacent rows, lower is better.
//
// The comparison direction lives on Method (Better, Worst), so callers never
// hard-code it.
//
// Exactness:
//
//	All sums (Σx, Σy, Σx², Σy², Σxy, Σ(x−y)²) are accumulated as int64, which is
//	exact for 8-bit samples. Correlations and distances are derived from these
//	integers with one fixed sequence of float operations, so every evaluation
//	path (direct scoring, Table lookups, any worker) returns bit-identical
//	results, and PearsonCorrelation(a, b) == PearsonCorrelation(b, a) exactly.
//
// Table precomputes every pairwise dot product of a matrix once, turning each
// candidate score into O(rows) lookups; it is what makes the 32768-key scan
// cheap.
package score
