// SPDX-License-Identifier: MIT

// Package rows reorders the rows of grayscale matrices and color images
// according to a permutation.
//
// Convention:
//
//	Scramble   (gather):  out[y]       = in[perm[y]]
//	Unscramble (scatter): out[perm[y]] = in[y]
//
// Unscramble applies the inverse of the permutation without building it, so
// Unscramble(Scramble(m, p), p) == m for every bijection p. For a
// non-bijective p neither direction fails: Scramble duplicates source rows,
// Unscramble overwrites colliding destinations in ascending y (last write
// wins) and leaves unwritten rows zero.
//
// Inputs are never mutated; every operation returns a fresh copy, except
// UnscrambleInto, which writes into a caller-owned buffer for hot loops.
package rows
