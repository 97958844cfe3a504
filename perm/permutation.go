// SPDX-License-Identifier: MIT

// Package perm - permutation generation and structural checks.
//
// This file provides:
//   - Generate / GenerateSR: the linear-congruential row mapping.
//   - Inverse: inv[p[i]] = i, strict (fails on collisions).
//   - Validate / Collisions / IsBijective: bijectivity diagnostics.
//   - Equivalent / Canonical / Mirror: relations between keys for a fixed n.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n) time for per-permutation helpers; key-space helpers scan at most KeySpace keys.
package perm

// Permutation maps a destination row index to a source row index.
// A Permutation produced by Generate is a bijection on {0..n-1} only when
// gcd(2s+1, n) == 1.
type Permutation []int

// Len returns the number of rows the permutation addresses.
func (p Permutation) Len() int { return len(p) }

// Generate builds the permutation of n rows for key.
// It is GenerateSR(n, key.Step(), key.Offset()).
func Generate(n int, key Key) (Permutation, error) {
	return GenerateSR(n, key.Step(), key.Offset())
}

// GenerateSR builds perm[i] = (r + (2s+1)·i) mod n.
//
// MAIN DESCRIPTION:
//   - The linear-congruential row mapping behind every key: stride 2s+1,
//     start r, both taken modulo the row count.
//
// Implementation:
//   - Stage 1: reject n <= 0 (ErrInvalidSize).
//   - Stage 2: allocate n entries and fill them with FillSR, which walks
//     v += stride with a conditional subtract instead of a multiply and mod.
//
// Behavior highlights:
//   - s and r are not range-checked; they are folded modulo n, and negative
//     values are normalized into [0, n). Callers may sweep s and r
//     independently before combining them into one key.
//   - Bijectivity is not verified; collisions come back as repeated entries
//     (see IsBijective, Collisions).
//
// Inputs:
//   - n: row count.
//   - s, r: step and offset.
//
// Returns:
//   - Permutation: destination row -> source row, length n.
//
// Complexity:
//   - Time O(n), Space O(n).
func GenerateSR(n, s, r int) (Permutation, error) {
	if n <= 0 {
		return nil, permErrorf(opGenerate, ErrInvalidSize)
	}
	p := make(Permutation, n)
	FillSR(p, s, r)
	return p, nil
}

// FillSR writes the permutation for (s, r) into p, using len(p) as n.
// It allocates nothing and is the hot-path form of GenerateSR; an empty p is
// left untouched.
func FillSR(p Permutation, s, r int) {
	n := len(p)
	if n == 0 {
		return
	}
	stride := mod(2*s+1, n)
	v := mod(r, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = v
		// v < n and stride < n, so v+stride never overflows.
		v += stride
		if v >= n {
			v -= n
		}
	}
}

// Inverse returns inv with inv[p[i]] = i.
//
// Policy: the inverse is only defined for a bijection. Any duplicate or
// out-of-range destination fails with ErrNotBijective instead of leaving
// unwritten slots behind.
//
// Complexity: O(n) time, O(n) space.
func Inverse(p Permutation) (Permutation, error) {
	n := len(p)
	inv := make(Permutation, n)
	for i := range inv {
		inv[i] = -1
	}

	var i, v int
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n || inv[v] != -1 {
			return nil, permErrorf(opInverse, ErrNotBijective)
		}
		inv[v] = i
	}
	return inv, nil
}

// Validate checks that p is a bijection on {0..len(p)-1}.
// It allocates a single O(n) marker slice.
func Validate(p Permutation) error {
	n := len(p)
	if n == 0 {
		return permErrorf(opValidate, ErrInvalidSize)
	}
	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n || seen[v] {
			return permErrorf(opValidate, ErrNotBijective)
		}
		seen[v] = true
	}
	return nil
}

// Collisions counts destinations that repeat an earlier one. Out-of-range
// values count as collisions too. A bijection has zero collisions.
func Collisions(p Permutation) int {
	n := len(p)
	seen := make([]bool, n)

	var i, v, count int
	for i = 0; i < n; i++ {
		v = p[i]
		if v < 0 || v >= n || seen[v] {
			count++
			continue
		}
		seen[v] = true
	}
	return count
}

// IsBijective reports whether GenerateSR(n, s, r) is a bijection for any r,
// using the criterion gcd(2s+1, n) == 1. It returns false for n <= 0.
func IsBijective(n, s int) bool {
	if n <= 0 {
		return false
	}
	return gcd(mod(2*s+1, n), n) == 1
}

// Equivalent reports whether keys a and b generate the same permutation of
// n rows. Strides and offsets only matter modulo n.
func Equivalent(n int, a, b Key) bool {
	if n <= 0 {
		return false
	}
	return mod(a.Stride(), n) == mod(b.Stride(), n) &&
		mod(a.Offset(), n) == mod(b.Offset(), n)
}

// Canonical returns the lowest key equivalent to k for n rows. Searches that
// keep the first of equally scored keys return canonical keys.
func Canonical(n int, k Key) Key {
	var c Key
	for c = 0; c < k; c++ {
		if Equivalent(n, c, k) {
			return c
		}
	}
	return k
}

// Mirror returns the lowest key whose permutation q satisfies
// q[y] = n-1-p[y] for every y, where p is the permutation of k.
//
// Unscrambling with the mirror key yields the reconstruction of k flipped
// upside down, so every adjacent-row coherence score rates the two keys the
// same (up to floating-point summation order). The second result is false
// when no 15-bit key generates the mirror, which can happen for n > 256.
//
// Complexity: O(KeySpace) time, O(1) space.
func Mirror(n int, k Key) (Key, bool) {
	if n <= 0 {
		return 0, false
	}
	wantStride := mod(-k.Stride(), n)
	wantOffset := mod(n-1-k.Offset(), n)

	var c int
	for c = 0; c < KeySpace; c++ {
		ck := Key(c)
		if mod(ck.Stride(), n) == wantStride && mod(ck.Offset(), n) == wantOffset {
			return ck, true
		}
	}
	return 0, false
}

// mod returns v mod n in [0, n) for n > 0.
func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// gcd returns the greatest common divisor of non-negative a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
