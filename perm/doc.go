// SPDX-License-Identifier: MIT

// Package perm generates the key-driven row permutations used to scramble
// images, and answers structural questions about them.
//
// Key layout (15 bits):
//
//	key = (r << 7) | s      s = key & 0x7F (step, 7 bits), r = key >> 7 (offset, 8 bits)
//
// Permutation formula for n rows:
//
//	perm[i] = (r + (2s+1)·i) mod n
//
// The stride 2s+1 is odd, so the mapping is a bijection whenever n is a
// power of two. For other n it is a bijection iff gcd(2s+1, n) == 1;
// Generate does not check this. Collisions are a tolerated degenerate case;
// use Validate, Collisions or IsBijective to detect them.
//
// Because s and r are folded modulo n, distinct keys can produce the same
// permutation when n < 256 (see Equivalent and Canonical). Every permutation
// also has a mirror, the same rows listed backwards (see Mirror), which no
// adjacent-row coherence score can tell apart.
package perm
