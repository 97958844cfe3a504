// SPDX-License-Identifier: MIT

package rows

import (
	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/perm"
)

// checkPerm verifies len(p) == n and every entry lies in [0, n).
// Duplicates are allowed.
func checkPerm(p perm.Permutation, n int) error {
	if len(p) != n {
		return ErrSizeMismatch
	}
	for _, v := range p {
		if v < 0 || v >= n {
			return ErrOutOfRange
		}
	}
	return nil
}

// Scramble returns a copy of m with out[y] = m[p[y]].
//
// Errors:
//   - ErrNilInput for a nil matrix.
//   - ErrSizeMismatch when len(p) != m.Rows().
//   - ErrOutOfRange when an entry of p is outside [0, m.Rows()).
//
// Complexity: O(rows·cols).
func Scramble(m *gray.Matrix, p perm.Permutation) (*gray.Matrix, error) {
	if m == nil {
		return nil, rowsErrorf(opScramble, ErrNilInput)
	}
	if err := checkPerm(p, m.Rows()); err != nil {
		return nil, rowsErrorf(opScramble, err)
	}
	out, err := gray.New(m.Rows(), m.Cols())
	if err != nil {
		return nil, rowsErrorf(opScramble, err)
	}
	for y, src := range p {
		copy(out.Row(y), m.Row(src))
	}
	return out, nil
}

// Unscramble returns a copy of m with out[p[y]] = m[y], undoing Scramble
// for any bijective p. Collisions are tolerated (see package doc).
//
// Errors: as Scramble.
//
// Complexity: O(rows·cols).
func Unscramble(m *gray.Matrix, p perm.Permutation) (*gray.Matrix, error) {
	if m == nil {
		return nil, rowsErrorf(opUnscramble, ErrNilInput)
	}
	if err := checkPerm(p, m.Rows()); err != nil {
		return nil, rowsErrorf(opUnscramble, err)
	}
	out, err := gray.New(m.Rows(), m.Cols())
	if err != nil {
		return nil, rowsErrorf(opUnscramble, err)
	}
	scatter(out, m, p)
	return out, nil
}

// UnscrambleInto is Unscramble writing into dst, which must have the shape
// of src and must not alias it. dst is zero-filled first so rows left
// unwritten by a non-bijective p do not keep stale values.
func UnscrambleInto(dst, src *gray.Matrix, p perm.Permutation) error {
	if dst == nil || src == nil {
		return rowsErrorf(opUnscrambleInto, ErrNilInput)
	}
	if !dst.SameShape(src) {
		return rowsErrorf(opUnscrambleInto, ErrSizeMismatch)
	}
	if err := checkPerm(p, src.Rows()); err != nil {
		return rowsErrorf(opUnscrambleInto, err)
	}
	clear(dst.Data())
	scatter(dst, src, p)
	return nil
}

// scatter writes src row y to dst row p[y], ascending y.
func scatter(dst, src *gray.Matrix, p perm.Permutation) {
	for y, to := range p {
		copy(dst.Row(to), src.Row(y))
	}
}
