// SPDX-License-Identifier: MIT

package rows_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from int rows or fails the test.
func mustMatrix(t *testing.T, in [][]int) *gray.Matrix {
	t.Helper()
	m, err := gray.FromRows(in)
	require.NoError(t, err)
	return m
}

// pattern fills an n×w matrix with values that identify their row.
func pattern(t *testing.T, n, w int) *gray.Matrix {
	t.Helper()
	m, err := gray.New(n, w)
	require.NoError(t, err)
	for y := 0; y < n; y++ {
		row := m.Row(y)
		for x := range row {
			row[x] = uint8((y*7 + x*3) % 256)
		}
	}
	return m
}

// TestScramble_ConcreteScenario is the 4×4 example with permutation [2,0,3,1].
func TestScramble_ConcreteScenario(t *testing.T) {
	orig := [][]int{
		{0, 0, 0, 0},
		{10, 10, 10, 10},
		{20, 20, 20, 20},
		{30, 30, 30, 30},
	}
	m := mustMatrix(t, orig)
	p := perm.Permutation{2, 0, 3, 1}

	s, err := rows.Scramble(m, p)
	require.NoError(t, err)
	want := [][]int{
		{20, 20, 20, 20},
		{0, 0, 0, 0},
		{30, 30, 30, 30},
		{10, 10, 10, 10},
	}
	if diff := cmp.Diff(want, s.ToRows()); diff != "" {
		t.Fatalf("scrambled rows (-want +got):\n%s", diff)
	}

	u, err := rows.Unscramble(s, p)
	require.NoError(t, err)
	if diff := cmp.Diff(orig, u.ToRows()); diff != "" {
		t.Fatalf("unscrambled rows (-want +got):\n%s", diff)
	}
	assert.Equal(t, orig, m.ToRows(), "input must not be mutated")
}

// TestRoundTrip_PowersOfTwo checks Unscramble(Scramble(m, p), p) == m for many keys.
func TestRoundTrip_PowersOfTwo(t *testing.T) {
	keys := []perm.Key{0, 1, 127, 128, 2181, 12345, perm.KeySpace - 1}
	for _, n := range []int{1, 2, 8, 64, 256} {
		m := pattern(t, n, 5)
		for _, k := range keys {
			p, err := perm.Generate(n, k)
			require.NoError(t, err)

			s, err := rows.Scramble(m, p)
			require.NoError(t, err)
			u, err := rows.Unscramble(s, p)
			require.NoError(t, err)
			assert.True(t, m.Equal(u), "n=%d key=%d", n, k)
		}
	}
}

// TestUnscramble_MatchesInverseGather shows scatter equals gather with the inverse.
func TestUnscramble_MatchesInverseGather(t *testing.T) {
	m := pattern(t, 32, 4)
	p, err := perm.Generate(32, perm.NewKey(9, 30))
	require.NoError(t, err)
	inv, err := perm.Inverse(p)
	require.NoError(t, err)

	a, err := rows.Unscramble(m, p)
	require.NoError(t, err)
	b, err := rows.Scramble(m, inv)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

// TestGatherTwice_IsNotInverse documents that reapplying the forward gather
// does not undo a scramble in general.
func TestGatherTwice_IsNotInverse(t *testing.T) {
	m := pattern(t, 4, 4)
	p := perm.Permutation{2, 0, 3, 1}
	s, err := rows.Scramble(m, p)
	require.NoError(t, err)
	twice, err := rows.Scramble(s, p)
	require.NoError(t, err)
	assert.False(t, m.Equal(twice))
}

// TestCollisions_Tolerated documents duplicated and blank rows for a non-bijection.
func TestCollisions_Tolerated(t *testing.T) {
	m := mustMatrix(t, [][]int{{1}, {2}, {3}, {4}, {5}, {6}})
	p, err := perm.GenerateSR(6, 1, 0) // {0,3,0,3,0,3}
	require.NoError(t, err)

	s, err := rows.Scramble(m, p)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {4}, {1}, {4}, {1}, {4}}, s.ToRows())

	u, err := rows.Unscramble(m, p)
	require.NoError(t, err)
	// Rows 0 and 3 receive the last writers (y=4 and y=5); the rest stay zero.
	assert.Equal(t, [][]int{{5}, {0}, {0}, {6}, {0}, {0}}, u.ToRows())
}

// TestErrors covers nil, size-mismatch and out-of-range permutations.
func TestErrors(t *testing.T) {
	m := pattern(t, 4, 2)

	_, err := rows.Scramble(nil, perm.Permutation{0})
	assert.ErrorIs(t, err, rows.ErrNilInput)
	_, err = rows.Scramble(m, perm.Permutation{0, 1, 2})
	assert.ErrorIs(t, err, rows.ErrSizeMismatch)
	_, err = rows.Unscramble(m, perm.Permutation{0, 1, 2, 4})
	assert.ErrorIs(t, err, rows.ErrOutOfRange)

	other := pattern(t, 3, 2)
	assert.ErrorIs(t, rows.UnscrambleInto(other, m, perm.Permutation{0, 1, 2, 3}), rows.ErrSizeMismatch)
	assert.ErrorIs(t, rows.UnscrambleInto(nil, m, nil), rows.ErrNilInput)
}

// TestUnscrambleInto_ClearsStaleRows ensures reused buffers hold no leftovers.
func TestUnscrambleInto_ClearsStaleRows(t *testing.T) {
	m := mustMatrix(t, [][]int{{1}, {2}, {3}, {4}, {5}, {6}})
	dst := mustMatrix(t, [][]int{{9}, {9}, {9}, {9}, {9}, {9}})

	p, err := perm.GenerateSR(6, 1, 0)
	require.NoError(t, err)
	require.NoError(t, rows.UnscrambleInto(dst, m, p))

	want, err := rows.Unscramble(m, p)
	require.NoError(t, err)
	assert.True(t, want.Equal(dst))
}
