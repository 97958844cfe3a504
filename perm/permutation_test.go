// SPDX-License-Identifier: MIT

package perm_test

import (
	"testing"

	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Formula checks perm[i] = (r + (2s+1)·i) mod n on a small case.
func TestGenerate_Formula(t *testing.T) {
	p, err := perm.GenerateSR(8, 1, 2) // stride 3, offset 2
	require.NoError(t, err)
	assert.Equal(t, perm.Permutation{2, 5, 0, 3, 6, 1, 4, 7}, p)

	q, err := perm.Generate(8, perm.NewKey(1, 2))
	require.NoError(t, err)
	assert.Equal(t, p, q, "key form must delegate to (s, r) form")
}

// TestGenerate_InvalidSize rejects n <= 0.
func TestGenerate_InvalidSize(t *testing.T) {
	_, err := perm.GenerateSR(0, 1, 1)
	assert.ErrorIs(t, err, perm.ErrInvalidSize)
	_, err = perm.Generate(-3, 7)
	assert.ErrorIs(t, err, perm.ErrInvalidSize)
}

// TestGenerate_FoldsOutOfRange verifies s and r outside their widths are folded mod n.
func TestGenerate_FoldsOutOfRange(t *testing.T) {
	a, err := perm.GenerateSR(16, 3, 5)
	require.NoError(t, err)
	b, err := perm.GenerateSR(16, 3+8, 5+16) // stride 7 vs 23 ≡ 7, offset 5 vs 21 ≡ 5
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := perm.GenerateSR(16, 3, -11) // -11 ≡ 5
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

// TestGenerate_BijectiveForPowersOfTwo checks every (s, r) for power-of-two sizes.
func TestGenerate_BijectiveForPowersOfTwo(t *testing.T) {
	var s, r int
	for n := 1; n <= 512; n *= 2 {
		p := make(perm.Permutation, n)
		for s = 0; s < perm.StepSpace; s++ {
			require.True(t, perm.IsBijective(n, s), "n=%d s=%d", n, s)
			for r = 0; r < perm.OffsetSpace; r++ {
				perm.FillSR(p, s, r)
				if err := perm.Validate(p); err != nil {
					t.Fatalf("n=%d s=%d r=%d: %v", n, s, r, err)
				}
			}
		}
	}
}

// TestGenerate_CollisionsTolerated documents the degenerate non-bijective case.
func TestGenerate_CollisionsTolerated(t *testing.T) {
	// n=6, s=1: stride 3 shares the factor 3 with 6.
	p, err := perm.GenerateSR(6, 1, 0)
	require.NoError(t, err, "Generate never checks bijectivity")
	assert.Equal(t, perm.Permutation{0, 3, 0, 3, 0, 3}, p)
	assert.False(t, perm.IsBijective(6, 1))
	assert.Equal(t, 4, perm.Collisions(p))
	assert.ErrorIs(t, perm.Validate(p), perm.ErrNotBijective)

	// s=0 (stride 1) is always a bijection.
	assert.True(t, perm.IsBijective(6, 0))
	assert.False(t, perm.IsBijective(0, 0))
}

// TestInverse checks inv[p[i]] = i and the strict collision policy.
func TestInverse(t *testing.T) {
	p := perm.Permutation{2, 0, 3, 1}
	inv, err := perm.Inverse(p)
	require.NoError(t, err)
	assert.Equal(t, perm.Permutation{1, 3, 0, 2}, inv)
	for i := range p {
		assert.Equal(t, i, inv[p[i]])
	}

	_, err = perm.Inverse(perm.Permutation{0, 0, 1})
	assert.ErrorIs(t, err, perm.ErrNotBijective)
	_, err = perm.Inverse(perm.Permutation{0, 5})
	assert.ErrorIs(t, err, perm.ErrNotBijective)
}

// TestEquivalentAndCanonical covers key folding for n < 256.
func TestEquivalentAndCanonical(t *testing.T) {
	const n = 64
	k := perm.NewKey(40, 200) // stride 81 ≡ 17 (s=8), offset 200 ≡ 8
	assert.True(t, perm.Equivalent(n, k, perm.NewKey(8, 8)))
	assert.Equal(t, perm.NewKey(8, 8), perm.Canonical(n, k))
	assert.Equal(t, perm.NewKey(8, 8), perm.Canonical(n, perm.NewKey(8, 8)))

	assert.False(t, perm.Equivalent(256, k, perm.NewKey(8, 8)))
	assert.Equal(t, k, perm.Canonical(256, k), "all keys are distinct for n=256")
}

// TestMirror verifies q[y] = n-1-p[y] for the returned key.
func TestMirror(t *testing.T) {
	for _, n := range []int{1, 7, 64, 256} {
		k := perm.NewKey(5, 17)
		m, ok := perm.Mirror(n, k)
		require.True(t, ok, "n=%d", n)

		p, err := perm.Generate(n, k)
		require.NoError(t, err)
		q, err := perm.Generate(n, m)
		require.NoError(t, err)
		for y := range p {
			assert.Equal(t, n-1-p[y], q[y], "n=%d y=%d", n, y)
		}
	}

	_, ok := perm.Mirror(0, 1)
	assert.False(t, ok)
}
