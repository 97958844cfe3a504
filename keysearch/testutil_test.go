// SPDX-License-Identifier: MIT

package keysearch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
	"github.com/stretchr/testify/require"
)

// sinusoid returns an n×w matrix whose rows are the same horizontal wave
// (4 periods) with a phase that advances slowly from row to row. Neighbor
// rows are strongly correlated and the total phase drift stays below π, so
// the natural order is the most coherent one.
func sinusoid(t testing.TB, n, w int) *gray.Matrix {
	t.Helper()
	m, err := gray.New(n, w)
	require.NoError(t, err)
	phaseStep := 2.5 / float64(n)
	for y := 0; y < n; y++ {
		row := m.Row(y)
		for x := 0; x < w; x++ {
			v := 128 + 120*math.Sin(2*math.Pi*4*float64(x)/float64(w)+phaseStep*float64(y))
			row[x] = uint8(math.Round(v))
		}
	}
	return m
}

// scrambled returns m scrambled with key.
func scrambled(t testing.TB, m *gray.Matrix, key perm.Key) *gray.Matrix {
	t.Helper()
	p, err := perm.Generate(m.Rows(), key)
	require.NoError(t, err)
	out, err := rows.Scramble(m, p)
	require.NoError(t, err)
	return out
}

// twins returns the key and its upside-down twin for n rows.
func twins(t testing.TB, n int, key perm.Key) []perm.Key {
	t.Helper()
	mirror, ok := perm.Mirror(n, key)
	require.True(t, ok)
	return []perm.Key{perm.Canonical(n, key), mirror}
}
