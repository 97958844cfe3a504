// SPDX-License-Identifier: MIT

package gray_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Shapes covers zero-size and negative shapes.
func TestNew_Shapes(t *testing.T) {
	m, err := gray.New(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 5, m.Cols())

	_, err = gray.New(-1, 2)
	assert.ErrorIs(t, err, gray.ErrBadShape)
	_, err = gray.New(2, -1)
	assert.ErrorIs(t, err, gray.ErrBadShape)
}

// TestFromRows_RoundTrip checks FromRows/ToRows preserve values and order.
func TestFromRows_RoundTrip(t *testing.T) {
	in := [][]int{{0, 1, 2}, {253, 254, 255}}
	m, err := gray.FromRows(in)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	if diff := cmp.Diff(in, m.ToRows()); diff != "" {
		t.Fatalf("ToRows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []uint8{253, 254, 255}, m.Row(1))
}

// TestFromRows_Errors verifies ragged and out-of-range inputs are rejected.
func TestFromRows_Errors(t *testing.T) {
	_, err := gray.FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, gray.ErrRagged)

	_, err = gray.FromRows([][]int{{1, 256}})
	assert.ErrorIs(t, err, gray.ErrValueOutOfRange)

	_, err = gray.FromRows([][]int{{-1}})
	assert.ErrorIs(t, err, gray.ErrValueOutOfRange)

	m, err := gray.FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
}

// TestAccessors_Bounds checks At/Set/RowErr bounds handling.
func TestAccessors_Bounds(t *testing.T) {
	m, err := gray.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, gray.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), gray.ErrOutOfRange)
	_, err = m.RowErr(5)
	assert.ErrorIs(t, err, gray.ErrOutOfRange)
}

// TestClone_Independent ensures Clone does not share storage.
func TestClone_Independent(t *testing.T) {
	m, err := gray.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	c := m.Clone()
	assert.True(t, m.Equal(c))

	c.Row(0)[0] = 99
	assert.False(t, m.Equal(c), "mutating the clone must not touch the source")
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
