// SPDX-License-Identifier: MIT

// Package gray - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/RowErr return errors instead of panicking.
//   - Keep rows rectangular by construction so scorers never see ragged input.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal/ToRows: O(r*c).

package gray

import (
	"bytes"
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxNew     = "New"
	ctxFromRow = "FromRows"
)

// matrixErrorf wraps a sentinel with the method name and call-site coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a rows×cols grid of brightness values in [0,255].
//   - r, c hold dimensions (both >= 0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid 0×0 matrix.
type Matrix struct {
	r, c int
	data []uint8
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	return &Matrix{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// FromRows copies a slice of int rows into a new Matrix.
//
// Contracts:
//   - every row has the same length (ErrRagged otherwise);
//   - every value lies in [0,255] (ErrValueOutOfRange otherwise).
//
// A nil or empty input yields a 0×0 matrix.
//
// Complexity: O(r*c).
func FromRows(rows [][]int) (*Matrix, error) {
	r := len(rows)
	if r == 0 {
		return &Matrix{}, nil
	}
	c := len(rows[0])
	m := &Matrix{r: r, c: c, data: make([]uint8, r*c)}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRow, i, len(rows[i]), ErrRagged)
		}
		base := i * c
		for j = 0; j < c; j++ {
			v := rows[i][j]
			if v < 0 || v > 255 {
				return nil, matrixErrorf(ctxFromRow, i, j, ErrValueOutOfRange)
			}
			m.data[base+j] = uint8(v)
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns (the length of every row).
func (m *Matrix) Cols() int { return m.c }

// Row returns row i as a view into the matrix buffer; writes through the
// returned slice mutate the matrix. i must be in [0, Rows()); out-of-range
// indices panic like a slice index would. Use RowErr for checked access.
func (m *Matrix) Row(i int) []uint8 {
	base := i * m.c
	return m.data[base : base+m.c : base+m.c]
}

// RowErr is Row with bounds checking.
func (m *Matrix) RowErr(i int) ([]uint8, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	return m.Row(i), nil
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) (uint8, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrixErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set writes v at (i, j).
func (m *Matrix) Set(i, j int, v uint8) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return matrixErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v
	return nil
}

// Data exposes the row-major backing buffer (len == Rows()*Cols()).
func (m *Matrix) Data() []uint8 { return m.data }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]uint8, len(m.data))}
	copy(out.data, m.data)
	return out
}

// SameShape reports whether m and o have identical dimensions.
func (m *Matrix) SameShape(o *Matrix) bool {
	return m.r == o.r && m.c == o.c
}

// Equal reports whether m and o have the same shape and values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.SameShape(o) && bytes.Equal(m.data, o.data)
}

// ToRows copies the matrix into a fresh [][]int.
func (m *Matrix) ToRows() [][]int {
	out := make([][]int, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		row := make([]int, m.c)
		src := m.Row(i)
		for j = 0; j < m.c; j++ {
			row[j] = int(src[j])
		}
		out[i] = row
	}
	return out
}

// String renders the matrix one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		row := m.Row(i)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", row[j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
