// SPDX-License-Identifier: MIT
// Package: score
//
// Purpose:
//   - Precompute the integer moments every adjacent-pair score needs, so that
//     scoring a candidate row order costs O(rows) instead of O(rows·cols).
//   - Keep results bit-identical to PearsonScore / EuclideanScore of the
//     materialized order: the same int64 moments feed the same float steps.
//
// Exposed API:
//   - NewTable(m, workers) -> (*Table, error)     // O(rows²·cols) build, O(rows²) memory
//   - (*Table).ScoreOrder(method, order)           // score rows taken in the given order
//   - TableBytes(rows)                             // memory estimate for sizing decisions
//
// Determinism & Performance:
//   - Row-parallel build; every cell has exactly one writer.
//   - ScoreOrder walks pairs in order, summing exactly like the direct scorers.

package score

import (
	"runtime"

	"github.com/katalvlaran/rowcrypt/gray"
	"golang.org/x/sync/errgroup"
)

// BlankRow marks a position in a row order that holds an all-zero row, the
// way Unscramble leaves destinations no source was written to.
const BlankRow = -1

// Table holds per-row sums, squared sums and all pairwise dot products of a
// matrix. It is immutable after NewTable and safe for concurrent use.
type Table struct {
	rows, cols int
	sum        []int64 // Σx per row
	sq         []int64 // Σx² per row
	dot        []int64 // Σxy per row pair, rows×rows, symmetric
}

// TableBytes estimates the memory a Table for the given row count occupies.
func TableBytes(rows int) int64 {
	r := int64(rows)
	return r*r*8 + r*16
}

// NewTable precomputes the moments of m using up to workers goroutines
// (workers <= 0 means GOMAXPROCS).
//
// MAIN DESCRIPTION:
//   - Collect Σx, Σx² per row and Σxy for every row pair, so that any row
//     order can later be scored without touching pixel data.
//
// Implementation:
//   - Stage 1: reject a nil matrix (ErrNilMatrix).
//   - Stage 2: per-row sums and squared sums, sequentially (O(rows·cols)).
//   - Stage 3: one errgroup task per row i fills the upper triangle
//     dot[i][j], j >= i, and mirrors it into dot[j][i].
//
// Behavior highlights:
//   - Every cell has exactly one writer; the table is read-only afterwards.
//   - Integer moments make ScoreOrder bit-identical to the direct scorers.
//
// Inputs:
//   - m: source matrix (not retained, not mutated).
//   - workers: concurrency limit for Stage 3.
//
// Returns:
//   - *Table: immutable, safe for concurrent ScoreOrder calls.
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//
// Complexity:
//   - Time O(rows²·cols / 2), Space O(rows²).
func NewTable(m *gray.Matrix, workers int) (*Table, error) {
	if m == nil {
		return nil, scoreErrorf(opNewTable, ErrNilMatrix)
	}
	n, c := m.Rows(), m.Cols()
	t := &Table{
		rows: n,
		cols: c,
		sum:  make([]int64, n),
		sq:   make([]int64, n),
		dot:  make([]int64, n*n),
	}

	var v int64
	for i := 0; i < n; i++ {
		for _, x := range m.Row(i) {
			v = int64(x)
			t.sum[i] += v
			t.sq[i] += v * v
		}
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			// Task i owns cells (i, j) and (j, i) for j >= i.
			ri := m.Row(i)
			for j := i; j < n; j++ {
				d := dotRows(ri, m.Row(j))
				t.dot[i*n+j] = d
				t.dot[j*n+i] = d
			}
			return nil
		})
	}
	_ = g.Wait() // tasks never fail

	return t, nil
}

// Rows returns the row count of the source matrix.
func (t *Table) Rows() int { return t.rows }

// Cols returns the column count of the source matrix.
func (t *Table) Cols() int { return t.cols }

// ScoreOrder scores the matrix whose row k is source row order[k]
// (BlankRow for an all-zero row), without building it.
//
// The result equals method.Score of the materialized matrix bit for bit.
//
// Errors:
//   - ErrUnknownMethod for an invalid method.
//   - ErrRowOutOfRange for an entry outside [BlankRow, Rows()).
//
// Complexity: O(len(order)).
func (t *Table) ScoreOrder(method Method, order []int) (float64, error) {
	if !method.Valid() {
		return 0, scoreErrorf(opScoreOrder, ErrUnknownMethod)
	}
	for _, r := range order {
		if r < BlankRow || r >= t.rows {
			return 0, scoreErrorf(opScoreOrder, ErrRowOutOfRange)
		}
	}
	if len(order) < 2 {
		return 0, nil
	}

	var total float64
	var k int
	if method == Pearson {
		for k = 0; k < len(order)-1; k++ {
			total += t.pearson(order[k], order[k+1])
		}
		return total / float64(len(order)-1), nil
	}
	for k = 0; k < len(order)-1; k++ {
		total += t.euclidean(order[k], order[k+1])
	}
	return total, nil
}

// moments returns Σx, Σx² for row a (zero for BlankRow).
func (t *Table) moments(a int) (s, q int64) {
	if a == BlankRow {
		return 0, 0
	}
	return t.sum[a], t.sq[a]
}

// cross returns Σxy for rows a and b (zero when either is blank).
func (t *Table) cross(a, b int) int64 {
	if a == BlankRow || b == BlankRow {
		return 0
	}
	return t.dot[a*t.rows+b]
}

func (t *Table) pearson(a, b int) float64 {
	if t.cols == 0 {
		return 0
	}
	sa, qa := t.moments(a)
	sb, qb := t.moments(b)
	return correlation(int64(t.cols), sa, sb, qa, qb, t.cross(a, b))
}

func (t *Table) euclidean(a, b int) float64 {
	_, qa := t.moments(a)
	_, qb := t.moments(b)
	// Σ(x−y)² = Σx² + Σy² − 2Σxy, exact in int64.
	return distance(qa + qb - 2*t.cross(a, b))
}

// dotRows returns Σ a[i]·b[i] for equal-length rows.
func dotRows(a, b []uint8) int64 {
	b = b[:len(a)]
	var s int64
	for i := range a {
		s += int64(a[i]) * int64(b[i])
	}
	return s
}
