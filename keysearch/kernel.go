// SPDX-License-Identifier: MIT

package keysearch

import (
	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/rows"
	"github.com/katalvlaran/rowcrypt/score"
)

// evaluator is the read-only state shared by all workers of a search.
// tab is nil for KernelDirect.
type evaluator struct {
	m    *gray.Matrix
	tab  *score.Table
	kind Kernel
}

// chooseKernel resolves KernelAuto for a matrix of n rows and a search that
// will score evals candidates. A pair table costs about n/2 direct
// evaluations to build, so it only pays off when evals exceeds that.
func chooseKernel(k Kernel, n, evals, maxRows int) Kernel {
	if k != KernelAuto {
		return k
	}
	if maxRows == 0 {
		maxRows = DefaultPairTableMaxRows
	}
	if n >= 2 && n <= maxRows && n/2 < evals {
		return KernelPairTable
	}
	return KernelDirect
}

// newEvaluator prepares the shared state for kind (already resolved).
func newEvaluator(m *gray.Matrix, kind Kernel, workers int) (*evaluator, error) {
	e := &evaluator{m: m, kind: kind}
	if kind == KernelPairTable {
		tab, err := score.NewTable(m, workers)
		if err != nil {
			return nil, err
		}
		e.tab = tab
	}
	return e, nil
}

// worker owns the scratch buffers of one goroutine.
type worker struct {
	e       *evaluator
	p       perm.Permutation
	scratch *gray.Matrix // KernelDirect
	order   []int        // KernelPairTable
}

func (e *evaluator) newWorker() (*worker, error) {
	n := e.m.Rows()
	w := &worker{e: e, p: make(perm.Permutation, n)}
	if e.tab != nil {
		w.order = make([]int, n)
		return w, nil
	}
	scratch, err := gray.New(n, e.m.Cols())
	if err != nil {
		return nil, err
	}
	w.scratch = scratch
	return w, nil
}

// score rates the reconstruction obtained by unscrambling with (s, r).
func (w *worker) score(method score.Method, s, r int) (float64, error) {
	perm.FillSR(w.p, s, r)
	if w.e.tab != nil {
		// Same placement as rows.Unscramble: out[p[y]] = in[y], last write wins.
		for i := range w.order {
			w.order[i] = score.BlankRow
		}
		for y, to := range w.p {
			w.order[to] = y
		}
		return w.e.tab.ScoreOrder(method, w.order)
	}
	if err := rows.UnscrambleInto(w.scratch, w.e.m, w.p); err != nil {
		return 0, err
	}
	return method.Score(w.scratch)
}
