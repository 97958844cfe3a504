// SPDX-License-Identifier: MIT
// Package: keysearch
//
// Purpose:
//   - Score a range of candidates [0, total) in parallel and return the best
//     one exactly as a sequential left-to-right scan with strict improvement
//     would: the lowest index among equally scored candidates wins.
//
// Scheme:
//   - The range is cut into one contiguous chunk per worker (ceil(total/w)).
//   - Each worker folds its chunk into a local accumulator.
//   - Accumulators are reduced in ascending chunk order with the same rule.
//
// Cancellation:
//   - Each worker polls the context between candidates; the first error
//     (cancellation or evaluation) aborts the whole sweep.

package keysearch

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/rowcrypt"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/score"
	"golang.org/x/sync/errgroup"
)

// stage describes one sweep: candidate i is unscrambled with at(i).
type stage struct {
	name   string
	method score.Method
	total  int
	at     func(i int) (s, r int)
}

// best is a fold accumulator; ok is false until a candidate was scored.
type best struct {
	index int
	score float64
	ok    bool
}

// offer folds candidate (i, v) into b and reports whether it took over.
// Only strict improvements replace the current holder, so scanning indices
// in ascending order keeps the lowest.
func (b *best) offer(method score.Method, i int, v float64) bool {
	if !b.ok || method.Better(v, b.score) {
		b.index, b.score, b.ok = i, v, true
		return true
	}
	return false
}

// sweepStats is the outcome of runStage.
type sweepStats struct {
	best      best
	evaluated int
	skipped   int
	elapsed   time.Duration
}

// workerCount resolves Options.Workers for a range of total candidates.
func workerCount(requested, total int) int {
	w := requested
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > total {
		w = total
	}
	if w < 1 {
		w = 1
	}
	return w
}

// runStage scores every candidate of st and returns the best one.
//
// Errors:
//   - ctx.Err() when the context is cancelled before the sweep finishes.
//   - ErrNoCandidates when SkipDegenerate skipped every candidate.
//   - any error of the evaluator (not expected for validated input).
//
// Complexity: O(total · cost(candidate) / workers).
func runStage(ctx context.Context, e *evaluator, st stage, opts Options) (sweepStats, error) {
	start := time.Now()
	n := e.m.Rows()
	workers := workerCount(opts.Workers, st.total)
	chunk := (st.total + workers - 1) / workers

	accs := make([]best, workers)
	evaluated := make([]int, workers)
	skipped := make([]int, workers)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for c := 0; c < workers; c++ {
		lo := c * chunk
		hi := min(lo+chunk, st.total)
		g.Go(func() error {
			w, err := e.newWorker()
			if err != nil {
				return err
			}
			acc := &accs[c]
			for i := lo; i < hi; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				s, r := st.at(i)
				if opts.SkipDegenerate && !perm.IsBijective(n, s) {
					skipped[c]++
				} else {
					v, err := w.score(st.method, s, r)
					if err != nil {
						return err
					}
					acc.offer(st.method, i, v)
					evaluated[c]++
				}

				if opts.Progress != nil {
					opts.Progress(st.name, int(done.Add(1)), st.total)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sweepStats{}, err
	}

	log := rowcrypt.Logger()
	var out sweepStats
	for c := range accs {
		if accs[c].ok && out.best.offer(st.method, accs[c].index, accs[c].score) {
			log.Debug("keysearch: improved candidate",
				"stage", st.name,
				"chunk", c,
				"index", accs[c].index,
				"score", accs[c].score,
			)
		}
		if skipped[c] > 0 {
			log.Debug("keysearch: skipped non-bijective candidates",
				"stage", st.name,
				"chunk", c,
				"skipped", skipped[c],
			)
		}
		out.evaluated += evaluated[c]
		out.skipped += skipped[c]
	}
	out.elapsed = time.Since(start)
	if !out.best.ok {
		return sweepStats{}, ErrNoCandidates
	}

	log.Debug("keysearch: stage done",
		"stage", st.name,
		"method", st.method.String(),
		"best", out.best.index,
		"score", out.best.score,
		"evaluated", out.evaluated,
		"skipped", out.skipped,
		"workers", workers,
		"elapsed", out.elapsed,
	)
	return out, nil
}
