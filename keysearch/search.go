// SPDX-License-Identifier: MIT

// Package keysearch - entry points.
//
// This file provides:
//   - Exhaustive: score every key with one Method.
//   - TwoStage:   Euclidean sweep over steps, then Pearson sweep over offsets.
//   - Search:     dispatch on Options.Strategy.
//
// Design principles:
//   - Read-only over the input matrix; all scratch state is per worker.
//   - Deterministic: the result never depends on Workers or Kernel.
//   - Sentinel errors from errors.go, wrapped with the entry point name.
package keysearch

import (
	"context"
	"time"

	"github.com/katalvlaran/rowcrypt"
	"github.com/katalvlaran/rowcrypt/gray"
	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/score"
)

// Stage names reported in StageResult.Name and to ProgressFunc.
const (
	StageKeys   = "keys"
	StageStep   = "step"
	StageOffset = "offset"
)

// Evaluation counts of each strategy.
const (
	ExhaustiveEvaluations = perm.KeySpace
	TwoStageEvaluations   = perm.StepSpace + perm.OffsetSpace
)

// prepare validates the shared preconditions and builds the evaluator.
func prepare(ctx context.Context, m *gray.Matrix, opts Options, evals int) (*evaluator, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	// The generator rejects an empty height; surface that before sweeping.
	if _, err := perm.Generate(m.Rows(), 0); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := chooseKernel(opts.Kernel, m.Rows(), evals, opts.PairTableMaxRows)
	e, err := newEvaluator(m, kind, opts.Workers)
	if err != nil {
		return nil, err
	}
	rowcrypt.Logger().Debug("keysearch: kernel selected",
		"kernel", kind.String(),
		"rows", m.Rows(),
		"cols", m.Cols(),
		"evaluations", evals,
	)
	return e, nil
}

// Exhaustive scores every key in [0, perm.KeySpace) with method and returns
// the best one.
//
// MAIN DESCRIPTION:
//   - Brute force over the whole 15-bit key space; the reference result the
//     two-stage heuristic is measured against.
//
// Implementation:
//   - Stage 1: validate method, matrix and options; resolve the kernel
//     (a pair table whenever rows <= PairTableMaxRows).
//   - Stage 2: one sweep over keys 0..32767 split into contiguous chunks,
//     each worker unscrambling into its own scratch state.
//   - Stage 3: reduce chunk bests in key order and assemble the Result.
//
// Contracts:
//   - candidate(key) = rows.Unscramble(m, perm.Generate(m.Rows(), key)).
//   - Pearson is maximized, Euclidean minimized; ties keep the lowest key, so
//     the result is the canonical representative of its equivalence class
//     (see perm.Canonical).
//   - opts.Strategy and opts.Method are ignored.
//
// A correct reconstruction and its upside-down twin (perm.Mirror) score the
// same under both scorers, so either may be returned.
//
// Errors:
//   - ErrNilMatrix, perm.ErrInvalidSize (0 rows), score.ErrUnknownMethod.
//   - option errors (ErrUnknownKernel, ErrBadOption).
//   - ctx.Err() on cancellation.
//
// Complexity: 32768 candidates; O(rows·cols) each with KernelDirect,
// O(rows) each plus an O(rows²·cols) build with KernelPairTable.
func Exhaustive(ctx context.Context, m *gray.Matrix, method score.Method, opts Options) (Result, error) {
	start := time.Now()
	if !method.Valid() {
		return Result{}, searchErrorf(opExhaustive, score.ErrUnknownMethod)
	}
	opts.Strategy = StrategyExhaustive
	e, err := prepare(ctx, m, opts, ExhaustiveEvaluations)
	if err != nil {
		return Result{}, searchErrorf(opExhaustive, err)
	}

	st, err := runStage(ctx, e, stage{
		name:   StageKeys,
		method: method,
		total:  ExhaustiveEvaluations,
		at: func(i int) (int, int) {
			k := perm.Key(i)
			return k.Step(), k.Offset()
		},
	}, opts)
	if err != nil {
		return Result{}, searchErrorf(opExhaustive, err)
	}

	key := perm.Key(st.best.index)
	res := Result{
		Key:       key,
		Step:      key.Step(),
		Offset:    key.Offset(),
		Score:     st.best.score,
		Method:    method,
		Strategy:  StrategyExhaustive,
		Kernel:    e.kind,
		Evaluated: st.evaluated,
		Skipped:   st.skipped,
		Stages: []StageResult{{
			Name:      StageKeys,
			Method:    method,
			Best:      st.best.index,
			Score:     st.best.score,
			Evaluated: st.evaluated,
			Skipped:   st.skipped,
			Elapsed:   st.elapsed,
		}},
		Elapsed: time.Since(start),
	}
	logResult(res)
	return res, nil
}

// TwoStage recovers the key in two sweeps:
//
//  1. offset fixed to 0, step s in [0, 128), Euclidean minimized → s*;
//  2. step fixed to s*, offset r in [0, 256), Pearson maximized → r*.
//
// MAIN DESCRIPTION:
//   - Separable search: the step decides which rows end up adjacent, the
//     offset only rotates the result, so the two are fitted one at a time.
//
// Implementation:
//   - Stage 1: validate matrix and options; resolve the kernel once for both
//     sweeps (384 evaluations).
//   - Stage 2: step sweep as above, ties keep the lowest step.
//   - Stage 3: offset sweep with the winning step, ties keep the lowest offset.
//   - Stage 4: key = perm.NewKey(s*, r*); both stages recorded in Stages.
//
// Behavior highlights:
//   - With offset 0 the right step already yields the image cyclically
//     shifted by r rows: one seam and otherwise coherent neighbors, which the
//     Euclidean sum ranks above every wrong step.
//   - A heuristic: it can miss the exhaustive optimum when the score surface
//     is not separable in (s, r).
//   - opts.Strategy and opts.Method are ignored; Result.Score is the Pearson
//     score of the returned key.
//
// Errors: as Exhaustive, minus score.ErrUnknownMethod.
//
// Complexity:
//   - 384 candidates instead of 32768.
func TwoStage(ctx context.Context, m *gray.Matrix, opts Options) (Result, error) {
	start := time.Now()
	opts.Strategy = StrategyTwoStage
	e, err := prepare(ctx, m, opts, TwoStageEvaluations)
	if err != nil {
		return Result{}, searchErrorf(opTwoStage, err)
	}

	// Stage 1: step.
	st1, err := runStage(ctx, e, stage{
		name:   StageStep,
		method: score.Euclidean,
		total:  perm.StepSpace,
		at:     func(i int) (int, int) { return i, 0 },
	}, opts)
	if err != nil {
		return Result{}, searchErrorf(opTwoStage, err)
	}
	step := st1.best.index

	// Stage 2: offset.
	st2, err := runStage(ctx, e, stage{
		name:   StageOffset,
		method: score.Pearson,
		total:  perm.OffsetSpace,
		at:     func(i int) (int, int) { return step, i },
	}, opts)
	if err != nil {
		return Result{}, searchErrorf(opTwoStage, err)
	}

	key := perm.NewKey(step, st2.best.index)
	res := Result{
		Key:       key,
		Step:      key.Step(),
		Offset:    key.Offset(),
		Score:     st2.best.score,
		Method:    score.Pearson,
		Strategy:  StrategyTwoStage,
		Kernel:    e.kind,
		Evaluated: st1.evaluated + st2.evaluated,
		Skipped:   st1.skipped + st2.skipped,
		Stages: []StageResult{
			{
				Name:      StageStep,
				Method:    score.Euclidean,
				Best:      step,
				Score:     st1.best.score,
				Evaluated: st1.evaluated,
				Skipped:   st1.skipped,
				Elapsed:   st1.elapsed,
			},
			{
				Name:      StageOffset,
				Method:    score.Pearson,
				Best:      st2.best.index,
				Score:     st2.best.score,
				Evaluated: st2.evaluated,
				Skipped:   st2.skipped,
				Elapsed:   st2.elapsed,
			},
		},
		Elapsed: time.Since(start),
	}
	logResult(res)
	return res, nil
}

// Search routes to Exhaustive (with opts.Method) or TwoStage according to
// opts.Strategy.
//
// Errors: ErrUnsupportedStrategy for an unknown strategy, otherwise those of
// the selected entry point.
func Search(ctx context.Context, m *gray.Matrix, opts Options) (Result, error) {
	switch opts.Strategy {
	case StrategyExhaustive:
		return Exhaustive(ctx, m, opts.Method, opts)
	case StrategyTwoStage:
		return TwoStage(ctx, m, opts)
	default:
		return Result{}, searchErrorf(opSearch, ErrUnsupportedStrategy)
	}
}

func logResult(res Result) {
	rowcrypt.Logger().Info("keysearch: key recovered",
		"strategy", res.Strategy.String(),
		"method", res.Method.String(),
		"key", uint16(res.Key),
		"step", res.Step,
		"offset", res.Offset,
		"score", res.Score,
		"kernel", res.Kernel.String(),
		"evaluated", res.Evaluated,
		"elapsed", res.Elapsed,
	)
}
