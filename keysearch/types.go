// SPDX-License-Identifier: MIT

package keysearch

import (
	"strings"
	"time"

	"github.com/katalvlaran/rowcrypt/perm"
	"github.com/katalvlaran/rowcrypt/score"
)

// Strategy selects how the key space is explored.
//
//   - StrategyExhaustive - every key in [0, perm.KeySpace), scored with one
//     Method. Finds the best key the scorer can see; 32768 evaluations.
//
//   - StrategyTwoStage - sweep the step with offset 0 under Euclidean, then
//     sweep the offset with that step under Pearson. 384 evaluations; relies
//     on the step alone already making most neighbors coherent.
type Strategy int

const (
	// StrategyExhaustive scores all 32768 keys.
	StrategyExhaustive Strategy = iota

	// StrategyTwoStage scores 128 steps, then 256 offsets.
	StrategyTwoStage
)

// String returns the flag name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyExhaustive:
		return "exhaustive"
	case StrategyTwoStage:
		return "two-stage"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
// "optimized" is accepted as an alias of "two-stage".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive":
		return StrategyExhaustive, nil
	case "two-stage", "twostage", "optimized":
		return StrategyTwoStage, nil
	default:
		return 0, searchErrorf(opParseStrategy, ErrUnsupportedStrategy)
	}
}

// Kernel selects how a candidate key is evaluated.
//
//   - KernelDirect    - unscramble into a per-worker scratch matrix and score it.
//     O(rows·cols) per candidate, O(rows·cols) memory per worker.
//
//   - KernelPairTable - precompute all row-pair moments once (score.Table),
//     then score each candidate row order in O(rows). Costs O(rows²) memory.
//
//   - KernelAuto      - PairTable when it is cheaper for the sweep size and
//     rows <= Options.PairTableMaxRows, Direct otherwise.
//
// Both kernels produce bit-identical scores, so the choice never changes the
// recovered key.
type Kernel int

const (
	// KernelAuto picks a kernel from the matrix size and evaluation count.
	KernelAuto Kernel = iota

	// KernelDirect materializes every candidate.
	KernelDirect

	// KernelPairTable scores candidates from precomputed pair moments.
	KernelPairTable
)

// String returns the flag name of the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelDirect:
		return "direct"
	case KernelPairTable:
		return "pair-table"
	default:
		return "unknown"
	}
}

// ParseKernel maps a case-insensitive name to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return KernelAuto, nil
	case "direct":
		return KernelDirect, nil
	case "pair-table", "table":
		return KernelPairTable, nil
	default:
		return 0, searchErrorf(opParseKernel, ErrUnknownKernel)
	}
}

// DefaultPairTableMaxRows caps the row count for which KernelAuto builds a
// pair table (2048 rows ≈ 32 MiB of int64 dot products).
const DefaultPairTableMaxRows = 2048

// ProgressFunc receives the number of finished candidates of a stage.
// It is called from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(stage string, done, total int)

// Options configures a key search.
//
// Strategy         – exhaustive or two-stage; used by Search only.
// Method           – scorer for Search with StrategyExhaustive; Exhaustive takes
//
//	the method as an argument and TwoStage fixes its own.
//
// Workers          – goroutines per sweep; 0 means runtime.GOMAXPROCS(0).
// Kernel           – candidate evaluation kernel (see Kernel).
// PairTableMaxRows – row cap for KernelAuto; 0 means DefaultPairTableMaxRows.
// SkipDegenerate   – skip steps whose permutation is not a bijection for the
//
//	matrix height (gcd(2s+1, rows) != 1). Off by default: such keys
//	are scored like any other, with blank rows where nothing lands.
//
// Progress         – optional progress callback.
type Options struct {
	Strategy         Strategy
	Method           score.Method
	Workers          int
	Kernel           Kernel
	PairTableMaxRows int
	SkipDegenerate   bool
	Progress         ProgressFunc
}

// DefaultOptions returns the options used by the CLI when no flag is given.
//
// Defaults:
//   - Strategy:         StrategyExhaustive.
//   - Method:           score.Pearson.
//   - Workers:          0 (GOMAXPROCS).
//   - Kernel:           KernelAuto.
//   - PairTableMaxRows: DefaultPairTableMaxRows.
//   - SkipDegenerate:   false.
func DefaultOptions() Options {
	return Options{
		Strategy:         StrategyExhaustive,
		Method:           score.Pearson,
		Workers:          0,
		Kernel:           KernelAuto,
		PairTableMaxRows: DefaultPairTableMaxRows,
		SkipDegenerate:   false,
	}
}

// StageResult describes one sweep of a search.
type StageResult struct {
	Name      string       // "keys", "step" or "offset"
	Method    score.Method // scorer of this sweep
	Best      int          // winning index (key, step or offset)
	Score     float64      // score of the winning index
	Evaluated int          // candidates scored
	Skipped   int          // candidates skipped by SkipDegenerate
	Elapsed   time.Duration
}

// Result is the outcome of a key search.
type Result struct {
	Key      perm.Key
	Step     int          // Key.Step()
	Offset   int          // Key.Offset()
	Score    float64      // final score under Method
	Method   score.Method // scorer of the final stage
	Strategy Strategy
	Kernel   Kernel // kernel actually used (never KernelAuto)

	Evaluated int // candidates scored over all stages
	Skipped   int // candidates skipped over all stages
	Stages    []StageResult
	Elapsed   time.Duration
}
