// SPDX-License-Identifier: MIT

// Package keysearch recovers the key of a row-scrambled image by scoring
// candidate reconstructions.
//
// What:
//
//   - Exhaustive tries all 32768 keys with one coherence scorer.
//   - TwoStage finds the step first (Euclidean, offset 0) and the offset
//     second (Pearson), for 384 evaluations instead of 32768.
//   - Search dispatches on Options.Strategy.
//
// How:
//
//   - Candidates are split into contiguous chunks, one per worker
//     (golang.org/x/sync/errgroup). Each worker folds its chunk into a local
//     best; the bests are reduced in chunk order, so the outcome equals a
//     sequential scan and never depends on Options.Workers.
//   - Two evaluation kernels give bit-identical scores: Direct materializes
//     each candidate, PairTable scores row orders from precomputed pair
//     moments (score.Table).
//
// Limits:
//
//   - Both scorers only see adjacent rows, so the correct key and its
//     upside-down twin (perm.Mirror) score the same; either may win.
//   - For heights below 256 several keys generate the same permutation; the
//     lowest (perm.Canonical) is returned.
//
// Usage:
//
//	m, _ := gray.FromImage(img)
//	res, err := keysearch.Search(ctx, m, keysearch.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Key, res.Score)
package keysearch
