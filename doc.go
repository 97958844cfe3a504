// SPDX-License-Identifier: MIT

// Package rowcrypt scrambles images by permuting their rows with a 15-bit key
// and recovers that key from a scrambled image by searching the key space.
//
// 🚀 What is rowcrypt?
//
//	A small, dependency-light toolkit around one deliberately weak cipher:
//		• Permutations: perm[i] = (r + (2s+1)·i) mod n, key = (r << 7) | s
//		• Row transforms: scramble (gather) and unscramble (scatter) for
//		  grayscale matrices and color images
//		• Coherence scores: mean adjacent-row Pearson correlation and summed
//		  adjacent-row Euclidean distance
//		• Key search: full 32768-key scan and a 128+256 two-stage sweep,
//		  both parallel and deterministic
//
// ✨ Why?
//
//   - Exact arithmetic – scores are computed from integer sums, so every
//     evaluation path returns bit-identical results
//   - Deterministic parallelism – workers fold their chunk, chunks reduce in
//     key order, ties keep the lowest key
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	gray/      - luma extraction and the GrayMatrix type
//	perm/      - keys, permutation generation, inverse and bijectivity checks
//	rows/      - scramble / unscramble for matrices and images
//	score/     - Pearson and Euclidean coherence scorers, pair tables
//	keysearch/ - exhaustive and two-stage key recovery
//	imageio/   - decoding and encoding of image files
//	cmd/rowcrypt - command line front-end
//
// Quick example:
//
//	m, err := gray.FromImage(img)
//	res, err := keysearch.Search(ctx, m, keysearch.DefaultOptions())
//	p, _ := perm.Generate(m.Rows(), res.Key)
//	plain, err := rows.UnscrambleImage(img, p)
//
// Logging is silent by default; see SetLogger.
package rowcrypt
