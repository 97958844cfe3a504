// SPDX-License-Identifier: MIT

// Package gray holds the single-channel brightness matrix used by scoring and
// key search, and the luma formula that produces it from color pixels.
//
// Luma:
//
//	gray = (299·R + 587·G + 114·B) / 1000   (integer division, truncating)
//
// Storage:
//   - Matrix is row-major over one flat []uint8; Row(i) is a view into it.
//   - All rows have the same length by construction; 0×N and N×0 are legal.
//
// Usage:
//
//	m, err := gray.FromImage(img) // any image.Image
//	m, err := gray.FromRows(rows) // [][]int, e.g. in tests
package gray
