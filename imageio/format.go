// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output encoding.
type Format int

// Supported output formats.
const (
	PNG Format = iota
	JPEG
	GIF
	BMP
	TIFF
)

// String returns the lower-case format name, as image.Decode reports it.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Lossless reports whether decoding the encoded image returns the exact
// pixels. Scrambled images only survive lossless formats: JPEG smears
// neighbor rows into each other, and GIF quantizes to 256 colors.
func (f Format) Lossless() bool {
	return f == PNG || f == BMP || f == TIFF
}

// FormatFromPath picks the output format from the file extension
// (case-insensitive).
//
// Errors:
//   - ErrUnsupportedFormat for any other extension, including ".webp"
//     (decode only).
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("imageio: extension %q: %w", ext, ErrUnsupportedFormat)
	}
}
