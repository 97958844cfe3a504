// SPDX-License-Identifier: MIT

package imageio

import "errors"

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when an image format cannot be decoded
	// or an output extension has no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrNilImage is returned when encoding a nil image.
	ErrNilImage = errors.New("imageio: nil image")
)
