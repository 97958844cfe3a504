// SPDX-License-Identifier: MIT

package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rowcrypt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for image.Decode.
	_ "golang.org/x/image/webp"
)

// DefaultJPEGQuality is the quality used when saving JPEG files.
const DefaultJPEGQuality = 95

// Load reads and decodes the image at path, detecting the format from the
// content. It returns the image and the detected format name.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image held in memory.
func LoadBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, auto-detecting PNG, JPEG, GIF, BMP, TIFF
// or WebP.
//
// Errors:
//   - ErrUnsupportedFormat when no registered decoder recognizes the data.
//   - other decode errors, wrapped.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("imageio: decode: %w", ErrUnsupportedFormat)
		}
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	return img, format, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img == nil {
		return ErrNilImage
	}
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("imageio: encode: %w", ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// Save encodes img into path, choosing the format from the extension.
// Lossy formats are written but logged as a warning.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrNilImage
	}
	if !format.Lossless() {
		rowcrypt.Logger().Warn("imageio: lossy output format, rows will not round-trip exactly",
			"path", path,
			"format", format.String(),
		)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}

	rowcrypt.Logger().Info("imageio: image written",
		"path", path,
		"format", format.String(),
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy(),
	)
	return nil
}
