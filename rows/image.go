// SPDX-License-Identifier: MIT

package rows

import (
	"image"

	"github.com/katalvlaran/rowcrypt/perm"
	xdraw "golang.org/x/image/draw"
)

// ScrambleImage returns a new NRGBA image, origin (0,0), whose row y is row
// p[y] of img.
//
// Errors: ErrNilInput, ErrSizeMismatch (len(p) != height), ErrOutOfRange.
func ScrambleImage(img image.Image, p perm.Permutation) (*image.NRGBA, error) {
	if img == nil {
		return nil, rowsErrorf(opScrambleImg, ErrNilInput)
	}
	if err := checkPerm(p, img.Bounds().Dy()); err != nil {
		return nil, rowsErrorf(opScrambleImg, err)
	}
	src := asNRGBA(img)
	out := image.NewNRGBA(image.Rect(0, 0, src.Rect.Dx(), src.Rect.Dy()))
	for y, from := range p {
		copy(pixRow(out, y), pixRow(src, from))
	}
	return out, nil
}

// UnscrambleImage returns a new NRGBA image whose row p[y] is row y of img.
// Rows never written by a non-bijective p stay transparent black.
//
// Errors: as ScrambleImage.
func UnscrambleImage(img image.Image, p perm.Permutation) (*image.NRGBA, error) {
	if img == nil {
		return nil, rowsErrorf(opUnscrambleImg, ErrNilInput)
	}
	if err := checkPerm(p, img.Bounds().Dy()); err != nil {
		return nil, rowsErrorf(opUnscrambleImg, err)
	}
	src := asNRGBA(img)
	out := image.NewNRGBA(image.Rect(0, 0, src.Rect.Dx(), src.Rect.Dy()))
	for y, to := range p {
		copy(pixRow(out, to), pixRow(src, y))
	}
	return out, nil
}

// asNRGBA returns img itself when it already is an *image.NRGBA (it is only
// read), otherwise a converted copy.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// pixRow returns the Pix bytes of row y, counted from the image's top edge.
func pixRow(img *image.NRGBA, y int) []uint8 {
	off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
	return img.Pix[off : off+4*img.Rect.Dx()]
}
