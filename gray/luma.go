// SPDX-License-Identifier: MIT

package gray

import (
	"image"
	"image/color"
)

// Luma weights, scaled by lumaScale (ITU-R BT.601).
const (
	lumaR     = 299
	lumaG     = 587
	lumaB     = 114
	lumaScale = 1000
)

// Luma converts one 8-bit RGB triple to brightness using integer arithmetic.
// The result is truncated, never rounded.
func Luma(r, g, b uint8) uint8 {
	return uint8((lumaR*int(r) + lumaG*int(g) + lumaB*int(b)) / lumaScale)
}

// FromImage converts img into a GrayMatrix of the same size
// (Dy rows × Dx columns, indexed from the image origin).
//
// Pixels are read as 8-bit non-premultiplied RGB, the way file decoders
// report them. *image.NRGBA and *image.Gray are read directly from their
// pixel buffers; other types go through color.NRGBAModel.
//
// Errors:
//   - ErrNilImage when img is nil.
func FromImage(img image.Image) (*Matrix, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	b := img.Bounds()
	h, w := b.Dy(), b.Dx()
	m := &Matrix{r: h, c: w, data: make([]uint8, h*w)}

	var x, y int
	switch src := img.(type) {
	case *image.NRGBA:
		for y = 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			dst := m.data[y*w : (y+1)*w]
			for x = 0; x < w; x++ {
				p := src.Pix[off+4*x : off+4*x+3 : off+4*x+3]
				dst[x] = Luma(p[0], p[1], p[2])
			}
		}
	case *image.Gray:
		// Luma(g,g,g) == g since the weights sum to lumaScale.
		for y = 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(m.data[y*w:(y+1)*w], src.Pix[off:off+w])
		}
	default:
		for y = 0; y < h; y++ {
			dst := m.data[y*w : (y+1)*w]
			for x = 0; x < w; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst[x] = Luma(c.R, c.G, c.B)
			}
		}
	}
	return m, nil
}
