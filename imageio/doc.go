// SPDX-License-Identifier: MIT

// Package imageio loads and saves images for the rowcrypt tools.
//
// Decoding recognizes PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Encoding is chosen from the file
// extension: .png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff.
//
// Only lossless formats (PNG, BMP, TIFF) keep a scrambled image decodable;
// Save logs a warning for the others.
package imageio
