package farbfeld

import (
	"io"
	"math"
)

// NormPixel is a pixel with each component scaled to [0, 1].
type NormPixel [4]float64

// Normalize scales every component by 1/65535. This is a display
// convenience: float division is not bit-exact across the boundary values,
// and the result is not part of the canonical format.
func Normalize(img Image) [][]NormPixel {
	out := make([][]NormPixel, len(img))
	for y, row := range img {
		out[y] = make([]NormPixel, len(row))
		for x, p := range row {
			for i, c := range p {
				out[y][x][i] = float64(c) / ComponentMax
			}
		}
	}
	return out
}

// Denormalize maps [0, 1] components back to 16-bit values, rounding to the
// nearest integer. Values outside [0, 1] fail with ErrComponentRange and NaN
// with ErrComponentType. Exact inversion of Normalize holds only up to
// floating-point precision.
func Denormalize(rows [][]NormPixel) (Image, error) {
	if rows == nil {
		return nil, validationErr(ErrNilImage, -1, -1)
	}
	img := make(Image, len(rows))
	for y, row := range rows {
		img[y] = make([]Pixel, len(row))
		for x, p := range row {
			for i, v := range p {
				if math.IsNaN(v) {
					return nil, validationErr(ErrComponentType, y, x)
				}
				if v < 0 || v > 1 {
					return nil, validationErr(ErrComponentRange, y, x)
				}
				img[y][x][i] = Component(math.Round(v * ComponentMax))
			}
		}
	}
	return img, nil
}

// DecodeNormalized decodes one image from r and returns it pre-scaled to
// [0, 1]. Purely a convenience composition of Decode and Normalize.
func DecodeNormalized(r io.Reader) ([][]NormPixel, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Normalize(img), nil
}
