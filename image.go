package farbfeld

import (
	"errors"
	"math"
)

// ComponentMax is the largest value a component can hold.
const ComponentMax = 1<<16 - 1

// Component is one 16-bit RGBA channel value. The type makes the range
// invariant structural: a Component cannot hold an out-of-range value, so
// range checks happen once, at construction.
type Component uint16

// Pixel is a single RGBA sample. Indices 0..3 are R, G, B, A.
type Pixel [4]Component

// Image is a raster of pixels, one slice per row, row-major. Every row must
// share the same length for the image to be encodable; Encode checks this.
// A nil Image is not a valid image.
type Image [][]Pixel

// Height returns the number of rows.
func (img Image) Height() int { return len(img) }

// Width returns the length of the first row, or 0 when there are none.
// Encode verifies that all remaining rows agree.
func (img Image) Width() int {
	if len(img) == 0 {
		return 0
	}
	return len(img[0])
}

// ComponentOf converts v to a Component, rejecting values outside
// [0, ComponentMax] with ErrComponentRange.
func ComponentOf(v int64) (Component, error) {
	if v < 0 || v > ComponentMax {
		return 0, validationErr(ErrComponentRange, -1, -1)
	}
	return Component(v), nil
}

// ComponentOfFloat converts an integral float to a Component. Fractional or
// non-finite values fail with ErrComponentType, a distinct condition from
// being numerically out of range.
func ComponentOfFloat(v float64) (Component, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, validationErr(ErrComponentType, -1, -1)
	}
	if v < 0 || v > ComponentMax {
		return 0, validationErr(ErrComponentRange, -1, -1)
	}
	return Component(v), nil
}

// PixelOf builds a pixel from exactly four component values.
func PixelOf(vals ...int64) (Pixel, error) {
	var p Pixel
	if len(vals) != len(p) {
		return Pixel{}, validationErr(ErrPixelArity, -1, -1)
	}
	for i, v := range vals {
		c, err := ComponentOf(v)
		if err != nil {
			return Pixel{}, err
		}
		p[i] = c
	}
	return p, nil
}

// FromInts builds an Image from untyped integer rows, validating pixel arity
// and component range element by element. The first offending pixel aborts
// the build with its position filled in. Row lengths are not checked here;
// that is Encode's job.
func FromInts(rows [][][]int64) (Image, error) {
	if rows == nil {
		return nil, validationErr(ErrNilImage, -1, -1)
	}
	img := make(Image, len(rows))
	for y, row := range rows {
		img[y] = make([]Pixel, len(row))
		for x, vals := range row {
			p, err := PixelOf(vals...)
			if err != nil {
				var ve *ValidationError
				if errors.As(err, &ve) {
					ve.Row, ve.Col = y, x
				}
				return nil, err
			}
			img[y][x] = p
		}
	}
	return img, nil
}
