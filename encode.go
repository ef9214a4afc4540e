package farbfeld

import (
	"io"

	"github.com/unkn0wn-root/farbfeld/internal/wire"
)

// Encode validates img and writes its canonical encoding to w with a single
// Write call. Validation runs to completion before any byte is produced, so
// a failed Encode leaves the sink untouched.
func Encode(w io.Writer, img Image) error {
	buf, err := EncodeBytes(img)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// EncodeBytes returns the canonical encoding of img.
func EncodeBytes(img Image) ([]byte, error) {
	width, height, err := validate(img)
	if err != nil {
		return nil, err
	}

	size := uint64(wire.HeaderSize) + wire.PixelCount(width, height)*wire.PixelSize
	buf := make([]byte, wire.HeaderSize, size)
	wire.PutHeader(buf, width, height)

	var px [wire.PixelSize]byte
	for _, row := range img {
		for _, p := range row {
			wire.PutPixel(px[:], uint16(p[0]), uint16(p[1]), uint16(p[2]), uint16(p[3]))
			buf = append(buf, px[:]...)
		}
	}
	return buf, nil
}

// validate infers the dimensions and checks the structural invariants
// top-down: the image is present and every row matches the width taken from
// the first row. It fails fast on the first offending row. Pixel arity and
// component range hold by construction of Pixel and need no re-check.
func validate(img Image) (width, height uint32, err error) {
	if img == nil {
		return 0, 0, validationErr(ErrNilImage, -1, -1)
	}
	w := img.Width()
	for y, row := range img {
		if len(row) != w {
			return 0, 0, validationErr(ErrRowLength, y, -1)
		}
	}
	return uint32(w), uint32(img.Height()), nil
}
