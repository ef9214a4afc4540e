package farbfeld

import (
	"io"

	"github.com/unkn0wn-root/farbfeld/internal/wire"
)

// Decode reads one complete farbfeld image from r. The reader is consumed to
// EOF; bytes beyond the declared raster are a format error, not ignored.
// Read errors from r are returned as-is, format defects as *FormatError.
func Decode(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(b)
}

// DecodeBytes decodes an in-memory farbfeld buffer.
func DecodeBytes(b []byte) (Image, error) {
	width, height, err := wire.ParseHeader(b)
	switch err {
	case nil:
	case wire.ErrShortHeader:
		return nil, formatErr(ErrTruncated, int64(len(b)))
	case wire.ErrBadMagic:
		return nil, formatErr(ErrBadSignature, 0)
	default:
		return nil, err
	}

	data := b[wire.HeaderSize:]
	if rem := len(data) % wire.PixelSize; rem != 0 {
		return nil, formatErr(ErrIncompletePixel, int64(len(b)-rem))
	}
	have := uint64(len(data) / wire.PixelSize)
	if want := wire.PixelCount(width, height); have != want {
		// covers both missing and trailing whole pixels, including any
		// trailing data after a zero-area header
		return nil, formatErr(ErrPixelCount, wire.HeaderSize)
	}

	return groupRows(parsePixels(data), int(width)), nil
}

func parsePixels(data []byte) []Pixel {
	pixels := make([]Pixel, 0, len(data)/wire.PixelSize)
	for off := 0; off < len(data); off += wire.PixelSize {
		r, g, b, a := wire.ParsePixel(data[off:])
		pixels = append(pixels, Pixel{Component(r), Component(g), Component(b), Component(a)})
	}
	return pixels
}

// groupRows reshapes the flat pixel stream into consecutive rows of width
// pixels. width == 0 short-circuits to no rows: there is nothing to chunk,
// whatever height the header declared.
func groupRows(pixels []Pixel, width int) Image {
	if width == 0 || len(pixels) == 0 {
		return Image{}
	}
	img := make(Image, 0, len(pixels)/width)
	for off := 0; off < len(pixels); off += width {
		img = append(img, pixels[off:off+width])
	}
	return img
}
