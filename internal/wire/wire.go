// Package wire defines the farbfeld byte layout shared by both halves of the
// codec. It is the single source of truth for the magic signature, the header
// shape and the pixel shape; the root package maps its mechanical failures
// into the public error taxonomy.
//
// Layout:
//
//	magic(8) = "farbfeld" | width(u32 be) | height(u32 be) | pixel stream
//	pixel = R(u16 be) | G(u16 be) | B(u16 be) | A(u16 be)
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	// MagicSize is the length of the leading signature.
	MagicSize = 8
	// HeaderSize is the full header length: signature plus two u32 dimensions.
	HeaderSize = MagicSize + 4 + 4
	// PixelSize is the encoded length of one RGBA pixel (four u16 components).
	PixelSize = 8
)

var (
	ErrShortHeader = errors.New("wire: short header")
	ErrBadMagic    = errors.New("wire: bad magic")

	magic = [MagicSize]byte{'f', 'a', 'r', 'b', 'f', 'e', 'l', 'd'}
)

// Magic returns a copy of the signature bytes.
func Magic() []byte {
	out := make([]byte, MagicSize)
	copy(out, magic[:])
	return out
}

// HasMagic reports whether b starts with the farbfeld signature.
func HasMagic(b []byte) bool {
	return len(b) >= MagicSize && bytes.Equal(b[:MagicSize], magic[:])
}

// PutHeader writes the signature and dimensions into b.
// b must be at least HeaderSize bytes.
func PutHeader(b []byte, width, height uint32) {
	copy(b, magic[:])
	binary.BigEndian.PutUint32(b[MagicSize:], width)
	binary.BigEndian.PutUint32(b[MagicSize+4:], height)
}

// ParseHeader validates the signature and returns the declared dimensions.
// The signature is checked only after the length, so a short buffer is always
// reported as truncation rather than a signature mismatch.
func ParseHeader(b []byte) (width, height uint32, err error) {
	if len(b) < HeaderSize {
		return 0, 0, ErrShortHeader
	}
	if !HasMagic(b) {
		return 0, 0, ErrBadMagic
	}
	width = binary.BigEndian.Uint32(b[MagicSize:])
	height = binary.BigEndian.Uint32(b[MagicSize+4:])
	return width, height, nil
}

// PutPixel packs four components big-endian into b.
// b must be at least PixelSize bytes.
func PutPixel(b []byte, r, g, bl, a uint16) {
	binary.BigEndian.PutUint16(b[0:], r)
	binary.BigEndian.PutUint16(b[2:], g)
	binary.BigEndian.PutUint16(b[4:], bl)
	binary.BigEndian.PutUint16(b[6:], a)
}

// ParsePixel unpacks one PixelSize-byte group. Components decoded from u16
// fields cannot be out of range, so there is nothing to validate here.
func ParsePixel(b []byte) (r, g, bl, a uint16) {
	r = binary.BigEndian.Uint16(b[0:])
	g = binary.BigEndian.Uint16(b[2:])
	bl = binary.BigEndian.Uint16(b[4:])
	a = binary.BigEndian.Uint16(b[6:])
	return
}

// PixelCount returns width*height widened to uint64. Both dimensions are
// independent u32s from the header, so the product must not be computed in
// 32 bits.
func PixelCount(width, height uint32) uint64 {
	return uint64(width) * uint64(height)
}
