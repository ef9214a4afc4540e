// Package farbfeld implements the farbfeld image format: an uncompressed
// big-endian RGBA raster with 16-bit components.
//
// Layout:
//
//	"farbfeld" | width(u32 be) | height(u32 be) | pixels(width*height*8 bytes)
//
// Decode and Encode are pure transformations between a byte stream and an
// in-memory pixel grid. The stream is a caller-owned capability: the codec
// never opens, closes or retains it, and each call makes at most one
// sequential pass. Decode rejects anything structurally off (short header,
// wrong signature, partial trailing pixel, pixel count that disagrees with
// the header) and never returns a partial image. Encode validates the whole
// image before producing a byte, so a failed encode writes nothing.
//
// Failures come in two disjoint families: *FormatError for untrusted input
// on decode, *ValidationError for caller-supplied data on encode or
// construction. Both unwrap to per-variant sentinels for errors.Is.
//
// Companion packages:
//   - codec: pluggable Codec[V] serializers (the canonical farbfeld bytes
//     plus JSON/CBOR/Msgpack/Protobuf for derived payloads).
//   - store: content-addressed cache of decoded images over a pluggable
//     byte-store Provider (ristretto, bigcache, redis).
package farbfeld
