// Package codec provides pluggable serializers for farbfeld images and
// values derived from them. The canonical bit-exact form is the Farbfeld
// codec; the generic JSON/CBOR/Msgpack/Protobuf codecs exist for transport
// and cache payloads where the format itself is not the contract.
package codec

// Codec encodes/decodes values V to []byte for storage or transport.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
