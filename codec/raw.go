package codec

// Bytes is an identity codec for already-encoded payloads. Useful when the
// caller wants to cache raw farbfeld buffers without decoding them first.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }
