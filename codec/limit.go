package codec

import "fmt"

// Limit wraps another codec to enforce a maximum payload size at Decode
// time; Encode is forwarded unchanged. If MaxDecode <= 0 the guard is off.
//
// Typical use: cap the raster size accepted from a shared cache backend so a
// foreign oversized entry cannot force a huge allocation.
type Limit[V any] struct {
	// Inner is the codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the largest payload (in bytes) Decode will hand to Inner.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
