package codec

import (
	"github.com/unkn0wn-root/farbfeld"
)

// Farbfeld is the canonical image codec: Encode emits the bit-exact farbfeld
// byte stream and Decode parses it with the format's strict structural
// validation. This is the only representation the format defines; everything
// else in this package is a transport convenience.
type Farbfeld struct{}

var _ Codec[farbfeld.Image] = Farbfeld{}

func (Farbfeld) Encode(img farbfeld.Image) ([]byte, error) {
	return farbfeld.EncodeBytes(img)
}

func (Farbfeld) Decode(b []byte) (farbfeld.Image, error) {
	return farbfeld.DecodeBytes(b)
}
