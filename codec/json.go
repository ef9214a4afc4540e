package codec

import "encoding/json"

// JSON serializes values with encoding/json. Pixels marshal as plain integer
// arrays, so the output interoperates with anything that can read nested
// JSON arrays. The zero value is ready to use.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
