package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes any generated proto.Message. The constructor function
// supplies fresh messages for Decode (e.g. func() *pb.Frame { return &pb.Frame{} }).
type Protobuf[T proto.Message] struct {
	new func() T
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
