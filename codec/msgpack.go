package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes a generic Go value using
// vmihailenco/msgpack/v5. The zero value is ready to use.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}
func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// ValueMsgpack is ValueCBOR's msgpack-backed twin: another independent
// differential-testing fixture for Value, using the same tagged []any
// representation so the two fixtures can be driven off one shared
// conversion (anyconv.go) while exercising genuinely distinct wire
// formats.
type ValueMsgpack struct {
	inner Msgpack[any]
}

var _ Codec[Value] = ValueMsgpack{}

func (c ValueMsgpack) Encode(v Value) ([]byte, error) {
	return c.inner.Encode(toAny(v))
}

func (c ValueMsgpack) Decode(b []byte) (Value, error) {
	x, err := c.inner.Decode(b)
	if err != nil {
		return Value{}, err
	}
	return fromAny(x)
}
