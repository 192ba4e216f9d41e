package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is a Codec that serializes a generic, already-tagged Go value
// using fxamacker/cbor. The zero value is NOT ready to use; construct
// with NewCBOR or MustCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core
// Deterministic) when byte-for-byte stable output matters. Otherwise
// PreferredUnsortedEncOptions are used (smaller/faster defaults).
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a CBOR codec.
//   - deterministic true uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
func NewCBOR[V any](deterministic bool) (CBOR[V], error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables in tests.
func MustCBOR[V any](deterministic bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

// ValueCBOR is a differential-testing fixture: it round-trips a Value
// through CBOR's wire format using the tagged []any representation
// toAny/fromAny produce, entirely independent of this module's own
// Decoder/Encoder. Comparing a DBOR round-trip against a CBOR round-trip
// of the same logical Value catches an encoding divergence a same-codec
// round-trip test alone would miss — the two formats share enough
// tag/length grammar ancestry that a decoder bug on one side often has no
// analogue on the other.
type ValueCBOR struct {
	inner CBOR[any]
}

var _ Codec[Value] = ValueCBOR{}

func NewValueCBOR(deterministic bool) (ValueCBOR, error) {
	c, err := NewCBOR[any](deterministic)
	if err != nil {
		return ValueCBOR{}, err
	}
	return ValueCBOR{inner: c}, nil
}

func (c ValueCBOR) Encode(v Value) ([]byte, error) {
	return c.inner.Encode(toAny(v))
}

func (c ValueCBOR) Decode(b []byte) (Value, error) {
	x, err := c.inner.Decode(b)
	if err != nil {
		return Value{}, err
	}
	return fromAny(x)
}
