package codec

import (
	"fmt"

	"github.com/dbor-go/dbor"
	"github.com/dbor-go/dbor/sink"
	"github.com/dbor-go/dbor/source"
)

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged. It backs EncodeBytes/DecodeBytes below: the DBOR Bytes
// value's payload is the whole application-level value, so no further
// structure needs decoding once the header has been stripped.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a trivial codec for Go string values. Encode converts to []byte,
// and Decode converts back to string. By convention this assumes UTF-8 and
// performs no validation. It backs EncodeString/DecodeString below.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

// EncodeBytes writes b as a single top-level DBOR Bytes value: the
// []byte↔DBOR bytes passthrough, with Bytes as the identity codec sitting
// between the application value and the wire Emit call.
func EncodeBytes(b []byte) ([]byte, error) {
	payload, err := Bytes{}.Encode(b)
	if err != nil {
		return nil, err
	}
	snk := sink.NewVector(0)
	e := dbor.NewEncoder(snk)
	if err := e.EmitBytes(payload); err != nil {
		return nil, err
	}
	if err := snk.Finish(); err != nil {
		return nil, err
	}
	return snk.Bytes(), nil
}

// DecodeBytes reads a single top-level DBOR Bytes value from b and returns
// its payload, the Decode-side counterpart of EncodeBytes.
func DecodeBytes(b []byte) ([]byte, error) {
	d := dbor.NewDecoder(source.NewSlice(b))
	vv := &valueVisitor{}
	if err := d.DecodeBytes(vv); err != nil {
		return nil, err
	}
	if err := d.RequireFinished(); err != nil {
		return nil, err
	}
	if vv.out.Kind != KindBytes {
		return nil, fmt.Errorf("codec: expected bytes, got %s", vv.out.Kind)
	}
	return Bytes{}.Decode(vv.out.Bytes)
}

// EncodeString writes s as a single top-level DBOR Bytes value (strings
// and byte strings share a wire representation — see Encoder.EmitStr),
// with String as the identity codec doing the string↔[]byte conversion.
func EncodeString(s string) ([]byte, error) {
	payload, err := String{}.Encode(s)
	if err != nil {
		return nil, err
	}
	snk := sink.NewVector(0)
	e := dbor.NewEncoder(snk)
	if err := e.EmitBytes(payload); err != nil {
		return nil, err
	}
	if err := snk.Finish(); err != nil {
		return nil, err
	}
	return snk.Bytes(), nil
}

// DecodeString reads a single top-level DBOR value from b via DecodeStr and
// returns it as a string, the Decode-side counterpart of EncodeString.
func DecodeString(b []byte) (string, error) {
	d := dbor.NewDecoder(source.NewSlice(b))
	vv := &valueVisitor{}
	if err := d.DecodeStr(vv); err != nil {
		return "", err
	}
	if err := d.RequireFinished(); err != nil {
		return "", err
	}
	if vv.out.Kind != KindBytes {
		return "", fmt.Errorf("codec: expected bytes (string), got %s", vv.out.Kind)
	}
	return String{}.Decode(vv.out.Bytes)
}
