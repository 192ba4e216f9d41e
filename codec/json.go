package codec

import (
	"encoding/base64"
	"encoding/json"
)

// JSON is a Codec that serializes values using the standard library's
// encoding/json. The zero value is ready to use and respects `json` struct tags.
//
// Notes:
//   - Interface-typed fields may decode to default concrete types (e.g. numbers
//     to float64) unless you provide custom unmarshaling.
//   - Time values use encoding/json defaults.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

// ValueJSON is JSON's differential-testing counterpart to ValueCBOR/
// ValueMsgpack: the same tagged []any representation (anyconv.go) drives
// a third, independent wire format. JSON has no native byte-string type,
// so encoding/json already base64-encodes any []byte it finds by
// reflection (even nested inside an interface{} tree) — that half is
// free. Decoding back through interface{} loses that type information,
// though: every JSON string comes back as a plain Go string, so the
// "bytes" and named-enum-identifier payloads have to be explicitly
// base64-decoded before handing the tree to fromAny.
type ValueJSON struct{}

var _ Codec[Value] = ValueJSON{}

func (ValueJSON) Encode(v Value) ([]byte, error) {
	return json.Marshal(toAny(v))
}

func (ValueJSON) Decode(b []byte) (Value, error) {
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return Value{}, err
	}
	return fromAny(jsonRestoreBytes(x))
}

// jsonRestoreBytes walks a tagged []any tree produced by round-tripping
// toAny's output through encoding/json, base64-decoding the "bytes" tag's
// payload and a "name"-tagged enum identifier back into []byte. Every
// other tag is left as encoding/json decoded it (fromAny's asUint64/
// asInt64/asFloat64 already accept the float64 JSON numbers decode into).
func jsonRestoreBytes(x any) any {
	arr, ok := x.([]any)
	if !ok || len(arr) != 2 {
		return x
	}
	tag, ok := arr[0].(string)
	if !ok {
		return x
	}
	payload := arr[1]
	switch tag {
	case "bytes":
		payload = jsonDecodeBase64(payload)
	case "some":
		payload = jsonRestoreBytes(payload)
	case "seq":
		payload = jsonRestoreBytesSlice(payload)
	case "map":
		if items, ok := payload.([]any); ok {
			pairs := make([]any, len(items))
			for i, it := range items {
				pair, ok := it.([]any)
				if !ok || len(pair) != 2 {
					pairs[i] = it
					continue
				}
				pairs[i] = []any{jsonRestoreBytes(pair[0]), jsonRestoreBytes(pair[1])}
			}
			payload = pairs
		}
	case "enum":
		if parts, ok := payload.([]any); ok && len(parts) == 3 {
			id := parts[0]
			if idParts, ok := id.([]any); ok && len(idParts) == 2 {
				if idTag, _ := idParts[0].(string); idTag == "name" {
					id = []any{idTag, jsonDecodeBase64(idParts[1])}
				}
			}
			payload = []any{id, parts[1], jsonRestoreBytes(parts[2])}
		}
	}
	return []any{tag, payload}
}

func jsonRestoreBytesSlice(x any) any {
	items, ok := x.([]any)
	if !ok {
		return x
	}
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = jsonRestoreBytes(it)
	}
	return out
}

func jsonDecodeBase64(x any) any {
	s, ok := x.(string)
	if !ok {
		return x
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return x
	}
	return decoded
}
