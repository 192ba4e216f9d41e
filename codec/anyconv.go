package codec

import (
	"fmt"

	"github.com/dbor-go/dbor"
)

// toAny converts v into a self-describing, tagged Go value: every node is
// a 2-element []any of [kind string, payload]. Tagging explicitly, rather
// than relying on the target format's own type inference, is what lets
// fromAny invert the conversion exactly regardless of which concrete Go
// numeric type a given wire codec happens to decode integers/floats into.
func toAny(v Value) []any {
	switch v.Kind {
	case KindBool:
		return []any{"bool", v.Bool}
	case KindUint:
		return []any{"uint", v.Uint}
	case KindInt:
		return []any{"int", v.Int}
	case KindF32:
		return []any{"f32", float64(v.F32)}
	case KindF64:
		return []any{"f64", v.F64}
	case KindChar:
		return []any{"char", int64(v.Char)}
	case KindBytes:
		return []any{"bytes", v.Bytes}
	case KindNone:
		return []any{"none", nil}
	case KindSome:
		return []any{"some", toAny(*v.Some)}
	case KindUnit:
		return []any{"unit", nil}
	case KindSeq:
		elems := make([]any, len(v.Seq))
		for i, e := range v.Seq {
			elems[i] = toAny(e)
		}
		return []any{"seq", elems}
	case KindMap:
		pairs := make([]any, len(v.Map))
		for i, e := range v.Map {
			pairs[i] = []any{toAny(e.Key), toAny(e.Val)}
		}
		return []any{"map", pairs}
	case KindEnum:
		var id any
		if v.Enum.ID.IsName {
			id = []any{"name", v.Enum.ID.Name}
		} else {
			id = []any{"num", uint64(v.Enum.ID.Num)}
		}
		payload := toAny(Value{Kind: KindUnit})
		if v.Enum.Payload != nil {
			payload = toAny(*v.Enum.Payload)
		}
		return []any{"enum", []any{id, v.Enum.Wrapped, payload}}
	default:
		return []any{"unit", nil}
	}
}

func fromAny(x any) (Value, error) {
	arr, ok := asAnySlice(x)
	if !ok || len(arr) != 2 {
		return Value{}, fmt.Errorf("codec: malformed tagged value %#v", x)
	}
	tag, ok := arr[0].(string)
	if !ok {
		return Value{}, fmt.Errorf("codec: malformed tag %#v", arr[0])
	}
	payload := arr[1]
	switch tag {
	case "bool":
		b, ok := payload.(bool)
		if !ok {
			return Value{}, fmt.Errorf("codec: bool payload %#v", payload)
		}
		return Value{Kind: KindBool, Bool: b}, nil
	case "uint":
		return Value{Kind: KindUint, Uint: asUint64(payload)}, nil
	case "int":
		return Value{Kind: KindInt, Int: asInt64(payload)}, nil
	case "f32":
		return Value{Kind: KindF32, F32: float32(asFloat64(payload))}, nil
	case "f64":
		return Value{Kind: KindF64, F64: asFloat64(payload)}, nil
	case "char":
		return Value{Kind: KindChar, Char: rune(asInt64(payload))}, nil
	case "bytes":
		return Value{Kind: KindBytes, Bytes: asBytes(payload)}, nil
	case "none":
		return Value{Kind: KindNone}, nil
	case "unit":
		return Value{Kind: KindUnit}, nil
	case "some":
		inner, err := fromAny(payload)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindSome, Some: &inner}, nil
	case "seq":
		items, ok := asAnySlice(payload)
		if !ok {
			return Value{}, fmt.Errorf("codec: seq payload %#v", payload)
		}
		elems := make([]Value, len(items))
		for i, it := range items {
			e, err := fromAny(it)
			if err != nil {
				return Value{}, err
			}
			elems[i] = e
		}
		return Value{Kind: KindSeq, Seq: elems}, nil
	case "map":
		items, ok := asAnySlice(payload)
		if !ok {
			return Value{}, fmt.Errorf("codec: map payload %#v", payload)
		}
		entries := make([]MapEntry, len(items))
		for i, it := range items {
			pair, ok := asAnySlice(it)
			if !ok || len(pair) != 2 {
				return Value{}, fmt.Errorf("codec: map entry %#v", it)
			}
			k, err := fromAny(pair[0])
			if err != nil {
				return Value{}, err
			}
			val, err := fromAny(pair[1])
			if err != nil {
				return Value{}, err
			}
			entries[i] = MapEntry{Key: k, Val: val}
		}
		return Value{Kind: KindMap, Map: entries}, nil
	case "enum":
		parts, ok := asAnySlice(payload)
		if !ok || len(parts) != 3 {
			return Value{}, fmt.Errorf("codec: enum payload %#v", payload)
		}
		idParts, ok := asAnySlice(parts[0])
		if !ok || len(idParts) != 2 {
			return Value{}, fmt.Errorf("codec: enum id %#v", parts[0])
		}
		idTag, _ := idParts[0].(string)
		var id dbor.Identifier
		switch idTag {
		case "num":
			id = dbor.Identifier{Num: uint32(asUint64(idParts[1]))}
		case "name":
			id = dbor.Identifier{IsName: true, Name: asBytes(idParts[1])}
		default:
			return Value{}, fmt.Errorf("codec: enum id tag %q", idTag)
		}
		wrapped, _ := parts[1].(bool)
		pv, err := fromAny(parts[2])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindEnum, Enum: &EnumValue{ID: id, Wrapped: wrapped, Payload: &pv}}, nil
	default:
		return Value{}, fmt.Errorf("codec: unknown tag %q", tag)
	}
}

func asAnySlice(x any) ([]any, bool) {
	s, ok := x.([]any)
	return s, ok
}

func asUint64(x any) uint64 {
	switch n := x.(type) {
	case uint64:
		return n
	case int64:
		return uint64(n)
	case int:
		return uint64(n)
	case float64:
		return uint64(n)
	default:
		return 0
	}
}

func asInt64(x any) int64 {
	switch n := x.(type) {
	case int64:
		return n
	case uint64:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(x any) float64 {
	switch n := x.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

func asBytes(x any) []byte {
	switch b := x.(type) {
	case []byte:
		return b
	case string:
		return []byte(b)
	default:
		return nil
	}
}
