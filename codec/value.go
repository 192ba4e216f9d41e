package codec

import (
	"fmt"

	"github.com/dbor-go/dbor"
	"github.com/dbor-go/dbor/sink"
	"github.com/dbor-go/dbor/source"
)

// Kind tags which alternative of Value is populated.
type Kind int

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindF32
	KindF64
	KindChar
	KindBytes
	KindNone
	KindSome
	KindUnit
	KindSeq
	KindMap
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindChar:
		return "char"
	case KindBytes:
		return "bytes"
	case KindNone:
		return "none"
	case KindSome:
		return "some"
	case KindUnit:
		return "unit"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	case KindEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// MapEntry is one key/value pair of a KindMap Value, kept as an ordered
// slice rather than a Go map since DBOR maps are not required to be
// deduplicated or order-independent on the wire.
type MapEntry struct {
	Key Value
	Val Value
}

// EnumValue is the payload of a KindEnum Value.
type EnumValue struct {
	ID dbor.Identifier
	// Wrapped is false only for the bare-Uint unit-variant shape (no
	// Variant wrapper on the wire); Payload is still populated (as
	// KindUnit) in that case so callers don't need to special-case it.
	Wrapped bool
	Payload *Value
}

// Value is a minimal dynamic representation of one decoded DBOR value.
// It exists as a reference driver exercising dbor.Decoder/dbor.Encoder in
// this repository's own tests and cmd/dborcat; a full reflection-based
// struct/enum walker on top of dbor.Visitor is out of scope (spec.md §1).
type Value struct {
	Kind Kind

	Bool  bool
	Uint  uint64
	Int   int64
	F32   float32
	F64   float64
	Char  rune
	Bytes []byte

	Some *Value

	Seq []Value
	Map []MapEntry

	Enum *EnumValue
}

// Decode reads exactly one value from d into a Value, recursing through
// Seq/Map/Enum payloads.
func Decode(d *dbor.Decoder) (Value, error) {
	vv := &valueVisitor{}
	if err := d.DecodeAny(vv); err != nil {
		return Value{}, err
	}
	return vv.out, nil
}

// Encode writes v to e.
func Encode(e *dbor.Encoder, v Value) error {
	switch v.Kind {
	case KindBool:
		return e.EmitBool(v.Bool)
	case KindUint:
		return e.EmitU64(v.Uint)
	case KindInt:
		return e.EmitI64(v.Int)
	case KindF32:
		return e.EmitF32(v.F32)
	case KindF64:
		return e.EmitF64(v.F64)
	case KindChar:
		return e.EmitChar(v.Char)
	case KindBytes:
		return e.EmitBytes(v.Bytes)
	case KindNone:
		return e.EmitOption()
	case KindSome:
		if v.Some == nil {
			return fmt.Errorf("codec: KindSome Value has nil Some")
		}
		return Encode(e, *v.Some)
	case KindUnit:
		return e.EmitUnit()
	case KindSeq:
		seq, err := e.EmitSeq(len(v.Seq))
		if err != nil {
			return err
		}
		for _, elem := range v.Seq {
			if err := Encode(seq.Element(), elem); err != nil {
				return err
			}
		}
		return nil
	case KindMap:
		m, err := e.EmitMap(len(v.Map))
		if err != nil {
			return err
		}
		for _, entry := range v.Map {
			if err := Encode(m.Key(), entry.Key); err != nil {
				return err
			}
			if err := Encode(m.Value(), entry.Val); err != nil {
				return err
			}
		}
		return nil
	case KindEnum:
		if v.Enum == nil {
			return fmt.Errorf("codec: KindEnum Value has nil Enum")
		}
		return encodeEnum(e, *v.Enum)
	default:
		return fmt.Errorf("codec: unknown Kind %d", v.Kind)
	}
}

func encodeEnum(e *dbor.Encoder, ev EnumValue) error {
	if !ev.Wrapped {
		if ev.ID.IsName {
			return fmt.Errorf("codec: unit-variant cannot use a named identifier")
		}
		return e.EmitUnitVariant(ev.ID.Num)
	}
	if ev.ID.IsName {
		if err := e.EmitVariantName(ev.ID.Name); err != nil {
			return err
		}
	} else if err := e.EmitVariant(ev.ID.Num); err != nil {
		return err
	}
	payload := Value{Kind: KindUnit}
	if ev.Payload != nil {
		payload = *ev.Payload
	}
	return Encode(e, payload)
}

// EncodeToBytes is a convenience wrapper returning the encoded []byte
// directly, using a sink.VectorSink.
func EncodeToBytes(v Value) ([]byte, error) {
	snk := sink.NewVector(0)
	e := dbor.NewEncoder(snk)
	if err := Encode(e, v); err != nil {
		return nil, err
	}
	if err := snk.Finish(); err != nil {
		return nil, err
	}
	return snk.Bytes(), nil
}

// DecodeFromBytes is the Decode-side counterpart of EncodeToBytes. It
// additionally requires the input be fully consumed by the single
// top-level value, mirroring the "caller must check Finished" contract.
func DecodeFromBytes(b []byte) (Value, error) {
	d := dbor.NewDecoder(source.NewSlice(b))
	v, err := Decode(d)
	if err != nil {
		return Value{}, err
	}
	if err := d.RequireFinished(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// valueVisitor implements dbor.Visitor, populating out as Decoder calls
// into it.
type valueVisitor struct {
	out Value
}

func (vv *valueVisitor) VisitBool(v bool) error { vv.out = Value{Kind: KindBool, Bool: v}; return nil }

func (vv *valueVisitor) VisitU8(v uint8) error   { vv.out = Value{Kind: KindUint, Uint: uint64(v)}; return nil }
func (vv *valueVisitor) VisitU16(v uint16) error { vv.out = Value{Kind: KindUint, Uint: uint64(v)}; return nil }
func (vv *valueVisitor) VisitU32(v uint32) error { vv.out = Value{Kind: KindUint, Uint: uint64(v)}; return nil }
func (vv *valueVisitor) VisitU64(v uint64) error { vv.out = Value{Kind: KindUint, Uint: v}; return nil }

func (vv *valueVisitor) VisitI8(v int8) error   { vv.out = Value{Kind: KindInt, Int: int64(v)}; return nil }
func (vv *valueVisitor) VisitI16(v int16) error { vv.out = Value{Kind: KindInt, Int: int64(v)}; return nil }
func (vv *valueVisitor) VisitI32(v int32) error { vv.out = Value{Kind: KindInt, Int: int64(v)}; return nil }
func (vv *valueVisitor) VisitI64(v int64) error { vv.out = Value{Kind: KindInt, Int: v}; return nil }

func (vv *valueVisitor) VisitF32(v float32) error { vv.out = Value{Kind: KindF32, F32: v}; return nil }
func (vv *valueVisitor) VisitF64(v float64) error { vv.out = Value{Kind: KindF64, F64: v}; return nil }

func (vv *valueVisitor) VisitChar(v rune) error { vv.out = Value{Kind: KindChar, Char: v}; return nil }

func (vv *valueVisitor) VisitBorrowedBytes(b []byte) error { return vv.visitBytes(b) }
func (vv *valueVisitor) VisitBytes(b []byte) error         { return vv.visitBytes(b) }

func (vv *valueVisitor) visitBytes(b []byte) error {
	owned := make([]byte, len(b))
	copy(owned, b)
	vv.out = Value{Kind: KindBytes, Bytes: owned}
	return nil
}

func (vv *valueVisitor) VisitNone() error { vv.out = Value{Kind: KindNone}; return nil }

func (vv *valueVisitor) VisitSome(d *dbor.Decoder) error {
	inner, err := Decode(d)
	if err != nil {
		return err
	}
	vv.out = Value{Kind: KindSome, Some: &inner}
	return nil
}

func (vv *valueVisitor) VisitUnit() error { vv.out = Value{Kind: KindUnit}; return nil }

func (vv *valueVisitor) VisitSeq(a dbor.SeqAccess) error {
	elems := make([]Value, 0, a.Len())
	for {
		var elem Value
		ok, err := a.Next(func(d *dbor.Decoder) error {
			v, err := Decode(d)
			elem = v
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	vv.out = Value{Kind: KindSeq, Seq: elems}
	return nil
}

func (vv *valueVisitor) VisitMap(a dbor.MapAccess) error {
	entries := make([]MapEntry, 0, a.Len())
	for {
		var key Value
		ok, err := a.NextKey(func(d *dbor.Decoder) error {
			v, err := Decode(d)
			key = v
			return err
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var val Value
		if err := a.NextValue(func(d *dbor.Decoder) error {
			v, err := Decode(d)
			val = v
			return err
		}); err != nil {
			return err
		}
		entries = append(entries, MapEntry{Key: key, Val: val})
	}
	vv.out = Value{Kind: KindMap, Map: entries}
	return nil
}

func (vv *valueVisitor) VisitEnum(a dbor.EnumAccess) error {
	var id dbor.Identifier
	if err := a.Identifier(func(got dbor.Identifier) error {
		id = got
		return nil
	}); err != nil {
		return err
	}
	var payload Value
	if err := a.Payload(func(d *dbor.Decoder) error {
		p, err := Decode(d)
		payload = p
		return err
	}); err != nil {
		return err
	}
	if id.IsName {
		nameCopy := make([]byte, len(id.Name))
		copy(nameCopy, id.Name)
		id.Name = nameCopy
		id.NameBorrowed = false
	}
	vv.out = Value{Kind: KindEnum, Enum: &EnumValue{ID: id, Wrapped: a.Wrapped(), Payload: &payload}}
	return nil
}
