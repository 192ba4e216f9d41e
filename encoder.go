package dbor

import (
	"math"

	"github.com/dbor-go/dbor/internal/header"
	"github.com/dbor-go/dbor/sink"
)

// Encoder writes DBOR values to a Sink one Emit* call at a time. Every
// Emit* call writes exactly one complete value's header and payload; the
// caller is responsible for driving nested values (EmitSeq/EmitMap return
// an accessor the caller uses to emit each element in turn).
type Encoder struct {
	snk sink.Sink
	log Logger
}

// NewEncoder wraps snk. The caller retains ownership of snk and must call
// snk.Finish itself once encoding is complete; Encoder never calls it.
func NewEncoder(snk sink.Sink, opts ...Option) *Encoder {
	o := newOptions(opts)
	return &Encoder{snk: snk, log: o.log}
}

func (e *Encoder) putHeader(m header.Major, minor byte) error {
	return e.putByte(header.Make(m, minor))
}

// putByte and putBytes wrap the Sink's raw I/O errors in the package's own
// CodeIO taxonomy (spec.md §7: "Io — propagated from the underlying
// stream (sink side only)"), so a caller never has to know whether the
// failure came from this package or from whatever io.Writer backs the
// Sink.
func (e *Encoder) putByte(b byte) error {
	if err := e.snk.PutByte(b); err != nil {
		return errIO(err)
	}
	return nil
}

func (e *Encoder) putBytes(b []byte, flipped bool) error {
	if err := e.snk.PutBytes(b, flipped); err != nil {
		return errIO(err)
	}
	return nil
}

// putWidthParam writes a header byte for major whose minor is the
// narrowest width code able to hold n, followed by n's trailing bytes (if
// any), big-endian. This is the one shared place width-code minimality is
// decided on the encode side.
func (e *Encoder) putWidthParam(m header.Major, n uint64) error {
	code, trailing := header.WidthFor(n)
	if err := e.putHeader(m, code); err != nil {
		return err
	}
	if trailing == 0 {
		return nil
	}
	return e.putBEUint(n, trailing)
}

// putBEUint writes n's low `width` bytes, most significant first. Like
// the decoder's readBEUint, this is explicit byte shifting, never a host
// memory-layout cast: there is no byte-order probe anywhere in this
// package.
func (e *Encoder) putBEUint(n uint64, width int) error {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	return e.putBytes(buf, false)
}

func (e *Encoder) EmitBool(v bool) error {
	if v {
		return e.putHeader(header.Misc, header.MiscTrue)
	}
	return e.putHeader(header.Misc, header.MiscFalse)
}

func (e *Encoder) EmitUnit() error {
	return e.putHeader(header.Misc, header.MiscUnit)
}

func (e *Encoder) EmitU8(v uint8) error   { return e.putWidthParam(header.Uint, uint64(v)) }
func (e *Encoder) EmitU16(v uint16) error { return e.putWidthParam(header.Uint, uint64(v)) }
func (e *Encoder) EmitU32(v uint32) error { return e.putWidthParam(header.Uint, uint64(v)) }
func (e *Encoder) EmitU64(v uint64) error { return e.putWidthParam(header.Uint, v) }

// emitSignedCompact writes the two compact signed ranges (0..15, -8..-1)
// as a single inline minor, and widens to the smallest signed width code
// otherwise. This is the encode-side mirror of
// header.SignedCompact/SignedWidthFor.
func (e *Encoder) emitSignedCompact(v int64) error {
	if minor, ok := header.SignedCompact(v); ok {
		return e.putHeader(header.Int, minor)
	}
	code, trailing := header.SignedWidthFor(v)
	if err := e.putHeader(header.Int, code); err != nil {
		return err
	}
	return e.putBEUint(uint64(v), trailing)
}

func (e *Encoder) EmitI8(v int8) error   { return e.emitSignedCompact(int64(v)) }
func (e *Encoder) EmitI16(v int16) error { return e.emitSignedCompact(int64(v)) }
func (e *Encoder) EmitI32(v int32) error { return e.emitSignedCompact(int64(v)) }
func (e *Encoder) EmitI64(v int64) error { return e.emitSignedCompact(v) }

func (e *Encoder) EmitF32(v float32) error {
	if err := e.putHeader(header.Misc, header.MiscF32); err != nil {
		return err
	}
	return e.putBEUint(uint64(math.Float32bits(v)), 4)
}

func (e *Encoder) EmitF64(v float64) error {
	if err := e.putHeader(header.Misc, header.MiscF64); err != nil {
		return err
	}
	return e.putBEUint(math.Float64bits(v), 8)
}

// EmitChar writes a Unicode scalar as a compact Uint (never the 8-byte
// width — no scalar needs more than 21 bits).
func (e *Encoder) EmitChar(r rune) error {
	return e.putWidthParam(header.Uint, uint64(r))
}

// EmitBytes writes a Bytes header with the minimal width code for len(b),
// followed by b verbatim.
func (e *Encoder) EmitBytes(b []byte) error {
	if err := e.putWidthParam(header.Bytes, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return e.putBytes(b, false)
}

// EmitStr writes s as a Bytes value: strings and byte strings share a
// wire representation.
func (e *Encoder) EmitStr(s string) error {
	return e.EmitBytes([]byte(s))
}

// EmitOption writes Misc|none. Emitting the Some case is just calling the
// inner value's own Emit* method directly — there is no wrapper header.
func (e *Encoder) EmitOption() error {
	return e.putHeader(header.Misc, header.MiscNone)
}

// EmitSeq writes a Seq header of the given length and returns a SeqEncoder
// the caller uses to emit exactly n elements.
func (e *Encoder) EmitSeq(n int) (*SeqEncoder, error) {
	if n < 0 {
		return nil, ErrMustKnowItemSize
	}
	if err := e.putWidthParam(header.Seq, uint64(n)); err != nil {
		return nil, err
	}
	return &SeqEncoder{e: e}, nil
}

// EmitTuple and EmitStruct are EmitSeq under another name: tuples and
// structs are both plain positional Seqs on the wire.
func (e *Encoder) EmitTuple(n int) (*SeqEncoder, error)  { return e.EmitSeq(n) }
func (e *Encoder) EmitStruct(n int) (*SeqEncoder, error) { return e.EmitSeq(n) }

// SeqEncoder is returned by EmitSeq/EmitTuple/EmitStruct. It carries no
// state beyond the parent Encoder: the caller is trusted to call Emit* on
// it exactly as many times as the declared length, since the length was
// already written to the Sink and cannot be revised after the fact.
type SeqEncoder struct{ e *Encoder }

// Element returns the Encoder to use for the next element. It exists
// purely for readability at call sites (seq.Element().EmitU8(1)) —
// SeqEncoder has no per-element bookkeeping of its own.
func (s *SeqEncoder) Element() *Encoder { return s.e }

// EmitMap writes a Map header of the given length and returns a
// MapEncoder the caller uses to emit exactly n key/value pairs.
func (e *Encoder) EmitMap(n int) (*MapEncoder, error) {
	if n < 0 {
		return nil, ErrMustKnowItemSize
	}
	if err := e.putWidthParam(header.Map, uint64(n)); err != nil {
		return nil, err
	}
	return &MapEncoder{e: e}, nil
}

// MapEncoder is returned by EmitMap.
type MapEncoder struct{ e *Encoder }

// Key returns the Encoder to use for the next pair's key.
func (m *MapEncoder) Key() *Encoder { return m.e }

// Value returns the Encoder to use for the pair's value, after Key.
func (m *MapEncoder) Value() *Encoder { return m.e }

// EmitUnitVariant writes a bare Uint discriminant with no Variant
// wrapper, matching DecodeEnum's "bare Uint is a unit-variant" shape.
func (e *Encoder) EmitUnitVariant(discriminant uint32) error {
	return e.putWidthParam(header.Uint, uint64(discriminant))
}

// EmitVariant writes a Variant header carrying discriminant as its
// numeric id. The caller then emits exactly one payload value on this
// same Encoder (newtype-variant), or drives EmitSeq/EmitMap when the
// payload is itself a tuple-variant or struct-variant.
func (e *Encoder) EmitVariant(discriminant uint32) error {
	return e.putWidthParam(header.Variant, uint64(discriminant))
}

// EmitVariantName writes a Variant header carrying name as a named
// byte-string identifier instead of a numeric id (spec.md §9
// "Identifier as bytes").
func (e *Encoder) EmitVariantName(name []byte) error {
	if err := e.putHeader(header.Variant, header.VariantName); err != nil {
		return err
	}
	if err := e.putSubLength(len(name)); err != nil {
		return err
	}
	if len(name) == 0 {
		return nil
	}
	return e.putBytes(name, false)
}

func (e *Encoder) putSubLength(n int) error {
	code, trailing := header.SubLengthFor(n)
	if err := e.putByte(code); err != nil {
		return err
	}
	if trailing == 0 {
		return nil
	}
	return e.putBEUint(uint64(n), trailing)
}
