package dbor

import (
	"math"
	"unicode/utf8"

	"github.com/dbor-go/dbor/internal/header"
	"github.com/dbor-go/dbor/source"
)

// defaultMaxIgnoreDepth bounds Decoder.IgnoreValue's recursion into nested
// Seq/Map/Variant payloads. A truncated or adversarial stream that claims
// deep nesting without ever terminating would otherwise blow the Go stack
// instead of returning an error.
const defaultMaxIgnoreDepth = 10000

// Option configures a Decoder or Encoder at construction time. The same
// Option type serves both so WithLogger reads naturally at either call
// site; options that don't apply to one of the two (e.g.
// WithMaxIgnoreDepth on an Encoder) are silently inert there.
type Option func(*options)

type options struct {
	log            Logger
	maxIgnoreDepth int
}

func newOptions(opts []Option) options {
	o := options{log: NopLogger{}, maxIgnoreDepth: defaultMaxIgnoreDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger attaches a Logger. The default is NopLogger.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMaxIgnoreDepth overrides IgnoreValue's nesting guard.
func WithMaxIgnoreDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIgnoreDepth = n
		}
	}
}

// Decoder drives a Visitor by pulling a single DBOR value's header bytes
// and payload from a Source, dispatching to whichever typed Decode* method
// the driver calls (spec.md §4.2). It holds no lookahead beyond what the
// Source itself buffers: every Decode* call either fully consumes one
// value or returns an error, leaving the Source positioned either at the
// start of the next value or mid-stream on error.
type Decoder struct {
	src            source.Source
	log            Logger
	maxIgnoreDepth int
}

// NewDecoder wraps src. The caller retains ownership of src; Decoder never
// closes it.
func NewDecoder(src source.Source, opts ...Option) *Decoder {
	o := newOptions(opts)
	return &Decoder{src: src, log: o.log, maxIgnoreDepth: o.maxIgnoreDepth}
}

// Finished reports whether the underlying Source has no more bytes. A
// caller that has decoded one top-level value must check this before
// declaring success; a false result after a successful decode means
// trailing bytes followed the value (see RequireFinished).
func (d *Decoder) Finished() bool { return d.src.Finished() }

// RequireFinished returns ErrTrailingBytes if the Source is not exhausted,
// nil otherwise. Call it once after decoding a single top-level value.
func (d *Decoder) RequireFinished() error {
	if d.Finished() {
		return nil
	}
	return ErrTrailingBytes
}

// readWidthParam reads the width-coded parameter that follows a header
// byte in an integer/length/discriminant context: 0..WidthMax1 are
// inline, Width1..Width8 select a trailing big-endian payload of 1/2/4/8
// bytes, and anything else is an illegal minor for major.
func (d *Decoder) readWidthParam(major header.Major, minor byte) (uint64, error) {
	if minor <= header.WidthMax1 {
		return uint64(minor), nil
	}
	n, ok := header.TrailingBytesFor(minor)
	if !ok {
		return 0, errUnexpectedValue(major, minor)
	}
	return d.readBEUint(n)
}

func (d *Decoder) readIntParam(minor byte) (int64, error) {
	if minor <= header.WidthMax1 {
		return header.SignedCompactValue(minor), nil
	}
	n, ok := header.TrailingBytesFor(minor)
	if !ok {
		return 0, errUnexpectedValue(header.Int, minor)
	}
	u, err := d.readBEUint(n)
	if err != nil {
		return 0, err
	}
	return signExtend(u, n), nil
}

func signExtend(u uint64, n int) int64 {
	switch n {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	default:
		return int64(u)
	}
}

// readBEUint reads n big-endian bytes directly off the Source, explicitly
// shifting each byte into place. This is the one place endianness matters
// in this package: there is no host-endianness probe anywhere, only
// explicit byte assembly on read (and explicit shifting in the Encoder's
// putBEUint on write). Neither coder passes flipped=true to
// Source.Read/Sink.PutBytes.
func (d *Decoder) readBEUint(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := d.src.Next()
		if err != nil {
			return 0, asEof(err)
		}
		v = v<<8 | uint64(b)
	}
	return v, nil
}

func (d *Decoder) readF32() (float32, error) {
	u, err := d.readBEUint(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(u)), nil
}

func (d *Decoder) readF64() (float64, error) {
	u, err := d.readBEUint(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func toInt(n uint64, key string) (int, error) {
	if n > uint64(math.MaxInt) {
		return 0, errUsizeOverflow(key)
	}
	return int(n), nil
}

// readBytesWindow reads exactly n bytes, preferring a single borrowed
// Source.Read when the Source can satisfy the whole request instantly.
// When it can't, it loops accumulating an owned, Copied buffer — the
// chunked fallback original_source/src/de/read.rs performs when a byte
// string spans a refill boundary.
func (d *Decoder) readBytesWindow(n int) (source.Window, error) {
	if n == 0 {
		return source.Window{Kind: source.Persistent}, nil
	}
	if d.src.MaxInstantRead() >= n {
		w, err := d.src.Read(n, false)
		if err != nil {
			return source.Window{}, asEof(err)
		}
		if w.Len() != n {
			return source.Window{}, ErrEof
		}
		return w, nil
	}

	owned := make([]byte, 0, n)
	remaining := n
	for remaining > 0 {
		chunk := d.src.MaxInstantRead()
		if chunk <= 0 || chunk > remaining {
			chunk = remaining
		}
		w, err := d.src.Read(chunk, false)
		if err != nil {
			return source.Window{}, asEof(err)
		}
		if w.Len() == 0 {
			return source.Window{}, ErrEof
		}
		owned = append(owned, w.Bytes...)
		remaining -= w.Len()
	}
	d.log.Debug("decoded bytes via chunked owned copy", Fields{"len": n})
	return source.Window{Kind: source.Copied, Bytes: owned}, nil
}

func (d *Decoder) readSubLength() (int, error) {
	b, err := d.src.Next()
	if err != nil {
		return 0, asEof(err)
	}
	trailing, ok := header.SubLengthTrailing(b)
	if !ok {
		return 0, errUnexpectedValue(header.Variant, header.VariantName)
	}
	if trailing == 0 {
		return int(b), nil
	}
	n, err := d.readBEUint(trailing)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (d *Decoder) skip(n int) error {
	return asEof(source.MustConsume(d.src, n))
}

// visitUintWidth and visitIntWidth dispatch to the Visitor method matching
// the width that was actually on the wire, regardless of which DecodeU*/
// DecodeI* entry point the driver called (spec.md §6: "the framework
// widens as needed").
func visitUintWidth(v Visitor, minor byte, n uint64) error {
	switch minor {
	case header.Width8:
		return v.VisitU64(n)
	case header.Width4:
		return v.VisitU32(uint32(n))
	case header.Width2:
		return v.VisitU16(uint16(n))
	default:
		return v.VisitU8(uint8(n))
	}
}

func visitIntWidth(v Visitor, minor byte, n int64) error {
	switch minor {
	case header.Width8:
		return v.VisitI64(n)
	case header.Width4:
		return v.VisitI32(int32(n))
	case header.Width2:
		return v.VisitI16(int16(n))
	default:
		return v.VisitI8(int8(n))
	}
}

// decodeNumber is shared by every DecodeU*/DecodeI*/DecodeF32/DecodeF64
// entry point: any of those requests accepts any numeric major tag on the
// wire and visits with the specific width actually present.
func (d *Decoder) decodeNumber(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	switch major {
	case header.Uint:
		n, err := d.readWidthParam(header.Uint, minor)
		if err != nil {
			return err
		}
		return visitUintWidth(v, minor, n)
	case header.Int:
		n, err := d.readIntParam(minor)
		if err != nil {
			return err
		}
		return visitIntWidth(v, minor, n)
	case header.Misc:
		switch minor {
		case header.MiscF32:
			f, err := d.readF32()
			if err != nil {
				return err
			}
			return v.VisitF32(f)
		case header.MiscF64:
			f, err := d.readF64()
			if err != nil {
				return err
			}
			return v.VisitF64(f)
		default:
			return errUnexpectedValue(header.Misc, minor)
		}
	default:
		return errExpectedType(h, header.Uint, header.Int, header.Misc)
	}
}

func (d *Decoder) DecodeU8(v Visitor) error  { return d.decodeNumber(v) }
func (d *Decoder) DecodeU16(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeU32(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeU64(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeI8(v Visitor) error  { return d.decodeNumber(v) }
func (d *Decoder) DecodeI16(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeI32(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeI64(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeF32(v Visitor) error { return d.decodeNumber(v) }
func (d *Decoder) DecodeF64(v Visitor) error { return d.decodeNumber(v) }

// DecodeBool requires a Misc header with minor false or true.
func (d *Decoder) DecodeBool(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Misc {
		return errExpectedType(h, header.Misc)
	}
	switch minor {
	case header.MiscFalse:
		return v.VisitBool(false)
	case header.MiscTrue:
		return v.VisitBool(true)
	default:
		return errUnexpectedValue(header.Misc, minor)
	}
}

// DecodeUnit requires a Misc header with minor unit.
func (d *Decoder) DecodeUnit(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Misc {
		return errExpectedType(h, header.Misc)
	}
	if minor != header.MiscUnit {
		return errUnexpectedValue(header.Misc, minor)
	}
	return v.VisitUnit()
}

// DecodeOption peeks for Misc|none without consuming anything else; any
// other header is handed to VisitSome re-entering this same Decoder so the
// driver can decode the inner value with whatever typed call it needs.
func (d *Decoder) DecodeOption(v Visitor) error {
	h, err := d.src.PeekNext()
	if err != nil {
		return asEof(err)
	}
	if h == header.Make(header.Misc, header.MiscNone) {
		if _, err := d.src.Next(); err != nil {
			return asEof(err)
		}
		return v.VisitNone()
	}
	return v.VisitSome(d)
}

// DecodeChar accepts a Uint holding a Unicode scalar value (8-byte width
// rejected — chars never need more than 21 bits) or a Bytes value of
// length 1..4 holding exactly one UTF-8 encoded scalar.
func (d *Decoder) DecodeChar(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	switch major {
	case header.Uint:
		if minor == header.Width8 {
			return errUnexpectedValue(header.Uint, minor)
		}
		n, err := d.readWidthParam(header.Uint, minor)
		if err != nil {
			return err
		}
		if n > 0x10FFFF {
			return ErrFailedToParseChar
		}
		r := rune(n)
		if !utf8.ValidRune(r) {
			return ErrFailedToParseChar
		}
		return v.VisitChar(r)
	case header.Bytes:
		n, err := d.readWidthParam(header.Bytes, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "char bytes length")
		if err != nil {
			return err
		}
		if ln < 1 || ln > 4 {
			return ErrFailedToParseChar
		}
		w, err := d.readBytesWindow(ln)
		if err != nil {
			return err
		}
		r, size := utf8.DecodeRune(w.Bytes)
		if (r == utf8.RuneError && size <= 1) || size != len(w.Bytes) {
			return ErrFailedToParseChar
		}
		return v.VisitChar(r)
	default:
		return errExpectedType(h, header.Uint, header.Bytes)
	}
}

// DecodeBytes reads a Bytes header and its payload, handing the result to
// the Visitor as VisitBorrowedBytes for a Persistent window, or as
// VisitBytes for a Transient window or an owned copy (chunked reads
// spanning a refill boundary), per spec.md §4.4.
func (d *Decoder) DecodeBytes(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Bytes {
		return errExpectedType(h, header.Bytes)
	}
	n, err := d.readWidthParam(header.Bytes, minor)
	if err != nil {
		return err
	}
	ln, err := toInt(n, "bytes length")
	if err != nil {
		return err
	}
	return d.decodeBytesPayload(ln, v)
}

// DecodeStr delegates to DecodeBytes: strings and byte strings share a
// wire representation.
func (d *Decoder) DecodeStr(v Visitor) error { return d.DecodeBytes(v) }

func (d *Decoder) decodeBytesPayload(n int, v Visitor) error {
	w, err := d.readBytesWindow(n)
	if err != nil {
		return err
	}
	if w.Kind == source.Persistent {
		return v.VisitBorrowedBytes(w.Bytes)
	}
	return v.VisitBytes(w.Bytes)
}

// DecodeSeq requires a Seq header of any length.
func (d *Decoder) DecodeSeq(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Seq {
		return errExpectedType(h, header.Seq)
	}
	n, err := d.readWidthParam(header.Seq, minor)
	if err != nil {
		return err
	}
	ln, err := toInt(n, "seq length")
	if err != nil {
		return err
	}
	return v.VisitSeq(&seqAccess{d: d, total: ln, remaining: ln})
}

// DecodeTuple requires a Seq header whose declared length is exactly
// expected, used for fixed-arity tuples.
func (d *Decoder) DecodeTuple(expected int, v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Seq {
		return errExpectedType(h, header.Seq)
	}
	n, err := d.readWidthParam(header.Seq, minor)
	if err != nil {
		return err
	}
	ln, err := toInt(n, "seq length")
	if err != nil {
		return err
	}
	if ln != expected {
		return errUnexpectedValue(header.Seq, minor)
	}
	return v.VisitSeq(&seqAccess{d: d, total: ln, remaining: ln})
}

// DecodeStruct requires a Seq header of length numFields: structs are
// encoded as plain positional tuples on the wire (field names never
// appear).
func (d *Decoder) DecodeStruct(numFields int, v Visitor) error {
	return d.DecodeTuple(numFields, v)
}

// DecodeMap requires a Map header of any length.
func (d *Decoder) DecodeMap(v Visitor) error {
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Map {
		return errExpectedType(h, header.Map)
	}
	n, err := d.readWidthParam(header.Map, minor)
	if err != nil {
		return err
	}
	ln, err := toInt(n, "map length")
	if err != nil {
		return err
	}
	return v.VisitMap(&mapAccess{d: d, total: ln, remaining: ln})
}

// DecodeEnum accepts either a bare Uint (a unit-variant with no payload
// wrapper) or a Variant header (discriminant plus one payload value).
func (d *Decoder) DecodeEnum(v Visitor) error {
	h, err := d.src.PeekNext()
	if err != nil {
		return asEof(err)
	}
	major, _ := header.Split(h)
	switch major {
	case header.Uint:
		if _, err := d.src.Next(); err != nil {
			return asEof(err)
		}
		_, minor := header.Split(h)
		if minor == header.Width8 {
			return errUsizeOverflow("enum discriminant")
		}
		n, err := d.readWidthParam(header.Uint, minor)
		if err != nil {
			return err
		}
		return v.VisitEnum(&enumAccess{d: d, uintID: &n})
	case header.Variant:
		return v.VisitEnum(&enumAccess{d: d, isVariant: true})
	default:
		return errExpectedType(h, header.Uint, header.Variant)
	}
}

// DecodeIdentifier decodes a Variant's discriminant directly, without
// going through DecodeEnum/EnumAccess. It is only valid when the next
// header is a Variant header; anything else is ExpectedType.
func (d *Decoder) DecodeIdentifier() (Identifier, error) {
	h, err := d.src.Next()
	if err != nil {
		return Identifier{}, asEof(err)
	}
	major, minor := header.Split(h)
	if major != header.Variant {
		return Identifier{}, errExpectedType(h, header.Variant)
	}
	if minor == header.VariantName {
		n, err := d.readSubLength()
		if err != nil {
			return Identifier{}, err
		}
		w, err := d.readBytesWindow(n)
		if err != nil {
			return Identifier{}, err
		}
		return Identifier{IsName: true, Name: w.Bytes, NameBorrowed: w.Kind == source.Persistent}, nil
	}
	n, err := d.readWidthParam(header.Variant, minor)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Num: uint32(n)}, nil
}

// DecodeAny decodes whatever value is next, without requiring a
// particular major tag, dispatching to the Visitor method matching the
// exact shape on the wire.
func (d *Decoder) DecodeAny(v Visitor) error {
	h, err := d.src.PeekNext()
	if err != nil {
		return asEof(err)
	}
	major, _ := header.Split(h)
	if major == header.Variant {
		return d.DecodeEnum(v)
	}
	if _, err := d.src.Next(); err != nil {
		return asEof(err)
	}
	_, minor := header.Split(h)
	return d.dispatchAny(h, major, minor, v)
}

func (d *Decoder) dispatchAny(h byte, major header.Major, minor byte, v Visitor) error {
	switch major {
	case header.Uint:
		n, err := d.readWidthParam(header.Uint, minor)
		if err != nil {
			return err
		}
		return visitUintWidth(v, minor, n)
	case header.Int:
		n, err := d.readIntParam(minor)
		if err != nil {
			return err
		}
		return visitIntWidth(v, minor, n)
	case header.Misc:
		return d.dispatchMisc(minor, v)
	case header.Seq:
		n, err := d.readWidthParam(header.Seq, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "seq length")
		if err != nil {
			return err
		}
		return v.VisitSeq(&seqAccess{d: d, total: ln, remaining: ln})
	case header.Bytes:
		n, err := d.readWidthParam(header.Bytes, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "bytes length")
		if err != nil {
			return err
		}
		return d.decodeBytesPayload(ln, v)
	case header.Map:
		n, err := d.readWidthParam(header.Map, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "map length")
		if err != nil {
			return err
		}
		return v.VisitMap(&mapAccess{d: d, total: ln, remaining: ln})
	default:
		return errExpectedType(h, header.Uint, header.Int, header.Misc, header.Seq, header.Bytes, header.Map)
	}
}

func (d *Decoder) dispatchMisc(minor byte, v Visitor) error {
	switch minor {
	case header.MiscFalse:
		return v.VisitBool(false)
	case header.MiscTrue:
		return v.VisitBool(true)
	case header.MiscUnit:
		return v.VisitUnit()
	case header.MiscNone:
		return v.VisitNone()
	case header.MiscF32:
		f, err := d.readF32()
		if err != nil {
			return err
		}
		return v.VisitF32(f)
	case header.MiscF64:
		f, err := d.readF64()
		if err != nil {
			return err
		}
		return v.VisitF64(f)
	default:
		return errUnexpectedValue(header.Misc, minor)
	}
}

// IgnoreValue skips exactly one value without visiting it, recursing into
// Seq/Map elements and a Variant's payload. It is what a driver calls for
// a struct field it doesn't recognize, or a map value whose key it
// doesn't care about.
func (d *Decoder) IgnoreValue() error {
	d.log.Debug("skipping value", nil)
	return d.ignoreValue(0)
}

func (d *Decoder) ignoreValue(depth int) error {
	if depth > d.maxIgnoreDepth {
		return errMessage("ignore_value: exceeded max nesting depth %d", d.maxIgnoreDepth)
	}
	h, err := d.src.Next()
	if err != nil {
		return asEof(err)
	}
	major, minor := header.Split(h)
	switch major {
	case header.Uint, header.Int:
		if minor <= header.WidthMax1 {
			return nil
		}
		n, ok := header.TrailingBytesFor(minor)
		if !ok {
			return errUnexpectedValue(major, minor)
		}
		return d.skip(n)
	case header.Misc:
		switch minor {
		case header.MiscFalse, header.MiscTrue, header.MiscUnit, header.MiscNone:
			return nil
		case header.MiscF32:
			return d.skip(4)
		case header.MiscF64:
			return d.skip(8)
		default:
			return errUnexpectedValue(header.Misc, minor)
		}
	case header.Variant:
		if minor == header.VariantName {
			n, err := d.readSubLength()
			if err != nil {
				return err
			}
			if err := d.skip(n); err != nil {
				return err
			}
		} else if minor <= header.WidthMax1 {
			// inline discriminant, nothing further to skip
		} else if n, ok := header.TrailingBytesFor(minor); ok {
			if err := d.skip(n); err != nil {
				return err
			}
		} else {
			return errUnexpectedValue(header.Variant, minor)
		}
		return d.ignoreValue(depth + 1)
	case header.Seq:
		n, err := d.readWidthParam(header.Seq, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "seq length")
		if err != nil {
			return err
		}
		for i := 0; i < ln; i++ {
			if err := d.ignoreValue(depth + 1); err != nil {
				return err
			}
		}
		return nil
	case header.Map:
		n, err := d.readWidthParam(header.Map, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "map length")
		if err != nil {
			return err
		}
		for i := 0; i < ln*2; i++ {
			if err := d.ignoreValue(depth + 1); err != nil {
				return err
			}
		}
		return nil
	case header.Bytes:
		n, err := d.readWidthParam(header.Bytes, minor)
		if err != nil {
			return err
		}
		ln, err := toInt(n, "bytes length")
		if err != nil {
			return err
		}
		return d.skip(ln)
	default:
		return errExpectedType(h, header.Uint, header.Int, header.Misc, header.Variant, header.Seq, header.Bytes, header.Map)
	}
}

// seqAccess is the Decoder's SeqAccess implementation handed to
// Visitor.VisitSeq.
type seqAccess struct {
	d         *Decoder
	total     int
	remaining int
}

func (s *seqAccess) Len() int { return s.total }

func (s *seqAccess) Next(fn func(d *Decoder) error) (bool, error) {
	if s.remaining <= 0 {
		return false, nil
	}
	s.remaining--
	return true, fn(s.d)
}

// mapAccess is the Decoder's MapAccess implementation handed to
// Visitor.VisitMap.
type mapAccess struct {
	d         *Decoder
	total     int
	remaining int
}

func (m *mapAccess) Len() int { return m.total }

func (m *mapAccess) NextKey(fn func(d *Decoder) error) (bool, error) {
	if m.remaining <= 0 {
		return false, nil
	}
	return true, fn(m.d)
}

func (m *mapAccess) NextValue(fn func(d *Decoder) error) error {
	m.remaining--
	return fn(m.d)
}

// enumAccess is the Decoder's EnumAccess implementation handed to
// Visitor.VisitEnum. Exactly one of uintID/isVariant is set, mirroring the
// two discriminant shapes DecodeEnum accepts.
type enumAccess struct {
	d         *Decoder
	uintID    *uint64
	isVariant bool
}

func (a *enumAccess) Identifier(fn func(id Identifier) error) error {
	if a.uintID != nil {
		return fn(Identifier{Num: uint32(*a.uintID)})
	}
	id, err := a.d.DecodeIdentifier()
	if err != nil {
		return err
	}
	return fn(id)
}

func (a *enumAccess) Payload(fn func(d *Decoder) error) error {
	if a.uintID != nil {
		unit := NewDecoder(source.NewSlice([]byte{header.Make(header.Misc, header.MiscUnit)}))
		return fn(unit)
	}
	return fn(a.d)
}

func (a *enumAccess) Wrapped() bool { return a.isVariant }
