// Package header holds the low-level, bounds-unaware DBOR wire-grammar
// constants shared by the encoder and decoder: the major/minor split of a
// header byte and the width-code tables used to pick and parse the
// trailing-byte payload of an integer, length, or discriminant.
//
// Nothing in this package touches a Source or Sink; it only classifies and
// assembles header bytes. It is internal because the major/minor split is
// an implementation detail of the wire format, not part of the public
// Decoder/Encoder surface.
package header

// Major is the 3-bit type tag occupying the top bits of a header byte.
type Major byte

const (
	Uint     Major = 0
	Int      Major = 1
	Misc     Major = 2
	Variant  Major = 3
	Seq      Major = 4
	Bytes    Major = 5
	Map      Major = 6
	Reserved Major = 7
)

func (m Major) String() string {
	switch m {
	case Uint:
		return "Uint"
	case Int:
		return "Int"
	case Misc:
		return "Misc"
	case Variant:
		return "Variant"
	case Seq:
		return "Seq"
	case Bytes:
		return "Bytes"
	case Map:
		return "Map"
	case Reserved:
		return "Reserved"
	default:
		return "Invalid"
	}
}

// Minor width codes shared by Uint, Int, Variant, Seq, Bytes and Map
// headers. 0..23 carry the value inline; 24..27 select a 1/2/4/8-byte
// big-endian trailing payload; 28..31 are errors in length/integer
// contexts.
const (
	WidthMax1 = 23 // largest inline literal
	Width1    = 24 // 1 trailing byte
	Width2    = 25 // 2 trailing bytes
	Width4    = 26 // 4 trailing bytes
	Width8    = 27 // 8 trailing bytes
)

// Misc minor values.
const (
	MiscFalse byte = 0
	MiscTrue  byte = 1
	MiscUnit  byte = 2
	MiscNone  byte = 3
	MiscF32   byte = 4
	MiscF64   byte = 5
)

// Variant minor values above the inline discriminant range.
const (
	VariantName byte = 27 // minor 27: sub-length-prefixed byte-string name follows
)

// Sub-length codes used under Variant|27 for the discriminant name length.
const (
	SubLenMax    = 251 // 0..251: literal length
	SubLen1      = 252 // 1 trailing byte
	SubLen2      = 253 // 2 trailing bytes (big-endian)
	SubLen4      = 254 // 4 trailing bytes (big-endian)
)

// Split decomposes a header byte into its major tag and minor value.
func Split(h byte) (Major, byte) {
	return Major(h >> 5), h & 0x1f
}

// Make assembles a header byte from a major tag and minor value. The
// caller is responsible for ensuring minor fits in 5 bits.
func Make(m Major, minor byte) byte {
	return byte(m)<<5 | (minor & 0x1f)
}

// WidthFor returns the smallest width code (WidthMax1 inline, or
// Width1/2/4/8) able to hold v losslessly, together with the number of
// trailing bytes that width code implies (0, 1, 2, 4 or 8).
func WidthFor(v uint64) (code byte, trailing int) {
	switch {
	case v <= WidthMax1:
		return byte(v), 0
	case v <= 0xff:
		return Width1, 1
	case v <= 0xffff:
		return Width2, 2
	case v <= 0xffffffff:
		return Width4, 4
	default:
		return Width8, 8
	}
}

// TrailingBytesFor returns how many trailing bytes a width code implies,
// and whether the code is a valid width code at all (28..31 are not).
func TrailingBytesFor(widthCode byte) (n int, ok bool) {
	switch widthCode {
	case Width1:
		return 1, true
	case Width2:
		return 2, true
	case Width4:
		return 4, true
	case Width8:
		return 8, true
	default:
		return 0, false
	}
}

// SignedCompact returns the minor value for v if v fits one of the two
// compact signed ranges (0..15 or -8..-1), and ok=true. Callers fall
// through to the widening width-code cascade when ok is false. Keeping
// this as a single table lookup, rather than duplicating the range
// checks at each integer width, is what spec.md's design notes ask for.
func SignedCompact(v int64) (minor byte, ok bool) {
	switch {
	case v >= 0 && v <= 15:
		return byte(v), true
	case v >= -8 && v <= -1:
		return byte(v + 24), true
	default:
		return 0, false
	}
}

// SignedCompactValue inverts SignedCompact: given a minor in 0..23,
// returns the signed value it represents.
func SignedCompactValue(minor byte) int64 {
	if minor <= 15 {
		return int64(minor)
	}
	return int64(minor) - 24
}

// SignedWidthFor returns the smallest width code needed to hold v in
// two's-complement once the compact ranges (handled separately by
// SignedCompact) don't apply. The cascade is evaluated small-to-large so
// the narrowest code always wins.
func SignedWidthFor(v int64) (code byte, trailing int) {
	switch {
	case v >= -128 && v <= 127:
		return Width1, 1
	case v >= -32768 && v <= 32767:
		return Width2, 2
	case v >= -2147483648 && v <= 2147483647:
		return Width4, 4
	default:
		return Width8, 8
	}
}

// SubLengthFor returns the smallest sub-length code for n, used only for
// the Variant|27 discriminant-name length prefix.
func SubLengthFor(n int) (code byte, trailing int) {
	switch {
	case n <= SubLenMax:
		return byte(n), 0
	case n <= 0xff:
		return SubLen1, 1
	case n <= 0xffff:
		return SubLen2, 2
	default:
		return SubLen4, 4
	}
}

// SubLengthTrailing returns how many trailing bytes a sub-length code
// implies, and whether it is a valid sub-length code.
func SubLengthTrailing(code byte) (n int, ok bool) {
	switch code {
	case SubLen1:
		return 1, true
	case SubLen2:
		return 2, true
	case SubLen4:
		return 4, true
	default:
		if code <= SubLenMax {
			return 0, true
		}
		return 0, false
	}
}
