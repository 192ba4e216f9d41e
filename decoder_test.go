package dbor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dbor-go/dbor/internal/header"
	"github.com/dbor-go/dbor/source"
)

func decodeHex(t *testing.T, b []byte) *Decoder {
	t.Helper()
	return NewDecoder(source.NewSlice(b))
}

func TestDecodeU64Cascade(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"inline max", []byte{0x17}, 23},
		{"width1", []byte{0x18, 0x18}, 24},
		{"width2", []byte{0x19, 0x01, 0x00}, 256},
		{"width4", []byte{0x1a, 0x00, 0x01, 0x00, 0x00}, 65536},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := decodeHex(t, c.in)
			var got uint64
			err := d.DecodeU64(visitorFunc{u64: func(v uint64) error { got = v; return nil }})
			if err != nil {
				t.Fatalf("DecodeU64: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
			if !d.Finished() {
				t.Fatalf("expected source exhausted")
			}
		})
	}
}

func TestDecodeI8Cascade(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want int64
	}{
		{"zero", []byte{0x20}, 0},
		{"max compact positive", []byte{0x2f}, 15},
		{"min compact negative", []byte{0x30}, -8},
		{"max compact negative", []byte{0x37}, -1},
		{"widened positive", []byte{0x38, 0x10}, 16},
		{"widened negative", []byte{0x38, 0xf7}, -9},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := decodeHex(t, c.in)
			var got int64
			err := d.DecodeI64(visitorFunc{i64: func(v int64) error { got = v; return nil }})
			if err != nil {
				t.Fatalf("DecodeI64: %v", err)
			}
			if got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestDecodeUintEndianness(t *testing.T) {
	d := decodeHex(t, []byte{0x19, 0x01, 0x02})
	var got uint64
	if err := d.DecodeU64(visitorFunc{u64: func(v uint64) error { got = v; return nil }}); err != nil {
		t.Fatalf("DecodeU64: %v", err)
	}
	if got != 0x0102 {
		t.Fatalf("got %#x, want 0x0102", got)
	}
}

func TestDecodeReservedIsExpectedType(t *testing.T) {
	d := decodeHex(t, []byte{0xe0})
	err := d.DecodeAny(visitorFunc{})
	var derr *Error
	if !errors.As(err, &derr) || derr.Code != CodeExpectedType {
		t.Fatalf("got %v, want ExpectedType", err)
	}
	if derr.Actual != 0xe0 {
		t.Fatalf("Actual = %#x, want 0xe0", derr.Actual)
	}
}

func TestDecodeMiscUnexpectedMinor(t *testing.T) {
	d := decodeHex(t, []byte{header.Make(header.Misc, 6)})
	err := d.DecodeAny(visitorFunc{})
	var derr *Error
	if !errors.As(err, &derr) || derr.Code != CodeUnexpectedValue {
		t.Fatalf("got %v, want UnexpectedValue", err)
	}
	if derr.Type != header.Misc || derr.Minor != 6 {
		t.Fatalf("got type=%v minor=%d", derr.Type, derr.Minor)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	d := decodeHex(t, []byte{0x41, 0x41}) // true, true
	if err := d.DecodeBool(visitorFunc{}); err != nil {
		t.Fatalf("DecodeBool: %v", err)
	}
	if err := d.RequireFinished(); !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeEofOnTruncation(t *testing.T) {
	full := []byte{0x1a, 0x00, 0x01, 0x00, 0x00}
	for n := 0; n < len(full); n++ {
		d := decodeHex(t, full[:n])
		err := d.DecodeU64(visitorFunc{})
		if !errors.Is(err, ErrEof) {
			t.Fatalf("truncated at %d bytes: got %v, want ErrEof", n, err)
		}
	}
}

func TestDecodeEmptyComposites(t *testing.T) {
	t.Run("seq", func(t *testing.T) {
		d := decodeHex(t, []byte{0x80})
		var n int
		err := d.DecodeSeq(visitorFunc{seq: func(a SeqAccess) error { n = a.Len(); return nil }})
		if err != nil || n != 0 {
			t.Fatalf("got n=%d err=%v", n, err)
		}
	})
	t.Run("map", func(t *testing.T) {
		d := decodeHex(t, []byte{0xc0})
		var n int
		err := d.DecodeMap(visitorFunc{mp: func(a MapAccess) error { n = a.Len(); return nil }})
		if err != nil || n != 0 {
			t.Fatalf("got n=%d err=%v", n, err)
		}
	})
	t.Run("bytes", func(t *testing.T) {
		d := decodeHex(t, []byte{0xa0})
		var got []byte
		err := d.DecodeBytes(visitorFunc{
			borrowed: func(b []byte) error { got = b; return nil },
			owned:    func(b []byte) error { got = b; return nil },
		})
		if err != nil || len(got) != 0 {
			t.Fatalf("got %v err=%v", got, err)
		}
	})
}

func TestDecodeUnitVariant(t *testing.T) {
	d := decodeHex(t, []byte{0x19, 0x01, 0x2c}) // discriminant 300
	var id Identifier
	var wrapped bool
	err := d.DecodeEnum(visitorFunc{enum: func(a EnumAccess) error {
		if err := a.Identifier(func(got Identifier) error { id = got; return nil }); err != nil {
			return err
		}
		wrapped = a.Wrapped()
		return a.Payload(func(d *Decoder) error { return d.DecodeUnit(visitorFunc{}) })
	}})
	if err != nil {
		t.Fatalf("DecodeEnum: %v", err)
	}
	if id.Num != 300 || wrapped {
		t.Fatalf("got id=%+v wrapped=%v", id, wrapped)
	}
}

func TestDecodeNewtypeVariant(t *testing.T) {
	d := decodeHex(t, []byte{0x63, 0x18, 0xff}) // discriminant 3 wrapping 255
	var id Identifier
	var payload uint64
	err := d.DecodeEnum(visitorFunc{enum: func(a EnumAccess) error {
		if err := a.Identifier(func(got Identifier) error { id = got; return nil }); err != nil {
			return err
		}
		return a.Payload(func(d *Decoder) error {
			return d.DecodeU64(visitorFunc{u64: func(v uint64) error { payload = v; return nil }})
		})
	}})
	if err != nil {
		t.Fatalf("DecodeEnum: %v", err)
	}
	if id.Num != 3 || payload != 255 {
		t.Fatalf("got id=%+v payload=%d", id, payload)
	}
}

func TestDecodeBorrowInvariant(t *testing.T) {
	input := []byte{0xa2, 'a', 'b'}
	slice := source.NewSlice(input)
	d := NewDecoder(slice)
	var kind string
	err := d.DecodeBytes(visitorFunc{
		borrowed: func(b []byte) error { kind = "persistent"; return nil },
		owned:    func(b []byte) error { kind = "owned"; return nil },
	})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if kind != "persistent" {
		t.Fatalf("got %s, want persistent borrow from a SliceSource", kind)
	}

	reader := NewDecoder(source.NewReader(bytes.NewReader(input)))
	err = reader.DecodeBytes(visitorFunc{
		borrowed: func(b []byte) error { kind = "persistent"; return nil },
		owned:    func(b []byte) error { kind = "owned"; return nil },
	})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if kind != "owned" {
		t.Fatalf("got %s, want a transient-classified (owned-by-contract) window from a ReaderSource", kind)
	}
}

func TestIgnoreValueSkipsEquivalently(t *testing.T) {
	// tuple (true, false, unit, none)
	in := []byte{0x84, 0x41, 0x40, 0x42, 0x43}
	d := decodeHex(t, in)
	if err := d.IgnoreValue(); err != nil {
		t.Fatalf("IgnoreValue: %v", err)
	}
	if !d.Finished() {
		t.Fatalf("expected source exhausted after ignoring top-level value")
	}
}

// visitorFunc is a Visitor where every method is an optional callback;
// unset callbacks succeed without recording anything. It lets each test
// above exercise exactly the one Visit* call it cares about.
type visitorFunc struct {
	bl       func(bool) error
	u64      func(uint64) error
	i64      func(int64) error
	f32      func(float32) error
	f64      func(float64) error
	ch       func(rune) error
	borrowed func([]byte) error
	owned    func([]byte) error
	none     func() error
	some     func(*Decoder) error
	unit     func() error
	seq      func(SeqAccess) error
	mp       func(MapAccess) error
	enum     func(EnumAccess) error
}

func (v visitorFunc) VisitBool(b bool) error {
	if v.bl != nil {
		return v.bl(b)
	}
	return nil
}
func (v visitorFunc) VisitU8(x uint8) error  { return v.visitU(uint64(x)) }
func (v visitorFunc) VisitU16(x uint16) error { return v.visitU(uint64(x)) }
func (v visitorFunc) VisitU32(x uint32) error { return v.visitU(uint64(x)) }
func (v visitorFunc) VisitU64(x uint64) error { return v.visitU(x) }
func (v visitorFunc) visitU(x uint64) error {
	if v.u64 != nil {
		return v.u64(x)
	}
	return nil
}
func (v visitorFunc) VisitI8(x int8) error   { return v.visitI(int64(x)) }
func (v visitorFunc) VisitI16(x int16) error { return v.visitI(int64(x)) }
func (v visitorFunc) VisitI32(x int32) error { return v.visitI(int64(x)) }
func (v visitorFunc) VisitI64(x int64) error { return v.visitI(x) }
func (v visitorFunc) visitI(x int64) error {
	if v.i64 != nil {
		return v.i64(x)
	}
	return nil
}
func (v visitorFunc) VisitF32(x float32) error {
	if v.f32 != nil {
		return v.f32(x)
	}
	return nil
}
func (v visitorFunc) VisitF64(x float64) error {
	if v.f64 != nil {
		return v.f64(x)
	}
	return nil
}
func (v visitorFunc) VisitChar(r rune) error {
	if v.ch != nil {
		return v.ch(r)
	}
	return nil
}
func (v visitorFunc) VisitBorrowedBytes(b []byte) error {
	if v.borrowed != nil {
		return v.borrowed(b)
	}
	return nil
}
func (v visitorFunc) VisitBytes(b []byte) error {
	if v.owned != nil {
		return v.owned(b)
	}
	return nil
}
func (v visitorFunc) VisitNone() error {
	if v.none != nil {
		return v.none()
	}
	return nil
}
func (v visitorFunc) VisitSome(d *Decoder) error {
	if v.some != nil {
		return v.some(d)
	}
	return nil
}
func (v visitorFunc) VisitUnit() error {
	if v.unit != nil {
		return v.unit()
	}
	return nil
}
func (v visitorFunc) VisitSeq(a SeqAccess) error {
	if v.seq != nil {
		return v.seq(a)
	}
	return nil
}
func (v visitorFunc) VisitMap(a MapAccess) error {
	if v.mp != nil {
		return v.mp(a)
	}
	return nil
}
func (v visitorFunc) VisitEnum(a EnumAccess) error {
	if v.enum != nil {
		return v.enum(a)
	}
	return nil
}
