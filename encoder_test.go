package dbor

import (
	"bytes"
	"testing"

	"github.com/dbor-go/dbor/sink"
	"github.com/dbor-go/dbor/source"
)

func encode(t *testing.T, fn func(e *Encoder) error) []byte {
	t.Helper()
	snk := sink.NewVector(0)
	e := NewEncoder(snk)
	if err := fn(e); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := snk.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	return snk.Bytes()
}

func TestEmitU64Cascade(t *testing.T) {
	cases := []struct {
		name string
		in   uint64
		want []byte
	}{
		{"inline max", 23, []byte{0x17}},
		{"width1", 24, []byte{0x18, 0x18}},
		{"width2", 256, []byte{0x19, 0x01, 0x00}},
		{"width4", 65536, []byte{0x1a, 0x00, 0x01, 0x00, 0x00}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := encode(t, func(e *Encoder) error { return e.EmitU64(c.in) })
			if !bytes.Equal(got, c.want) {
				t.Fatalf("got % x, want % x", got, c.want)
			}
		})
	}
}

func TestEmitI8Cascade(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want []byte
	}{
		{"zero", 0, []byte{0x20}},
		{"max compact positive", 15, []byte{0x2f}},
		{"min compact negative", -8, []byte{0x30}},
		{"max compact negative", -1, []byte{0x37}},
		{"widened positive", 16, []byte{0x38, 0x10}},
		{"widened negative", -9, []byte{0x38, 0xf7}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := encode(t, func(e *Encoder) error { return e.EmitI64(c.in) })
			if !bytes.Equal(got, c.want) {
				t.Fatalf("got % x, want % x", got, c.want)
			}
		})
	}
}

func TestEmitEmptyComposites(t *testing.T) {
	t.Run("seq", func(t *testing.T) {
		got := encode(t, func(e *Encoder) error { _, err := e.EmitSeq(0); return err })
		if !bytes.Equal(got, []byte{0x80}) {
			t.Fatalf("got % x, want 80", got)
		}
	})
	t.Run("map", func(t *testing.T) {
		got := encode(t, func(e *Encoder) error { _, err := e.EmitMap(0); return err })
		if !bytes.Equal(got, []byte{0xc0}) {
			t.Fatalf("got % x, want c0", got)
		}
	})
	t.Run("bytes", func(t *testing.T) {
		got := encode(t, func(e *Encoder) error { return e.EmitBytes(nil) })
		if !bytes.Equal(got, []byte{0xa0}) {
			t.Fatalf("got % x, want a0", got)
		}
	})
}

func TestEmitTupleBoolUnitOption(t *testing.T) {
	got := encode(t, func(e *Encoder) error {
		s, err := e.EmitTuple(4)
		if err != nil {
			return err
		}
		if err := s.Element().EmitBool(true); err != nil {
			return err
		}
		if err := s.Element().EmitBool(false); err != nil {
			return err
		}
		if err := s.Element().EmitUnit(); err != nil {
			return err
		}
		return s.Element().EmitOption()
	})
	want := []byte{0x84, 0x41, 0x40, 0x42, 0x43}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEmitMapStringToUint(t *testing.T) {
	got := encode(t, func(e *Encoder) error {
		m, err := e.EmitMap(1)
		if err != nil {
			return err
		}
		if err := m.Key().EmitStr("ab"); err != nil {
			return err
		}
		return m.Value().EmitU64(7)
	})
	want := []byte{0xc1, 0xa2, 0x61, 0x62, 0x07}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEmitStructLikeTuple(t *testing.T) {
	got := encode(t, func(e *Encoder) error {
		s, err := e.EmitStruct(2)
		if err != nil {
			return err
		}
		if err := s.Element().EmitI64(-1); err != nil {
			return err
		}
		return s.Element().EmitU64(1000)
	})
	want := []byte{0x82, 0x37, 0x19, 0x03, 0xe8}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEmitNewtypeVariant(t *testing.T) {
	got := encode(t, func(e *Encoder) error {
		if err := e.EmitVariant(3); err != nil {
			return err
		}
		return e.EmitU64(255)
	})
	want := []byte{0x63, 0x18, 0xff}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEmitUnitVariant(t *testing.T) {
	got := encode(t, func(e *Encoder) error { return e.EmitUnitVariant(300) })
	want := []byte{0x19, 0x01, 0x2c}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x, want % x", got, want)
	}
}

func TestEmitSeqRejectsUnknownLength(t *testing.T) {
	snk := sink.NewVector(0)
	e := NewEncoder(snk)
	if _, err := e.EmitSeq(-1); err == nil {
		t.Fatalf("expected ErrMustKnowItemSize, got nil")
	}
}

func TestEncodeDecodeRoundTripsWidthMinimally(t *testing.T) {
	for _, v := range []uint64{0, 15, 23, 24, 255, 256, 65535, 65536, 1 << 40} {
		got := encode(t, func(e *Encoder) error { return e.EmitU64(v) })
		d := NewDecoder(source.NewSlice(got))
		var back uint64
		if err := d.DecodeU64(visitorFunc{u64: func(x uint64) error { back = x; return nil }}); err != nil {
			t.Fatalf("decode %d: %v", v, err)
		}
		if back != v {
			t.Fatalf("round trip: got %d, want %d", back, v)
		}
	}
}
