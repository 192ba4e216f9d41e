package header

import "testing"

func TestSplitMake(t *testing.T) {
	cases := []struct {
		h     byte
		major Major
		minor byte
	}{
		{0x00, Uint, 0},
		{0x17, Uint, 23},
		{0x37, Int, 23},
		{0x41, Misc, 1},
		{0xe0, Reserved, 0},
		{0xff, Reserved, 31},
	}
	for _, tc := range cases {
		major, minor := Split(tc.h)
		if major != tc.major || minor != tc.minor {
			t.Fatalf("Split(%#x) = (%v, %d), want (%v, %d)", tc.h, major, minor, tc.major, tc.minor)
		}
		if got := Make(tc.major, tc.minor); got != tc.h {
			t.Fatalf("Make(%v, %d) = %#x, want %#x", tc.major, tc.minor, got, tc.h)
		}
	}
}

func TestWidthForMinimality(t *testing.T) {
	cases := []struct {
		v        uint64
		code     byte
		trailing int
	}{
		{0, 0, 0},
		{23, 23, 0},
		{24, Width1, 1},
		{255, Width1, 1},
		{256, Width2, 2},
		{65535, Width2, 2},
		{65536, Width4, 4},
		{1<<32 - 1, Width4, 4},
		{1 << 32, Width8, 8},
	}
	for _, tc := range cases {
		code, trailing := WidthFor(tc.v)
		if code != tc.code || trailing != tc.trailing {
			t.Fatalf("WidthFor(%d) = (%d, %d), want (%d, %d)", tc.v, code, trailing, tc.code, tc.trailing)
		}
	}
}

func TestSignedCompactCascade(t *testing.T) {
	if m, ok := SignedCompact(0); !ok || m != 0 {
		t.Fatalf("SignedCompact(0) = (%d, %v)", m, ok)
	}
	if m, ok := SignedCompact(15); !ok || m != 15 {
		t.Fatalf("SignedCompact(15) = (%d, %v)", m, ok)
	}
	if _, ok := SignedCompact(16); ok {
		t.Fatalf("SignedCompact(16) should not be compact")
	}
	if m, ok := SignedCompact(-1); !ok || m != 23 {
		t.Fatalf("SignedCompact(-1) = (%d, %v), want (23, true)", m, ok)
	}
	if m, ok := SignedCompact(-8); !ok || m != 16 {
		t.Fatalf("SignedCompact(-8) = (%d, %v), want (16, true)", m, ok)
	}
	if _, ok := SignedCompact(-9); ok {
		t.Fatalf("SignedCompact(-9) should not be compact")
	}
	for v := int64(-8); v <= 15; v++ {
		minor, ok := SignedCompact(v)
		if !ok {
			t.Fatalf("SignedCompact(%d) should be compact", v)
		}
		if got := SignedCompactValue(minor); got != v {
			t.Fatalf("SignedCompactValue(%d) = %d, want %d", minor, got, v)
		}
	}
}

func TestSignedWidthForCascade(t *testing.T) {
	cases := []struct {
		v        int64
		code     byte
		trailing int
	}{
		{16, Width1, 1},
		{-9, Width1, 1},
		{127, Width1, 1},
		{-128, Width1, 1},
		{128, Width2, 2},
		{-129, Width2, 2},
		{32767, Width2, 2},
		{-32768, Width2, 2},
		{32768, Width4, 4},
		{-32769, Width4, 4},
		{1 << 40, Width8, 8},
	}
	for _, tc := range cases {
		code, trailing := SignedWidthFor(tc.v)
		if code != tc.code || trailing != tc.trailing {
			t.Fatalf("SignedWidthFor(%d) = (%d, %d), want (%d, %d)", tc.v, code, trailing, tc.code, tc.trailing)
		}
	}
}

func TestTrailingBytesFor(t *testing.T) {
	for code := byte(0); code <= 31; code++ {
		n, ok := TrailingBytesFor(code)
		switch code {
		case Width1:
			if !ok || n != 1 {
				t.Fatalf("code %d: got (%d,%v)", code, n, ok)
			}
		case Width2:
			if !ok || n != 2 {
				t.Fatalf("code %d: got (%d,%v)", code, n, ok)
			}
		case Width4:
			if !ok || n != 4 {
				t.Fatalf("code %d: got (%d,%v)", code, n, ok)
			}
		case Width8:
			if !ok || n != 8 {
				t.Fatalf("code %d: got (%d,%v)", code, n, ok)
			}
		default:
			if ok {
				t.Fatalf("code %d: expected not ok", code)
			}
		}
	}
}

func TestSubLengthRoundTrip(t *testing.T) {
	cases := []int{0, 1, 251, 252, 255, 256, 65535, 65536, 1 << 20}
	for _, n := range cases {
		code, trailing := SubLengthFor(n)
		gotTrailing, ok := SubLengthTrailing(code)
		if !ok {
			t.Fatalf("SubLengthFor(%d) produced invalid code %d", n, code)
		}
		if gotTrailing != trailing {
			t.Fatalf("SubLengthTrailing(%d) = %d, want %d", code, gotTrailing, trailing)
		}
	}
}
