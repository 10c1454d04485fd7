package surrogate

import (
	"reflect"
	"testing"
	"unicode/utf16"
)

func TestRoundTripSupplementary(t *testing.T) {
	for r := rune(0x10000); r <= 0x10FFFF; r++ {
		hi, lo := ToSurrogates(r)
		if !IsHigh(hi) || !IsLow(lo) {
			t.Fatalf("%#x split into non-surrogates %#x %#x", r, hi, lo)
		}
		if got := FromSurrogates(hi, lo); got != r {
			t.Fatalf("round trip for %#x gave %#x", r, got)
		}
	}
}

func TestBMPUnchanged(t *testing.T) {
	for _, r := range []rune{0, 'A', 0x3B1, 0xFFFD, 0xFFFF} {
		hi, lo := ToSurrogates(r)
		if rune(hi) != r || lo != 0 {
			t.Errorf("ToSurrogates(%#x) = (%#x, %#x), want (%#x, 0)", r, hi, lo, r)
		}
	}
}

func TestKnownPair(t *testing.T) {
	hi, lo := ToSurrogates(0x1D400) // MATHEMATICAL BOLD CAPITAL A
	if hi != 0xD835 || lo != 0xDC00 {
		t.Fatalf("got %#x %#x, want 0xd835 0xdc00", hi, lo)
	}
}

func TestFromSurrogatesInvalid(t *testing.T) {
	tests := []struct{ hi, lo uint16 }{
		{0x0041, 0xDC00},
		{0xD835, 0x0041},
		{0xDC00, 0xD835}, // swapped
		{0, 0},
	}
	for _, tt := range tests {
		if got := FromSurrogates(tt.hi, tt.lo); got != ReplacementChar {
			t.Errorf("FromSurrogates(%#x, %#x) = %#x, want U+FFFD", tt.hi, tt.lo, got)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []rune
	}{
		{name: "empty", units: []uint16{}, want: []rune{}},
		{name: "bmp", units: []uint16{'H', 'i'}, want: []rune{'H', 'i'}},
		{name: "pair", units: []uint16{0xD835, 0xDC00, '!'}, want: []rune{0x1D400, '!'}},
		{name: "lone low", units: []uint16{'a', 0xDC00, 'b'}, want: []rune{'a', 0xFFFD, 'b'}},
		{name: "high then bmp", units: []uint16{0xD835, 'b'}, want: []rune{0xFFFD, 'b'}},
		{name: "high high low", units: []uint16{0xD835, 0xD835, 0xDC00}, want: []rune{0xFFFD, 0x1D400}},
		{name: "trailing high", units: []uint16{'a', 0xD835}, want: []rune{'a', 0xFFFD}},
	}
	for _, tt := range tests {
		if got := Decode(tt.units); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %U, want %U", tt.name, got, tt.want)
		}
	}
}

func TestEncode(t *testing.T) {
	got := Encode([]rune{'H', 0x1D400, 0xD800, 0x110000})
	want := []uint16{'H', 0xD835, 0xDC00, 0xFFFD, 0xFFFD}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#x, want %#x", got, want)
	}
	if back := Decode(Encode([]rune{0x1F1E6, 0xE0041, 'x'})); !reflect.DeepEqual(back, []rune{0x1F1E6, 0xE0041, 'x'}) {
		t.Fatalf("encode/decode mismatch: %U", back)
	}
}

func TestAgreesWithUTF16(t *testing.T) {
	runes := []rune{'a', 0x3B1, 0xFFFD, 0x10000, 0x1D400, 0x1F600, 0xE0041, 0x10FFFF}
	if got, want := Encode(runes), utf16.Encode(runes); !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode: got %X, want %X", got, want)
	}
	units := utf16.Encode(runes)
	if got, want := Decode(units), utf16.Decode(units); !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode: got %X, want %X", got, want)
	}
}
