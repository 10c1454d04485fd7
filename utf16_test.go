package unistyle

import (
	"slices"
	"testing"
	"unicode/utf16"
)

func TestConvertUTF16(t *testing.T) {
	in := utf16.Encode([]rune(hello))
	for _, s := range Styles() {
		want := utf16.Encode([]rune(StyleConvert(hello, s)))
		got := ConvertUTF16(in, s)
		if !slices.Equal(got, want) {
			t.Errorf("%v: got %X, want %X", s, got, want)
		}
		if back := ConvertUTF16(got, Regular); !slices.Equal(back, in) {
			t.Errorf("%v: back to regular gives %X", s, back)
		}
	}
}

func TestConvertUTF16Pairs(t *testing.T) {
	got := ConvertUTF16([]uint16{'H', 'i'}, Bold)
	want := []uint16{0xD835, 0xDC07, 0xD835, 0xDC22}
	if !slices.Equal(got, want) {
		t.Fatalf("got %X, want %X", got, want)
	}
	if got := ConvertUTF16(nil, Bold); len(got) != 0 {
		t.Fatalf("expected empty output, got %X", got)
	}
}

func TestConvertUTF16LoneSurrogates(t *testing.T) {
	tests := []struct {
		in, want []uint16
	}{
		{[]uint16{0xD835, 'a'}, []uint16{0xFFFD, 0xD835, 0xDC1A}},
		{[]uint16{'a', 0xDC1A}, []uint16{0xD835, 0xDC1A, 0xFFFD}},
		{[]uint16{'a', 0xD835}, []uint16{0xD835, 0xDC1A, 0xFFFD}},
		{[]uint16{0xD835, 0xD835, 0xDC1A}, []uint16{0xFFFD, 0xD835, 0xDC1A}},
	}
	for _, tt := range tests {
		if got := ConvertUTF16(tt.in, Bold); !slices.Equal(got, tt.want) {
			t.Errorf("%X: got %X, want %X", tt.in, got, tt.want)
		}
	}
}
