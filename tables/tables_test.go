package tables

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStyledLatin(t *testing.T) {
	tests := []struct {
		r     rune
		style int
		want  rune
	}{
		{r: 'A', style: 0, want: 0x1D400},   // bold
		{r: 'h', style: 1, want: 0x210E},    // italic h is PLANCK CONSTANT
		{r: 'B', style: 7, want: 0x212C},    // script B
		{r: ' ', style: 13, want: 0x3000},   // fullwidth space
		{r: '0', style: 14, want: 0x24EA},   // circled zero
		{r: '1', style: 20, want: 0xB9},     // superscript one
		{r: 'Z', style: 22, want: 0x1F1FF},  // regional indicator
		{r: '~', style: 23, want: 0xE007E},  // tag
		{r: 'a', style: 15, want: 0},        // no inverse circled small letters
		{r: 'A', style: Styles, want: 0},    // invalid style
		{r: 'A', style: -1, want: 0},        // regular
		{r: 0x7F, style: 0, want: 0},        // not in table
		{r: 0x1F, style: 13, want: 0},       // not in table
	}
	for _, tt := range tests {
		if got := Styled(tt.r, tt.style); got != tt.want {
			t.Errorf("Styled(%q, %d): got %#x, want %#x", tt.r, tt.style, got, tt.want)
		}
	}
}

func TestTagsColumn(t *testing.T) {
	for r := rune(LatinFirst); r <= LatinLast; r++ {
		if got := Styled(r, Styles-1); got != 0xE0000+r {
			t.Fatalf("tag for %q: got %#x, want %#x", r, got, 0xE0000+r)
		}
	}
}

func TestNoStyledValueBelowFirstTarget(t *testing.T) {
	for row := range latin {
		for style, r := range latin[row] {
			if r != 0 && r < FirstTarget {
				t.Fatalf("latin[%d][%d] = %#x is below first target", row, style, r)
			}
		}
	}
}

func TestGreek(t *testing.T) {
	if row, ok := GreekRow('α'); !ok || row != 26 {
		t.Fatalf("expected alpha at row 26, got %d/%v", row, ok)
	}
	if _, ok := GreekRow('ϝ'); ok {
		t.Fatalf("digamma must not be a Greek table row")
	}
	if got := StyledGreek('Ω', 0); got != 0x1D6C0 {
		t.Errorf("bold Omega: got %#x, want %#x", got, 0x1D6C0)
	}
	if got := StyledGreek('∂', 6); got != 0x1D7C3 {
		t.Errorf("sans-serif bold italic partial differential: got %#x, want %#x", got, 0x1D7C3)
	}
	if got := StyledGreek('α', 3); got != 0 {
		t.Errorf("sans-serif alpha should be unmapped, got %#x", got)
	}
	if got := StyledGreek('α', GreekStyles); got != 0 {
		t.Errorf("out-of-range style should be unmapped, got %#x", got)
	}
	for row := 0; row < GreekChars; row++ {
		if greek[row][3] != 0 || greek[row][5] != 0 {
			t.Fatalf("row %d has a sans-serif or sans-serif italic form", row)
		}
	}
}

func TestGreekRangeIsContiguous(t *testing.T) {
	// every math Greek code point is reachable by modulo arithmetic
	for r := rune(MathGreekFirst); r <= MathGreekLast; r++ {
		row := int(r-MathGreekFirst) % MathGreekRange
		col := int(r-MathGreekFirst) / MathGreekRange
		found := false
		for _, s := range greek[row] {
			if s == r {
				found = true
			}
		}
		if !found {
			t.Fatalf("%#x (block %d) not found in row %d", r, col, row)
		}
	}
}

func TestLatinCandidateRow(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{r: 0x1D400, want: 'A' - LatinFirst},
		{r: 0x1D41A, want: 'a' - LatinFirst},
		{r: 0x1D6A3, want: 'z' - LatinFirst},
		{r: 0x1D7CE, want: '0' - LatinFirst},
		{r: 0x1D7FF, want: '9' - LatinFirst},
		{r: 0x24B6, want: 0},
	}
	for _, tt := range tests {
		if got := LatinCandidateRow(tt.r); got != tt.want {
			t.Errorf("candidate row for %#x: got %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestReverseIndexAgreesWithScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	for row := range latin {
		for style, r := range latin[row] {
			if r == 0 {
				continue
			}
			start := LatinCandidateRow(r)
			want, wok := scanLatinRow(r, start)
			got, ok := FindLatinRow(r, start)
			if ok != wok || got != want {
				t.Fatalf("latin[%d][%d]=%#x: index gives %d/%v, scan gives %d/%v",
					row, style, r, got, ok, want, wok)
			}
			if got != row {
				t.Fatalf("latin[%d][%d]=%#x resolves to row %d", row, style, r, got)
			}
		}
	}
}

func TestFindLatinRowMisses(t *testing.T) {
	for _, r := range []rune{0x1D455, 'A', 0x3B1, 0x1F600, 0x10FFFF} {
		if row, ok := FindLatinRow(r, LatinCandidateRow(r)); ok {
			t.Errorf("%#x should not resolve, got row %d", r, row)
		}
	}
	// starting behind the row of a code point must fall back to the scan
	if _, ok := FindLatinRow(0x24B6, 'B'-LatinFirst); ok {
		t.Errorf("circled A must not be found when starting at row of B")
	}
}
