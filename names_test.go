package unistyle

import (
	"strings"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name string
		want Style
	}{
		{"Bold", Bold},
		{"bold", Bold},
		{"Regular", Regular},
		{"Sans-Serif Bold", SansSerifBold},
		{"sans_serif_bold_italic", SansSerifBoldItalic},
		{"frakturb", FrakturBold},
		{"doub", DoubleStruck},
		{"ta", Tags},
		{"mono", Monospace},
		{"wide", Fullwidth},
		{"gothic", Fraktur},
		{"plain", Regular},
		{"INVERSESQ", InverseSquared},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{"", "empty"},
		{"  ", "empty"},
		{"comic", "unknown"},
		{"r", "ambiguous"},
		{"sansserifb", "ambiguous"},
		{"s", "ambiguous"},
	}
	for _, tt := range tests {
		_, err := ParseStyle(tt.name)
		if err == nil {
			t.Errorf("%q: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("%q: got error %q, want it to mention %q", tt.name, err, tt.msg)
		}
	}
}

func TestParseStyleRoundTrip(t *testing.T) {
	for _, s := range append([]Style{Regular}, Styles()...) {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("%v: got %v, %v", s, got, err)
		}
	}
}

func TestParseLineMark(t *testing.T) {
	tests := []struct {
		name string
		want LineMark
	}{
		{"underline", Underline},
		{"under", Underline},
		{"Double Underline", DoubleUnderline},
		{"doubleslash", DoubleSlashthrough},
		{"LongStrokeOverlay", Strikethrough},
		{"longslash", Slashthrough},
		{"strikeout", Strikethrough},
		{"asterisk", AsteriskAbove},
		{"diaeresis", DoubleDotAbove},
	}
	for _, tt := range tests {
		got, err := ParseLineMark(tt.name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.name, got, tt.want)
		}
	}
	for _, name := range []string{"", "strike", "double", "zigzag"} {
		if m, err := ParseLineMark(name); err == nil {
			t.Errorf("%q: expected error, got %v", name, m)
		}
	}
}

func TestLineMarkNames(t *testing.T) {
	if len(LineMarks()) != len(markNames) {
		t.Fatalf("got %d marks, want %d", len(LineMarks()), len(markNames))
	}
	seen := make(map[LineMark]bool)
	for _, m := range LineMarks() {
		if seen[m] {
			t.Errorf("duplicate mark %v", m)
		}
		seen[m] = true
		if !isCombining(rune(m)) {
			t.Errorf("%v is outside of the combining range", m)
		}
		got, err := ParseLineMark(m.String())
		if err != nil || got != m {
			t.Errorf("%v: got %v, %v", m, got, err)
		}
	}
	for _, m := range MainLines() {
		if !seen[m] {
			t.Errorf("main line %v not listed", m)
		}
	}
	if s := LineMark('x').String(); s != "LineMark(U+0078)" {
		t.Errorf("got %q for unnamed mark", s)
	}
}
