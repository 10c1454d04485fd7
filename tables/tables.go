/*
Package tables holds the mapping tables between regular Basic Latin and Greek
characters and their styled Unicode counterparts.

Rows of the Latin table are addressed by character (U+0020 SPACE is row 0,
U+007E TILDE is row 94), columns by style index. A zero entry means that no
styled form exists for this character in this style.

The Greek table covers the characters listed by GreekChar(row), which are the
Greek letters and mathematical symbols having mathematical alphanumeric forms.

Source of the table data: text.js by Andrew West (http://www.babelstone.co.uk/Unicode/text.js),
CC BY-SA 3.0.

All tables are immutable. Lookups are safe for concurrent use.
*/
package tables

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

const (
	LatinChars  = 95     // number of Basic Latin rows
	LatinFirst  = 0x0020 // U+0020 SPACE
	LatinLast   = 0x007E // U+007E TILDE
	Styles      = 24     // number of style columns in the Latin table
	GreekChars  = 58     // number of Greek rows
	GreekStyles = 7      // number of style columns in the Greek table
	FirstTarget = 0x00B2 // smallest styled code point of any table

	MathLatinFirst  = 0x1D400 // MATHEMATICAL BOLD CAPITAL A
	MathLatinLast   = 0x1D6A3 // MATHEMATICAL MONOSPACE SMALL Z
	MathLatinRange  = 52
	MathGreekFirst  = 0x1D6A8 // MATHEMATICAL BOLD CAPITAL ALPHA
	MathGreekLast   = 0x1D7C9 // MATHEMATICAL SANS-SERIF BOLD ITALIC PI SYMBOL
	MathGreekRange  = 58
	MathDigitsFirst = 0x1D7CE // MATHEMATICAL BOLD DIGIT ZERO
	MathDigitsLast  = 0x1D7FF // MATHEMATICAL MONOSPACE DIGIT NINE
	MathDigitsRange = 10

	latinDigitsOffset  = 16 // row of '0'
	latinCapitalOffset = 33 // row of 'A'
	latinSmallOffset   = 65 // row of 'a'
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}

// Styled returns the styled form of a Basic Latin character r in the style
// column style, or 0 if there is none.
func Styled(r rune, style int) rune {
	if r < LatinFirst || r > LatinLast || style < 0 || style >= Styles {
		return 0
	}
	return latin[r-LatinFirst][style]
}

// GreekRow finds the row of a regular Greek character.
func GreekRow(r rune) (int, bool) {
	if !isGreekCandidate(r) {
		return 0, false
	}
	for row, g := range greekCharacters {
		if g == r {
			return row, true
		}
	}
	return 0, false
}

func isGreekCandidate(r rune) bool {
	return (r >= 0x0391 && r <= 0x03C9) ||
		(r >= 0x03D1 && r <= 0x03D6) ||
		(r >= 0x03F0 && r <= 0x03F5) ||
		(r >= 0x2202 && r <= 0x2207)
}

// StyledGreek returns the styled form of a regular Greek character r in the
// style column style, or 0 if there is none.
func StyledGreek(r rune, style int) rune {
	if style < 0 || style >= GreekStyles {
		return 0
	}
	row, ok := GreekRow(r)
	if !ok {
		return 0
	}
	return greek[row][style]
}

// GreekChar returns the regular character of a Greek row.
func GreekChar(row int) rune {
	return greekCharacters[row]
}

// LatinCandidateRow computes the first row to search when resolving a
// Latin-derived styled code point. Mathematical letters and digits map onto
// their row arithmetically, every other code point has to be searched for from
// row 0.
func LatinCandidateRow(r rune) int {
	switch {
	case r >= MathLatinFirst && r <= MathLatinLast:
		row := int(r-MathLatinFirst) % MathLatinRange
		if row < 26 {
			return row + latinCapitalOffset
		}
		return row - 26 + latinSmallOffset
	case r >= MathDigitsFirst && r <= MathDigitsLast:
		return latinDigitsOffset + int(r-MathDigitsFirst)%MathDigitsRange
	}
	return 0
}

// FindLatinRow searches the Latin table for a styled code point r, starting
// at row start. The first row (in table order) having r in any style column
// wins. It returns the row and true, or false if r is not a styled Latin form.
//
// The result is the same as scanning the table row by row, but a reverse
// index answers most queries in constant time.
func FindLatinRow(r rune, start int) (int, bool) {
	if r < FirstTarget || start < 0 || start >= LatinChars {
		return 0, false
	}
	v := reverseIndex().get(r)
	if v == 0 {
		return 0, false
	}
	if row := int(v) - 1; row >= start {
		return row, true
	}
	return scanLatinRow(r, start)
}

// scanLatinRow is the linear scan over rows start…LatinChars-1, checking every
// style column of a row before proceeding to the next one.
func scanLatinRow(r rune, start int) (int, bool) {
	for row := start; row < LatinChars; row++ {
		for style := 0; style < Styles; style++ {
			if latin[row][style] == r {
				return row, true
			}
		}
	}
	return 0, false
}

// --- Reverse index ---------------------------------------------------------

var reverse struct {
	once sync.Once
	rows pagedMap
}

// reverseIndex maps every styled Latin code point to its row+1. Entries are
// inserted in table order and never overwritten, so shared code points resolve
// to the first row.
func reverseIndex() *pagedMap {
	reverse.once.Do(func() {
		n := 0
		for row := range latin {
			for _, r := range latin[row] {
				if r == 0 || reverse.rows.get(r) != 0 {
					continue
				}
				reverse.rows.set(r, uint8(row+1))
				n++
			}
		}
		tracer().Debugf("reverse index holds %d styled code points in %d pages", n, reverse.rows.numPages())
	})
	return &reverse.rows
}
