package unistyle

import (
	"strings"

	"github.com/npillmayer/unistyle/tables"
)

// specials are styled forms which do not follow the row/column addressing of
// the mapping tables. Each applies to exactly one style.
var specials = [...]struct {
	regular, styled rune
	style           Style
}{
	{0x0131, 0x1D6A4, Italic}, // LATIN SMALL LETTER DOTLESS I
	{0x0237, 0x1D6A5, Italic}, // LATIN SMALL LETTER DOTLESS J
	{0x03DC, 0x1D7CA, Bold},   // GREEK LETTER DIGAMMA
	{0x03DD, 0x1D7CB, Bold},   // GREEK SMALL LETTER DIGAMMA
}

// StyleConvert converts text to style. text may contain characters in any
// style, including a mix of styles; it is converted to regular form first.
// With style Regular, the regular form is returned.
//
// Characters without a styled form in the requested style, and characters
// outside of Basic Latin and Greek, are passed through unchanged. Invalid
// UTF-8 is replaced by U+FFFD.
func StyleConvert(text string, style Style) string {
	if len(text) == 0 {
		return text
	}
	if !style.Valid() {
		tracer().Errorf("invalid style %d, converting to regular", int(style))
		style = Regular
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		sb.WriteRune(convertRune(r, style))
	}
	return sb.String()
}

// ToRegular removes any styling from text.
func ToRegular(text string) string {
	return StyleConvert(text, Regular)
}

// ToStyled applies style to text, which is expected to be in regular form.
// Already styled characters are not recognized and pass through unchanged;
// use StyleConvert for input of unknown styling.
func ToStyled(text string, style Style) string {
	if len(text) == 0 || style == Regular || !style.Valid() {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) * 2)
	for _, r := range text {
		sb.WriteRune(toStyledRune(r, style))
	}
	return sb.String()
}

// convertRune is StyleConvert for a single code point. style must be valid.
func convertRune(r rune, style Style) rune {
	r = toRegularRune(r)
	if style == Regular {
		return r
	}
	return toStyledRune(r, style)
}

// toRegularRune maps a styled code point back to its regular character.
func toRegularRune(r rune) rune {
	if r < tables.FirstTarget {
		return r
	}
	if r >= tables.MathGreekFirst && r <= tables.MathGreekLast {
		return tables.GreekChar(int(r-tables.MathGreekFirst) % tables.MathGreekRange)
	}
	for _, sp := range specials {
		if sp.styled == r {
			return sp.regular
		}
	}
	if row, ok := tables.FindLatinRow(r, tables.LatinCandidateRow(r)); ok {
		return tables.LatinFirst + rune(row)
	}
	return r
}

// toStyledRune maps a regular character to its form in style (≠ Regular).
func toStyledRune(r rune, style Style) rune {
	var styled rune
	if r >= tables.LatinFirst && r <= tables.LatinLast {
		styled = tables.Styled(r, int(style))
	} else {
		styled = tables.StyledGreek(r, int(style))
		if styled == 0 {
			for _, sp := range specials {
				if sp.regular == r && sp.style == style {
					styled = sp.styled
					break
				}
			}
		}
	}
	if styled == 0 {
		return r
	}
	return styled
}
