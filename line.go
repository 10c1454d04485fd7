package unistyle

import (
	"strings"
	"unicode/utf8"
)

// LineMark is a combining mark drawing a line (or another decoration) over,
// under or through the character it follows.
type LineMark rune

// Line marks. Long*Overlay are alternative names for the through-marks.
const (
	Underline             LineMark = 0x0332 // COMBINING LOW LINE
	DoubleUnderline       LineMark = 0x0333 // COMBINING DOUBLE LOW LINE
	Overline              LineMark = 0x0305 // COMBINING OVERLINE
	Strikethrough         LineMark = 0x0336 // COMBINING LONG STROKE OVERLAY
	StrikethroughVertical LineMark = 0x20E6 // COMBINING DOUBLE VERTICAL STROKE OVERLAY
	Slashthrough          LineMark = 0x0338 // COMBINING LONG SOLIDUS OVERLAY
	DoubleSlashthrough    LineMark = 0x20EB // COMBINING LONG DOUBLE SOLIDUS OVERLAY

	LongStrokeOverlay        = Strikethrough
	LongSlashOverlay         = Slashthrough
	LongDoubleSolidusOverlay = DoubleSlashthrough
)

// Further combining marks which may be used with AddLine.
const (
	GreekVaria              LineMark = 0x0300 // COMBINING GRAVE ACCENT
	GreekOxia               LineMark = 0x0301 // COMBINING ACUTE ACCENT
	Hat                     LineMark = 0x0302 // COMBINING CIRCUMFLEX ACCENT
	Tilde                   LineMark = 0x0303
	Macron                  LineMark = 0x0304
	GreekVrachy             LineMark = 0x0306 // COMBINING BREVE
	DotAbove                LineMark = 0x0307
	DoubleDotAbove          LineMark = 0x0308 // COMBINING DIAERESIS
	HookAbove               LineMark = 0x0309
	RingAbove               LineMark = 0x030A
	DoubleAcuteAccent       LineMark = 0x030B
	Caron                   LineMark = 0x030C
	VerticalLineAbove       LineMark = 0x030D
	DoubleVerticalLineAbove LineMark = 0x030E
	DoubleGraveAccent       LineMark = 0x030F
	TildeBelow              LineMark = 0x0330
	MacronBelow             LineMark = 0x0331
	TildeOverlay            LineMark = 0x0334
	ShortStrokeOverlay      LineMark = 0x0335
	ShortSlashOverlay       LineMark = 0x0337
	TripleUnderdot          LineMark = 0x20E8
	AsteriskAbove           LineMark = 0x20F0
)

// Range of code points treated as combining marks by AddLine and RemoveLine.
const (
	combiningFirst = 0x0300
	combiningLast  = 0x20F0
)

func isCombining(r rune) bool {
	return r >= combiningFirst && r <= combiningLast
}

// AddLine appends marks, in the given order, after every character of text
// which is not itself in the combining mark range U+0300…U+20F0.
// Without marks, text is returned unchanged.
func AddLine(text string, marks ...LineMark) string {
	if len(marks) == 0 || len(text) == 0 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) * (1 + 3*len(marks)))
	for _, r := range text {
		sb.WriteRune(r)
		if !isCombining(r) {
			for _, m := range marks {
				sb.WriteRune(rune(m))
			}
		}
	}
	return sb.String()
}

// ReplaceLine removes marks from text, then adds them again. Applying it
// repeatedly does not accumulate marks.
func ReplaceLine(text string, marks ...LineMark) string {
	return AddLine(RemoveLines(text, marks...), marks...)
}

// RemoveLine removes every code point in the combining mark range
// U+0300…U+20F0 from text.
func RemoveLine(text string) string {
	return strings.Map(func(r rune) rune {
		if isCombining(r) {
			return -1
		}
		return r
	}, text)
}

// RemoveLines removes every occurrence of the given marks from text, leaving
// other combining marks in place.
func RemoveLines(text string, marks ...LineMark) string {
	if len(marks) == 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		for _, m := range marks {
			if rune(m) == r {
				return -1
			}
		}
		return r
	}, text)
}

// appendMarked appends r and, if r is a base character, marks to buf.
func appendMarked(buf []byte, r rune, marks []LineMark) []byte {
	buf = utf8.AppendRune(buf, r)
	if isCombining(r) {
		return buf
	}
	for _, m := range marks {
		buf = utf8.AppendRune(buf, rune(m))
	}
	return buf
}
