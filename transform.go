package unistyle

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// runeTransformer is a transform.Transformer mapping every code point of its
// input to a byte sequence independently of its neighbours. Chunk boundaries
// therefore never change the result.
type runeTransformer struct {
	mapRune func(buf []byte, r rune) []byte
	buf     []byte
}

var _ transform.Transformer = (*runeTransformer)(nil)

// NewStyleTransformer returns a transformer performing StyleConvert on a
// stream of UTF-8 text. Transformers must not be shared between goroutines.
func NewStyleTransformer(style Style) transform.Transformer {
	if !style.Valid() {
		tracer().Errorf("invalid style %d, converting to regular", int(style))
		style = Regular
	}
	return &runeTransformer{
		mapRune: func(buf []byte, r rune) []byte {
			return utf8.AppendRune(buf, convertRune(r, style))
		},
		buf: make([]byte, 0, utf8.UTFMax),
	}
}

// NewLineTransformer returns a transformer performing AddLine on a stream of
// UTF-8 text.
func NewLineTransformer(marks ...LineMark) transform.Transformer {
	mm := make([]LineMark, len(marks))
	copy(mm, marks)
	return &runeTransformer{
		mapRune: func(buf []byte, r rune) []byte {
			return appendMarked(buf, r, mm)
		},
		buf: make([]byte, 0, utf8.UTFMax*(1+len(mm))),
	}
}

// NewUnlineTransformer returns a transformer performing RemoveLines on a
// stream of UTF-8 text, or RemoveLine if no marks are given.
func NewUnlineTransformer(marks ...LineMark) transform.Transformer {
	if len(marks) == 0 {
		return runes.Remove(runes.Predicate(isCombining))
	}
	mm := make([]LineMark, len(marks))
	copy(mm, marks)
	return runes.Remove(runes.Predicate(func(r rune) bool {
		for _, m := range mm {
			if rune(m) == r {
				return true
			}
		}
		return false
	}))
}

// NewReader returns a reader converting the text read from r to style.
func NewReader(r io.Reader, style Style) io.Reader {
	return transform.NewReader(r, NewStyleTransformer(style))
}

// Transform implements transform.Transformer.
func (t *runeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		t.buf = t.mapRune(t.buf[:0], r)
		if nDst+len(t.buf) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], t.buf)
		nSrc += size
	}
	return
}

// Reset implements transform.Transformer. There is no state to reset.
func (t *runeTransformer) Reset() {}
