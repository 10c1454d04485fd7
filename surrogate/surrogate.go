/*
Package surrogate packs and unpacks code points beyond the Basic Multilingual
Plane into UTF-16 surrogate pairs.

Go strings are UTF-8 and need none of this. The codec exists for clients
holding text as 16-bit code units (e.g. text exchanged with Windows or
JavaScript hosts), where styled characters like MATHEMATICAL BOLD CAPITAL A
(U+1D400) occupy two units.
*/
package surrogate

const (
	ReplacementChar = '\uFFFD' // U+FFFD REPLACEMENT CHARACTER

	highFirst = 0xD800
	highLast  = 0xDBFF
	lowFirst  = 0xDC00
	lowLast   = 0xDFFF
	halfShift = 10
	halfBase  = 0x10000
	halfMask  = 0x3FF
)

// IsHigh reports whether u is a high (leading) surrogate.
func IsHigh(u uint16) bool {
	return u >= highFirst && u <= highLast
}

// IsLow reports whether u is a low (trailing) surrogate.
func IsLow(u uint16) bool {
	return u >= lowFirst && u <= lowLast
}

// ToSurrogates splits r into a surrogate pair. Code points below U+10000 are
// returned unchanged as hi, with lo = 0.
func ToSurrogates(r rune) (hi, lo uint16) {
	if r < halfBase {
		return uint16(r), 0
	}
	r -= halfBase
	hi = highFirst | uint16((r>>halfShift)&halfMask)
	lo = lowFirst | uint16(r&halfMask)
	return
}

// FromSurrogates combines a surrogate pair into a code point. If either unit
// is outside its surrogate range, U+FFFD is returned.
func FromSurrogates(hi, lo uint16) rune {
	if !IsHigh(hi) || !IsLow(lo) {
		return ReplacementChar
	}
	return (rune(hi-highFirst) << halfShift) + rune(lo-lowFirst) + halfBase
}

// Decode converts code units to code points. A high surrogate not followed by
// a low surrogate and a low surrogate not preceded by a high surrogate are each
// replaced by U+FFFD; decoding always continues.
func Decode(units []uint16) []rune {
	runes := make([]rune, 0, len(units))
	var hi uint16
	for _, u := range units {
		switch {
		case IsHigh(u):
			if hi != 0 {
				runes = append(runes, ReplacementChar)
			}
			hi = u
			continue
		case IsLow(u):
			if hi == 0 {
				runes = append(runes, ReplacementChar)
				continue
			}
			runes = append(runes, FromSurrogates(hi, u))
			hi = 0
			continue
		}
		if hi != 0 {
			runes = append(runes, ReplacementChar)
			hi = 0
		}
		runes = append(runes, rune(u))
	}
	if hi != 0 { // dangling high surrogate at end of input
		runes = append(runes, ReplacementChar)
	}
	return runes
}

// Encode converts code points to code units, using surrogate pairs for code
// points ≥ U+10000. Invalid code points (negative, beyond U+10FFFF or in the
// surrogate range) are encoded as U+FFFD.
func Encode(runes []rune) []uint16 {
	units := make([]uint16, 0, len(runes))
	for _, r := range runes {
		units = AppendRune(units, r)
	}
	return units
}

// AppendRune appends the code units of r to units.
func AppendRune(units []uint16, r rune) []uint16 {
	switch {
	case r < 0, r > 0x10FFFF, r >= highFirst && r <= lowLast:
		return append(units, ReplacementChar)
	case r < halfBase:
		return append(units, uint16(r))
	}
	hi, lo := ToSurrogates(r)
	return append(units, hi, lo)
}
