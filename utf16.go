package unistyle

import "github.com/npillmayer/unistyle/surrogate"

// ConvertUTF16 is StyleConvert for text held as UTF-16 code units.
// Surrogate pairs are combined before conversion, and styled characters
// beyond the BMP are emitted as surrogate pairs. Unpaired surrogates are
// replaced by U+FFFD.
func ConvertUTF16(units []uint16, style Style) []uint16 {
	if len(units) == 0 {
		return units
	}
	if !style.Valid() {
		tracer().Errorf("invalid style %d, converting to regular", int(style))
		style = Regular
	}
	out := make([]uint16, 0, len(units)*2)
	for _, r := range surrogate.Decode(units) {
		out = surrogate.AppendRune(out, convertRune(r, style))
	}
	return out
}
