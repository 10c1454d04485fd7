/*
Package unistyle converts plain text into styled Unicode variants and back.

Unicode contains a number of code point blocks which are visually stylistic
variants of Latin and Greek letters: mathematical alphanumeric symbols (bold,
italic, script, fraktur, double-struck, monospace, …), enclosed alphanumerics
(circled, parenthesized, squared), fullwidth forms, modifier letters used as
superscripts and subscripts, regional indicator symbols and tag characters.
StyleConvert substitutes code points between these blocks:

	unistyle.StyleConvert("Hello, World!", unistyle.Bold)   // => "𝐇𝐞𝐥𝐥𝐨, 𝐖𝐨𝐫𝐥𝐝!"
	unistyle.StyleConvert("𝐇𝐞𝐥𝐥𝐨", unistyle.Regular)       // => "Hello"

Input may already be styled (in any style, or a mix of styles); it is always
converted back to regular form first. Characters without a styled form in the
requested style pass through unchanged. No operation returns an error.

AddLine appends combining marks like U+0332 COMBINING LOW LINE to every
character, producing underlined, overlined or struck-through text for
environments without rich text; RemoveLine strips them again.

The package does not normalize Unicode and knows nothing about scripts other
than Basic Latin and Greek. It is not a rendering engine: whether styled text
displays well depends entirely on the fonts available to the reader.

Further Reading

	https://www.unicode.org/charts/PDF/U1D400.pdf   (Mathematical Alphanumeric Symbols)
	https://www.unicode.org/reports/tr25/           (Unicode support for mathematics)
	http://www.babelstone.co.uk/Unicode/text.js     (origin of the mapping tables)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
The mapping tables are derived from text.js by Andrew West, CC BY-SA 3.0.
*/
package unistyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}
