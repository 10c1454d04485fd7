package unistyle

import "fmt"

// Style identifies a styling variant. Every style except Regular is the
// column index of the style in the mapping tables.
type Style int

// Styles, each documented with its rendering of "Hello, World!".
const (
	Regular                  Style = iota - 1 // Hello, World!
	Bold                                      // 𝐇𝐞𝐥𝐥𝐨, 𝐖𝐨𝐫𝐥𝐝!
	Italic                                    // 𝐻𝑒𝑙𝑙𝑜, 𝑊𝑜𝑟𝑙𝑑!
	BoldItalic                                // 𝑯𝒆𝒍𝒍𝒐, 𝑾𝒐𝒓𝒍𝒅!
	SansSerif                                 // 𝖧𝖾𝗅𝗅𝗈, 𝖶𝗈𝗋𝗅𝖽!
	SansSerifBold                             // 𝗛𝗲𝗹𝗹𝗼, 𝗪𝗼𝗿𝗹𝗱!
	SansSerifItalic                           // 𝘏𝘦𝘭𝘭𝘰, 𝘞𝘰𝘳𝘭𝘥!
	SansSerifBoldItalic                       // 𝙃𝙚𝙡𝙡𝙤, 𝙒𝙤𝙧𝙡𝙙!
	Script                                    // ℋℯ𝓁𝓁ℴ, 𝒲ℴ𝓇𝓁𝒹!
	ScriptBold                                // 𝓗𝓮𝓵𝓵𝓸, 𝓦𝓸𝓻𝓵𝓭!
	Fraktur                                   // ℌ𝔢𝔩𝔩𝔬, 𝔚𝔬𝔯𝔩𝔡!
	FrakturBold                               // 𝕳𝖊𝖑𝖑𝖔, 𝖂𝖔𝖗𝖑𝖉!
	DoubleStruck                              // ℍ𝕖𝕝𝕝𝕠, 𝕎𝕠𝕣𝕝𝕕!
	Monospace                                 // 𝙷𝚎𝚕𝚕𝚘, 𝚆𝚘𝚛𝚕𝚍!
	Fullwidth                                 // Ｈｅｌｌｏ，　Ｗｏｒｌｄ！
	Circled                                   // Ⓗⓔⓛⓛⓞ, Ⓦⓞⓡⓛⓓ!
	InverseCircled                            // 🅗ello, 🅦orld!
	Squared                                   // 🄷ello, 🅆orld!
	InverseSquared                            // 🅷ello, 🆆orld!
	Parenthesized                             // 🄗⒠⒧⒧⒪, 🄦⒪⒭⒧⒟!
	SmallCapitals                             // ʜello, ᴡorld!
	Superscript                               // ᴴᵉˡˡᵒ, ᵂᵒʳˡᵈ!
	Subscript                                 // Hₑₗₗₒ, Wₒᵣₗd!
	RegionalIndicatorSymbols                  // 🇭ello, 🇼orld!
	Tags                                      // invisible tag characters
)

var styleNames = [...]string{
	"Regular",
	"Bold", "Italic", "BoldItalic",
	"SansSerif", "SansSerifBold", "SansSerifItalic", "SansSerifBoldItalic",
	"Script", "ScriptBold", "Fraktur", "FrakturBold",
	"DoubleStruck", "Monospace", "Fullwidth",
	"Circled", "InverseCircled", "Squared", "InverseSquared", "Parenthesized",
	"SmallCapitals", "Superscript", "Subscript",
	"RegionalIndicatorSymbols", "Tags",
}

// Valid reports whether s is one of the named styles, including Regular.
func (s Style) Valid() bool {
	return s >= Regular && s <= Tags
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s+1]
}

// Styles returns all styles except Regular, in table order.
func Styles() []Style {
	styles := make([]Style, 0, Tags+1)
	for s := Bold; s <= Tags; s++ {
		styles = append(styles, s)
	}
	return styles
}
