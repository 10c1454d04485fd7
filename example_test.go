package unistyle_test

import (
	"fmt"

	"github.com/npillmayer/unistyle"
)

func ExampleStyleConvert() {
	bold := unistyle.StyleConvert("Hello, World!", unistyle.Bold)
	fmt.Println(bold)
	fmt.Println(unistyle.StyleConvert(bold, unistyle.Fraktur))
	fmt.Println(unistyle.ToRegular(bold))
	// Output:
	// 𝐇𝐞𝐥𝐥𝐨, 𝐖𝐨𝐫𝐥𝐝!
	// ℌ𝔢𝔩𝔩𝔬, 𝔚𝔬𝔯𝔩𝔡!
	// Hello, World!
}

func ExampleAddLine() {
	fmt.Println(unistyle.AddLine("Hello", unistyle.Strikethrough))
	// Output:
	// H̶e̶l̶l̶o̶
}

func ExampleParseStyle() {
	style, err := unistyle.ParseStyle("sans-serif bold")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(style, unistyle.StyleConvert("Go", style))
	// Output:
	// SansSerifBold 𝗚𝗼
}
