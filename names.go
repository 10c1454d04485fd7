package unistyle

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// markNames lists the canonical name of every line mark.
var markNames = [...]struct {
	mark LineMark
	name string
}{
	{Underline, "Underline"},
	{DoubleUnderline, "DoubleUnderline"},
	{Overline, "Overline"},
	{Strikethrough, "Strikethrough"},
	{StrikethroughVertical, "StrikethroughVertical"},
	{Slashthrough, "Slashthrough"},
	{DoubleSlashthrough, "DoubleSlashthrough"},
	{GreekVaria, "GreekVaria"},
	{GreekOxia, "GreekOxia"},
	{Hat, "Hat"},
	{Tilde, "Tilde"},
	{Macron, "Macron"},
	{GreekVrachy, "GreekVrachy"},
	{DotAbove, "DotAbove"},
	{DoubleDotAbove, "DoubleDotAbove"},
	{HookAbove, "HookAbove"},
	{RingAbove, "RingAbove"},
	{DoubleAcuteAccent, "DoubleAcuteAccent"},
	{Caron, "Caron"},
	{VerticalLineAbove, "VerticalLineAbove"},
	{DoubleVerticalLineAbove, "DoubleVerticalLineAbove"},
	{DoubleGraveAccent, "DoubleGraveAccent"},
	{TildeBelow, "TildeBelow"},
	{MacronBelow, "MacronBelow"},
	{TildeOverlay, "TildeOverlay"},
	{ShortStrokeOverlay, "ShortStrokeOverlay"},
	{ShortSlashOverlay, "ShortSlashOverlay"},
	{TripleUnderdot, "TripleUnderdot"},
	{AsteriskAbove, "AsteriskAbove"},
}

// Additional names accepted by ParseStyle and ParseLineMark.
var (
	styleAliases = map[string]Style{
		"plain":       Regular,
		"none":        Regular,
		"sans":        SansSerif,
		"gothic":      Fraktur,
		"blackletter": Fraktur,
		"blackboard":  DoubleStruck,
		"mono":        Monospace,
		"wide":        Fullwidth,
		"smallcaps":   SmallCapitals,
		"regional":    RegionalIndicatorSymbols,
	}
	markAliases = map[string]LineMark{
		"longstrokeoverlay":        LongStrokeOverlay,
		"longslashoverlay":         LongSlashOverlay,
		"longdoublesolidusoverlay": LongDoubleSolidusOverlay,
		"strikeout":                Strikethrough,
		"grave":                    GreekVaria,
		"acute":                    GreekOxia,
		"circumflex":               Hat,
		"breve":                    GreekVrachy,
		"diaeresis":                DoubleDotAbove,
	}
)

// MainLines returns the marks drawing lines under, over or through text.
func MainLines() []LineMark {
	return []LineMark{Underline, DoubleUnderline, Overline, Strikethrough,
		StrikethroughVertical, Slashthrough, DoubleSlashthrough}
}

// LineMarks returns every named line mark.
func LineMarks() []LineMark {
	marks := make([]LineMark, len(markNames))
	for i, mn := range markNames {
		marks[i] = mn.mark
	}
	return marks
}

func (m LineMark) String() string {
	for _, mn := range markNames {
		if mn.mark == m {
			return mn.name
		}
	}
	return fmt.Sprintf("LineMark(%U)", rune(m))
}

var nameIndex struct {
	once   sync.Once
	styles *trie.Trie
	marks  *trie.Trie
}

func namesTries() (styles, marks *trie.Trie) {
	nameIndex.once.Do(func() {
		nameIndex.styles = trie.New()
		nameIndex.styles.Add(normalizeName(Regular.String()), Regular)
		for _, s := range Styles() {
			nameIndex.styles.Add(normalizeName(s.String()), s)
		}
		for alias, s := range styleAliases {
			nameIndex.styles.Add(alias, s)
		}
		nameIndex.marks = trie.New()
		for _, mn := range markNames {
			nameIndex.marks.Add(normalizeName(mn.name), mn.mark)
		}
		for alias, m := range markAliases {
			nameIndex.marks.Add(alias, m)
		}
	})
	return nameIndex.styles, nameIndex.marks
}

// normalizeName lowercases s and drops separators, so that "Sans-Serif Bold",
// "sans_serif_bold" and "SansSerifBold" are the same name.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// ParseStyle finds a style by name. Names are case-insensitive, ignore
// separators and may be abbreviated to any unique prefix, e.g. "frakturb"
// for FrakturBold. A few aliases ("mono", "wide", "gothic", …) are accepted.
func ParseStyle(name string) (Style, error) {
	styles, _ := namesTries()
	meta, err := lookupName(styles, name, "style")
	if err != nil {
		return Regular, err
	}
	return meta.(Style), nil
}

// ParseLineMark finds a line mark by name, with the same rules as ParseStyle.
func ParseLineMark(name string) (LineMark, error) {
	_, marks := namesTries()
	meta, err := lookupName(marks, name, "line mark")
	if err != nil {
		return 0, err
	}
	return meta.(LineMark), nil
}

// lookupName resolves an exact name or a prefix which selects a single value.
// Different keys for the same value (aliases) do not make a prefix ambiguous.
func lookupName(t *trie.Trie, name, kind string) (interface{}, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, fmt.Errorf("empty %s name", kind)
	}
	if node, ok := t.Find(key); ok {
		return node.Meta(), nil
	}
	keys := t.PrefixSearch(key)
	if len(keys) == 0 {
		return nil, fmt.Errorf("unknown %s: %q", kind, name)
	}
	sort.Strings(keys)
	var found interface{}
	for _, k := range keys {
		node, ok := t.Find(k)
		if !ok {
			continue
		}
		if found == nil {
			found = node.Meta()
		} else if node.Meta() != found {
			return nil, fmt.Errorf("ambiguous %s %q, could be one of %s", kind, name, strings.Join(keys, ", "))
		}
	}
	if found == nil {
		return nil, fmt.Errorf("unknown %s: %q", kind, name)
	}
	return found, nil
}
