package text

import "unicode"

// WrapMode selects where a row may end when a job wraps.
type WrapMode uint8

const (
	// WrapWordChar ends rows between words, and inside a word only when the
	// word alone is wider than a row. This is the default.
	WrapWordChar WrapMode = iota

	// WrapNone never ends a row early; rows may exceed the wrap width.
	WrapNone

	// WrapWord ends rows between words only. Words wider than a row
	// overflow it.
	WrapWord

	// WrapChar ends rows after any character.
	WrapChar
)

// String returns the string representation of the wrap mode.
func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "None"
	case WrapWord:
		return "Word"
	case WrapChar:
		return "Char"
	case WrapWordChar:
		return "WordChar"
	default:
		return unknownStr
	}
}

// breakKind is the part a rune plays in line breaking.
type breakKind uint8

const (
	kindLetter breakKind = iota
	kindSpace
	kindZeroWidth
	kindOpen
	kindClose
	kindHyphen
	kindIdeograph
)

// nonBreaking lists runes that look like spaces or hyphens but glue their
// neighbours together.
var nonBreaking = map[rune]bool{
	'\u00A0': true, // no-break space
	'\u2007': true, // figure space
	'\u202F': true, // narrow no-break space
	'\u2011': true, // non-breaking hyphen
}

// ideographic scripts break between any two characters.
var ideographic = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
}

func breakKindOf(r rune) breakKind {
	switch {
	case nonBreaking[r]:
		return kindLetter
	case r == '\u200B':
		return kindZeroWidth
	case unicode.IsSpace(r):
		return kindSpace
	case unicode.In(r, unicode.Ps, unicode.Pi):
		return kindOpen
	case unicode.In(r, unicode.Pe, unicode.Pf):
		return kindClose
	case unicode.Is(unicode.Pd, r):
		return kindHyphen
	case unicode.In(r, ideographic...):
		return kindIdeograph
	default:
		return kindLetter
	}
}

// rowStarts reports, for every char of a paragraph, whether a wrapped row
// may start at it. A section with leading space may start a row at its
// first char, as if the space were a space character. Breaks inside a word
// for WrapWordChar are left to the wrapper's fallback.
func rowStarts(chars []layoutChar, mode WrapMode) []bool {
	starts := make([]bool, len(chars))
	if mode == WrapNone || len(chars) == 0 {
		return starts
	}

	prev := breakKindOf(chars[0].r)
	for i := 1; i < len(chars); i++ {
		cur := breakKindOf(chars[i].r)
		starts[i] = canBreakBetween(prev, cur, mode) || (chars[i].leading > 0 && cur != kindClose)
		prev = cur
	}
	return starts
}

// canBreakBetween reports whether a row may end between a rune of kind
// prev and one of kind cur.
func canBreakBetween(prev, cur breakKind, mode WrapMode) bool {
	switch {
	case cur == kindClose, prev == kindOpen:
		return false
	case prev == kindZeroWidth, mode == WrapChar:
		return true
	case cur == kindSpace:
		// Spaces hang at the end of the row they follow.
		return false
	case prev == kindSpace:
		return true
	case prev == kindHyphen:
		return cur != kindHyphen
	default:
		return cur == kindIdeograph || prev == kindIdeograph
	}
}
