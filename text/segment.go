package text

import "golang.org/x/text/unicode/bidi"

// runeDirections returns the resolved direction of every rune in a
// paragraph and whether the paragraph itself is right-to-left. The
// paragraph direction is taken from its first strong character,
// left-to-right if there is none.
func runeDirections(runes []rune) ([]Direction, bool) {
	dirs := make([]Direction, len(runes))
	if !hasRTL(runes) {
		return dirs, false
	}

	base := bidi.LeftToRight
	if firstStrongRTL(runes) {
		base = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(base)); err != nil {
		return dirs, false
	}
	ordering, err := p.Order()
	if err != nil {
		return dirs, false
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		start, end := run.Pos()
		for j := start; j <= end && j < len(dirs); j++ {
			dirs[j] = DirectionRTL
		}
	}
	return dirs, base == bidi.RightToLeft
}

// hasRTL reports whether any rune is strongly right-to-left.
func hasRTL(runes []rune) bool {
	for _, r := range runes {
		if isStrongRTL(r) {
			return true
		}
	}
	return false
}

// firstStrongRTL reports whether the first strongly directional rune is
// right-to-left.
func firstStrongRTL(runes []rune) bool {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

func isStrongRTL(r rune) bool {
	props, _ := bidi.LookupRune(r)
	c := props.Class()
	return c == bidi.R || c == bidi.AL
}
