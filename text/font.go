package text

const (
	primaryReplacementChar  = '\u25FB' // white medium square
	fallbackReplacementChar = '?'
)

// fontGlyph is a glyph together with the chain position of the font
// that rendered it.
type fontGlyph struct {
	font int
	info GlyphInfo
}

// Font is a fallback chain of FontImpls: each rune is rendered by the
// first font in the chain that covers it.
//
// Font is not safe for concurrent use.
type Font struct {
	fonts       []*FontImpl
	glyphCache  map[rune]fontGlyph
	replacement fontGlyph
	rowHeight   float64

	// replacementChar is 0 if the chain has no replacement glyph.
	replacementChar rune
}

// NewFont builds a chain from fonts, in priority order.
// Panics with ErrEmptyFaces if fonts is empty.
func NewFont(fonts []*FontImpl) *Font {
	if len(fonts) == 0 {
		panic(ErrEmptyFaces)
	}

	rowHeight := 0.0
	for _, f := range fonts {
		rowHeight = max(rowHeight, f.RowHeight())
	}

	font := &Font{
		fonts:      fonts,
		glyphCache: make(map[rune]fontGlyph),
		rowHeight:  rowHeight,
	}

	for _, r := range []rune{primaryReplacementChar, fallbackReplacementChar} {
		if g, ok := font.lookup(r); ok {
			font.replacement = g
			font.replacementChar = r
			break
		}
	}
	return font
}

// Fonts returns the chain in priority order.
func (f *Font) Fonts() []*FontImpl { return f.fonts }

// RowHeight returns the tallest row height in the chain, in points.
func (f *Font) RowHeight() float64 { return f.rowHeight }

// HasGlyph reports whether any font in the chain covers r.
func (f *Font) HasGlyph(r rune) bool {
	for _, impl := range f.fonts {
		if impl.HasGlyph(r) {
			return true
		}
	}
	return false
}

// GlyphWidth returns the advance of r in points, using the replacement
// glyph for uncovered runes.
func (f *Font) GlyphWidth(r rune) float64 {
	_, info := f.GlyphInfo(r)
	return info.AdvanceWidth
}

// FontImplFor returns the font that renders r.
func (f *Font) FontImplFor(r rune) *FontImpl {
	idx, _ := f.glyphInfo(r)
	return f.fonts[idx]
}

// Resolve returns the font that renders r and the rune to shape with it:
// r itself, or the replacement character if no font covers r.
func (f *Font) Resolve(r rune) (*FontImpl, rune) {
	if g, ok := f.glyphCache[r]; ok {
		return f.fonts[g.font], r
	}
	if g, ok := f.lookup(r); ok {
		return f.fonts[g.font], r
	}
	if f.replacementChar != 0 {
		return f.fonts[f.replacement.font], f.replacementChar
	}
	return f.fonts[0], r
}

// GlyphInfo returns the font that renders r together with the glyph.
// Runes no font covers resolve to the replacement glyph.
func (f *Font) GlyphInfo(r rune) (*FontImpl, GlyphInfo) {
	idx, info := f.glyphInfo(r)
	return f.fonts[idx], info
}

func (f *Font) glyphInfo(r rune) (int, GlyphInfo) {
	if g, ok := f.glyphCache[r]; ok {
		return g.font, g.info
	}
	if g, ok := f.lookup(r); ok {
		return g.font, g.info
	}
	return f.replacement.font, f.replacement.info
}

func (f *Font) lookup(r rune) (fontGlyph, bool) {
	for i, impl := range f.fonts {
		if info, ok := impl.GlyphInfo(r); ok {
			g := fontGlyph{font: i, info: info}
			f.glyphCache[r] = g
			return g, true
		}
	}
	return fontGlyph{}, false
}
