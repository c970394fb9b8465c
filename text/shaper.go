package text

// Shaper converts a run of text rendered by one font into positioned
// glyphs.
//
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: per-glyph advances plus pair kerning
//   - HarfbuzzShaper: ligatures, kerning and complex scripts via go-text/typesetting
type Shaper interface {
	// Shape returns the glyphs of run in logical order, positioned in points.
	Shape(run Run) []ShapedGlyph
}

// Run is a maximal sequence of runes rendered by one font in one
// direction.
type Run struct {
	Text      []rune
	Font      *FontImpl
	Direction Direction
}

// ShapedGlyph is a single glyph produced by a Shaper.
// All distances are in points.
type ShapedGlyph struct {
	GID GlyphID

	// Cluster is the index into Run.Text of the first rune the glyph
	// represents.
	Cluster int

	// XOffset and YOffset adjust the glyph from the pen position.
	XOffset, YOffset float64

	// XAdvance is how far the pen moves after this glyph.
	XAdvance float64
}

// DefaultShaper returns the shaper used when none is configured.
func DefaultShaper() Shaper {
	return &BuiltinShaper{}
}
