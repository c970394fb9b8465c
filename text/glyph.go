package text

import "image"

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// GlyphImage is a rasterized glyph coverage mask.
type GlyphImage struct {
	Mask *image.Alpha

	// Offset is the position of the mask's top-left corner relative to the
	// glyph origin on the baseline, in pixels (Y down).
	Offset image.Point
}

// UvRect locates a glyph in the atlas and on screen.
type UvRect struct {
	// Offset of the glyph's top-left corner relative to the top of the row,
	// in points.
	Offset Vec2

	// Size of the glyph on screen, in points.
	Size Vec2

	// Min and Max are the texel bounds inside the atlas.
	Min, Max [2]uint16
}

// IsNothing reports whether the glyph has no visible pixels.
func (uv UvRect) IsNothing() bool {
	return uv.Min == uv.Max
}

// GlyphInfo is the cached, per-size information about one glyph.
type GlyphInfo struct {
	// ID is 0 for glyphs the font does not cover.
	ID GlyphID

	// AdvanceWidth in points, unscaled by pixels per point.
	AdvanceWidth float64

	// UvRect is zero for invisible glyphs.
	UvRect UvRect
}
