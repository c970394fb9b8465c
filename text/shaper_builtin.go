package text

// BuiltinShaper positions glyphs one rune at a time using the font's
// advances and pair kerning.
//
// It does not substitute ligatures or contextual forms; scripts that need
// them should use HarfbuzzShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(run Run) []ShapedGlyph {
	if len(run.Text) == 0 || run.Font == nil {
		return nil
	}

	result := make([]ShapedGlyph, 0, len(run.Text))
	var prev GlyphID
	for cluster, r := range run.Text {
		info, _ := run.Font.GlyphInfo(r)
		if n := len(result); n > 0 {
			result[n-1].XAdvance += run.Font.PairKerning(prev, info.ID)
		}
		result = append(result, ShapedGlyph{
			GID:      info.ID,
			Cluster:  cluster,
			XAdvance: info.AdvanceWidth,
		})
		prev = info.ID
	}
	return result
}
