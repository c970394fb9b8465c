package text

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte, index int) (ParsedFont, error) {
	if index == 0 {
		f, err := opentype.Parse(data)
		if err == nil {
			return &ximageParsedFont{font: f}, nil
		}
		// A collection is also valid input for index 0.
		if c, cerr := opentype.ParseCollection(data); cerr == nil && c.NumFonts() > 0 {
			f, ferr := c.Font(0)
			if ferr == nil {
				return &ximageParsedFont{font: f}, nil
			}
		}
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	c, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font collection: %w", err)
	}
	if index < 0 || index >= c.NumFonts() {
		return nil, &FaceIndexError{Index: index, NumFaces: c.NumFonts()}
	}
	f, err := c.Font(index)
	if err != nil {
		return nil, fmt.Errorf("text: failed to load face %d: %w", index, err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// Every call uses its own sfnt.Buffer, so it is safe for concurrent use.
type ximageParsedFont struct {
	font *sfnt.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(a, b GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	// sfnt reports descent as a positive distance below the baseline.
	ascent := fixedToFloat64(m.Ascent)
	descent := -fixedToFloat64(m.Descent)
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: math.Max(0, fixedToFloat64(m.Height)-ascent+descent),
	}
}

// RasterizeGlyph implements ParsedFont.RasterizeGlyph.
func (f *ximageParsedFont) RasterizeGlyph(gid GlyphID, ppem float64) *GlyphImage {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil || len(segments) == 0 {
		return nil
	}

	b := segments.Bounds()
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	maxX, maxY := b.Max.X.Ceil(), b.Max.Y.Ceil()
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return nil
	}

	dx, dy := float32(-minX), float32(-minY)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + dx, float32(p.Y)/64 + dy
	}

	r := vector.NewRasterizer(w, h)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.ClosePath()
			x, y := pt(seg.Args[0])
			r.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			r.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			r.QuadTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &GlyphImage{
		Mask:   mask,
		Offset: image.Pt(minX, minY),
	}
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
