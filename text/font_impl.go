package text

import (
	"image"
	"math"
)

// tabSize is the width of a tab in spaces.
const tabSize = 4

// Atlas is the glyph texture a FontImpl rasterizes into.
//
// Allocate reserves a w×h region and returns its top-left corner together
// with the image backing the whole atlas. The caller writes its pixels
// at the returned position. Regions are never freed.
type Atlas interface {
	Allocate(w, h int) (image.Point, *image.Alpha)
}

// FontImpl is one font face rasterized at one integer pixel size.
//
// Glyphs are rasterized into the atlas lazily, once per glyph id, and the
// resulting GlyphInfo is kept for the lifetime of the FontImpl.
//
// FontImpl is not safe for concurrent use; callers sharing one across
// goroutines must serialize access, as fonts.Fonts does with its lock.
type FontImpl struct {
	source         *FontSource
	parsed         ParsedFont
	atlas          Atlas
	pixelsPerPoint float64

	// scaleInPixels is the full line height (ascent + descent) in pixels.
	scaleInPixels int

	// ppem is the em size that makes ascent + descent equal scaleInPixels.
	ppem float64

	heightInPoints float64

	// baseline is the distance from the row top to the baseline, in pixels.
	baseline float64

	// yOffset is in points, rounded to a whole physical pixel.
	yOffset float64

	indices map[rune]GlyphID
	glyphs  map[GlyphID]GlyphInfo
}

// NewFontImpl creates a FontImpl for source at scaleInPixels, drawing into
// atlas. yOffset shifts every glyph vertically, in points.
//
// Panics if scaleInPixels or pixelsPerPoint is not positive.
func NewFontImpl(atlas Atlas, pixelsPerPoint float64, source *FontSource, scaleInPixels int, yOffset float64) *FontImpl {
	if scaleInPixels <= 0 {
		panic("text: scaleInPixels must be positive")
	}
	if pixelsPerPoint <= 0 {
		panic("text: pixelsPerPoint must be positive")
	}

	parsed := source.Parsed()
	scale := float64(scaleInPixels)

	ppem, baseline := scale, scale
	if upem := parsed.UnitsPerEm(); upem > 0 {
		m := parsed.Metrics(float64(upem))
		if h := m.Ascent - m.Descent; h > 0 {
			ppem = scale * float64(upem) / h
			baseline = scale * m.Ascent / h
		}
	}

	return &FontImpl{
		source:         source,
		parsed:         parsed,
		atlas:          atlas,
		pixelsPerPoint: pixelsPerPoint,
		scaleInPixels:  scaleInPixels,
		ppem:           ppem,
		heightInPoints: scale / pixelsPerPoint,
		baseline:       baseline,
		yOffset:        math.Round(yOffset*pixelsPerPoint) / pixelsPerPoint,
		indices:        make(map[rune]GlyphID),
		glyphs:         make(map[GlyphID]GlyphInfo),
	}
}

// Source returns the font the glyphs are rasterized from.
func (f *FontImpl) Source() *FontSource { return f.source }

// Name returns the name the source font was registered under.
func (f *FontImpl) Name() string { return f.source.Name() }

// ScaleInPixels returns the integer pixel size of the font.
func (f *FontImpl) ScaleInPixels() int { return f.scaleInPixels }

// PixelsPerPoint returns the display scale the font was built for.
func (f *FontImpl) PixelsPerPoint() float64 { return f.pixelsPerPoint }

// RowHeight returns the height of one row of text, in points.
func (f *FontImpl) RowHeight() float64 { return f.heightInPoints }

// PPEM returns the em size in pixels that glyphs are scaled to.
func (f *FontImpl) PPEM() float64 { return f.ppem }

// GlyphIndex returns the glyph id for r and whether the font covers it.
func (f *FontImpl) GlyphIndex(r rune) (GlyphID, bool) {
	gid, ok := f.indices[r]
	if !ok {
		gid = f.parsed.GlyphIndex(r)
		f.indices[r] = gid
	}
	return gid, gid != 0
}

// HasGlyph reports whether the font covers r. A tab is covered when the
// space is.
func (f *FontImpl) HasGlyph(r rune) bool {
	if r == '\t' {
		r = ' '
	}
	_, ok := f.GlyphIndex(r)
	return ok
}

// GlyphInfo returns the glyph for r, rasterizing it on first use.
// Reports false if the font does not cover r.
//
// A tab is a space widened to four spaces.
func (f *FontImpl) GlyphInfo(r rune) (GlyphInfo, bool) {
	if r == '\t' {
		space, ok := f.GlyphInfo(' ')
		if !ok {
			return GlyphInfo{}, false
		}
		space.AdvanceWidth *= tabSize
		return space, true
	}

	gid, ok := f.GlyphIndex(r)
	if !ok {
		return GlyphInfo{}, false
	}
	return f.GlyphInfoByID(gid), true
}

// GlyphInfoByID returns the glyph with id gid, rasterizing it into the
// atlas on first use.
func (f *FontImpl) GlyphInfoByID(gid GlyphID) GlyphInfo {
	if info, ok := f.glyphs[gid]; ok {
		return info
	}
	info := f.allocateGlyph(gid)
	f.glyphs[gid] = info
	return info
}

// PairKerning returns the kerning between two glyphs, in points.
func (f *FontImpl) PairKerning(a, b GlyphID) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return f.parsed.Kern(a, b, f.ppem) / f.pixelsPerPoint
}

// NumGlyphs returns how many glyphs have been rasterized so far.
func (f *FontImpl) NumGlyphs() int { return len(f.glyphs) }

func (f *FontImpl) allocateGlyph(gid GlyphID) GlyphInfo {
	info := GlyphInfo{
		ID:           gid,
		AdvanceWidth: f.parsed.GlyphAdvance(gid, f.ppem) / f.pixelsPerPoint,
	}

	img := f.parsed.RasterizeGlyph(gid, f.ppem)
	if img == nil || img.Mask == nil {
		return info
	}
	b := img.Mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return info
	}

	pos, dst := f.atlas.Allocate(w, h)
	for y := 0; y < h; y++ {
		src := img.Mask.Pix[img.Mask.PixOffset(b.Min.X, b.Min.Y+y):][:w]
		copy(dst.Pix[dst.PixOffset(pos.X, pos.Y+y):][:w], src)
	}

	info.UvRect = UvRect{
		Offset: Vec2{
			X: float64(img.Offset.X) / f.pixelsPerPoint,
			Y: (f.baseline+float64(img.Offset.Y))/f.pixelsPerPoint + f.yOffset,
		},
		Size: Vec2{
			X: float64(w) / f.pixelsPerPoint,
			Y: float64(h) / f.pixelsPerPoint,
		},
		Min: [2]uint16{uint16(pos.X), uint16(pos.Y)},
		Max: [2]uint16{uint16(pos.X + w), uint16(pos.Y + h)},
	}
	return info
}
