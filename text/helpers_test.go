package text

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fonts/atlas"
)

func init() {
	RegisterParser("fake", fakeParser{})
}

// fakeParser parses the font data as the list of runes the font covers.
// Glyph ids are assigned in order starting at 1.
type fakeParser struct{}

func (fakeParser) Parse(data []byte, _ int) (ParsedFont, error) {
	f := &fakeFont{name: string(data), gids: make(map[rune]GlyphID), runes: map[GlyphID]rune{}}
	for _, r := range string(data) {
		gid := GlyphID(len(f.gids) + 1)
		f.gids[r] = gid
		f.runes[gid] = r
	}
	return f, nil
}

// fakeFont has square metrics: every glyph advances half an em, ascent is
// 0.8 em and descent 0.2 em, and visible glyphs rasterize to a 2x3 block.
type fakeFont struct {
	name  string
	gids  map[rune]GlyphID
	runes map[GlyphID]rune
}

func (f *fakeFont) Name() string                                 { return f.name }
func (f *fakeFont) NumGlyphs() int                               { return len(f.gids) + 1 }
func (f *fakeFont) UnitsPerEm() int                              { return 1000 }
func (f *fakeFont) GlyphIndex(r rune) GlyphID                    { return f.gids[r] }
func (f *fakeFont) GlyphAdvance(_ GlyphID, ppem float64) float64 { return ppem / 2 }
func (f *fakeFont) Kern(_, _ GlyphID, _ float64) float64         { return 0 }

func (f *fakeFont) Metrics(ppem float64) FontMetrics {
	return FontMetrics{Ascent: 0.8 * ppem, Descent: -0.2 * ppem}
}

func (f *fakeFont) RasterizeGlyph(gid GlyphID, _ float64) *GlyphImage {
	if r := f.runes[gid]; r == ' ' || r == 0 {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, 2, 3))
	for i := range mask.Pix {
		mask.Pix[i] = 0xFF
	}
	return &GlyphImage{Mask: mask, Offset: image.Pt(0, -3)}
}

func newTestAtlas() *atlas.TextureAtlas {
	return atlas.New(256, 64)
}

// fakeImpl returns a FontImpl covering exactly the runes of covered, at one
// pixel per point so that glyphs advance scale/2 points.
func fakeImpl(t testing.TB, a Atlas, covered string, scale int) *FontImpl {
	t.Helper()
	src, err := NewFontSource(covered, []byte(covered), 0, WithParser("fake"))
	if err != nil {
		t.Fatalf("NewFontSource(%q) error = %v", covered, err)
	}
	return NewFontImpl(a, 1, src, scale, 0)
}

func goRegular(t testing.TB) *FontSource {
	t.Helper()
	src, err := NewFontSource("Go-Regular", goregular.TTF, 0)
	if err != nil {
		t.Fatalf("NewFontSource(goregular) error = %v", err)
	}
	return src
}

// styleResolver maps styles to fonts; unset styles resolve to StyleBody.
type styleResolver map[TextStyle]*Font

func (r styleResolver) FontForFormat(f *TextFormat) *Font {
	if font, ok := r[f.Style]; ok {
		return font
	}
	return r[StyleBody]
}

func runesOf(row Row) string {
	rs := make([]rune, len(row.Glyphs))
	for i, g := range row.Glyphs {
		rs[i] = g.Chr
	}
	return string(rs)
}
