package fonts

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fonts/text"
)

func init() {
	text.RegisterParser("coverage", coverageParser{})
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// coverageParser parses font data of the form "runes" or "runes/width",
// where width is the advance in ems (default 0.5). The font covers exactly
// the listed runes.
type coverageParser struct{}

func (coverageParser) Parse(data []byte, _ int) (text.ParsedFont, error) {
	covered, width, _ := strings.Cut(string(data), "/")
	if covered == "" {
		return nil, errors.New("coverage: no runes")
	}
	f := &coverageFont{gids: make(map[rune]text.GlyphID), advance: 0.5}
	switch width {
	case "", "0.5":
	case "1":
		f.advance = 1
	default:
		return nil, errors.New("coverage: unsupported width " + width)
	}
	for _, r := range covered {
		f.gids[r] = text.GlyphID(len(f.gids) + 1)
	}
	return f, nil
}

type coverageFont struct {
	gids    map[rune]text.GlyphID
	advance float64
}

func (f *coverageFont) Name() string                                   { return "coverage" }
func (f *coverageFont) NumGlyphs() int                                 { return len(f.gids) + 1 }
func (f *coverageFont) UnitsPerEm() int                                { return 1000 }
func (f *coverageFont) GlyphIndex(r rune) text.GlyphID                 { return f.gids[r] }
func (f *coverageFont) Kern(_, _ text.GlyphID, _ float64) float64      { return 0 }
func (f *coverageFont) GlyphAdvance(_ text.GlyphID, p float64) float64 { return p * f.advance }

func (f *coverageFont) Metrics(ppem float64) text.FontMetrics {
	return text.FontMetrics{Ascent: 0.8 * ppem, Descent: -0.2 * ppem}
}

func (f *coverageFont) RasterizeGlyph(gid text.GlyphID, _ float64) *text.GlyphImage {
	if gid == 0 {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	for i := range mask.Pix {
		mask.Pix[i] = 0xFF
	}
	return &text.GlyphImage{Mask: mask, Offset: image.Pt(0, -2)}
}

// newTestFonts returns a collection over the default Go fonts.
func newTestFonts(t testing.TB, pixelsPerPoint float64, opts ...Option) *Fonts {
	t.Helper()
	f, err := New(pixelsPerPoint, DefaultDefinitions(), opts...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", pixelsPerPoint, err)
	}
	return f
}

// font1Definitions binds Body to 14pt Proportional, which is Go Regular
// registered as "Font1".
func font1Definitions() Definitions {
	return Definitions{
		FontData: map[string]FontData{
			"Font1": {Font: goregular.TTF},
		},
		Families: map[text.FontFamily][]string{
			text.FamilyProportional: {"Font1"},
		},
		Styles: map[text.TextStyle]StyleBinding{
			text.StyleBody: {Size: 14, Family: text.FamilyProportional},
		},
	}
}

// coverageDefinitions returns definitions over coverage fonts. Font "A"
// covers "ab", font "B" covers "bc" with full-em advances, and the
// Proportional family falls back from A to B.
func coverageDefinitions() Definitions {
	return Definitions{
		FontData: map[string]FontData{
			"A": {Font: []byte("ab ?")},
			"B": {Font: []byte("bc/1")},
		},
		Families: map[text.FontFamily][]string{
			text.FamilyProportional: {"A", "B"},
			text.FamilyMonospace:    {"B", "A"},
		},
		Styles: map[text.TextStyle]StyleBinding{
			text.StyleBody:      {Size: 10, Family: text.FamilyProportional},
			text.StyleButton:    {Size: 10, Family: text.FamilyProportional},
			text.StyleHeading:   {Size: 20, Family: text.FamilyProportional},
			text.StyleMonospace: {Size: 10, Family: text.FamilyMonospace},
		},
	}
}

func newCoverageFonts(t testing.TB) *Fonts {
	t.Helper()
	f, err := New(1, coverageDefinitions(), WithParser("coverage"))
	if err != nil {
		t.Fatalf("New(coverage) error = %v", err)
	}
	return f
}
