package text

import (
	"bytes"
	"math"
	"slices"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfbuzzShaper provides HarfBuzz-level text shaping using
// go-text/typesetting: ligatures, kerning, contextual alternates and
// complex scripts.
//
// HarfbuzzShaper is safe for concurrent use. It caches parsed font.Font
// objects (which are read-only) and creates a lightweight font.Face per
// Shape call. The shaping.HarfbuzzShaper instances are pooled since they
// are not safe for concurrent use.
type HarfbuzzShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
	lang      language.Language
}

// NewHarfbuzzShaper creates a HarfbuzzShaper shaping text as English.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
		lang:      language.NewLanguage("en"),
	}
}

// Shape implements the Shaper interface.
// Runs whose font cannot be read by go-text fall back to BuiltinShaper.
func (s *HarfbuzzShaper) Shape(run Run) []ShapedGlyph {
	if len(run.Text) == 0 || run.Font == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(run.Font.Source())
	if err != nil {
		slogger().Debug("text: harfbuzz font unavailable, using builtin shaper",
			"font", run.Font.Name(), "err", err)
		return (&BuiltinShaper{}).Shape(run)
	}

	dir := di.DirectionLTR
	if run.Direction == DirectionRTL {
		dir = di.DirectionRTL
	}

	// go-text shapes at a whole pixel em size; scale its output back to
	// the fractional em the glyphs are rasterized at.
	ppem := run.Font.PPEM()
	em := math.Ceil(ppem)

	input := shaping.Input{
		Text:      run.Text,
		RunStart:  0,
		RunEnd:    len(run.Text),
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      fixed.I(int(em)),
		Script:    detectScript(run.Text),
		Language:  s.lang,
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	glyphs := convertGlyphs(output.Glyphs, ppem/em/run.Font.PixelsPerPoint())
	if n := len(glyphs); n > 1 && glyphs[0].Cluster > glyphs[n-1].Cluster {
		// Right-to-left output comes in visual order.
		slices.Reverse(glyphs)
	}
	fixTabs(run, glyphs)
	return glyphs
}

// getOrCreateFont returns a cached go-text font.Font for the given source.
func (s *HarfbuzzShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	var f *font.Font
	if source.Index() == 0 {
		face, err := font.ParseTTF(bytes.NewReader(source.Data()))
		if err != nil {
			return nil, err
		}
		f = face.Font
	} else {
		faces, err := font.ParseTTC(bytes.NewReader(source.Data()))
		if err != nil {
			return nil, err
		}
		if source.Index() >= len(faces) {
			return nil, &FaceIndexError{Index: source.Index(), NumFaces: len(faces)}
		}
		f = faces[source.Index()].Font
	}

	s.fontCache[source] = f
	return f, nil
}

// detectScript returns the script of the first non-space rune.
// Runs are split by font and direction only, so mixed-script runs take
// the script of their first letter.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output to points. scale is the number of
// points per shaped pixel.
func convertGlyphs(glyphs []shaping.Glyph, scale float64) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	toPoints := func(v fixed.Int26_6) float64 {
		return fixedToFloat64(v) * scale
	}

	result := make([]ShapedGlyph, len(glyphs))
	for i, g := range glyphs {
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids of TrueType fonts fit in 16 bits
			Cluster:  g.TextIndex(),
			XOffset:  toPoints(g.XOffset),
			YOffset:  -toPoints(g.YOffset),
			XAdvance: toPoints(g.Advance),
		}
	}
	return result
}

// fixTabs replaces the glyphs of tab characters with a space four spaces
// wide, matching BuiltinShaper.
func fixTabs(run Run, glyphs []ShapedGlyph) {
	for i := range glyphs {
		c := glyphs[i].Cluster
		if c < 0 || c >= len(run.Text) || run.Text[c] != '\t' {
			continue
		}
		info, ok := run.Font.GlyphInfo('\t')
		if !ok {
			continue
		}
		glyphs[i] = ShapedGlyph{GID: info.ID, Cluster: c, XAdvance: info.AdvanceWidth}
	}
}
