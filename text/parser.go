package text

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data and returns the face at index.
	// Index is 0 for single-face files.
	Parse(data []byte, index int) (ParsedFont, error)
}

// ParsedFont represents a parsed font face.
// All sizes are in pixels per em; all results are in pixels.
//
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 (the notdef glyph) if the rune is not covered.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width of a glyph.
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// Kern returns the horizontal kerning adjustment between two glyphs.
	Kern(a, b GlyphID, ppem float64) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) FontMetrics

	// RasterizeGlyph renders a glyph to a coverage mask.
	// Returns nil for glyphs without an outline, such as space.
	RasterizeGlyph(gid GlyphID, ppem float64) *GlyphImage
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
}

const defaultParserName = "ximage"

// RegisterParser registers a custom font parser under name.
// It is not safe to call concurrently with font loading.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
