package fonts

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/fonts/atlas"
	"github.com/gogpu/fonts/text"
)

// MaxPixelsPerPoint bounds the scale factor accepted by New.
const MaxPixelsPerPoint = 100

// Fonts is a font collection bound to one scale factor and one atlas.
//
// Fonts is safe for concurrent use. Every method takes the collection's
// lock for its full duration, so a galley returned by LayoutJob is never
// observed half built.
type Fonts struct {
	mu      sync.Mutex
	impl    *fontsImpl
	galleys *galleyCache
	atlas   *atlas.TextureAtlas
	shaper  text.Shaper
}

// CacheStats reports the state of a collection's caches.
type CacheStats struct {
	// Galleys is the number of galleys currently cached.
	Galleys int

	// Hits and Misses count layout requests since creation.
	Hits   uint64
	Misses uint64

	// Evictions counts galleys dropped by EndFrame.
	Evictions uint64

	// FontSizes is the number of (font, pixel size) pairs rasterized so far.
	FontSizes int

	// ChainHits and ChainMisses count fallback chain lookups by text style
	// or FontID. Chains are never evicted, so misses stop once every style
	// in use has been resolved.
	ChainHits   uint64
	ChainMisses uint64
}

// New creates a collection for pixelsPerPoint physical pixels per point.
//
// pixelsPerPoint must lie strictly between 0 and MaxPixelsPerPoint; other
// values return a *ScaleError. Inconsistent definitions and font data that
// fails to parse are reported here rather than on first use. Every defined
// text style is resolved before New returns.
func New(pixelsPerPoint float64, defs Definitions, opts ...Option) (*Fonts, error) {
	if !(pixelsPerPoint > 0 && pixelsPerPoint < MaxPixelsPerPoint) {
		return nil, &ScaleError{PixelsPerPoint: pixelsPerPoint}
	}
	if err := defs.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	defs = defs.Clone()
	a := atlas.New(o.atlasWidth, o.atlasHeight, atlas.WithPadding(o.atlasPadding))
	impls, err := newFontImplCache(a, pixelsPerPoint, defs, o.parser)
	if err != nil {
		return nil, err
	}

	f := &Fonts{
		impl:    newFontsImpl(pixelsPerPoint, defs, impls),
		galleys: newGalleyCache(),
		atlas:   a,
		shaper:  o.shaper,
	}
	for _, style := range sortedStyles(defs.Styles) {
		f.impl.fontForStyle(style)
	}

	w, h := a.Size()
	Logger().Info("fonts: collection ready",
		"pixels_per_point", pixelsPerPoint,
		"fonts", len(defs.FontData),
		"styles", len(defs.Styles),
		"atlas_width", w,
		"atlas_height", h,
	)
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(pixelsPerPoint float64, defs Definitions, opts ...Option) *Fonts {
	f, err := New(pixelsPerPoint, defs, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// PixelsPerPoint returns the scale factor the collection was created with.
func (f *Fonts) PixelsPerPoint() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.impl.pixelsPerPoint
}

// Definitions returns a copy of the definitions the collection was built from.
func (f *Fonts) Definitions() Definitions {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.impl.definitions.Clone()
}

// FontImageSize returns the current atlas size in texels.
func (f *Fonts) FontImageSize() (width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.atlas.Size()
}

// FontImageDelta returns the atlas region changed since the previous call,
// or false if nothing changed.
func (f *Fonts) FontImageDelta() (atlas.ImageDelta, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.atlas.TakeDelta()
}

// FontImage returns a copy of the whole atlas image. It does not affect
// the pending delta.
func (f *Fonts) FontImage() *image.Alpha {
	f.mu.Lock()
	defer f.mu.Unlock()
	src := f.atlas.Image()
	img := image.NewAlpha(src.Bounds())
	copy(img.Pix, src.Pix)
	return img
}

// GlyphWidth returns the advance of c in style, in points.
func (f *Fonts) GlyphWidth(style text.TextStyle, c rune) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.impl.fontForStyle(style).GlyphWidth(c)
}

// RowHeight returns the height of one row of style, in points.
func (f *Fonts) RowHeight(style text.TextStyle) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.impl.fontForStyle(style).RowHeight()
}

// HasGlyphs reports whether every rune of s is covered by some font of style.
func (f *Fonts) HasGlyphs(style text.TextStyle, s string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	font := f.impl.fontForStyle(style)
	for _, r := range s {
		if !font.HasGlyph(r) {
			return false
		}
	}
	return true
}

// LayoutJob lays out job, reusing the galley of an identical job requested
// earlier in this frame or the previous one.
//
// The returned galley is shared and must not be modified.
func (f *Fonts) LayoutJob(job *text.LayoutJob) *text.Galley {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.galleys.layout(f.impl, f.shaper, job)
}

// Layout lays out s in one style and color, wrapping at wrapWidth points
// and breaking at newlines.
func (f *Fonts) Layout(s string, style text.TextStyle, c color.RGBA, wrapWidth float64) *text.Galley {
	return f.LayoutJob(text.SimpleJob(s, style, c, wrapWidth))
}

// LayoutNoWrap lays out s without wrapping. Newlines still break rows.
func (f *Fonts) LayoutNoWrap(s string, style text.TextStyle, c color.RGBA) *text.Galley {
	return f.LayoutJob(text.SimpleJob(s, style, c, math.Inf(1)))
}

// LayoutDelayedColor lays out s with text.PlaceholderColor so the caller
// can tint the galley when painting it.
func (f *Fonts) LayoutDelayedColor(s string, style text.TextStyle, wrapWidth float64) *text.Galley {
	return f.Layout(s, style, text.PlaceholderColor, wrapWidth)
}

// EndFrame evicts every galley that was not requested since the previous
// call. Call it once per frame, after all layout for the frame is done.
func (f *Fonts) EndFrame() {
	f.mu.Lock()
	defer f.mu.Unlock()
	before := f.galleys.len()
	evicted := f.galleys.endFrame()
	Logger().Debug("fonts: end of frame", "galleys", before, "evicted", evicted)
}

// NumGalleysInCache returns the number of cached galleys.
func (f *Fonts) NumGalleysInCache() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.galleys.len()
}

// CacheStats returns a snapshot of the collection's cache counters.
func (f *Fonts) CacheStats() CacheStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	chainHits, chainMisses := f.impl.chainStats()
	return CacheStats{
		Galleys:     f.galleys.len(),
		Hits:        f.galleys.hits,
		Misses:      f.galleys.misses,
		Evictions:   f.galleys.evictions,
		FontSizes:   f.impl.impls.len(),
		ChainHits:   chainHits,
		ChainMisses: chainMisses,
	}
}

// Styles returns the text styles with a binding, in a stable order.
func (f *Fonts) Styles() []text.TextStyle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedStyles(f.impl.definitions.Styles)
}
