package fonts

import (
	"maps"
	"math"
	"slices"

	"github.com/gogpu/fonts/internal/memo"
	"github.com/gogpu/fonts/text"
)

// implKey identifies a font rasterized at one pixel size.
type implKey struct {
	scaleInPixels int
	name          string
}

// fontImplCache hands out fonts rasterized at a pixel size, creating each
// (size, name) pair once. All fonts share one atlas.
type fontImplCache struct {
	atlas          text.Atlas
	pixelsPerPoint float64
	sources        map[string]*text.FontSource
	tweaks         map[string]Tweak
	cache          *memo.Map[implKey, *text.FontImpl]
}

// newFontImplCache parses every font in defs. Font names are visited in
// sorted order so that the first malformed font is reported consistently.
func newFontImplCache(atlas text.Atlas, pixelsPerPoint float64, defs Definitions, parser string) (*fontImplCache, error) {
	var opts []text.SourceOption
	if parser != "" {
		opts = append(opts, text.WithParser(parser))
	}

	sources := make(map[string]*text.FontSource, len(defs.FontData))
	for _, name := range slices.Sorted(maps.Keys(defs.FontData)) {
		data := defs.FontData[name]
		src, err := text.NewFontSource(name, data.Font, data.Index, opts...)
		if err != nil {
			return nil, &FontDataError{Name: name, Err: err}
		}
		sources[name] = src
	}

	return &fontImplCache{
		atlas:          atlas,
		pixelsPerPoint: pixelsPerPoint,
		sources:        sources,
		tweaks:         defs.Tweaks,
		cache:          memo.New[implKey, *text.FontImpl](),
	}, nil
}

// fontImpl returns the font registered as name at scaleInPoints, after
// applying the font's tweak. The pixel size is rounded to the nearest
// integer so that glyph advances and kerning stay on whole pixels.
//
// Panics with a *MissingFontError if name has no font data.
func (c *fontImplCache) fontImpl(scaleInPoints float64, name string) *text.FontImpl {
	tweak := c.tweaks[name]
	yOffset := scaleInPoints*tweak.YOffsetFactor + tweak.YOffset
	scaleInPoints *= tweak.scale()

	scaleInPixels := max(int(math.Round(scaleInPoints*c.pixelsPerPoint)), 1)

	return c.cache.GetOrCreate(implKey{scaleInPixels: scaleInPixels, name: name}, func() *text.FontImpl {
		src, ok := c.sources[name]
		if !ok {
			panic(&MissingFontError{Name: name})
		}
		Logger().Debug("fonts: rasterizing font", "font", name, "pixels", scaleInPixels)
		return text.NewFontImpl(c.atlas, c.pixelsPerPoint, src, scaleInPixels, yOffset)
	})
}

// len returns the number of (size, name) pairs created so far.
func (c *fontImplCache) len() int {
	return c.cache.Len()
}
