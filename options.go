package fonts

import (
	"github.com/gogpu/fonts/atlas"
	"github.com/gogpu/fonts/text"
)

// Option configures a Fonts collection during creation.
//
// Example:
//
//	f, err := fonts.New(2.0, fonts.DefaultDefinitions(),
//		fonts.WithShaper(text.NewHarfbuzzShaper()),
//		fonts.WithAtlasSize(1024, 256),
//	)
type Option func(*options)

// options holds optional configuration for a collection.
type options struct {
	shaper       text.Shaper
	atlasWidth   int
	atlasHeight  int
	atlasPadding int
	parser       string
}

// defaultOptions returns the default collection options.
func defaultOptions() options {
	return options{
		shaper:       text.DefaultShaper(),
		atlasWidth:   atlas.DefaultWidth,
		atlasHeight:  atlas.DefaultHeight,
		atlasPadding: atlas.DefaultPadding,
	}
}

// WithShaper sets the shaper used to position glyphs.
// The default is text.BuiltinShaper; text.HarfbuzzShaper adds ligatures
// and complex scripts. A nil shaper keeps the default.
func WithShaper(s text.Shaper) Option {
	return func(o *options) {
		if s != nil {
			o.shaper = s
		}
	}
}

// WithAtlasSize sets the initial size of the glyph atlas in texels.
// The width is fixed for the collection's lifetime; the height doubles as
// glyphs are added. Non-positive values keep the defaults.
func WithAtlasSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.atlasWidth = width
		}
		if height > 0 {
			o.atlasHeight = height
		}
	}
}

// WithAtlasPadding sets the number of empty texels kept between glyphs.
func WithAtlasPadding(padding int) Option {
	return func(o *options) {
		o.atlasPadding = max(padding, 0)
	}
}

// WithParser selects the font parser backend registered with
// text.RegisterParser. The default is "ximage".
func WithParser(name string) Option {
	return func(o *options) {
		o.parser = name
	}
}
