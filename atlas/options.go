package atlas

// Option configures a TextureAtlas.
type Option func(*config)

type config struct {
	padding int
}

func defaultConfig() config {
	return config{
		padding: DefaultPadding,
	}
}

// WithPadding sets the number of empty texels kept between allocations to
// prevent bilinear sampling from bleeding into neighbouring glyphs.
func WithPadding(p int) Option {
	return func(c *config) {
		if p >= 0 {
			c.padding = p
		}
	}
}
