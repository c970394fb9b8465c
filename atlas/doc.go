// Package atlas implements the shared glyph texture atlas.
//
// A TextureAtlas is a single-channel coverage image into which rasterized
// glyphs are packed. Rectangles are placed by a shelf allocator and are
// never freed individually: allocation is append-only for the lifetime of
// the atlas. When a new rectangle does not fit, the image height is doubled.
//
// Every allocation marks its rectangle dirty. TakeDelta returns the pixels
// modified since the previous call so a renderer can upload only what
// changed:
//
//	if delta, ok := a.TakeDelta(); ok {
//	    queue.WriteTexture(tex, delta.Pos, delta.RGBA(), delta.Extent())
//	}
package atlas
