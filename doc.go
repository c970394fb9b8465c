// Package fonts manages the fonts of a UI: it turns LayoutJobs into shared,
// immutable Galleys and keeps the glyphs they need in one texture atlas.
//
// # Overview
//
// A Fonts collection is built once from Definitions (font bytes, family
// fallback lists and text style bindings) for one display scale:
//
//	f, err := fonts.New(2.0, fonts.DefaultDefinitions())
//	if err != nil {
//		return err
//	}
//
//	galley := f.Layout("Hello", text.StyleBody, color.RGBA{A: 255}, 200)
//
//	// Once per rendered frame:
//	f.EndFrame()
//	if delta, ok := f.FontImageDelta(); ok {
//		upload(delta)
//	}
//
// # Caching
//
// Three lazily filled caches live inside a collection and share its lock:
//
//   - fonts rasterized at one pixel size, keyed by (pixel size, font name)
//   - resolved fallback chains, keyed by text style or explicit FontID
//   - galleys, keyed by the content hash of their LayoutJob
//
// Rasterized fonts and chains live as long as the collection. Galleys are
// evicted by EndFrame unless they were requested during the frame that
// just ended.
//
// # Concurrency
//
// A *Fonts is safe for concurrent use. Every operation takes one mutex;
// layout under the lock is short because the common case is a cache hit.
// Share the pointer rather than building a collection per caller.
package fonts
