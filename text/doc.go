// Package text turns layout jobs into galleys: immutable, positioned rows of
// glyphs whose coverage lives in a shared texture atlas.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight parsed font file (bytes + face index), shared
//   - FontImpl: one FontSource rasterized at one integral pixel size;
//     rasterizes glyphs lazily into the atlas and memoizes their metrics
//   - Font: an ordered fallback chain of FontImpls for one text style
//   - Layout: splits a LayoutJob into paragraphs, picks a FontImpl per rune
//     from the chain, shapes runs, wraps rows and aligns them into a Galley
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used; custom parsers can be
// registered with RegisterParser and selected with WithParser.
//
// # Shaping
//
// BuiltinShaper positions glyphs by advance and pair kerning.
// HarfbuzzShaper uses go-text/typesetting for ligatures, contextual forms
// and right-to-left scripts. Both report advances in points.
package text
