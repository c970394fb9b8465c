package text

// Galley is a laid out LayoutJob: rows of positioned glyphs ready to be
// painted from the font atlas.
//
// A Galley is immutable once returned and may be shared between
// goroutines. All coordinates are in points, relative to the galley's
// top-left corner.
type Galley struct {
	// Job is the job the galley was laid out from. It must not be modified.
	Job *LayoutJob

	// Rows is never empty; an empty job produces one empty row.
	Rows []Row

	// Rect bounds every row.
	Rect Rect
}

// Size returns the size of the galley's bounding rectangle.
func (g *Galley) Size() Vec2 {
	return Vec2{X: g.Rect.Width(), Y: g.Rect.Height()}
}

// Text returns the text the galley was laid out from.
func (g *Galley) Text() string {
	return g.Job.Text
}

// IsEmpty reports whether the galley has no glyphs.
func (g *Galley) IsEmpty() bool {
	for i := range g.Rows {
		if len(g.Rows[i].Glyphs) > 0 {
			return false
		}
	}
	return true
}

// NumChars returns the number of laid out characters, counting each row
// break caused by a newline as one character.
func (g *Galley) NumChars() int {
	n := 0
	for i := range g.Rows {
		n += g.Rows[i].CharCountIncludingNewline()
	}
	return n
}

// Row is one visual line of a Galley.
type Row struct {
	// Glyphs are in visual order, left to right.
	Glyphs []Glyph

	// Rect bounds the row's glyphs. Empty rows still have a height.
	Rect Rect

	// EndsWithNewline is true if the row was ended by a newline
	// rather than by wrapping or the end of the text.
	EndsWithNewline bool
}

// CharCount returns the number of glyphs in the row.
func (r *Row) CharCount() int {
	return len(r.Glyphs)
}

// CharCountIncludingNewline is CharCount plus one if the row ends with
// a newline.
func (r *Row) CharCountIncludingNewline() int {
	if r.EndsWithNewline {
		return len(r.Glyphs) + 1
	}
	return len(r.Glyphs)
}

// MinY returns the top of the row.
func (r *Row) MinY() float64 { return r.Rect.MinY }

// MaxY returns the bottom of the row.
func (r *Row) MaxY() float64 { return r.Rect.MaxY }

// Glyph is one positioned character of a Row.
type Glyph struct {
	Chr rune

	// Pos is the top-left corner of the glyph's slot: the pen position
	// horizontally and the top of its font's row vertically.
	Pos Vec2

	// Size is the advance width and the font's row height.
	Size Vec2

	// UvRect places the glyph's coverage relative to Pos and locates it
	// in the atlas.
	UvRect UvRect

	// SectionIndex indexes LayoutJob.Sections.
	SectionIndex int
}

// MaxX returns the right edge of the glyph's advance.
func (g *Glyph) MaxX() float64 {
	return g.Pos.X + g.Size.X
}
