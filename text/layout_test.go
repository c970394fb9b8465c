package text

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeFonts returns a resolver whose Body font covers latin letters,
// Hebrew and spaces at 10px, and whose Heading font is the same at 20px.
func fakeFonts(t *testing.T) styleResolver {
	t.Helper()
	a := newTestAtlas()
	const covered = "abcdefghijklmnopqrstuvwxyz? אבג"
	return styleResolver{
		StyleBody:    NewFont([]*FontImpl{fakeImpl(t, a, covered, 10)}),
		StyleHeading: NewFont([]*FontImpl{fakeImpl(t, a, covered, 20)}),
	}
}

func rowTexts(g *Galley) []string {
	rows := make([]string, len(g.Rows))
	for i, r := range g.Rows {
		rows[i] = runesOf(r)
	}
	return rows
}

func glyphXs(row Row) []float64 {
	xs := make([]float64, len(row.Glyphs))
	for i, g := range row.Glyphs {
		xs[i] = g.Pos.X
	}
	return xs
}

func TestLayoutSingleRow(t *testing.T) {
	g := Layout(fakeFonts(t), nil, SimpleJob("hi", StyleBody, white, math.Inf(1)))

	if len(g.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(g.Rows))
	}
	if diff := cmp.Diff([]float64{0, 5}, glyphXs(g.Rows[0])); diff != "" {
		t.Errorf("glyph x (-want +got):\n%s", diff)
	}
	want := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	if g.Rect != want {
		t.Errorf("Rect = %+v, want %+v", g.Rect, want)
	}
	if g.Size() != (Vec2{X: 10, Y: 10}) {
		t.Errorf("Size() = %+v", g.Size())
	}
	if g.Text() != "hi" || g.NumChars() != 2 {
		t.Errorf("Text() = %q, NumChars() = %d", g.Text(), g.NumChars())
	}
}

func TestLayoutEmpty(t *testing.T) {
	g := Layout(fakeFonts(t), nil, SimpleJob("", StyleHeading, white, 100))

	if len(g.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(g.Rows))
	}
	if !g.IsEmpty() {
		t.Error("IsEmpty() = false")
	}
	if h := g.Rows[0].Rect.Height(); h != 20 {
		t.Errorf("empty row height = %v, want the Heading row height 20", h)
	}
}

func TestLayoutNoSections(t *testing.T) {
	g := Layout(fakeFonts(t), nil, &LayoutJob{Text: "ignored"})
	if len(g.Rows) != 1 || !g.IsEmpty() {
		t.Errorf("job without sections laid out %v", rowTexts(g))
	}
}

func TestLayoutNewlines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		breaks   bool
		want     []string
		newlines []bool
	}{
		{"lf", "ab\ncd", true, []string{"ab", "cd"}, []bool{true, false}},
		{"crlf", "ab\r\ncd", true, []string{"ab", "cd"}, []bool{true, false}},
		{"cr", "ab\rcd", true, []string{"ab", "cd"}, []bool{true, false}},
		{"trailing", "ab\n", true, []string{"ab", ""}, []bool{true, false}},
		{"blank line", "a\n\nb", true, []string{"a", "", "b"}, []bool{true, true, false}},
		{"as space", "ab\ncd", false, []string{"ab cd"}, []bool{false}},
		{"crlf as space", "ab\r\ncd", false, []string{"ab cd"}, []bool{false}},
	}

	fonts := fakeFonts(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := SimpleJob(tt.text, StyleBody, white, math.Inf(1))
			job.BreakOnNewline = tt.breaks
			g := Layout(fonts, nil, job)

			if diff := cmp.Diff(tt.want, rowTexts(g)); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			for i, r := range g.Rows {
				if i < len(tt.newlines) && r.EndsWithNewline != tt.newlines[i] {
					t.Errorf("row %d EndsWithNewline = %v, want %v", i, r.EndsWithNewline, tt.newlines[i])
				}
				if r.Rect.MinY != float64(i*10) {
					t.Errorf("row %d top = %v, want %v", i, r.Rect.MinY, i*10)
				}
			}
		})
	}
}

func TestLayoutWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		mode  WrapMode
		want  []string
	}{
		{"words", "abc def gh", 22, WrapWordChar, []string{"abc ", "def ", "gh"}},
		{"fits", "abc def gh", 50, WrapWordChar, []string{"abc def gh"}},
		{"long word", "abcdefgh", 12, WrapWordChar, []string{"ab", "cd", "ef", "gh"}},
		{"long word no char break", "abcdefgh", 12, WrapWord, []string{"abcdefgh"}},
		{"char mode", "ab cd", 12, WrapChar, []string{"ab ", "cd"}},
		{"none", "abc def gh", 12, WrapNone, []string{"abc def gh"}},
		{"hanging spaces", "ab   cd", 10, WrapWordChar, []string{"ab   ", "cd"}},
	}

	fonts := fakeFonts(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := SimpleJob(tt.text, StyleBody, white, tt.width)
			job.WrapMode = tt.mode
			g := Layout(fonts, nil, job)
			if diff := cmp.Diff(tt.want, rowTexts(g)); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			for i, r := range g.Rows {
				if len(r.Glyphs) > 0 && r.Glyphs[0].Pos.X != 0 {
					t.Errorf("row %d starts at x=%v, want 0", i, r.Glyphs[0].Pos.X)
				}
			}
		})
	}
}

func TestLayoutFirstRowMinHeight(t *testing.T) {
	job := SimpleJob("ab\ncd", StyleBody, white, math.Inf(1))
	job.FirstRowMinHeight = 16
	g := Layout(fakeFonts(t), nil, job)

	if h := g.Rows[0].Rect.Height(); h != 16 {
		t.Errorf("first row height = %v, want 16", h)
	}
	if h := g.Rows[1].Rect.Height(); h != 10 {
		t.Errorf("second row height = %v, want 10", h)
	}
	// Bottom-aligned glyphs sit on the taller first row's bottom.
	if y := g.Rows[0].Glyphs[0].Pos.Y; y != 6 {
		t.Errorf("first row glyph y = %v, want 6", y)
	}
}

func TestLayoutSectionsValign(t *testing.T) {
	tests := []struct {
		valign Align
		want   float64
	}{
		{AlignMin, 0},
		{AlignCenter, 5},
		{AlignMax, 10},
	}

	fonts := fakeFonts(t)
	for _, tt := range tests {
		t.Run(tt.valign.String(), func(t *testing.T) {
			var job LayoutJob
			small := SimpleFormat(StyleBody, white)
			small.Valign = tt.valign
			job.Append("ab", 0, small)
			job.Append("cd", 0, SimpleFormat(StyleHeading, white))
			job.WrapWidth = math.Inf(1)
			g := Layout(fonts, nil, &job)

			row := g.Rows[0]
			if row.Rect.Height() != 20 {
				t.Fatalf("row height = %v, want 20", row.Rect.Height())
			}
			if y := row.Glyphs[0].Pos.Y; y != tt.want {
				t.Errorf("small glyph y = %v, want %v", y, tt.want)
			}
			if row.Glyphs[2].SectionIndex != 1 || row.Glyphs[2].Size.X != 10 {
				t.Errorf("heading glyph = %+v", row.Glyphs[2])
			}
		})
	}
}

func TestLayoutLeadingSpaceAndLetterSpacing(t *testing.T) {
	var job LayoutJob
	job.Append("ab", 0, DefaultTextFormat())
	spaced := DefaultTextFormat()
	spaced.ExtraLetterSpacing = 1
	job.Append("cd", 3, spaced)
	job.WrapWidth = math.Inf(1)

	g := Layout(fakeFonts(t), nil, &job)
	want := []float64{0, 5, 13, 19}
	if diff := cmp.Diff(want, glyphXs(g.Rows[0])); diff != "" {
		t.Errorf("glyph x (-want +got):\n%s", diff)
	}
	if g.Rect.MaxX != 25 {
		t.Errorf("Rect.MaxX = %v, want 25", g.Rect.MaxX)
	}
}

func TestLayoutHalign(t *testing.T) {
	tests := []struct {
		name   string
		halign Align
		wrap   float64
		want   []float64
	}{
		{"center in wrap width", AlignCenter, 40, []float64{15, 10}},
		{"right in wrap width", AlignMax, 40, []float64{30, 20}},
		{"right in widest row", AlignMax, math.Inf(1), []float64{10, 0}},
	}

	fonts := fakeFonts(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := SimpleJob("ab\ncdef", StyleBody, white, tt.wrap)
			job.Halign = tt.halign
			g := Layout(fonts, nil, job)
			got := []float64{g.Rows[0].Rect.MinX, g.Rows[1].Rect.MinX}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("row MinX (-want +got):\n%s", diff)
			}
			if g.Rows[0].Glyphs[0].Pos.X != tt.want[0] {
				t.Errorf("glyph not moved with its row: %v", g.Rows[0].Glyphs[0].Pos.X)
			}
		})
	}
}

func TestLayoutRTL(t *testing.T) {
	fonts := fakeFonts(t)

	t.Run("embedded", func(t *testing.T) {
		g := Layout(fonts, nil, SimpleJob("ab אבג", StyleBody, white, math.Inf(1)))
		row := g.Rows[0]
		if got, want := runesOf(row), "ab גבא"; got != want {
			t.Errorf("visual order = %q, want %q", got, want)
		}
		if diff := cmp.Diff([]float64{0, 5, 10, 15, 20, 25}, glyphXs(row)); diff != "" {
			t.Errorf("glyph x (-want +got):\n%s", diff)
		}
	})

	t.Run("paragraph", func(t *testing.T) {
		g := Layout(fonts, nil, SimpleJob("אב ab", StyleBody, white, math.Inf(1)))
		row := g.Rows[0]
		if got, want := runesOf(row), "ab בא"; got != want {
			t.Errorf("visual order = %q, want %q", got, want)
		}
		if diff := cmp.Diff([]float64{0, 5, 10, 15, 20}, glyphXs(row)); diff != "" {
			t.Errorf("glyph x (-want +got):\n%s", diff)
		}
	})
}

func TestLayoutReplacementGlyph(t *testing.T) {
	g := Layout(fakeFonts(t), nil, SimpleJob("a一b", StyleBody, white, math.Inf(1)))
	row := g.Rows[0]
	if len(row.Glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(row.Glyphs))
	}
	// The glyph keeps the original character but uses the replacement's box.
	if row.Glyphs[1].Chr != '一' {
		t.Errorf("Chr = %q, want U+4E00", row.Glyphs[1].Chr)
	}
	if row.Glyphs[1].UvRect.IsNothing() {
		t.Error("uncovered rune rendered nothing instead of the replacement glyph")
	}
}

func TestLayoutCopiesJob(t *testing.T) {
	job := SimpleJob("ab", StyleBody, white, math.Inf(1))
	g := Layout(fakeFonts(t), nil, job)

	job.Text = "changed"
	job.Sections[0].Format.Color.R = 0
	if g.Job.Text != "ab" || g.Job.Sections[0].Format.Color != white {
		t.Error("galley shares the caller's job")
	}
}

func TestLayoutGoRegular(t *testing.T) {
	impl := NewFontImpl(newTestAtlas(), 1, goRegular(t), 14, 0)
	fonts := styleResolver{StyleBody: NewFont([]*FontImpl{impl})}

	for _, shaper := range []Shaper{&BuiltinShaper{}, NewHarfbuzzShaper()} {
		g := Layout(fonts, shaper, SimpleJob("hello world", StyleBody, white, math.Inf(1)))
		if len(g.Rows) != 1 {
			t.Fatalf("%T: got %d rows, want 1", shaper, len(g.Rows))
		}
		if n := len(g.Rows[0].Glyphs); n != 11 {
			t.Errorf("%T: got %d glyphs, want 11", shaper, n)
		}
		if g.Rect.Height() != 14 {
			t.Errorf("%T: height = %v, want 14", shaper, g.Rect.Height())
		}
		if w := g.Rect.Width(); w < 50 || w > 100 {
			t.Errorf("%T: width = %v, want a plausible 14px width", shaper, w)
		}
	}
}

func TestReorderRowMirrorsSpan(t *testing.T) {
	glyphs := []Glyph{
		{Chr: 'a', Pos: Vec2{X: 0}, Size: Vec2{X: 4}},
		{Chr: 'b', Pos: Vec2{X: 4}, Size: Vec2{X: 2}},
		{Chr: 'c', Pos: Vec2{X: 6}, Size: Vec2{X: 3}},
	}
	reorderRow(glyphs, []bool{false, true, true}, false)

	want := []Glyph{
		{Chr: 'a', Pos: Vec2{X: 0}, Size: Vec2{X: 4}},
		{Chr: 'c', Pos: Vec2{X: 4}, Size: Vec2{X: 3}},
		{Chr: 'b', Pos: Vec2{X: 7}, Size: Vec2{X: 2}},
	}
	if diff := cmp.Diff(want, glyphs); diff != "" {
		t.Errorf("reorderRow (-want +got):\n%s", diff)
	}
}

func TestClampRange(t *testing.T) {
	text := "aéb" // é is two bytes
	tests := []struct {
		in         [2]int
		start, end int
	}{
		{[2]int{0, 4}, 0, 4},
		{[2]int{-3, 99}, 0, 4},
		{[2]int{2, 3}, 3, 3},
		{[2]int{0, 2}, 0, 3},
		{[2]int{3, 1}, 3, 3},
	}
	for _, tt := range tests {
		start, end := clampRange(tt.in, text)
		if start != tt.start || end != tt.end {
			t.Errorf("clampRange(%v) = %d, %d, want %d, %d", tt.in, start, end, tt.start, tt.end)
		}
	}
}
