package text

import (
	"slices"
	"unicode/utf8"
)

// FontResolver maps a section format to the font chain that renders it.
type FontResolver interface {
	FontForFormat(format *TextFormat) *Font
}

// Layout lays job out into a Galley using the fonts chosen by fonts and
// positioned by shaper. A nil shaper uses DefaultShaper.
//
// The galley keeps its own copy of job, so the caller may reuse job
// afterwards.
func Layout(fonts FontResolver, shaper Shaper, job *LayoutJob) *Galley {
	if shaper == nil {
		shaper = DefaultShaper()
	}

	jobCopy := *job
	jobCopy.Sections = slices.Clone(job.Sections)

	l := &layouter{
		job:    &jobCopy,
		shaper: shaper,
		fonts:  make([]*Font, len(jobCopy.Sections)),
	}
	for i := range jobCopy.Sections {
		l.fonts[i] = fonts.FontForFormat(&jobCopy.Sections[i].Format)
	}
	return l.layout()
}

// layoutChar is one rune of the job together with its section.
type layoutChar struct {
	r       rune
	section int

	// leading is the section's leading space, set on its first rune only.
	leading float64
}

// paragraph is a run of text between hard line breaks.
type paragraph struct {
	chars []layoutChar

	// section sets the row height when the paragraph is empty.
	section         int
	endsWithNewline bool
}

// pglyph is a shaped glyph positioned along its paragraph, before
// wrapping.
type pglyph struct {
	chr     rune
	runeIdx int
	section int

	// clusterStart is false for the second and later glyphs of a cluster.
	clusterStart bool
	rtl          bool

	x       float64
	advance float64
	height  float64
	uv      UvRect
}

type layouter struct {
	job    *LayoutJob
	shaper Shaper

	// fonts is indexed by section.
	fonts []*Font
}

func (l *layouter) layout() *Galley {
	galley := &Galley{Job: l.job}

	y := 0.0
	for _, p := range l.paragraphs() {
		glyphs, baseRTL := l.shapeParagraph(&p)
		for _, span := range l.wrap(&p, glyphs) {
			row := l.buildRow(&p, glyphs[span[0]:span[1]], baseRTL, y, len(galley.Rows) == 0)
			galley.Rows = append(galley.Rows, row)
			y = row.Rect.MaxY
		}
		galley.Rows[len(galley.Rows)-1].EndsWithNewline = p.endsWithNewline
	}

	l.halign(galley.Rows)

	galley.Rect = galley.Rows[0].Rect
	for i := 1; i < len(galley.Rows); i++ {
		galley.Rect = galley.Rect.union(galley.Rows[i].Rect)
	}
	return galley
}

// paragraphs splits the sectioned text at hard line breaks. "\r\n" and a
// lone "\r" count as one newline. Without BreakOnNewline every newline is
// laid out as a space.
func (l *layouter) paragraphs() []paragraph {
	paras := []paragraph{{}}

	for si := range l.job.Sections {
		s := &l.job.Sections[si]
		start, end := clampRange(s.ByteRange, l.job.Text)
		text := l.job.Text[start:end]
		leading := s.LeadingSpace

		for i, r := range text {
			if r == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			if r == '\n' || r == '\r' {
				if l.job.BreakOnNewline {
					paras[len(paras)-1].endsWithNewline = true
					paras = append(paras, paragraph{section: si})
					continue
				}
				r = ' '
			}
			p := &paras[len(paras)-1]
			p.chars = append(p.chars, layoutChar{r: r, section: si, leading: leading})
			leading = 0
		}
	}
	return paras
}

// shapeParagraph splits the paragraph into runs sharing a font, a section
// and a direction, shapes every run and lays the glyphs out on one line.
func (l *layouter) shapeParagraph(p *paragraph) ([]pglyph, bool) {
	n := len(p.chars)
	if n == 0 {
		return nil, false
	}

	runes := make([]rune, n)
	for i, c := range p.chars {
		runes[i] = c.r
	}
	dirs, baseRTL := runeDirections(runes)

	impls := make([]*FontImpl, n)
	shapeRunes := make([]rune, n)
	for i, c := range p.chars {
		impls[i], shapeRunes[i] = l.fonts[c.section].Resolve(c.r)
	}

	glyphs := make([]pglyph, 0, n)
	x := 0.0
	for start := 0; start < n; {
		section := p.chars[start].section
		end := start + 1
		for end < n && impls[end] == impls[start] && p.chars[end].section == section && dirs[end] == dirs[start] {
			end++
		}

		impl := impls[start]
		format := &l.job.Sections[section].Format
		height := l.fonts[section].RowHeight()

		shaped := l.shaper.Shape(Run{Text: shapeRunes[start:end], Font: impl, Direction: dirs[start]})
		prevCluster := -1
		for _, sg := range shaped {
			cluster := min(max(sg.Cluster, 0), end-start-1)
			idx := start + cluster
			c := p.chars[idx]

			clusterStart := cluster != prevCluster
			if clusterStart {
				x += c.leading
			}
			prevCluster = cluster

			uv := impl.GlyphInfoByID(sg.GID).UvRect
			if !uv.IsNothing() {
				uv.Offset.X += sg.XOffset
				uv.Offset.Y += sg.YOffset
			}

			advance := sg.XAdvance + format.ExtraLetterSpacing
			glyphs = append(glyphs, pglyph{
				chr:          c.r,
				runeIdx:      idx,
				section:      c.section,
				clusterStart: clusterStart,
				rtl:          dirs[idx] == DirectionRTL,
				x:            x,
				advance:      advance,
				height:       height,
				uv:           uv,
			})
			x += advance
		}
		start = end
	}
	return glyphs, baseRTL
}

// wrap greedily splits glyphs into rows no wider than the wrap width,
// breaking at the last break opportunity and falling back to a character
// break for words wider than a row. Spaces may hang past the wrap width.
func (l *layouter) wrap(p *paragraph, glyphs []pglyph) [][2]int {
	if !l.job.wraps() || len(glyphs) == 0 {
		return [][2]int{{0, len(glyphs)}}
	}

	mode := l.job.WrapMode
	starts := rowStarts(p.chars, mode)
	charFallback := mode == WrapWordChar || mode == WrapChar
	canBreakBefore := func(i int) bool {
		g := &glyphs[i]
		return g.clusterStart && starts[g.runeIdx]
	}

	width := l.job.WrapWidth
	var rows [][2]int
	start, lastBreak := 0, -1
	rowX := 0.0
	for i := range glyphs {
		g := &glyphs[i]
		if i > start && canBreakBefore(i) {
			lastBreak = i
		}
		if i == start || isHangingSpace(g.chr) || g.x+g.advance-rowX <= width {
			continue
		}

		brk := -1
		if lastBreak > start {
			brk = lastBreak
		} else if charFallback && g.clusterStart {
			brk = i
		}
		if brk < 0 {
			continue
		}

		rows = append(rows, [2]int{start, brk})
		start, rowX, lastBreak = brk, glyphs[brk].x, -1
		for j := brk + 1; j <= i; j++ {
			if canBreakBefore(j) {
				lastBreak = j
			}
		}
	}
	return append(rows, [2]int{start, len(glyphs)})
}

func isHangingSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\u3000'
}

// buildRow turns a slice of positioned glyphs into a Row starting at x 0
// and y top, in visual order.
func (l *layouter) buildRow(p *paragraph, pg []pglyph, baseRTL bool, top float64, first bool) Row {
	height := 0.0
	if len(pg) == 0 && len(l.fonts) > 0 {
		height = l.fonts[p.section].RowHeight()
	}
	for i := range pg {
		height = max(height, pg[i].height)
	}
	if first {
		height = max(height, l.job.FirstRowMinHeight)
	}

	glyphs := make([]Glyph, len(pg))
	rtl := make([]bool, len(pg))
	// Rows continuing a wrapped paragraph start at their first glyph.
	rowX := 0.0
	if len(pg) > 0 && pg[0].runeIdx > 0 {
		rowX = pg[0].x
	}
	for i := range pg {
		g := &pg[i]
		valign := l.job.Sections[g.section].Format.Valign
		glyphs[i] = Glyph{
			Chr:          g.chr,
			Pos:          Vec2{X: g.x - rowX, Y: top + (height-g.height)*valign.factor()},
			Size:         Vec2{X: g.advance, Y: g.height},
			UvRect:       g.uv,
			SectionIndex: g.section,
		}
		rtl[i] = g.rtl
	}
	reorderRow(glyphs, rtl, baseRTL)

	rect := Rect{MinY: top, MaxY: top + height}
	if len(glyphs) > 0 {
		rect.MinX = glyphs[0].Pos.X
		rect.MaxX = glyphs[0].MaxX()
		for i := 1; i < len(glyphs); i++ {
			rect.MinX = min(rect.MinX, glyphs[i].Pos.X)
			rect.MaxX = max(rect.MaxX, glyphs[i].MaxX())
		}
	}
	return Row{Glyphs: glyphs, Rect: rect}
}

// reorderRow converts a row from logical to visual order. Right-to-left
// spans are mirrored in place; in a right-to-left paragraph the whole row
// is mirrored and the left-to-right spans inside it restored.
func reorderRow(glyphs []Glyph, rtl []bool, baseRTL bool) {
	flip := true
	if baseRTL {
		mirrorSpan(glyphs, rtl, 0, len(glyphs))
		flip = false
	}
	for i := 0; i < len(glyphs); {
		if rtl[i] != flip {
			i++
			continue
		}
		j := i + 1
		for j < len(glyphs) && rtl[j] == flip {
			j++
		}
		mirrorSpan(glyphs, rtl, i, j)
		i = j
	}
}

// mirrorSpan reflects glyphs[a:b] horizontally within the span they
// cover and reverses their order.
func mirrorSpan(glyphs []Glyph, rtl []bool, a, b int) {
	if b-a < 1 {
		return
	}
	lo, hi := glyphs[a].Pos.X, glyphs[a].MaxX()
	for i := a + 1; i < b; i++ {
		lo = min(lo, glyphs[i].Pos.X)
		hi = max(hi, glyphs[i].MaxX())
	}
	for i := a; i < b; i++ {
		glyphs[i].Pos.X = lo + hi - glyphs[i].MaxX()
	}
	slices.Reverse(glyphs[a:b])
	slices.Reverse(rtl[a:b])
}

// halign shifts rows within the wrap width, or within the widest row if
// the job does not wrap.
func (l *layouter) halign(rows []Row) {
	f := l.job.Halign.factor()
	if f == 0 {
		return
	}

	width := l.job.WrapWidth
	if !l.job.wraps() {
		width = 0
		for i := range rows {
			width = max(width, rows[i].Rect.Width())
		}
	}

	for i := range rows {
		r := &rows[i]
		dx := (width-r.Rect.Width())*f - r.Rect.MinX
		r.Rect.MinX += dx
		r.Rect.MaxX += dx
		for j := range r.Glyphs {
			r.Glyphs[j].Pos.X += dx
		}
	}
}

// clampRange limits a section's byte range to the text, moving both ends
// forward to rune boundaries.
func clampRange(r [2]int, text string) (int, int) {
	n := len(text)
	start := min(max(r[0], 0), n)
	for start < n && !utf8.RuneStart(text[start]) {
		start++
	}
	end := min(max(r[1], start), n)
	for end < n && !utf8.RuneStart(text[end]) {
		end++
	}
	return start, end
}
