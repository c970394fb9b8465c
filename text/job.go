package text

import (
	"encoding/binary"
	"hash/fnv"
	"image/color"
	"math"
)

// PlaceholderColor marks a galley whose color is chosen at paint time.
// See fonts.Fonts.LayoutDelayedColor.
var PlaceholderColor = color.RGBA{R: 64, G: 254, B: 0, A: 3}

// Stroke describes an underline or strikethrough line. A zero Width
// draws nothing.
type Stroke struct {
	Width float64
	Color color.RGBA
}

// TextFormat describes how a section of a LayoutJob looks.
type TextFormat struct {
	// Style selects the font chain. Ignored when FontID is set.
	// The zero style means StyleBody.
	Style TextStyle

	// FontID selects an explicit size and family instead of Style.
	FontID FontID

	// ExtraLetterSpacing is added after every glyph, in points.
	ExtraLetterSpacing float64

	Color      color.RGBA
	Background color.RGBA

	Italics       bool
	Underline     Stroke
	Strikethrough Stroke

	// Valign aligns glyphs of this section within a taller row.
	Valign Align
}

// DefaultTextFormat returns body text in gray, bottom-aligned within
// its row.
func DefaultTextFormat() TextFormat {
	return TextFormat{
		Style:  StyleBody,
		Color:  color.RGBA{R: 160, G: 160, B: 160, A: 255},
		Valign: AlignMax,
	}
}

// SimpleFormat returns the format for text in one style and color.
func SimpleFormat(style TextStyle, c color.RGBA) TextFormat {
	f := DefaultTextFormat()
	f.Style = style
	f.Color = c
	return f
}

// LayoutSection is a byte range of LayoutJob.Text sharing one format.
type LayoutSection struct {
	// LeadingSpace is added before the first glyph of the section, in points.
	LeadingSpace float64

	// ByteRange is the [start, end) range into LayoutJob.Text.
	ByteRange [2]int

	Format TextFormat
}

// LayoutJob describes a piece of text to lay out: the text, how each
// part of it is formatted, and how it wraps.
//
// Jobs with the same content produce the same Galley, so a job is its
// own cache key; see Hash.
type LayoutJob struct {
	Text     string
	Sections []LayoutSection

	// WrapWidth is the maximum row width in points. +Inf, NaN or a value
	// <= 0 disables wrapping.
	WrapWidth float64

	// WrapMode selects where rows may break.
	WrapMode WrapMode

	// FirstRowMinHeight is the minimum height of the first row, in points.
	// Used to align text that continues after a taller widget.
	FirstRowMinHeight float64

	// BreakOnNewline starts a new row at "\n", "\r\n" and "\r". When false,
	// a newline is laid out as a space.
	BreakOnNewline bool

	// Halign aligns rows horizontally within the wrap width, or within the
	// widest row when not wrapping.
	Halign Align
}

// SimpleJob returns a job that lays text out in one format, wrapping at
// wrapWidth and breaking on newlines.
func SimpleJob(text string, style TextStyle, c color.RGBA, wrapWidth float64) *LayoutJob {
	return &LayoutJob{
		Text: text,
		Sections: []LayoutSection{{
			ByteRange: [2]int{0, len(text)},
			Format:    SimpleFormat(style, c),
		}},
		WrapWidth:      wrapWidth,
		BreakOnNewline: true,
	}
}

// SimpleSinglelineJob returns a job that never wraps and lays newlines out
// as spaces.
func SimpleSinglelineJob(text string, style TextStyle, c color.RGBA) *LayoutJob {
	return &LayoutJob{
		Text: text,
		Sections: []LayoutSection{{
			ByteRange: [2]int{0, len(text)},
			Format:    SimpleFormat(style, c),
		}},
		WrapWidth:      math.Inf(1),
		BreakOnNewline: false,
	}
}

// Append adds text in format at the end of the job.
func (j *LayoutJob) Append(text string, leadingSpace float64, format TextFormat) {
	start := len(j.Text)
	j.Text += text
	j.Sections = append(j.Sections, LayoutSection{
		LeadingSpace: leadingSpace,
		ByteRange:    [2]int{start, len(j.Text)},
		Format:       format,
	})
}

// IsEmpty reports whether the job has no text.
func (j *LayoutJob) IsEmpty() bool {
	return len(j.Text) == 0
}

// wraps reports whether rows break at WrapWidth.
func (j *LayoutJob) wraps() bool {
	w := j.WrapWidth
	return w > 0 && !math.IsInf(w, 1) && !math.IsNaN(w)
}

// Hash returns the 64-bit FNV-1a hash of every field of the job.
// Jobs that are equal hash equally; different jobs collide with
// negligible probability.
func (j *LayoutJob) Hash() uint64 {
	var h jobHasher
	h.string(j.Text)
	h.uint(uint64(len(j.Sections)))
	for i := range j.Sections {
		s := &j.Sections[i]
		h.float(s.LeadingSpace)
		h.uint(uint64(s.ByteRange[0]))
		h.uint(uint64(s.ByteRange[1]))
		h.format(&s.Format)
	}
	h.float(j.WrapWidth)
	h.uint(uint64(j.WrapMode))
	h.float(j.FirstRowMinHeight)
	h.bool(j.BreakOnNewline)
	h.uint(uint64(j.Halign))

	f := fnv.New64a()
	_, _ = f.Write(h.buf) // fnv.Write never returns an error
	return f.Sum64()
}

// jobHasher serializes job fields into a byte buffer. Strings are length
// prefixed so adjacent fields cannot alias.
type jobHasher struct {
	buf []byte
}

func (h *jobHasher) uint(v uint64) {
	h.buf = binary.LittleEndian.AppendUint64(h.buf, v)
}

func (h *jobHasher) float(v float64) {
	// Hash all NaNs alike.
	if math.IsNaN(v) {
		v = math.NaN()
	}
	h.uint(math.Float64bits(v))
}

func (h *jobHasher) bool(v bool) {
	if v {
		h.buf = append(h.buf, 1)
	} else {
		h.buf = append(h.buf, 0)
	}
}

func (h *jobHasher) string(s string) {
	h.uint(uint64(len(s)))
	h.buf = append(h.buf, s...)
}

func (h *jobHasher) color(c color.RGBA) {
	h.buf = append(h.buf, c.R, c.G, c.B, c.A)
}

func (h *jobHasher) format(f *TextFormat) {
	h.buf = append(h.buf, byte(f.Style.kind))
	h.string(f.Style.name)
	h.float(f.FontID.Size)
	h.buf = append(h.buf, byte(f.FontID.Family.kind))
	h.string(f.FontID.Family.name)
	h.float(f.ExtraLetterSpacing)
	h.color(f.Color)
	h.color(f.Background)
	h.bool(f.Italics)
	h.float(f.Underline.Width)
	h.color(f.Underline.Color)
	h.float(f.Strikethrough.Width)
	h.color(f.Strikethrough.Color)
	h.uint(uint64(f.Valign))
}
