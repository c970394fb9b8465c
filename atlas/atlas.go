package atlas

import (
	"image"
)

// Default atlas dimensions. The width is large enough for every glyph of
// the built-in heading size; the height grows on demand.
const (
	DefaultWidth   = 2048
	DefaultHeight  = 64
	DefaultPadding = 1
)

// TextureAtlas is a growable single-channel image with append-only
// rectangle allocation and dirty-region tracking.
//
// TextureAtlas is not safe for concurrent use; the font collection that owns
// it serializes access.
type TextureAtlas struct {
	image *image.Alpha
	alloc *ShelfAllocator

	// dirty is the union of all rectangles written since the last TakeDelta.
	dirty image.Rectangle

	// resized is set when the image was reallocated since the last TakeDelta.
	resized bool

	allocations int
}

// New creates an atlas of the given initial size.
// The top-left texel is reserved and set to full coverage so that solid
// shapes can sample it.
func New(width, height int, opts ...Option) *TextureAtlas {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	a := &TextureAtlas{
		image: image.NewAlpha(image.Rect(0, 0, width, height)),
		alloc: NewShelfAllocator(width, config.padding),
	}

	pos, img := a.Allocate(1, 1)
	img.Pix[img.PixOffset(pos.X, pos.Y)] = 0xFF

	return a
}

// Size returns the current width and height of the atlas image.
func (a *TextureAtlas) Size() (width, height int) {
	b := a.image.Bounds()
	return b.Dx(), b.Dy()
}

// Allocate reserves a w by h rectangle and returns its origin together with
// the atlas image to write the rectangle's coverage into. The image is only
// valid until the next call to Allocate, which may grow and replace it.
//
// Allocate panics with a *TooWideError if w exceeds the atlas width.
func (a *TextureAtlas) Allocate(w, h int) (pos image.Point, img *image.Alpha) {
	x, y, ok := a.alloc.Allocate(w, h)
	if !ok {
		width, _ := a.Size()
		panic(&TooWideError{Width: w, AtlasWidth: width})
	}

	a.ensureHeight(a.alloc.Bottom())

	r := image.Rect(x, y, x+w, y+h)
	a.dirty = a.dirty.Union(r)
	a.allocations++

	return r.Min, a.image
}

// Allocations returns the number of rectangles allocated so far, including
// the reserved white texel.
func (a *TextureAtlas) Allocations() int {
	return a.allocations
}

// Image returns the backing image. It is replaced whenever the atlas grows.
func (a *TextureAtlas) Image() *image.Alpha {
	return a.image
}

// TakeDelta returns the pixels modified since the previous call and clears
// the dirty state. After the atlas has grown the whole image is returned.
// Returns false when nothing changed.
func (a *TextureAtlas) TakeDelta() (ImageDelta, bool) {
	if a.resized {
		a.resized = false
		a.dirty = image.Rectangle{}
		return ImageDelta{
			Image: cloneRegion(a.image, a.image.Bounds()),
			Full:  true,
		}, true
	}

	if a.dirty.Empty() {
		return ImageDelta{}, false
	}

	r := a.dirty
	a.dirty = image.Rectangle{}
	return ImageDelta{
		Pos:   r.Min,
		Image: cloneRegion(a.image, r),
	}, true
}

// ensureHeight doubles the image height until it is at least minHeight.
func (a *TextureAtlas) ensureHeight(minHeight int) {
	width, height := a.Size()
	if minHeight <= height {
		return
	}

	newHeight := height
	for newHeight < minHeight {
		newHeight *= 2
	}

	grown := image.NewAlpha(image.Rect(0, 0, width, newHeight))
	// Same stride: the old rows are a prefix of the new buffer.
	copy(grown.Pix, a.image.Pix)

	a.image = grown
	a.resized = true
}

// cloneRegion copies r out of src into a new image whose bounds start at (0, 0).
func cloneRegion(src *image.Alpha, r image.Rectangle) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	for y := 0; y < r.Dy(); y++ {
		srcOff := src.PixOffset(r.Min.X, r.Min.Y+y)
		dstOff := dst.PixOffset(0, y)
		copy(dst.Pix[dstOff:dstOff+r.Dx()], src.Pix[srcOff:srcOff+r.Dx()])
	}
	return dst
}
