package atlas

// ShelfAllocator implements shelf-based rectangle packing.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the first shelf that has room,
// otherwise a new shelf is started below the last one.
//
// The allocator has a fixed width and unbounded height; Bottom reports how
// tall the backing image must be to hold every allocation.
type ShelfAllocator struct {
	width   int     // Total width of the atlas
	padding int     // Padding between rectangles
	shelves []shelf // List of shelves

	// Tracking for utilization
	usedArea int
}

// shelf represents a horizontal strip in the atlas.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelfAllocator creates a new allocator for the given width.
func NewShelfAllocator(width, padding int) *ShelfAllocator {
	return &ShelfAllocator{
		width:   width,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns the x, y position, or ok == false if w is wider than the allocator.
//
// The algorithm:
//  1. Try to fit on an existing shelf with enough height
//  2. Extend the last shelf if the item is taller than it
//  3. Otherwise start a new shelf below the last one
func (a *ShelfAllocator) Allocate(w, h int) (x, y int, ok bool) {
	if w > a.width {
		return -1, -1, false
	}

	paddedW := w + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]

		if s.x+w > a.width {
			continue
		}

		if h > s.height {
			// Only the last shelf can grow: nothing sits below it.
			if i != len(a.shelves)-1 {
				continue
			}
			s.height = h
		}

		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}

	a.shelves = append(a.shelves, shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	})
	a.usedArea += w * h

	return 0, newY, true
}

// Bottom returns the lowest y coordinate covered by any allocation.
func (a *ShelfAllocator) Bottom() int {
	if len(a.shelves) == 0 {
		return 0
	}
	last := a.shelves[len(a.shelves)-1]
	return last.y + last.height
}

// UsedArea returns the total area used by allocations.
func (a *ShelfAllocator) UsedArea() int {
	return a.usedArea
}

// ShelfCount returns the number of shelves currently in use.
func (a *ShelfAllocator) ShelfCount() int {
	return len(a.shelves)
}
