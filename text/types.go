package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// Align is an alignment along one axis.
type Align uint8

const (
	// AlignMin aligns to the left (horizontal) or top (vertical) edge.
	AlignMin Align = iota
	// AlignCenter centers within the available space.
	AlignCenter
	// AlignMax aligns to the right (horizontal) or bottom (vertical) edge.
	AlignMax
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignMin:
		return "Min"
	case AlignCenter:
		return "Center"
	case AlignMax:
		return "Max"
	default:
		return unknownStr
	}
}

// factor returns 0, 0.5 or 1 for Min, Center and Max.
func (a Align) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignMax:
		return 1
	default:
		return 0
	}
}

// Vec2 is a 2D vector in points.
type Vec2 struct {
	X, Y float64
}

// Rect represents a rectangle in points.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// union returns the smallest rectangle containing r and o.
func (r Rect) union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}
