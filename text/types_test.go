package text

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.dir.String()
		if got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestAlignFactor(t *testing.T) {
	tests := []struct {
		align  Align
		name   string
		factor float64
	}{
		{AlignMin, "Min", 0},
		{AlignCenter, "Center", 0.5},
		{AlignMax, "Max", 1},
		{Align(42), "Unknown", 0},
	}

	for _, tt := range tests {
		if got := tt.align.String(); got != tt.name {
			t.Errorf("Align(%d).String() = %q, want %q", tt.align, got, tt.name)
		}
		if got := tt.align.factor(); got != tt.factor {
			t.Errorf("Align(%d).factor() = %v, want %v", tt.align, got, tt.factor)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: 2, MaxX: 4, MaxY: 8}
	if r.Width() != 3 || r.Height() != 6 {
		t.Errorf("size = %vx%v, want 3x6", r.Width(), r.Height())
	}
	if r.Empty() {
		t.Error("Empty() = true for non-empty rect")
	}
	if !(Rect{MinX: 1, MaxX: 1, MaxY: 5}).Empty() {
		t.Error("zero-width rect not empty")
	}

	u := r.union(Rect{MinX: -1, MinY: 3, MaxX: 2, MaxY: 10})
	want := Rect{MinX: -1, MinY: 2, MaxX: 4, MaxY: 10}
	if u != want {
		t.Errorf("union = %+v, want %+v", u, want)
	}
}
