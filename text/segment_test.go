package text

import (
	"slices"
	"testing"
)

func TestRuneDirections(t *testing.T) {
	L, R := DirectionLTR, DirectionRTL
	tests := []struct {
		name     string
		text     string
		want     []Direction
		wantBase bool
	}{
		{"latin", "abc", []Direction{L, L, L}, false},
		{"hebrew", "שלום", []Direction{R, R, R, R}, true},
		{"hebrew in latin", "ab אב", []Direction{L, L, L, R, R}, false},
		{"empty", "", []Direction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, base := runeDirections([]rune(tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("runeDirections(%q) = %v, want %v", tt.text, got, tt.want)
			}
			if base != tt.wantBase {
				t.Errorf("paragraph RTL = %v, want %v", base, tt.wantBase)
			}
		})
	}
}

func TestFirstStrongRTL(t *testing.T) {
	if firstStrongRTL([]rune("123 abc שלום")) {
		t.Error("first strong character is Latin")
	}
	if !firstStrongRTL([]rune("123 שלום abc")) {
		t.Error("first strong character is Hebrew")
	}
	if firstStrongRTL([]rune("123 ...")) {
		t.Error("text without strong characters is left-to-right")
	}
}
